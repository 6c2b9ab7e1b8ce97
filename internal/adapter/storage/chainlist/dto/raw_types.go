package chainlist_dto

// ChainRaw represents the subset of a Chainlist entry the finder reads.
type ChainRaw struct {
	Name      string      `json:"name"`
	Chain     string      `json:"chain"`
	RPC       []string    `json:"rpc"`
	Currency  CurrencyRaw `json:"nativeCurrency"`
	ShortName string      `json:"shortName"`
	ChainID   int64       `json:"chainId"`
	Status    string      `json:"status,omitempty"`
}

// CurrencyRaw defines the native currency details of a chain from raw data.
type CurrencyRaw struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}
