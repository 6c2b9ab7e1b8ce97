package entity

import "strconv"

// Chain describes a blockchain network the finder can search for.
type Chain struct {
	ID          uint64 `json:"id" yaml:"id" mapstructure:"id"`
	Name        string `json:"name" yaml:"name" mapstructure:"name"`
	Symbol      string `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
	DefaultRPC  string `json:"defaultRpc" yaml:"default_rpc" mapstructure:"default_rpc"`
	GenesisHash string `json:"genesisHash,omitempty" yaml:"genesis_hash" mapstructure:"genesis_hash"`
	Custom      bool   `json:"custom" yaml:"-" mapstructure:"-"`
}

// HexID returns the chain id the way eth_chainId reports it, e.g. "0x38".
func (c Chain) HexID() string {
	return "0x" + strconv.FormatUint(c.ID, 16)
}

// VerifiesGenesis reports whether validation should compare the genesis block hash.
// Custom chains registered without a hash skip that check.
func (c Chain) VerifiesGenesis() bool {
	return c.GenesisHash != ""
}

// Genesis block hashes of the built-in chains.
const (
	EthereumGenesis = "0xd4e56740f876aef8c010b86a40d5f56745a118d0906a34e69aec8c0db1cb8fa3"
	BSCGenesis      = "0x0d21840abff46b96c84b2ac9e10e4f5cdaeb5693cb665db62a2f3b02d2d57b5b"
	BaseGenesis     = "0xf712aa9241cc24369b143cf6dce85f0902a9731e70d66818a3a5845b296c73dd"
)

// DefaultChains returns the built-in chain set.
func DefaultChains() []Chain {
	return []Chain{
		{
			ID:          1,
			Name:        "Ethereum",
			Symbol:      "ETH",
			DefaultRPC:  "https://eth.llamarpc.com",
			GenesisHash: EthereumGenesis,
		},
		{
			ID:          56,
			Name:        "BSC",
			Symbol:      "BNB",
			DefaultRPC:  "https://bsc.meowrpc.com",
			GenesisHash: BSCGenesis,
		},
		{
			ID:          8453,
			Name:        "Base",
			Symbol:      "ETH",
			DefaultRPC:  "https://base-rpc.publicnode.com",
			GenesisHash: BaseGenesis,
		},
	}
}
