package shodan_dto

// SearchResultRaw is the body of a /shodan/host/search response.
type SearchResultRaw struct {
	Matches []MatchRaw `json:"matches"`
	Total   int        `json:"total"`
}

// MatchRaw is one banner in a search result.
type MatchRaw struct {
	IPStr    string       `json:"ip_str"`
	Port     int          `json:"port"`
	Location *LocationRaw `json:"location,omitempty"`
}

// LocationRaw holds the geolocation of a match.
type LocationRaw struct {
	CountryCode string `json:"country_code"`
}

// ErrorRaw is the body Shodan returns alongside non-2xx statuses.
type ErrorRaw struct {
	Error string `json:"error"`
}
