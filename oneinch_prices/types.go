package oneinch_prices

// PriceParams represents parameters for spot price requests
type PriceParams struct {
	// ChainID the network to price tokens on
	ChainID int `json:"chainId"`

	// Addresses list of token contract addresses to fetch prices for
	Addresses []string `json:"addresses"`

	// Currency quote currency (e.g. "usd"); empty means native token
	Currency string `json:"currency"`
}

// PriceEntry is one token price, reshaped from the upstream address->wei map
type PriceEntry struct {
	Address string `json:"address"`
	// Price human-readable decimal string
	Price string `json:"price"`
	// Wei raw base-unit integer string as returned by the upstream
	Wei string `json:"wei"`
}

// PricesResponse is the flattened response served to the dashboard
type PricesResponse struct {
	ChainID  int          `json:"chainId"`
	Currency string       `json:"currency"`
	Prices   []PriceEntry `json:"prices"`
}
