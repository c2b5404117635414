package oneinch_portfolio

// portfolioUpstreamResponse mirrors the upstream current-value shape
type portfolioUpstreamResponse struct {
	Result []PortfolioValue `json:"result"`
}

// PortfolioValue is the aggregated ERC20 value of a single address
type PortfolioValue struct {
	Address  string  `json:"address"`
	ValueUSD float64 `json:"value_usd"`
}

// PortfolioResponse is the overview served to the dashboard
type PortfolioResponse struct {
	Addresses     []string         `json:"addresses"`
	TotalValueUSD float64          `json:"totalValueUsd"`
	Values        []PortfolioValue `json:"values"`
}
