package oneinch_portfolio

import (
	"fmt"
	"strings"
)

func joinAddresses(addresses []string) string {
	return strings.Join(addresses, ",")
}

// buildPortfolioResponse sums the per-address values into an overview
func buildPortfolioResponse(addresses []string, values []PortfolioValue) *PortfolioResponse {
	if values == nil {
		values = []PortfolioValue{}
	}

	total := 0.0
	for _, value := range values {
		total += value.ValueUSD
	}

	return &PortfolioResponse{
		Addresses:     addresses,
		TotalValueUSD: total,
		Values:        values,
	}
}

func cacheKey(addresses []string) string {
	return fmt.Sprintf("portfolio:%s", strings.ToLower(joinAddresses(addresses)))
}
