package oneinch_prices

import (
	"fmt"
	"strings"
)

// Base-unit price strings from the upstream are denominated with the native
// token's 18 decimals.
const priceDecimals = 18

// createCacheKeys builds one cache key per requested address
func createCacheKeys(params PriceParams) []string {
	keys := make([]string, 0, len(params.Addresses))
	for _, address := range params.Addresses {
		keys = append(keys, createCacheKey(params.ChainID, params.Currency, address))
	}
	return keys
}

func createCacheKey(chainID int, currency, address string) string {
	if currency == "" {
		currency = "native"
	}
	return fmt.Sprintf("prices:%d:%s:%s", chainID, strings.ToLower(currency), strings.ToLower(address))
}

// extractAddressFromKey recovers the address segment of a cache key
func extractAddressFromKey(key string) string {
	idx := strings.LastIndex(key, ":")
	if idx < 0 {
		return key
	}
	return key[idx+1:]
}
