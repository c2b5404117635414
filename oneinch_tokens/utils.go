package oneinch_tokens

import (
	"fmt"
	"sort"
	"strings"
)

// flattenTokenMap converts the upstream address-keyed map into a
// deterministically ordered slice. The address from the map key wins
// over the embedded field so entries stay addressable.
func flattenTokenMap(chainID int, tokens map[string]Token) []Token {
	out := make([]Token, 0, len(tokens))
	for address, token := range tokens {
		token.Address = strings.ToLower(address)
		token.ChainID = chainID
		out = append(out, token)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Address < out[j].Address
	})

	return out
}

func listCacheKey(chainID int) string {
	return fmt.Sprintf("tokens:list:%d", chainID)
}

func searchCacheKey(chainID int, query string, limit int) string {
	return fmt.Sprintf("tokens:search:%d:%s:%d", chainID, strings.ToLower(query), limit)
}

func customCacheKey(chainID int, address string) string {
	return fmt.Sprintf("tokens:custom:%d:%s", chainID, strings.ToLower(address))
}
