package oneinch

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	addressRegexp = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	txHashRegexp  = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

// SupportedChains maps chain id to chain name for the networks the
// dashboard exposes
var SupportedChains = map[int]string{
	1:     "ethereum",
	10:    "optimism",
	56:    "bsc",
	100:   "gnosis",
	137:   "polygon",
	324:   "zksync-era",
	8453:  "base",
	42161: "arbitrum",
	43114: "avalanche",
}

// IsValidAddress reports whether s is a well-formed Ethereum address
func IsValidAddress(s string) bool {
	return addressRegexp.MatchString(s)
}

// IsValidTxHash reports whether s is a well-formed transaction or block hash
func IsValidTxHash(s string) bool {
	return txHashRegexp.MatchString(s)
}

// IsSupportedChain reports whether the chain id is served
func IsSupportedChain(chainID int) bool {
	_, ok := SupportedChains[chainID]
	return ok
}

// ParseChainID parses a chainId query value. Empty input falls back to
// defaultChain; anything else must be a supported numeric chain id.
func ParseChainID(raw string, defaultChain int) (int, error) {
	if raw == "" {
		if defaultChain > 0 {
			return defaultChain, nil
		}
		return 1, nil
	}

	chainID, err := strconv.Atoi(raw)
	if err != nil || chainID <= 0 {
		return 0, fmt.Errorf("chainId must be a positive integer, got %q", raw)
	}
	if !IsSupportedChain(chainID) {
		return 0, fmt.Errorf("unsupported chainId %d", chainID)
	}

	return chainID, nil
}

// ParseLimit parses a limit query value into [1, max], using def when empty
func ParseLimit(raw string, def, max int) (int, error) {
	if raw == "" {
		return def, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("limit must be an integer, got %q", raw)
	}
	if limit < 1 || limit > max {
		return 0, fmt.Errorf("limit must be between 1 and %d, got %d", max, limit)
	}

	return limit, nil
}

// ParseOffset parses an offset query value, rejecting negatives
func ParseOffset(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}

	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("offset must be a non-negative integer, got %q", raw)
	}

	return offset, nil
}

// ValidateAddress returns a descriptive error for malformed addresses
func ValidateAddress(s string) error {
	if s == "" {
		return fmt.Errorf("address is required")
	}
	if !IsValidAddress(s) {
		return fmt.Errorf("malformed address %q", s)
	}
	return nil
}

// SplitAddressList parses a comma-separated address list, validating and
// lowercasing each entry. Order is preserved.
func SplitAddressList(raw string) ([]string, error) {
	if raw == "" {
		return nil, fmt.Errorf("at least one address is required")
	}

	parts := strings.Split(raw, ",")
	addresses := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		if !IsValidAddress(trimmed) {
			return nil, fmt.Errorf("malformed address %q", trimmed)
		}
		addresses = append(addresses, strings.ToLower(trimmed))
	}

	if len(addresses) == 0 {
		return nil, fmt.Errorf("at least one address is required")
	}

	return addresses, nil
}
