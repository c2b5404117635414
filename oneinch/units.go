package oneinch

import (
	"fmt"
	"math/big"
	"strings"
)

// FormatUnits converts a base-unit integer string into a human-readable
// decimal string, e.g. FormatUnits("1500000000000000000", 18) == "1.5".
// The conversion is exact; no floating point is involved.
func FormatUnits(raw string, decimals int) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty amount")
	}
	if decimals < 0 {
		return "", fmt.Errorf("negative decimals %d", decimals)
	}

	value, ok := new(big.Int).SetString(raw, 10)
	if !ok || value.Sign() < 0 {
		return "", fmt.Errorf("malformed base-unit amount %q", raw)
	}

	if decimals == 0 {
		return value.String(), nil
	}

	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	quotient, remainder := new(big.Int).QuoRem(value, divisor, new(big.Int))

	if remainder.Sign() == 0 {
		return quotient.String(), nil
	}

	frac := strings.TrimRight(fmt.Sprintf("%0*s", decimals, remainder.String()), "0")
	return quotient.String() + "." + frac, nil
}

// WeiToGwei converts a wei amount string to a gwei decimal string
func WeiToGwei(wei string) (string, error) {
	return FormatUnits(wei, 9)
}
