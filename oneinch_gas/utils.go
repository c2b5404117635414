package oneinch_gas

import (
	"fmt"

	"github.com/status-im/wallet-proxy/oneinch"
)

// transformGasPrices converts the upstream wei strings into gwei decimals
func transformGasPrices(chainID int, upstream gasPricesUpstream) (*GasPrices, error) {
	baseFee, err := oneinch.WeiToGwei(upstream.BaseFee)
	if err != nil {
		return nil, fmt.Errorf("malformed baseFee: %w", err)
	}

	prices := &GasPrices{
		ChainID: chainID,
		BaseFee: baseFee,
	}

	tiers := []struct {
		name string
		in   gasTierUpstream
		out  *GasTier
	}{
		{"low", upstream.Low, &prices.Low},
		{"medium", upstream.Medium, &prices.Medium},
		{"high", upstream.High, &prices.High},
		{"instant", upstream.Instant, &prices.Instant},
	}

	for _, tier := range tiers {
		priority, err := oneinch.WeiToGwei(tier.in.MaxPriorityFeePerGas)
		if err != nil {
			return nil, fmt.Errorf("malformed %s maxPriorityFeePerGas: %w", tier.name, err)
		}
		maxFee, err := oneinch.WeiToGwei(tier.in.MaxFeePerGas)
		if err != nil {
			return nil, fmt.Errorf("malformed %s maxFeePerGas: %w", tier.name, err)
		}
		tier.out.MaxPriorityFeePerGas = priority
		tier.out.MaxFeePerGas = maxFee
	}

	return prices, nil
}

func cacheKey(chainID int) string {
	return fmt.Sprintf("gas:%d", chainID)
}
