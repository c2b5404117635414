package oneinch_gas

// gasPricesUpstream mirrors the aggregator's EIP-1559 gas price response;
// all values are wei integer strings
type gasPricesUpstream struct {
	BaseFee string          `json:"baseFee"`
	Low     gasTierUpstream `json:"low"`
	Medium  gasTierUpstream `json:"medium"`
	High    gasTierUpstream `json:"high"`
	Instant gasTierUpstream `json:"instant"`
}

type gasTierUpstream struct {
	MaxPriorityFeePerGas string `json:"maxPriorityFeePerGas"`
	MaxFeePerGas         string `json:"maxFeePerGas"`
}

// GasTier is one fee tier with gwei decimal strings
type GasTier struct {
	MaxPriorityFeePerGas string `json:"maxPriorityFeePerGas"`
	MaxFeePerGas         string `json:"maxFeePerGas"`
}

// GasPrices is the reshaped gas price response served to the dashboard
type GasPrices struct {
	ChainID int     `json:"chainId"`
	BaseFee string  `json:"baseFee"`
	Low     GasTier `json:"low"`
	Medium  GasTier `json:"medium"`
	High    GasTier `json:"high"`
	Instant GasTier `json:"instant"`
}
