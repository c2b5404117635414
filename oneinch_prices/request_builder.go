package oneinch_prices

import (
	"fmt"
	"strings"

	"github.com/status-im/wallet-proxy/oneinch"
)

const (
	// Path template for the spot price API endpoint
	PRICES_API_PATH = "/price/v1.1/%d/%s"
)

// PricesRequestBuilder builds spot price requests for a chain and address set
type PricesRequestBuilder struct {
	*oneinch.RequestBuilder
}

// NewPricesRequestBuilder creates a request builder for the spot price endpoint.
// Addresses are carried in the path, comma-separated.
func NewPricesRequestBuilder(baseURL string, chainID int, addresses []string) *PricesRequestBuilder {
	path := fmt.Sprintf(PRICES_API_PATH, chainID, strings.Join(addresses, ","))
	return &PricesRequestBuilder{
		RequestBuilder: oneinch.NewRequestBuilder(baseURL, path),
	}
}

// WithCurrency adds the quote currency parameter. The portal expects the
// currency code uppercased.
func (rb *PricesRequestBuilder) WithCurrency(currency string) *PricesRequestBuilder {
	if currency != "" {
		rb.With("currency", strings.ToUpper(currency))
	}
	return rb
}
