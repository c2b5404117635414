package oneinch

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestBuilder_BuildURL(t *testing.T) {
	tests := []struct {
		name     string
		baseURL  string
		apiPath  string
		params   map[string]string
		expected string
	}{
		{
			name:     "path without params",
			baseURL:  "https://api.1inch.dev",
			apiPath:  "/gas-price/v1.4/1",
			expected: "https://api.1inch.dev/gas-price/v1.4/1",
		},
		{
			name:     "trailing and leading slashes collapse",
			baseURL:  "https://api.1inch.dev/",
			apiPath:  "token/v1.2/1",
			expected: "https://api.1inch.dev/token/v1.2/1",
		},
		{
			name:    "query params are encoded and sorted",
			baseURL: "https://api.1inch.dev",
			apiPath: "/nft/v1/byaddress",
			params: map[string]string{
				"chainIds": "1",
				"address":  "0x1111111111111111111111111111111111111111",
			},
			expected: "https://api.1inch.dev/nft/v1/byaddress?address=0x1111111111111111111111111111111111111111&chainIds=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rb := NewRequestBuilder(tt.baseURL, tt.apiPath)
			for k, v := range tt.params {
				rb.With(k, v)
			}
			assert.Equal(t, tt.expected, rb.BuildURL())
		})
	}
}

func TestRequestBuilder_Build(t *testing.T) {
	rb := NewRequestBuilder("https://api.1inch.dev", "/price/v1.1/1").
		With("currency", "USD").
		WithBearerToken("secret-key")

	req, err := rb.Build()
	require.NoError(t, err)

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "Bearer secret-key", req.Header.Get("Authorization"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "Mozilla/5.0 Wallet-Proxy", req.Header.Get("User-Agent"))

	parsed, err := url.Parse(req.URL.String())
	require.NoError(t, err)
	assert.Equal(t, "/price/v1.1/1", parsed.Path)
	assert.Equal(t, "USD", parsed.Query().Get("currency"))
}

func TestRequestBuilder_NoTokenNoAuthHeader(t *testing.T) {
	req, err := NewRequestBuilder("https://api.1inch.dev", "/token/v1.2/1").Build()
	require.NoError(t, err)
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestRequestBuilder_CustomHeaderAndUserAgent(t *testing.T) {
	req, err := NewRequestBuilder("https://api.1inch.dev", "/token/v1.2/1").
		WithHeader("X-Request-Id", "abc").
		WithUserAgent("custom-agent").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "abc", req.Header.Get("X-Request-Id"))
	assert.Equal(t, "custom-agent", req.Header.Get("User-Agent"))
}
