package oneinch_tokens

// Token reflects the upstream token metadata shape with minimal typing
type Token struct {
	Address  string   `json:"address"`
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name"`
	Decimals int      `json:"decimals"`
	LogoURI  string   `json:"logoURI,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	ChainID  int      `json:"chainId,omitempty"`
}

// TokenListResponse is the flattened token list served to the dashboard
type TokenListResponse struct {
	ChainID int     `json:"chainId"`
	Count   int     `json:"count"`
	Tokens  []Token `json:"tokens"`
}
