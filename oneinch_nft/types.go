package oneinch_nft

import "encoding/json"

// NFTParams captures the query parameters of an NFT listing request
type NFTParams struct {
	ChainIDs []int
	Address  string
	Limit    int
	Offset   int
}

// nftUpstreamResponse mirrors the upstream asset listing shape. Assets
// are passed through untouched since their schema varies per provider.
type nftUpstreamResponse struct {
	Assets          []json.RawMessage `json:"assets"`
	OpenSeaNextToken string           `json:"openseaNextToken,omitempty"`
}

// NFTResponse is the listing served to the dashboard with pagination
// metadata attached
type NFTResponse struct {
	Address  string            `json:"address"`
	ChainIDs []int             `json:"chainIds"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
	Count    int               `json:"count"`
	HasMore  bool              `json:"hasMore"`
	Assets   []json.RawMessage `json:"assets"`
}
