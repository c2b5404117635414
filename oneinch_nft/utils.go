package oneinch_nft

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// buildNFTResponse attaches pagination metadata to the raw asset page.
// HasMore is inferred from a full page since the upstream does not
// report totals.
func buildNFTResponse(params NFTParams, upstream nftUpstreamResponse) *NFTResponse {
	assets := upstream.Assets
	if assets == nil {
		assets = []json.RawMessage{}
	}

	return &NFTResponse{
		Address:  strings.ToLower(params.Address),
		ChainIDs: params.ChainIDs,
		Limit:    params.Limit,
		Offset:   params.Offset,
		Count:    len(assets),
		HasMore:  params.Limit > 0 && len(assets) >= params.Limit,
		Assets:   assets,
	}
}

func cacheKey(params NFTParams) string {
	chainIDs := make([]string, 0, len(params.ChainIDs))
	for _, chainID := range params.ChainIDs {
		chainIDs = append(chainIDs, strconv.Itoa(chainID))
	}

	return fmt.Sprintf("nft:%s:%s:%d:%d",
		strings.Join(chainIDs, ","), strings.ToLower(params.Address), params.Limit, params.Offset)
}
