package api

import (
	"net/http"

	"github.com/status-im/wallet-proxy/oneinch"
	"github.com/status-im/wallet-proxy/oneinch_history"
	"github.com/status-im/wallet-proxy/oneinch_nft"
)

const (
	maxNFTLimit     = 100
	maxHistoryLimit = 100
)

// handleNFTs serves a page of NFT assets owned by an address
func (s *Server) handleNFTs(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if err := oneinch.ValidateAddress(address); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	chainIDs, err := parseChainIDList(r.URL.Query().Get("chainIds"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit, err := oneinch.ParseLimit(r.URL.Query().Get("limit"), s.config.NFT.DefaultLimit, maxNFTLimit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	offset, err := oneinch.ParseOffset(r.URL.Query().Get("offset"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, cacheStatus, err := s.nftService.NFTs(r.Context(), oneinch_nft.NFTParams{
		ChainIDs: chainIDs,
		Address:  address,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		s.sendUpstreamError(w, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendJSONResponse(w, response)
}

// handlePortfolio serves the aggregated ERC20 value for a set of addresses
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	addresses, err := oneinch.SplitAddressList(r.URL.Query().Get("addresses"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, cacheStatus, err := s.portfolioService.CurrentValue(r.Context(), addresses)
	if err != nil {
		s.sendUpstreamError(w, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendJSONResponse(w, response)
}

// handleHistory serves the recent transactions for an address
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if err := oneinch.ValidateAddress(address); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// chainId is optional here, zero means all chains
	chainID := 0
	if raw := r.URL.Query().Get("chainId"); raw != "" {
		var err error
		chainID, err = oneinch.ParseChainID(raw, 0)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	limit, err := oneinch.ParseLimit(r.URL.Query().Get("limit"), s.config.History.DefaultLimit, maxHistoryLimit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, cacheStatus, err := s.historyService.History(r.Context(), oneinch_history.HistoryParams{
		Address: address,
		ChainID: chainID,
		Limit:   limit,
	})
	if err != nil {
		s.sendUpstreamError(w, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendJSONResponse(w, response)
}
