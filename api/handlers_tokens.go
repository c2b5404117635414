package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/status-im/wallet-proxy/oneinch"
)

const maxSearchLimit = 100

// handleTokenList serves the whitelisted token list for a chain
func (s *Server) handleTokenList(w http.ResponseWriter, r *http.Request) {
	chainID, err := oneinch.ParseChainID(r.URL.Query().Get("chainId"), s.config.Tokens.DefaultChain)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, cacheStatus, err := s.tokensService.TokenList(r.Context(), chainID)
	if err != nil {
		s.sendUpstreamError(w, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendJSONResponse(w, response)
}

// handleTokenSearch serves token search by name or symbol
func (s *Server) handleTokenSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		http.Error(w, "query parameter is required", http.StatusBadRequest)
		return
	}

	chainID, err := oneinch.ParseChainID(r.URL.Query().Get("chainId"), s.config.Tokens.DefaultChain)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit, err := oneinch.ParseLimit(r.URL.Query().Get("limit"), s.config.Tokens.SearchLimit, maxSearchLimit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	tokens, cacheStatus, err := s.tokensService.Search(r.Context(), chainID, query, limit)
	if err != nil {
		s.sendUpstreamError(w, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendJSONResponse(w, tokens)
}

// handleCustomToken resolves metadata for an arbitrary token contract
func (s *Server) handleCustomToken(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["address"]
	if err := oneinch.ValidateAddress(address); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	chainID, err := oneinch.ParseChainID(r.URL.Query().Get("chainId"), s.config.Tokens.DefaultChain)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, cacheStatus, err := s.tokensService.CustomToken(r.Context(), chainID, address)
	if err != nil {
		s.sendUpstreamError(w, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendJSONResponse(w, token)
}
