package api

import (
	"net/http"

	"github.com/status-im/wallet-proxy/oneinch"
)

// handleDomainLookup resolves a domain name to addresses
func (s *Server) handleDomainLookup(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "name parameter is required", http.StatusBadRequest)
		return
	}

	response, cacheStatus, err := s.domainsService.Lookup(r.Context(), name)
	if err != nil {
		s.sendUpstreamError(w, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendJSONResponse(w, response)
}

// handleDomainReverse resolves an address back to its primary domain
func (s *Server) handleDomainReverse(w http.ResponseWriter, r *http.Request) {
	address := r.URL.Query().Get("address")
	if err := oneinch.ValidateAddress(address); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, cacheStatus, err := s.domainsService.ReverseLookup(r.Context(), address)
	if err != nil {
		s.sendUpstreamError(w, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendJSONResponse(w, response)
}
