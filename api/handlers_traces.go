package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/status-im/wallet-proxy/oneinch"
)

func parseBlockNumber(raw string) (string, error) {
	if _, err := strconv.ParseUint(raw, 10, 64); err != nil {
		return "", err
	}
	return raw, nil
}

// handleBlockTrace serves the raw trace of a block
func (s *Server) handleBlockTrace(w http.ResponseWriter, r *http.Request) {
	blockNumber, err := parseBlockNumber(mux.Vars(r)["number"])
	if err != nil {
		http.Error(w, "block number must be a non-negative integer", http.StatusBadRequest)
		return
	}

	chainID, err := oneinch.ParseChainID(r.URL.Query().Get("chainId"), 1)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, cacheStatus, err := s.tracesService.BlockTrace(r.Context(), chainID, blockNumber)
	if err != nil {
		s.sendUpstreamError(w, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendRawJSONResponse(w, data)
}

// handleTransactionTrace serves the raw trace of one transaction
func (s *Server) handleTransactionTrace(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	blockNumber, err := parseBlockNumber(vars["number"])
	if err != nil {
		http.Error(w, "block number must be a non-negative integer", http.StatusBadRequest)
		return
	}

	hash := vars["hash"]
	if !oneinch.IsValidTxHash(hash) {
		http.Error(w, "malformed transaction hash", http.StatusBadRequest)
		return
	}

	chainID, err := oneinch.ParseChainID(r.URL.Query().Get("chainId"), 1)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	data, cacheStatus, err := s.tracesService.TransactionTrace(r.Context(), chainID, blockNumber, hash)
	if err != nil {
		s.sendUpstreamError(w, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendRawJSONResponse(w, data)
}
