package api

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/status-im/wallet-proxy/interfaces"
	"github.com/status-im/wallet-proxy/oneinch"
)

// setCacheStatusHeader sets the Cache-Status header based on cache status
func (s *Server) setCacheStatusHeader(w http.ResponseWriter, cacheStatus interfaces.CacheStatus) {
	if cacheStatus != "" {
		w.Header().Set("Cache-Status", string(cacheStatus))
	}
}

// sendJSONResponse is a common wrapper for JSON responses that sets
// Content-Type, Content-Length and ETag headers
func (s *Server) sendJSONResponse(w http.ResponseWriter, data interface{}) {
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}

	s.sendRawJSONResponse(w, responseBytes)
}

// sendRawJSONResponse writes pre-marshaled JSON with the same headers
func (s *Server) sendRawJSONResponse(w http.ResponseWriter, responseBytes []byte) {
	// ETag is the MD5 hash of the response body
	hash := md5.Sum(responseBytes)
	etag := hex.EncodeToString(hash[:])

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseBytes)))
	w.Header().Set("ETag", "\""+etag+"\"")

	if _, err := w.Write(responseBytes); err != nil {
		log.Printf("Error writing response: %v", err)
		return
	}
}

// sendUpstreamError maps upstream failures onto response codes: bad
// credentials pass through as 401, exhausted rate limits as 429,
// anything else is a plain 500
func (s *Server) sendUpstreamError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, oneinch.ErrUnauthorized):
		http.Error(w, "Upstream authorization failed", http.StatusUnauthorized)
	case errors.Is(err, oneinch.ErrRateLimited):
		http.Error(w, "Upstream rate limited", http.StatusTooManyRequests)
	default:
		log.Printf("Upstream error: %v", err)
		http.Error(w, "Upstream request failed", http.StatusInternalServerError)
	}
}

// Stop gracefully shuts down the server
func (s *Server) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(ctx); err != nil {
			log.Printf("Error shutting down server: %v", err)
		}
	}
}

// supportedChainList returns the served chains sorted by id
func supportedChainList() []map[string]interface{} {
	ids := make([]int, 0, len(oneinch.SupportedChains))
	for id := range oneinch.SupportedChains {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	chains := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		chains = append(chains, map[string]interface{}{
			"chainId": id,
			"name":    oneinch.SupportedChains[id],
		})
	}
	return chains
}

// parseChainIDList parses a comma-separated chainIds query value.
// Empty input falls back to mainnet only.
func parseChainIDList(raw string) ([]int, error) {
	if raw == "" {
		return []int{1}, nil
	}

	parts := strings.Split(raw, ",")
	chainIDs := make([]int, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		chainID, err := oneinch.ParseChainID(trimmed, 0)
		if err != nil {
			return nil, err
		}
		chainIDs = append(chainIDs, chainID)
	}

	if len(chainIDs) == 0 {
		return []int{1}, nil
	}
	return chainIDs, nil
}
