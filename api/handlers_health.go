package api

import (
	"net/http"
)

// handleHealth responds with 200 OK and a per-service status map
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	services := map[string]string{
		"tokens":    "unknown",
		"prices":    "unknown",
		"gas":       "unknown",
		"nft":       "unknown",
		"portfolio": "unknown",
		"domains":   "unknown",
		"history":   "unknown",
		"traces":    "unknown",
	}

	if s.tokensService.Healthy() {
		services["tokens"] = "up"
	}
	if s.pricesService.Healthy() {
		services["prices"] = "up"
	}
	if s.gasService.Healthy() {
		services["gas"] = "up"
	}
	if s.nftService.Healthy() {
		services["nft"] = "up"
	}
	if s.portfolioService.Healthy() {
		services["portfolio"] = "up"
	}
	if s.domainsService.Healthy() {
		services["domains"] = "up"
	}
	if s.historyService.Healthy() {
		services["history"] = "up"
	}
	if s.tracesService.Healthy() {
		services["traces"] = "up"
	}

	s.sendJSONResponse(w, map[string]interface{}{
		"status":   "ok",
		"services": services,
	})
}

// handleAppConfig serves the bootstrap configuration the frontend needs
// before it can render
func (s *Server) handleAppConfig(w http.ResponseWriter, r *http.Request) {
	s.sendJSONResponse(w, map[string]interface{}{
		"walletConnectProjectId": s.config.Credentials.WalletConnectProjectID,
		"supportedChains":        supportedChainList(),
	})
}
