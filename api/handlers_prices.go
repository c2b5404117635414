package api

import (
	"net/http"

	"github.com/status-im/wallet-proxy/oneinch"
	"github.com/status-im/wallet-proxy/oneinch_prices"
)

// handlePrices serves spot prices for a comma-separated address list
func (s *Server) handlePrices(w http.ResponseWriter, r *http.Request) {
	addresses, err := oneinch.SplitAddressList(r.URL.Query().Get("addresses"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	chainID, err := oneinch.ParseChainID(r.URL.Query().Get("chainId"), 1)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	currency := r.URL.Query().Get("currency")
	if currency == "" {
		currency = s.config.Prices.Currency
	}

	params := oneinch_prices.PriceParams{
		ChainID:   chainID,
		Addresses: addresses,
		Currency:  currency,
	}

	entries, cacheStatus, err := s.pricesService.SpotPrices(r.Context(), params)
	if err != nil {
		s.sendUpstreamError(w, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendJSONResponse(w, oneinch_prices.PricesResponse{
		ChainID:  chainID,
		Currency: currency,
		Prices:   entries,
	})
}

// handleGas serves the gas fee tiers for a chain
func (s *Server) handleGas(w http.ResponseWriter, r *http.Request) {
	chainID, err := oneinch.ParseChainID(r.URL.Query().Get("chainId"), 1)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	prices, cacheStatus, err := s.gasService.GasPrices(r.Context(), chainID)
	if err != nil {
		s.sendUpstreamError(w, err)
		return
	}

	s.setCacheStatusHeader(w, cacheStatus)
	s.sendJSONResponse(w, prices)
}
