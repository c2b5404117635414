package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/status-im/wallet-proxy/metrics"
	"github.com/status-im/wallet-proxy/oneinch"
	"github.com/status-im/wallet-proxy/oneinch_prices"
)

const (
	DEFAULT_BATCH_DELAY    = 200 * time.Millisecond
	DEFAULT_MAX_OPERATIONS = 20

	actionPrice         = "price"
	actionReverseLookup = "reverse_lookup"
	actionPortfolio     = "portfolio"
)

// BatchOperation is a single dispatched call. Params stay raw until the
// action is known.
type BatchOperation struct {
	Action string          `json:"action"`
	Params json.RawMessage `json:"params"`
}

type BatchRequest struct {
	Operations []BatchOperation `json:"operations"`
}

type BatchResponse struct {
	Results []oneinch.ItemResult `json:"results"`
}

type batchPriceParams struct {
	ChainID   int      `json:"chainId"`
	Addresses []string `json:"addresses"`
	Currency  string   `json:"currency"`
}

type batchAddressParams struct {
	Address string `json:"address"`
}

type batchAddressesParams struct {
	Addresses []string `json:"addresses"`
}

// handleBatch runs the submitted operations strictly sequentially with a
// fixed delay between items. A failing item never aborts the rest and
// the results order matches the operations order.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	var request BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}

	if len(request.Operations) == 0 {
		http.Error(w, "operations array is required", http.StatusBadRequest)
		return
	}

	maxOperations := s.config.Batch.MaxOperations
	if maxOperations <= 0 {
		maxOperations = DEFAULT_MAX_OPERATIONS
	}
	if len(request.Operations) > maxOperations {
		http.Error(w, fmt.Sprintf("too many operations, max is %d", maxOperations), http.StatusBadRequest)
		return
	}

	delay := time.Duration(s.config.Batch.ItemDelayMs) * time.Millisecond
	if s.config.Batch.ItemDelayMs <= 0 {
		delay = DEFAULT_BATCH_DELAY
	}

	results := oneinch.RunSequential(r.Context(), len(request.Operations), delay,
		func(ctx context.Context, index int) (interface{}, error) {
			operation := request.Operations[index]
			data, err := s.runBatchOperation(ctx, operation)
			metrics.RecordBatchItem(operation.Action, err == nil)
			return data, err
		})

	s.sendJSONResponse(w, BatchResponse{Results: results})
}

func (s *Server) runBatchOperation(ctx context.Context, operation BatchOperation) (interface{}, error) {
	switch operation.Action {
	case actionPrice:
		var params batchPriceParams
		if err := json.Unmarshal(operation.Params, &params); err != nil {
			return nil, fmt.Errorf("malformed price params: %w", err)
		}
		if params.ChainID == 0 {
			params.ChainID = 1
		}
		if !oneinch.IsSupportedChain(params.ChainID) {
			return nil, fmt.Errorf("unsupported chainId %d", params.ChainID)
		}
		for _, address := range params.Addresses {
			if err := oneinch.ValidateAddress(address); err != nil {
				return nil, err
			}
		}
		if params.Currency == "" {
			params.Currency = s.config.Prices.Currency
		}

		entries, _, err := s.pricesService.SpotPrices(ctx, oneinch_prices.PriceParams{
			ChainID:   params.ChainID,
			Addresses: params.Addresses,
			Currency:  params.Currency,
		})
		if err != nil {
			return nil, err
		}
		return oneinch_prices.PricesResponse{
			ChainID:  params.ChainID,
			Currency: params.Currency,
			Prices:   entries,
		}, nil

	case actionReverseLookup:
		var params batchAddressParams
		if err := json.Unmarshal(operation.Params, &params); err != nil {
			return nil, fmt.Errorf("malformed reverse_lookup params: %w", err)
		}
		if err := oneinch.ValidateAddress(params.Address); err != nil {
			return nil, err
		}

		response, _, err := s.domainsService.ReverseLookup(ctx, params.Address)
		if err != nil {
			return nil, err
		}
		return response, nil

	case actionPortfolio:
		var params batchAddressesParams
		if err := json.Unmarshal(operation.Params, &params); err != nil {
			return nil, fmt.Errorf("malformed portfolio params: %w", err)
		}
		if len(params.Addresses) == 0 {
			return nil, fmt.Errorf("at least one address is required")
		}
		for _, address := range params.Addresses {
			if err := oneinch.ValidateAddress(address); err != nil {
				return nil, err
			}
		}

		response, _, err := s.portfolioService.CurrentValue(ctx, params.Addresses)
		if err != nil {
			return nil, err
		}
		return response, nil

	default:
		return nil, fmt.Errorf("unknown action %q", operation.Action)
	}
}
