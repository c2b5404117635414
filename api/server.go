package api

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/status-im/wallet-proxy/config"
	"github.com/status-im/wallet-proxy/oneinch_domains"
	"github.com/status-im/wallet-proxy/oneinch_gas"
	"github.com/status-im/wallet-proxy/oneinch_history"
	"github.com/status-im/wallet-proxy/oneinch_nft"
	"github.com/status-im/wallet-proxy/oneinch_portfolio"
	"github.com/status-im/wallet-proxy/oneinch_prices"
	"github.com/status-im/wallet-proxy/oneinch_tokens"
	"github.com/status-im/wallet-proxy/oneinch_traces"
)

type Server struct {
	config           *config.Config
	tokensService    *oneinch_tokens.Service
	pricesService    *oneinch_prices.Service
	gasService       *oneinch_gas.Service
	nftService       *oneinch_nft.Service
	portfolioService *oneinch_portfolio.Service
	domainsService   *oneinch_domains.Service
	historyService   *oneinch_history.Service
	tracesService    *oneinch_traces.Service
	server           *http.Server
}

func New(config *config.Config, tokensService *oneinch_tokens.Service, pricesService *oneinch_prices.Service, gasService *oneinch_gas.Service, nftService *oneinch_nft.Service, portfolioService *oneinch_portfolio.Service, domainsService *oneinch_domains.Service, historyService *oneinch_history.Service, tracesService *oneinch_traces.Service) *Server {
	return &Server{
		config:           config,
		tokensService:    tokensService,
		pricesService:    pricesService,
		gasService:       gasService,
		nftService:       nftService,
		portfolioService: portfolioService,
		domainsService:   domainsService,
		historyService:   historyService,
		tracesService:    tracesService,
	}
}

// Router builds the full route table. Split from Start so tests can
// mount the handlers without binding a port.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()

	// Token metadata
	router.HandleFunc("/api/v1/tokens", s.handleTokenList).Methods("GET")
	router.HandleFunc("/api/v1/tokens/search", s.handleTokenSearch).Methods("GET")
	router.HandleFunc("/api/v1/tokens/custom/{address}", s.handleCustomToken).Methods("GET")

	// Market data
	router.HandleFunc("/api/v1/prices", s.handlePrices).Methods("GET")
	router.HandleFunc("/api/v1/gas", s.handleGas).Methods("GET")

	// Wallet data
	router.HandleFunc("/api/v1/nfts", s.handleNFTs).Methods("GET")
	router.HandleFunc("/api/v1/portfolio", s.handlePortfolio).Methods("GET")
	router.HandleFunc("/api/v1/history", s.handleHistory).Methods("GET")

	// Naming
	router.HandleFunc("/api/v1/domains/lookup", s.handleDomainLookup).Methods("GET")
	router.HandleFunc("/api/v1/domains/reverse", s.handleDomainReverse).Methods("GET")

	// Traces
	router.HandleFunc("/api/v1/traces/block/{number}", s.handleBlockTrace).Methods("GET")
	router.HandleFunc("/api/v1/traces/tx/{number}/{hash}", s.handleTransactionTrace).Methods("GET")

	// Batch dispatcher
	router.HandleFunc("/api/v1/batch", s.handleBatch).Methods("POST")

	// Frontend bootstrap and streaming
	router.HandleFunc("/api/v1/app-config", s.handleAppConfig).Methods("GET")
	router.HandleFunc("/api/v1/stream/prices", s.handlePriceStream)

	router.HandleFunc("/health", s.handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	return router
}

func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:    ":" + strconv.Itoa(s.config.Port),
		Handler: s.Router(),
	}

	log.Printf("Server starting at http://localhost:%d", s.config.Port)
	log.Println("Prometheus metrics available at /metrics endpoint")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return nil
}
