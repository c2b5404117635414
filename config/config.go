package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables required at startup. Absence of either is a fatal
// configuration error.
const (
	APIKeyEnvVar               = "PROXY_API_KEY"
	WalletConnectProjectEnvVar = "WALLETCONNECT_PROJECT_ID"
)

type Config struct {
	Port int `yaml:"port"`

	// OverrideAggregatorURL replaces the default upstream base URL,
	// used by tests and local mock setups
	OverrideAggregatorURL string `yaml:"override_aggregator_url"`

	Tokens    TokensFetcher    `yaml:"tokens"`
	Prices    PricesFetcher    `yaml:"prices"`
	Gas       GasFetcher       `yaml:"gas"`
	NFT       NFTFetcher       `yaml:"nft"`
	Portfolio PortfolioFetcher `yaml:"portfolio"`
	Domains   DomainsFetcher   `yaml:"domains"`
	History   HistoryFetcher   `yaml:"history"`
	Traces    TracesFetcher    `yaml:"traces"`

	Batch     BatchConfig     `yaml:"batch"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Cache     CacheConfig     `yaml:"cache"`

	Credentials Credentials `yaml:"-"`
}

// LoadConfig reads the yaml config file and resolves credentials from the
// environment
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	if config.Port == 0 {
		config.Port = 8080
	}

	credentials, err := LoadCredentials()
	if err != nil {
		return nil, fmt.Errorf("loading credentials: %w", err)
	}
	config.Credentials = credentials

	return &config, nil
}
