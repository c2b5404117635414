package config

import (
	"fmt"
	"os"
)

// Credentials holds secrets resolved from the environment rather than the
// config file
type Credentials struct {
	// APIKey is the aggregator portal bearer token
	APIKey string
	// WalletConnectProjectID is handed to the dashboard frontend via the
	// app-config endpoint
	WalletConnectProjectID string
}

// LoadCredentials reads required secrets from the environment. Both values
// are mandatory; returning an error here aborts startup.
func LoadCredentials() (Credentials, error) {
	apiKey := os.Getenv(APIKeyEnvVar)
	if apiKey == "" {
		return Credentials{}, fmt.Errorf("environment variable %s is required", APIKeyEnvVar)
	}

	projectID := os.Getenv(WalletConnectProjectEnvVar)
	if projectID == "" {
		return Credentials{}, fmt.Errorf("environment variable %s is required", WalletConnectProjectEnvVar)
	}

	return Credentials{
		APIKey:                 apiKey,
		WalletConnectProjectID: projectID,
	}, nil
}
