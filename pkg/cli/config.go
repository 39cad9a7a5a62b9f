package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/erc3/erc3-go/pkg/client"
)

// Environment variables consumed at the CLI boundary. The library layer
// never reads the environment; configuration is resolved here and passed
// down explicitly.
const (
	EnvAPIKey  = "ERC3_API_KEY"
	EnvBaseURL = "ERC3_BASE_URL"
)

// loadEnvConfig resolves client configuration from the process environment,
// after giving a local .env file a chance to fill it in. Variables already
// set in the environment win over the file.
func loadEnvConfig() (client.Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return client.Config{}, fmt.Errorf("%s must be set (or provided in a .env file)", EnvAPIKey)
	}

	return client.Config{
		APIKey:  apiKey,
		BaseURL: os.Getenv(EnvBaseURL),
	}, nil
}

// clientFromEnv builds the core client every authenticated command uses.
func clientFromEnv() (*client.Client, error) {
	cfg, err := loadEnvConfig()
	if err != nil {
		return nil, err
	}
	return client.New(cfg)
}

// baseURLFromEnv resolves the base URL alone, for the unauthenticated
// get-key helper.
func baseURLFromEnv() string {
	_ = godotenv.Load()
	return os.Getenv(EnvBaseURL)
}
