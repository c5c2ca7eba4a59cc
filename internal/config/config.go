package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var ErrEnvVarNotFound error = errors.New("environment variable not found")

const (
	providerURLEnvKey  = "ETH_PROVIDER_URL"
	ethNodeEnvKey      = "ETH_NODE_URL"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	listingsPathEnvKey = "LISTINGS_DB_PATH"
	pollIntervalEnvKey = "PROVIDER_POLL_INTERVAL"
	logLevelEnvKey     = "LOG_LEVEL"
)

const (
	defaultListingsPath = "data/listings"
	defaultPollInterval = 4 * time.Second
	defaultLogLevel     = "info"
)

type App struct {
	// ProviderURL is the wallet JSON-RPC endpoint. Empty means no wallet is available.
	ProviderURL string
	// NodeURL is used to read receipts. Falls back to ProviderURL.
	NodeURL         string
	DBConnectionURL string
	ListingsPath    string
	PollInterval    time.Duration
	LogLevel        string
}

// NewApp reads the application configuration from the environment. A .env file in the
// working directory is loaded first when present; variables already set take precedence.
func NewApp() (App, error) {
	_ = godotenv.Load()

	app := App{
		ListingsPath: defaultListingsPath,
		PollInterval: defaultPollInterval,
		LogLevel:     defaultLogLevel,
	}

	if providerURL, ok := os.LookupEnv(providerURLEnvKey); ok {
		app.ProviderURL = providerURL
	}

	app.NodeURL = app.ProviderURL
	if nodeURL, ok := os.LookupEnv(ethNodeEnvKey); ok && nodeURL != "" {
		app.NodeURL = nodeURL
	}

	if dbConn, ok := os.LookupEnv(dbConnEnvKey); ok {
		app.DBConnectionURL = dbConn
	}

	if path, ok := os.LookupEnv(listingsPathEnvKey); ok && path != "" {
		app.ListingsPath = path
	}

	if interval, ok := os.LookupEnv(pollIntervalEnvKey); ok && interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return App{}, fmt.Errorf("parse %s: %w", pollIntervalEnvKey, err)
		}
		if d <= 0 {
			return App{}, fmt.Errorf("%s must be positive, got %s", pollIntervalEnvKey, d)
		}
		app.PollInterval = d
	}

	if level, ok := os.LookupEnv(logLevelEnvKey); ok && level != "" {
		app.LogLevel = level
	}

	return app, nil
}

// RequireDatabase reports whether the purchase record database is configured.
func (a App) RequireDatabase() error {
	if a.DBConnectionURL == "" {
		return fmt.Errorf("%w: %s", ErrEnvVarNotFound, dbConnEnvKey)
	}
	return nil
}

// RequireNode reports whether a node endpoint for receipts is configured.
func (a App) RequireNode() error {
	if a.NodeURL == "" {
		return fmt.Errorf("%w: %s or %s", ErrEnvVarNotFound, ethNodeEnvKey, providerURLEnvKey)
	}
	return nil
}
