package cmd

import (
	"codemart/internal/config"
	"codemart/internal/core"
	"codemart/internal/db"
	"codemart/internal/ethereum"
	"codemart/internal/listing"
	"codemart/internal/notify"
	"codemart/internal/repository"
	"codemart/internal/wallet"
	"codemart/pkg/log"
	"context"
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/ethdb/leveldb"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

const (
	listingsCache   = 16
	listingsHandles = 16
)

type needs struct {
	purchases bool
	receipts  bool
	// node fails the command when no node is configured to read receipts.
	node bool
}

// app holds the services a command runs against.
type app struct {
	logs      *zap.SugaredLogger
	connector *wallet.Connector
	market    *core.Marketplace
	closers   []func()
}

// openApp builds the services for a command.
var openApp = newApp

func newApp(ctx context.Context, n needs) (*app, error) {
	cfg, err := config.NewApp()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if n.node {
		if err := cfg.RequireNode(); err != nil {
			return nil, err
		}
	}

	logger := log.NewZapLogger("codemart", log.ParseLevel(cfg.LogLevel))
	a := &app{logs: logger}

	notifier := notify.NewConsole(logger, os.Stdout)

	var provider wallet.Provider
	var providerClient *rpc.Client
	if cfg.ProviderURL != "" {
		var rpcProvider *ethereum.RPCProvider
		rpcProvider, providerClient, err = ethereum.DialProvider(ctx, logger, cfg.ProviderURL, cfg.PollInterval)
		if err != nil {
			logger.Errorw("failed to dial wallet provider", "error", err, "url", cfg.ProviderURL)
			a.Close()
			return nil, err
		}
		provider = rpcProvider
		a.closers = append(a.closers, rpcProvider.Close)
	}

	a.connector = wallet.NewConnector(logger, provider, notifier, ethereum.Sepolia)
	submitter := wallet.NewSubmitter(logger, provider, notifier, ethereum.Sepolia)

	kv, err := leveldb.New(cfg.ListingsPath, listingsCache, listingsHandles, "codemart/listings/", false)
	if err != nil {
		logger.Errorw("failed to open listings database", "error", err, "path", cfg.ListingsPath)
		a.Close()
		return nil, fmt.Errorf("open listings: %w", err)
	}
	a.closers = append(a.closers, func() {
		if err := kv.Close(); err != nil {
			logger.Errorw("failed to close listings database", "error", err)
		}
	})
	store := listing.NewStore(kv)

	var repo core.PurchaseRepository
	if n.purchases {
		if err := cfg.RequireDatabase(); err != nil {
			a.Close()
			return nil, err
		}

		dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
		if err != nil {
			logger.Errorw("failed to connect to database", "error", err)
			a.Close()
			return nil, err
		}

		purchases := repository.NewPurchaseRepository(dbConn)
		if err := purchases.MigrateTables(); err != nil {
			logger.Errorw("failed to migrate tables to database", "error", err)
			a.Close()
			return nil, err
		}
		repo = purchases
	}

	var transfers core.TransferReader
	switch {
	case !(n.receipts || n.node) || cfg.NodeURL == "":
	case cfg.NodeURL == cfg.ProviderURL && providerClient != nil:
		// the provider owns the connection and closes it
		transfers = ethereum.NewReceiptService(ethclient.NewClient(providerClient))
	default:
		client, err := ethclient.DialContext(ctx, cfg.NodeURL)
		if err != nil {
			logger.Errorw("node connection failed", "error", err, "url", cfg.NodeURL)
			a.Close()
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		transfers = ethereum.NewReceiptService(client)
	}

	a.market = core.NewMarketplace(logger, submitter, repo, store, transfers, notifier, ethereum.Sepolia)

	return a, nil
}

// Close releases everything in reverse order of creation.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
	_ = a.logs.Sync()
}

// account connects the wallet and returns the active account.
func (a *app) account(ctx context.Context) (string, error) {
	conn, err := a.connector.Connect(ctx)
	if err != nil {
		return "", err
	}
	if conn.NetworkErr != nil {
		a.logs.Warnw("continuing on the wrong network", "error", conn.NetworkErr, "chain_id", conn.ChainID)
	}
	return conn.Account, nil
}
