package wallet

import (
	"codemart/internal/ethereum"
	"codemart/internal/notify"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

const installURL = "https://metamask.io/download.html"

// Connection is the outcome of a connect attempt. NetworkErr records a failed attempt to move
// the wallet onto the target network; it does not invalidate Account.
type Connection struct {
	Account         string
	ChainID         string
	OnTargetNetwork bool
	NetworkErr      error
}

type AccountChange struct {
	Account   string
	Connected bool
}

type NetworkChange struct {
	ChainID         string
	OnTargetNetwork bool
}

// Unsubscribe removes a subscription. Calling it more than once is safe.
type Unsubscribe func()

type switchChainParams struct {
	ChainID string `json:"chainId"`
}

// Connector wraps the wallet provider: detection, account access, network correction and
// change notifications.
type Connector struct {
	logs     *zap.SugaredLogger
	provider Provider
	notifier Notifier
	network  ethereum.Network
}

// NewConnector builds a connector. provider may be nil when no wallet is configured.
func NewConnector(logger *zap.SugaredLogger, provider Provider, notifier Notifier, network ethereum.Network) *Connector {
	return &Connector{
		logs:     logger,
		provider: provider,
		notifier: notifier,
		network:  network,
	}
}

func (c *Connector) IsAvailable() bool {
	return c.provider != nil
}

func (c *Connector) Network() ethereum.Network {
	return c.network
}

// ConnectedAccount returns the first already-authorized account without prompting the user.
// Provider errors are logged and reported as no account.
func (c *Connector) ConnectedAccount(ctx context.Context) (string, bool) {
	if !c.IsAvailable() {
		return "", false
	}

	var accounts []string
	if err := c.provider.Request(ctx, &accounts, ethereum.MethodAccounts); err != nil {
		c.logs.Errorw("failed to get wallet accounts", "error", err)
		return "", false
	}

	if len(accounts) == 0 {
		return "", false
	}
	return accounts[0], true
}

// ChainID returns the network the wallet is currently on.
func (c *Connector) ChainID(ctx context.Context) (string, error) {
	if !c.IsAvailable() {
		return "", ErrProviderUnavailable
	}

	var chainID string
	if err := c.provider.Request(ctx, &chainID, ethereum.MethodChainID); err != nil {
		return "", fmt.Errorf("get chain id: %w", err)
	}
	return chainID, nil
}

// Connect asks the wallet for account access and then tries to move it onto the target
// network. Network problems are notified and recorded in Connection.NetworkErr but do not fail
// the connection.
func (c *Connector) Connect(ctx context.Context) (Connection, error) {
	if !c.IsAvailable() {
		c.notifier.Notify(notify.Notification{
			Level:       notify.Error,
			Title:       "Wallet provider is not available!",
			Description: "Please install a wallet extension or set ETH_PROVIDER_URL to continue.",
			Link:        installURL,
		})
		return Connection{}, ErrProviderUnavailable
	}

	var accounts []string
	if err := c.provider.Request(ctx, &accounts, ethereum.MethodRequestAccounts); err != nil {
		c.logs.Errorw("failed to request wallet accounts", "error", err)
		if ethereum.IsUserRejection(err) {
			c.notifier.Notify(notify.Notification{
				Level:       notify.Error,
				Title:       "Connection rejected",
				Description: "You rejected the connection request in your wallet.",
			})
			return Connection{}, fmt.Errorf("request accounts: %w: %w", ErrUserRejected, err)
		}
		c.notifyConnectFailed()
		return Connection{}, fmt.Errorf("request accounts: %w: %w", ErrConnectFailed, err)
	}

	chainID, err := c.ChainID(ctx)
	if err != nil {
		c.logs.Errorw("failed to read wallet chain id", "error", err)
		c.notifyConnectFailed()
		return Connection{}, fmt.Errorf("%w: %w", ErrConnectFailed, err)
	}

	conn := Connection{
		ChainID:         chainID,
		OnTargetNetwork: c.network.Matches(chainID),
	}

	if !conn.OnTargetNetwork {
		c.logs.Warnw("wallet is on the wrong network", "chain_id", chainID, "target_chain_id", c.network.ChainID)
		c.notifier.Notify(notify.Notification{
			Level:       notify.Warning,
			Title:       "Wrong network",
			Description: fmt.Sprintf("Switching your wallet to %s.", c.network.ChainName),
		})
		conn.NetworkErr = c.ensureNetwork(ctx)
		if conn.NetworkErr == nil {
			conn.ChainID = c.network.ChainID
			conn.OnTargetNetwork = true
		}
	}

	if len(accounts) == 0 {
		return conn, ErrNoAccounts
	}
	conn.Account = accounts[0]

	c.notifier.Notify(notify.Notification{
		Level:       notify.Success,
		Title:       "Wallet connected!",
		Description: fmt.Sprintf("Connected to %s", FormatAddress(conn.Account)),
	})
	c.logs.Infow("wallet connected", "account", conn.Account, "chain_id", conn.ChainID, "on_target_network", conn.OnTargetNetwork)

	return conn, nil
}

// ensureNetwork switches the wallet to the target network, registering the network first when
// the wallet does not know it.
func (c *Connector) ensureNetwork(ctx context.Context) error {
	err := c.switchNetwork(ctx)
	if err == nil {
		return nil
	}

	if ethereum.IsUnrecognizedChain(err) {
		if addErr := c.provider.Request(ctx, nil, ethereum.MethodAddChain, c.network); addErr != nil {
			c.logs.Errorw("failed to add network", "error", addErr, "chain_id", c.network.ChainID)
			c.notifier.Notify(notify.Notification{
				Level:       notify.Error,
				Title:       fmt.Sprintf("Failed to add %s to your wallet", c.network.ChainName),
				Description: "Please add the network manually.",
			})
			return fmt.Errorf("%w: %w", ErrNetworkRegistrationFailed, addErr)
		}

		if err = c.switchNetwork(ctx); err == nil {
			return nil
		}
	}

	c.logs.Errorw("failed to switch network", "error", err, "chain_id", c.network.ChainID)
	c.notifier.Notify(notify.Notification{
		Level:       notify.Error,
		Title:       fmt.Sprintf("Failed to switch to %s", c.network.ChainName),
		Description: "Please switch networks manually.",
	})
	return fmt.Errorf("%w: %w", ErrNetworkSwitchFailed, err)
}

func (c *Connector) switchNetwork(ctx context.Context) error {
	return c.provider.Request(ctx, nil, ethereum.MethodSwitchChain, switchChainParams{ChainID: c.network.ChainID})
}

func (c *Connector) notifyConnectFailed() {
	c.notifier.Notify(notify.Notification{
		Level:       notify.Error,
		Title:       "Failed to connect wallet",
		Description: "There was an error connecting to your wallet.",
	})
}

// SubscribeAccountChanges calls cb whenever the wallet's primary account changes. An empty
// account list is reported as a disconnect.
func (c *Connector) SubscribeAccountChanges(cb func(AccountChange)) Unsubscribe {
	if !c.IsAvailable() {
		return func() {}
	}

	remove := c.provider.On(ethereum.EventAccountsChanged, func(payload json.RawMessage) {
		var accounts []string
		if err := json.Unmarshal(payload, &accounts); err != nil {
			c.logs.Errorw("failed to decode accounts event", "error", err)
			return
		}

		if len(accounts) == 0 {
			cb(AccountChange{})
			c.notifier.Notify(notify.Notification{Level: notify.Info, Title: "Wallet disconnected"})
			return
		}

		cb(AccountChange{Account: accounts[0], Connected: true})
		c.notifier.Notify(notify.Notification{
			Level:       notify.Info,
			Title:       "Account changed",
			Description: fmt.Sprintf("Now connected to %s", FormatAddress(accounts[0])),
		})
	})

	return once(remove)
}

// SubscribeNetworkChanges calls cb whenever the wallet switches networks.
func (c *Connector) SubscribeNetworkChanges(cb func(NetworkChange)) Unsubscribe {
	if !c.IsAvailable() {
		return func() {}
	}

	remove := c.provider.On(ethereum.EventChainChanged, func(payload json.RawMessage) {
		var chainID string
		if err := json.Unmarshal(payload, &chainID); err != nil {
			c.logs.Errorw("failed to decode chain event", "error", err)
			return
		}

		change := NetworkChange{ChainID: chainID, OnTargetNetwork: c.network.Matches(chainID)}
		cb(change)

		if change.OnTargetNetwork {
			c.notifier.Notify(notify.Notification{
				Level: notify.Success,
				Title: fmt.Sprintf("Connected to %s", c.network.ChainName),
			})
			return
		}
		c.notifier.Notify(notify.Notification{
			Level:       notify.Warning,
			Title:       "Network changed",
			Description: fmt.Sprintf("Please switch to %s for this application.", c.network.ChainName),
		})
	})

	return once(remove)
}

// WatchAccounts exposes account changes as a channel that is closed once ctx is done.
func (c *Connector) WatchAccounts(ctx context.Context) <-chan AccountChange {
	return watch(ctx, c.SubscribeAccountChanges)
}

// WatchNetwork exposes network changes as a channel that is closed once ctx is done.
func (c *Connector) WatchNetwork(ctx context.Context) <-chan NetworkChange {
	return watch(ctx, c.SubscribeNetworkChanges)
}

func watch[T any](ctx context.Context, subscribe func(func(T)) Unsubscribe) <-chan T {
	out := make(chan T)

	var mu sync.Mutex
	closed := false

	unsubscribe := subscribe(func(change T) {
		mu.Lock()
		defer mu.Unlock()
		if closed {
			return
		}
		select {
		case out <- change:
		case <-ctx.Done():
		}
	})

	go func() {
		<-ctx.Done()
		unsubscribe()

		mu.Lock()
		closed = true
		close(out)
		mu.Unlock()
	}()

	return out
}

func once(remove func()) Unsubscribe {
	var o sync.Once
	return func() {
		o.Do(remove)
	}
}
