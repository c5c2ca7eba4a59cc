package ethereum

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

// Wallet JSON-RPC methods.
const (
	MethodRequestAccounts = "eth_requestAccounts"
	MethodAccounts        = "eth_accounts"
	MethodChainID         = "eth_chainId"
	MethodSwitchChain     = "wallet_switchEthereumChain"
	MethodAddChain        = "wallet_addEthereumChain"
	MethodSendTransaction = "eth_sendTransaction"
)

// Provider events.
const (
	EventAccountsChanged = "accountsChanged"
	EventChainChanged    = "chainChanged"
)

// RPCProvider talks to a wallet over JSON-RPC. A plain JSON-RPC endpoint cannot push wallet
// events, so accountsChanged and chainChanged are derived by polling eth_accounts and
// eth_chainId while at least one listener is registered.
type RPCProvider struct {
	logs     *zap.SugaredLogger
	client   RPCClient
	interval time.Duration

	mu        sync.Mutex
	listeners map[string]map[uint64]func(payload json.RawMessage)
	nextID    uint64
	stop      chan struct{}
	closed    bool
}

func NewRPCProvider(logger *zap.SugaredLogger, client RPCClient, pollInterval time.Duration) *RPCProvider {
	return &RPCProvider{
		logs:      logger,
		client:    client,
		interval:  pollInterval,
		listeners: make(map[string]map[uint64]func(payload json.RawMessage)),
	}
}

// DialProvider connects to the wallet endpoint at rawURL.
func DialProvider(ctx context.Context, logger *zap.SugaredLogger, rawURL string, pollInterval time.Duration) (*RPCProvider, *rpc.Client, error) {
	client, err := rpc.DialContext(ctx, rawURL)
	if err != nil {
		return nil, nil, fmt.Errorf("dial wallet provider: %w", err)
	}
	return NewRPCProvider(logger, client, pollInterval), client, nil
}

// Request performs a single JSON-RPC call. result may be nil when the response is ignored.
func (p *RPCProvider) Request(ctx context.Context, result any, method string, params ...any) error {
	if err := p.client.CallContext(ctx, result, method, params...); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return nil
}

// On registers handler for event and returns a function removing it again.
func (p *RPCProvider) On(event string, handler func(payload json.RawMessage)) (remove func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return func() {}
	}

	if p.listeners[event] == nil {
		p.listeners[event] = make(map[uint64]func(payload json.RawMessage))
	}
	p.nextID++
	id := p.nextID
	p.listeners[event][id] = handler

	if p.stop == nil {
		p.stop = make(chan struct{})
		go p.run(p.stop)
	}

	return func() {
		p.removeListener(event, id)
	}
}

// Close stops polling and closes the underlying client.
func (p *RPCProvider) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.listeners = make(map[string]map[uint64]func(payload json.RawMessage))
	p.stopPolling()
	p.mu.Unlock()

	p.client.Close()
}

func (p *RPCProvider) removeListener(event string, id uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.listeners[event], id)
	if len(p.listeners[event]) == 0 {
		delete(p.listeners, event)
	}
	if len(p.listeners) == 0 {
		p.stopPolling()
	}
}

// stopPolling must be called with p.mu held.
func (p *RPCProvider) stopPolling() {
	if p.stop != nil {
		close(p.stop)
		p.stop = nil
	}
}

type pollState struct {
	accounts       []string
	accountsPrimed bool
	chainID        string
	chainPrimed    bool
}

func (p *RPCProvider) run(stop <-chan struct{}) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		select {
		case <-stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var state pollState
	p.poll(ctx, &state)
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			p.poll(ctx, &state)
		}
	}
}

// poll compares the wallet state with the previous observation and emits events for changes.
// The first successful observation only establishes the baseline.
func (p *RPCProvider) poll(ctx context.Context, state *pollState) {
	var accounts []string
	if err := p.client.CallContext(ctx, &accounts, MethodAccounts); err != nil {
		if ctx.Err() == nil {
			p.logs.Warnw("failed to poll wallet accounts", "error", err)
		}
	} else {
		if accounts == nil {
			accounts = []string{}
		}
		if state.accountsPrimed && !sameAccounts(state.accounts, accounts) {
			p.emit(EventAccountsChanged, accounts)
		}
		state.accounts = accounts
		state.accountsPrimed = true
	}

	var chainID string
	if err := p.client.CallContext(ctx, &chainID, MethodChainID); err != nil {
		if ctx.Err() == nil {
			p.logs.Warnw("failed to poll wallet chain id", "error", err)
		}
	} else {
		if state.chainPrimed && !strings.EqualFold(state.chainID, chainID) {
			p.emit(EventChainChanged, chainID)
		}
		state.chainID = chainID
		state.chainPrimed = true
	}
}

func (p *RPCProvider) emit(event string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		p.logs.Errorw("failed to encode provider event", "error", err, "event", event)
		return
	}

	p.mu.Lock()
	handlers := make([]func(payload json.RawMessage), 0, len(p.listeners[event]))
	for _, h := range p.listeners[event] {
		handlers = append(handlers, h)
	}
	p.mu.Unlock()

	for _, h := range handlers {
		h(payload)
	}
}

func sameAccounts(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}
