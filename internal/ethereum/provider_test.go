package ethereum_test

import (
	"codemart/internal/ethereum"
	"codemart/internal/ethereum/fake"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

// walletState is what the fake wallet reports to eth_accounts and eth_chainId.
type walletState struct {
	mu       sync.Mutex
	accounts []string
	chainID  string
}

func (w *walletState) set(accounts []string, chainID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.accounts = accounts
	w.chainID = chainID
}

func (w *walletState) call(_ context.Context, result any, method string, _ ...any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch method {
	case ethereum.MethodAccounts:
		accounts := make([]string, len(w.accounts))
		copy(accounts, w.accounts)
		*result.(*[]string) = accounts
	case ethereum.MethodChainID:
		*result.(*string) = w.chainID
	}
	return nil
}

var _ = Describe("RPCProvider", func() {
	var (
		provider   *ethereum.RPCProvider
		fakeClient *fake.RPCClient
		wallet     *walletState
		ctx        context.Context
	)

	BeforeEach(func() {
		fakeClient = new(fake.RPCClient)
		wallet = &walletState{accounts: []string{"0xaaa"}, chainID: "0xaa36a7"}
		fakeClient.CallContextStub = wallet.call
		ctx = context.Background()

		provider = ethereum.NewRPCProvider(zap.NewNop().Sugar(), fakeClient, 5*time.Millisecond)
	})

	AfterEach(func() {
		provider.Close()
	})

	Describe("Request", func() {
		It("should pass the call through", func() {
			var chainID string
			Expect(provider.Request(ctx, &chainID, ethereum.MethodChainID)).To(Succeed())
			Expect(chainID).To(Equal("0xaa36a7"))
		})

		It("should keep the wallet error code", func() {
			fakeClient.CallContextStub = nil
			fakeClient.CallContextReturns(&ethereum.ProviderError{Code: ethereum.CodeUserRejected, Message: "rejected"})

			err := provider.Request(ctx, nil, ethereum.MethodRequestAccounts)
			Expect(err).To(MatchError(ContainSubstring("eth_requestAccounts")))
			Expect(ethereum.IsUserRejection(err)).To(BeTrue())
		})

		It("should forward params", func() {
			fakeClient.CallContextStub = nil
			params := map[string]string{"chainId": "0xaa36a7"}

			Expect(provider.Request(ctx, nil, ethereum.MethodSwitchChain, params)).To(Succeed())
			_, _, method, args := fakeClient.CallContextArgsForCall(0)
			Expect(method).To(Equal(ethereum.MethodSwitchChain))
			Expect(args).To(Equal([]any{params}))
		})
	})

	Describe("On", func() {
		var (
			mu     sync.Mutex
			events []string
		)

		received := func() []string {
			mu.Lock()
			defer mu.Unlock()
			return append([]string(nil), events...)
		}

		BeforeEach(func() {
			mu.Lock()
			events = nil
			mu.Unlock()
		})

		It("should not poll without listeners", func() {
			Consistently(fakeClient.CallContextCallCount, 30*time.Millisecond).Should(Equal(0))
		})

		It("should emit account changes but not the initial state", func() {
			provider.On(ethereum.EventAccountsChanged, func(payload json.RawMessage) {
				mu.Lock()
				defer mu.Unlock()
				events = append(events, string(payload))
			})

			Eventually(fakeClient.CallContextCallCount).Should(BeNumerically(">=", 2))
			Consistently(received, 20*time.Millisecond).Should(BeEmpty())

			wallet.set([]string{"0xbbb"}, "0xaa36a7")
			Eventually(received).Should(Equal([]string{`["0xbbb"]`}))

			wallet.set(nil, "0xaa36a7")
			Eventually(received).Should(Equal([]string{`["0xbbb"]`, `[]`}))
		})

		It("should emit chain changes", func() {
			provider.On(ethereum.EventChainChanged, func(payload json.RawMessage) {
				mu.Lock()
				defer mu.Unlock()
				events = append(events, string(payload))
			})
			Eventually(fakeClient.CallContextCallCount).Should(BeNumerically(">=", 2))

			wallet.set([]string{"0xaaa"}, "0x1")
			Eventually(received).Should(Equal([]string{`"0x1"`}))
		})

		It("should stop polling once the last listener is removed", func() {
			remove := provider.On(ethereum.EventChainChanged, func(json.RawMessage) {})
			Eventually(fakeClient.CallContextCallCount).Should(BeNumerically(">", 0))

			remove()
			time.Sleep(20 * time.Millisecond)
			calls := fakeClient.CallContextCallCount()
			Consistently(fakeClient.CallContextCallCount, 30*time.Millisecond).Should(Equal(calls))
		})

		It("should keep polling through errors", func() {
			var failed sync.Once
			fakeClient.CallContextStub = func(ctx context.Context, result any, method string, args ...any) error {
				var err error
				failed.Do(func() { err = errors.New("connection reset") })
				if err != nil {
					return err
				}
				return wallet.call(ctx, result, method, args...)
			}

			provider.On(ethereum.EventChainChanged, func(payload json.RawMessage) {
				mu.Lock()
				defer mu.Unlock()
				events = append(events, string(payload))
			})
			Eventually(fakeClient.CallContextCallCount).Should(BeNumerically(">=", 4))

			wallet.set([]string{"0xaaa"}, "0x5")
			Eventually(received).Should(Equal([]string{`"0x5"`}))
		})
	})

	Describe("Close", func() {
		It("should close the client once", func() {
			provider.Close()
			provider.Close()
			Expect(fakeClient.CloseCallCount()).To(Equal(1))
		})

		It("should ignore listeners registered afterwards", func() {
			provider.Close()
			remove := provider.On(ethereum.EventAccountsChanged, func(json.RawMessage) {})
			remove()
			Consistently(fakeClient.CallContextCallCount, 20*time.Millisecond).Should(Equal(0))
		})
	})
})
