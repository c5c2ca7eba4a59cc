package wallet_test

import (
	"codemart/internal/ethereum"
	"codemart/internal/notify"
	"codemart/internal/wallet"
	"codemart/internal/wallet/fake"
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

// walletResponses scripts the fake provider's answers per method.
type walletResponses struct {
	accounts    []string
	accountsErr error
	chainID     string
	chainErr    error
	switchErrs  []error
	addErr      error
	txHash      string
	sendErr     error

	switchCalls int
}

func (w *walletResponses) request(_ context.Context, result any, method string, _ ...any) error {
	switch method {
	case ethereum.MethodRequestAccounts, ethereum.MethodAccounts:
		if w.accountsErr != nil {
			return w.accountsErr
		}
		*result.(*[]string) = w.accounts
	case ethereum.MethodChainID:
		if w.chainErr != nil {
			return w.chainErr
		}
		*result.(*string) = w.chainID
	case ethereum.MethodSwitchChain:
		call := w.switchCalls
		w.switchCalls++
		if call < len(w.switchErrs) {
			return w.switchErrs[call]
		}
	case ethereum.MethodAddChain:
		return w.addErr
	case ethereum.MethodSendTransaction:
		if w.sendErr != nil {
			return w.sendErr
		}
		*result.(*string) = w.txHash
	}
	return nil
}

func methodsCalled(p *fake.Provider) []string {
	methods := make([]string, p.RequestCallCount())
	for i := range methods {
		_, _, methods[i], _ = p.RequestArgsForCall(i)
	}
	return methods
}

var _ = Describe("Connector", func() {
	var (
		fakeProvider *fake.Provider
		fakeNotifier *fake.Notifier
		responses    *walletResponses
		ctx          context.Context

		connector *wallet.Connector
	)

	BeforeEach(func() {
		fakeProvider = new(fake.Provider)
		fakeNotifier = new(fake.Notifier)
		responses = &walletResponses{
			accounts: []string{"0x1234567890abcdef1234567890abcdef12345678"},
			chainID:  "0xaa36a7",
		}
		fakeProvider.RequestStub = responses.request
		ctx = context.Background()

		connector = wallet.NewConnector(zap.NewNop().Sugar(), fakeProvider, fakeNotifier, ethereum.Sepolia)
	})

	When("no provider is available", func() {
		BeforeEach(func() {
			connector = wallet.NewConnector(zap.NewNop().Sugar(), nil, fakeNotifier, ethereum.Sepolia)
		})

		It("should report no connected account", func() {
			Expect(connector.IsAvailable()).To(BeFalse())
			account, ok := connector.ConnectedAccount(ctx)
			Expect(ok).To(BeFalse())
			Expect(account).To(BeEmpty())
		})

		It("should fail to connect and point to an install page", func() {
			_, err := connector.Connect(ctx)
			Expect(err).To(MatchError(wallet.ErrProviderUnavailable))
			Expect(fakeNotifier.NotifyCallCount()).To(Equal(1))
			n := fakeNotifier.NotifyArgsForCall(0)
			Expect(n.Level).To(Equal(notify.Error))
			Expect(n.Link).NotTo(BeEmpty())
		})

		It("should hand out no-op subscriptions", func() {
			unsubscribe := connector.SubscribeAccountChanges(func(wallet.AccountChange) {})
			Expect(unsubscribe).NotTo(BeNil())
			unsubscribe()
		})
	})

	Describe("ConnectedAccount", func() {
		It("should return the first account without prompting", func() {
			responses.accounts = []string{"0xaaa", "0xbbb"}
			account, ok := connector.ConnectedAccount(ctx)
			Expect(ok).To(BeTrue())
			Expect(account).To(Equal("0xaaa"))
			Expect(methodsCalled(fakeProvider)).To(Equal([]string{ethereum.MethodAccounts}))
		})

		It("should report none for an empty list", func() {
			responses.accounts = []string{}
			_, ok := connector.ConnectedAccount(ctx)
			Expect(ok).To(BeFalse())
		})

		It("should fail soft on provider errors", func() {
			responses.accountsErr = errors.New("boom")
			_, ok := connector.ConnectedAccount(ctx)
			Expect(ok).To(BeFalse())
		})
	})

	Describe("Connect", func() {
		var (
			conn wallet.Connection
			err  error
		)

		JustBeforeEach(func() {
			conn, err = connector.Connect(ctx)
		})

		When("the wallet is already on the target network", func() {
			It("should connect without switching", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(conn.Account).To(Equal("0x1234567890abcdef1234567890abcdef12345678"))
				Expect(conn.OnTargetNetwork).To(BeTrue())
				Expect(conn.NetworkErr).NotTo(HaveOccurred())
				Expect(methodsCalled(fakeProvider)).To(Equal([]string{ethereum.MethodRequestAccounts, ethereum.MethodChainID}))

				n := fakeNotifier.NotifyArgsForCall(fakeNotifier.NotifyCallCount() - 1)
				Expect(n.Level).To(Equal(notify.Success))
				Expect(n.Description).To(ContainSubstring("0x1234...5678"))
			})
		})

		When("the user rejects the request", func() {
			BeforeEach(func() {
				responses.accountsErr = &ethereum.ProviderError{Code: ethereum.CodeUserRejected, Message: "User rejected the request."}
			})

			It("should return ErrUserRejected", func() {
				Expect(err).To(MatchError(wallet.ErrUserRejected))
				Expect(conn.Account).To(BeEmpty())
			})
		})

		When("the account request fails otherwise", func() {
			BeforeEach(func() {
				responses.accountsErr = errors.New("internal error")
			})

			It("should return ErrConnectFailed", func() {
				Expect(err).To(MatchError(wallet.ErrConnectFailed))
				Expect(err).NotTo(MatchError(wallet.ErrUserRejected))
			})
		})

		When("the wallet has no accounts", func() {
			BeforeEach(func() {
				responses.accounts = []string{}
			})

			It("should return ErrNoAccounts", func() {
				Expect(err).To(MatchError(wallet.ErrNoAccounts))
			})
		})

		When("the wallet is on another network", func() {
			BeforeEach(func() {
				responses.chainID = "0x1"
			})

			It("should switch to the target network", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(conn.OnTargetNetwork).To(BeTrue())
				Expect(conn.ChainID).To(Equal("0xaa36a7"))
				Expect(methodsCalled(fakeProvider)).To(Equal([]string{
					ethereum.MethodRequestAccounts,
					ethereum.MethodChainID,
					ethereum.MethodSwitchChain,
				}))

				_, _, _, params := fakeProvider.RequestArgsForCall(2)
				Expect(params).To(HaveLen(1))
				raw, _ := json.Marshal(params[0])
				Expect(raw).To(MatchJSON(`{"chainId":"0xaa36a7"}`))

				Expect(fakeNotifier.NotifyArgsForCall(0).Level).To(Equal(notify.Warning))
			})

			When("the wallet does not know the network", func() {
				BeforeEach(func() {
					responses.switchErrs = []error{&ethereum.ProviderError{Code: ethereum.CodeUnrecognizedChain, Message: "Unrecognized chain ID"}}
				})

				It("should add the network and switch again", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(conn.OnTargetNetwork).To(BeTrue())
					Expect(methodsCalled(fakeProvider)).To(Equal([]string{
						ethereum.MethodRequestAccounts,
						ethereum.MethodChainID,
						ethereum.MethodSwitchChain,
						ethereum.MethodAddChain,
						ethereum.MethodSwitchChain,
					}))

					_, _, _, params := fakeProvider.RequestArgsForCall(3)
					Expect(params).To(Equal([]any{ethereum.Sepolia}))
				})

				When("adding the network fails", func() {
					BeforeEach(func() {
						responses.addErr = errors.New("add failed")
					})

					It("should still return the account", func() {
						Expect(err).NotTo(HaveOccurred())
						Expect(conn.Account).To(Equal("0x1234567890abcdef1234567890abcdef12345678"))
						Expect(conn.OnTargetNetwork).To(BeFalse())
						Expect(conn.ChainID).To(Equal("0x1"))
						Expect(conn.NetworkErr).To(MatchError(wallet.ErrNetworkRegistrationFailed))
					})
				})
			})

			When("switching fails", func() {
				BeforeEach(func() {
					responses.switchErrs = []error{&ethereum.ProviderError{Code: ethereum.CodeUserRejected, Message: "rejected"}}
				})

				It("should still return the account with the switch error", func() {
					Expect(err).NotTo(HaveOccurred())
					Expect(conn.Account).NotTo(BeEmpty())
					Expect(conn.NetworkErr).To(MatchError(wallet.ErrNetworkSwitchFailed))
					Expect(methodsCalled(fakeProvider)).NotTo(ContainElement(ethereum.MethodAddChain))
				})
			})
		})
	})

	Describe("subscriptions", func() {
		var (
			handler func(json.RawMessage)
			removed atomic.Int32
		)

		BeforeEach(func() {
			removed.Store(0)
			fakeProvider.OnStub = func(event string, h func(json.RawMessage)) func() {
				handler = h
				return func() { removed.Add(1) }
			}
		})

		It("should report account changes and disconnects", func() {
			var changes []wallet.AccountChange
			connector.SubscribeAccountChanges(func(c wallet.AccountChange) {
				changes = append(changes, c)
			})
			event, _ := fakeProvider.OnArgsForCall(0)
			Expect(event).To(Equal(ethereum.EventAccountsChanged))

			handler(json.RawMessage(`["0xbbb"]`))
			handler(json.RawMessage(`[]`))

			Expect(changes).To(Equal([]wallet.AccountChange{
				{Account: "0xbbb", Connected: true},
				{},
			}))
			Expect(fakeNotifier.NotifyArgsForCall(1).Title).To(Equal("Wallet disconnected"))
		})

		It("should report network changes", func() {
			var changes []wallet.NetworkChange
			connector.SubscribeNetworkChanges(func(c wallet.NetworkChange) {
				changes = append(changes, c)
			})

			handler(json.RawMessage(`"0x1"`))
			handler(json.RawMessage(`"0xAA36A7"`))

			Expect(changes).To(Equal([]wallet.NetworkChange{
				{ChainID: "0x1", OnTargetNetwork: false},
				{ChainID: "0xAA36A7", OnTargetNetwork: true},
			}))
			Expect(fakeNotifier.NotifyArgsForCall(0).Level).To(Equal(notify.Warning))
			Expect(fakeNotifier.NotifyArgsForCall(1).Level).To(Equal(notify.Success))
		})

		It("should ignore malformed events", func() {
			called := false
			connector.SubscribeNetworkChanges(func(wallet.NetworkChange) { called = true })
			handler(json.RawMessage(`{`))
			Expect(called).To(BeFalse())
		})

		It("should unsubscribe only once", func() {
			unsubscribe := connector.SubscribeAccountChanges(func(wallet.AccountChange) {})
			unsubscribe()
			unsubscribe()
			Expect(removed.Load()).To(Equal(int32(1)))
		})

		It("should close watch channels when the context ends", func() {
			watchCtx, cancel := context.WithCancel(ctx)
			changes := connector.WatchAccounts(watchCtx)

			go handler(json.RawMessage(`["0xccc"]`))
			Eventually(changes).Should(Receive(Equal(wallet.AccountChange{Account: "0xccc", Connected: true})))

			cancel()
			Eventually(changes).Should(BeClosed())
			Eventually(removed.Load).Should(Equal(int32(1)))
		})
	})
})

var _ = Describe("FormatAddress", func() {
	It("should shorten long addresses", func() {
		Expect(wallet.FormatAddress("0x1234567890abcdef1234567890abcdef12345678")).To(Equal("0x1234...5678"))
	})

	It("should leave short values alone", func() {
		Expect(wallet.FormatAddress("0x1234")).To(Equal("0x1234"))
		Expect(wallet.FormatAddress("")).To(BeEmpty())
	})
})
