package ethereum_test

import (
	"codemart/internal/ethereum"
	"codemart/internal/ethereum/fake"
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ReceiptService", func() {
	var (
		service    *ethereum.ReceiptService
		fakeClient *fake.EthClient
		ctx        context.Context
		testErr    error

		chainID   *big.Int
		sender    common.Address
		seller    common.Address
		signedTx1 *types.Transaction
		signedTx2 *types.Transaction
		receipts  map[common.Hash]*types.Receipt
	)

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		testErr = errors.New("test error")
		ctx = context.Background()
		service = ethereum.NewReceiptService(fakeClient)

		privateKey, err := crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		sender = crypto.PubkeyToAddress(privateKey.PublicKey)
		seller = common.HexToAddress("0x2222222222222222222222222222222222222222")

		chainID = big.NewInt(11155111)
		signer := types.LatestSignerForChainID(chainID)

		price, _ := new(big.Int).SetString("50000000000000000", 10)
		signedTx1, err = types.SignTx(types.NewTransaction(0, seller, price, 21000, big.NewInt(1), nil), signer, privateKey)
		Expect(err).NotTo(HaveOccurred())
		signedTx2, err = types.SignTx(types.NewTransaction(1, seller, big.NewInt(1), 21000, big.NewInt(1), nil), signer, privateKey)
		Expect(err).NotTo(HaveOccurred())

		receipts = map[common.Hash]*types.Receipt{
			signedTx1.Hash(): {Status: 1, BlockHash: common.HexToHash("0xabc"), BlockNumber: big.NewInt(100)},
			signedTx2.Hash(): {Status: 0, BlockHash: common.HexToHash("0xdef"), BlockNumber: big.NewInt(101)},
		}

		fakeClient.ChainIDReturns(chainID, nil)
		fakeClient.TransactionByHashStub = func(_ context.Context, hash common.Hash) (*types.Transaction, bool, error) {
			switch hash {
			case signedTx1.Hash():
				return signedTx1, false, nil
			case signedTx2.Hash():
				return signedTx2, false, nil
			}
			return nil, false, testErr
		}
		fakeClient.TransactionReceiptStub = func(_ context.Context, hash common.Hash) (*types.Receipt, error) {
			return receipts[hash], nil
		}
	})

	Describe("FetchTransfer", func() {
		var (
			hash     string
			transfer *ethereum.Transfer
			err      error
		)

		BeforeEach(func() {
			hash = signedTx1.Hash().Hex()
		})

		JustBeforeEach(func() {
			transfer, err = service.FetchTransfer(ctx, hash)
		})

		It("should return the transfer as seen on chain", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(transfer.TransactionHash).To(Equal(signedTx1.Hash().Hex()))
			Expect(transfer.Succeeded()).To(BeTrue())
			Expect(transfer.BlockNumber).To(Equal(uint64(100)))
			Expect(transfer.From).To(Equal(sender.Hex()))
			Expect(*transfer.To).To(Equal(seller.Hex()))
			Expect(transfer.Value.String()).To(Equal("50000000000000000"))

			_, argHash := fakeClient.TransactionByHashArgsForCall(0)
			Expect(argHash).To(Equal(signedTx1.Hash()))
		})

		When("the transaction reverted", func() {
			BeforeEach(func() {
				hash = signedTx2.Hash().Hex()
			})

			It("should report it as not succeeded", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transfer.Succeeded()).To(BeFalse())
			})
		})

		When("the transaction is pending", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashStub = nil
				fakeClient.TransactionByHashReturns(signedTx1, true, nil)
			})

			It("should return ErrTransactionPending", func() {
				Expect(err).To(MatchError(ethereum.ErrTransactionPending))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(0))
			})
		})

		When("the hash is malformed", func() {
			BeforeEach(func() {
				hash = "0x1234"
			})

			It("should return ErrInvalidHash without calling the node", func() {
				Expect(err).To(MatchError(ethereum.ErrInvalidHash))
				Expect(fakeClient.TransactionByHashCallCount()).To(Equal(0))
			})
		})

		When("the receipt cannot be read", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptStub = nil
				fakeClient.TransactionReceiptReturns(nil, testErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(testErr))
				Expect(err.Error()).To(ContainSubstring(fmt.Sprintf("fetching transfer %q", hash)))
			})
		})
	})

	Describe("FetchTransfers", func() {
		var (
			hashes  []string
			results []*ethereum.Transfer
			err     error
		)

		JustBeforeEach(func() {
			results, err = service.FetchTransfers(ctx, hashes)
		})

		When("all transfers are fetched", func() {
			BeforeEach(func() {
				hashes = []string{signedTx1.Hash().Hex(), signedTx2.Hash().Hex()}
			})

			It("should return all of them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(results).To(HaveLen(2))
				Expect(fakeClient.TransactionByHashCallCount()).To(Equal(2))
				Expect(fakeClient.TransactionReceiptCallCount()).To(Equal(2))
			})
		})

		When("some transfers fail", func() {
			var unknown string

			BeforeEach(func() {
				unknown = common.HexToHash("0x99").Hex()
				hashes = []string{unknown, signedTx2.Hash().Hex()}
			})

			It("should return partial results with the joined error", func() {
				Expect(err).To(MatchError(testErr))
				Expect(err.Error()).To(ContainSubstring(fmt.Sprintf("fetching transfer %q: %s", unknown, testErr.Error())))
				Expect(results).To(HaveLen(1))
				Expect(results[0].TransactionHash).To(Equal(signedTx2.Hash().Hex()))
			})
		})
	})
})
