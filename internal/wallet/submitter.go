package wallet

import (
	"codemart/internal/ethereum"
	"codemart/internal/notify"
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"
)

// transferGas is the fixed gas allowance of a plain value transfer.
const transferGas uint64 = 21000

type sendTransactionParams struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value string `json:"value"`
	Gas   string `json:"gas"`
}

// Submitter sends native-currency transfers through the wallet provider.
type Submitter struct {
	logs     *zap.SugaredLogger
	provider Provider
	notifier Notifier
	network  ethereum.Network
}

func NewSubmitter(logger *zap.SugaredLogger, provider Provider, notifier Notifier, network ethereum.Network) *Submitter {
	return &Submitter{
		logs:     logger,
		provider: provider,
		notifier: notifier,
		network:  network,
	}
}

// SendValue transfers amount (in the network's native currency) from one account to another
// and returns the transaction hash. The hash means the wallet accepted the transaction for
// broadcast; it is not a confirmation.
func (s *Submitter) SendValue(ctx context.Context, from, to, amount string) (string, error) {
	if s.provider == nil {
		s.notifier.Notify(notify.Notification{
			Level: notify.Error,
			Title: "Wallet provider is not available!",
			Link:  installURL,
		})
		return "", ErrProviderUnavailable
	}

	if !common.IsHexAddress(from) {
		return "", fmt.Errorf("%w: sender %q", ErrInvalidAddress, from)
	}
	if !common.IsHexAddress(to) {
		return "", fmt.Errorf("%w: recipient %q", ErrInvalidAddress, to)
	}

	wei, err := ethereum.ToWei(amount)
	if err != nil {
		return "", fmt.Errorf("convert amount: %w", err)
	}

	var chainID string
	if err := s.provider.Request(ctx, &chainID, ethereum.MethodChainID); err != nil {
		s.notifyFailed(err)
		return "", fmt.Errorf("get chain id: %w: %w", ErrTransferFailed, err)
	}
	if !s.network.Matches(chainID) {
		s.notifier.Notify(notify.Notification{
			Level:       notify.Warning,
			Title:       "Wrong network",
			Description: fmt.Sprintf("Please switch to %s before sending a transaction.", s.network.ChainName),
		})
		return "", fmt.Errorf("%w: on chain %s, want %s", ErrNetworkMismatch, chainID, s.network.ChainID)
	}

	params := sendTransactionParams{
		From:  from,
		To:    to,
		Value: hexutil.EncodeBig(wei),
		Gas:   hexutil.EncodeUint64(transferGas),
	}

	var txHash string
	if err := s.provider.Request(ctx, &txHash, ethereum.MethodSendTransaction, params); err != nil {
		s.logs.Errorw("transaction error", "error", err, "from", from, "to", to, "amount", amount)
		if ethereum.IsUserRejection(err) {
			s.notifier.Notify(notify.Notification{
				Level:       notify.Error,
				Title:       "Transaction rejected",
				Description: "You rejected the transaction in your wallet.",
			})
			return "", fmt.Errorf("send transaction: %w: %w", ErrUserRejected, err)
		}
		s.notifyFailed(err)
		return "", fmt.Errorf("send transaction: %w: %w", ErrTransferFailed, err)
	}

	if txHash == "" {
		s.notifyFailed(nil)
		return "", fmt.Errorf("send transaction: %w: empty transaction hash", ErrTransferFailed)
	}

	s.logs.Infow("transaction submitted",
		"tx_hash", txHash,
		"from", from,
		"to", to,
		"value_wei", wei.String())

	return txHash, nil
}

func (s *Submitter) notifyFailed(err error) {
	description := "There was an error processing your transaction."
	if err != nil {
		description = err.Error()
	}
	s.notifier.Notify(notify.Notification{
		Level:       notify.Error,
		Title:       "Transaction failed",
		Description: description,
	})
}
