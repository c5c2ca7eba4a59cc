package ethereum

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

var ErrTransactionPending error = errors.New("transaction is still pending")
var ErrInvalidHash error = errors.New("invalid transaction hash")

// ReceiptService reads transfers back from a node to confirm what a wallet broadcast.
type ReceiptService struct {
	client EthClient
}

func NewReceiptService(ethClient EthClient) *ReceiptService {
	return &ReceiptService{
		client: ethClient,
	}
}

// FetchTransfer loads a single transfer by hash. Pending transactions are reported with
// ErrTransactionPending.
func (s *ReceiptService) FetchTransfer(ctx context.Context, hash string) (*Transfer, error) {
	res := s.getTransferByHash(ctx, hash)
	if res.Error != nil {
		return nil, fmt.Errorf("fetching transfer %q: %w", hash, res.Error)
	}
	return res.Transfer, nil
}

// FetchTransfers loads transfers concurrently. Transfers that fail to load are left out of the
// result and their errors are joined into the returned error.
func (s *ReceiptService) FetchTransfers(ctx context.Context, hashes []string) ([]*Transfer, error) {
	resultsChan := make(chan *transferResult)

	var wg sync.WaitGroup
	for _, hashStr := range hashes {
		wg.Add(1)
		go func(hashStr string) {
			defer wg.Done()
			res := s.getTransferByHash(ctx, hashStr)
			if res.Error != nil {
				res.Error = fmt.Errorf("fetching transfer %q: %w", hashStr, res.Error)
			}
			resultsChan <- res
		}(hashStr)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []*Transfer
	var aggrErr error
	for result := range resultsChan {
		if result.Error != nil {
			aggrErr = errors.Join(aggrErr, result.Error)
			continue
		}
		results = append(results, result.Transfer)
	}

	return results, aggrErr
}

func (s *ReceiptService) getTransferByHash(ctx context.Context, hashStr string) *transferResult {
	raw, err := decodeHash(hashStr)
	if err != nil {
		return &transferResult{nil, err}
	}
	hash := common.BytesToHash(raw)

	tx, isPending, err := s.client.TransactionByHash(ctx, hash)
	if err != nil {
		return &transferResult{nil, err}
	}
	if isPending {
		return &transferResult{nil, ErrTransactionPending}
	}

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if err != nil {
		return &transferResult{nil, err}
	}

	chainID, err := s.client.ChainID(ctx)
	if err != nil {
		return &transferResult{nil, err}
	}

	signer := types.LatestSignerForChainID(chainID)
	from, err := types.Sender(signer, tx)
	if err != nil {
		return &transferResult{nil, err}
	}

	var to *string
	if tx.To() != nil {
		addr := tx.To().Hex()
		to = &addr
	}

	var blockNumber uint64
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}

	return &transferResult{
		Transfer: &Transfer{
			TransactionHash: tx.Hash().Hex(),
			Status:          receipt.Status,
			BlockHash:       receipt.BlockHash.Hex(),
			BlockNumber:     blockNumber,
			From:            from.Hex(),
			To:              to,
			Value:           tx.Value(),
		},
		Error: nil,
	}
}

func decodeHash(hashStr string) ([]byte, error) {
	raw, err := hexutil.Decode(hashStr)
	if err != nil || len(raw) != common.HashLength {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHash, hashStr)
	}
	return raw, nil
}
