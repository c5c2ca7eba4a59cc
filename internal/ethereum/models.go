package ethereum

import "math/big"

type transferResult struct {
	Transfer *Transfer
	Error    error
}

// Transfer is the on-chain view of a value transfer, assembled from the transaction and its receipt.
type Transfer struct {
	TransactionHash string
	Status          uint64
	BlockHash       string
	BlockNumber     uint64
	From            string
	To              *string
	Value           *big.Int
}

// Succeeded reports whether the receipt status marks the transfer as executed.
func (t *Transfer) Succeeded() bool {
	return t != nil && t.Status == 1
}
