package ethereum

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
)

// Error codes wallets attach to JSON-RPC failures (EIP-1193, EIP-3326).
const (
	CodeUserRejected      = 4001
	CodeUnrecognizedChain = 4902
)

// ProviderError is a JSON-RPC error carrying a wallet error code. It satisfies rpc.Error.
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error %d: %s", e.Code, e.Message)
}

func (e *ProviderError) ErrorCode() int {
	return e.Code
}

// ErrorCode extracts the JSON-RPC error code from err, if it carries one.
func ErrorCode(err error) (int, bool) {
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) {
		return rpcErr.ErrorCode(), true
	}
	return 0, false
}

// IsUserRejection reports whether the wallet user declined the request.
func IsUserRejection(err error) bool {
	code, ok := ErrorCode(err)
	return ok && code == CodeUserRejected
}

// IsUnrecognizedChain reports whether the wallet does not know the requested chain.
func IsUnrecognizedChain(err error) bool {
	code, ok := ErrorCode(err)
	return ok && code == CodeUnrecognizedChain
}
