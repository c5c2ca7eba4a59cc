package wallet

import "errors"

var (
	ErrProviderUnavailable       error = errors.New("wallet provider is not available")
	ErrUserRejected              error = errors.New("request rejected by user")
	ErrNoAccounts                error = errors.New("wallet returned no accounts")
	ErrConnectFailed             error = errors.New("failed to connect wallet")
	ErrNetworkMismatch           error = errors.New("wallet is on the wrong network")
	ErrNetworkSwitchFailed       error = errors.New("failed to switch network")
	ErrNetworkRegistrationFailed error = errors.New("failed to add network to wallet")
	ErrInvalidAddress            error = errors.New("invalid address")
	ErrTransferFailed            error = errors.New("transfer failed")
)
