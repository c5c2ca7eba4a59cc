package wallet

import (
	"codemart/internal/notify"
	"context"
	"encoding/json"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Provider . Provider
type Provider interface {
	Request(ctx context.Context, result any, method string, params ...any) error
	On(event string, handler func(payload json.RawMessage)) (remove func())
}

//counterfeiter:generate -o fake -fake-name Notifier . Notifier
type Notifier interface {
	Notify(n notify.Notification)
}
