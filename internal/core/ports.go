package core

import (
	"codemart/internal/ethereum"
	"codemart/internal/listing"
	"codemart/internal/notify"
	"codemart/internal/repository"
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TransactionSubmitter . TransactionSubmitter
type TransactionSubmitter interface {
	SendValue(ctx context.Context, from, to, amount string) (string, error)
}

//counterfeiter:generate -o fake -fake-name PurchaseRepository . PurchaseRepository
type PurchaseRepository interface {
	SavePurchase(ctx context.Context, record repository.PurchaseRecord) error
	GetPurchaseByTxHash(ctx context.Context, txHash string) (repository.PurchaseRecord, error)
	GetPurchasesByListing(ctx context.Context, listingID string) ([]repository.PurchaseRecord, error)
}

//counterfeiter:generate -o fake -fake-name ListingStore . ListingStore
type ListingStore interface {
	All() ([]listing.Listing, error)
	Get(id string) (listing.Listing, error)
	BySeller(seller string) ([]listing.Listing, error)
	Save(l listing.Listing) error
	Delete(id string) error
	AddPurchaser(id, buyer string) (listing.Listing, error)
}

//counterfeiter:generate -o fake -fake-name TransferReader . TransferReader
type TransferReader interface {
	FetchTransfer(ctx context.Context, hash string) (*ethereum.Transfer, error)
	FetchTransfers(ctx context.Context, hashes []string) ([]*ethereum.Transfer, error)
}

//counterfeiter:generate -o fake -fake-name Notifier . Notifier
type Notifier interface {
	Notify(n notify.Notification)
}
