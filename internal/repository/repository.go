package repository

import (
	"codemart/internal/db"
	"context"
	"errors"
	"fmt"
)

var (
	ErrPurchaseNotFound  error = errors.New("purchase not found")
	ErrDuplicatePurchase error = errors.New("purchase already recorded")
)

type PurchaseRepository struct {
	db Storage
}

func NewPurchaseRepository(db Storage) *PurchaseRepository {
	return &PurchaseRepository{
		db: db,
	}
}

func (r *PurchaseRepository) MigrateTables() error {
	err := r.db.MigrateTable(&PurchaseRecord{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// SavePurchase inserts a purchase record. Recording the same transaction hash twice fails with
// ErrDuplicatePurchase.
func (r *PurchaseRepository) SavePurchase(ctx context.Context, record PurchaseRecord) error {
	err := r.db.Insert(ctx, &record)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return fmt.Errorf("save purchase %q: %w", record.TransactionHash, ErrDuplicatePurchase)
		}
		return fmt.Errorf("save purchase: %w", err)
	}

	return nil
}

func (r *PurchaseRepository) GetPurchaseByTxHash(ctx context.Context, txHash string) (PurchaseRecord, error) {
	var record PurchaseRecord

	err := r.db.GetOneBy(ctx, "transaction_hash", txHash, &record)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return PurchaseRecord{}, ErrPurchaseNotFound
		}
		return PurchaseRecord{}, fmt.Errorf("get purchase by hash: %w", err)
	}

	return record, nil
}

func (r *PurchaseRepository) GetPurchasesByListing(ctx context.Context, listingID string) ([]PurchaseRecord, error) {
	records := []PurchaseRecord{}
	err := r.db.GetAllBy(ctx, "listing_id", []string{listingID}, &records)
	if err != nil {
		return records, fmt.Errorf("get purchases by listing: %w", err)
	}

	return records, nil
}
