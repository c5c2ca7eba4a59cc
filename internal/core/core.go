package core

import (
	"codemart/internal/ethereum"
	"codemart/internal/listing"
	"codemart/internal/notify"
	"codemart/internal/repository"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var (
	ErrWalletNotConnected  error = errors.New("wallet not connected")
	ErrRecordWriteFailed   error = errors.New("transaction was sent but recording the purchase failed")
	ErrInvalidListing      error = errors.New("invalid listing")
	ErrNotSeller           error = errors.New("only the seller can do this")
	ErrTransferMismatch    error = errors.New("transfer does not match the purchase")
	ErrReceiptsUnavailable error = errors.New("no node configured to read transaction receipts")
)

// Marketplace coordinates listings and purchases: a purchase is a value transfer to the seller
// followed by a purchase record and an update of the listing's purchasers.
type Marketplace struct {
	logs      *zap.SugaredLogger
	submitter TransactionSubmitter
	repo      PurchaseRepository
	store     ListingStore
	transfers TransferReader
	notifier  Notifier
	network   ethereum.Network
}

// NewMarketplace builds a marketplace. transfers may be nil, in which case purchases cannot be
// reconciled and history is not verified on chain.
func NewMarketplace(
	logger *zap.SugaredLogger,
	submitter TransactionSubmitter,
	repo PurchaseRepository,
	store ListingStore,
	transfers TransferReader,
	notifier Notifier,
	network ethereum.Network,
) *Marketplace {
	return &Marketplace{
		logs:      logger,
		submitter: submitter,
		repo:      repo,
		store:     store,
		transfers: transfers,
		notifier:  notifier,
		network:   network,
	}
}

// HasPurchased reports whether address bought the listing. Addresses compare case-insensitively.
func HasPurchased(l listing.Listing, address string) bool {
	return l.PurchasedBy(address)
}

// Purchase pays the seller the listing price from buyer and records the purchase. The returned
// error is nil only for the Completed state.
func (m *Marketplace) Purchase(ctx context.Context, l listing.Listing, buyer string) (PurchaseResult, error) {
	result := PurchaseResult{State: FailedAtTransfer, Listing: l}

	if buyer == "" {
		return result, ErrWalletNotConnected
	}

	txHash, err := m.submitter.SendValue(ctx, buyer, l.Seller, l.Price)
	if err != nil {
		m.logs.Errorw("purchase transfer failed", "error", err, "listing_id", l.ID, "buyer", buyer)
		return result, fmt.Errorf("send payment: %w", err)
	}
	result.TxHash = txHash

	m.logs.Infow("purchase transfer submitted", "listing_id", l.ID, "buyer", buyer, "tx_hash", txHash)

	record := repository.PurchaseRecord{
		ListingID:       l.ID,
		BuyerAddress:    buyer,
		SellerAddress:   l.Seller,
		Price:           l.Price,
		TransactionHash: txHash,
	}
	if err := m.repo.SavePurchase(ctx, record); err != nil {
		m.logs.Errorw("failed to record purchase", "error", err, "listing_id", l.ID, "tx_hash", txHash)
		m.notifier.Notify(notify.Notification{
			Level:       notify.Error,
			Title:       "Purchase not recorded",
			Description: fmt.Sprintf("Your transaction was sent, but recording the purchase failed. Keep the hash %s to reconcile it.", txHash),
			Link:        m.network.TransactionURL(txHash),
		})
		result.State = FailedAtRecording
		return result, fmt.Errorf("%w: %w", ErrRecordWriteFailed, err)
	}

	result.State = Completed
	result.Listing = l.WithPurchaser(buyer)

	updated, err := m.store.AddPurchaser(l.ID, buyer)
	if err != nil {
		m.logs.Errorw("failed to update listing purchasers", "error", err, "listing_id", l.ID, "buyer", buyer)
		m.notifier.Notify(notify.Notification{
			Level:       notify.Warning,
			Title:       "Purchase recorded, listing not updated",
			Description: "Your purchase is saved but the listing could not be updated. Run reconcile to fix it.",
		})
		result.ListingUpdateErr = fmt.Errorf("add purchaser: %w", err)
	} else {
		result.Listing = updated
	}

	m.notifier.Notify(notify.Notification{
		Level:       notify.Success,
		Title:       "Purchase successful!",
		Description: fmt.Sprintf("You now own %q.", l.Title),
		Link:        m.network.TransactionURL(txHash),
	})
	m.logs.Infow("purchase completed", "listing_id", l.ID, "buyer", buyer, "tx_hash", txHash)

	return result, nil
}

// Reconcile repairs a purchase whose transfer went through but whose record or listing update
// did not. It is keyed by the transaction hash and may be repeated safely. Transfers without a
// record are verified against the chain before anything is written.
func (m *Marketplace) Reconcile(ctx context.Context, listingID, buyer, txHash string) (ReconcileResult, error) {
	result := ReconcileResult{TxHash: txHash}

	if buyer == "" {
		return result, ErrWalletNotConnected
	}

	l, err := m.store.Get(listingID)
	if err != nil {
		return result, fmt.Errorf("get listing: %w", err)
	}
	result.Listing = l

	record, err := m.repo.GetPurchaseByTxHash(ctx, txHash)
	switch {
	case err == nil:
		if record.ListingID != listingID || !strings.EqualFold(record.BuyerAddress, buyer) {
			return result, fmt.Errorf("%w: %s is recorded for listing %s by %s", ErrTransferMismatch, txHash, record.ListingID, record.BuyerAddress)
		}
		result.AlreadyRecorded = true
	case errors.Is(err, repository.ErrPurchaseNotFound):
		if err := m.recordVerifiedTransfer(ctx, l, buyer, txHash); err != nil {
			return result, err
		}
	default:
		return result, fmt.Errorf("get purchase: %w", err)
	}

	updated, err := m.store.AddPurchaser(l.ID, buyer)
	if err != nil {
		return result, fmt.Errorf("add purchaser: %w", err)
	}
	result.Listing = updated

	m.logs.Infow("purchase reconciled", "listing_id", l.ID, "buyer", buyer, "tx_hash", txHash, "already_recorded", result.AlreadyRecorded)
	m.notifier.Notify(notify.Notification{
		Level: notify.Success,
		Title: "Purchase reconciled",
		Link:  m.network.TransactionURL(txHash),
	})

	return result, nil
}

func (m *Marketplace) recordVerifiedTransfer(ctx context.Context, l listing.Listing, buyer, txHash string) error {
	if m.transfers == nil {
		return ErrReceiptsUnavailable
	}

	transfer, err := m.transfers.FetchTransfer(ctx, txHash)
	if err != nil {
		return fmt.Errorf("fetch transfer: %w", err)
	}
	if err := verifyTransfer(transfer, l, buyer); err != nil {
		m.logs.Warnw("transfer does not match purchase", "error", err, "listing_id", l.ID, "tx_hash", txHash)
		return err
	}

	err = m.repo.SavePurchase(ctx, repository.PurchaseRecord{
		ListingID:       l.ID,
		BuyerAddress:    buyer,
		SellerAddress:   l.Seller,
		Price:           l.Price,
		TransactionHash: txHash,
	})
	// A concurrent reconcile may have recorded it first.
	if err != nil && !errors.Is(err, repository.ErrDuplicatePurchase) {
		return fmt.Errorf("%w: %w", ErrRecordWriteFailed, err)
	}
	return nil
}

func verifyTransfer(t *ethereum.Transfer, l listing.Listing, buyer string) error {
	if !t.Succeeded() {
		return fmt.Errorf("%w: transaction did not succeed", ErrTransferMismatch)
	}
	if !strings.EqualFold(t.From, buyer) {
		return fmt.Errorf("%w: sent from %s, not %s", ErrTransferMismatch, t.From, buyer)
	}
	if t.To == nil || !strings.EqualFold(*t.To, l.Seller) {
		return fmt.Errorf("%w: not sent to seller %s", ErrTransferMismatch, l.Seller)
	}

	price, err := ethereum.ToWei(l.Price)
	if err != nil {
		return fmt.Errorf("listing price: %w", err)
	}
	if t.Value == nil || t.Value.Cmp(price) != 0 {
		return fmt.Errorf("%w: paid %s, price is %s", ErrTransferMismatch, ethereum.FromWei(t.Value), l.Price)
	}
	return nil
}

// PurchaseHistory lists the recorded purchases of a listing. When a node is configured the
// transfers are looked up as well; lookups that fail leave the entry unverified.
func (m *Marketplace) PurchaseHistory(ctx context.Context, listingID string) ([]PurchaseEntry, error) {
	records, err := m.repo.GetPurchasesByListing(ctx, listingID)
	if err != nil {
		return nil, fmt.Errorf("get purchases: %w", err)
	}

	entries := make([]PurchaseEntry, len(records))
	for i, r := range records {
		entries[i] = PurchaseEntry{Record: r}
	}
	if m.transfers == nil || len(records) == 0 {
		return entries, nil
	}

	hashes := make([]string, len(records))
	for i, r := range records {
		hashes[i] = r.TransactionHash
	}

	transfers, err := m.transfers.FetchTransfers(ctx, hashes)
	if err != nil {
		m.logs.Warnw("some transfers could not be verified", "error", err, "listing_id", listingID)
	}

	byHash := make(map[string]*ethereum.Transfer, len(transfers))
	for _, t := range transfers {
		byHash[strings.ToLower(t.TransactionHash)] = t
	}
	for i := range entries {
		entries[i].Transfer = byHash[strings.ToLower(entries[i].Record.TransactionHash)]
	}

	return entries, nil
}

// CreateListing validates a draft and publishes it under seller.
func (m *Marketplace) CreateListing(draft listing.Draft, seller string) (listing.Listing, error) {
	if seller == "" {
		return listing.Listing{}, ErrWalletNotConnected
	}

	if err := draft.Validate(); err != nil {
		return listing.Listing{}, fmt.Errorf("%w: %w", ErrInvalidListing, err)
	}

	l := listing.New(draft, seller)
	if err := m.store.Save(l); err != nil {
		m.logs.Errorw("failed to save listing", "error", err, "seller", seller)
		return listing.Listing{}, fmt.Errorf("save listing: %w", err)
	}

	m.logs.Infow("listing created", "listing_id", l.ID, "seller", seller, "price", l.Price)
	m.notifier.Notify(notify.Notification{
		Level:       notify.Success,
		Title:       "Code snippet listed!",
		Description: fmt.Sprintf("%q is now available for %s %s.", l.Title, l.Price, m.network.NativeCurrency.Symbol),
	})

	return l, nil
}

func (m *Marketplace) Listings(filter listing.Filter) ([]listing.Listing, error) {
	all, err := m.store.All()
	if err != nil {
		return nil, fmt.Errorf("get listings: %w", err)
	}
	return listing.Search(all, filter), nil
}

func (m *Marketplace) Listing(id string) (listing.Listing, error) {
	l, err := m.store.Get(id)
	if err != nil {
		return listing.Listing{}, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

func (m *Marketplace) SellerListings(seller string) ([]listing.Listing, error) {
	listings, err := m.store.BySeller(seller)
	if err != nil {
		return nil, fmt.Errorf("get seller listings: %w", err)
	}
	return listings, nil
}

// DeleteListing removes a listing. Only its seller may delete it.
func (m *Marketplace) DeleteListing(id, seller string) error {
	if seller == "" {
		return ErrWalletNotConnected
	}

	l, err := m.store.Get(id)
	if err != nil {
		return fmt.Errorf("get listing: %w", err)
	}
	if !l.SoldBy(seller) {
		return fmt.Errorf("%w: listing %s belongs to %s", ErrNotSeller, id, l.Seller)
	}

	if err := m.store.Delete(id); err != nil {
		return fmt.Errorf("delete listing: %w", err)
	}

	m.logs.Infow("listing deleted", "listing_id", id, "seller", seller)
	m.notifier.Notify(notify.Notification{
		Level: notify.Info,
		Title: "Listing deleted",
	})
	return nil
}

func (m *Marketplace) TransactionURL(txHash string) string {
	return m.network.TransactionURL(txHash)
}
