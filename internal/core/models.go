package core

import (
	"codemart/internal/ethereum"
	"codemart/internal/listing"
	"codemart/internal/repository"
)

// PurchaseState is where a purchase ended up. A purchase starts Idle and ends in one of the
// other states.
type PurchaseState int

const (
	Idle PurchaseState = iota
	Completed
	FailedAtTransfer
	FailedAtRecording
)

func (s PurchaseState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Completed:
		return "completed"
	case FailedAtTransfer:
		return "failed at transfer"
	case FailedAtRecording:
		return "failed at recording"
	default:
		return "unknown"
	}
}

// PurchaseResult describes how far a purchase got. TxHash is set whenever the transfer was
// accepted, including when recording it failed afterwards.
type PurchaseResult struct {
	State   PurchaseState
	TxHash  string
	Listing listing.Listing
	// ListingUpdateErr is set when the purchase was recorded but the buyer could not be added to
	// the listing's purchasers.
	ListingUpdateErr error
}

type ReconcileResult struct {
	TxHash          string
	Listing         listing.Listing
	AlreadyRecorded bool
}

// PurchaseEntry is a recorded purchase together with its on-chain transfer when a node was
// available to look it up.
type PurchaseEntry struct {
	Record   repository.PurchaseRecord
	Transfer *ethereum.Transfer
}

func (e PurchaseEntry) Status() string {
	switch {
	case e.Transfer == nil:
		return "unverified"
	case e.Transfer.Succeeded():
		return "confirmed"
	default:
		return "reverted"
	}
}
