package repository

import "time"

// PurchaseRecord is one on-chain payment for a listing.
type PurchaseRecord struct {
	ID              uint      `gorm:"primaryKey"`
	ListingID       string    `gorm:"size:64;not null;index"`
	BuyerAddress    string    `gorm:"size:42;not null;index"` // 0x + 40 hex
	SellerAddress   string    `gorm:"size:42;not null"`
	Price           string    `gorm:"size:100;not null"`              // decimal amount in ether
	TransactionHash string    `gorm:"size:66;uniqueIndex;not null"` // 0x + 64 hex chars
	CreatedAt       time.Time `gorm:"not null"`
}

func (PurchaseRecord) TableName() string {
	return "code_purchases"
}
