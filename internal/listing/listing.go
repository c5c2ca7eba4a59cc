package listing

import "strings"

// Listing is a code snippet offered for sale. Purchasers holds the addresses that bought it.
type Listing struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Code        string   `json:"code"`
	Language    string   `json:"language"`
	Price       string   `json:"price"`
	Seller      string   `json:"seller"`
	CreatedAt   int64    `json:"createdAt"`
	Tags        []string `json:"tags"`
	Purchasers  []string `json:"purchasers"`
}

// PurchasedBy reports whether address is among the purchasers, ignoring case.
func (l Listing) PurchasedBy(address string) bool {
	if address == "" {
		return false
	}
	for _, p := range l.Purchasers {
		if strings.EqualFold(p, address) {
			return true
		}
	}
	return false
}

// SoldBy reports whether address is the seller, ignoring case.
func (l Listing) SoldBy(address string) bool {
	return address != "" && strings.EqualFold(l.Seller, address)
}

// WithPurchaser returns a copy of the listing with address added to its purchasers. The
// purchaser list is a set: adding an existing purchaser leaves it unchanged.
func (l Listing) WithPurchaser(address string) Listing {
	purchasers := make([]string, 0, len(l.Purchasers)+1)
	purchasers = append(purchasers, l.Purchasers...)
	if !l.PurchasedBy(address) {
		purchasers = append(purchasers, address)
	}
	l.Purchasers = purchasers
	return l
}
