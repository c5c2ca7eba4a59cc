package listing_test

import (
	"codemart/internal/listing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Listing", func() {
	var l listing.Listing

	BeforeEach(func() {
		l = listing.Listing{
			ID:         "L1",
			Seller:     "0xSeller",
			Purchasers: []string{"0xAAA"},
		}
	})

	Describe("WithPurchaser", func() {
		It("should add a new purchaser without touching the original", func() {
			updated := l.WithPurchaser("0xBBB")
			Expect(updated.Purchasers).To(Equal([]string{"0xAAA", "0xBBB"}))
			Expect(l.Purchasers).To(Equal([]string{"0xAAA"}))
		})

		It("should not add the same purchaser twice", func() {
			updated := l.WithPurchaser("0xaaa")
			Expect(updated.Purchasers).To(Equal([]string{"0xAAA"}))
		})
	})

	Describe("SoldBy", func() {
		It("should ignore case", func() {
			Expect(l.SoldBy("0xseller")).To(BeTrue())
			Expect(l.SoldBy("0xAAA")).To(BeFalse())
			Expect(l.SoldBy("")).To(BeFalse())
		})
	})
})

var _ = Describe("Search", func() {
	var listings []listing.Listing

	BeforeEach(func() {
		listings = []listing.Listing{
			{ID: "1", Title: "Debounce hook", Description: "React helper", Language: "TypeScript", Seller: "0xA", Tags: []string{"react"}},
			{ID: "2", Title: "Token", Description: "ERC20 contract", Language: "Solidity", Seller: "0xB", Tags: []string{"erc20", "defi"}},
			{ID: "3", Title: "Retry", Description: "Backoff loop", Language: "Go", Seller: "0xa", Tags: nil},
		}
	})

	ids := func(ls []listing.Listing) []string {
		out := make([]string, len(ls))
		for i, l := range ls {
			out[i] = l.ID
		}
		return out
	}

	It("should return everything for an empty filter", func() {
		Expect(ids(listing.Search(listings, listing.Filter{}))).To(Equal([]string{"1", "2", "3"}))
	})

	It("should match the term against title, description and tags", func() {
		Expect(ids(listing.Search(listings, listing.Filter{Term: "HOOK"}))).To(Equal([]string{"1"}))
		Expect(ids(listing.Search(listings, listing.Filter{Term: "backoff"}))).To(Equal([]string{"3"}))
		Expect(ids(listing.Search(listings, listing.Filter{Term: "defi"}))).To(Equal([]string{"2"}))
	})

	It("should filter by language", func() {
		Expect(ids(listing.Search(listings, listing.Filter{Language: "Go"}))).To(Equal([]string{"3"}))
	})

	It("should filter by seller regardless of case", func() {
		Expect(ids(listing.Search(listings, listing.Filter{Seller: "0xA"}))).To(Equal([]string{"1", "3"}))
	})

	It("should list distinct languages in order", func() {
		Expect(listing.Languages(listings)).To(Equal([]string{"Go", "Solidity", "TypeScript"}))
	})
})
