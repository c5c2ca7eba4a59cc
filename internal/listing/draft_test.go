package listing_test

import (
	"codemart/internal/listing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Draft", func() {
	var draft listing.Draft

	BeforeEach(func() {
		draft = listing.Draft{
			Title:       "  Retry helper ",
			Description: "Exponential backoff",
			Code:        "func Retry() {}",
			Language:    "Go",
			Price:       "0.01",
			Tags:        []string{"go", "", "  retry  "},
		}
	})

	Describe("Validate", func() {
		It("should accept a complete draft", func() {
			Expect(draft.Validate()).To(Succeed())
		})

		DescribeTable("should reject",
			func(mutate func(d *listing.Draft)) {
				mutate(&draft)
				Expect(draft.Validate()).NotTo(Succeed())
			},
			Entry("a blank title", func(d *listing.Draft) { d.Title = "   " }),
			Entry("a missing description", func(d *listing.Draft) { d.Description = "" }),
			Entry("blank code", func(d *listing.Draft) { d.Code = "\n\t" }),
			Entry("an unknown language", func(d *listing.Draft) { d.Language = "COBOL" }),
			Entry("a zero price", func(d *listing.Draft) { d.Price = "0" }),
			Entry("a negative price", func(d *listing.Draft) { d.Price = "-0.5" }),
			Entry("a price that is not a number", func(d *listing.Draft) { d.Price = "cheap" }),
			Entry("a price finer than one wei", func(d *listing.Draft) { d.Price = "0.0000000000000000001" }),
			Entry("a price in exponent notation", func(d *listing.Draft) { d.Price = "1e20000000" }),
			Entry("too many tags", func(d *listing.Draft) { d.Tags = []string{"a", "b", "c", "d", "e", "f"} }),
		)

		It("should not count blank tags towards the limit", func() {
			draft.Tags = []string{"a", "b", "c", "d", "e", " ", ""}
			Expect(draft.Validate()).To(Succeed())
		})
	})

	Describe("New", func() {
		var now time.Time

		BeforeEach(func() {
			now = time.UnixMilli(1700000000000)
			listing.TimeNow = func() time.Time { return now }
		})

		AfterEach(func() {
			listing.TimeNow = time.Now
		})

		It("should build a normalized listing", func() {
			l := listing.New(draft, "0xSeller")
			Expect(l.ID).NotTo(BeEmpty())
			Expect(l.Title).To(Equal("Retry helper"))
			Expect(l.Seller).To(Equal("0xSeller"))
			Expect(l.CreatedAt).To(Equal(int64(1700000000000)))
			Expect(l.Tags).To(Equal([]string{"go", "retry"}))
			Expect(l.Purchasers).NotTo(BeNil())
			Expect(l.Purchasers).To(BeEmpty())
		})

		It("should give every listing its own id", func() {
			Expect(listing.New(draft, "0xSeller").ID).NotTo(Equal(listing.New(draft, "0xSeller").ID))
		})
	})
})
