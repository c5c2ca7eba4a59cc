package repository_test

import (
	"codemart/internal/db"
	"codemart/internal/repository"
	"codemart/internal/repository/fake"
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PurchaseRepository", func() {
	var (
		repo        *repository.PurchaseRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewPurchaseRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	It("should store purchases in the code_purchases table", func() {
		Expect(repository.PurchaseRecord{}.TableName()).To(Equal("code_purchases"))
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			It("should migrate the purchase table", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(1))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.PurchaseRecord{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("SavePurchase", func() {
		var (
			record repository.PurchaseRecord
			err    error
		)

		BeforeEach(func() {
			record = repository.PurchaseRecord{
				ListingID:       "L1",
				BuyerAddress:    "0xBUYER",
				SellerAddress:   "0xSELLER",
				Price:           "0.05",
				TransactionHash: "0xTXHASH",
			}
		})

		JustBeforeEach(func() {
			err = repo.SavePurchase(ctx, record)
		})

		When("the insert succeeds", func() {
			It("should insert the record", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.InsertCallCount()).To(Equal(1))
				_, arg := fakeStorage.InsertArgsForCall(0)
				Expect(arg).To(Equal(&record))
			})
		})

		When("the transaction hash is already recorded", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(db.ErrDuplicate)
			})

			It("should return ErrDuplicatePurchase", func() {
				Expect(err).To(MatchError(repository.ErrDuplicatePurchase))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrDuplicatePurchase))
			})
		})
	})

	Describe("GetPurchaseByTxHash", func() {
		var (
			record repository.PurchaseRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = repo.GetPurchaseByTxHash(ctx, "0xTXHASH")
		})

		When("the purchase exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					rec := dest.(*repository.PurchaseRecord)
					*rec = repository.PurchaseRecord{ListingID: "L1", TransactionHash: "0xTXHASH"}
					return nil
				}
			})

			It("should return it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ListingID).To(Equal("L1"))

				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("transaction_hash"))
				Expect(val).To(Equal("0xTXHASH"))
			})
		})

		When("the purchase does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return ErrPurchaseNotFound", func() {
				Expect(err).To(MatchError(repository.ErrPurchaseNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetPurchasesByListing", func() {
		var (
			records []repository.PurchaseRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = repo.GetPurchasesByListing(ctx, "L1")
		})

		When("purchases exist", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByStub = func(ctx context.Context, column string, value any, dest any) error {
					recs := dest.(*[]repository.PurchaseRecord)
					*recs = []repository.PurchaseRecord{
						{TransactionHash: "0x1"},
						{TransactionHash: "0x2"},
					}
					return nil
				}
			})

			It("should return them", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(HaveLen(2))

				_, col, val, _ := fakeStorage.GetAllByArgsForCall(0)
				Expect(col).To(Equal("listing_id"))
				Expect(val).To(Equal([]string{"L1"}))
			})
		})

		When("no purchases exist", func() {
			It("should return an empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(BeEmpty())
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
