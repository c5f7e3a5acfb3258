package repository_test

import (
	"context"
	"errors"
	"walletsync/internal/db"
	"walletsync/internal/repository"
	"walletsync/internal/repository/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LedgerRepository", func() {
	var (
		repo        *repository.LedgerRepository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error

		walletA string
		walletB string
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewLedgerRepository(fakeStorage, func() int64 { return 1700000000000 })
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		walletA = "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1"
		walletB = "0xffcf8fdee72ac11b5c542428b35eef5769c409f0"
	})

	Describe("MigrateAndSeed", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateAndSeed()
		})

		When("migration succeeds", func() {
			It("should migrate tables and seed wallets", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(5))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.Transaction{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Contact{}))
				Expect(tables[2]).To(BeAssignableToTypeOf(&repository.Purchase{}))
				Expect(tables[3]).To(BeAssignableToTypeOf(&repository.Wallet{}))
				Expect(tables[4]).To(BeAssignableToTypeOf(&repository.StatusUpdate{}))

				Expect(fakeStorage.SeedCallCount()).To(Equal(1))
				_, records := fakeStorage.SeedArgsForCall(0)
				Expect(records).To(BeAssignableToTypeOf(&[]repository.Wallet{}))
				wallets := *records.(*[]repository.Wallet)
				Expect(wallets).To(HaveLen(2))
				Expect(wallets[0].Address).To(Equal(walletA))
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

		When("seeding fails", func() {
			BeforeEach(func() {
				fakeStorage.SeedReturns(errors.New("seed error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("seed database: seed error"))
			})
		})
	})

	Describe("GetWallet", func() {
		var (
			wallet repository.Wallet
			err    error
		)

		JustBeforeEach(func() {
			wallet, err = repo.GetWallet(ctx, "0x90F8bf6A479f320ead074411a4B0e7944Ea8c9C1")
		})

		When("the wallet exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(_ context.Context, column string, value any, entity any) error {
					Expect(column).To(Equal("address"))
					Expect(value).To(Equal(walletA))
					*entity.(*repository.Wallet) = repository.Wallet{Address: walletA}
					return nil
				}
			})

			It("should look up by lowercased address", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(wallet.Address).To(Equal(walletA))
			})
		})

		When("the wallet does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return wallet not found error", func() {
				Expect(err).To(MatchError(repository.ErrWalletNotFound))
			})
		})
	})

	Describe("SaveTransaction", func() {
		var (
			transaction repository.Transaction
			err         error
		)

		BeforeEach(func() {
			transaction = repository.Transaction{Hash: "0xabc1", OwningWallet: walletA}
		})

		JustBeforeEach(func() {
			err = repo.SaveTransaction(ctx, transaction)
		})

		It("should persist the record", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
			_, arg := fakeStorage.SaveToTableArgsForCall(0)
			Expect(arg).To(Equal(&[]repository.Transaction{transaction}))
		})

		When("the save fails", func() {
			BeforeEach(func() {
				fakeStorage.SaveToTableReturns(fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetTransactionByHash", func() {
		var (
			transaction repository.Transaction
			err         error
		)

		JustBeforeEach(func() {
			transaction, err = repo.GetTransactionByHash(ctx, walletA, "0xabc1")
		})

		When("the record exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereStub = func(_ context.Context, entity any, query string, args ...any) error {
					Expect(query).To(Equal("owning_wallet = ? AND hash = ?"))
					Expect(args).To(Equal([]any{walletA, "0xabc1"}))
					*entity.(*repository.Transaction) = repository.Transaction{Hash: "0xabc1"}
					return nil
				}
			})

			It("should return the record from the wallet partition", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(transaction.Hash).To(Equal("0xabc1"))
			})
		})

		When("the record does not exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereReturns(db.ErrNotFound)
			})

			It("should return transaction not found error", func() {
				Expect(err).To(MatchError(repository.ErrTransactionNotFound))
			})
		})
	})

	Describe("GetTransactionsByWallet", func() {
		var err error

		JustBeforeEach(func() {
			_, err = repo.GetTransactionsByWallet(ctx, walletA, 50, 10)
		})

		It("should query newest first with paging", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeStorage.GetAllWhereCallCount()).To(Equal(1))
			_, _, order, limit, offset, query, args := fakeStorage.GetAllWhereArgsForCall(0)
			Expect(order).To(Equal("timestamp DESC"))
			Expect(limit).To(Equal(50))
			Expect(offset).To(Equal(10))
			Expect(query).To(Equal("owning_wallet = ?"))
			Expect(args).To(Equal([]any{walletA}))
		})
	})

	Describe("GetTransactionsWithAddress", func() {
		var err error

		JustBeforeEach(func() {
			_, err = repo.GetTransactionsWithAddress(ctx, walletA, "0xFFcf8FDEE72ac11b5c542428B35EEF5769C409f0")
		})

		It("should match either side of the transfer", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeStorage.GetAllWhereCallCount()).To(Equal(1))
			_, _, _, _, _, query, args := fakeStorage.GetAllWhereArgsForCall(0)
			Expect(query).To(Equal("owning_wallet = ? AND (from_address = ? OR to_address = ?)"))
			Expect(args).To(Equal([]any{walletA, walletB, walletB}))
		})
	})

	Describe("UpdateTransactionStatus", func() {
		var (
			confirmations *int
			found         bool
			err           error
		)

		BeforeEach(func() {
			conf := 12
			confirmations = &conf
			fakeStorage.UpdateWhereReturns(1, nil)
		})

		JustBeforeEach(func() {
			found, err = repo.UpdateTransactionStatus(ctx, walletA, "0xabc1", "confirmed", confirmations)
		})

		It("should patch status and confirmations on the partition copy", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())

			Expect(fakeStorage.UpdateWhereCallCount()).To(Equal(1))
			_, model, patch, query, args := fakeStorage.UpdateWhereArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.Transaction{}))
			Expect(patch).To(Equal(map[string]any{"status": "confirmed", "confirmations": 12}))
			Expect(query).To(Equal("owning_wallet = ? AND hash = ?"))
			Expect(args).To(Equal([]any{walletA, "0xabc1"}))
		})

		When("confirmations are not supplied", func() {
			BeforeEach(func() {
				confirmations = nil
			})

			It("should only patch the status", func() {
				Expect(err).NotTo(HaveOccurred())
				_, _, patch, _, _ := fakeStorage.UpdateWhereArgsForCall(0)
				Expect(patch).To(Equal(map[string]any{"status": "confirmed"}))
			})
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("should report not found without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(found).To(BeFalse())
			})
		})
	})

	Describe("SaveContact", func() {
		var (
			contact repository.Contact
			saved   repository.Contact
			err     error
		)

		BeforeEach(func() {
			contact = repository.Contact{
				OwningWallet: walletA,
				Name:         "Bob",
				Address:      walletB,
			}
			fakeStorage.GetOneWhereReturns(db.ErrNotFound)
		})

		JustBeforeEach(func() {
			saved, err = repo.SaveContact(ctx, contact)
		})

		It("should assign an id and timestamps", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(uuid.Validate(saved.ID)).To(Succeed())
			Expect(saved.CreatedAt).To(Equal(int64(1700000000000)))
			Expect(saved.UpdatedAt).To(Equal(int64(1700000000000)))

			Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
		})

		When("a contact already exists for the address", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereReturns(nil)
			})

			It("should return contact exists error", func() {
				Expect(err).To(MatchError(repository.ErrContactExists))
				Expect(fakeStorage.SaveToTableCallCount()).To(Equal(0))
			})
		})
	})

	Describe("GetContactByAddress", func() {
		var err error

		JustBeforeEach(func() {
			_, err = repo.GetContactByAddress(ctx, walletA, "0xFFcf8FDEE72ac11b5c542428B35EEF5769C409f0")
		})

		It("should match the address case-insensitively", func() {
			Expect(err).NotTo(HaveOccurred())

			_, _, query, args := fakeStorage.GetOneWhereArgsForCall(0)
			Expect(query).To(Equal("owning_wallet = ? AND LOWER(address) = ?"))
			Expect(args).To(Equal([]any{walletA, walletB}))
		})

		When("no contact matches", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereReturns(db.ErrNotFound)
			})

			It("should return contact not found error", func() {
				Expect(err).To(MatchError(repository.ErrContactNotFound))
			})
		})
	})

	Describe("UpdateContact", func() {
		var (
			patch map[string]any
			err   error
		)

		BeforeEach(func() {
			patch = map[string]any{"name": "Bobby"}
			fakeStorage.UpdateWhereReturns(1, nil)
		})

		JustBeforeEach(func() {
			err = repo.UpdateContact(ctx, walletA, "contact-1", patch)
		})

		It("should stamp updated_at into the patch", func() {
			Expect(err).NotTo(HaveOccurred())

			_, _, argPatch, query, args := fakeStorage.UpdateWhereArgsForCall(0)
			Expect(argPatch["name"]).To(Equal("Bobby"))
			Expect(argPatch["updated_at"]).To(Equal(int64(1700000000000)))
			Expect(query).To(Equal("owning_wallet = ? AND id = ?"))
			Expect(args).To(Equal([]any{walletA, "contact-1"}))
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("should return contact not found error", func() {
				Expect(err).To(MatchError(repository.ErrContactNotFound))
			})
		})
	})

	Describe("SavePurchase", func() {
		var (
			saved repository.Purchase
			err   error
		)

		JustBeforeEach(func() {
			saved, err = repo.SavePurchase(ctx, repository.Purchase{OwningWallet: walletA})
		})

		It("should assign an id", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(uuid.Validate(saved.ID)).To(Succeed())
			Expect(fakeStorage.SaveToTableCallCount()).To(Equal(1))
		})
	})

	Describe("GetPurchaseByProviderTx", func() {
		var err error

		JustBeforeEach(func() {
			_, err = repo.GetPurchaseByProviderTx(ctx, "moonpay-tx-1")
		})

		It("should look up by provider transaction id", func() {
			Expect(err).NotTo(HaveOccurred())

			_, _, query, args := fakeStorage.GetOneWhereArgsForCall(0)
			Expect(query).To(Equal("provider_transaction_id = ?"))
			Expect(args).To(Equal([]any{"moonpay-tx-1"}))
		})

		When("no purchase matches", func() {
			BeforeEach(func() {
				fakeStorage.GetOneWhereReturns(db.ErrNotFound)
			})

			It("should return purchase not found error", func() {
				Expect(err).To(MatchError(repository.ErrPurchaseNotFound))
			})
		})
	})

	Describe("UpdatePurchaseStatus", func() {
		var (
			transactionHash *string
			err             error
		)

		BeforeEach(func() {
			hash := "0xabc1"
			transactionHash = &hash
			fakeStorage.UpdateWhereReturns(1, nil)
		})

		JustBeforeEach(func() {
			err = repo.UpdatePurchaseStatus(ctx, walletA, "purchase-1", "completed", transactionHash)
		})

		It("should attach the transaction hash", func() {
			Expect(err).NotTo(HaveOccurred())

			_, _, patch, _, _ := fakeStorage.UpdateWhereArgsForCall(0)
			Expect(patch).To(Equal(map[string]any{"status": "completed", "transaction_hash": "0xabc1"}))
		})

		When("no row matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateWhereReturns(0, nil)
			})

			It("should return purchase not found error", func() {
				Expect(err).To(MatchError(repository.ErrPurchaseNotFound))
			})
		})
	})

	Describe("DueStatusUpdates", func() {
		var err error

		JustBeforeEach(func() {
			_, err = repo.DueStatusUpdates(ctx, 1700000000000)
		})

		It("should select jobs whose not-before instant has passed", func() {
			Expect(err).NotTo(HaveOccurred())

			_, _, order, _, _, query, args := fakeStorage.GetAllWhereArgsForCall(0)
			Expect(order).To(Equal("not_before ASC"))
			Expect(query).To(Equal("not_before <= ?"))
			Expect(args).To(Equal([]any{int64(1700000000000)}))
		})
	})

	Describe("CancelStatusUpdates", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.CancelStatusUpdates(ctx, "0xabc1")
		})

		It("should delete every scheduled transition for the hash", func() {
			Expect(err).NotTo(HaveOccurred())

			_, model, query, args := fakeStorage.DeleteWhereArgsForCall(0)
			Expect(model).To(BeAssignableToTypeOf(&repository.StatusUpdate{}))
			Expect(query).To(Equal("hash = ?"))
			Expect(args).To(Equal([]any{"0xabc1"}))
		})
	})
})
