package core_test

import (
	"context"
	"errors"
	"time"
	"walletsync/internal/core"
	"walletsync/internal/core/fake"
	"walletsync/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Contacts", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		walletSync *core.WalletSync
		session    core.Session

		walletA string
		walletB string
		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		walletSync = core.NewWalletSync(fakeLogger, fakeRepo, fakeJWT, 3*time.Second)

		walletA = "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1"
		walletB = "0xffcf8fdee72ac11b5c542428b35eef5769c409f0"
		session = core.Session{Wallet: walletA}
		fakeErr = errors.New("fake error")
	})

	Describe("AddContact", func() {
		var (
			intent core.ContactIntent
			record core.ContactRecord
			err    error
		)

		BeforeEach(func() {
			intent = core.ContactIntent{
				Name:    "Bob",
				Address: "0xFFcf8FDEE72ac11b5c542428B35EEF5769C409f0",
				Tags:    []string{"friend", "work"},
			}

			fakeRepo.SaveContactStub = func(_ context.Context, contact repository.Contact) (repository.Contact, error) {
				contact.ID = "contact-1"
				return contact, nil
			}
		})

		JustBeforeEach(func() {
			record, err = walletSync.AddContact(ctx, session, intent)
		})

		It("should save the contact with a lowercased address", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(record.ID).To(Equal("contact-1"))
			Expect(record.Address).To(Equal(walletB))
			Expect(record.Tags).To(Equal([]string{"friend", "work"}))
			Expect(record.TotalSent).To(Equal("0"))
			Expect(record.TotalReceived).To(Equal("0"))

			Expect(fakeRepo.SaveContactCallCount()).To(Equal(1))
			_, argContact := fakeRepo.SaveContactArgsForCall(0)
			Expect(argContact.OwningWallet).To(Equal(walletA))
			Expect(argContact.Tags).To(Equal("friend,work"))
		})

		When("the address is invalid", func() {
			BeforeEach(func() {
				intent.Address = "bogus"
			})

			It("should return invalid address error", func() {
				Expect(err).To(MatchError(core.ErrInvalidAddress))
				Expect(fakeRepo.SaveContactCallCount()).To(Equal(0))
			})
		})

		When("the contact already exists", func() {
			BeforeEach(func() {
				fakeRepo.SaveContactStub = nil
				fakeRepo.SaveContactReturns(repository.Contact{}, repository.ErrContactExists)
			})

			It("should return contact exists error", func() {
				Expect(err).To(MatchError(core.ErrContactExists))
			})
		})
	})

	Describe("ApplyTransferToContact", func() {
		var err error

		JustBeforeEach(func() {
			err = walletSync.ApplyTransferToContact(ctx, walletA, walletB, "1.5", core.TypeSend, 1700000000000)
		})

		When("the counterparty is not a contact", func() {
			BeforeEach(func() {
				fakeRepo.GetContactByAddressReturns(repository.Contact{}, repository.ErrContactNotFound)
			})

			It("should be a no-op", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.UpdateContactCallCount()).To(Equal(0))
			})
		})

		When("the counterparty is a contact", func() {
			BeforeEach(func() {
				fakeRepo.GetContactByAddressReturns(repository.Contact{
					ID:                "contact-1",
					TotalTransactions: 4,
					TotalSent:         "10.25",
					TotalReceived:     "3",
				}, nil)
			})

			It("should bump the sent totals", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.UpdateContactCallCount()).To(Equal(1))
				_, argWallet, argID, patch := fakeRepo.UpdateContactArgsForCall(0)
				Expect(argWallet).To(Equal(walletA))
				Expect(argID).To(Equal("contact-1"))
				Expect(patch["total_transactions"]).To(Equal(5))
				Expect(patch["total_sent"]).To(Equal("11.75"))
				Expect(patch["last_transaction_date"]).To(Equal(int64(1700000000000)))
				Expect(patch).NotTo(HaveKey("total_received"))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetContactByAddressReturns(repository.Contact{}, fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateContact", func() {
		var (
			update core.ContactUpdate
			err    error
		)

		BeforeEach(func() {
			name := "Bobby"
			favorite := true
			update = core.ContactUpdate{
				Name:       &name,
				IsFavorite: &favorite,
			}
		})

		JustBeforeEach(func() {
			err = walletSync.UpdateContact(ctx, session, "contact-1", update)
		})

		It("should patch only the provided fields", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeRepo.UpdateContactCallCount()).To(Equal(1))
			_, argWallet, argID, patch := fakeRepo.UpdateContactArgsForCall(0)
			Expect(argWallet).To(Equal(walletA))
			Expect(argID).To(Equal("contact-1"))
			Expect(patch["name"]).To(Equal("Bobby"))
			Expect(patch["is_favorite"]).To(Equal(true))
			Expect(patch).NotTo(HaveKey("notes"))
			Expect(patch).NotTo(HaveKey("tags"))
		})

		When("the contact does not exist", func() {
			BeforeEach(func() {
				fakeRepo.UpdateContactReturns(repository.ErrContactNotFound)
			})

			It("should return contact not found error", func() {
				Expect(err).To(MatchError(core.ErrContactNotFound))
			})
		})
	})

	Describe("FrequentContacts", func() {
		var (
			records []core.ContactRecord
			err     error
		)

		BeforeEach(func() {
			fakeRepo.GetFrequentContactsReturns([]repository.Contact{
				{ID: "a", TotalTransactions: 9},
				{ID: "b", TotalTransactions: 4},
			}, nil)
		})

		JustBeforeEach(func() {
			records, err = walletSync.FrequentContacts(ctx, session, 5)
		})

		It("should return the ranked contacts", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].ID).To(Equal("a"))

			Expect(fakeRepo.GetFrequentContactsCallCount()).To(Equal(1))
			_, argWallet, argLimit := fakeRepo.GetFrequentContactsArgsForCall(0)
			Expect(argWallet).To(Equal(walletA))
			Expect(argLimit).To(Equal(5))
		})
	})

	Describe("DeleteContact", func() {
		var err error

		JustBeforeEach(func() {
			err = walletSync.DeleteContact(ctx, session, "contact-1")
		})

		It("should delete the contact", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRepo.DeleteContactCallCount()).To(Equal(1))
			_, argWallet, argID := fakeRepo.DeleteContactArgsForCall(0)
			Expect(argWallet).To(Equal(walletA))
			Expect(argID).To(Equal("contact-1"))
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteContactReturns(fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
