package core_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
	"walletsync/internal/core"
	"walletsync/internal/core/fake"
	"walletsync/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func signPayload(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

var _ = Describe("Purchases", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		walletSync *core.WalletSync
		session    core.Session

		walletA string
		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		walletSync = core.NewWalletSync(fakeLogger, fakeRepo, fakeJWT, 3*time.Second)

		walletA = "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1"
		session = core.Session{Wallet: walletA}
		fakeErr = errors.New("fake error")
	})

	Describe("RecordPurchase", func() {
		var (
			intent core.PurchaseIntent
			record core.PurchaseRecord
			err    error
		)

		BeforeEach(func() {
			providerTx := "moonpay-tx-1"
			intent = core.PurchaseIntent{
				Provider:              "moonpay",
				FiatAmount:            "100",
				FiatCurrency:          "USD",
				CryptoAmount:          "0.05",
				CryptoCurrency:        "ETH",
				PaymentMethod:         "card",
				ProviderTransactionID: &providerTx,
			}

			fakeRepo.SavePurchaseStub = func(_ context.Context, purchase repository.Purchase) (repository.Purchase, error) {
				purchase.ID = "purchase-1"
				return purchase, nil
			}
		})

		JustBeforeEach(func() {
			record, err = walletSync.RecordPurchase(ctx, session, intent)
		})

		It("should save a pending purchase in the wallet partition", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(record.ID).To(Equal("purchase-1"))
			Expect(record.Status).To(Equal(core.PurchasePending))
			Expect(record.OwningWallet).To(Equal(walletA))
			Expect(record.Fees).To(Equal("0"))

			Expect(fakeRepo.SavePurchaseCallCount()).To(Equal(1))
			_, argPurchase := fakeRepo.SavePurchaseArgsForCall(0)
			Expect(argPurchase.OwningWallet).To(Equal(walletA))
		})

		When("the fiat amount is invalid", func() {
			BeforeEach(func() {
				intent.FiatAmount = "lots"
			})

			It("should return invalid amount error", func() {
				Expect(err).To(MatchError(core.ErrInvalidAmount))
				Expect(fakeRepo.SavePurchaseCallCount()).To(Equal(0))
			})
		})

		When("the crypto amount is negative", func() {
			BeforeEach(func() {
				intent.CryptoAmount = "-0.05"
			})

			It("should return invalid amount error", func() {
				Expect(err).To(MatchError(core.ErrInvalidAmount))
			})
		})
	})

	Describe("UpdatePurchaseStatus", func() {
		var err error

		JustBeforeEach(func() {
			hash := "0xabc1"
			err = walletSync.UpdatePurchaseStatus(ctx, session, "purchase-1", core.PurchaseCompleted, &hash)
		})

		It("should update the purchase in the wallet partition", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(fakeRepo.UpdatePurchaseStatusCallCount()).To(Equal(1))
			_, argWallet, argID, argStatus, argHash := fakeRepo.UpdatePurchaseStatusArgsForCall(0)
			Expect(argWallet).To(Equal(walletA))
			Expect(argID).To(Equal("purchase-1"))
			Expect(argStatus).To(Equal(core.PurchaseCompleted))
			Expect(*argHash).To(Equal("0xabc1"))
		})

		When("the purchase does not exist", func() {
			BeforeEach(func() {
				fakeRepo.UpdatePurchaseStatusReturns(repository.ErrPurchaseNotFound)
			})

			It("should return purchase not found error", func() {
				Expect(err).To(MatchError(core.ErrPurchaseNotFound))
			})
		})
	})

	Describe("HandleProviderWebhook", func() {
		var (
			provider  string
			payload   []byte
			signature string
			secret    string
			err       error
		)

		BeforeEach(func() {
			provider = "moonpay"
			secret = "webhook-secret"
			payload = []byte(`{"type":"transaction_updated","data":{"id":"moonpay-tx-1","status":"completed","cryptoTransactionId":"0xabc1"}}`)
			signature = signPayload(secret, payload)

			fakeRepo.GetPurchaseByProviderTxReturns(repository.Purchase{
				ID:           "purchase-1",
				OwningWallet: walletA,
			}, nil)
		})

		JustBeforeEach(func() {
			err = walletSync.HandleProviderWebhook(ctx, provider, payload, signature, secret)
		})

		It("should apply the normalized event to the matching purchase", func() {
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeRepo.GetPurchaseByProviderTxCallCount()).To(Equal(1))
			_, argProviderTx := fakeRepo.GetPurchaseByProviderTxArgsForCall(0)
			Expect(argProviderTx).To(Equal("moonpay-tx-1"))

			Expect(fakeRepo.UpdatePurchaseStatusCallCount()).To(Equal(1))
			_, argWallet, argID, argStatus, argHash := fakeRepo.UpdatePurchaseStatusArgsForCall(0)
			Expect(argWallet).To(Equal(walletA))
			Expect(argID).To(Equal("purchase-1"))
			Expect(argStatus).To(Equal(core.PurchaseCompleted))
			Expect(*argHash).To(Equal("0xabc1"))
		})

		When("the signature does not match", func() {
			BeforeEach(func() {
				signature = "deadbeef"
			})

			It("should return invalid signature error", func() {
				Expect(err).To(MatchError(core.ErrInvalidSignature))
				Expect(fakeRepo.UpdatePurchaseStatusCallCount()).To(Equal(0))
			})
		})

		When("the event type is not acted on", func() {
			BeforeEach(func() {
				payload = []byte(`{"type":"transaction_created","data":{"id":"moonpay-tx-1","status":"created"}}`)
				signature = signPayload(secret, payload)
			})

			It("should ignore the event", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.GetPurchaseByProviderTxCallCount()).To(Equal(0))
			})
		})

		When("the provider is unknown", func() {
			BeforeEach(func() {
				provider = "shadypay"
			})

			It("should return unknown provider error", func() {
				Expect(err).To(MatchError(core.ErrUnknownProvider))
			})
		})

		When("the provider is transak", func() {
			BeforeEach(func() {
				provider = "transak"
				payload = []byte(`{"eventID":"transak-tx-1","status":"ORDER_COMPLETED","orderData":{"transactionHash":"0xabc2"}}`)
				signature = signPayload(secret, payload)
			})

			It("should normalize the provider status", func() {
				Expect(err).NotTo(HaveOccurred())
				_, _, _, argStatus, argHash := fakeRepo.UpdatePurchaseStatusArgsForCall(0)
				Expect(argStatus).To(Equal(core.PurchaseCompleted))
				Expect(*argHash).To(Equal("0xabc2"))
			})
		})

		When("the provider is ramp", func() {
			BeforeEach(func() {
				provider = "ramp"
				payload = []byte(`{"type":"RELEASED","purchase":{"id":"ramp-tx-1"}}`)
				signature = signPayload(secret, payload)
			})

			It("should resolve the purchase by provider id", func() {
				Expect(err).NotTo(HaveOccurred())
				_, argProviderTx := fakeRepo.GetPurchaseByProviderTxArgsForCall(0)
				Expect(argProviderTx).To(Equal("ramp-tx-1"))
				_, _, _, argStatus, _ := fakeRepo.UpdatePurchaseStatusArgsForCall(0)
				Expect(argStatus).To(Equal(core.PurchaseCompleted))
			})
		})

		When("no purchase matches the provider transaction", func() {
			BeforeEach(func() {
				fakeRepo.GetPurchaseByProviderTxReturns(repository.Purchase{}, repository.ErrPurchaseNotFound)
			})

			It("should return purchase not found error", func() {
				Expect(err).To(MatchError(core.ErrPurchaseNotFound))
			})
		})

		When("the update fails", func() {
			BeforeEach(func() {
				fakeRepo.UpdatePurchaseStatusReturns(fakeErr)
			})

			It("should return error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
