package core_test

import (
	"context"
	"errors"
	"fmt"
	"time"
	"walletsync/internal/core"
	"walletsync/internal/core/fake"
	"walletsync/internal/repository"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Summarize", func() {
	var (
		fakeRepo   *fake.Repository
		fakeJWT    *fake.JWTIssuer
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		walletSync *core.WalletSync

		walletA string
		walletB string
		walletC string
		now     time.Time

		summary core.AnalyticsSummary
		err     error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		walletSync = core.NewWalletSync(fakeLogger, fakeRepo, fakeJWT, 3*time.Second)

		walletA = "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1"
		walletB = "0xffcf8fdee72ac11b5c542428b35eef5769c409f0"
		walletC = "0x22d491bde2303f2f43325b2108d26f1eaba1e32b"

		now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
		core.TimeNow = func() time.Time { return now }
	})

	AfterEach(func() {
		core.TimeNow = time.Now
	})

	JustBeforeEach(func() {
		summary, err = walletSync.Summarize(ctx, walletA)
	})

	When("the wallet has activity across several days", func() {
		BeforeEach(func() {
			// newest first, as the repository returns them
			fakeRepo.GetTransactionsByWalletReturns([]repository.Transaction{
				{Hash: "0x4", OwningWallet: walletA, FromAddress: walletA, ToAddress: walletB,
					Type: core.TypeSend, Value: "1", Timestamp: now.UnixMilli()},
				{Hash: "0x3", OwningWallet: walletA, FromAddress: walletA, ToAddress: walletC,
					Type: core.TypeSend, Value: "0.5", Timestamp: now.AddDate(0, 0, -10).UnixMilli()},
				{Hash: "0x2", OwningWallet: walletA, FromAddress: walletC, ToAddress: walletA,
					Type: core.TypeReceive, Value: "2", Timestamp: now.AddDate(0, 0, -10).UnixMilli()},
				{Hash: "0x1", OwningWallet: walletA, FromAddress: walletA, ToAddress: walletB,
					Type: core.TypeSend, Value: "1.5", Timestamp: now.AddDate(0, 0, -40).UnixMilli()},
			}, nil)
		})

		It("should sum sent and received as decimal strings", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.TotalSent).To(Equal("3"))
			Expect(summary.TotalReceived).To(Equal("2"))
			Expect(summary.TotalTransactions).To(Equal(4))
		})

		It("should bucket activity per UTC day", func() {
			Expect(summary.DailyActivity).To(Equal(map[string]int{
				"2024-05-06": 1,
				"2024-06-05": 2,
				"2024-06-15": 1,
			}))
		})

		It("should keep only the last 30 days in recent activity, oldest first", func() {
			Expect(summary.RecentActivity).To(Equal([]core.DailyCount{
				{Date: "2024-06-05", Count: 2},
				{Date: "2024-06-15", Count: 1},
			}))
		})

		It("should break counterparty ties by first interaction", func() {
			Expect(summary.TopContacts).To(Equal([]core.TopContact{
				{Address: walletB, Count: 2},
				{Address: walletC, Count: 2},
			}))
		})
	})

	When("the wallet has more than ten counterparties", func() {
		BeforeEach(func() {
			transactions := make([]repository.Transaction, 0, 12)
			for i := 0; i < 12; i++ {
				address := repository.Transaction{
					Hash:         "0x1",
					OwningWallet: walletA,
					FromAddress:  walletA,
					ToAddress:    testAddress(i),
					Type:         core.TypeSend,
					Value:        "1",
					Timestamp:    now.UnixMilli(),
				}
				transactions = append(transactions, address)
			}
			fakeRepo.GetTransactionsByWalletReturns(transactions, nil)
		})

		It("should cap top contacts at ten", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.TopContacts).To(HaveLen(10))
		})
	})

	When("a transfer carries an unparseable value", func() {
		BeforeEach(func() {
			fakeRepo.GetTransactionsByWalletReturns([]repository.Transaction{
				{Hash: "0x2", OwningWallet: walletA, FromAddress: walletA, ToAddress: walletB,
					Type: core.TypeSend, Value: "1", Timestamp: now.UnixMilli()},
				{Hash: "0x1", OwningWallet: walletA, FromAddress: walletA, ToAddress: walletB,
					Type: core.TypeSend, Value: "garbage", Timestamp: now.UnixMilli()},
			}, nil)
		})

		It("should skip it in the sums but keep it in the counts", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.TotalSent).To(Equal("1"))
			Expect(summary.TotalTransactions).To(Equal(2))
			Expect(summary.DailyActivity["2024-06-15"]).To(Equal(2))
			Expect(summary.TopContacts).To(Equal([]core.TopContact{{Address: walletB, Count: 2}}))
		})
	})

	When("the wallet has no transactions", func() {
		BeforeEach(func() {
			fakeRepo.GetTransactionsByWalletReturns(nil, nil)
		})

		It("should return zeroed totals", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.TotalSent).To(Equal("0"))
			Expect(summary.TotalReceived).To(Equal("0"))
			Expect(summary.TotalTransactions).To(Equal(0))
			Expect(summary.RecentActivity).To(BeEmpty())
			Expect(summary.TopContacts).To(BeEmpty())
		})
	})

	When("the query fails", func() {
		BeforeEach(func() {
			fakeRepo.GetTransactionsByWalletReturns(nil, errors.New("fake error"))
		})

		It("should return error", func() {
			Expect(err).To(HaveOccurred())
		})
	})
})

func testAddress(i int) string {
	return fmt.Sprintf("0x%040x", i+1)
}
