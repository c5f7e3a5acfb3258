package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Summarize computes the on-demand rollup over one wallet's full transaction
// set: decimal-string totals, a UTC daily histogram, the last-30-days activity
// and the ten most frequent counterparties.
func (w *WalletSync) Summarize(ctx context.Context, wallet string) (AnalyticsSummary, error) {
	transactions, err := w.repo.GetTransactionsByWallet(ctx, wallet, 0, 0)
	if err != nil {
		return AnalyticsSummary{}, fmt.Errorf("get transactions: %w", err)
	}

	totalSent := decimal.Zero
	totalReceived := decimal.Zero
	daily := map[string]int{}
	counts := map[string]int{}
	firstSeen := map[string]int{}

	// the partition arrives newest first; walk it oldest first so counterparty
	// ties break on who was interacted with earlier
	seen := 0
	for i := len(transactions) - 1; i >= 0; i-- {
		tx := transactions[i]

		date := time.UnixMilli(tx.Timestamp).UTC().Format("2006-01-02")
		daily[date]++

		counterparty := counterpartyOf(tx)
		if _, ok := firstSeen[counterparty]; !ok {
			firstSeen[counterparty] = seen
			seen++
		}
		counts[counterparty]++

		value, err := decimal.NewFromString(tx.Value)
		if err != nil {
			w.logs.Warnw("skipping unparseable transfer value", "hash", tx.Hash, "value", tx.Value)
			continue
		}

		if tx.Type == TypeSend {
			totalSent = totalSent.Add(value)
		} else {
			totalReceived = totalReceived.Add(value)
		}
	}

	cutoff := TimeNow().UTC().AddDate(0, 0, -30).Format("2006-01-02")
	recent := []DailyCount{}
	for date, count := range daily {
		if date >= cutoff {
			recent = append(recent, DailyCount{Date: date, Count: count})
		}
	}
	sort.Slice(recent, func(i, j int) bool { return recent[i].Date < recent[j].Date })

	top := make([]TopContact, 0, len(counts))
	for address, count := range counts {
		top = append(top, TopContact{Address: address, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return firstSeen[top[i].Address] < firstSeen[top[j].Address]
	})
	if len(top) > 10 {
		top = top[:10]
	}

	return AnalyticsSummary{
		TotalSent:         totalSent.String(),
		TotalReceived:     totalReceived.String(),
		TotalTransactions: len(transactions),
		DailyActivity:     daily,
		RecentActivity:    recent,
		TopContacts:       top,
	}, nil
}
