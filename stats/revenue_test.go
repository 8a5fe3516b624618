package stats_test

import (
	"testing"

	"github.com/mmdatafocus/finance_bot/stats"
	"github.com/shopspring/decimal"
)

func TestComputeRevenueScenario(t *testing.T) {
	// available=10000, pending=2000, paid payouts=50000, pending payouts=3000,
	// expenses=$100.00 => totalRevenue $650.00, trueTotal $550.00.
	balance := stats.BalanceSnapshot{Available: 10000, Pending: 2000}
	expenses := decimal.RequireFromString("100.00")

	summary := stats.ComputeRevenue(balance, 50000, 3000, expenses)

	if summary.TotalRevenueCents != 65000 {
		t.Fatalf("total revenue cents = %d, want 65000", summary.TotalRevenueCents)
	}
	if !summary.TotalRevenue.Equal(decimal.RequireFromString("650")) {
		t.Fatalf("total revenue = %s, want 650", summary.TotalRevenue)
	}
	if !summary.TrueTotal.Equal(decimal.RequireFromString("550")) {
		t.Fatalf("true total = %s, want 550", summary.TrueTotal)
	}
}

func TestComputeRevenueExpensesAlwaysSubtract(t *testing.T) {
	balance := stats.BalanceSnapshot{Available: 1000}
	summary := stats.ComputeRevenue(balance, 0, 0, decimal.RequireFromString("25.50"))
	if !summary.TrueTotal.Equal(decimal.RequireFromString("-15.50")) {
		t.Fatalf("true total = %s, want -15.50", summary.TrueTotal)
	}
}

func TestFilterPaidAndSum(t *testing.T) {
	payouts := []stats.Payout{
		{ID: "po_1", Amount: 100, Status: stats.PayoutStatusPaid},
		{ID: "po_2", Amount: 200, Status: "pending"},
		{ID: "po_3", Amount: 300, Status: stats.PayoutStatusPaid},
		{ID: "po_4", Amount: 400, Status: "failed"},
	}
	paid := stats.FilterPaid(payouts)
	if len(paid) != 2 {
		t.Fatalf("paid payouts = %d, want 2", len(paid))
	}
	if total := stats.SumPayouts(paid); total != 400 {
		t.Fatalf("paid payout sum = %d, want 400", total)
	}
	if total := stats.SumPayouts(payouts); total != 1000 {
		t.Fatalf("all payout sum = %d, want 1000", total)
	}
}

func TestBalanceSnapshotTotal(t *testing.T) {
	b := stats.BalanceSnapshot{Available: 10, Pending: 15}
	if b.Total() != 25 {
		t.Fatalf("total = %d, want 25", b.Total())
	}
}
