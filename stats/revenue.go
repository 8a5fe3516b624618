package stats

import "github.com/shopspring/decimal"

// BalanceSnapshot is the processor's current balance, integer cents.
type BalanceSnapshot struct {
	Available int64
	Pending   int64
}

func (b BalanceSnapshot) Total() int64 {
	return b.Available + b.Pending
}

// Payout is one processor payout, integer cents.
type Payout struct {
	ID          string
	Amount      int64
	Status      string
	ArrivalDate int64
	Description string
}

const PayoutStatusPaid = "paid"

// FilterPaid keeps payouts whose status is paid.
func FilterPaid(payouts []Payout) []Payout {
	var paid []Payout
	for _, p := range payouts {
		if p.Status == PayoutStatusPaid {
			paid = append(paid, p)
		}
	}
	return paid
}

// SumPayouts totals payout amounts in cents.
func SumPayouts(payouts []Payout) int64 {
	var total int64
	for _, p := range payouts {
		total += p.Amount
	}
	return total
}

// RevenueSummary is the reconciled revenue/profit view. Cents fields feed
// FormatCurrency; the dollar figures are exact decimals, never floats.
type RevenueSummary struct {
	AvailableCents     int64
	PendingCents       int64
	PaidPayoutCents    int64
	PendingPayoutCents int64
	TotalRevenueCents  int64
	TotalRevenue       decimal.Decimal
	TotalExpenses      decimal.Decimal
	TrueTotal          decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// CentsToDecimal converts a cent amount to exact dollars.
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(hundred)
}

// ComputeRevenue composes four external reads and the expense aggregate:
//
//	totalRevenue = (available + pending + paid payouts + pending payouts) / 100
//	trueTotal    = totalRevenue - totalExpenses
//
// The division by 100 happens exactly once, here. totalExpenses is a
// positive magnitude and is always subtracted.
func ComputeRevenue(balance BalanceSnapshot, paidPayoutCents, pendingPayoutCents int64, totalExpenses decimal.Decimal) RevenueSummary {
	totalCents := balance.Available + balance.Pending + paidPayoutCents + pendingPayoutCents
	totalRevenue := decimal.NewFromInt(totalCents).Div(hundred)
	return RevenueSummary{
		AvailableCents:     balance.Available,
		PendingCents:       balance.Pending,
		PaidPayoutCents:    paidPayoutCents,
		PendingPayoutCents: pendingPayoutCents,
		TotalRevenueCents:  totalCents,
		TotalRevenue:       totalRevenue,
		TotalExpenses:      totalExpenses,
		TrueTotal:          totalRevenue.Sub(totalExpenses),
	}
}
