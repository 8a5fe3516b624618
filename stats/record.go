package stats

import "context"

// StatusSucceeded is the processor status a record must carry to count.
const StatusSucceeded = "succeeded"

// PaymentRecord is the normalized shape of the two processor record kinds we
// aggregate. PaymentIntent-like records settle into a charge and may carry
// AmountReceived and LatestChargeID; Charge-like records carry Paid and never
// a LatestChargeID. Email is the record's fallback identity field: the
// receipt email for intents, the billing-details email for charges (mapped by
// the source adapter).
type PaymentRecord struct {
	ID             string
	Status         string
	Paid           bool
	Created        int64
	Amount         int64
	AmountReceived int64
	CustomerID     string
	Email          string
	LatestChargeID string
}

// Page is one page of a cursor-paginated listing.
type Page struct {
	Records []PaymentRecord
	HasMore bool
}

// ListPageFunc fetches a single page of records created within w. An empty
// startingAfter means the first page; otherwise it is the id of the last
// record of the previous page.
type ListPageFunc func(ctx context.Context, w TimeWindow, limit int, startingAfter string) (Page, error)

// PaymentSource is the processor read API the aggregation engine consumes.
// stripeapi implements it against the real processor; tests substitute fakes.
type PaymentSource interface {
	ListPaymentIntentsPage(ctx context.Context, w TimeWindow, limit int, startingAfter string) (Page, error)
	ListChargesPage(ctx context.Context, w TimeWindow, limit int, startingAfter string) (Page, error)
}

// DailyMetrics is the per-day reduction of both record streams. GrossVolume
// is integer minor units (cents); Payments is a record count, not money.
type DailyMetrics struct {
	GrossVolume int64 `json:"gross_volume"`
	Customers   int   `json:"customers"`
	Payments    int   `json:"payments"`
}
