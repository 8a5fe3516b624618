package stripeapi

import (
	"context"

	"github.com/mmdatafocus/finance_bot/stats"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// Client wraps the processor SDK behind the read operations the bot needs.
// Constructed once in main and injected everywhere; there is no package
// global, and no lazy initialization.
type Client struct {
	sc *client.API
}

func New(secretKey string) *Client {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &Client{sc: sc}
}

// ListPaymentIntentsPage fetches one page of PaymentIntents created within
// w. Single-page mode: the cursor loop belongs to stats.CollectAll, not the
// SDK's auto-pagination.
func (c *Client) ListPaymentIntentsPage(ctx context.Context, w stats.TimeWindow, limit int, startingAfter string) (stats.Page, error) {
	params := &stripe.PaymentIntentListParams{
		CreatedRange: &stripe.RangeQueryParams{
			GreaterThanOrEqual: w.Start,
			LesserThanOrEqual:  w.End,
		},
	}
	params.Context = ctx
	params.Limit = stripe.Int64(int64(limit))
	params.Single = true
	if startingAfter != "" {
		params.StartingAfter = stripe.String(startingAfter)
	}

	it := c.sc.PaymentIntents.List(params)
	var page stats.Page
	for it.Next() {
		pi := it.PaymentIntent()
		record := stats.PaymentRecord{
			ID:             pi.ID,
			Status:         string(pi.Status),
			Created:        pi.Created,
			Amount:         pi.Amount,
			AmountReceived: pi.AmountReceived,
			Email:          pi.ReceiptEmail,
		}
		if pi.Customer != nil {
			record.CustomerID = pi.Customer.ID
		}
		if pi.LatestCharge != nil {
			record.LatestChargeID = pi.LatestCharge.ID
		}
		page.Records = append(page.Records, record)
	}
	if err := it.Err(); err != nil {
		return stats.Page{}, err
	}
	page.HasMore = it.Meta().HasMore
	return page, nil
}

// ListChargesPage fetches one page of Charges created within w.
func (c *Client) ListChargesPage(ctx context.Context, w stats.TimeWindow, limit int, startingAfter string) (stats.Page, error) {
	params := &stripe.ChargeListParams{
		CreatedRange: &stripe.RangeQueryParams{
			GreaterThanOrEqual: w.Start,
			LesserThanOrEqual:  w.End,
		},
	}
	params.Context = ctx
	params.Limit = stripe.Int64(int64(limit))
	params.Single = true
	if startingAfter != "" {
		params.StartingAfter = stripe.String(startingAfter)
	}

	it := c.sc.Charges.List(params)
	var page stats.Page
	for it.Next() {
		ch := it.Charge()
		record := stats.PaymentRecord{
			ID:      ch.ID,
			Status:  string(ch.Status),
			Paid:    ch.Paid,
			Created: ch.Created,
			Amount:  ch.Amount,
		}
		if ch.Customer != nil {
			record.CustomerID = ch.Customer.ID
		}
		if ch.BillingDetails != nil {
			record.Email = ch.BillingDetails.Email
		}
		page.Records = append(page.Records, record)
	}
	if err := it.Err(); err != nil {
		return stats.Page{}, err
	}
	page.HasMore = it.Meta().HasMore
	return page, nil
}

// GetBalance reads the current balance snapshot. Like the dashboards we
// reconcile against, only the first (primary currency) bucket counts.
func (c *Client) GetBalance(ctx context.Context) (stats.BalanceSnapshot, error) {
	params := &stripe.BalanceParams{}
	params.Context = ctx
	balance, err := c.sc.Balance.Get(params)
	if err != nil {
		return stats.BalanceSnapshot{}, err
	}

	var snapshot stats.BalanceSnapshot
	if len(balance.Available) > 0 {
		snapshot.Available = balance.Available[0].Amount
	}
	if len(balance.Pending) > 0 {
		snapshot.Pending = balance.Pending[0].Amount
	}
	return snapshot, nil
}

// ListPayouts fetches up to limit recent payouts (one page, newest first).
func (c *Client) ListPayouts(ctx context.Context, limit int) ([]stats.Payout, error) {
	return c.listPayouts(ctx, limit, "")
}

// ListPendingPayouts fetches payouts still in transit.
func (c *Client) ListPendingPayouts(ctx context.Context) ([]stats.Payout, error) {
	return c.listPayouts(ctx, stats.PageLimit, "pending")
}

func (c *Client) listPayouts(ctx context.Context, limit int, status string) ([]stats.Payout, error) {
	params := &stripe.PayoutListParams{}
	params.Context = ctx
	params.Limit = stripe.Int64(int64(limit))
	params.Single = true
	if status != "" {
		params.Status = stripe.String(status)
	}

	it := c.sc.Payouts.List(params)
	var payouts []stats.Payout
	for it.Next() {
		p := it.Payout()
		payouts = append(payouts, stats.Payout{
			ID:          p.ID,
			Amount:      p.Amount,
			Status:      string(p.Status),
			ArrivalDate: p.ArrivalDate,
			Description: p.Description,
		})
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return payouts, nil
}
