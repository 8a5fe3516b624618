package stats

import "context"

// PageLimit is the processor's maximum page size.
const PageLimit = 100

// CollectAll exhaustively pages one source over w, advancing the cursor to
// the last record id of each page. Records come back in fetch order; no
// other ordering is imposed.
//
// Termination is defensive on two fronts: the source saying "no more pages"
// stops the loop, and so does an empty page even when has_more claims
// otherwise. A page fetch error propagates to the caller un-retried.
func CollectAll(ctx context.Context, fetch ListPageFunc, w TimeWindow, limit int) ([]PaymentRecord, error) {
	if limit <= 0 || limit > PageLimit {
		limit = PageLimit
	}

	var all []PaymentRecord
	startingAfter := ""
	for {
		page, err := fetch(ctx, w, limit, startingAfter)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Records...)
		if !page.HasMore || len(page.Records) == 0 {
			return all, nil
		}
		startingAfter = page.Records[len(page.Records)-1].ID
	}
}
