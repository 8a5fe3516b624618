package stats

import "strings"

// emailKeyPrefix keeps email-derived identity keys out of the customer-id
// namespace (processor ids never contain a colon prefix like this).
const emailKeyPrefix = "email:"

// CustomerKey derives the stable identity key for one record. Priority:
// the opaque customer id verbatim (case-sensitive), else the record's email
// trimmed + lowercased under the email: marker, else "" and the record
// carries no identity. Missing identity is data shape, not an error: the
// record still counts toward volume and payments, just not customers.
func CustomerKey(r PaymentRecord) string {
	if r.CustomerID != "" {
		return r.CustomerID
	}
	email := strings.ToLower(strings.TrimSpace(r.Email))
	if email != "" {
		return emailKeyPrefix + email
	}
	return ""
}

// Reduce folds the deduplicated record sets into the day's metrics.
//
// Volume: intents contribute AmountReceived when non-zero, else Amount
// (an unsettled intent still falls back to Amount; observed upstream
// behavior, kept as-is). Standalone charges contribute Amount. All sums are
// integer cents.
//
// Customers is the cardinality of the resolved identity-key set; a customer
// with several payments in the window counts once. Payments is the plain
// record count.
func Reduce(pis, standaloneCharges []PaymentRecord) DailyMetrics {
	var volume int64
	seen := make(map[string]struct{})

	for _, pi := range pis {
		if pi.AmountReceived != 0 {
			volume += pi.AmountReceived
		} else {
			volume += pi.Amount
		}
		if key := CustomerKey(pi); key != "" {
			seen[key] = struct{}{}
		}
	}
	for _, ch := range standaloneCharges {
		volume += ch.Amount
		if key := CustomerKey(ch); key != "" {
			seen[key] = struct{}{}
		}
	}

	return DailyMetrics{
		GrossVolume: volume,
		Customers:   len(seen),
		Payments:    len(pis) + len(standaloneCharges),
	}
}
