package stats

// Dedupe filters both record streams down to the countable set.
//
// Intents count when status == succeeded. Charges count when status ==
// succeeded AND paid, and only when no succeeded intent already settled them:
// a charge whose id appears as any succeeded intent's LatestChargeID is
// dropped from the standalone set so it is never counted twice. An intent
// with no linked charge and a charge with no related intent both count
// independently; they are distinct transaction kinds.
//
// The two returned slices are always disjoint.
func Dedupe(intents, charges []PaymentRecord) (pis, standaloneCharges []PaymentRecord) {
	for _, pi := range intents {
		if pi.Status == StatusSucceeded {
			pis = append(pis, pi)
		}
	}

	linked := make(map[string]struct{}, len(pis))
	for _, pi := range pis {
		if pi.LatestChargeID != "" {
			linked[pi.LatestChargeID] = struct{}{}
		}
	}

	for _, ch := range charges {
		if ch.Status != StatusSucceeded || !ch.Paid {
			continue
		}
		if _, settled := linked[ch.ID]; settled {
			continue
		}
		standaloneCharges = append(standaloneCharges, ch)
	}
	return pis, standaloneCharges
}
