package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/mmdatafocus/finance_bot/config"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Service owns the daily aggregation flow. The source client is constructed
// once at process start and injected; nothing here is lazily initialized.
type Service struct {
	source      PaymentSource
	offsetHours int
	cache       DayCache
	now         func() time.Time
}

func NewService(source PaymentSource, offsetHours int, cache DayCache) *Service {
	return &Service{
		source:      source,
		offsetHours: offsetHours,
		cache:       cache,
		now:         time.Now,
	}
}

// ForToday aggregates the day that the current instant falls on in
// fixed-offset local time.
func (s *Service) ForToday(ctx context.Context) (DailyMetrics, error) {
	local := LocalTime(s.now(), s.offsetHours)
	year, month, day := local.Date()
	return s.ForDate(ctx, year, month, day)
}

// ForDate aggregates one local calendar date: resolve the window, page both
// sources to exhaustion, dedupe across them, reduce. The two sources are
// independent until the dedupe step, so they are fetched concurrently; pages
// within one source stay strictly sequential (cursor dependency).
//
// Errors propagate whole: no partial metrics, no retry.
func (s *Service) ForDate(ctx context.Context, year int, month time.Month, day int) (DailyMetrics, error) {
	w := ResolveDayWindow(year, month, day, s.offsetHours)

	// Only fully elapsed days are immutable enough to cache.
	cacheKey := ""
	if s.cache != nil && w.End < s.now().Unix() {
		cacheKey = fmt.Sprintf("daily_stats:%04d-%02d-%02d", year, int(month), day)
		if m, ok := s.cache.Get(ctx, cacheKey); ok {
			return m, nil
		}
	}

	var intents, charges []PaymentRecord
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		intents, err = CollectAll(gctx, s.source.ListPaymentIntentsPage, w, PageLimit)
		return err
	})
	g.Go(func() error {
		var err error
		charges, err = CollectAll(gctx, s.source.ListChargesPage, w, PageLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return DailyMetrics{}, err
	}

	pis, standaloneCharges := Dedupe(intents, charges)
	m := Reduce(pis, standaloneCharges)

	config.GetLogger().WithFields(logrus.Fields{
		"window_start":       w.Start,
		"window_end":         w.End,
		"intents_fetched":    len(intents),
		"charges_fetched":    len(charges),
		"intents_succeeded":  len(pis),
		"standalone_charges": len(standaloneCharges),
		"gross_volume":       m.GrossVolume,
		"customers":          m.Customers,
		"payments":           m.Payments,
	}).Debug("daily stats reduced")

	if cacheKey != "" {
		s.cache.Set(ctx, cacheKey, m)
	}
	return m, nil
}
