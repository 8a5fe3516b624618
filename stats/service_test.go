package stats_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mmdatafocus/finance_bot/stats"
)

// windowedSource serves each kind from a fixed record set, filtered to the
// requested window the way the processor API filters server-side.
type windowedSource struct {
	intents []stats.PaymentRecord
	charges []stats.PaymentRecord

	intentCalls int
	chargeCalls int
	err         error
}

func filterWindow(records []stats.PaymentRecord, w stats.TimeWindow) []stats.PaymentRecord {
	var in []stats.PaymentRecord
	for _, r := range records {
		if r.Created >= w.Start && r.Created <= w.End {
			in = append(in, r)
		}
	}
	return in
}

func (s *windowedSource) ListPaymentIntentsPage(_ context.Context, w stats.TimeWindow, _ int, _ string) (stats.Page, error) {
	s.intentCalls++
	if s.err != nil {
		return stats.Page{}, s.err
	}
	return stats.Page{Records: filterWindow(s.intents, w)}, nil
}

func (s *windowedSource) ListChargesPage(_ context.Context, w stats.TimeWindow, _ int, _ string) (stats.Page, error) {
	s.chargeCalls++
	if s.err != nil {
		return stats.Page{}, s.err
	}
	return stats.Page{Records: filterWindow(s.charges, w)}, nil
}

type memCache struct {
	data map[string]stats.DailyMetrics
	sets int
}

func (c *memCache) Get(_ context.Context, key string) (stats.DailyMetrics, bool) {
	m, ok := c.data[key]
	return m, ok
}

func (c *memCache) Set(_ context.Context, key string, m stats.DailyMetrics) {
	if c.data == nil {
		c.data = map[string]stats.DailyMetrics{}
	}
	c.data[key] = m
	c.sets++
}

func TestServiceForDate(t *testing.T) {
	day := stats.ResolveDayWindow(2025, time.March, 9, 0)
	source := &windowedSource{
		intents: []stats.PaymentRecord{
			{ID: "pi_1", Status: stats.StatusSucceeded, Created: day.Start + 100, Amount: 1000, AmountReceived: 1000, LatestChargeID: "ch_1", CustomerID: "cus_A"},
			{ID: "pi_2", Status: stats.StatusSucceeded, Created: day.Start + 200, Amount: 2000, AmountReceived: 2000, CustomerID: "cus_B"},
			{ID: "pi_old", Status: stats.StatusSucceeded, Created: day.Start - 10, Amount: 9999},
		},
		charges: []stats.PaymentRecord{
			{ID: "ch_1", Status: stats.StatusSucceeded, Paid: true, Created: day.Start + 100, Amount: 1000, Email: "a@example.com"},
			{ID: "ch_2", Status: stats.StatusSucceeded, Paid: true, Created: day.Start + 300, Amount: 500, Email: "c@example.com"},
		},
	}

	svc := stats.NewService(source, 0, nil)
	m, err := svc.ForDate(context.Background(), 2025, time.March, 9)
	if err != nil {
		t.Fatalf("ForDate: %v", err)
	}
	if m.GrossVolume != 3500 || m.Payments != 3 || m.Customers != 3 {
		t.Fatalf("metrics = %+v, want volume 3500, payments 3, customers 3", m)
	}
	if source.intentCalls != 1 || source.chargeCalls != 1 {
		t.Fatalf("source calls = %d/%d, want 1/1", source.intentCalls, source.chargeCalls)
	}
}

func TestServiceForDateError(t *testing.T) {
	boom := errors.New("api down")
	svc := stats.NewService(&windowedSource{err: boom}, 0, nil)
	if _, err := svc.ForDate(context.Background(), 2025, time.March, 9); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestServiceCachesElapsedDays(t *testing.T) {
	day := stats.ResolveDayWindow(2020, time.January, 2, 0)
	source := &windowedSource{
		intents: []stats.PaymentRecord{
			{ID: "pi_1", Status: stats.StatusSucceeded, Created: day.Start + 1, Amount: 700, CustomerID: "cus_A"},
		},
	}
	cache := &memCache{}
	svc := stats.NewService(source, 0, cache)

	first, err := svc.ForDate(context.Background(), 2020, time.January, 2)
	if err != nil {
		t.Fatalf("ForDate: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", cache.sets)
	}

	second, err := svc.ForDate(context.Background(), 2020, time.January, 2)
	if err != nil {
		t.Fatalf("ForDate (cached): %v", err)
	}
	if second != first {
		t.Fatalf("cached metrics %+v != computed %+v", second, first)
	}
	if source.intentCalls != 1 {
		t.Fatalf("source hit %d times after cache fill, want 1", source.intentCalls)
	}
}
