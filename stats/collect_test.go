package stats_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mmdatafocus/finance_bot/stats"
)

// pagedFake serves records in source order with the processor's cursor
// contract: limit per page, has_more while records remain past the cursor.
type pagedFake struct {
	records []stats.PaymentRecord
	calls   int
}

func (f *pagedFake) fetch(_ context.Context, _ stats.TimeWindow, limit int, startingAfter string) (stats.Page, error) {
	f.calls++
	start := 0
	if startingAfter != "" {
		for i, r := range f.records {
			if r.ID == startingAfter {
				start = i + 1
				break
			}
		}
	}
	end := start + limit
	if end > len(f.records) {
		end = len(f.records)
	}
	return stats.Page{
		Records: f.records[start:end],
		HasMore: end < len(f.records),
	}, nil
}

func makeRecords(n int) []stats.PaymentRecord {
	records := make([]stats.PaymentRecord, n)
	for i := range records {
		records[i] = stats.PaymentRecord{
			ID:     fmt.Sprintf("pi_%03d", i),
			Status: stats.StatusSucceeded,
			Amount: 100,
		}
	}
	return records
}

func TestCollectAllExhaustsPages(t *testing.T) {
	fake := &pagedFake{records: makeRecords(250)}
	w := stats.TimeWindow{Start: 0, End: 86399}

	all, err := stats.CollectAll(context.Background(), fake.fetch, w, 100)
	if err != nil {
		t.Fatalf("CollectAll: %v", err)
	}
	if len(all) != 250 {
		t.Fatalf("collected %d records, want 250", len(all))
	}
	if fake.calls != 3 {
		t.Fatalf("fetched %d pages, want 3", fake.calls)
	}

	// No duplication, no truncation.
	seen := make(map[string]bool, len(all))
	for _, r := range all {
		if seen[r.ID] {
			t.Fatalf("record %s collected twice", r.ID)
		}
		seen[r.ID] = true
	}
}

func TestCollectAllExactPageBoundary(t *testing.T) {
	// 200 records at page size 100: page 2 reports has_more=false.
	fake := &pagedFake{records: makeRecords(200)}
	all, err := stats.CollectAll(context.Background(), fake.fetch, stats.TimeWindow{}, 100)
	if err != nil {
		t.Fatalf("CollectAll: %v", err)
	}
	if len(all) != 200 || fake.calls != 2 {
		t.Fatalf("got %d records over %d pages, want 200 over 2", len(all), fake.calls)
	}
}

func TestCollectAllTerminatesOnLyingHasMore(t *testing.T) {
	// An empty page with has_more=true must end iteration, not spin.
	calls := 0
	fetch := func(context.Context, stats.TimeWindow, int, string) (stats.Page, error) {
		calls++
		return stats.Page{HasMore: true}, nil
	}

	all, err := stats.CollectAll(context.Background(), fetch, stats.TimeWindow{}, 100)
	if err != nil {
		t.Fatalf("CollectAll: %v", err)
	}
	if len(all) != 0 || calls != 1 {
		t.Fatalf("got %d records over %d calls, want 0 over 1", len(all), calls)
	}
}

func TestCollectAllPropagatesFetchError(t *testing.T) {
	boom := errors.New("api unavailable")
	fetch := func(_ context.Context, _ stats.TimeWindow, _ int, startingAfter string) (stats.Page, error) {
		if startingAfter != "" {
			return stats.Page{}, boom
		}
		return stats.Page{Records: makeRecords(100), HasMore: true}, nil
	}

	_, err := stats.CollectAll(context.Background(), fetch, stats.TimeWindow{}, 100)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want %v", err, boom)
	}
}

func TestCollectAllClampsPageSize(t *testing.T) {
	fake := &pagedFake{records: makeRecords(10)}
	if _, err := stats.CollectAll(context.Background(), fake.fetch, stats.TimeWindow{}, 0); err != nil {
		t.Fatalf("CollectAll: %v", err)
	}
	if fake.calls != 1 {
		t.Fatalf("fetched %d pages, want 1", fake.calls)
	}
}
