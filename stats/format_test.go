package stats_test

import (
	"testing"
	"time"

	"github.com/mmdatafocus/finance_bot/stats"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{12345, "$123.45"},
		{0, "$0.00"},
		{5, "$0.05"},
		{100, "$1.00"},
		{-12345, "$-123.45"},
		{1234567890, "$12345678.90"},
	}
	for _, tt := range tests {
		if got := stats.FormatCurrency(tt.cents); got != tt.want {
			t.Fatalf("FormatCurrency(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestDayLabelMatchesWindowOffset(t *testing.T) {
	// 23:30 UTC Mar 9 labels as Mar 10 at +6 — the same day the data window
	// resolves to, never the host-local day.
	at := time.Date(2025, time.March, 9, 23, 30, 0, 0, time.UTC)
	if got := stats.FormatDayLabel(at, 6); got != "Mon Mar 10" {
		t.Fatalf("FormatDayLabel = %q, want %q", got, "Mon Mar 10")
	}
	if got := stats.FormatFullDayLabel(at, 6); got != "Mon Mar 10, 2025" {
		t.Fatalf("FormatFullDayLabel = %q, want %q", got, "Mon Mar 10, 2025")
	}
	if got := stats.FormatDayLabel(at, 0); got != "Sun Mar 9" {
		t.Fatalf("FormatDayLabel UTC = %q, want %q", got, "Sun Mar 9")
	}
}

func TestFormatDateLabel(t *testing.T) {
	arrival := time.Date(2025, time.June, 1, 2, 0, 0, 0, time.UTC).Unix()
	if got := stats.FormatDateLabel(arrival, 0); got != "Jun 1" {
		t.Fatalf("FormatDateLabel = %q, want %q", got, "Jun 1")
	}
	// 02:00 UTC is still May 31 at -5 local.
	if got := stats.FormatDateLabel(arrival, -5); got != "May 31" {
		t.Fatalf("FormatDateLabel(-5) = %q, want %q", got, "May 31")
	}
}
