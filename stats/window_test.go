package stats_test

import (
	"testing"
	"time"

	"github.com/mmdatafocus/finance_bot/stats"
)

func TestResolveDayWindowSpan(t *testing.T) {
	for offset := -12; offset <= 14; offset++ {
		w := stats.ResolveDayWindow(2025, time.March, 9, offset)
		if w.Start >= w.End {
			t.Fatalf("offset %d: start %d not before end %d", offset, w.Start, w.End)
		}
		if span := w.End - w.Start; span != 86399 {
			t.Fatalf("offset %d: span = %d, want 86399", offset, span)
		}
	}
}

func TestResolveDayWindowOffsetShift(t *testing.T) {
	utc := stats.ResolveDayWindow(2025, time.March, 9, 0)
	if got := time.Unix(utc.Start, 0).UTC(); got != time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC) {
		t.Fatalf("UTC window starts at %v", got)
	}

	// Local ahead of UTC by 6h: the local day starts 6h earlier on the UTC clock.
	ahead := stats.ResolveDayWindow(2025, time.March, 9, 6)
	if ahead.Start != utc.Start-6*3600 {
		t.Fatalf("offset +6 start = %d, want %d", ahead.Start, utc.Start-6*3600)
	}

	behind := stats.ResolveDayWindow(2025, time.March, 9, -5)
	if behind.Start != utc.Start+5*3600 {
		t.Fatalf("offset -5 start = %d, want %d", behind.Start, utc.Start+5*3600)
	}
}

func TestResolveDayWindowFixedOffsetAcrossDSTDates(t *testing.T) {
	// One constant offset applies to every date in the year; the windows for
	// a winter and a summer day must both span exactly one day.
	winter := stats.ResolveDayWindow(2025, time.January, 15, 7)
	summer := stats.ResolveDayWindow(2025, time.July, 15, 7)
	if winter.End-winter.Start != summer.End-summer.Start {
		t.Fatalf("winter span %d != summer span %d", winter.End-winter.Start, summer.End-summer.Start)
	}
}

func TestDayWindowCrossesDateLine(t *testing.T) {
	// 23:30 UTC on Mar 9 is already Mar 10 at +6 local.
	now := time.Date(2025, time.March, 9, 23, 30, 0, 0, time.UTC)
	w := stats.DayWindow(now, 6)
	want := stats.ResolveDayWindow(2025, time.March, 10, 6)
	if w != want {
		t.Fatalf("DayWindow = %+v, want %+v", w, want)
	}

	// The instant itself must fall inside its own day window.
	if now.Unix() < w.Start || now.Unix() > w.End {
		t.Fatalf("now %d outside window [%d, %d]", now.Unix(), w.Start, w.End)
	}
}
