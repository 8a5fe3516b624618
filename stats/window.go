package stats

import "time"

// TimeWindow is a closed interval of record creation timestamps, inclusive
// on both ends, in whole epoch seconds.
type TimeWindow struct {
	Start int64
	End   int64
}

// ResolveDayWindow converts a calendar date plus the fixed hour offset into
// the UTC window covering that date's local midnight-to-midnight.
//
// The local day runs 00:00:00.000 through 23:59:59.999; a positive offset
// means local time is ahead of UTC, so UTC = local - offset. The end
// boundary's 999ms is floored to whole seconds, which can exclude a record
// created in the last fractional second of the day. Accepted tolerance, kept
// to match payment-processor epoch-second granularity.
//
// Every caller that needs a "today" or "selected date" window must go
// through here; there is exactly one windowing policy in this codebase.
func ResolveDayWindow(year int, month time.Month, day int, offsetHours int) TimeWindow {
	offset := time.Duration(offsetHours) * time.Hour
	startLocal := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	endLocal := time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), time.UTC)
	return TimeWindow{
		Start: startLocal.Add(-offset).Unix(),
		End:   endLocal.Add(-offset).Unix(),
	}
}

// DayWindow resolves the window for "today": the calendar date that now
// falls on in the fixed-offset local time.
func DayWindow(now time.Time, offsetHours int) TimeWindow {
	local := now.UTC().Add(time.Duration(offsetHours) * time.Hour)
	year, month, day := local.Date()
	return ResolveDayWindow(year, month, day, offsetHours)
}

// LocalTime shifts a UTC instant into the fixed-offset local clock. Date
// labels shown next to windowed data must be derived from this, never from
// the host timezone, or labels and data windows will disagree.
func LocalTime(t time.Time, offsetHours int) time.Time {
	return t.UTC().Add(time.Duration(offsetHours) * time.Hour)
}
