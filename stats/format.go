package stats

import (
	"fmt"
	"time"
)

// FormatCurrency renders integer cents as dollars with exactly two decimal
// places and no locale grouping: 12345 -> "$123.45", 0 -> "$0.00",
// -12345 -> "$-123.45".
func FormatCurrency(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("$%s%d.%02d", sign, cents/100, cents%100)
}

// FormatDateLabel renders an epoch-second timestamp as a short "Jan 2"
// label in fixed-offset local time. Used next to payout arrival dates.
func FormatDateLabel(epochSeconds int64, offsetHours int) string {
	local := LocalTime(time.Unix(epochSeconds, 0), offsetHours)
	return local.Format("Jan 2")
}

// FormatDayLabel renders a short weekday/month/day label ("Mon Jan 2") for
// the local calendar day t falls on. Must use the same offset as the data
// window it labels.
func FormatDayLabel(t time.Time, offsetHours int) string {
	return LocalTime(t, offsetHours).Format("Mon Jan 2")
}

// FormatFullDayLabel is FormatDayLabel with the year ("Mon Jan 2, 2006").
func FormatFullDayLabel(t time.Time, offsetHours int) string {
	return LocalTime(t, offsetHours).Format("Mon Jan 2, 2006")
}
