package config

import "os"

// TimezoneOffsetHours is the fixed hour offset from UTC used for every
// "today" / calendar-date computation. One constant offset for the whole
// year: no timezone database, no DST transitions. Absent or malformed env
// means UTC.
func TimezoneOffsetHours() int {
	return IntFromEnv("TIMEZONE_OFFSET_HOURS", 0)
}

// RequiredEnv returns the names in keys that are missing from the
// environment. Startup is expected to abort when any are missing.
func RequiredEnv(keys ...string) []string {
	var missing []string
	for _, k := range keys {
		if os.Getenv(k) == "" {
			missing = append(missing, k)
		}
	}
	return missing
}
