package util

import "time"

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ISOTimestamp formats t in UTC with millisecond precision, e.g.
// 2024-03-01T10:00:00.000Z.
func ISOTimestamp(t time.Time) string {
	return t.UTC().Format(isoMillis)
}
