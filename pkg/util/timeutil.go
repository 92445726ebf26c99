package util

import (
	"strconv"
	"time"
)

// NowUTC exposes time.Now for deterministic testing.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// CacheBuster renders t as a millisecond timestamp suitable for a cache-busting query parameter.
func CacheBuster(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
