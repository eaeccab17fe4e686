package models

import (
	"time"
)

// EAT is the East Africa Time zone (UTC+3), used to stamp server-side
// receipt time independent of the sender's reported timestamp.
var EAT = time.FixedZone("EAT", 3*60*60)

// NowEAT returns the current time in East Africa Time
func NowEAT() time.Time {
	return time.Now().In(EAT)
}

// FormatTime formats a time.Time according to RFC3339
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
