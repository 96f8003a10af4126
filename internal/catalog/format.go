package catalog

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatClock formats a position or track length as m:ss.
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// FormatLength formats a playlist or album length, e.g. "3 hr 5 min" or "45 min".
func FormatLength(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)
	if hours > 0 {
		return fmt.Sprintf("%d hr %d min", hours, minutes)
	}
	return fmt.Sprintf("%d min", minutes)
}

// FormatFollowers abbreviates large counts: 32500000 → "32.5M", 1500 → "1.5K".
func FormatFollowers(n int) string {
	switch {
	case n >= 1_000_000:
		return humanize.FtoaWithDigits(float64(n)/1_000_000, 1) + "M"
	case n >= 1_000:
		return humanize.FtoaWithDigits(float64(n)/1_000, 1) + "K"
	case n < 0:
		return "0"
	default:
		return humanize.Comma(int64(n))
	}
}

// FormatCount formats an exact count with thousands separators.
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}
