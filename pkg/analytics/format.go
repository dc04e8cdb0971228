package analytics

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatFull renders a population with thousands separators: 1,800,000.
func FormatFull(n int) string {
	return humanize.Comma(int64(n))
}

// FormatShort renders the compact map label: 1.8M above a million, otherwise
// the full separated number.
func FormatShort(n int) string {
	if n >= 1_000_000 {
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	}
	return FormatFull(n)
}

// FormatShare renders a percentage with one decimal: 18.0%.
func FormatShare(share float64) string {
	return fmt.Sprintf("%.1f%%", share)
}
