// Package format renders numbers and sizes for terminal display.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// Count formats n with thousands separators: 1234567 -> "1,234,567".
func Count(n int) string {
	s := strconv.Itoa(n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	out := make([]byte, 0, len(s)+len(s)/3)
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// Stats formats prompt size statistics on one line.
// Example: "1,234 chars, 210 words, ~309 tokens"
func Stats(chars, words, tokens int) string {
	return fmt.Sprintf("%s chars, %s words, ~%s tokens", Count(chars), Count(words), Count(tokens))
}

// Size formats a size in bytes for human display.
// Uses MB for sizes >= 1MB, KB for sizes >= 1KB, bytes otherwise.
func Size(bytes int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	if bytes >= mb {
		return fmt.Sprintf("%d MB", bytes/mb)
	}
	if bytes >= kb {
		return fmt.Sprintf("%d KB", bytes/kb)
	}
	return fmt.Sprintf("%d bytes", bytes)
}

// Elapsed formats a short duration rounded to the millisecond, or to the
// microsecond below one millisecond.
func Elapsed(d time.Duration) string {
	if d < time.Millisecond {
		return d.Round(time.Microsecond).String()
	}
	return d.Round(time.Millisecond).String()
}
