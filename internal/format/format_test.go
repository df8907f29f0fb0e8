package format_test

// Notes:
// - Values are the sizes a prompt realistically reaches (a few thousand
//   characters, a few KB on disk); extremes are not interesting here.

import (
	"testing"
	"time"

	"github.com/alnah/go-promptgen/internal/format"
)

// ---------------------------------------------------------------------------
// TestCount - thousands separators
// ---------------------------------------------------------------------------

func TestCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{1234567, "1,234,567"},
		{-1500, "-1,500"},
	}

	for _, tt := range tests {
		if got := format.Count(tt.input); got != tt.want {
			t.Errorf("Count(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestStats - one-line summary
// ---------------------------------------------------------------------------

func TestStats(t *testing.T) {
	t.Parallel()

	got := format.Stats(1234, 210, 309)
	want := "1,234 chars, 210 words, ~309 tokens"
	if got != want {
		t.Errorf("Stats() = %q, want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestSize - byte sizes
// ---------------------------------------------------------------------------

func TestSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input int64
		want  string
	}{
		{name: "zero", input: 0, want: "0 bytes"},
		{name: "boundary: 1023 bytes", input: 1023, want: "1023 bytes"},
		{name: "boundary: exactly 1 KB", input: 1024, want: "1 KB"},
		{name: "typical prompt file", input: 3 * 1024, want: "3 KB"},
		{name: "boundary: exactly 1 MB", input: 1024 * 1024, want: "1 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := format.Size(tt.input); got != tt.want {
				t.Errorf("Size(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestElapsed - rounding
// ---------------------------------------------------------------------------

func TestElapsed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input time.Duration
		want  string
	}{
		{0, "0s"},
		{1500 * time.Nanosecond, "2µs"},
		{12*time.Millisecond + 400*time.Microsecond, "12ms"},
		{1234 * time.Millisecond, "1.234s"},
	}

	for _, tt := range tests {
		if got := format.Elapsed(tt.input); got != tt.want {
			t.Errorf("Elapsed(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
