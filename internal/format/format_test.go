package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	assert.Equal(t, "", Date(time.Time{}))
	assert.Equal(t, "March 5, 2026", Date(time.Date(2026, 3, 5, 10, 30, 0, 0, time.UTC)))
}

func TestDateTime(t *testing.T) {
	assert.Equal(t, "", DateTime(time.Time{}))
	assert.Equal(t, "Mar 5, 2026 10:30", DateTime(time.Date(2026, 3, 5, 10, 30, 0, 0, time.UTC)))
}

func TestDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0 min"},
		{-5, "0 min"},
		{45, "45 min"},
		{60, "1 hr"},
		{90, "1 hr 30 min"},
		{150, "2 hr 30 min"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Duration(tt.minutes), "minutes %d", tt.minutes)
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{"", "Free"},
		{"0.00", "Free"},
		{"0", "Free"},
		{"49.99", "$49.99"},
		{"100", "$100.00"},
		{"n/a", "n/a"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Price(tt.price), "price %q", tt.price)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly-10", Truncate("exactly-10", 10))
	assert.Equal(t, "a long ...", Truncate("a long description here", 10))
	assert.Equal(t, "ab", Truncate("abcdef", 2))
}
