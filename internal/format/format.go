// Package format holds small display helpers for CLI output.
package format

import (
	"fmt"
	"strconv"
	"time"
)

// Date renders a timestamp as a readable date, empty for the zero value.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// DateTime renders a timestamp with time of day.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006 15:04")
}

// Duration renders minutes as hours and minutes.
func Duration(minutes int) string {
	if minutes <= 0 {
		return "0 min"
	}
	hours := minutes / 60
	mins := minutes % 60

	switch {
	case hours == 0:
		return fmt.Sprintf("%d min", mins)
	case mins == 0:
		return fmt.Sprintf("%d hr", hours)
	default:
		return fmt.Sprintf("%d hr %d min", hours, mins)
	}
}

// Price renders a decimal price string, treating empty and zero as free.
func Price(price string) string {
	if price == "" || price == "0.00" {
		return "Free"
	}
	v, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return price
	}
	if v == 0 {
		return "Free"
	}
	return fmt.Sprintf("$%.2f", v)
}

// Truncate shortens a string to max runes with an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
