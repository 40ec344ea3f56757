package domain

import (
	"fmt"
	"strings"
	"time"
)

// Category is the user-facing data selector. It maps onto the processor's
// transaction type field; All is the identity filter.
type Category string

const (
	CategoryAll    Category = "all"
	CategoryCharge Category = "charge"
	CategoryPayout Category = "payout"
	CategoryRefund Category = "refund"
)

// ParseCategory parses a category selector. An empty string means All.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return CategoryAll, nil
	case "charge":
		return CategoryCharge, nil
	case "payout":
		return CategoryPayout, nil
	case "refund", "refunds":
		return CategoryRefund, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
	}
}

// Matches reports whether a transaction type passes the selector.
func (c Category) Matches(txType string) bool {
	if c == CategoryAll {
		return true
	}
	return string(c) == txType
}

// Window is an inclusive calendar-date range in UTC.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds a window from two dates. Both are truncated to UTC
// calendar dates; end must not precede start.
func NewWindow(start, end time.Time) (Window, error) {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	if e.Before(s) {
		return Window{}, fmt.Errorf("%w: end %s precedes start %s",
			ErrInvalidDateRange, e.Format("2006-01-02"), s.Format("2006-01-02"))
	}

	return Window{Start: s, End: e}, nil
}

// Contains reports whether a date falls inside the window, endpoints included.
func (w Window) Contains(date time.Time) bool {
	return !date.Before(w.Start) && !date.After(w.End)
}
