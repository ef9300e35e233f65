package cardfolio

import (
	"fmt"
	"strings"
)

// Window is a named date-range selector for filtering records.
//
// Named windows are resolved against a caller-supplied reference day, never a
// cached "now", so the same selector yields different ranges on different
// days by design of the caller, not of this package.
type Window int

const (
	// All selects every record regardless of date.
	All Window = iota
	Last7Days
	Last30Days
	Last90Days
	ThisMonth
	LastMonth
	LastYear
)

func (w Window) String() string {
	switch w {
	case All:
		return "all"
	case Last7Days:
		return "last-7-days"
	case Last30Days:
		return "last-30-days"
	case Last90Days:
		return "last-90-days"
	case ThisMonth:
		return "this-month"
	case LastMonth:
		return "last-month"
	case LastYear:
		return "last-year"
	default:
		panic(fmt.Sprintf("unknown window %d", w))
	}
}

// ParseWindow parses a window selector name.
func ParseWindow(s string) (Window, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return All, nil
	case "last-7-days", "7d":
		return Last7Days, nil
	case "last-30-days", "30d":
		return Last30Days, nil
	case "last-90-days", "90d":
		return Last90Days, nil
	case "this-month":
		return ThisMonth, nil
	case "last-month":
		return LastMonth, nil
	case "last-year":
		return LastYear, nil
	default:
		return All, fmt.Errorf("unknown window %q", s)
	}
}

// Resolve computes the inclusive date range for the window relative to the
// given day. For All it returns ok=false: there is no bound.
//
// Relative windows end on 'today'; calendar windows for a past period
// (last-month, last-year) end on the period's own last day.
func (w Window) Resolve(today Date) (r Range, ok bool) {
	switch w {
	case All:
		return Range{}, false
	case Last7Days:
		return Range{From: today.Add(-7), To: today}, true
	case Last30Days:
		return Range{From: today.Add(-30), To: today}, true
	case Last90Days:
		return Range{From: today.Add(-90), To: today}, true
	case ThisMonth:
		return Range{From: today.StartOfMonth(), To: today}, true
	case LastMonth:
		prev := today.StartOfMonth().Add(-1)
		return Range{From: prev.StartOfMonth(), To: prev.EndOfMonth()}, true
	case LastYear:
		prev := today.StartOfYear().Add(-1)
		return Range{From: prev.StartOfYear(), To: prev.EndOfYear()}, true
	default:
		panic(fmt.Sprintf("unknown window %d", w))
	}
}
