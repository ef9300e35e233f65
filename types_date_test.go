package cardfolio

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2026-08-31", want: NewDate(2026, time.August, 31)},
		{in: "2026-8-3", want: NewDate(2026, time.August, 3)},
		{in: " 2026-01-01 ", want: NewDate(2026, time.January, 1)},
		{in: "2026-08-31T10:30:00Z", want: NewDate(2026, time.August, 31)},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := ParseDate(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) expected an error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) returned an unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDate_MonthYearBoundaries(t *testing.T) {
	d := NewDate(2024, time.February, 15)

	if got := d.StartOfMonth(); got != NewDate(2024, time.February, 1) {
		t.Errorf("StartOfMonth() = %v", got)
	}
	if got := d.EndOfMonth(); got != NewDate(2024, time.February, 29) {
		t.Errorf("EndOfMonth() = %v, want leap-year Feb 29", got)
	}
	if got := d.StartOfYear(); got != NewDate(2024, time.January, 1) {
		t.Errorf("StartOfYear() = %v", got)
	}
	if got := d.EndOfYear(); got != NewDate(2024, time.December, 31) {
		t.Errorf("EndOfYear() = %v", got)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2025, time.July, 1)
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() returned an unexpected error: %v", err)
	}
	if string(data) != `"2025-07-01"` {
		t.Fatalf("MarshalJSON() = %s, want %q", data, "2025-07-01")
	}
	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON() returned an unexpected error: %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestRange_Contains(t *testing.T) {
	r := NewRange(MustParseDate("2024-01-01"), MustParseDate("2024-01-31"))

	testCases := []struct {
		date string
		want bool
	}{
		{"2024-01-01", true},  // lower boundary included
		{"2024-01-31", true},  // upper boundary included
		{"2024-01-15", true},
		{"2023-12-31", false},
		{"2024-02-01", false},
	}
	for _, tc := range testCases {
		if got := r.Contains(MustParseDate(tc.date)); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}

	// A zero From is an open lower bound.
	open := Range{To: MustParseDate("2024-01-31")}
	if !open.Contains(MustParseDate("1970-01-01")) {
		t.Error("open lower bound should contain any earlier date")
	}
	if open.Contains(MustParseDate("2024-02-01")) {
		t.Error("open lower bound must still respect the upper bound")
	}
}
