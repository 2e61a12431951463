package cftime_test

import (
	"errors"
	"testing"

	"github.com/geoclim/cftime-go/cftime"
)

func TestParseCalendar(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    cftime.Calendar
		wantErr error
	}{
		{name: "standard", input: "standard", want: cftime.CalendarStandard},
		{name: "gregorian alias", input: "gregorian", want: cftime.CalendarStandard},
		{name: "case insensitive", input: "Gregorian", want: cftime.CalendarStandard},
		{name: "surrounding whitespace", input: "  standard\t", want: cftime.CalendarStandard},
		{name: "proleptic gregorian", input: "proleptic_gregorian", want: cftime.CalendarProlepticGregorian},
		{name: "julian", input: "julian", want: cftime.CalendarJulian},
		{name: "noleap", input: "noleap", want: cftime.CalendarNoLeap},
		{name: "365_day alias", input: "365_day", want: cftime.CalendarNoLeap},
		{name: "all_leap", input: "all_leap", want: cftime.CalendarAllLeap},
		{name: "366_day alias", input: "366_day", want: cftime.CalendarAllLeap},
		{name: "360_day", input: "360_day", want: cftime.Calendar360Day},
		{name: "none", input: "none", want: cftime.CalendarNone},
		{name: "unknown", input: "lunar", wantErr: cftime.ErrUnknownCalendar},
		{name: "empty", input: "", wantErr: cftime.ErrUnknownCalendar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cftime.ParseCalendar(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseCalendar(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCalendar(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseCalendar(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		name     string
		calendar cftime.Calendar
		year     int
		want     bool
	}{
		{name: "standard 2000", calendar: cftime.CalendarStandard, year: 2000, want: true},
		{name: "standard 1900 century", calendar: cftime.CalendarStandard, year: 1900, want: false},
		{name: "standard 2004", calendar: cftime.CalendarStandard, year: 2004, want: true},
		{name: "standard 1500 pre-reform julian rule", calendar: cftime.CalendarStandard, year: 1500, want: true},
		{name: "standard 1600", calendar: cftime.CalendarStandard, year: 1600, want: true},
		{name: "proleptic 1900", calendar: cftime.CalendarProlepticGregorian, year: 1900, want: false},
		{name: "proleptic year zero", calendar: cftime.CalendarProlepticGregorian, year: 0, want: true},
		{name: "proleptic -4", calendar: cftime.CalendarProlepticGregorian, year: -4, want: true},
		{name: "proleptic -1", calendar: cftime.CalendarProlepticGregorian, year: -1, want: false},
		{name: "julian 1900", calendar: cftime.CalendarJulian, year: 1900, want: true},
		{name: "julian 1999", calendar: cftime.CalendarJulian, year: 1999, want: false},
		{name: "noleap 2000", calendar: cftime.CalendarNoLeap, year: 2000, want: false},
		{name: "all_leap 1999", calendar: cftime.CalendarAllLeap, year: 1999, want: true},
		{name: "360_day 2000", calendar: cftime.Calendar360Day, year: 2000, want: false},
		{name: "none", calendar: cftime.CalendarNone, year: 2000, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.calendar.IsLeapYear(tt.year); got != tt.want {
				t.Errorf("%v.IsLeapYear(%d) = %v, want %v", tt.calendar, tt.year, got, tt.want)
			}
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		calendar cftime.Calendar
		year     int
		month    int
		want     int
	}{
		{name: "standard leap february", calendar: cftime.CalendarStandard, year: 2000, month: 2, want: 29},
		{name: "standard non-leap february", calendar: cftime.CalendarStandard, year: 1900, month: 2, want: 28},
		{name: "standard reform october", calendar: cftime.CalendarStandard, year: 1582, month: 10, want: 21},
		{name: "standard ordinary october", calendar: cftime.CalendarStandard, year: 1583, month: 10, want: 31},
		{name: "julian 1900 february", calendar: cftime.CalendarJulian, year: 1900, month: 2, want: 29},
		{name: "360_day february", calendar: cftime.Calendar360Day, year: 2000, month: 2, want: 30},
		{name: "noleap february", calendar: cftime.CalendarNoLeap, year: 2000, month: 2, want: 28},
		{name: "all_leap february", calendar: cftime.CalendarAllLeap, year: 1999, month: 2, want: 29},
		{name: "none", calendar: cftime.CalendarNone, year: 2000, month: 1, want: 0},
		{name: "month zero", calendar: cftime.CalendarStandard, year: 2000, month: 0, want: 0},
		{name: "month thirteen", calendar: cftime.CalendarStandard, year: 2000, month: 13, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.calendar.DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("%v.DaysInMonth(%d, %d) = %d, want %d", tt.calendar, tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestDaysInYear(t *testing.T) {
	tests := []struct {
		name     string
		calendar cftime.Calendar
		year     int
		want     int
	}{
		{name: "standard leap", calendar: cftime.CalendarStandard, year: 2000, want: 366},
		{name: "standard non-leap", calendar: cftime.CalendarStandard, year: 1900, want: 365},
		{name: "standard reform year", calendar: cftime.CalendarStandard, year: 1582, want: 355},
		{name: "noleap", calendar: cftime.CalendarNoLeap, year: 2000, want: 365},
		{name: "all_leap", calendar: cftime.CalendarAllLeap, year: 1900, want: 366},
		{name: "360_day", calendar: cftime.Calendar360Day, year: 2000, want: 360},
		{name: "none", calendar: cftime.CalendarNone, year: 2000, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.calendar.DaysInYear(tt.year); got != tt.want {
				t.Errorf("%v.DaysInYear(%d) = %d, want %d", tt.calendar, tt.year, got, tt.want)
			}
		})
	}
}

// The months of a year always sum to the year's length, including the
// shortened 1582 of the standard calendar.
func TestDaysInYearMatchesMonths(t *testing.T) {
	calendars := []cftime.Calendar{
		cftime.CalendarStandard,
		cftime.CalendarProlepticGregorian,
		cftime.CalendarJulian,
		cftime.CalendarNoLeap,
		cftime.CalendarAllLeap,
		cftime.Calendar360Day,
	}
	for _, cal := range calendars {
		for _, year := range []int{1582, 1583, 1900, 2000, 2001} {
			sum := 0
			for month := 1; month <= 12; month++ {
				sum += cal.DaysInMonth(year, month)
			}
			if got := cal.DaysInYear(year); sum != got {
				t.Errorf("%v year %d: months sum to %d, DaysInYear = %d", cal, year, sum, got)
			}
		}
	}
}
