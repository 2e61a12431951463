package cftime_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/geoclim/cftime-go/cftime"
)

func TestParseTimeUnit(t *testing.T) {
	tests := []struct {
		inputs []string
		want   cftime.TimeUnit
	}{
		{inputs: []string{"seconds", "second", "secs", "sec", "s"}, want: cftime.UnitSeconds},
		{inputs: []string{"minutes", "minute", "mins", "min"}, want: cftime.UnitMinutes},
		{inputs: []string{"hours", "hour", "hrs", "hr", "h"}, want: cftime.UnitHours},
		{inputs: []string{"days", "day", "d", "DAYS"}, want: cftime.UnitDays},
		{inputs: []string{"milliseconds", "millisecond", "msec", "ms"}, want: cftime.UnitMilliseconds},
		{inputs: []string{"microseconds", "microsecond", "us"}, want: cftime.UnitMicroseconds},
	}
	for _, tt := range tests {
		for _, input := range tt.inputs {
			got, err := cftime.ParseTimeUnit(input)
			if err != nil {
				t.Errorf("ParseTimeUnit(%q) unexpected error: %v", input, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseTimeUnit(%q) = %v, want %v", input, got, tt.want)
			}
		}
	}

	if _, err := cftime.ParseTimeUnit("fortnights"); !errors.Is(err, cftime.ErrUnknownTimeUnit) {
		t.Errorf("ParseTimeUnit(fortnights) error = %v, want ErrUnknownTimeUnit", err)
	}
}

func TestParseUnits(t *testing.T) {
	tests := []struct {
		name     string
		units    string
		calendar string
		wantUnit cftime.TimeUnit
		wantRef  cftime.Components
	}{
		{
			name:     "date only",
			units:    "days since 1970-01-01",
			calendar: "standard",
			wantUnit: cftime.UnitDays,
			wantRef:  cftime.Components{Year: 1970, Month: 1, Day: 1},
		},
		{
			name:     "date and time",
			units:    "hours since 2000-01-01 12:00:00",
			calendar: "standard",
			wantUnit: cftime.UnitHours,
			wantRef:  cftime.Components{Year: 2000, Month: 1, Day: 1, Hour: 12},
		},
		{
			name:     "single digit fields",
			units:    "seconds since 1970-1-1 0:0:0",
			calendar: "standard",
			wantUnit: cftime.UnitSeconds,
			wantRef:  cftime.Components{Year: 1970, Month: 1, Day: 1},
		},
		{
			name:     "mixed case",
			units:    "Days Since 1970-01-01",
			calendar: "standard",
			wantUnit: cftime.UnitDays,
			wantRef:  cftime.Components{Year: 1970, Month: 1, Day: 1},
		},
		{
			name:     "utc marker",
			units:    "ms since 1980-01-01 00:00:00 UTC",
			calendar: "standard",
			wantUnit: cftime.UnitMilliseconds,
			wantRef:  cftime.Components{Year: 1980, Month: 1, Day: 1},
		},
		{
			name:     "zulu marker",
			units:    "days since 1970-01-01 00:00:00 Z",
			calendar: "standard",
			wantUnit: cftime.UnitDays,
			wantRef:  cftime.Components{Year: 1970, Month: 1, Day: 1},
		},
		{
			name:     "positive zone offset",
			units:    "hours since 2000-01-01 00:00:00 +02:30",
			calendar: "standard",
			wantUnit: cftime.UnitHours,
			wantRef:  cftime.Components{Year: 1999, Month: 12, Day: 31, Hour: 21, Minute: 30},
		},
		{
			name:     "negative zone offset",
			units:    "hours since 2000-01-01 00:00:00 -06",
			calendar: "standard",
			wantUnit: cftime.UnitHours,
			wantRef:  cftime.Components{Year: 2000, Month: 1, Day: 1, Hour: 6},
		},
		{
			name:     "fractional reference second",
			units:    "seconds since 1970-01-01 00:00:00.25",
			calendar: "standard",
			wantUnit: cftime.UnitSeconds,
			wantRef:  cftime.Components{Year: 1970, Month: 1, Day: 1, Nanosecond: 250000000},
		},
		{
			name:     "negative year",
			units:    "days since -4713-01-01",
			calendar: "julian",
			wantUnit: cftime.UnitDays,
			wantRef:  cftime.Components{Year: -4713, Month: 1, Day: 1},
		},
		{
			name:     "model calendar reference",
			units:    "days since 2000-02-30",
			calendar: "360_day",
			wantUnit: cftime.UnitDays,
			wantRef:  cftime.Components{Year: 2000, Month: 2, Day: 30},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal, err := cftime.ParseCalendar(tt.calendar)
			if err != nil {
				t.Fatalf("ParseCalendar(%q): %v", tt.calendar, err)
			}
			units, err := cftime.ParseUnits(tt.units, cal)
			if err != nil {
				t.Fatalf("ParseUnits(%q) unexpected error: %v", tt.units, err)
			}
			if units.Unit != tt.wantUnit {
				t.Errorf("unit = %v, want %v", units.Unit, tt.wantUnit)
			}
			if units.Calendar != cal {
				t.Errorf("calendar = %v, want %v", units.Calendar, cal)
			}
			got, err := units.Reference.Components()
			if err != nil {
				t.Fatalf("Reference.Components(): %v", err)
			}
			if diff := cmp.Diff(tt.wantRef, got); diff != "" {
				t.Errorf("reference mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseUnitsErrors(t *testing.T) {
	tests := []struct {
		name     string
		units    string
		calendar cftime.Calendar
		wantErr  error
	}{
		{name: "empty", units: "", calendar: cftime.CalendarStandard, wantErr: cftime.ErrMalformedUnits},
		{name: "unit only", units: "days", calendar: cftime.CalendarStandard, wantErr: cftime.ErrMalformedUnits},
		{name: "missing since", units: "days until 1970-01-01", calendar: cftime.CalendarStandard, wantErr: cftime.ErrMalformedUnits},
		{name: "unknown unit", units: "fortnights since 1970-01-01", calendar: cftime.CalendarStandard, wantErr: cftime.ErrUnknownTimeUnit},
		{name: "slashed date", units: "days since 1970/01/01", calendar: cftime.CalendarStandard, wantErr: cftime.ErrMalformedUnits},
		{name: "garbage after date", units: "days since 1970-01-01 noon", calendar: cftime.CalendarStandard, wantErr: cftime.ErrMalformedUnits},
		{name: "trailing token", units: "days since 1970-01-01 00:00:00 Z extra", calendar: cftime.CalendarStandard, wantErr: cftime.ErrMalformedUnits},
		{name: "month out of range", units: "days since 1970-13-01", calendar: cftime.CalendarStandard, wantErr: cftime.ErrInvalidReferenceDate},
		{name: "february 30", units: "days since 2000-02-30", calendar: cftime.CalendarStandard, wantErr: cftime.ErrInvalidReferenceDate},
		{name: "reference inside reform gap", units: "days since 1582-10-10", calendar: cftime.CalendarStandard, wantErr: cftime.ErrInvalidReferenceDate},
		{name: "julian accepts gap date", units: "days since 1582-10-10", calendar: cftime.CalendarJulian, wantErr: nil},
		{name: "none skips civil validation", units: "days since 2000-02-30", calendar: cftime.CalendarNone, wantErr: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cftime.ParseUnits(tt.units, tt.calendar)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ParseUnits(%q) unexpected error: %v", tt.units, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseUnits(%q) error = %v, want %v", tt.units, err, tt.wantErr)
			}
		})
	}
}

func TestParseDateTime(t *testing.T) {
	cal := cftime.CalendarStandard

	got, err := cftime.ParseDateTime("2000-02-29T12:30:45.25", cal)
	if err != nil {
		t.Fatalf("ParseDateTime: %v", err)
	}
	c, err := got.Components()
	if err != nil {
		t.Fatalf("Components: %v", err)
	}
	want := cftime.Components{Year: 2000, Month: 2, Day: 29, Hour: 12, Minute: 30, Second: 45, Nanosecond: 250000000}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("components mismatch (-want +got):\n%s", diff)
	}

	if _, err := cftime.ParseDateTime("1999-02-29", cal); !errors.Is(err, cftime.ErrNonExistentDate) {
		t.Errorf("1999-02-29 error = %v, want ErrNonExistentDate", err)
	}
	if _, err := cftime.ParseDateTime("noon", cal); !errors.Is(err, cftime.ErrNonExistentDate) {
		t.Errorf("noon error = %v, want ErrNonExistentDate", err)
	}
}
