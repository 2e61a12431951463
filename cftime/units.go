package cftime

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// TimeUnit is the unit a numeric offset is counted in.
type TimeUnit uint8

const (
	UnitSeconds TimeUnit = iota
	UnitMinutes
	UnitHours
	UnitDays
	UnitMilliseconds
	UnitMicroseconds
)

// unitFactors holds each unit's conversion factor to seconds as an exact
// decimal; no factor is ever represented as a binary float.
var unitFactors = [...]*apd.Decimal{
	UnitSeconds:      apd.New(1, 0),
	UnitMinutes:      apd.New(60, 0),
	UnitHours:        apd.New(3600, 0),
	UnitDays:         apd.New(86400, 0),
	UnitMilliseconds: apd.New(1, -3),
	UnitMicroseconds: apd.New(1, -6),
}

var unitNames = [...]string{
	UnitSeconds:      "seconds",
	UnitMinutes:      "minutes",
	UnitHours:        "hours",
	UnitDays:         "days",
	UnitMilliseconds: "milliseconds",
	UnitMicroseconds: "microseconds",
}

// String returns the canonical plural spelling of the unit.
func (u TimeUnit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("TimeUnit(%d)", uint8(u))
}

// factor returns the unit's exact conversion factor to seconds.
func (u TimeUnit) factor() *apd.Decimal {
	return unitFactors[u]
}

// ParseTimeUnit maps a unit spelling to its TimeUnit. The recognized
// spellings cover the plural, singular and abbreviated forms found in CF
// units attributes.
func ParseTimeUnit(name string) (TimeUnit, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "seconds", "second", "secs", "sec", "s":
		return UnitSeconds, nil
	case "minutes", "minute", "mins", "min":
		return UnitMinutes, nil
	case "hours", "hour", "hrs", "hr", "h":
		return UnitHours, nil
	case "days", "day", "d":
		return UnitDays, nil
	case "milliseconds", "millisecond", "millisecs", "millisec", "msecs", "msec", "ms":
		return UnitMilliseconds, nil
	case "microseconds", "microsecond", "microsecs", "microsec", "us":
		return UnitMicroseconds, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTimeUnit, name)
	}
}

// Units is a parsed units string: the time unit offsets are counted in and
// the reference datetime they are counted from. A Units value is immutable
// and may be shared freely across concurrent Decode and Encode calls.
type Units struct {
	Unit      TimeUnit
	Calendar  Calendar
	Reference DateTime
}

var (
	referenceDatePattern = regexp.MustCompile(`^(-?\d{1,10})-(\d{1,2})-(\d{1,2})$`)
	referenceTimePattern = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}):(\d{1,2})(?:\.(\d+))?$`)
	referenceZonePattern = regexp.MustCompile(`^([+-])(\d{1,2})(?::(\d{2}))?$`)
)

// ParseUnits parses a CF units string of the form
//
//	<unit> since <date>[ <time>][ <zone>]
//
// where the date is "YYYY-MM-DD" (the year may be negative), the optional
// time is "HH:MM:SS" with an optional fractional second, and the optional
// zone is "Z", "UTC" or a fixed "±HH[:MM]" offset that is folded into the
// reference. A missing time of day defaults to midnight.
//
// The reference is validated against the given calendar and fails with
// ErrInvalidReferenceDate if it is not a legal date in it. For the "none"
// calendar the reference is checked syntactically only; offsets then
// denote plain elapsed time.
func ParseUnits(units string, calendar Calendar) (Units, error) {
	fields := strings.Fields(strings.ToLower(units))
	if len(fields) < 3 {
		return Units{}, malformedUnitsError(units, "expected \"<unit> since <datetime>\"")
	}

	unit, err := ParseTimeUnit(fields[0])
	if err != nil {
		return Units{}, err
	}
	if fields[1] != "since" {
		return Units{}, malformedUnitsError(units, fmt.Sprintf("expected %q, found %q", "since", fields[1]))
	}

	year, month, day, ok := parseDateToken(fields[2])
	if !ok {
		return Units{}, malformedUnitsError(units, fmt.Sprintf("invalid reference date %q", fields[2]))
	}

	var hour, minute, second, nanosecond int
	rest := fields[3:]
	if len(rest) > 0 {
		if h, mi, s, ns, ok := parseTimeToken(rest[0]); ok {
			hour, minute, second, nanosecond = h, mi, s, ns
			rest = rest[1:]
		}
	}

	var zoneOffset int64
	if len(rest) > 0 {
		offset, ok := parseZone(rest[0])
		if !ok {
			return Units{}, malformedUnitsError(units, fmt.Sprintf("unexpected token %q", rest[0]))
		}
		zoneOffset = offset
		rest = rest[1:]
	}
	if len(rest) > 0 {
		return Units{}, malformedUnitsError(units, fmt.Sprintf("unexpected trailing token %q", rest[0]))
	}

	reference := DateTime{calendar: CalendarNone}
	if calendar != CalendarNone {
		reference, err = newWithNanos(calendar, year, month, day, hour, minute, second, nanosecond)
		if err != nil {
			return Units{}, fmt.Errorf("%w: %v", ErrInvalidReferenceDate, err)
		}
		if zoneOffset != 0 {
			// A "+02:30" reference is 2h30m ahead of UTC; normalize the
			// anchor by shifting it back.
			reference = reference.AddDuration(Duration{Seconds: -zoneOffset})
		}
	}

	return Units{Unit: unit, Calendar: calendar, Reference: reference}, nil
}

// ParseDateTime parses "YYYY-MM-DD[ HH:MM:SS[.frac]]" as a datetime of the
// given calendar. A "T" date/time separator is also accepted. A missing
// time of day defaults to midnight.
func ParseDateTime(s string, calendar Calendar) (DateTime, error) {
	fields := strings.Fields(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "t", " "))
	if len(fields) == 0 || len(fields) > 2 {
		return DateTime{}, nonExistentDateError("cannot parse %q as a datetime", s)
	}
	year, month, day, ok := parseDateToken(fields[0])
	if !ok {
		return DateTime{}, nonExistentDateError("cannot parse %q as a date", fields[0])
	}
	var hour, minute, second, nanosecond int
	if len(fields) == 2 {
		hour, minute, second, nanosecond, ok = parseTimeToken(fields[1])
		if !ok {
			return DateTime{}, nonExistentDateError("cannot parse %q as a time of day", fields[1])
		}
	}
	return newWithNanos(calendar, year, month, day, hour, minute, second, nanosecond)
}

// parseDateToken matches "YYYY-MM-DD" with an optionally negative year.
func parseDateToken(token string) (year, month, day int, ok bool) {
	m := referenceDatePattern.FindStringSubmatch(token)
	if m == nil {
		return 0, 0, 0, false
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, 0, false
	}
	month, _ = strconv.Atoi(m[2])
	day, _ = strconv.Atoi(m[3])
	return year, month, day, true
}

// parseTimeToken matches "HH:MM:SS" with an optional fractional second.
func parseTimeToken(token string) (hour, minute, second, nanosecond int, ok bool) {
	m := referenceTimePattern.FindStringSubmatch(token)
	if m == nil {
		return 0, 0, 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	second, _ = strconv.Atoi(m[3])
	return hour, minute, second, fractionToNanos(m[4]), true
}

// parseZone recognizes "z", "utc" and "±HH[:MM]" (the input is already
// lowercased) and returns the offset east of UTC in seconds.
func parseZone(token string) (int64, bool) {
	if token == "z" || token == "utc" {
		return 0, true
	}
	m := referenceZonePattern.FindStringSubmatch(token)
	if m == nil {
		return 0, false
	}
	hours, _ := strconv.Atoi(m[2])
	minutes := 0
	if m[3] != "" {
		minutes, _ = strconv.Atoi(m[3])
	}
	offset := int64(hours)*secondsPerHour + int64(minutes)*secondsPerMinute
	if m[1] == "-" {
		offset = -offset
	}
	return offset, true
}

// fractionToNanos converts the fractional-second digits of a reference
// time to nanoseconds, rounding digits beyond nanosecond resolution.
func fractionToNanos(digits string) int {
	if digits == "" {
		return 0
	}
	f, err := strconv.ParseFloat("0."+digits, 64)
	if err != nil {
		return 0
	}
	n := int(math.Round(f * nanosPerSecond))
	if n >= nanosPerSecond {
		n = nanosPerSecond - 1
	}
	return n
}
