package cftime

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// DateTime is a calendar-tagged instant, decomposed on demand into civil
// components. It is immutable: arithmetic produces a new value.
//
// Internally a DateTime is kept in ordinal form, the pivot of all offset
// arithmetic: a day count relative to 1970-01-01 of its own calendar, a
// second of day, and a nanosecond. Civil components are derived from the
// ordinal through the calendar's closed-form conversion, so a value can
// never hold a day that does not exist in its calendar.
//
// Values of the "none" calendar carry elapsed time from their reference
// only; their civil accessors fail with ErrNoCivilDate.
type DateTime struct {
	calendar Calendar
	day      int64 // days since 1970-01-01 of the calendar
	sec      int32 // second of day, 0..86399
	nsec     int32 // 0..999999999
}

// Components is the civil decomposition of a DateTime.
type Components struct {
	Year       int
	Month      int
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// New returns the DateTime with the given civil components in the given
// calendar. It fails with ErrNonExistentDate if the date does not exist in
// that calendar (February 30, day 29 of a non-leap February, a day inside
// the standard calendar's 1582 gap) and with ErrNoCivilDate for the "none"
// calendar.
func New(calendar Calendar, year, month, day, hour, minute, second int) (DateTime, error) {
	return newWithNanos(calendar, year, month, day, hour, minute, second, 0)
}

// NewDate is New at midnight.
func NewDate(calendar Calendar, year, month, day int) (DateTime, error) {
	return New(calendar, year, month, day, 0, 0, 0)
}

func newWithNanos(calendar Calendar, year, month, day, hour, minute, second, nanosecond int) (DateTime, error) {
	if err := calendar.validate(year, month, day, hour, minute, second); err != nil {
		return DateTime{}, err
	}
	if nanosecond < 0 || nanosecond >= nanosPerSecond {
		return DateTime{}, nonExistentDateError("nanosecond %d out of range", nanosecond)
	}
	return DateTime{
		calendar: calendar,
		day:      civilToOrdinal(calendar, int64(year), month, day),
		sec:      int32(hour*secondsPerHour + minute*secondsPerMinute + second),
		nsec:     int32(nanosecond),
	}, nil
}

// fromOrdinal builds a DateTime directly from ordinal form. The second of
// day and nanosecond must already be normalized.
func fromOrdinal(calendar Calendar, day int64, sec, nsec int) DateTime {
	return DateTime{calendar: calendar, day: day, sec: int32(sec), nsec: int32(nsec)}
}

// Calendar returns the calendar the value is defined in.
func (d DateTime) Calendar() Calendar {
	return d.calendar
}

// Ordinal returns the value in ordinal form: days since 1970-01-01 of its
// calendar, the second of day in [0, 86400), and the nanosecond.
func (d DateTime) Ordinal() (day int64, second, nanosecond int) {
	return d.day, int(d.sec), int(d.nsec)
}

// Components decomposes the value into civil components. It fails with
// ErrNoCivilDate for the "none" calendar.
func (d DateTime) Components() (Components, error) {
	if d.calendar == CalendarNone {
		return Components{}, fmt.Errorf("%w: value carries elapsed time only", ErrNoCivilDate)
	}
	year, month, day := ordinalToCivil(d.calendar, d.day)
	sec := int(d.sec)
	return Components{
		Year:       int(year),
		Month:      month,
		Day:        day,
		Hour:       sec / secondsPerHour,
		Minute:     sec / secondsPerMinute % 60,
		Second:     sec % 60,
		Nanosecond: int(d.nsec),
	}, nil
}

// AddDuration returns the value shifted by the given duration within the
// same calendar.
func (d DateTime) AddDuration(dur Duration) DateTime {
	sec := int64(d.sec) + dur.Seconds
	nsec := int64(d.nsec) + int64(dur.Nanos)
	sec += floorDiv(nsec, nanosPerSecond)
	nsec = floorMod(nsec, nanosPerSecond)
	day := d.day + floorDiv(sec, secondsPerDay)
	sec = floorMod(sec, secondsPerDay)
	return fromOrdinal(d.calendar, day, int(sec), int(nsec))
}

// Sub returns the signed duration d - other. Both values must share one
// calendar; otherwise it fails with ErrIncompatibleCalendar.
func (d DateTime) Sub(other DateTime) (Duration, error) {
	if d.calendar != other.calendar {
		return Duration{}, incompatibleCalendarError(d.calendar, other.calendar)
	}
	seconds := (d.day-other.day)*secondsPerDay + int64(d.sec-other.sec)
	return newDuration(seconds, int64(d.nsec-other.nsec)), nil
}

// Compare orders two values of the same calendar: -1 if d is earlier than
// other, 0 if equal, +1 if later. Comparing across calendars fails with
// ErrIncompatibleCalendar.
func (d DateTime) Compare(other DateTime) (int, error) {
	if d.calendar != other.calendar {
		return 0, incompatibleCalendarError(d.calendar, other.calendar)
	}
	switch {
	case d.day != other.day:
		return cmpInt64(d.day, other.day), nil
	case d.sec != other.sec:
		return cmpInt64(int64(d.sec), int64(other.sec)), nil
	default:
		return cmpInt64(int64(d.nsec), int64(other.nsec)), nil
	}
}

// Equal reports whether the two values denote the same instant of the same
// calendar.
func (d DateTime) Equal(other DateTime) bool {
	return d == other
}

// String formats the value as "YYYY-MM-DD HH:MM:SS" with the fractional
// second appended when present. Values of the "none" calendar format as an
// elapsed duration.
func (d DateTime) String() string {
	if d.calendar == CalendarNone {
		return d.elapsed().String()
	}
	c, err := d.Components()
	if err != nil {
		return "invalid"
	}
	s := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
	if c.Nanosecond != 0 {
		s += strings.TrimRight(fmt.Sprintf(".%09d", c.Nanosecond), "0")
	}
	return s
}

// elapsed returns the value's offset from its reference; meaningful for
// the "none" calendar, where ordinal zero is the reference itself.
func (d DateTime) elapsed() Duration {
	return Duration{Seconds: d.day*secondsPerDay + int64(d.sec), Nanos: d.nsec}
}

func cmpInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Duration is a signed span of time with nanosecond resolution, normalized
// so that 0 <= Nanos < 1e9. Unlike time.Duration it does not overflow for
// spans beyond ±292 years.
type Duration struct {
	Seconds int64
	Nanos   int32
}

// newDuration normalizes a seconds/nanoseconds pair.
func newDuration(seconds, nanos int64) Duration {
	seconds += floorDiv(nanos, nanosPerSecond)
	nanos = floorMod(nanos, nanosPerSecond)
	return Duration{Seconds: seconds, Nanos: int32(nanos)}
}

// Neg returns the negated duration.
func (d Duration) Neg() Duration {
	return newDuration(-d.Seconds, -int64(d.Nanos))
}

// Add returns the sum of two durations.
func (d Duration) Add(other Duration) Duration {
	return newDuration(d.Seconds+other.Seconds, int64(d.Nanos)+int64(other.Nanos))
}

// IsZero reports whether the duration is exactly zero.
func (d Duration) IsZero() bool {
	return d.Seconds == 0 && d.Nanos == 0
}

// AsSeconds returns the duration as an exact decimal number of seconds.
func (d Duration) AsSeconds() *apd.Decimal {
	sec := apd.New(d.Seconds, 0)
	if d.Nanos == 0 {
		return sec
	}
	var out apd.Decimal
	// Exact: both terms fit well within the context precision.
	if _, err := decimalContext.Add(&out, sec, apd.New(int64(d.Nanos), -9)); err != nil {
		return sec
	}
	return &out
}

func (d Duration) String() string {
	// Normalized form keeps Nanos >= 0; re-split so the sign is carried once.
	sec := d.Seconds
	nsec := int64(d.Nanos)
	sign := ""
	if sec < 0 && nsec > 0 {
		sec++
		nsec -= nanosPerSecond
	}
	if sec < 0 || nsec < 0 {
		sign = "-"
		sec = -sec
		nsec = -nsec
	}
	if nsec == 0 {
		return fmt.Sprintf("%s%ds", sign, sec)
	}
	return fmt.Sprintf("%s%d%ss", sign, sec, strings.TrimRight(fmt.Sprintf(".%09d", nsec), "0"))
}
