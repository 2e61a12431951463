package cftime

import (
	"fmt"
	"strings"
)

// Calendar identifies one of the calendar systems defined by the CF
// conventions for the time coordinate.
//
// The set is closed: every algorithm in this package switches exhaustively
// over these variants, so the rules for a calendar live in one place.
type Calendar uint8

const (
	// CalendarStandard is the mixed Julian/Gregorian calendar: Julian rules
	// up to 1582-10-04, Gregorian rules from 1582-10-15, with the ten days
	// in between not existing.
	CalendarStandard Calendar = iota
	// CalendarProlepticGregorian applies the Gregorian leap rule uniformly
	// to all years, with no historical transition gap.
	CalendarProlepticGregorian
	// CalendarJulian applies the Julian leap rule (every fourth year, no
	// century exception) to all years.
	CalendarJulian
	// CalendarNoLeap has fixed 365-day years.
	CalendarNoLeap
	// CalendarAllLeap has fixed 366-day years.
	CalendarAllLeap
	// Calendar360Day has twelve 30-day months.
	Calendar360Day
	// CalendarNone carries elapsed time only, with no civil decomposition.
	CalendarNone
)

// ParseCalendar maps a CF calendar name to its Calendar.
//
// Recognized spellings: "standard", "gregorian", "proleptic_gregorian",
// "julian", "noleap", "365_day", "all_leap", "366_day", "360_day" and
// "none". Matching is case-insensitive and ignores surrounding whitespace.
func ParseCalendar(name string) (Calendar, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard", "gregorian":
		return CalendarStandard, nil
	case "proleptic_gregorian":
		return CalendarProlepticGregorian, nil
	case "julian":
		return CalendarJulian, nil
	case "noleap", "365_day":
		return CalendarNoLeap, nil
	case "all_leap", "366_day":
		return CalendarAllLeap, nil
	case "360_day":
		return Calendar360Day, nil
	case "none":
		return CalendarNone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCalendar, name)
	}
}

// String returns the canonical CF name of the calendar.
func (c Calendar) String() string {
	if int(c) < len(calendarNames) {
		return calendarNames[c]
	}
	return fmt.Sprintf("Calendar(%d)", uint8(c))
}

// IsLeapYear reports whether year is a leap year in this calendar.
//
// Years are astronomical: year 0 exists and negative years follow the same
// divisibility rules. NoLeap, AllLeap, 360-day and none calendars ignore
// the year entirely.
func (c Calendar) IsLeapYear(year int) bool {
	switch c {
	case CalendarStandard:
		// The leap rule changes with the 1582 reform; October 1582 itself
		// is handled by the ordinal conversion.
		if year <= 1582 {
			return isLeapJulian(year)
		}
		return isLeapGregorian(year)
	case CalendarProlepticGregorian:
		return isLeapGregorian(year)
	case CalendarJulian:
		return isLeapJulian(year)
	case CalendarAllLeap:
		return true
	default:
		return false
	}
}

// DaysInMonth returns the number of days of the given month (1-12), or 0
// for a month outside that range or a calendar without civil dates.
//
// For the standard calendar, October 1582 has 21 days: the excised
// 1582-10-05..1582-10-14 range never existed.
func (c Calendar) DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	switch c {
	case Calendar360Day:
		return daysPerMonth360[month-1]
	case CalendarNone:
		return 0
	case CalendarStandard:
		if year == 1582 && month == 10 {
			return daysPerMonth[9] - reformGapDays
		}
	}
	if c.IsLeapYear(year) {
		return daysPerMonthLeap[month-1]
	}
	return daysPerMonth[month-1]
}

// DaysInYear returns the total number of days in the given year.
func (c Calendar) DaysInYear(year int) int {
	switch c {
	case Calendar360Day:
		return 360
	case CalendarNone:
		return 0
	case CalendarStandard:
		if year == 1582 {
			return 365 - reformGapDays
		}
	}
	if c.IsLeapYear(year) {
		return 366
	}
	return 365
}

func isLeapGregorian(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func isLeapJulian(year int) bool {
	return year%4 == 0
}

// validate checks that the civil components form an existing datetime in
// the calendar.
func (c Calendar) validate(year, month, day, hour, minute, second int) error {
	if c == CalendarNone {
		return fmt.Errorf("%w: cannot construct a civil date in the %s calendar", ErrNoCivilDate, c)
	}
	if month < 1 || month > 12 {
		return nonExistentDateError("month %d out of range in %s calendar", month, c)
	}
	if c == CalendarStandard && year == 1582 && month == 10 {
		if day >= reformFirstMissingDay && day <= reformLastMissingDay {
			return nonExistentDateError("%04d-%02d-%02d falls in the 1582 Gregorian reform gap", year, month, day)
		}
		if day < 1 || day > daysPerMonth[9] {
			return nonExistentDateError("day %d out of range for %04d-%02d in %s calendar", day, year, month, c)
		}
	} else if day < 1 || day > c.DaysInMonth(year, month) {
		return nonExistentDateError("day %d out of range for %04d-%02d in %s calendar", day, year, month, c)
	}
	if hour < 0 || hour > 23 {
		return nonExistentDateError("hour %d out of range", hour)
	}
	if minute < 0 || minute > 59 {
		return nonExistentDateError("minute %d out of range", minute)
	}
	if second < 0 || second > 59 {
		return nonExistentDateError("second %d out of range", second)
	}
	return nil
}

const (
	// Days excised by the Gregorian reform: 1582-10-05 through 1582-10-14.
	reformFirstMissingDay = 5
	reformLastMissingDay  = 14
	reformGapDays         = reformLastMissingDay - reformFirstMissingDay + 1
)
