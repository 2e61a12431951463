package cftime

import (
	"errors"
	"fmt"
)

// Errors
var (
	// ErrMalformedUnits indicates a units string that does not match
	// "<unit> since <datetime>".
	ErrMalformedUnits = errors.New("malformed units string")
	// ErrUnknownTimeUnit indicates an unrecognized time unit spelling.
	ErrUnknownTimeUnit = errors.New("unknown time unit")
	// ErrUnknownCalendar indicates an unrecognized calendar name.
	ErrUnknownCalendar = errors.New("unknown calendar")
	// ErrInvalidReferenceDate indicates a reference datetime that is not a
	// legal date in the target calendar.
	ErrInvalidReferenceDate = errors.New("invalid reference date")
	// ErrInvalidOffset indicates a non-finite or out-of-range numeric offset.
	ErrInvalidOffset = errors.New("invalid offset")
	// ErrNonExistentDate indicates a date that does not exist in its
	// calendar, such as February 30 or a day inside the standard-calendar
	// 1582 gap.
	ErrNonExistentDate = errors.New("non-existent calendar date")
	// ErrIncompatibleCalendar indicates an operation mixing values from
	// different calendars.
	ErrIncompatibleCalendar = errors.New("incompatible calendars")
	// ErrLossyCast indicates a strict integer encoding that would drop a
	// non-zero fraction, or a result outside the output type's range.
	ErrLossyCast = errors.New("lossy numeric cast")
	// ErrUnsupportedCalendar indicates host interop requested for a value
	// that cannot be represented as a host datetime.
	ErrUnsupportedCalendar = errors.New("calendar unsupported for host datetime")
	// ErrNoCivilDate indicates a civil date operation on the "none"
	// calendar, which carries elapsed time only.
	ErrNoCivilDate = errors.New("calendar has no civil dates")
)

// malformedUnitsError returns a malformed units error with a custom
// message, which unwraps to ErrMalformedUnits.
func malformedUnitsError(units, message string) error {
	return fmt.Errorf("%w: %s: %q", ErrMalformedUnits, message, units)
}

// nonExistentDateError returns a non-existent date error with a custom
// message, which unwraps to ErrNonExistentDate.
func nonExistentDateError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNonExistentDate, fmt.Sprintf(format, args...))
}

// incompatibleCalendarError returns an incompatible calendars error naming
// both calendars, which unwraps to ErrIncompatibleCalendar.
func incompatibleCalendarError(a, b Calendar) error {
	return fmt.Errorf("%w: %s and %s", ErrIncompatibleCalendar, a, b)
}
