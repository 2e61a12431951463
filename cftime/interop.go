package cftime

import (
	"fmt"
	"time"
)

// ToTime converts the value to a time.Time in UTC.
//
// time.Time is proleptic Gregorian, so the conversion is defined for
// proleptic_gregorian values everywhere, and for standard values from
// 1582-10-15 on, where the two calendars coincide. Everything else fails
// with ErrUnsupportedCalendar.
func ToTime(v DateTime) (time.Time, error) {
	switch v.calendar {
	case CalendarProlepticGregorian:
	case CalendarStandard:
		if v.day < gregorianReformOrdinal {
			return time.Time{}, fmt.Errorf("%w: standard-calendar dates before 1582-10-15 diverge from time.Time", ErrUnsupportedCalendar)
		}
	default:
		return time.Time{}, fmt.Errorf("%w: %s", ErrUnsupportedCalendar, v.calendar)
	}
	c, err := v.Components()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(c.Year, time.Month(c.Month), c.Day, c.Hour, c.Minute, c.Second, c.Nanosecond, time.UTC), nil
}

// FromTime converts a time.Time to a proleptic_gregorian DateTime,
// normalizing to UTC first.
func FromTime(t time.Time) DateTime {
	u := t.UTC()
	year, month, day := u.Date()
	hour, minute, second := u.Clock()
	return fromOrdinal(
		CalendarProlepticGregorian,
		gregorianOrdinal(int64(year), int(month), day),
		hour*secondsPerHour+minute*secondsPerMinute+second,
		u.Nanosecond(),
	)
}

// DecodeTime is Decode with the results converted to time.Time. The units'
// calendar must be convertible for every decoded value; see ToTime.
func DecodeTime[N Numeric](offsets []N, units Units) ([]time.Time, error) {
	values, err := Decode(offsets, units)
	if err != nil {
		return nil, err
	}
	out := make([]time.Time, len(values))
	for i, v := range values {
		out[i], err = ToTime(v)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}
	}
	return out, nil
}

// EncodeTime is Encode over time.Time inputs. The units' calendar must be
// proleptic_gregorian, or standard with every instant on or after
// 1582-10-15.
func EncodeTime[N Numeric](times []time.Time, units Units, opts ...EncodeOption) ([]N, error) {
	values := make([]DateTime, len(times))
	for i, t := range times {
		v := FromTime(t)
		if units.Calendar == CalendarStandard {
			// Post-reform the two day lines coincide, so the ordinal can be
			// retagged as is.
			if v.day < gregorianReformOrdinal {
				return nil, fmt.Errorf("time %d: %w: standard-calendar dates before 1582-10-15 diverge from time.Time", i, ErrUnsupportedCalendar)
			}
			v.calendar = CalendarStandard
		}
		values[i] = v
	}
	return Encode[N](values, units, opts...)
}
