package cftime

// Per-calendar conversion between civil dates and ordinal day counts.
//
// The ordinal is the number of days since 1970-01-01 of the value's own
// calendar. All conversions are closed-form: offset arithmetic never steps
// month by month, so decoding an offset far from the reference costs the
// same as decoding a nearby one.
//
// The Gregorian and Julian conversions use era-based civil-from-days
// arithmetic: years are shifted so they start in March, putting the leap
// day last, and grouped into eras with a fixed day count (400 years /
// 146097 days for Gregorian, 4 years / 1461 days for Julian).

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
	nanosPerSecond   = 1_000_000_000

	epochYear = 1970

	// Days from the era origin (0000-03-01) to 1970-01-01.
	gregorianEpochShift = 719468
	julianEpochShift    = 719483

	daysPerGregorianEra = 146097 // 400 years
	daysPerJulianEra    = 1461   // 4 years
)

// gregorianReformOrdinal is the ordinal of 1582-10-15, the first Gregorian
// day of the standard calendar.
var gregorianReformOrdinal = gregorianOrdinal(1582, 10, 15)

// standardJulianShift rebases Julian-rule ordinals onto the standard
// calendar's day line so that Julian 1582-10-04 is the day before
// Gregorian 1582-10-15.
var standardJulianShift = gregorianReformOrdinal - 1 - julianOrdinal(1582, 10, 4)

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// shiftedMonth maps a civil month to its March-based index: March is 0,
// February is 11.
func shiftedMonth(month int) int64 {
	return int64((month + 9) % 12)
}

func gregorianOrdinal(year int64, month, day int) int64 {
	y := year
	if month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	doy := (153*shiftedMonth(month)+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*daysPerGregorianEra + doe - gregorianEpochShift
}

func gregorianCivil(ordinal int64) (year int64, month, day int) {
	z := ordinal + gregorianEpochShift
	era := floorDiv(z, daysPerGregorianEra)
	doe := z - era*daysPerGregorianEra
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	doy := doe - (yoe*365 + yoe/4 - yoe/100)
	return civilFromShifted(era*400+yoe, doy)
}

func julianOrdinal(year int64, month, day int) int64 {
	y := year
	if month <= 2 {
		y--
	}
	era := floorDiv(y, 4)
	yoe := y - era*4
	doy := (153*shiftedMonth(month)+2)/5 + int64(day) - 1
	doe := yoe*365 + doy
	return era*daysPerJulianEra + doe - julianEpochShift
}

func julianCivil(ordinal int64) (year int64, month, day int) {
	z := ordinal + julianEpochShift
	era := floorDiv(z, daysPerJulianEra)
	doe := z - era*daysPerJulianEra
	yoe := (doe - doe/1460) / 365
	doy := doe - yoe*365
	return civilFromShifted(era*4+yoe, doy)
}

// civilFromShifted converts a March-based year and day-of-year back to a
// civil date.
func civilFromShifted(shiftedYear, doy int64) (year int64, month, day int) {
	mp := (5*doy + 2) / 153
	day = int(doy - (153*mp+2)/5 + 1)
	if mp < 10 {
		month = int(mp) + 3
	} else {
		month = int(mp) - 9
	}
	year = shiftedYear
	if month <= 2 {
		year++
	}
	return year, month, day
}

func standardOrdinal(year int64, month, day int) int64 {
	if standardIsGregorian(year, month, day) {
		return gregorianOrdinal(year, month, day)
	}
	return julianOrdinal(year, month, day) + standardJulianShift
}

func standardCivil(ordinal int64) (year int64, month, day int) {
	if ordinal >= gregorianReformOrdinal {
		return gregorianCivil(ordinal)
	}
	return julianCivil(ordinal - standardJulianShift)
}

func standardIsGregorian(year int64, month, day int) bool {
	if year != 1582 {
		return year > 1582
	}
	if month != 10 {
		return month > 10
	}
	return day >= 15
}

// fixedOrdinal converts a civil date of a fixed-year-length calendar
// (no-leap, all-leap) using the cumulative month table.
func fixedOrdinal(year int64, month, day int, cum *[13]int, daysPerYear int64) int64 {
	return (year-epochYear)*daysPerYear + int64(cum[month-1]) + int64(day) - 1
}

func fixedCivil(ordinal int64, cum *[13]int, daysPerYear int64) (year int64, month, day int) {
	y := floorDiv(ordinal, daysPerYear)
	doy := int(ordinal - y*daysPerYear)
	month = 1
	for month < 12 && cum[month] <= doy {
		month++
	}
	return epochYear + y, month, doy - cum[month-1] + 1
}

func day360Ordinal(year int64, month, day int) int64 {
	return (year-epochYear)*360 + int64(month-1)*30 + int64(day) - 1
}

func day360Civil(ordinal int64) (year int64, month, day int) {
	y := floorDiv(ordinal, 360)
	doy := int(ordinal - y*360)
	return epochYear + y, doy/30 + 1, doy%30 + 1
}

// civilToOrdinal dispatches to the calendar's days-from-civil conversion.
// The civil components must already be validated.
func civilToOrdinal(c Calendar, year int64, month, day int) int64 {
	switch c {
	case CalendarStandard:
		return standardOrdinal(year, month, day)
	case CalendarProlepticGregorian:
		return gregorianOrdinal(year, month, day)
	case CalendarJulian:
		return julianOrdinal(year, month, day)
	case CalendarNoLeap:
		return fixedOrdinal(year, month, day, &cumDaysPerMonth, 365)
	case CalendarAllLeap:
		return fixedOrdinal(year, month, day, &cumDaysPerMonthLeap, 366)
	case Calendar360Day:
		return day360Ordinal(year, month, day)
	default:
		return 0
	}
}

// ordinalToCivil dispatches to the calendar's civil-from-days conversion.
func ordinalToCivil(c Calendar, ordinal int64) (year int64, month, day int) {
	switch c {
	case CalendarStandard:
		return standardCivil(ordinal)
	case CalendarProlepticGregorian:
		return gregorianCivil(ordinal)
	case CalendarJulian:
		return julianCivil(ordinal)
	case CalendarNoLeap:
		return fixedCivil(ordinal, &cumDaysPerMonth, 365)
	case CalendarAllLeap:
		return fixedCivil(ordinal, &cumDaysPerMonthLeap, 366)
	case Calendar360Day:
		return day360Civil(ordinal)
	default:
		return 0, 0, 0
	}
}
