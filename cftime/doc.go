// Package cftime converts between numeric time coordinates and calendar
// datetimes following the CF (Climate and Forecast) metadata conventions.
//
// A CF time coordinate stores offsets from a reference datetime, described
// by a units attribute such as "days since 1970-01-01" and a calendar
// attribute naming one of the CF calendars: standard (mixed
// Julian/Gregorian), proleptic_gregorian, julian, noleap, all_leap,
// 360_day or none.
//
// # Decoding
//
// Parse the units once, then decode any number of offsets:
//
//	cal, err := cftime.ParseCalendar("standard")
//	units, err := cftime.ParseUnits("days since 1970-01-01", cal)
//	values, err := cftime.Decode([]float64{0, 0.5, 366}, units)
//	fmt.Println(values[1]) // 1970-01-01 12:00:00
//
// # Encoding
//
// Encoding is the inverse; the output numeric type is the type parameter:
//
//	v, err := cftime.New(cal, 1971, 1, 2, 0, 0, 0)
//	offsets, err := cftime.Encode[float64]([]cftime.DateTime{v}, units)
//
// Integer outputs truncate fractional offsets toward zero; pass
// WithStrictCast to fail with ErrLossyCast instead.
//
// # Precision
//
// All offset arithmetic is exact decimal arithmetic with nanosecond
// resolution; a float offset contributes its shortest decimal
// representation, not its binary expansion. Conversions between civil
// dates and day counts are closed form, so offsets far from the reference
// cost the same as nearby ones.
//
// # Host interop
//
// ToTime, FromTime, DecodeTime and EncodeTime bridge to time.Time for the
// calendars it can represent: proleptic_gregorian everywhere, and standard
// from 1582-10-15 on.
package cftime

//go:generate go run ../internal/cmd/generate -out tables_gen.go
