package cftime

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Offset arithmetic is carried out in decimal, never in binary floating
// point: a float offset is converted to its shortest decimal form once,
// multiplied by the unit's exact factor, and only then split into whole
// seconds and nanoseconds. The wide context absorbs the full int64 second
// range with room for the fraction; the narrower context is used where the
// result feeds a binary float anyway.
const (
	decimalPrecision      = 50
	floatDecimalPrecision = 34
)

var (
	decimalContext = roundHalfEven(apd.BaseContext.WithPrecision(decimalPrecision))
	floatContext   = roundHalfEven(apd.BaseContext.WithPrecision(floatDecimalPrecision))
)

func roundHalfEven(ctx *apd.Context) *apd.Context {
	ctx.Rounding = apd.RoundHalfEven
	return ctx
}

// Numeric is the set of offset types a CF time variable can carry.
type Numeric interface {
	int32 | int64 | float32 | float64
}

// NumericKind names a Numeric type at runtime, for callers that pick the
// offset type from data rather than at compile time.
type NumericKind uint8

const (
	KindInt32 NumericKind = iota
	KindInt64
	KindFloat32
	KindFloat64
)

var numericKindNames = [...]string{
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

func (k NumericKind) String() string {
	if int(k) < len(numericKindNames) {
		return numericKindNames[k]
	}
	return fmt.Sprintf("NumericKind(%d)", uint8(k))
}

// ParseNumericKind maps a type name to its NumericKind. Besides the Go
// spellings it accepts the netCDF names "int", "float" and "double".
func ParseNumericKind(name string) (NumericKind, error) {
	switch name {
	case "int32", "int":
		return KindInt32, nil
	case "int64", "long":
		return KindInt64, nil
	case "float32", "float":
		return KindFloat32, nil
	case "float64", "double":
		return KindFloat64, nil
	default:
		return 0, fmt.Errorf("unknown numeric kind %q", name)
	}
}

// KindOf returns the NumericKind of the type parameter.
func KindOf[N Numeric]() NumericKind {
	var zero N
	switch any(zero).(type) {
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float32:
		return KindFloat32
	default:
		return KindFloat64
	}
}

// EncodeOption configures Encode.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	strict bool
}

// WithStrictCast makes Encode fail with ErrLossyCast when an integer
// output would silently drop a non-zero fraction of the offset, instead
// of truncating it toward zero.
func WithStrictCast() EncodeOption {
	return func(c *encodeConfig) {
		c.strict = true
	}
}

// Decode converts numeric offsets into datetimes of the units' calendar.
//
// Each offset is taken as a count of units.Unit since units.Reference.
// Float offsets may carry fractions; the fraction is resolved to whole
// nanoseconds with ties rounded to even. NaN and infinite offsets fail
// with ErrInvalidOffset. Decoding an empty slice returns an empty slice.
func Decode[N Numeric](offsets []N, units Units) ([]DateTime, error) {
	factor := units.Unit.factor()
	reference := units.Reference
	if units.Calendar == CalendarNone {
		// Elapsed-time values are anchored at offset zero.
		reference = DateTime{calendar: CalendarNone}
	}
	out := make([]DateTime, len(offsets))
	var seconds apd.Decimal
	for i, offset := range offsets {
		d, err := numericToDecimal(offset)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}
		if _, err := decimalContext.Mul(&seconds, d, factor); err != nil {
			return nil, fmt.Errorf("offset %d: %w: %v", i, ErrInvalidOffset, err)
		}
		dur, err := decimalToDuration(&seconds)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}
		out[i] = reference.AddDuration(dur)
	}
	return out, nil
}

// Encode converts datetimes into numeric offsets from the units'
// reference.
//
// Every value must be of the units' calendar; a mismatch fails with
// ErrIncompatibleCalendar. Integer outputs truncate a fractional offset
// toward zero unless WithStrictCast is given, and fail with ErrLossyCast
// when the offset does not fit the output type's range.
func Encode[N Numeric](values []DateTime, units Units, opts ...EncodeOption) ([]N, error) {
	var cfg encodeConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	factor := units.Unit.factor()
	out := make([]N, len(values))
	for i, value := range values {
		if value.calendar != units.Calendar {
			return nil, fmt.Errorf("value %d: %w", i, incompatibleCalendarError(value.calendar, units.Calendar))
		}
		var dur Duration
		if units.Calendar == CalendarNone {
			dur = value.elapsed()
		} else {
			var err error
			dur, err = value.Sub(units.Reference)
			if err != nil {
				return nil, fmt.Errorf("value %d: %w", i, err)
			}
		}
		n, err := decimalToNumeric[N](dur.AsSeconds(), factor, cfg.strict)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

// numericToDecimal converts an offset to decimal. Floats go through their
// shortest decimal representation, so the value a user wrote as 0.25 stays
// 0.25 rather than its binary expansion.
func numericToDecimal[N Numeric](v N) (*apd.Decimal, error) {
	var d apd.Decimal
	switch v := any(v).(type) {
	case int32:
		d.SetInt64(int64(v))
	case int64:
		d.SetInt64(v)
	case float32:
		if err := setDecimalFromFloat(&d, float64(v), 32); err != nil {
			return nil, err
		}
	case float64:
		if err := setDecimalFromFloat(&d, v, 64); err != nil {
			return nil, err
		}
	}
	return &d, nil
}

func setDecimalFromFloat(d *apd.Decimal, f float64, bitSize int) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrInvalidOffset, f)
	}
	if _, _, err := d.SetString(strconv.FormatFloat(f, 'g', -1, bitSize)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOffset, err)
	}
	return nil
}

// decimalToDuration splits a decimal number of seconds into whole seconds
// and nanoseconds. The fraction is rounded to the nearest nanosecond, ties
// to even; a rounded-up fraction carries into the seconds.
func decimalToDuration(seconds *apd.Decimal) (Duration, error) {
	var whole, frac apd.Decimal
	seconds.Modf(&whole, &frac)
	sec, err := whole.Int64()
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %s seconds out of range: %v", ErrInvalidOffset, seconds, err)
	}
	if frac.IsZero() {
		return Duration{Seconds: sec}, nil
	}
	var scaled, rounded apd.Decimal
	if _, err := decimalContext.Mul(&scaled, &frac, apd.New(1, 9)); err != nil {
		return Duration{}, fmt.Errorf("%w: %v", ErrInvalidOffset, err)
	}
	if _, err := decimalContext.Quantize(&rounded, &scaled, 0); err != nil {
		return Duration{}, fmt.Errorf("%w: %v", ErrInvalidOffset, err)
	}
	nanos, err := rounded.Int64()
	if err != nil {
		return Duration{}, fmt.Errorf("%w: %v", ErrInvalidOffset, err)
	}
	return newDuration(sec, nanos), nil
}

// decimalToNumeric divides a decimal second count by the unit factor and
// narrows the quotient to N.
func decimalToNumeric[N Numeric](seconds, factor *apd.Decimal, strict bool) (N, error) {
	var zero N
	switch any(zero).(type) {
	case int32, int64:
		var quo apd.Decimal
		if _, err := decimalContext.QuoInteger(&quo, seconds, factor); err != nil {
			return zero, fmt.Errorf("%w: %v", ErrLossyCast, err)
		}
		if strict {
			var rem apd.Decimal
			if _, err := decimalContext.Rem(&rem, seconds, factor); err != nil {
				return zero, fmt.Errorf("%w: %v", ErrLossyCast, err)
			}
			if !rem.IsZero() {
				return zero, fmt.Errorf("%w: offset has a fractional part", ErrLossyCast)
			}
		}
		n, err := quo.Int64()
		if err != nil {
			return zero, fmt.Errorf("%w: offset out of int64 range", ErrLossyCast)
		}
		if _, ok := any(zero).(int32); ok {
			if n < math.MinInt32 || n > math.MaxInt32 {
				return zero, fmt.Errorf("%w: offset %d out of int32 range", ErrLossyCast, n)
			}
			return any(int32(n)).(N), nil
		}
		return any(n).(N), nil
	case float32:
		f, err := decimalQuotientFloat(seconds, factor)
		if err != nil {
			return zero, err
		}
		f32 := float32(f)
		if math.IsInf(float64(f32), 0) && !math.IsInf(f, 0) {
			return zero, fmt.Errorf("%w: offset %g out of float32 range", ErrLossyCast, f)
		}
		return any(f32).(N), nil
	default:
		f, err := decimalQuotientFloat(seconds, factor)
		if err != nil {
			return zero, err
		}
		return any(f).(N), nil
	}
}

func decimalQuotientFloat(seconds, factor *apd.Decimal) (float64, error) {
	var quo apd.Decimal
	if _, err := floatContext.Quo(&quo, seconds, factor); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLossyCast, err)
	}
	f, err := quo.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLossyCast, err)
	}
	return f, nil
}
