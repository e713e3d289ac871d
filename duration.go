// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"math"
	"math/big"
	"time"
)

// A Duration is a signed span of time, counted as whole seconds plus a
// nanosecond remainder. Unlike [time.Duration] it is not limited to ±292
// years: the seconds field alone covers the full int64 range.
//
// A Duration is always normalized: both fields have the same sign (or are
// zero) and the nanosecond remainder is smaller than a full second. All
// constructors and arithmetic preserve this.
//
// The zero value is a zero-length span, ready to use.
type Duration struct {
	secs  int64
	nanos int32 // |nanos| < 1e9, sign matches secs
}

// Bounds of the representable range. Adding any nonzero duration of the same
// sign to these overflows.
var (
	MinDuration = Duration{secs: math.MinInt64, nanos: -999_999_999}
	MaxDuration = Duration{secs: math.MaxInt64, nanos: 999_999_999}
)

// durationOf builds a Duration from already-normalized components.
func durationOf(secs int64, nanos int32) Duration {
	return Duration{secs: secs, nanos: nanos}
}

// NewDuration returns the Duration of secs seconds plus nanos nanoseconds.
// The arguments may be denormal (nanos of any magnitude, signs disagreeing);
// full seconds are carried from nanos into secs and the signs are made
// consistent. Carries that would exceed the representable range saturate to
// [MinDuration] or [MaxDuration].
func NewDuration(secs, nanos int64) Duration {
	carry := nanos / 1e9
	nanos %= 1e9
	secs, ok := addInt64(secs, carry)
	if !ok {
		if carry > 0 {
			return MaxDuration
		}
		return MinDuration
	}
	if secs > 0 && nanos < 0 {
		secs--
		nanos += 1e9
	} else if secs < 0 && nanos > 0 {
		secs++
		nanos -= 1e9
	}
	return durationOf(secs, int32(nanos))
}

// Seconds returns the Duration of n whole seconds.
func Seconds(n int64) Duration { return durationOf(n, 0) }

// scaleSeconds returns the Duration of n units of the given number of
// seconds, saturating like [NewDuration] if the product overflows.
func scaleSeconds(n, unit int64) Duration {
	secs, ok := mulInt64(n, unit)
	if !ok {
		if n < 0 {
			return MinDuration
		}
		return MaxDuration
	}
	return durationOf(secs, 0)
}

// Minutes returns the Duration of n minutes, saturating to [MinDuration] or
// [MaxDuration] if it is not representable.
func Minutes(n int64) Duration { return scaleSeconds(n, 60) }

// Hours returns the Duration of n hours, saturating to [MinDuration] or
// [MaxDuration] if it is not representable.
func Hours(n int64) Duration { return scaleSeconds(n, 3600) }

// Days returns the Duration of n 24-hour days, saturating to [MinDuration]
// or [MaxDuration] if it is not representable.
func Days(n int64) Duration { return scaleSeconds(n, 86400) }

// Weeks returns the Duration of n 7-day weeks, saturating to [MinDuration]
// or [MaxDuration] if it is not representable.
func Weeks(n int64) Duration { return scaleSeconds(n, 604800) }

// Milliseconds returns the Duration of n milliseconds.
func Milliseconds(n int64) Duration {
	return durationOf(n/1e3, int32(n%1e3)*1e6)
}

// Microseconds returns the Duration of n microseconds.
func Microseconds(n int64) Duration {
	return durationOf(n/1e6, int32(n%1e6)*1e3)
}

// Nanoseconds returns the Duration of n nanoseconds.
func Nanoseconds(n int64) Duration {
	return durationOf(n/1e9, int32(n%1e9))
}

// NanosecondsBig returns the Duration of n nanoseconds, for spans exceeding
// the int64 nanosecond range. It reports false if n does not fit in a
// Duration.
func NanosecondsBig(n *big.Int) (Duration, bool) {
	var secs, nanos big.Int
	secs.QuoRem(n, bigBillion, &nanos)
	if !secs.IsInt64() {
		return Duration{}, false
	}
	// QuoRem truncates toward zero, so the remainder already has the sign
	// of n and a magnitude below 1e9.
	return durationOf(secs.Int64(), int32(nanos.Int64())), true
}

var bigBillion = big.NewInt(1e9)

// FloatSeconds returns the Duration closest to s seconds.
//
// The fractional part of s is scaled to nanoseconds and rounded to the
// nearest integer, with ties rounding away from zero (the [math.Round]
// rule). NaN yields the zero Duration; infinities and values beyond the
// representable range saturate to [MinDuration] or [MaxDuration].
func FloatSeconds(s float64) Duration {
	const limit = math.MaxInt64 // 2^63 exactly, as a float64
	switch {
	case math.IsNaN(s):
		return Duration{}
	case s >= limit:
		return MaxDuration
	case s <= -limit:
		return MinDuration
	}
	whole := math.Trunc(s)
	frac := math.Round((s - whole) * 1e9)
	return NewDuration(int64(whole), int64(frac))
}

// FloatSeconds32 is [FloatSeconds] for float32 input. The value is widened
// to float64 before rounding, so the result is the Duration closest to the
// exact value of s.
func FloatSeconds32(s float32) Duration {
	return FloatSeconds(float64(s))
}

// FromStd converts a [time.Duration] to a Duration. The conversion is
// always exact, as every time.Duration fits.
func FromStd(d time.Duration) Duration {
	return durationOf(int64(d)/1e9, int32(int64(d)%1e9))
}

// Std converts d to a [time.Duration]. It reports false if d exceeds the
// ±292 year range of time.Duration.
func (d Duration) Std() (time.Duration, bool) {
	if d.secs > math.MaxInt64/int64(1e9) || d.secs < math.MinInt64/int64(1e9) {
		return 0, false
	}
	total, ok := addInt64(d.secs*1e9, int64(d.nanos))
	if !ok {
		return 0, false
	}
	return time.Duration(total), true
}

// AbsStd returns the magnitude of d as a [time.Duration]. It reports false
// if the magnitude exceeds the time.Duration range.
func (d Duration) AbsStd() (time.Duration, bool) {
	return d.Abs().Std()
}

// IsZero reports whether d is exactly zero.
func (d Duration) IsZero() bool { return d.secs == 0 && d.nanos == 0 }

// IsNegative reports whether d is strictly negative.
func (d Duration) IsNegative() bool { return d.secs < 0 || d.nanos < 0 }

// IsPositive reports whether d is strictly positive.
func (d Duration) IsPositive() bool { return d.secs > 0 || d.nanos > 0 }

// Abs returns the magnitude of d. The result saturates to [MaxDuration] for
// d == [MinDuration], whose magnitude is one nanosecond beyond the
// representable range.
func (d Duration) Abs() Duration {
	if !d.IsNegative() {
		return d
	}
	if d.secs == math.MinInt64 {
		return MaxDuration
	}
	return durationOf(-d.secs, -d.nanos)
}

// Neg returns d with its sign flipped, saturating to [MaxDuration] for
// [MinDuration] and vice versa.
func (d Duration) Neg() Duration {
	if d.secs == math.MinInt64 {
		return MaxDuration
	}
	if d.secs == math.MaxInt64 && d.nanos == 999_999_999 {
		return MinDuration
	}
	return durationOf(-d.secs, -d.nanos)
}

// WholeWeeks returns the number of whole weeks in d, truncated toward zero.
func (d Duration) WholeWeeks() int64 { return d.secs / 604800 }

// WholeDays returns the number of whole 24-hour days in d, truncated toward
// zero.
func (d Duration) WholeDays() int64 { return d.secs / 86400 }

// WholeHours returns the number of whole hours in d, truncated toward zero.
func (d Duration) WholeHours() int64 { return d.secs / 3600 }

// WholeMinutes returns the number of whole minutes in d, truncated toward
// zero.
func (d Duration) WholeMinutes() int64 { return d.secs / 60 }

// WholeSeconds returns the number of whole seconds in d.
func (d Duration) WholeSeconds() int64 { return d.secs }

// WholeMilliseconds returns the number of whole milliseconds in d. For
// spans beyond ±292 million years the result saturates to the int64 range;
// use [Duration.WholeNanosecondsBig] where exactness matters.
func (d Duration) WholeMilliseconds() int64 {
	ms, ok := mulInt64(d.secs, 1e3)
	if !ok {
		if d.secs > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	ms, ok = addInt64(ms, int64(d.nanos)/1e6)
	if !ok {
		if d.secs > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return ms
}

// WholeMicroseconds returns the number of whole microseconds in d,
// saturating to the int64 range like [Duration.WholeMilliseconds].
func (d Duration) WholeMicroseconds() int64 {
	us, ok := mulInt64(d.secs, 1e6)
	if !ok {
		if d.secs > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	us, ok = addInt64(us, int64(d.nanos)/1e3)
	if !ok {
		if d.secs > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return us
}

// WholeNanosecondsBig returns the exact number of nanoseconds in d.
func (d Duration) WholeNanosecondsBig() *big.Int {
	n := big.NewInt(d.secs)
	n.Mul(n, bigBillion)
	return n.Add(n, big.NewInt(int64(d.nanos)))
}

// SubsecMilliseconds returns the milliseconds past the whole seconds of d,
// in the range (-1000, 1000), sharing the sign of d.
func (d Duration) SubsecMilliseconds() int { return int(d.nanos / 1e6) }

// SubsecMicroseconds returns the microseconds past the whole seconds of d,
// in the range (-1e6, 1e6), sharing the sign of d.
func (d Duration) SubsecMicroseconds() int { return int(d.nanos / 1e3) }

// SubsecNanoseconds returns the nanoseconds past the whole seconds of d, in
// the range (-1e9, 1e9), sharing the sign of d.
func (d Duration) SubsecNanoseconds() int { return int(d.nanos) }

// AsSecondsFloat64 returns d as a floating-point number of seconds.
func (d Duration) AsSecondsFloat64() float64 {
	return float64(d.secs) + float64(d.nanos)/1e9
}

// AsSecondsFloat32 returns d as a float32 number of seconds.
func (d Duration) AsSecondsFloat32() float32 {
	return float32(d.secs) + float32(d.nanos)/1e9
}

// CheckedAdd returns d + other, reporting false on overflow.
func (d Duration) CheckedAdd(other Duration) (Duration, bool) {
	secs, ok := addInt64(d.secs, other.secs)
	if !ok {
		return Duration{}, false
	}
	nanos := d.nanos + other.nanos
	if nanos >= 1e9 || (secs < 0 && nanos > 0) {
		nanos -= 1e9
		if secs, ok = addInt64(secs, 1); !ok {
			return Duration{}, false
		}
	} else if nanos <= -1e9 || (secs > 0 && nanos < 0) {
		nanos += 1e9
		if secs, ok = addInt64(secs, -1); !ok {
			return Duration{}, false
		}
	}
	return durationOf(secs, nanos), true
}

// CheckedSub returns d - other, reporting false on overflow.
func (d Duration) CheckedSub(other Duration) (Duration, bool) {
	secs, ok := subInt64(d.secs, other.secs)
	if !ok {
		return Duration{}, false
	}
	nanos := d.nanos - other.nanos
	if nanos >= 1e9 || (secs < 0 && nanos > 0) {
		nanos -= 1e9
		if secs, ok = addInt64(secs, 1); !ok {
			return Duration{}, false
		}
	} else if nanos <= -1e9 || (secs > 0 && nanos < 0) {
		nanos += 1e9
		if secs, ok = addInt64(secs, -1); !ok {
			return Duration{}, false
		}
	}
	return durationOf(secs, nanos), true
}

// CheckedMul returns d * n, reporting false on overflow.
func (d Duration) CheckedMul(n int) (Duration, bool) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		// The fast path below would overflow its intermediate nanosecond
		// product, so fall back to exact wide arithmetic.
		total := d.WholeNanosecondsBig()
		total.Mul(total, big.NewInt(int64(n)))
		return NanosecondsBig(total)
	}
	totalNanos := int64(d.nanos) * int64(n)
	extraSecs := totalNanos / 1e9
	nanos := int32(totalNanos % 1e9)
	secs, ok := mulInt64(d.secs, int64(n))
	if !ok {
		return Duration{}, false
	}
	secs, ok = addInt64(secs, extraSecs)
	if !ok {
		return Duration{}, false
	}
	return durationOf(secs, nanos), true
}

// CheckedDiv returns d / n, reporting false if n is zero.
func (d Duration) CheckedDiv(n int) (Duration, bool) {
	if n == 0 || (n == -1 && d.secs == math.MinInt64) {
		return Duration{}, false
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		total := d.WholeNanosecondsBig()
		total.Quo(total, big.NewInt(int64(n)))
		return NanosecondsBig(total)
	}
	secs := d.secs / int64(n)
	carry := d.secs - secs*int64(n)
	extraNanos := carry * 1e9 / int64(n)
	nanos := int32(int64(d.nanos)/int64(n) + extraNanos)
	return durationOf(secs, nanos), true
}

// SaturatingAdd returns d + other, clamping to [MinDuration] or
// [MaxDuration] on overflow.
func (d Duration) SaturatingAdd(other Duration) Duration {
	if sum, ok := d.CheckedAdd(other); ok {
		return sum
	}
	if d.IsNegative() {
		return MinDuration
	}
	return MaxDuration
}

// SaturatingSub returns d - other, clamping to [MinDuration] or
// [MaxDuration] on overflow.
func (d Duration) SaturatingSub(other Duration) Duration {
	if diff, ok := d.CheckedSub(other); ok {
		return diff
	}
	if d.IsNegative() {
		return MinDuration
	}
	return MaxDuration
}

// SaturatingMul returns d * n, clamping to [MinDuration] or [MaxDuration]
// on overflow.
func (d Duration) SaturatingMul(n int) Duration {
	if prod, ok := d.CheckedMul(n); ok {
		return prod
	}
	if d.IsNegative() != (n < 0) {
		return MinDuration
	}
	return MaxDuration
}

// Add returns d + other. It panics on overflow; use [Duration.CheckedAdd]
// or [Duration.SaturatingAdd] where that is not acceptable.
func (d Duration) Add(other Duration) Duration {
	sum, ok := d.CheckedAdd(other)
	if !ok {
		panic("datetime: duration addition out of range")
	}
	return sum
}

// Sub returns d - other. It panics on overflow.
func (d Duration) Sub(other Duration) Duration {
	diff, ok := d.CheckedSub(other)
	if !ok {
		panic("datetime: duration subtraction out of range")
	}
	return diff
}

// Mul returns d * n. It panics on overflow.
func (d Duration) Mul(n int) Duration {
	prod, ok := d.CheckedMul(n)
	if !ok {
		panic("datetime: duration multiplication out of range")
	}
	return prod
}

// Div returns d / n. It panics if n is zero or the result overflows.
func (d Duration) Div(n int) Duration {
	quot, ok := d.CheckedDiv(n)
	if !ok {
		panic("datetime: duration division out of range")
	}
	return quot
}

// String returns the duration formatted like [time.Duration.String], with a
// leading day count for spans that exceed its range.
func (d Duration) String() string {
	if std, ok := d.Std(); ok {
		return std.String()
	}
	days := d.secs / 86400
	rem := time.Duration(d.secs%86400)*time.Second + time.Duration(d.nanos)
	if days < 0 {
		return fmt.Sprintf("-%dd%s", -days, -rem)
	}
	return fmt.Sprintf("%dd%s", days, rem)
}

// addInt64 returns a + b, reporting false on overflow.
func addInt64(a, b int64) (int64, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// subInt64 returns a - b, reporting false on overflow.
func subInt64(a, b int64) (int64, bool) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, false
	}
	return diff, true
}

// mulInt64 returns a * b, reporting false on overflow.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a == math.MinInt64 && b == -1 || b == math.MinInt64 && a == -1 {
		return 0, false
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}
