// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"time"
)

// A Time represents a time of day with nanosecond precision, with no date or
// offset attached. The zero value is midnight.
type Time struct {
	hour       int8
	minute     int8
	second     int8
	nanosecond int32
}

// Midnight is the first instant of a day, 00:00:00.
var Midnight = Time{}

// timeOf constructs a Time from pre-validated components.
func timeOf(hour, minute, second, nanosecond int) Time {
	return Time{
		hour:       int8(hour),
		minute:     int8(minute),
		second:     int8(second),
		nanosecond: int32(nanosecond),
	}
}

// TimeHMS returns the Time with the given hour, minute and second, validating
// each component.
func TimeHMS(hour, minute, second int) (Time, error) {
	return TimeHMSNano(hour, minute, second, 0)
}

// TimeHMSMilli returns the Time with the given hour, minute, second and
// millisecond, validating each component.
func TimeHMSMilli(hour, minute, second, milli int) (Time, error) {
	if milli < 0 || milli > 999 {
		return Time{}, rangeErr("millisecond", int64(milli), 0, 999)
	}
	return TimeHMSNano(hour, minute, second, milli*1e6)
}

// TimeHMSMicro returns the Time with the given hour, minute, second and
// microsecond, validating each component.
func TimeHMSMicro(hour, minute, second, micro int) (Time, error) {
	if micro < 0 || micro > 999999 {
		return Time{}, rangeErr("microsecond", int64(micro), 0, 999999)
	}
	return TimeHMSNano(hour, minute, second, micro*1e3)
}

// TimeHMSNano returns the Time with the given hour, minute, second and
// nanosecond, validating each component.
func TimeHMSNano(hour, minute, second, nano int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, rangeErr("hour", int64(hour), 0, 23)
	}
	if minute < 0 || minute > 59 {
		return Time{}, rangeErr("minute", int64(minute), 0, 59)
	}
	if second < 0 || second > 59 {
		return Time{}, rangeErr("second", int64(second), 0, 59)
	}
	if nano < 0 || nano > 999999999 {
		return Time{}, rangeErr("nanosecond", int64(nano), 0, 999999999)
	}
	return timeOf(hour, minute, second, nano), nil
}

// Hour returns the hour of t, in the range [0, 23].
func (t Time) Hour() int { return int(t.hour) }

// Minute returns the minute of t, in the range [0, 59].
func (t Time) Minute() int { return int(t.minute) }

// Second returns the second of t, in the range [0, 59].
func (t Time) Second() int { return int(t.second) }

// Millisecond returns the millisecond of t, in the range [0, 999].
func (t Time) Millisecond() int { return int(t.nanosecond) / 1e6 }

// Microsecond returns the microsecond of t, in the range [0, 999999].
func (t Time) Microsecond() int { return int(t.nanosecond) / 1e3 }

// Nanosecond returns the nanosecond of t, in the range [0, 999999999].
func (t Time) Nanosecond() int { return int(t.nanosecond) }

// HMS returns the hour, minute and second of t.
func (t Time) HMS() (hour, minute, second int) {
	return int(t.hour), int(t.minute), int(t.second)
}

// HMSMilli returns the hour, minute, second and millisecond of t.
func (t Time) HMSMilli() (hour, minute, second, milli int) {
	return int(t.hour), int(t.minute), int(t.second), t.Millisecond()
}

// HMSMicro returns the hour, minute, second and microsecond of t.
func (t Time) HMSMicro() (hour, minute, second, micro int) {
	return int(t.hour), int(t.minute), int(t.second), t.Microsecond()
}

// HMSNano returns the hour, minute, second and nanosecond of t.
func (t Time) HMSNano() (hour, minute, second, nano int) {
	return int(t.hour), int(t.minute), int(t.second), int(t.nanosecond)
}

// nanosOfDay returns the number of nanoseconds since midnight.
func (t Time) nanosOfDay() int64 {
	secs := int64(t.hour)*3600 + int64(t.minute)*60 + int64(t.second)
	return secs*1e9 + int64(t.nanosecond)
}

// Sub returns the duration t-u. As both times are within the same day, the
// result is always in (-24h, 24h).
func (t Time) Sub(u Time) Duration {
	return NewDuration(0, t.nanosOfDay()-u.nanosOfDay())
}

// dateAdjustment reports whether wall-clock arithmetic wrapped around
// midnight, and in which direction.
type dateAdjustment int8

const (
	adjNone dateAdjustment = iota
	adjPrevious
	adjNext
)

// adjustingAdd returns t+d on the wall clock, wrapping around at midnight.
// The returned adjustment says whether the matching date must move.
func (t Time) adjustingAdd(d Duration) (Time, dateAdjustment) {
	nsec := int(t.nanosecond) + int(d.nanos)
	sec := int(t.second) + int(d.secs%60)
	min := int(t.minute) + int((d.secs/60)%60)
	hour := int(t.hour) + int((d.secs/3600)%24)

	sec, nsec = norm(sec, nsec, 1e9)
	min, sec = norm(min, sec, 60)
	hour, min = norm(hour, min, 60)

	adj := adjNone
	switch {
	case hour >= 24:
		hour -= 24
		adj = adjNext
	case hour < 0:
		hour += 24
		adj = adjPrevious
	}
	return timeOf(hour, min, sec, nsec), adj
}

// adjustingSub returns t-d on the wall clock, wrapping around at midnight.
func (t Time) adjustingSub(d Duration) (Time, dateAdjustment) {
	nsec := int(t.nanosecond) - int(d.nanos)
	sec := int(t.second) - int(d.secs%60)
	min := int(t.minute) - int((d.secs/60)%60)
	hour := int(t.hour) - int((d.secs/3600)%24)

	sec, nsec = norm(sec, nsec, 1e9)
	min, sec = norm(min, sec, 60)
	hour, min = norm(hour, min, 60)

	adj := adjNone
	switch {
	case hour >= 24:
		hour -= 24
		adj = adjNext
	case hour < 0:
		hour += 24
		adj = adjPrevious
	}
	return timeOf(hour, min, sec, nsec), adj
}

// adjustingAddStd is adjustingAdd for a non-negative time.Duration. As the
// shift can only be forward, only a wrap to the next day is possible.
func (t Time) adjustingAddStd(sd time.Duration) (Time, bool) {
	nt, adj := t.adjustingAdd(FromStd(sd))
	return nt, adj == adjNext
}

// adjustingSubStd is adjustingSub for a non-negative time.Duration.
func (t Time) adjustingSubStd(sd time.Duration) (Time, bool) {
	nt, adj := t.adjustingSub(FromStd(sd))
	return nt, adj == adjPrevious
}

// ReplaceHour returns a copy of t with the hour replaced.
func (t Time) ReplaceHour(hour int) (Time, error) {
	if hour < 0 || hour > 23 {
		return Time{}, rangeErr("hour", int64(hour), 0, 23)
	}
	t.hour = int8(hour)
	return t, nil
}

// ReplaceMinute returns a copy of t with the minute replaced.
func (t Time) ReplaceMinute(minute int) (Time, error) {
	if minute < 0 || minute > 59 {
		return Time{}, rangeErr("minute", int64(minute), 0, 59)
	}
	t.minute = int8(minute)
	return t, nil
}

// ReplaceSecond returns a copy of t with the second replaced.
func (t Time) ReplaceSecond(second int) (Time, error) {
	if second < 0 || second > 59 {
		return Time{}, rangeErr("second", int64(second), 0, 59)
	}
	t.second = int8(second)
	return t, nil
}

// ReplaceMillisecond returns a copy of t with the full sub-second part
// replaced by the given millisecond.
func (t Time) ReplaceMillisecond(milli int) (Time, error) {
	if milli < 0 || milli > 999 {
		return Time{}, rangeErr("millisecond", int64(milli), 0, 999)
	}
	t.nanosecond = int32(milli) * 1e6
	return t, nil
}

// ReplaceMicrosecond returns a copy of t with the full sub-second part
// replaced by the given microsecond.
func (t Time) ReplaceMicrosecond(micro int) (Time, error) {
	if micro < 0 || micro > 999999 {
		return Time{}, rangeErr("microsecond", int64(micro), 0, 999999)
	}
	t.nanosecond = int32(micro) * 1e3
	return t, nil
}

// ReplaceNanosecond returns a copy of t with the sub-second part replaced.
func (t Time) ReplaceNanosecond(nano int) (Time, error) {
	if nano < 0 || nano > 999999999 {
		return Time{}, rangeErr("nanosecond", int64(nano), 0, 999999999)
	}
	t.nanosecond = int32(nano)
	return t, nil
}

// Compare compares t and u. If t is before u, it returns -1; if t is after u,
// it returns +1; if they're the same, it returns 0.
func (t Time) Compare(u Time) int {
	a, b := t.nanosOfDay(), u.nanosOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return +1
	}
	return 0
}

// GoString implements fmt.GoStringer and formats t to be printed in Go source
// code.
func (t Time) GoString() string {
	return fmt.Sprintf("datetime.TimeHMSNano(%d, %d, %d, %d)", t.hour, t.minute, t.second, t.nanosecond)
}

// String returns the time formatted as ISO 8601, with the sub-second part
// trimmed to the shortest representation that preserves the value.
func (t Time) String() string {
	s, _ := t.Format(RFC3339Time)
	return s
}

// MarshalText implements the encoding.TextMarshaler interface. The time is
// formatted in ISO 8601 format.
func (t Time) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The time
// must be in ISO 8601 format.
func (t *Time) UnmarshalText(b []byte) error {
	v, err := ParseTime(RFC3339Time, string(b))
	if err == nil {
		*t = v
	}
	return err
}
