// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
)

// An Offset is a fixed offset from UTC, in hours, minutes and seconds. All
// three components share a sign (or are zero) and the overall magnitude is
// below 24 hours. No timezone database is consulted; an Offset is purely a
// numeric shift.
//
// The zero value is UTC.
type Offset struct {
	hours   int8
	minutes int8
	seconds int8
}

// UTC is the zero offset.
var UTC = Offset{}

// offsetOf builds an Offset from already-validated, sign-consistent
// components.
func offsetOf(hours, minutes, seconds int) Offset {
	return Offset{hours: int8(hours), minutes: int8(minutes), seconds: int8(seconds)}
}

// OffsetHMS returns the Offset of the given hours, minutes and seconds east
// of UTC (negative values are west). Components may each range within
// ±23/±59/±59; if their signs disagree, the minutes and seconds are flipped
// to match the most significant nonzero component.
func OffsetHMS(hours, minutes, seconds int) (Offset, error) {
	if hours < -23 || hours > 23 {
		return Offset{}, rangeErr("hours", int64(hours), -23, 23)
	}
	if minutes < -59 || minutes > 59 {
		return Offset{}, rangeErr("minutes", int64(minutes), -59, 59)
	}
	if seconds < -59 || seconds > 59 {
		return Offset{}, rangeErr("seconds", int64(seconds), -59, 59)
	}
	if (hours > 0 && minutes < 0) || (hours < 0 && minutes > 0) {
		minutes = -minutes
	}
	if (hours > 0 && seconds < 0) || (hours < 0 && seconds > 0) ||
		(minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0) {
		seconds = -seconds
	}
	return offsetOf(hours, minutes, seconds), nil
}

// OffsetSeconds returns the Offset of the given number of seconds east of
// UTC. The magnitude must be below 24 hours.
func OffsetSeconds(seconds int) (Offset, error) {
	if seconds <= -86400 || seconds >= 86400 {
		return Offset{}, rangeErr("seconds", int64(seconds), -86399, 86399)
	}
	return offsetOfSeconds(seconds), nil
}

// offsetOfSeconds is [OffsetSeconds] for pre-validated input.
func offsetOfSeconds(seconds int) Offset {
	return offsetOf(seconds/3600, (seconds/60)%60, seconds%60)
}

// HMS returns the hour, minute and second components of o.
func (o Offset) HMS() (hours, minutes, seconds int) {
	return int(o.hours), int(o.minutes), int(o.seconds)
}

// WholeHours returns the whole hours in o.
func (o Offset) WholeHours() int { return int(o.hours) }

// WholeMinutes returns o in minutes, truncated toward zero.
func (o Offset) WholeMinutes() int { return int(o.hours)*60 + int(o.minutes) }

// WholeSeconds returns o in seconds.
func (o Offset) WholeSeconds() int {
	return int(o.hours)*3600 + int(o.minutes)*60 + int(o.seconds)
}

// MinutesPastHour returns the minute component of o, sharing its sign.
func (o Offset) MinutesPastHour() int { return int(o.minutes) }

// SecondsPastMinute returns the second component of o, sharing its sign.
func (o Offset) SecondsPastMinute() int { return int(o.seconds) }

// IsUTC reports whether o is the zero offset.
func (o Offset) IsUTC() bool { return o == Offset{} }

// IsPositive reports whether o is strictly east of UTC.
func (o Offset) IsPositive() bool { return o.hours > 0 || o.minutes > 0 || o.seconds > 0 }

// IsNegative reports whether o is strictly west of UTC.
func (o Offset) IsNegative() bool { return o.hours < 0 || o.minutes < 0 || o.seconds < 0 }

// Neg returns o mirrored to the other side of UTC.
func (o Offset) Neg() Offset {
	return Offset{hours: -o.hours, minutes: -o.minutes, seconds: -o.seconds}
}

// GoString implements fmt.GoStringer and formats o to be printed in Go
// source code.
func (o Offset) GoString() string {
	return fmt.Sprintf("datetime.OffsetHMS(%d, %d, %d)", o.hours, o.minutes, o.seconds)
}

// String returns o formatted as ±hh:mm:ss.
func (o Offset) String() string {
	sign := byte('+')
	if o.IsNegative() {
		sign = '-'
	}
	return fmt.Sprintf("%c%02d:%02d:%02d", sign, abs8(o.hours), abs8(o.minutes), abs8(o.seconds))
}

func abs8(v int8) int8 {
	if v < 0 {
		return -v
	}
	return v
}
