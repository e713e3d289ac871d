// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"time"
)

// Days from 0001-01-01 to 1970-01-01.
const unixEpochDate Date = 719162

// Unix timestamps of MinDateTime and MaxDateTime at UTC.
const (
	minUnixSeconds = (int64(MinDate)-int64(unixEpochDate))*86400 + 0
	maxUnixSeconds = (int64(MaxDate)-int64(unixEpochDate))*86400 + 86399
)

// An OffsetDateTime is a [DateTime] pinned to an instant by an [Offset]. Two
// OffsetDateTimes with different offsets can describe the same instant;
// [OffsetDateTime.Equal] and [OffsetDateTime.Compare] work on instants, while
// == distinguishes offsets.
//
// The instant is stored normalized to UTC, so arithmetic never touches the
// offset; the date and time accessors convert to the local offset on the fly.
type OffsetDateTime struct {
	utc    DateTime
	offset Offset
}

// NowUTC returns the current instant with a UTC offset. It is the only
// constructor that reads the wall clock.
func NowUTC() OffsetDateTime {
	return FromStdTime(time.Now().UTC())
}

// FromStdTime converts a time.Time, keeping the instant and the numeric
// offset of its location. The location name is not preserved.
func FromStdTime(t time.Time) OffsetDateTime {
	_, offsetSecs := t.Zone()
	dt := NewDateTime(Of(t.Date()), timeOf(t.Hour(), t.Minute(), t.Second(), t.Nanosecond()))
	return dt.AssumeOffset(offsetOfSeconds(offsetSecs))
}

// StdTime converts odt to a time.Time in a fixed-offset location. The
// location has no name and no daylight saving rules.
func (odt OffsetDateTime) StdTime() time.Time {
	loc := time.UTC
	if !odt.offset.IsUTC() {
		loc = time.FixedZone("", odt.offset.WholeSeconds())
	}
	return odt.DateTime().In(loc)
}

// FromUnix returns the instant the given number of seconds after the Unix
// epoch, with a UTC offset. It fails if the instant lies outside
// [MinDateTime, MaxDateTime].
func FromUnix(sec int64) (OffsetDateTime, error) {
	if sec < minUnixSeconds || sec > maxUnixSeconds {
		return OffsetDateTime{}, rangeErr("unix seconds", sec, minUnixSeconds, maxUnixSeconds)
	}
	days, rem := norm(0, int(sec%86400), 86400)
	day := int64(sec/86400) + int64(days)
	t, _ := timeOf(0, 0, 0, 0).adjustingAdd(durationOf(int64(rem), 0))
	return OffsetDateTime{utc: NewDateTime(unixEpochDate+Date(day), t)}, nil
}

// FromUnixNano returns the instant the given number of nanoseconds after the
// Unix epoch, with a UTC offset. The whole int64 range is valid.
func FromUnixNano(nsec int64) OffsetDateTime {
	// Not norm: the quotient exceeds int on 32-bit platforms.
	sec, rem := nsec/1e9, nsec%1e9
	if rem < 0 {
		sec--
		rem += 1e9
	}
	odt, _ := FromUnix(sec)
	odt.utc.time.nanosecond = int32(rem)
	return odt
}

// Unix returns the number of seconds since the Unix epoch at the instant odt.
// The sub-second part is dropped.
func (odt OffsetDateTime) Unix() int64 {
	secs := odt.utc.time.nanosOfDay() / 1e9
	return int64(odt.utc.date-unixEpochDate)*86400 + secs
}

// UnixNano returns the number of nanoseconds since the Unix epoch at the
// instant odt. The result is undefined for instants that cannot be
// represented in an int64, before the year 1678 or after 2262.
func (odt OffsetDateTime) UnixNano() int64 {
	return odt.Unix()*1e9 + int64(odt.utc.time.nanosecond)
}

// Offset returns the offset that the date and time accessors report in.
func (odt OffsetDateTime) Offset() Offset { return odt.offset }

// DateTime returns the date and time of odt local to its offset.
//
// Within one day of MinDateTime or MaxDateTime the local view can lie outside
// the valid date range even though the instant itself is valid.
func (odt OffsetDateTime) DateTime() DateTime {
	return odt.utc.utcToOffset(odt.offset)
}

// UTCDateTime returns the date and time of odt at UTC, regardless of its
// offset.
func (odt OffsetDateTime) UTCDateTime() DateTime { return odt.utc }

// Date returns the calendar date of odt, local to its offset.
func (odt OffsetDateTime) Date() Date { return odt.DateTime().Date() }

// Time returns the time of day of odt, local to its offset.
func (odt OffsetDateTime) Time() Time { return odt.DateTime().Time() }

// Year returns the year in which odt occurs, local to its offset.
func (odt OffsetDateTime) Year() int { return odt.DateTime().Year() }

// Month returns the month of odt, local to its offset.
func (odt OffsetDateTime) Month() time.Month { return odt.DateTime().Month() }

// Day returns the day of the month of odt, local to its offset.
func (odt OffsetDateTime) Day() int { return odt.DateTime().Day() }

// Weekday returns the day of the week of odt, local to its offset.
func (odt OffsetDateTime) Weekday() time.Weekday { return odt.DateTime().Weekday() }

// Hour returns the hour of odt, local to its offset.
func (odt OffsetDateTime) Hour() int { return odt.DateTime().Hour() }

// Minute returns the minute of odt, local to its offset.
func (odt OffsetDateTime) Minute() int { return odt.DateTime().Minute() }

// Second returns the second of odt, local to its offset.
func (odt OffsetDateTime) Second() int { return odt.DateTime().Second() }

// Nanosecond returns the nanosecond of odt.
func (odt OffsetDateTime) Nanosecond() int { return odt.utc.Nanosecond() }

// ToOffset returns the same instant viewed at a different offset.
func (odt OffsetDateTime) ToOffset(o Offset) OffsetDateTime {
	odt.offset = o
	return odt
}

// ReplaceOffset returns the same local date and time declared to be at a
// different offset. Unlike [OffsetDateTime.ToOffset], this changes the
// instant.
func (odt OffsetDateTime) ReplaceOffset(o Offset) OffsetDateTime {
	return odt.DateTime().AssumeOffset(o)
}

// ReplaceDateTime returns a copy of odt with the local date and time
// replaced, keeping the offset.
func (odt OffsetDateTime) ReplaceDateTime(dt DateTime) OffsetDateTime {
	return dt.AssumeOffset(odt.offset)
}

// ReplaceDate returns a copy of odt with the local calendar date replaced.
func (odt OffsetDateTime) ReplaceDate(d Date) OffsetDateTime {
	return odt.DateTime().ReplaceDate(d).AssumeOffset(odt.offset)
}

// ReplaceTime returns a copy of odt with the local time of day replaced.
func (odt OffsetDateTime) ReplaceTime(t Time) OffsetDateTime {
	return odt.DateTime().ReplaceTime(t).AssumeOffset(odt.offset)
}

// ReplaceYear returns a copy of odt with the local year replaced.
func (odt OffsetDateTime) ReplaceYear(year int) (OffsetDateTime, error) {
	dt, err := odt.DateTime().ReplaceYear(year)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return dt.AssumeOffset(odt.offset), nil
}

// ReplaceMonth returns a copy of odt with the local month replaced.
func (odt OffsetDateTime) ReplaceMonth(month time.Month) (OffsetDateTime, error) {
	dt, err := odt.DateTime().ReplaceMonth(month)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return dt.AssumeOffset(odt.offset), nil
}

// ReplaceDay returns a copy of odt with the local day of the month replaced.
func (odt OffsetDateTime) ReplaceDay(day int) (OffsetDateTime, error) {
	dt, err := odt.DateTime().ReplaceDay(day)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return dt.AssumeOffset(odt.offset), nil
}

// ReplaceHour returns a copy of odt with the local hour replaced.
func (odt OffsetDateTime) ReplaceHour(hour int) (OffsetDateTime, error) {
	dt, err := odt.DateTime().ReplaceHour(hour)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return dt.AssumeOffset(odt.offset), nil
}

// ReplaceMinute returns a copy of odt with the local minute replaced.
func (odt OffsetDateTime) ReplaceMinute(minute int) (OffsetDateTime, error) {
	dt, err := odt.DateTime().ReplaceMinute(minute)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return dt.AssumeOffset(odt.offset), nil
}

// ReplaceSecond returns a copy of odt with the local second replaced.
func (odt OffsetDateTime) ReplaceSecond(second int) (OffsetDateTime, error) {
	dt, err := odt.DateTime().ReplaceSecond(second)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return dt.AssumeOffset(odt.offset), nil
}

// ReplaceNanosecond returns a copy of odt with the sub-second part replaced.
func (odt OffsetDateTime) ReplaceNanosecond(nano int) (OffsetDateTime, error) {
	dt, err := odt.DateTime().ReplaceNanosecond(nano)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return dt.AssumeOffset(odt.offset), nil
}

// CheckedAdd returns odt+d, reporting false if the result would leave
// [MinDateTime, MaxDateTime].
func (odt OffsetDateTime) CheckedAdd(d Duration) (OffsetDateTime, bool) {
	utc, ok := odt.utc.CheckedAdd(d)
	if !ok {
		return OffsetDateTime{}, false
	}
	odt.utc = utc
	return odt, true
}

// CheckedSub returns odt-d, reporting false if the result would leave
// [MinDateTime, MaxDateTime].
func (odt OffsetDateTime) CheckedSub(d Duration) (OffsetDateTime, bool) {
	utc, ok := odt.utc.CheckedSub(d)
	if !ok {
		return OffsetDateTime{}, false
	}
	odt.utc = utc
	return odt, true
}

// SaturatingAdd is [OffsetDateTime.CheckedAdd], clamping to the bounds
// instead of failing. The offset is kept.
func (odt OffsetDateTime) SaturatingAdd(d Duration) OffsetDateTime {
	odt.utc = odt.utc.SaturatingAdd(d)
	return odt
}

// SaturatingSub is [OffsetDateTime.CheckedSub], clamping to the bounds
// instead of failing. The offset is kept.
func (odt OffsetDateTime) SaturatingSub(d Duration) OffsetDateTime {
	odt.utc = odt.utc.SaturatingSub(d)
	return odt
}

// Add returns odt+d. It panics if the result leaves
// [MinDateTime, MaxDateTime].
func (odt OffsetDateTime) Add(d Duration) OffsetDateTime {
	odt.utc = odt.utc.Add(d)
	return odt
}

// Sub returns odt-d. It panics if the result leaves
// [MinDateTime, MaxDateTime].
func (odt OffsetDateTime) Sub(d Duration) OffsetDateTime {
	odt.utc = odt.utc.Sub(d)
	return odt
}

// AddStd is [OffsetDateTime.Add] for a time.Duration.
func (odt OffsetDateTime) AddStd(sd time.Duration) OffsetDateTime {
	odt.utc = odt.utc.AddStd(sd)
	return odt
}

// SubStd is [OffsetDateTime.Sub] for a time.Duration.
func (odt OffsetDateTime) SubStd(sd time.Duration) OffsetDateTime {
	odt.utc = odt.utc.SubStd(sd)
	return odt
}

// Since returns the duration between the instants odt and u.
func (odt OffsetDateTime) Since(u OffsetDateTime) Duration {
	return odt.utc.Since(u.utc)
}

// Equal reports whether odt and u describe the same instant, regardless of
// their offsets.
func (odt OffsetDateTime) Equal(u OffsetDateTime) bool {
	return odt.utc == u.utc
}

// Compare compares the instants odt and u, regardless of their offsets. If
// odt is before u, it returns -1; if odt is after u, it returns +1; if they
// are the same instant, it returns 0.
func (odt OffsetDateTime) Compare(u OffsetDateTime) int {
	return odt.utc.Compare(u.utc)
}

// GoString implements fmt.GoStringer and formats odt to be printed in Go
// source code.
func (odt OffsetDateTime) GoString() string {
	return fmt.Sprintf("%#v.AssumeOffset(%#v)", odt.DateTime(), odt.offset)
}

// String returns the local date and time followed by the offset.
func (odt OffsetDateTime) String() string {
	return odt.DateTime().String() + " " + odt.offset.String()
}

// MarshalText implements the encoding.TextMarshaler interface. The instant is
// formatted in RFC 3339 format at its offset.
func (odt OffsetDateTime) MarshalText() ([]byte, error) {
	s, err := odt.Format(RFC3339)
	return []byte(s), err
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The
// instant must be in RFC 3339 format.
func (odt *OffsetDateTime) UnmarshalText(b []byte) error {
	v, err := ParseOffsetDateTime(RFC3339, string(b))
	if err == nil {
		*odt = v
	}
	return err
}
