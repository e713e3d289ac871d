// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"time"
)

// A DateTime combines a [Date] and a [Time], with no UTC offset attached. It
// says what a wall clock and a calendar show, not which instant that is; use
// [OffsetDateTime] for instants.
//
// The zero value is midnight of the zero Date.
type DateTime struct {
	date Date
	time Time
}

// MinDateTime and MaxDateTime are the bounds of the range that checked
// DateTime arithmetic stays within.
var (
	MinDateTime = MinDate.Midnight()
	MaxDateTime = MaxDate.WithTime(timeOf(23, 59, 59, 999999999))
)

// NewDateTime combines a date and a time of day.
func NewDateTime(d Date, t Time) DateTime {
	return DateTime{date: d, time: t}
}

// Date returns the calendar date of dt.
func (dt DateTime) Date() Date { return dt.date }

// Time returns the time of day of dt.
func (dt DateTime) Time() Time { return dt.time }

// Year returns the year in which dt occurs.
func (dt DateTime) Year() int { return dt.date.Year() }

// Month returns the month of the year specified by dt.
func (dt DateTime) Month() time.Month { return dt.date.Month() }

// Day returns the day of the month of dt.
func (dt DateTime) Day() int { return dt.date.Day() }

// Weekday returns the day of the week specified by dt.
func (dt DateTime) Weekday() time.Weekday { return dt.date.Weekday() }

// YearDay returns the day of the year specified by dt.
func (dt DateTime) YearDay() int { return dt.date.YearDay() }

// ISOWeek returns the ISO 8601 year and week number in which dt occurs.
func (dt DateTime) ISOWeek() (year, week int) { return dt.date.ISOWeek() }

// Hour returns the hour of dt, in the range [0, 23].
func (dt DateTime) Hour() int { return dt.time.Hour() }

// Minute returns the minute of dt, in the range [0, 59].
func (dt DateTime) Minute() int { return dt.time.Minute() }

// Second returns the second of dt, in the range [0, 59].
func (dt DateTime) Second() int { return dt.time.Second() }

// Millisecond returns the millisecond of dt, in the range [0, 999].
func (dt DateTime) Millisecond() int { return dt.time.Millisecond() }

// Microsecond returns the microsecond of dt, in the range [0, 999999].
func (dt DateTime) Microsecond() int { return dt.time.Microsecond() }

// Nanosecond returns the nanosecond of dt, in the range [0, 999999999].
func (dt DateTime) Nanosecond() int { return dt.time.Nanosecond() }

// In returns the moment in time described by dt in the given location.
func (dt DateTime) In(loc *time.Location) time.Time {
	h, m, s, ns := dt.time.HMSNano()
	return dt.date.Time(h, m, s, ns, loc)
}

// CheckedAdd returns dt+d, reporting false if the result would leave
// [MinDateTime, MaxDateTime].
func (dt DateTime) CheckedAdd(d Duration) (DateTime, bool) {
	t, adj := dt.time.adjustingAdd(d)
	days := d.WholeDays()
	switch adj {
	case adjPrevious:
		days--
	case adjNext:
		days++
	}
	nd, ok := addInt64(int64(dt.date), days)
	if !ok || nd < int64(MinDate) || nd > int64(MaxDate) {
		return DateTime{}, false
	}
	return DateTime{date: Date(nd), time: t}, true
}

// CheckedSub returns dt-d, reporting false if the result would leave
// [MinDateTime, MaxDateTime].
func (dt DateTime) CheckedSub(d Duration) (DateTime, bool) {
	t, adj := dt.time.adjustingSub(d)
	days := d.WholeDays()
	switch adj {
	case adjPrevious:
		days++
	case adjNext:
		days--
	}
	nd, ok := subInt64(int64(dt.date), days)
	if !ok || nd < int64(MinDate) || nd > int64(MaxDate) {
		return DateTime{}, false
	}
	return DateTime{date: Date(nd), time: t}, true
}

// SaturatingAdd is [DateTime.CheckedAdd], clamping to [MinDateTime] or
// [MaxDateTime] instead of failing.
func (dt DateTime) SaturatingAdd(d Duration) DateTime {
	if ndt, ok := dt.CheckedAdd(d); ok {
		return ndt
	}
	if d.IsNegative() {
		return MinDateTime
	}
	return MaxDateTime
}

// SaturatingSub is [DateTime.CheckedSub], clamping to [MinDateTime] or
// [MaxDateTime] instead of failing.
func (dt DateTime) SaturatingSub(d Duration) DateTime {
	if ndt, ok := dt.CheckedSub(d); ok {
		return ndt
	}
	if d.IsNegative() {
		return MaxDateTime
	}
	return MinDateTime
}

// Add returns dt+d. It panics if the result leaves
// [MinDateTime, MaxDateTime].
func (dt DateTime) Add(d Duration) DateTime {
	ndt, ok := dt.CheckedAdd(d)
	if !ok {
		panic("datetime: datetime addition out of range")
	}
	return ndt
}

// Sub returns dt-d. It panics if the result leaves
// [MinDateTime, MaxDateTime].
func (dt DateTime) Sub(d Duration) DateTime {
	ndt, ok := dt.CheckedSub(d)
	if !ok {
		panic("datetime: datetime subtraction out of range")
	}
	return ndt
}

// AddStd is [DateTime.Add] for a time.Duration.
func (dt DateTime) AddStd(sd time.Duration) DateTime {
	if sd < 0 {
		return dt.Add(FromStd(sd))
	}
	t, next := dt.time.adjustingAddStd(sd)
	days := int64(sd / (24 * time.Hour))
	if next {
		days++
	}
	nd, ok := addInt64(int64(dt.date), days)
	if !ok || nd < int64(MinDate) || nd > int64(MaxDate) {
		panic("datetime: datetime addition out of range")
	}
	return DateTime{date: Date(nd), time: t}
}

// SubStd is [DateTime.Sub] for a time.Duration.
func (dt DateTime) SubStd(sd time.Duration) DateTime {
	if sd < 0 {
		return dt.Sub(FromStd(sd))
	}
	t, prev := dt.time.adjustingSubStd(sd)
	days := int64(sd / (24 * time.Hour))
	if prev {
		days++
	}
	nd, ok := subInt64(int64(dt.date), days)
	if !ok || nd < int64(MinDate) || nd > int64(MaxDate) {
		panic("datetime: datetime subtraction out of range")
	}
	return DateTime{date: Date(nd), time: t}
}

// Since returns the duration dt-u.
func (dt DateTime) Since(u DateTime) Duration {
	return NewDuration(int64(dt.date-u.date)*86400, dt.time.nanosOfDay()-u.time.nanosOfDay())
}

// ReplaceDate returns a copy of dt with the calendar date replaced, keeping
// the time of day.
func (dt DateTime) ReplaceDate(d Date) DateTime {
	dt.date = d
	return dt
}

// ReplaceTime returns a copy of dt with the time of day replaced, keeping the
// calendar date.
func (dt DateTime) ReplaceTime(t Time) DateTime {
	dt.time = t
	return dt
}

// ReplaceYear returns a copy of dt with the year replaced. It fails if the
// month and day do not exist in the new year, i.e. for February 29.
func (dt DateTime) ReplaceYear(year int) (DateTime, error) {
	_, month, day := dt.date.Date()
	nd, err := CalendarDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	dt.date = nd
	return dt, nil
}

// ReplaceMonth returns a copy of dt with the month replaced. It fails if the
// day does not exist in the new month.
func (dt DateTime) ReplaceMonth(month time.Month) (DateTime, error) {
	year, _, day := dt.date.Date()
	nd, err := CalendarDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	dt.date = nd
	return dt, nil
}

// ReplaceDay returns a copy of dt with the day of the month replaced.
func (dt DateTime) ReplaceDay(day int) (DateTime, error) {
	year, month, _ := dt.date.Date()
	nd, err := CalendarDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	dt.date = nd
	return dt, nil
}

// ReplaceHour returns a copy of dt with the hour replaced.
func (dt DateTime) ReplaceHour(hour int) (DateTime, error) {
	nt, err := dt.time.ReplaceHour(hour)
	if err != nil {
		return DateTime{}, err
	}
	dt.time = nt
	return dt, nil
}

// ReplaceMinute returns a copy of dt with the minute replaced.
func (dt DateTime) ReplaceMinute(minute int) (DateTime, error) {
	nt, err := dt.time.ReplaceMinute(minute)
	if err != nil {
		return DateTime{}, err
	}
	dt.time = nt
	return dt, nil
}

// ReplaceSecond returns a copy of dt with the second replaced.
func (dt DateTime) ReplaceSecond(second int) (DateTime, error) {
	nt, err := dt.time.ReplaceSecond(second)
	if err != nil {
		return DateTime{}, err
	}
	dt.time = nt
	return dt, nil
}

// ReplaceNanosecond returns a copy of dt with the sub-second part replaced.
func (dt DateTime) ReplaceNanosecond(nano int) (DateTime, error) {
	nt, err := dt.time.ReplaceNanosecond(nano)
	if err != nil {
		return DateTime{}, err
	}
	dt.time = nt
	return dt, nil
}

// addSeconds shifts dt by the given number of seconds, which must be less
// than a day in magnitude. It does not check the date range; offset
// conversions may briefly leave it at the very ends.
func (dt DateTime) addSeconds(secs int) DateTime {
	t, adj := dt.time.adjustingAdd(durationOf(int64(secs), 0))
	switch adj {
	case adjPrevious:
		dt.date--
	case adjNext:
		dt.date++
	}
	dt.time = t
	return dt
}

// offsetToUTC reinterprets dt as local to the given offset and returns the
// equivalent UTC date-time.
func (dt DateTime) offsetToUTC(o Offset) DateTime {
	return dt.addSeconds(-o.WholeSeconds())
}

// utcToOffset reinterprets dt as UTC and returns the equivalent local
// date-time at the given offset.
func (dt DateTime) utcToOffset(o Offset) DateTime {
	return dt.addSeconds(o.WholeSeconds())
}

// AssumeOffset declares dt to be local to the given offset, pinning it to an
// instant.
func (dt DateTime) AssumeOffset(o Offset) OffsetDateTime {
	return OffsetDateTime{utc: dt.offsetToUTC(o), offset: o}
}

// AssumeUTC declares dt to be in UTC, pinning it to an instant.
func (dt DateTime) AssumeUTC() OffsetDateTime {
	return OffsetDateTime{utc: dt}
}

// Compare compares dt and u. If dt is before u, it returns -1; if dt is after
// u, it returns +1; if they're the same, it returns 0.
func (dt DateTime) Compare(u DateTime) int {
	switch {
	case dt.date < u.date:
		return -1
	case dt.date > u.date:
		return +1
	}
	return dt.time.Compare(u.time)
}

// GoString implements fmt.GoStringer and formats dt to be printed in Go
// source code.
func (dt DateTime) GoString() string {
	return fmt.Sprintf("%#v.WithTime(%#v)", dt.date, dt.time)
}

// String returns the date-time formatted as ISO 8601, with a space separating
// the date and time parts.
func (dt DateTime) String() string {
	return dt.date.String() + " " + dt.time.String()
}

// MarshalText implements the encoding.TextMarshaler interface. The date-time
// is formatted in ISO 8601 format.
func (dt DateTime) MarshalText() ([]byte, error) {
	s, err := dt.Format(RFC3339DateTime)
	return []byte(s), err
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The
// date-time must be in ISO 8601 format.
func (dt *DateTime) UnmarshalText(b []byte) error {
	v, err := ParseDateTime(RFC3339DateTime, string(b))
	if err == nil {
		*dt = v
	}
	return err
}
