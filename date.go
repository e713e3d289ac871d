// Copyright 2009 The Go Authors.
// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datetime provides calendar and wall-clock types with explicit,
// overflow-checked arithmetic.
//
// The standard library time package models a single concept: an absolute
// instant in a timezone. That is the right tool for timestamps, but it is a
// poor fit for calendar math:
//
//   - There is no way to represent a plain date or a plain clock time; a
//     fixed dummy clock/zone has to be smuggled in and carefully ignored.
//   - time.Duration caps out at roughly ±292 years, which calendar spans
//     can legitimately exceed.
//   - Overflow in time.Time arithmetic silently wraps instead of being
//     reported.
//
// This package provides six immutable value types that compose:
//
//   - [Duration]: a signed span of seconds plus a nanosecond remainder.
//   - [Offset]: a fixed numeric offset from UTC.
//   - [Date]: a day on the proleptic Gregorian calendar.
//   - [Time]: a nanosecond-precision time of day.
//   - [DateTime]: a Date and a Time, with no offset attached.
//   - [OffsetDateTime]: a DateTime pinned to an instant by an Offset.
//
// Arithmetic comes in three families: plain methods (Add, Sub, ...) panic on
// overflow, Checked variants report failure with a bool, and Saturating
// variants clamp to the valid range. Checked constructors return a
// [*RangeError] describing the offending component.
//
// Where the concepts overlap, the package stays compatible with the time
// package: it reuses [time.Month] and [time.Weekday], converts to and from
// [time.Time] and [time.Duration], and understands the reference-time layout
// language for formatting and parsing.
package datetime

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// Computations on dates are essentially copied verbatim from the standard
// library. See this comment for explanations:
// https://cs.opensource.google/go/go/+/refs/tags/go1.20.6:src/time/time.go;l=353
// Some calculations are simplified by the fact that we don't care about
// timezones.

const (
	// The unsigned zero year for internal calculations.
	// Must be 1 mod 400, and times before it will not compute correctly, but
	// otherwise can be changed at will.
	absoluteZeroYear = -292277022399

	// The year of the zero Date.
	internalYear = 1

	// Offsets to convert between internal or absolute times.
	absoluteToInternal = (absoluteZeroYear - internalYear) * 365.2425
	internalToAbsolute = -absoluteToInternal

	// Days in a given period of years.
	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

const (
	// MinYear and MaxYear bound the years representable by a valid Date.
	MinYear = -9999
	MaxYear = 9999

	// The Julian day number of the zero Date, 0001-01-01.
	julianDayOfZeroDate = 1721426
)

// MinDate and MaxDate are the bounds of the valid Date range,
// -9999-01-01 and 9999-12-31. The checked constructors only produce values
// within them, and checked arithmetic fails rather than leave them.
const (
	MinDate Date = -3652425
	MaxDate Date = 3652058
)

// daysBefore[m] counts the number of days in a non-leap year before month m
// begins. There is an entry for m=12, conuting the number of days before
// January of next year (365).
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// daysInMonth counts the (maximum) numbers of days in a given month.
var daysInMonth = [...]int{
	time.January:   31,
	time.February:  29,
	time.March:     31,
	time.April:     30,
	time.May:       31,
	time.June:      30,
	time.July:      31,
	time.August:    31,
	time.September: 30,
	time.October:   31,
	time.November:  30,
	time.December:  31,
}

func daysIn(m time.Month, year int) int {
	if m == time.February && isLeap(year) {
		return 29
	}
	return int(daysBefore[m] - daysBefore[m-1])
}

// daysInYear returns the number of days in the given year.
func daysInYear(year int) int {
	if isLeap(year) {
		return 366
	}
	return 365
}

// weeksInYear returns the number of ISO 8601 weeks in the given year, 52 or
// 53. A year has 53 weeks exactly if it starts on a Thursday, or on a
// Wednesday in a leap year.
func weeksInYear(year int) int {
	switch wd := Of(year, time.January, 1).Weekday(); {
	case wd == time.Thursday, wd == time.Wednesday && isLeap(year):
		return 53
	default:
		return 52
	}
}

// absDate computes the year, day of year and when full=true, the month and day
// in which an absolute date occurs.
func absDate(abs uint64, full bool) (year int, month time.Month, day int, yday int) {
	d := abs

	// Account for 400 year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day
	// of that year, day / daysPer100YearsYears will be 4 instead of 3.
	// Cut it back down to 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	// The last cycle has a missing leap year, which does not
	// affect the computation.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle.
	// The last year is a leap year, so on the last day of that year,
	// day / 365 will be 4 instead of 3. Cut it back down to 3
	// by subtracting n>>2.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(int64(y) + absoluteZeroYear)
	yday = int(d)

	if !full {
		return
	}

	day = yday
	if isLeap(year) {
		// Leap year
		switch {
		case day > 31+29-1:
			// After leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			// Leap day.
			month = time.February
			day = 29
			return
		}
	}

	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	month = time.Month(day / 31)
	end := int(daysBefore[month+1])
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = int(daysBefore[month])
	}

	month++ // because January is 1
	day = day - begin + 1
	return year, month, day, yday
}

// daysSinceEpoch takes a year and returns the number of days from the absolute
// epoch to the start of that year. This is basically (year - zeroYear) * 365,
// but accounting for leap days.
func daysSinceEpoch(year int) int {
	y := year - absoluteZeroYear

	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	n = y
	d += 365 * n

	return int(d)
}

func isLeap(year int) bool {
	return (year%4 == 0 && (year%100 != 0 || year%400 == 0))
}

// norm returns nhi, nlo such that
//
//	hi * base + lo == nhi * base + nlo
//	0 <= nlo < base
//
// It is the single carry/borrow step used by all field cascades in this
// package (nanosecond→second, second→minute, minute→hour, hour→day).
func norm(hi, lo, base int) (nhi, nlo int) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

// A Date represents a day on the proleptic Gregorian calendar, as the number
// of days since 0001-01-01. The zero value of Date is thus the same date as
// the zero value of time.Time.
//
// Dates can be compared and shifted by whole days using Go's arithmetic
// operators. Values produced by the checked constructors always lie in
// [MinDate, MaxDate]; conversions and untyped arithmetic can leave that
// range, and the checked operations reject such values.
type Date int

// Of returns the Date correspomding to the given date.
//
// The arguments may be outside their usual ranges and will be normalized
// during the conversion, just as for [time.Date]. For example, October 32
// converts to November 1. For validated construction, use [CalendarDate].
func Of(year int, month time.Month, day int) Date {
	m := int(month) - 1
	year, m = norm(year, m, 12)
	month = time.Month(m) + 1

	d := daysSinceEpoch(year)
	d += daysBefore[month-1]
	if isLeap(year) && month >= time.March {
		d++
	}

	d += day - 1

	return Date(d - internalToAbsolute)
}

// CalendarDate returns the Date of the given year, month and day, validating
// each component.
func CalendarDate(year int, month time.Month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return 0, rangeErr("year", int64(year), MinYear, MaxYear)
	}
	if month < time.January || month > time.December {
		return 0, rangeErr("month", int64(month), 1, 12)
	}
	if day < 1 || day > daysIn(month, year) {
		return 0, rangeErrCond("day", int64(day), 1, int64(daysIn(month, year)))
	}
	return Of(year, month, day), nil
}

// OrdinalDate returns the Date of the given day of the given year, validating
// both components.
func OrdinalDate(year, ordinal int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return 0, rangeErr("year", int64(year), MinYear, MaxYear)
	}
	if ordinal < 1 || ordinal > daysInYear(year) {
		return 0, rangeErrCond("ordinal", int64(ordinal), 1, int64(daysInYear(year)))
	}
	return Of(year, time.January, ordinal), nil
}

// ISOWeekDate returns the Date of the given weekday of the given ISO 8601
// week. Note that the ISO year can differ from the Gregorian year of the
// resulting Date for up to three days at either end of the year.
func ISOWeekDate(year, week int, weekday time.Weekday) (Date, error) {
	if year < MinYear || year > MaxYear {
		return 0, rangeErr("year", int64(year), MinYear, MaxYear)
	}
	if week < 1 || week > weeksInYear(year) {
		return 0, rangeErrCond("week", int64(week), 1, int64(weeksInYear(year)))
	}
	// ISO week 1 is the week containing January 4.
	jan4 := Of(year, time.January, 4)
	week1Monday := jan4 - Date(numberFromMonday(jan4.Weekday())-1)
	d := week1Monday + Date((week-1)*7+numberFromMonday(weekday)-1)
	if d < MinDate || d > MaxDate {
		return 0, rangeErrCond("week", int64(week), 1, int64(weeksInYear(year)))
	}
	return d, nil
}

// FromJulianDay returns the Date with the given Julian day number, the
// continuous day count with day 0 on -4713-11-24.
func FromJulianDay(jd int) (Date, error) {
	if jd < MinDate.JulianDay() || jd > MaxDate.JulianDay() {
		return 0, rangeErr("julian day", int64(jd), int64(MinDate.JulianDay()), int64(MaxDate.JulianDay()))
	}
	return fromJulianDay(jd), nil
}

// fromJulianDay is [FromJulianDay] for pre-validated input.
func fromJulianDay(jd int) Date {
	return Date(jd - julianDayOfZeroDate)
}

// numberFromMonday returns the ISO 8601 number of the weekday, with
// Monday=1 and Sunday=7.
func numberFromMonday(wd time.Weekday) int {
	return (int(wd)+6)%7 + 1
}

// Today returns the current date in the given location.
func Today(loc *time.Location) Date {
	return Of(time.Now().In(loc).Date())
}

// abs returns the absolute date of d.
func (d Date) abs() uint64 {
	return uint64(d + internalToAbsolute)
}

// AddDate returns the date corresponding to adding the given number of years,
// months, and days to d. For example, AddDate(-1, 2, 3) applied to January 1,
// 2011 returns March 4, 2010.
//
// AddDate normalizes its result in the same way that Of does, so, for
// example, adding one month to October 31 yields December 1, the normalized
// form for November 31.
//
// AddDate(0, 0, days) is equivalent to d+Date(days).
func (d Date) AddDate(years, months, days int) Date {
	year, month, day := d.Date()
	return Of(year+years, month+time.Month(months), day+days)
}

// CheckedAdd returns d shifted forward by the whole days of dur, reporting
// false if the result would leave [MinDate, MaxDate]. The sub-day part of
// dur is ignored.
func (d Date) CheckedAdd(dur Duration) (Date, bool) {
	nd, ok := addInt64(int64(d), dur.WholeDays())
	if !ok || nd < int64(MinDate) || nd > int64(MaxDate) {
		return 0, false
	}
	return Date(nd), true
}

// CheckedSub returns d shifted backward by the whole days of dur, reporting
// false if the result would leave [MinDate, MaxDate].
func (d Date) CheckedSub(dur Duration) (Date, bool) {
	nd, ok := subInt64(int64(d), dur.WholeDays())
	if !ok || nd < int64(MinDate) || nd > int64(MaxDate) {
		return 0, false
	}
	return Date(nd), true
}

// SaturatingAdd is [Date.CheckedAdd], clamping to [MinDate] or [MaxDate]
// instead of failing.
func (d Date) SaturatingAdd(dur Duration) Date {
	if nd, ok := d.CheckedAdd(dur); ok {
		return nd
	}
	if dur.IsNegative() {
		return MinDate
	}
	return MaxDate
}

// SaturatingSub is [Date.CheckedSub], clamping to [MinDate] or [MaxDate]
// instead of failing.
func (d Date) SaturatingSub(dur Duration) Date {
	if nd, ok := d.CheckedSub(dur); ok {
		return nd
	}
	if dur.IsNegative() {
		return MaxDate
	}
	return MinDate
}

// Add returns d shifted forward by the whole days of dur. It panics if the
// result leaves [MinDate, MaxDate].
func (d Date) Add(dur Duration) Date {
	nd, ok := d.CheckedAdd(dur)
	if !ok {
		panic("datetime: date addition out of range")
	}
	return nd
}

// Sub returns d shifted backward by the whole days of dur. It panics if the
// result leaves [MinDate, MaxDate].
func (d Date) Sub(dur Duration) Date {
	nd, ok := d.CheckedSub(dur)
	if !ok {
		panic("datetime: date subtraction out of range")
	}
	return nd
}

// Next returns the day after d, reporting false if d is [MaxDate].
func (d Date) Next() (Date, bool) {
	if d >= MaxDate {
		return 0, false
	}
	return d + 1, true
}

// Previous returns the day before d, reporting false if d is [MinDate].
func (d Date) Previous() (Date, bool) {
	if d <= MinDate {
		return 0, false
	}
	return d - 1, true
}

// Date returns the normalized year, month and day specified by d.
func (d Date) Date() (year int, month time.Month, day int) {
	year, month, day, _ = absDate(d.abs(), true)
	return year, month, day
}

// OrdinalDate returns the year and the day of that year specified by d.
func (d Date) OrdinalDate() (year, ordinal int) {
	year, _, _, yday := absDate(d.abs(), false)
	return year, yday + 1
}

// Day returns the day of the month of d.
func (d Date) Day() int {
	_, _, day := d.Date()
	return day
}

// GoString implements fmt.GoStringer and formats d to be printed in Go source code.
func (d Date) GoString() string {
	year, month, day := d.Date()
	return fmt.Sprintf("datetime.Of(%d, %d, %d)", year, month, day)
}

// ISOWeek returns the ISO 8601 year and week number in which d occurs. Week
// ranges from 1 to 53. Jan 01 to Jan 03 of year n might belong to week 52 or
// 53 of year n-1, and Dec 29 to Dec 31 might belong to week 1 of year n+1.
func (d Date) ISOWeek() (year, week int) {
	// See this comment for an explanation:
	// https://cs.opensource.google/go/go/+/refs/tags/go1.20.6:src/time/time.go;l=544

	offset := time.Thursday - d.Weekday()
	if offset == 4 {
		offset = -3
	}
	d += Date(offset)
	year, _, _, yday := absDate(d.abs(), false)
	return year, yday/7 + 1
}

// ISOWeekDate returns the ISO 8601 year, week number and weekday in which d
// occurs, the inverse of [ISOWeekDate].
func (d Date) ISOWeekDate() (year, week int, weekday time.Weekday) {
	year, week = d.ISOWeek()
	return year, week, d.Weekday()
}

// JulianDay returns the Julian day number of d.
func (d Date) JulianDay() int {
	return int(d) + julianDayOfZeroDate
}

// MarshalBinary implements the encoding.BinaryMarshaler interface. The date is
// represented as a [binary.Varint] representing the number of days since
// 0001-01-01.
func (d Date) MarshalBinary() ([]byte, error) {
	b := make([]byte, binary.MaxVarintLen64)
	return b[:binary.PutVarint(b, int64(d))], nil
}

// MarshalText implements the encoding.TextMarshaler interface. The date is
// formatted in ISO 8601 format.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Month returns the month of the year specified by d.
func (d Date) Month() time.Month {
	_, month, _ := d.Date()
	return month
}

// String returns the date formatted as ISO 8601.
//
// The returned string is meant for debugging; for a stable serialized
// representation, use d.MarshalText or d.MarshalBinary.
func (d Date) String() string {
	s, _ := d.Format(RFC3339Date)
	return s
}

// Time returns the given moment in time in the given location.
func (d Date) Time(hour, min, sec, nsec int, loc *time.Location) time.Time {
	return time.Date(1, 1, 1+int(d), hour, min, sec, nsec, loc)
}

// WithTime combines d with the given time of day into a [DateTime].
func (d Date) WithTime(t Time) DateTime {
	return DateTime{date: d, time: t}
}

// Midnight returns the [DateTime] at the start of d.
func (d Date) Midnight() DateTime {
	return DateTime{date: d}
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (d *Date) UnmarshalBinary(b []byte) error {
	v, i := binary.Varint(b)
	switch {
	case i == 0:
		return errors.New("encoded date truncated")
	case i < 0 || int64(int(v)) != v:
		return errors.New("encoded date overflows int")
	case i != len(b):
		return errors.New("extra data after date")
	}
	*d = Date(v)
	return nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface. The date
// must be in ISO 8601 format.
func (d *Date) UnmarshalText(b []byte) error {
	v, err := ParseDate(RFC3339Date, string(b))
	if err == nil {
		*d = v
	}
	return err
}

// Weekday returns the day of the week specified by d.
func (d Date) Weekday() time.Weekday {
	return (time.Monday + time.Weekday(d.abs())) % 7 // 0001-01-01 was a Monday
}

// Year returns the year in which d occurs.
func (d Date) Year() int {
	year, _, _, _ := absDate(d.abs(), false)
	return year
}

// YearDay returns the day of the year specified by d, in the range [1,365] for
// non-leap years, and [1,366] in leap years.
func (d Date) YearDay() int {
	_, _, _, yday := absDate(d.abs(), false)
	return yday + 1
}
