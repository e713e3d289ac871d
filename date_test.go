// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"errors"
	"math/rand"
	"strconv"
	"testing"
	"time"
)

var tcs = []struct {
	year  int
	month time.Month
	day   int
	want  Date
}{
	{1, 1, 1, 0},
	{2, 1, 1, 365},
	{3, 1, 1, 730},
	{4, 1, 1, 1095},
	{5, 1, 1, 1461},

	{1, 3, 1, 59},
	{2, 3, 1, 424},
	{3, 3, 1, 789},
	{4, 3, 1, 1155},
	{5, 3, 1, 1520},

	{1, 1, 31, 30},
	{1, 2, 1, 31},
	{1, 1, 32, 31},
	{1, 1, 0, -1},
	{0, 12, 31, -1},
	{1957, 96, 104, 717408},
	{1964, 12, 104, 717408},
	{2023, 7, 14, 738714},
}

func TestOf(t *testing.T) {
	for i, tc := range tcs {
		tc := tc
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := Of(tc.year, tc.month, tc.day); got != tc.want {
				t.Errorf("Of(%d, %d, %d) = %d, want %d", tc.year, tc.month, tc.day, got, tc.want)
			}
			check(t, tc.year, int(tc.month), tc.day)
		})
	}
}

func TestToday(t *testing.T) {
	if got, want := Today(time.UTC), Of(time.Now().UTC().Date()); got != want {
		t.Errorf("Today(time.UTC) = %v, want %v", got, want)
	}
	if got, want := Today(time.Local), Of(time.Now().Date()); got != want {
		t.Errorf("Today(time.Local) = %v, want %v", got, want)
	}
}

func TestDateBounds(t *testing.T) {
	if got := Of(-9999, time.January, 1); got != MinDate {
		t.Errorf("Of(-9999, 1, 1) = %d, want MinDate (%d)", got, MinDate)
	}
	if got := Of(9999, time.December, 31); got != MaxDate {
		t.Errorf("Of(9999, 12, 31) = %d, want MaxDate (%d)", got, MaxDate)
	}
	if got, want := MinDate.JulianDay(), -1930999; got != want {
		t.Errorf("MinDate.JulianDay() = %d, want %d", got, want)
	}
	if got, want := MaxDate.JulianDay(), 5373484; got != want {
		t.Errorf("MaxDate.JulianDay() = %d, want %d", got, want)
	}
}

func TestCalendarDate(t *testing.T) {
	tcs := []struct {
		year    int
		month   time.Month
		day     int
		want    Date
		wantErr string // name of the out-of-range component, if any
	}{
		{2023, time.July, 14, Of(2023, 7, 14), ""},
		{-9999, time.January, 1, MinDate, ""},
		{9999, time.December, 31, MaxDate, ""},
		{2024, time.February, 29, Of(2024, 2, 29), ""},
		{2023, time.February, 29, 0, "day"},
		{2023, time.April, 31, 0, "day"},
		{2023, 13, 1, 0, "month"},
		{2023, 0, 1, 0, "month"},
		{2023, time.July, 0, 0, "day"},
		{10000, time.January, 1, 0, "year"},
		{-10000, time.January, 1, 0, "year"},
	}
	for _, tc := range tcs {
		got, err := CalendarDate(tc.year, tc.month, tc.day)
		if tc.wantErr == "" {
			if err != nil || got != tc.want {
				t.Errorf("CalendarDate(%d, %d, %d) = %v, %v, want %v, <nil>", tc.year, tc.month, tc.day, got, err, tc.want)
			}
			continue
		}
		var re *RangeError
		if !errors.As(err, &re) || re.Name != tc.wantErr {
			t.Errorf("CalendarDate(%d, %d, %d) = _, %v, want RangeError for %q", tc.year, tc.month, tc.day, err, tc.wantErr)
		}
	}
}

func TestOrdinalDate(t *testing.T) {
	tcs := []struct {
		year    int
		ordinal int
		want    Date
		wantErr bool
	}{
		{2023, 1, Of(2023, 1, 1), false},
		{2023, 365, Of(2023, 12, 31), false},
		{2024, 366, Of(2024, 12, 31), false},
		{2024, 60, Of(2024, 2, 29), false},
		{2023, 366, 0, true},
		{2023, 0, 0, true},
		{10000, 1, 0, true},
	}
	for _, tc := range tcs {
		got, err := OrdinalDate(tc.year, tc.ordinal)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("OrdinalDate(%d, %d) = %v, %v, want %v, err=%v", tc.year, tc.ordinal, got, err, tc.want, tc.wantErr)
		}
		if err != nil {
			continue
		}
		y, yd := got.OrdinalDate()
		if y != tc.year || yd != tc.ordinal {
			t.Errorf("OrdinalDate(%d, %d).OrdinalDate() = %d, %d", tc.year, tc.ordinal, y, yd)
		}
	}
}

func TestISOWeekDate(t *testing.T) {
	tcs := []struct {
		year    int
		week    int
		weekday time.Weekday
		want    Date
		wantErr bool
	}{
		{2019, 1, time.Tuesday, Of(2019, 1, 1), false},
		{2019, 1, time.Monday, Of(2018, 12, 31), false},
		{2020, 53, time.Thursday, Of(2020, 12, 31), false},
		{2020, 53, time.Friday, Of(2021, 1, 1), false},
		{2015, 53, time.Monday, Of(2015, 12, 28), false},
		{2023, 52, time.Sunday, Of(2023, 12, 31), false},
		{2023, 53, time.Monday, 0, true}, // 2023 has 52 weeks
		{2020, 54, time.Monday, 0, true},
		{2020, 0, time.Monday, 0, true},
	}
	for _, tc := range tcs {
		got, err := ISOWeekDate(tc.year, tc.week, tc.weekday)
		if (err != nil) != tc.wantErr || got != tc.want {
			t.Errorf("ISOWeekDate(%d, %d, %v) = %v, %v, want %v, err=%v", tc.year, tc.week, tc.weekday, got, err, tc.want, tc.wantErr)
		}
		if err != nil {
			continue
		}
		y, w, wd := got.ISOWeekDate()
		if y != tc.year || w != tc.week || wd != tc.weekday {
			t.Errorf("%v.ISOWeekDate() = %d, %d, %v, want %d, %d, %v", got, y, w, wd, tc.year, tc.week, tc.weekday)
		}
	}
}

func TestJulianDay(t *testing.T) {
	tcs := []struct {
		date Date
		jd   int
	}{
		{Of(-4713, 11, 24), 0},
		{Of(1970, 1, 1), 2440588},
		{Of(2000, 1, 1), 2451545},
		{MinDate, -1930999},
		{MaxDate, 5373484},
	}
	for _, tc := range tcs {
		if got := tc.date.JulianDay(); got != tc.jd {
			t.Errorf("%v.JulianDay() = %d, want %d", tc.date, got, tc.jd)
		}
		got, err := FromJulianDay(tc.jd)
		if err != nil || got != tc.date {
			t.Errorf("FromJulianDay(%d) = %v, %v, want %v, <nil>", tc.jd, got, err, tc.date)
		}
	}
	if _, err := FromJulianDay(MaxDate.JulianDay() + 1); err == nil {
		t.Errorf("FromJulianDay(MaxDate.JulianDay()+1) succeeded, want error")
	}
	if _, err := FromJulianDay(MinDate.JulianDay() - 1); err == nil {
		t.Errorf("FromJulianDay(MinDate.JulianDay()-1) succeeded, want error")
	}
}

func TestWeeksInYear(t *testing.T) {
	tcs := map[int]int{
		2015: 53, // starts on a Thursday
		2020: 53, // leap year starting on a Wednesday
		2019: 52,
		2021: 52,
		2023: 52,
	}
	for year, want := range tcs {
		if got := weeksInYear(year); got != want {
			t.Errorf("weeksInYear(%d) = %d, want %d", year, got, want)
		}
	}
}

func TestDateCheckedAdd(t *testing.T) {
	d := Of(2019, 11, 25)
	if got, ok := d.CheckedAdd(Hours(27)); !ok || got != Of(2019, 11, 26) {
		t.Errorf("%v.CheckedAdd(27h) = %v, %v, want %v, true", d, got, ok, Of(2019, 11, 26))
	}
	if got, ok := d.CheckedSub(Days(30)); !ok || got != Of(2019, 10, 26) {
		t.Errorf("%v.CheckedSub(30d) = %v, %v, want %v, true", d, got, ok, Of(2019, 10, 26))
	}
	if _, ok := MaxDate.CheckedAdd(Days(1)); ok {
		t.Errorf("MaxDate.CheckedAdd(1d) succeeded, want failure")
	}
	if _, ok := MinDate.CheckedSub(Days(1)); ok {
		t.Errorf("MinDate.CheckedSub(1d) succeeded, want failure")
	}
	if got := MaxDate.SaturatingAdd(Days(1e6)); got != MaxDate {
		t.Errorf("MaxDate.SaturatingAdd(1e6 days) = %v, want MaxDate", got)
	}
	if got := MinDate.SaturatingAdd(Days(-1)); got != MinDate {
		t.Errorf("MinDate.SaturatingAdd(-1d) = %v, want MinDate", got)
	}
	if got := MinDate.SaturatingSub(Days(1)); got != MinDate {
		t.Errorf("MinDate.SaturatingSub(1d) = %v, want MinDate", got)
	}
}

func TestNextPrevious(t *testing.T) {
	if got, ok := Of(2019, 12, 31).Next(); !ok || got != Of(2020, 1, 1) {
		t.Errorf("Of(2019, 12, 31).Next() = %v, %v, want %v, true", got, ok, Of(2020, 1, 1))
	}
	if got, ok := Of(2020, 3, 1).Previous(); !ok || got != Of(2020, 2, 29) {
		t.Errorf("Of(2020, 3, 1).Previous() = %v, %v, want %v, true", got, ok, Of(2020, 2, 29))
	}
	if _, ok := MaxDate.Next(); ok {
		t.Errorf("MaxDate.Next() succeeded, want failure")
	}
	if _, ok := MinDate.Previous(); ok {
		t.Errorf("MinDate.Previous() succeeded, want failure")
	}
}

func TestDateAddPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("MaxDate.Add(Days(1)) did not panic")
		}
	}()
	MaxDate.Add(Days(1))
}

func addAll(f *testing.F) {
	for _, tc := range tcs {
		f.Add(tc.year, int(tc.month), tc.day)
	}
}

func FuzzOf(f *testing.F) {
	addAll(f)
	f.Fuzz(check)
}

func FuzzMarshalText(f *testing.F) {
	addAll(f)
	f.Fuzz(func(t *testing.T, year, month, day int) {
		want := Of(year, time.Month(month), day)
		b, _ := want.MarshalText()
		t.Logf("Of(%d, %d, %d).MarshalText() = %q", year, month, day, string(b))
		var got Date
		if err := got.UnmarshalText(b); err != nil {
			t.Errorf("UnmarshalText(%q) = _, %v, want <nil>", string(b), err)
		}
		if got != want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", string(b), got, want)
		}
	})
}

func FuzzUnmarshalText(f *testing.F) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		b, err := Date(rnd.Intn(1e6)).MarshalText()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, b []byte) {
		var d Date
		// we only check that UnmarshalText does not panic.
		d.UnmarshalText(b)
	})
}

func FuzzMarshalBinary(f *testing.F) {
	addAll(f)
	f.Fuzz(func(t *testing.T, year, month, day int) {
		want := Of(year, time.Month(month), day)
		b, _ := want.MarshalBinary()
		t.Logf("Of(%d, %d, %d).MarshalBinary() = %q", year, month, day, string(b))
		var got Date
		if err := got.UnmarshalBinary(b); err != nil {
			t.Errorf("UnmarshalBinary(%q) = _, %v, want <nil>", string(b), err)
		}
		if got != want {
			t.Errorf("UnmarshalBinary(%q) = %v, want %v", string(b), got, want)
		}
	})
}

func FuzzUnmarshalBinary(f *testing.F) {
	rnd := rand.New(rand.NewSource(0))
	for i := 0; i < 100; i++ {
		b, err := Date(rnd.Intn(1e6)).MarshalText()
		if err != nil {
			f.Fatal(err)
		}
		f.Add(b)
	}
	f.Fuzz(func(t *testing.T, b []byte) {
		var d Date
		// we only check that UnmarshalBinary does not panic.
		d.UnmarshalBinary(b)
	})
}

// check that the given year, month and day values produce the same date calculations as time.Time.
func check(t *testing.T, year, month, day int) {
	d := Of(year, time.Month(month), day)
	got := time.Date(1, 1, 1, 6, 0, 0, 0, time.UTC).AddDate(0, 0, int(d))
	want := time.Date(year, time.Month(month), day, 6, 0, 0, 0, time.UTC)
	if got != want {
		t.Errorf("Of(%d, %d, %d): %v != %v", year, month, day, got.Format(time.DateOnly), want.Format(time.DateOnly))
	}
	Y, M, D := d.Date()
	if wantY, wantM, wantD := want.Date(); Y != wantY || M != wantM || D != wantD {
		t.Errorf("Of(%d, %d, %d).Date() = %d, %d, %d, want %d, %d, %d", year, month, day, Y, M, D, wantY, wantM, wantD)
	}
	t.Logf("Of(%d, %d, %d).Date() = %d, %d, %d", year, month, day, Y, M, D)
	if d2 := Of(Y, M, D); d2 != d {
		t.Errorf("Of(%d, %d, %d) = %d, want %d", Y, M, D, d2, d)
	}
	if gotY, wantY := d.Year(), want.Year(); gotY != wantY {
		t.Errorf("Of(%d, %d, %d).Year() = %d, want %d", year, month, day, gotY, wantY)
	}
	if gotM, wantM := d.Month(), want.Month(); gotM != wantM {
		t.Errorf("Of(%d, %d, %d).Month() = %d, want %d", year, month, day, gotM, wantM)
	}
	if gotD, wantD := d.Day(), want.Day(); gotD != wantD {
		t.Errorf("Of(%d, %d, %d).Day() = %d, want %d", year, month, day, gotD, wantD)
	}
	if gotYD, wantYD := d.YearDay(), want.YearDay(); gotYD != wantYD {
		t.Errorf("Of(%d, %d, %d).YearDay() = %d, want %d", year, month, day, gotYD, wantYD)
	}
	if gotWD, wantWD := d.Weekday(), want.Weekday(); gotWD != wantWD {
		t.Errorf("Of(%d, %d, %d).Weekday() = %v, want %v", year, month, day, gotWD, wantWD)
	}
	gotIY, gotIW := d.ISOWeek()
	wantIY, wantIW := want.ISOWeek()
	if gotIY != wantIY || gotIW != wantIW {
		t.Errorf("Of(%d, %d, %d).ISOWeek() = (%d, %d), want (%d, %d)", year, month, day, gotIY, gotIW, wantIY, wantIW)
	}

	// The round trips through the alternate date representations must be
	// exact.
	if oy, od := d.OrdinalDate(); Of(oy, time.January, od) != d {
		t.Errorf("Of(%d, %d, %d).OrdinalDate() = (%d, %d), does not round-trip", year, month, day, oy, od)
	}
	if jd := d.JulianDay(); fromJulianDay(jd) != d {
		t.Errorf("Of(%d, %d, %d).JulianDay() = %d, does not round-trip", year, month, day, jd)
	}
	if d >= MinDate && d <= MaxDate {
		iy, iw, iwd := d.ISOWeekDate()
		if d2, err := ISOWeekDate(iy, iw, iwd); err != nil || d2 != d {
			t.Errorf("ISOWeekDate(%d, %d, %v) = %v, %v, want %v", iy, iw, iwd, d2, err, d)
		}
	}
}
