// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"testing"
	"time"
)

// TestDateTimeAccessors checks that the accessors delegate to the right
// halves.
func TestDateTimeAccessors(t *testing.T) {
	t.Parallel()
	dt := NewDateTime(Of(2019, 11, 25), timeOf(15, 30, 45, 123456789))
	if dt.Date() != Of(2019, 11, 25) || dt.Time() != timeOf(15, 30, 45, 123456789) {
		t.Errorf("Date()/Time() wrong for %v", dt)
	}
	if dt.Year() != 2019 || dt.Month() != time.November || dt.Day() != 25 {
		t.Errorf("calendar accessors wrong for %v", dt)
	}
	if dt.Weekday() != time.Monday || dt.YearDay() != 329 {
		t.Errorf("Weekday()/YearDay() wrong for %v", dt)
	}
	if y, w := dt.ISOWeek(); y != 2019 || w != 48 {
		t.Errorf("ISOWeek() = %d, %d, want 2019, 48", y, w)
	}
	if dt.Hour() != 15 || dt.Minute() != 30 || dt.Second() != 45 {
		t.Errorf("clock accessors wrong for %v", dt)
	}
	if dt.Millisecond() != 123 || dt.Microsecond() != 123456 || dt.Nanosecond() != 123456789 {
		t.Errorf("sub-second accessors wrong for %v", dt)
	}
	want := time.Date(2019, 11, 25, 15, 30, 45, 123456789, time.UTC)
	if got := dt.In(time.UTC); !got.Equal(want) {
		t.Errorf("In(UTC) = %v, want %v", got, want)
	}
}

// TestDateTimeCheckedAdd checks duration arithmetic across midnight and at
// the ends of the range.
func TestDateTimeCheckedAdd(t *testing.T) {
	t.Parallel()
	dt := Of(2019, 11, 25).WithTime(timeOf(15, 30, 0, 0))
	tcs := []struct {
		dt   DateTime
		d    Duration
		want DateTime
		ok   bool
	}{
		{dt, Duration{}, dt, true},
		{dt, Hours(2), Of(2019, 11, 25).WithTime(timeOf(17, 30, 0, 0)), true},
		{dt, Hours(27), Of(2019, 11, 26).WithTime(timeOf(18, 30, 0, 0)), true},
		{dt, Hours(-27), Of(2019, 11, 24).WithTime(timeOf(12, 30, 0, 0)), true},
		{dt, Days(37), Of(2020, 1, 1).WithTime(timeOf(15, 30, 0, 0)), true},
		{dt, Nanoseconds(1), Of(2019, 11, 25).WithTime(timeOf(15, 30, 0, 1)), true},
		{Of(2019, 12, 31).WithTime(timeOf(23, 59, 59, 999999999)), Nanoseconds(1), Of(2020, 1, 1).Midnight(), true},
		{MaxDateTime, Nanoseconds(1), DateTime{}, false},
		{MinDateTime, Nanoseconds(-1), DateTime{}, false},
		{dt, MaxDuration, DateTime{}, false},
	}
	for _, tc := range tcs {
		got, ok := tc.dt.CheckedAdd(tc.d)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("%v.CheckedAdd(%v) = %v, %v, want %v, %v", tc.dt, tc.d, got, ok, tc.want, tc.ok)
		}
		if !tc.ok {
			continue
		}
		// Subtraction inverts addition.
		back, ok := got.CheckedSub(tc.d)
		if !ok || back != tc.dt {
			t.Errorf("%v.CheckedSub(%v) = %v, %v, want %v, true", got, tc.d, back, ok, tc.dt)
		}
		// Since recovers the difference.
		if diff := got.Since(tc.dt); diff != tc.d {
			t.Errorf("%v.Since(%v) = %v, want %v", got, tc.dt, diff, tc.d)
		}
	}
}

// TestDateTimeSaturating checks that the saturating arithmetic clamps to the
// range ends.
func TestDateTimeSaturating(t *testing.T) {
	t.Parallel()
	dt := Of(2019, 11, 25).WithTime(timeOf(15, 30, 0, 0))
	if got := MaxDateTime.SaturatingAdd(Nanoseconds(1)); got != MaxDateTime {
		t.Errorf("MaxDateTime +sat 1ns = %v, want MaxDateTime", got)
	}
	if got := MinDateTime.SaturatingAdd(Nanoseconds(-1)); got != MinDateTime {
		t.Errorf("MinDateTime +sat -1ns = %v, want MinDateTime", got)
	}
	if got := MinDateTime.SaturatingSub(Nanoseconds(1)); got != MinDateTime {
		t.Errorf("MinDateTime -sat 1ns = %v, want MinDateTime", got)
	}
	if got := MaxDateTime.SaturatingSub(Nanoseconds(-1)); got != MaxDateTime {
		t.Errorf("MaxDateTime -sat -1ns = %v, want MaxDateTime", got)
	}
	if got := dt.SaturatingAdd(MaxDuration); got != MaxDateTime {
		t.Errorf("dt +sat MaxDuration = %v, want MaxDateTime", got)
	}
	if got, want := dt.SaturatingAdd(Hours(27)), Of(2019, 11, 26).WithTime(timeOf(18, 30, 0, 0)); got != want {
		t.Errorf("dt +sat 27h = %v, want %v", got, want)
	}
}

// TestDateTimeAddPanics checks that Add and Sub panic out of range.
func TestDateTimeAddPanics(t *testing.T) {
	t.Parallel()
	mustPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}
	mustPanic("MaxDateTime.Add(1ns)", func() { MaxDateTime.Add(Nanoseconds(1)) })
	mustPanic("MinDateTime.Sub(1ns)", func() { MinDateTime.Sub(Nanoseconds(1)) })
	dt := Of(2019, 11, 25).WithTime(timeOf(15, 30, 0, 0))
	if got, want := dt.Add(Hours(27)), Of(2019, 11, 26).WithTime(timeOf(18, 30, 0, 0)); got != want {
		t.Errorf("dt.Add(27h) = %v, want %v", got, want)
	}
	if got, want := dt.Sub(Hours(27)), Of(2019, 11, 24).WithTime(timeOf(12, 30, 0, 0)); got != want {
		t.Errorf("dt.Sub(27h) = %v, want %v", got, want)
	}
}

// TestDateTimeAddStd checks arithmetic with time.Duration shifts.
func TestDateTimeAddStd(t *testing.T) {
	t.Parallel()
	dt := Of(2019, 11, 25).WithTime(timeOf(15, 30, 0, 0))
	tcs := []struct {
		sd   time.Duration
		want DateTime
	}{
		{0, dt},
		{2 * time.Hour, Of(2019, 11, 25).WithTime(timeOf(17, 30, 0, 0))},
		{27 * time.Hour, Of(2019, 11, 26).WithTime(timeOf(18, 30, 0, 0))},
		{-27 * time.Hour, Of(2019, 11, 24).WithTime(timeOf(12, 30, 0, 0))},
		{9 * time.Hour, Of(2019, 11, 26).WithTime(timeOf(0, 30, 0, 0))},
		{500 * time.Millisecond, Of(2019, 11, 25).WithTime(timeOf(15, 30, 0, 500000000))},
	}
	for _, tc := range tcs {
		if got := dt.AddStd(tc.sd); got != tc.want {
			t.Errorf("%v.AddStd(%v) = %v, want %v", dt, tc.sd, got, tc.want)
		}
		if got := tc.want.SubStd(tc.sd); got != dt {
			t.Errorf("%v.SubStd(%v) = %v, want %v", tc.want, tc.sd, got, dt)
		}
	}
}

// TestDateTimeSince checks differences between date-times.
func TestDateTimeSince(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		dt, u DateTime
		want  Duration
	}{
		{Of(2019, 11, 25).Midnight(), Of(2019, 11, 25).Midnight(), Duration{}},
		{Of(2019, 11, 26).Midnight(), Of(2019, 11, 25).Midnight(), Days(1)},
		{Of(2019, 11, 25).Midnight(), Of(2019, 11, 26).Midnight(), Days(-1)},
		{Of(2019, 11, 25).WithTime(timeOf(1, 0, 0, 0)), Of(2019, 11, 24).WithTime(timeOf(23, 0, 0, 0)), Hours(2)},
		{Of(2019, 11, 25).Midnight(), Of(2019, 11, 24).WithTime(timeOf(23, 59, 59, 999999999)), Nanoseconds(1)},
		{MaxDateTime, MinDateTime, NewDuration(int64(MaxDate-MinDate)*86400+86399, 999999999)},
	}
	for _, tc := range tcs {
		if got := tc.dt.Since(tc.u); got != tc.want {
			t.Errorf("%v.Since(%v) = %v, want %v", tc.dt, tc.u, got, tc.want)
		}
	}
}

// TestDateTimeReplace checks the Replace methods.
func TestDateTimeReplace(t *testing.T) {
	t.Parallel()
	dt := Of(2019, 11, 25).WithTime(timeOf(15, 30, 45, 123456789))
	if got := dt.ReplaceDate(Of(2024, 2, 29)); got != Of(2024, 2, 29).WithTime(timeOf(15, 30, 45, 123456789)) {
		t.Errorf("ReplaceDate = %v", got)
	}
	if got := dt.ReplaceTime(Midnight); got != Of(2019, 11, 25).Midnight() {
		t.Errorf("ReplaceTime = %v", got)
	}
	if got, err := dt.ReplaceYear(2021); err != nil || got != Of(2021, 11, 25).WithTime(timeOf(15, 30, 45, 123456789)) {
		t.Errorf("ReplaceYear(2021) = %v, %v", got, err)
	}
	if got, err := dt.ReplaceMonth(time.February); err != nil || got != Of(2019, 2, 25).WithTime(timeOf(15, 30, 45, 123456789)) {
		t.Errorf("ReplaceMonth(February) = %v, %v", got, err)
	}
	if got, err := dt.ReplaceDay(30); err != nil || got != Of(2019, 11, 30).WithTime(timeOf(15, 30, 45, 123456789)) {
		t.Errorf("ReplaceDay(30) = %v, %v", got, err)
	}
	if got, err := dt.ReplaceHour(0); err != nil || got != Of(2019, 11, 25).WithTime(timeOf(0, 30, 45, 123456789)) {
		t.Errorf("ReplaceHour(0) = %v, %v", got, err)
	}
	if got, err := dt.ReplaceMinute(0); err != nil || got != Of(2019, 11, 25).WithTime(timeOf(15, 0, 45, 123456789)) {
		t.Errorf("ReplaceMinute(0) = %v, %v", got, err)
	}
	if got, err := dt.ReplaceSecond(0); err != nil || got != Of(2019, 11, 25).WithTime(timeOf(15, 30, 0, 123456789)) {
		t.Errorf("ReplaceSecond(0) = %v, %v", got, err)
	}
	if got, err := dt.ReplaceNanosecond(0); err != nil || got != Of(2019, 11, 25).WithTime(timeOf(15, 30, 45, 0)) {
		t.Errorf("ReplaceNanosecond(0) = %v, %v", got, err)
	}

	// Replacing components must not silently normalize.
	leap := Of(2024, 2, 29).Midnight()
	if got, err := leap.ReplaceYear(2023); err == nil {
		t.Errorf("2024-02-29.ReplaceYear(2023) = %v, want error", got)
	}
	if got, err := Of(2019, 1, 31).Midnight().ReplaceMonth(time.February); err == nil {
		t.Errorf("2019-01-31.ReplaceMonth(February) = %v, want error", got)
	}
	if got, err := dt.ReplaceDay(31); err == nil {
		t.Errorf("2019-11-25.ReplaceDay(31) = %v, want error", got)
	}
	if _, err := dt.ReplaceHour(24); err == nil {
		t.Errorf("ReplaceHour(24) succeeded")
	}
}

// TestDateTimeCompare checks the ordering of date-times.
func TestDateTimeCompare(t *testing.T) {
	t.Parallel()
	vals := []DateTime{
		MinDateTime,
		Of(2019, 11, 24).WithTime(timeOf(23, 59, 59, 999999999)),
		Of(2019, 11, 25).Midnight(),
		Of(2019, 11, 25).WithTime(timeOf(0, 0, 0, 1)),
		Of(2019, 11, 25).WithTime(timeOf(15, 30, 0, 0)),
		MaxDateTime,
	}
	for i, a := range vals {
		for j, b := range vals {
			want := 0
			if i < j {
				want = -1
			} else if i > j {
				want = 1
			}
			if got := a.Compare(b); got != want {
				t.Errorf("%v.Compare(%v) = %d, want %d", a, b, got, want)
			}
		}
	}
}

// TestOffsetConversion checks the wall-clock shifts between UTC and an
// offset.
func TestOffsetConversion(t *testing.T) {
	t.Parallel()
	dt := Of(2019, 11, 25).WithTime(timeOf(2, 30, 0, 0))
	est := offsetOfSeconds(-5 * 3600)
	if got, want := dt.utcToOffset(est), Of(2019, 11, 24).WithTime(timeOf(21, 30, 0, 0)); got != want {
		t.Errorf("%v.utcToOffset(%v) = %v, want %v", dt, est, got, want)
	}
	if got := dt.utcToOffset(est).offsetToUTC(est); got != dt {
		t.Errorf("utcToOffset/offsetToUTC round trip = %v, want %v", got, dt)
	}
	if got := dt.utcToOffset(UTC); got != dt {
		t.Errorf("utcToOffset(UTC) = %v, want %v", got, dt)
	}
}

// TestDateTimeString checks the string representation.
func TestDateTimeString(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		dt   DateTime
		want string
	}{
		{Of(2019, 11, 25).Midnight(), "2019-11-25 00:00:00"},
		{Of(2019, 11, 25).WithTime(timeOf(15, 30, 45, 500000000)), "2019-11-25 15:30:45.5"},
		{Of(-2019, 11, 25).WithTime(timeOf(15, 30, 45, 0)), "-2019-11-25 15:30:45"},
	}
	for _, tc := range tcs {
		if got := tc.dt.String(); got != tc.want {
			t.Errorf("%#v.String() = %q, want %q", tc.dt, got, tc.want)
		}
	}
}

// FuzzDateTimeMarshalText checks that MarshalText and UnmarshalText
// round-trip.
func FuzzDateTimeMarshalText(f *testing.F) {
	f.Add(0, 0)
	f.Add(int(Of(2019, 11, 25)), 86399)
	f.Add(int(MinDate), 0)
	f.Add(int(MaxDate), 86399)
	f.Fuzz(func(t *testing.T, date, daySecs int) {
		d := Date(date)
		if d < MinDate || d > MaxDate {
			t.Skip()
		}
		daySecs = ((daySecs % 86400) + 86400) % 86400
		dt := d.WithTime(timeOf(daySecs/3600, daySecs/60%60, daySecs%60, 123456789))
		b, err := dt.MarshalText()
		if err != nil {
			t.Fatalf("%#v.MarshalText() = _, %v", dt, err)
		}
		var got DateTime
		if err := got.UnmarshalText(b); err != nil {
			t.Fatalf("UnmarshalText(%q) = %v", b, err)
		}
		if got != dt {
			t.Fatalf("UnmarshalText(%q) = %#v, want %#v", b, got, dt)
		}
	})
}
