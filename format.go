// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gonih.org/datetime/internal/cache"
)

// These are predefined layouts for use in the Format and Parse functions of
// the types in this package. The reference time used in these layouts is the
// specific moment
//
//	January 2, 2006 at 15:04:05 (-0700)
//
// That value is recorded as the constant named [Layout], listed below. The
// reference time is chosen for compatibility with package [time].
//
// The format specification works the same as [time.Layout]. The recognized
// components are
//
//	Year: "2006" "06"
//	Month: "Jan" "January" "01" "1"
//	Day of the week: "Mon" "Monday"
//	Day of the month: "2" "_2" "02"
//	Day of the year: "__2" "002"
//	Hour: "15" "3" "03" (PM or AM)
//	Minute: "4" "04"
//	Second: "5" "05"
//	AM/PM mark: "PM" "pm"
//	Fraction of a second: ".0…" (fixed width) ",9…" (trailing zeros removed)
//	Offset: "-0700" "-07:00" "-07:00:00" "Z0700" "Z07:00"
//
// Named zone abbreviations such as "MST" are not supported, as the types in
// this package only carry numeric offsets.
//
// A layout component for which the formatted value carries no information,
// such as an hour when formatting a [Date], is an error. When parsing,
// components absent from the layout default to zero or, when zero is
// impossible, one; a missing offset defaults to UTC.
const (
	Layout          = "01/02 03:04:05PM '06 -0700" // The reference time, in numerical order
	RFC822          = "02 Jan 06 15:04 -0700"
	RFC1123         = "Mon, 02 Jan 2006 15:04:05 -0700"
	RFC3339         = "2006-01-02T15:04:05.999999999Z07:00"
	RFC3339Date     = "2006-01-02"
	RFC3339Time     = "15:04:05.999999999"
	RFC3339DateTime = "2006-01-02T15:04:05.999999999"
)

var longDayNames = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

var shortDayNames = []string{
	"Sun",
	"Mon",
	"Tue",
	"Wed",
	"Thu",
	"Fri",
	"Sat",
}

var shortMonthNames = []string{
	"Jan",
	"Feb",
	"Mar",
	"Apr",
	"May",
	"Jun",
	"Jul",
	"Aug",
	"Sep",
	"Oct",
	"Nov",
	"Dec",
}

var longMonthNames = []string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// The AM/PM mark is matched case-sensitively, like in package time.
var meridiemUpper = []string{
	"AM",
	"PM",
}

var meridiemLower = []string{
	"am",
	"pm",
}

// inst is a single component of a layout string, either a literal string, or
// a formatting operator. Fractional-second operators keep their layout
// element in lit, as it encodes their width.
type inst struct {
	op  fmtOp
	lit string
}

// String implements fmt.Stringer, for debugging and error reporting.
func (i inst) String() string {
	if i.lit != "" {
		return i.lit
	}
	return i.op.String()
}

// fmtOp is a formatting operator.
type fmtOp int

const (
	opLiteral fmtOp = iota

	// Sorted by parsing preference, do not re-order!
	opLongMonth
	opMonth
	opLongWeekDay
	opWeekDay
	opHour
	opZeroYearDay
	opZeroMonth
	opZeroDay
	opZeroHour12
	opZeroMinute
	opZeroSecond
	opYear
	opNumMonth
	opLongYear
	opDay
	opHour12
	opMinute
	opSecond
	opPM
	oppm
	opUnderLongYear // package time treats this as "_"+opLongYear, but it is simpler to just handle it with an extra opcode
	opUnderDay
	opUnderYearDay
	opNumSecondsColonTZ
	opNumColonTZ
	opNumTZ
	opISO8601ColonTZ
	opISO8601TZ

	opInvalid

	// Fractional seconds have a variable-width layout element and are cut out
	// by cutFrac, never by prefix matching, so they live past opInvalid.
	opFracZero
	opFracNine
)

// String implements fmt.Stringer. Except for opLiteral, it returns the layout
// component of the operator.
func (op fmtOp) String() string {
	switch op {
	case opLiteral:
		return "<literal>"
	case opLongMonth:
		return "January"
	case opMonth:
		return "Jan"
	case opLongWeekDay:
		return "Monday"
	case opWeekDay:
		return "Mon"
	case opHour:
		return "15"
	case opZeroYearDay:
		return "002"
	case opZeroMonth:
		return "01"
	case opZeroDay:
		return "02"
	case opZeroHour12:
		return "03"
	case opZeroMinute:
		return "04"
	case opZeroSecond:
		return "05"
	case opYear:
		return "06"
	case opNumMonth:
		return "1"
	case opLongYear:
		return "2006"
	case opDay:
		return "2"
	case opHour12:
		return "3"
	case opMinute:
		return "4"
	case opSecond:
		return "5"
	case opPM:
		return "PM"
	case oppm:
		return "pm"
	case opUnderLongYear:
		return "_2006"
	case opUnderDay:
		return "_2"
	case opUnderYearDay:
		return "__2"
	case opNumSecondsColonTZ:
		return "-07:00:00"
	case opNumColonTZ:
		return "-07:00"
	case opNumTZ:
		return "-0700"
	case opISO8601ColonTZ:
		return "Z07:00"
	case opISO8601TZ:
		return "Z0700"
	case opFracZero:
		return ".0"
	case opFracNine:
		return ".9"
	}
	panic("invalid fmtOp")
}

// endsWord returns whether op must be a full word, that is must not be
// followed by a lower-case letter.
func (op fmtOp) endsWord() bool {
	return op == opMonth || op == opWeekDay
}

// needsDate reports whether op formats a component of a calendar date.
func (op fmtOp) needsDate() bool {
	switch op {
	case opLongMonth, opMonth, opLongWeekDay, opWeekDay, opZeroYearDay,
		opZeroMonth, opZeroDay, opYear, opNumMonth, opLongYear, opDay,
		opUnderLongYear, opUnderDay, opUnderYearDay:
		return true
	}
	return false
}

// needsClock reports whether op formats a component of a time of day.
func (op fmtOp) needsClock() bool {
	switch op {
	case opHour, opZeroHour12, opZeroMinute, opZeroSecond, opHour12,
		opMinute, opSecond, opPM, oppm, opFracZero, opFracNine:
		return true
	}
	return false
}

// needsOffset reports whether op formats a UTC offset.
func (op fmtOp) needsOffset() bool {
	switch op {
	case opNumSecondsColonTZ, opNumColonTZ, opNumTZ, opISO8601ColonTZ, opISO8601TZ:
		return true
	}
	return false
}

// memoize compiled layout strings.
var memo cache.Cache[string, []inst]

// parseLayout parses layout into a set of instructions to parse or format
// according to it.
func parseLayout(layout string) []inst {
	var prog []inst
	for len(layout) > 0 {
		prefix, in, suffix := nextInst(layout)
		if prefix != "" {
			prog = append(prog, inst{lit: prefix})
		}
		if in.op != opLiteral {
			prog = append(prog, in)
		}
		layout = suffix
	}
	return prog
}

// nextInst decomposes layout into the next instruction, a literal prefix and
// the rest of the layout.
func nextInst(layout string) (prefix string, in inst, suffix string) {
	for i := 0; i < len(layout); i++ {
		if layout[i] == '.' || layout[i] == ',' {
			if in, suffix, ok := cutFrac(layout[i:]); ok {
				return layout[:i], in, suffix
			}
		}
		for op := opLongMonth; op < opInvalid; op++ {
			suffix, ok := strings.CutPrefix(layout[i:], op.String())
			if !ok {
				continue
			}
			if op.endsWord() && startsWithLowerCase(suffix) {
				continue
			}
			return layout[:i], inst{op: op}, suffix
		}
	}
	return layout, inst{op: opLiteral}, ""
}

// cutFrac cuts a fractional-second element off the front of layout, which
// must start with '.' or ','. The digits must be homogeneous, a run of '0's
// for a fixed width or a run of '9's for a trimmed one.
func cutFrac(layout string) (inst, string, bool) {
	if len(layout) < 2 || (layout[1] != '0' && layout[1] != '9') {
		return inst{}, "", false
	}
	c := layout[1]
	j := 2
	for j < len(layout) && layout[j] == c {
		j++
	}
	op := opFracZero
	if c == '9' {
		op = opFracNine
	}
	return inst{op: op, lit: layout[:j]}, layout[j:], true
}

// startsWithLowerCase reports whether the string has a lower-case letter at
// the beginning. Its purpose is to prevent matching strings like "Month" when
// looking for "Mon".
func startsWithLowerCase(s string) bool {
	return len(s) > 0 && 'a' <= s[0] && s[0] <= 'z'
}

// A FormatError reports a layout element for which the formatted value
// carries no information, such as an hour when formatting a [Date].
type FormatError struct {
	Layout     string
	LayoutElem string
}

// Error returns the string representation of a FormatError.
func (e *FormatError) Error() string {
	return fmt.Sprintf("formatting as %q: no value for %q", e.Layout, e.LayoutElem)
}

// components holds the pieces of information available to a single format or
// parse call. The has* fields say which of them the formatted type provides.
type components struct {
	date      Date
	time      Time
	offset    Offset
	hasDate   bool
	hasClock  bool
	hasOffset bool
}

// format formats c according to layout, using a stack buffer for typical
// layout lengths.
func format(layout string, c components) (string, error) {
	const bufSize = 64
	var b []byte
	max := len(layout) + 10
	if max < bufSize {
		var buf [bufSize]byte
		b = buf[:0]
	} else {
		b = make([]byte, 0, max)
	}
	b, err := appendFormat(b, layout, c)
	return string(b), err
}

// formatInto formats c according to layout and writes the result to w,
// returning the number of bytes written.
func formatInto(w io.Writer, layout string, c components) (int, error) {
	b, err := appendFormat(nil, layout, c)
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}

// appendFormat appends c formatted according to layout to b.
func appendFormat(b []byte, layout string, c components) ([]byte, error) {
	var (
		year, day, yday int
		month           time.Month
	)
	if c.hasDate {
		year, month, day, yday = absDate(c.date.abs(), true)
		yday++
	}
	hour, min, sec, nsec := c.time.HMSNano()

	prog := memo.Get(layout, parseLayout)

	for _, i := range prog {
		switch {
		case i.op.needsDate() && !c.hasDate,
			i.op.needsClock() && !c.hasClock,
			i.op.needsOffset() && !c.hasOffset:
			return b, &FormatError{Layout: layout, LayoutElem: i.String()}
		}
		switch i.op {
		case opLiteral:
			b = append(b, i.lit...)
		case opYear:
			y := int64(year) % 100
			if y < 0 {
				y = -y
			}
			if y < 10 {
				b = append(b, '0')
			}
			b = strconv.AppendInt(b, y, 10)
		case opUnderLongYear:
			b = append(b, '_')
			fallthrough
		case opLongYear:
			y := year
			if y < 0 {
				b = append(b, '-')
				y = -y
			}
			if y < 1000 {
				b = append(b, '0')
			}
			if y < 100 {
				b = append(b, '0')
			}
			if y < 10 {
				b = append(b, '0')
			}
			b = strconv.AppendInt(b, int64(y), 10)
		case opMonth:
			b = append(b, month.String()[:3]...)
		case opLongMonth:
			b = append(b, month.String()...)
		case opNumMonth:
			b = strconv.AppendInt(b, int64(month), 10)
		case opZeroMonth:
			b = appendPad2(b, int(month))
		case opWeekDay:
			b = append(b, c.date.Weekday().String()[:3]...)
		case opLongWeekDay:
			b = append(b, c.date.Weekday().String()...)
		case opDay:
			b = strconv.AppendInt(b, int64(day), 10)
		case opUnderDay:
			if day < 10 {
				b = append(b, ' ')
			}
			b = strconv.AppendInt(b, int64(day), 10)
		case opZeroDay:
			b = appendPad2(b, day)
		case opUnderYearDay:
			if yday < 100 {
				b = append(b, ' ')
				if yday < 10 {
					b = append(b, ' ')
				}
			}
			b = strconv.AppendInt(b, int64(yday), 10)
		case opZeroYearDay:
			if yday < 100 {
				b = append(b, '0')
				if yday < 10 {
					b = append(b, '0')
				}
			}
			b = strconv.AppendInt(b, int64(yday), 10)
		case opHour:
			b = appendPad2(b, hour)
		case opHour12:
			hr := hour % 12
			if hr == 0 {
				hr = 12
			}
			b = strconv.AppendInt(b, int64(hr), 10)
		case opZeroHour12:
			hr := hour % 12
			if hr == 0 {
				hr = 12
			}
			b = appendPad2(b, hr)
		case opMinute:
			b = strconv.AppendInt(b, int64(min), 10)
		case opZeroMinute:
			b = appendPad2(b, min)
		case opSecond:
			b = strconv.AppendInt(b, int64(sec), 10)
		case opZeroSecond:
			b = appendPad2(b, sec)
		case opPM:
			if hour >= 12 {
				b = append(b, "PM"...)
			} else {
				b = append(b, "AM"...)
			}
		case oppm:
			if hour >= 12 {
				b = append(b, "pm"...)
			} else {
				b = append(b, "am"...)
			}
		case opFracZero:
			b = appendFrac(b, i.lit[0], nsec, len(i.lit)-1, false)
		case opFracNine:
			b = appendFrac(b, i.lit[0], nsec, len(i.lit)-1, true)
		case opNumTZ:
			b = appendOffset(b, c.offset, false, false)
		case opNumColonTZ:
			b = appendOffset(b, c.offset, true, false)
		case opNumSecondsColonTZ:
			b = appendOffset(b, c.offset, true, true)
		case opISO8601TZ:
			if c.offset.IsUTC() {
				b = append(b, 'Z')
			} else {
				b = appendOffset(b, c.offset, false, false)
			}
		case opISO8601ColonTZ:
			if c.offset.IsUTC() {
				b = append(b, 'Z')
			} else {
				b = appendOffset(b, c.offset, true, false)
			}
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
	}
	return b, nil
}

// appendPad2 appends v as two decimal digits.
func appendPad2(b []byte, v int) []byte {
	if v < 10 {
		b = append(b, '0')
	}
	return strconv.AppendInt(b, int64(v), 10)
}

// appendFrac appends a fractional second of n digits, preceded by the given
// separator (a period or a comma). If trim is set, trailing zeros and an
// all-zero fraction are omitted.
func appendFrac(b []byte, sep byte, nsec, n int, trim bool) []byte {
	if n > 9 {
		n = 9
	}
	var buf [9]byte
	u := nsec
	for i := 8; i >= 0; i-- {
		buf[i] = byte(u%10) + '0'
		u /= 10
	}
	if trim {
		for n > 0 && buf[n-1] == '0' {
			n--
		}
		if n == 0 {
			return b
		}
	}
	b = append(b, sep)
	return append(b, buf[:n]...)
}

// appendOffset appends o as a signed numeric offset.
func appendOffset(b []byte, o Offset, colon, seconds bool) []byte {
	total := o.WholeSeconds()
	if total < 0 {
		b = append(b, '-')
		total = -total
	} else {
		b = append(b, '+')
	}
	b = appendPad2(b, total/3600)
	if colon {
		b = append(b, ':')
	}
	b = appendPad2(b, (total/60)%60)
	if seconds {
		b = append(b, ':')
		b = appendPad2(b, total%60)
	}
	return b
}

// parsed holds the raw components read while parsing a value. Fields are -1
// when the layout did not mention them (except for year and nsec, where 0 is
// the natural default).
type parsed struct {
	year   int
	month  int
	day    int
	yday   int
	hour   int
	hour12 int
	minute int
	second int
	nsec   int
	pm     bool
	hasMer bool

	offsetSecs int
	hasOffset  bool
}

// parseComponents runs the parsing instructions of layout against value and
// collects the raw components. Cross-component validation happens in
// resolveDate and resolveTime.
func parseComponents(p *parser, layout, value string) (parsed, error) {
	pr := parsed{month: -1, day: -1, yday: -1, hour: -1, hour12: -1, minute: -1, second: -1}
	// kept around for error reporting
	alayout, avalue := layout, value

	prog := memo.Get(layout, parseLayout)

	// Execute the parsing instructions
	for idx, i := range prog {
		p.setInst(i)
		switch i.op {
		case opLiteral:
			p.accept(i.lit)
		case opYear:
			pr.year = p.atoi(2)
			if pr.year >= 69 { // Unix time starts Dec 31 1969 in some time zones
				pr.year += 1900
			} else {
				pr.year += 2000
			}
		case opUnderLongYear:
			p.accept("_")
			fallthrough
		case opLongYear:
			neg := strings.HasPrefix(p.value, "-")
			if neg {
				p.value = p.value[1:]
			}
			p.peekDigit()
			pr.year = p.atoi(4)
			if neg {
				pr.year = -pr.year
			}
		case opMonth:
			pr.month = p.lookup(shortMonthNames) + 1
		case opLongMonth:
			pr.month = p.lookup(longMonthNames) + 1
		case opNumMonth, opZeroMonth:
			pr.month = p.num(i.op == opZeroMonth)
			if pr.month <= 0 || 12 < pr.month {
				return parsed{}, p.err(alayout, avalue, "month out of range")
			}
		case opWeekDay:
			// ignore weekday, except for parsing
			p.lookup(shortDayNames)
		case opLongWeekDay:
			// ignore weekday, except for parsing
			p.lookup(longDayNames)
		case opUnderDay:
			p.skipByte(' ')
			fallthrough
		case opDay, opZeroDay:
			pr.day = p.num(i.op == opZeroDay)
		case opUnderYearDay:
			p.skipByte(' ')
			p.skipByte(' ')
			fallthrough
		case opZeroYearDay:
			pr.yday = p.num3(i.op == opZeroYearDay)
		case opHour:
			pr.hour = p.num(false)
		case opHour12, opZeroHour12:
			pr.hour12 = p.num(i.op == opZeroHour12)
		case opMinute, opZeroMinute:
			pr.minute = p.num(i.op == opZeroMinute)
		case opSecond, opZeroSecond:
			pr.second = p.num(i.op == opZeroSecond)
			// Like package time, accept an unadvertised fractional second
			// directly after the seconds element.
			if idx+1 == len(prog) || (prog[idx+1].op != opFracZero && prog[idx+1].op != opFracNine) {
				pr.nsec = p.frac(9, false)
			}
		case opPM:
			pr.pm = p.lookupExact(meridiemUpper) == 1
			pr.hasMer = true
		case oppm:
			pr.pm = p.lookupExact(meridiemLower) == 1
			pr.hasMer = true
		case opFracZero:
			pr.nsec = p.frac(len(i.lit)-1, true)
		case opFracNine:
			pr.nsec = p.frac(len(i.lit)-1, false)
		case opNumTZ:
			pr.offsetSecs = p.offset(false, false, false)
			pr.hasOffset = true
		case opNumColonTZ:
			pr.offsetSecs = p.offset(false, true, false)
			pr.hasOffset = true
		case opNumSecondsColonTZ:
			pr.offsetSecs = p.offset(false, true, true)
			pr.hasOffset = true
		case opISO8601TZ:
			pr.offsetSecs = p.offset(true, false, false)
			pr.hasOffset = true
		case opISO8601ColonTZ:
			pr.offsetSecs = p.offset(true, true, false)
			pr.hasOffset = true
		default:
			panic(errors.New("invalid inst " + i.String()))
		}
		if p.hasErr {
			return parsed{}, p.err(alayout, avalue, "")
		}
	}
	if len(p.value) > 0 {
		return parsed{}, p.err(alayout, avalue, "extra text: "+strconv.Quote(p.value))
	}
	p.finish()
	return pr, nil
}

// resolveDate validates the parsed date components and combines them into a
// Date. Missing components default to zero or one.
func resolveDate(pr parsed, p *parser, layout, value string) (Date, error) {
	year, month, day, yday := pr.year, pr.month, pr.day, pr.yday
	if yday >= 0 {
		var (
			d int
			m int
		)
		if isLeap(year) {
			if yday == 31+29 {
				m = int(time.February)
				d = 29
			} else if yday > 31+29 {
				yday--
			}
		}
		if yday < 1 || yday > 365 {
			return 0, p.err(layout, value, "day-of-year out of range")
		}
		if m == 0 {
			m = (yday-1)/31 + 1
			if int(daysBefore[m]) < yday {
				m++
			}
			d = yday - int(daysBefore[m-1])
		}
		// If month, day already seen, yday's m, d must match.
		// Otherwise, set them from m, d.
		if month >= 0 && month != m {
			return 0, p.err(layout, value, "day-of-year does not match month")
		}
		month = m
		if day >= 0 && day != d {
			return 0, p.err(layout, value, "day-of-year does not match day")
		}
		day = d
	} else {
		if month < 0 {
			month = int(time.January)
		}
		if day < 0 {
			day = 1
		}
	}
	// Validate the day of the month.
	if day < 1 || day > daysIn(time.Month(month), year) {
		return 0, p.err(layout, value, "day out of range")
	}
	return Of(year, time.Month(month), day), nil
}

// resolveTime validates the parsed clock components and combines them into a
// Time. Missing components default to zero.
func resolveTime(pr parsed, p *parser, layout, value string) (Time, error) {
	hour := pr.hour
	if pr.hour12 >= 0 {
		if pr.hour12 > 12 {
			return Time{}, p.err(layout, value, "hour out of range")
		}
		hour = pr.hour12
		// Without an AM/PM mark the 12-hour value is used as is, like in
		// package time.
		if pr.hasMer {
			hour %= 12
			if pr.pm {
				hour += 12
			}
		}
	}
	if hour < 0 {
		hour = 0
	}
	if hour > 23 {
		return Time{}, p.err(layout, value, "hour out of range")
	}
	minute, second := pr.minute, pr.second
	if minute < 0 {
		minute = 0
	}
	if second < 0 {
		second = 0
	}
	if minute > 59 {
		return Time{}, p.err(layout, value, "minute out of range")
	}
	if second > 59 {
		return Time{}, p.err(layout, value, "second out of range")
	}
	return timeOf(hour, minute, second, pr.nsec), nil
}

// ParseDate parses a formatted string and returns the date value it
// represents. See the documentation for the constant called [Layout] to see
// how to represent the format. The second argument must be parseable using
// the format string (layout) provided as the first argument.
//
// Elements omitted from the layout are assumed to be zero or, when zero is
// impossible, one. Clock and offset elements are validated for range and
// then discarded. The day of the week is checked for syntax but is otherwise
// ignored.
//
// For layouts specifying the two-digit year 06, a value NN >= 69 will be
// treated as 19NN and a value NN < 69 will be treated as 20NN.
func ParseDate(layout, value string) (Date, error) {
	p := newParser(value)
	pr, err := parseComponents(p, layout, value)
	if err != nil {
		return 0, err
	}
	if _, err := resolveTime(pr, p, layout, value); err != nil {
		return 0, err
	}
	return resolveDate(pr, p, layout, value)
}

// ParseTime parses a formatted string and returns the time-of-day value it
// represents. Date and offset elements are validated for range and then
// discarded.
func ParseTime(layout, value string) (Time, error) {
	p := newParser(value)
	pr, err := parseComponents(p, layout, value)
	if err != nil {
		return Time{}, err
	}
	if _, err := resolveDate(pr, p, layout, value); err != nil {
		return Time{}, err
	}
	return resolveTime(pr, p, layout, value)
}

// ParseDateTime parses a formatted string and returns the date-time value it
// represents. Offset elements are parsed and discarded.
func ParseDateTime(layout, value string) (DateTime, error) {
	p := newParser(value)
	pr, err := parseComponents(p, layout, value)
	if err != nil {
		return DateTime{}, err
	}
	d, err := resolveDate(pr, p, layout, value)
	if err != nil {
		return DateTime{}, err
	}
	t, err := resolveTime(pr, p, layout, value)
	if err != nil {
		return DateTime{}, err
	}
	return d.WithTime(t), nil
}

// ParseOffsetDateTime parses a formatted string and returns the instant it
// represents. If the layout carries no offset element, the date-time is
// assumed to be UTC.
func ParseOffsetDateTime(layout, value string) (OffsetDateTime, error) {
	p := newParser(value)
	pr, err := parseComponents(p, layout, value)
	if err != nil {
		return OffsetDateTime{}, err
	}
	d, err := resolveDate(pr, p, layout, value)
	if err != nil {
		return OffsetDateTime{}, err
	}
	t, err := resolveTime(pr, p, layout, value)
	if err != nil {
		return OffsetDateTime{}, err
	}
	o := UTC
	if pr.hasOffset {
		o, err = OffsetSeconds(pr.offsetSecs)
		if err != nil {
			return OffsetDateTime{}, err
		}
	}
	return d.WithTime(t).AssumeOffset(o), nil
}

// Format returns a textual representation of the date formatted according to
// the layout defined by the argument. See the documentation for the constant
// called [Layout] to see how to represent the layout format.
//
// Formatting fails if the layout contains clock or offset elements, as a Date
// carries no values for them.
func (d Date) Format(layout string) (string, error) {
	return format(layout, d.fmtComponents())
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (d Date) AppendFormat(b []byte, layout string) ([]byte, error) {
	return appendFormat(b, layout, d.fmtComponents())
}

// FormatInto is like Format but writes the textual representation to w,
// returning the number of bytes written.
func (d Date) FormatInto(w io.Writer, layout string) (int, error) {
	return formatInto(w, layout, d.fmtComponents())
}

func (d Date) fmtComponents() components {
	return components{date: d, hasDate: true}
}

// Format returns a textual representation of the time formatted according to
// the layout defined by the argument. See the documentation for the constant
// called [Layout] to see how to represent the layout format.
//
// Formatting fails if the layout contains date or offset elements, as a Time
// carries no values for them.
func (t Time) Format(layout string) (string, error) {
	return format(layout, t.fmtComponents())
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (t Time) AppendFormat(b []byte, layout string) ([]byte, error) {
	return appendFormat(b, layout, t.fmtComponents())
}

// FormatInto is like Format but writes the textual representation to w,
// returning the number of bytes written.
func (t Time) FormatInto(w io.Writer, layout string) (int, error) {
	return formatInto(w, layout, t.fmtComponents())
}

func (t Time) fmtComponents() components {
	return components{time: t, hasClock: true}
}

// Format returns a textual representation of the date-time formatted
// according to the layout defined by the argument. See the documentation for
// the constant called [Layout] to see how to represent the layout format.
//
// Formatting fails if the layout contains offset elements, as a DateTime
// carries no value for them.
func (dt DateTime) Format(layout string) (string, error) {
	return format(layout, dt.fmtComponents())
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (dt DateTime) AppendFormat(b []byte, layout string) ([]byte, error) {
	return appendFormat(b, layout, dt.fmtComponents())
}

// FormatInto is like Format but writes the textual representation to w,
// returning the number of bytes written.
func (dt DateTime) FormatInto(w io.Writer, layout string) (int, error) {
	return formatInto(w, layout, dt.fmtComponents())
}

func (dt DateTime) fmtComponents() components {
	return components{date: dt.date, time: dt.time, hasDate: true, hasClock: true}
}

// Format returns a textual representation of the instant formatted according
// to the layout defined by the argument, with the date and time local to the
// offset. See the documentation for the constant called [Layout] to see how
// to represent the layout format.
func (odt OffsetDateTime) Format(layout string) (string, error) {
	return format(layout, odt.fmtComponents())
}

// AppendFormat is like Format but appends the textual representation to b and
// returns the extended buffer.
func (odt OffsetDateTime) AppendFormat(b []byte, layout string) ([]byte, error) {
	return appendFormat(b, layout, odt.fmtComponents())
}

// FormatInto is like Format but writes the textual representation to w,
// returning the number of bytes written.
func (odt OffsetDateTime) FormatInto(w io.Writer, layout string) (int, error) {
	return formatInto(w, layout, odt.fmtComponents())
}

func (odt OffsetDateTime) fmtComponents() components {
	dt := odt.DateTime()
	return components{date: dt.date, time: dt.time, offset: odt.offset, hasDate: true, hasClock: true, hasOffset: true}
}

// match reports whether s1 and s2 match ignoring case.
// It is assumed s1 and s2 are the same length.
func match(s1, s2 string) bool {
	for i := 0; i < len(s1); i++ {
		c1 := s1[i]
		c2 := s2[i]
		if c1 != c2 {
			// Switch to lower-case; 'a'-'A' is known to be a single bit.
			c1 |= 'a' - 'A'
			c2 |= 'a' - 'A'
			if c1 != c2 || c1 < 'a' || c1 > 'z' {
				return false
			}
		}
	}
	return true
}

func isDigit(s string, i int) bool {
	if len(s) <= i {
		return false
	}
	return '0' <= s[i] && s[i] <= '9'
}

type parser struct {
	inst   inst
	hasErr bool
	value  string
	valEl  string
	errMsg string
}

func newParser(value string) *parser {
	return &parser{
		value: value,
	}
}

// setInst sets the current instruction and input offset for error reporting.
func (p *parser) setInst(i inst) {
	p.inst = i
	p.valEl = p.value
}

// finish signals that parsing is finished and the parser is only being kept
// around for error reporting.
func (p *parser) finish() {
	p.inst = inst{op: opInvalid}
	p.valEl = ""
}

// parseFailed signals that the parse has failed at the current instruction.
func (p *parser) parseFailed() {
	p.hasErr = true
}

// invalid signals that the parse succeeded, but the values were invalid
// (e.g. out of range). msg describes the validation failure.
func (p *parser) invalid(msg string) {
	p.hasErr = true
	p.errMsg = msg
}

func (p *parser) err(layout, value, msg string) error {
	// We call strings.Clone in this function to prevent the Parse functions
	// from allocating in the happy path. As parts of the input appear in the
	// error message, the compiler has to mark the value argument as
	// potentially escaping. Cloning them here means the input itself never
	// escapes. This means we save an allocation in the happy path, at the
	// cost of an extra allocation in the sad path.
	//
	// It would be great if we could have our cake and eat it to, but so far,
	// the compiler is not smart enough.
	if msg == "" {
		// Cloned for the same reason as value below: reading p.errMsg
		// uncloned would leak *p, and with it the input, to the heap.
		msg = strings.Clone(p.errMsg)
	}
	v := strings.Clone(value)
	if msg == "" {
		ve := strings.Clone(p.valEl)
		le := strings.Clone(p.inst.String())
		return &ParseError{
			Layout:     layout,
			Value:      v,
			LayoutElem: le,
			ValueElem:  ve,
		}
	}
	return &ParseError{
		Layout:  layout,
		Value:   v,
		Message: msg,
	}
}

// skipByte skips the given byte, if the input starts with it.
func (p *parser) skipByte(b byte) {
	if len(p.value) > 0 && p.value[0] == b {
		p.value = p.value[1:]
	}
}

// trimByte skips a run of the given byte.
func (p *parser) trimByte(b byte) {
	for len(p.value) > 0 && p.value[0] == b {
		p.value = p.value[1:]
	}
}

// accept a literal string, treating runs of space characters as equivalent.
func (p *parser) accept(lit string) {
	for len(lit) > 0 {
		if lit[0] == ' ' {
			if p.value != "" && p.value[0] != ' ' {
				p.parseFailed()
				return
			}
			p.trimByte(' ')
			lit = strings.TrimLeft(lit, " ")
			continue
		}
		if p.value == "" || p.value[0] != lit[0] {
			p.parseFailed()
			return
		}
		lit, p.value = lit[1:], p.value[1:]
	}
}

// atoi accepts the next i bytes of input as an integer.
func (p *parser) atoi(i int) int {
	if len(p.value) < i {
		p.parseFailed()
		return 0
	}
	v, err := strconv.Atoi(p.value[:i])
	if err != nil {
		p.parseFailed()
		return 0
	}
	p.value = p.value[i:]
	return v
}

// getnumN parses s[0:1], …, or s[0:N] (fixed forces s[0:N])
// as a decimal integer.
func (p *parser) getnumN(N int, fixed bool) int {
	var n, i int
	for i = 0; i < N && isDigit(p.value, i); i++ {
		n = n*10 + int(p.value[i]-'0')
	}
	if i == 0 || (fixed && i != N) {
		p.parseFailed()
		return 0
	}
	p.value = p.value[i:]
	return n
}

// num parses s[:1] or s[:2] (fixed forces s[:2]) as a decimal integer.
func (p *parser) num(fixed bool) int {
	return p.getnumN(2, fixed)
}

// num parser s[:1], s[:2] or s[:3] (fixed forces s[:3]) as a decimal integer.
func (p *parser) num3(fixed bool) int {
	return p.getnumN(3, fixed)
}

// frac parses a fractional second of up to nine digits, preceded by a period
// or a comma. If fixed, the separator and exactly n digits must be present;
// otherwise the whole component is optional.
func (p *parser) frac(n int, fixed bool) int {
	if len(p.value) < 2 || (p.value[0] != '.' && p.value[0] != ',') || !isDigit(p.value, 1) {
		if fixed {
			p.parseFailed()
		}
		return 0
	}
	p.value = p.value[1:]
	var v, i int
	for i = 0; i < 9 && isDigit(p.value, i); i++ {
		v = v*10 + int(p.value[i]-'0')
	}
	if fixed && i != n {
		p.parseFailed()
		return 0
	}
	for j := i; j < 9; j++ {
		v *= 10
	}
	p.value = p.value[i:]
	return v
}

// offset parses a numeric UTC offset and returns it in seconds. zulu allows a
// literal Z for UTC, colon expects colons between the components and seconds
// expects a seconds component.
func (p *parser) offset(zulu, colon, seconds bool) int {
	if zulu && len(p.value) > 0 && p.value[0] == 'Z' {
		p.value = p.value[1:]
		return 0
	}
	if len(p.value) == 0 || (p.value[0] != '+' && p.value[0] != '-') {
		p.parseFailed()
		return 0
	}
	neg := p.value[0] == '-'
	p.value = p.value[1:]
	hh := p.atoi(2)
	if colon {
		p.accept(":")
	}
	mm := p.atoi(2)
	ss := 0
	if seconds {
		p.accept(":")
		ss = p.atoi(2)
	}
	if p.hasErr {
		return 0
	}
	if hh > 25 || mm > 59 || ss > 59 {
		p.invalid("offset out of range")
		return 0
	}
	secs := hh*3600 + mm*60 + ss
	if neg {
		secs = -secs
	}
	return secs
}

// peekDigit ensures that the current value starts with a digit, without
// advancing the input.
func (p *parser) peekDigit() {
	if !isDigit(p.value, 0) {
		p.parseFailed()
	}
}

// lookupExact is lookup with case-sensitive matching.
func (p *parser) lookupExact(table []string) int {
	for i, v := range table {
		if strings.HasPrefix(p.value, v) {
			p.value = p.value[len(v):]
			return i
		}
	}
	p.parseFailed()
	return 0
}

// lookup a value from a table and accept a case-insensitive match.
func (p *parser) lookup(table []string) int {
	for i, v := range table {
		if len(p.value) >= len(v) && match(p.value[0:len(v)], v) {
			p.value = p.value[len(v):]
			return i
		}
	}
	p.parseFailed()
	return 0
}

// ParseError describes a problem parsing a formatted date or time string.
type ParseError struct {
	Layout     string
	Value      string
	LayoutElem string
	ValueElem  string
	Message    string
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("parsing %q as %q: cannot parse %q as %q", e.Value, e.Layout, e.ValueElem, e.LayoutElem)
	}
	return fmt.Sprintf("parsing %q: %s", e.Value, e.Message)
}
