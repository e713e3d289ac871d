// Copyright 2025 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
)

// A RangeError reports that a component passed to a checked constructor was
// outside its valid range. It is only ever returned by exported
// constructors; values built by the package itself are trusted to be in
// range.
type RangeError struct {
	// Name of the component, e.g. "hour".
	Name string
	// Min and Max are the inclusive bounds of the valid range.
	Min, Max int64
	// Value is the offending value.
	Value int64
	// Conditional indicates that Min and/or Max depend on the values of
	// other components (e.g. the valid days of a month depend on the month
	// and year).
	Conditional bool
}

// Error returns the string representation of a RangeError.
func (e *RangeError) Error() string {
	if e.Conditional {
		return fmt.Sprintf("datetime: %s %d is out of range [%d, %d], given values of other components", e.Name, e.Value, e.Min, e.Max)
	}
	return fmt.Sprintf("datetime: %s %d is out of range [%d, %d]", e.Name, e.Value, e.Min, e.Max)
}

// rangeErr is a shorthand to build a *RangeError.
func rangeErr(name string, value, min, max int64) error {
	return &RangeError{Name: name, Min: min, Max: max, Value: value}
}

// rangeErrCond is like rangeErr, for bounds that depend on other components.
func rangeErrCond(name string, value, min, max int64) error {
	return &RangeError{Name: name, Min: min, Max: max, Value: value, Conditional: true}
}
