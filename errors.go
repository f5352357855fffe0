package jdn

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("invalid calendar date")  //Matched by every *ValidationError
	ErrRange      = errors.New("out of supported range") //Matched by every *RangeError
	ErrSyntax     = errors.New("malformed input")        //Matched by every *SyntaxError
)

// ValidationError is returned when a month or day does not exist in the
// given year and calendar. Values are never clamped.
type ValidationError struct {
	Calendar Calendar
	Year     int
	Month    int
	Day      int
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s date %d-%02d-%02d: %s", e.Calendar, e.Year, e.Month, e.Day, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// RangeError is returned when a day number or year lies outside the
// supported range.
type RangeError struct {
	What  string
	Value int64
	Min   int64
	Max   int64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d out of supported range [%d, %d]", e.What, e.Value, e.Min, e.Max)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrRange
}

// SyntaxError is returned by the parse functions for text that is not a date
// or day number at all.
type SyntaxError struct {
	Input  string
	Expect string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed input %q, expected %s", e.Input, e.Expect)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}
