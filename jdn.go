// Package jdn converts between Julian Day Numbers and the proleptic Gregorian
// and Julian calendars.
//
// Years use historical numbering: there is no year 0, year -1 is 1 BCE.
// The Gregorian calendar is reform aware, dates before 1582-10-15 follow the
// Julian rules. All functions are pure and safe for concurrent use.
package jdn

import (
	"encoding/json"
	"strconv"
)

// JDN is a Julian Day Number, the count of days since noon of
// 1 January 4713 BCE in the proleptic Julian calendar.
type JDN int64

const (
	//Range of supported day numbers, about 2.7 million years either side of the epoch
	MinJDN JDN = -1000000000
	MaxJDN JDN = 1000000000

	//Range of supported years on the forward path
	MinYear = -1000000
	MaxYear = 1000000

	//ReformJDN is the first day of the Gregorian calendar, 1582-10-15
	ReformJDN JDN = 2299161
)

// Valid reports if j lies in [MinJDN, MaxJDN]
func (j JDN) Valid() bool {
	return j >= MinJDN && j <= MaxJDN
}

func (j JDN) check() error {
	if !j.Valid() {
		return &RangeError{What: "jdn", Value: int64(j), Min: int64(MinJDN), Max: int64(MaxJDN)}
	}
	return nil
}

func (j JDN) String() string {
	return strconv.FormatInt(int64(j), 10)
}

// MarshalText encodes j as a decimal string so JSON and YAML consumers with
// narrow number types never truncate it.
func (j JDN) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(j), 10), nil
}

// UnmarshalText parses a decimal day number and checks its range.
func (j *JDN) UnmarshalText(text []byte) error {
	v, err := ParseJDN(string(text))
	if err != nil {
		return err
	}
	*j = v
	return nil
}

// UnmarshalJSON accepts both a quoted string and a bare JSON number.
func (j *JDN) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return j.UnmarshalText([]byte(s))
	}
	return j.UnmarshalText(data)
}

// floorDiv and floorMod round toward negative infinity, Go's / and % truncate.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
