package jdn

import (
	"fmt"
	"strings"

	"cloudeng.io/datetime"
)

// Calendar selects the rules used to interpret a CivilDate.
type Calendar int

const (
	//Gregorian is reform aware: dates before 1582-10-15 follow the Julian rules
	//and 1582-10-05 to 1582-10-14 do not exist
	Gregorian Calendar = iota
	//Julian is the proleptic Julian calendar, a leap year every 4 years
	Julian
	//ProlepticGregorian applies the Gregorian rules to every date, as time.Time does
	ProlepticGregorian
)

var calendarNames = [...]string{
	Gregorian:          "gregorian",
	Julian:             "julian",
	ProlepticGregorian: "proleptic-gregorian",
}

func (c Calendar) String() string {
	if c < 0 || int(c) >= len(calendarNames) {
		return fmt.Sprintf("Calendar(%d)", int(c))
	}
	return calendarNames[c]
}

// ParseCalendar parses a calendar name case-insensitively. An empty string
// selects Gregorian.
func ParseCalendar(s string) (Calendar, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Gregorian, nil
	}
	for i, name := range calendarNames {
		if s == name {
			return Calendar(i), nil
		}
	}
	return 0, &SyntaxError{Input: s, Expect: strings.Join(calendarNames[:], ", ")}
}

// CivilDate is a calendar date in historical year numbering, there is no
// year 0. Whether it is valid depends on the Calendar it is read in.
type CivilDate struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

func (d CivilDate) String() string {
	return FormatIso(d)
}

// Validate returns a *ValidationError or *RangeError if d does not exist in cal.
func (d CivilDate) Validate(cal Calendar) error {
	return validate(cal, d.Year, d.Month, d.Day)
}

var julianDaysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// usesGregorianRules reports if the Gregorian leap rule applies to year in cal.
func usesGregorianRules(cal Calendar, year int) bool {
	switch cal {
	case ProlepticGregorian:
		return true
	case Gregorian:
		return year >= 1582
	}
	return false
}

// IsLeapYear reports if the historical year has a 29th of February in cal.
func IsLeapYear(cal Calendar, year int) bool {
	a := astronomicalYear(year)
	if usesGregorianRules(cal, year) {
		return datetime.IsLeap(int(a))
	}
	return floorMod(a, 4) == 0
}

// DaysInMonth returns the number of the last day of month in year, or 0 for
// a month outside 1..12. October 1582 in the Gregorian calendar still ends
// on the 31st, its missing days are rejected by Validate.
func DaysInMonth(cal Calendar, year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if usesGregorianRules(cal, year) {
		return int(datetime.DaysInMonth(int(astronomicalYear(year)), datetime.Month(month)))
	}
	if month == 2 && IsLeapYear(cal, year) {
		return 29
	}
	return julianDaysInMonth[month-1]
}

func inReformGap(year, month, day int) bool {
	return year == 1582 && month == 10 && day > 4 && day < 15
}

func validate(cal Calendar, year, month, day int) error {
	invalid := func(reason string) error {
		return &ValidationError{Calendar: cal, Year: year, Month: month, Day: day, Reason: reason}
	}
	if cal < Gregorian || cal > ProlepticGregorian {
		return invalid("unknown calendar")
	}
	if year == 0 {
		return invalid("there is no year 0")
	}
	if year < MinYear || year > MaxYear {
		return &RangeError{What: "year", Value: int64(year), Min: MinYear, Max: MaxYear}
	}
	if month < 1 || month > 12 {
		return invalid("month out of range 1..12")
	}
	if n := DaysInMonth(cal, year, month); day < 1 || day > n {
		return invalid(fmt.Sprintf("day out of range 1..%d", n))
	}
	if cal == Gregorian && inReformGap(year, month, day) {
		return invalid("day skipped by the 1582 calendar reform")
	}
	return nil
}
