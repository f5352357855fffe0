package jdn

import (
	"time"
)

// This file converts between day numbers and time.Time, which uses the
// proleptic Gregorian calendar with astronomical years.

// FromTime returns the day number of the calendar date of t in t's own
// location. The time of day is ignored.
func FromTime(t time.Time) (JDN, error) {
	y, m, d := t.Date()
	j := toJDN(int64(y), int(m), d, true)
	if err := j.check(); err != nil {
		return 0, err
	}
	return j, nil
}

// ToTime returns noon UTC of day j, the instant the day number starts.
func ToTime(j JDN) (time.Time, error) {
	d, err := JDNToProlepticGregorian(j)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(ToAstronomical(d.Year), time.Month(d.Month), d.Day, 12, 0, 0, 0, time.UTC), nil
}
