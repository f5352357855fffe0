package jdn

import (
	"fmt"
	"time"
)

// Weekday numbers the days of the week from Monday (0) to Sunday (6).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayOfWeek returns the weekday of j. JDN 0 was a Monday.
func DayOfWeek(j JDN) Weekday {
	return Weekday(floorMod(int64(j), 7))
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// TimeWeekday converts to the Sunday based time.Weekday.
func (d Weekday) TimeWeekday() time.Weekday {
	return time.Weekday((int(d) + 1) % 7)
}
