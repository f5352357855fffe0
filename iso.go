package jdn

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// FormatIso renders d as ISO-8601 extended YYYY-MM-DD. Negative (BCE) years
// get a leading '-' and at least four digits, -44 becomes "-0044".
// d is expected to be valid, year 0 does not exist.
func FormatIso(d CivilDate) string {
	var b strings.Builder
	b.Grow(11)
	y := d.Year
	if y < 0 {
		b.WriteByte('-')
		y = -y
	}
	pad(&b, y, 4)
	b.WriteByte('-')
	pad(&b, d.Month, 2)
	b.WriteByte('-')
	pad(&b, d.Day, 2)
	return b.String()
}

func pad(b *strings.Builder, v, width int) {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

var isoDateRe = regexp.MustCompile(`^([+-]?)([0-9]{4,7})-([0-9]{2})-([0-9]{2})$`)

const isoDateFormat = "[+|-]YYYY-MM-DD"

// ParseIso parses [+|-]YYYY-MM-DD into a date validated against cal.
// Full-width digits and the common Unicode dashes are accepted.
// Malformed text is a *SyntaxError, a date that does not exist in cal a
// *ValidationError.
func ParseIso(s string, cal Calendar) (CivilDate, error) {
	in, err := normalize(s)
	if err != nil {
		return CivilDate{}, &SyntaxError{Input: s, Expect: isoDateFormat}
	}
	m := isoDateRe.FindStringSubmatch(in)
	if m == nil {
		return CivilDate{}, &SyntaxError{Input: s, Expect: isoDateFormat}
	}
	//the pattern limits every field to 7 digits, Atoi cannot fail
	year, _ := strconv.Atoi(m[2])
	month, _ := strconv.Atoi(m[3])
	day, _ := strconv.Atoi(m[4])
	if m[1] == "-" {
		year = -year
	}
	d := CivilDate{Year: year, Month: month, Day: day}
	if err := d.Validate(cal); err != nil {
		return CivilDate{}, err
	}
	return d, nil
}

// ParseJDN parses a decimal day number and checks it against [MinJDN, MaxJDN].
func ParseJDN(s string) (JDN, error) {
	in, err := normalize(s)
	if err != nil {
		return 0, &SyntaxError{Input: s, Expect: "a decimal day number"}
	}
	v, err := strconv.ParseInt(in, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			//ParseInt saturates to the nearest int64 on overflow
			return 0, &RangeError{What: "jdn", Value: v, Min: int64(MinJDN), Max: int64(MaxJDN)}
		}
		return 0, &SyntaxError{Input: s, Expect: "a decimal day number"}
	}
	j := JDN(v)
	if err := j.check(); err != nil {
		return 0, err
	}
	return j, nil
}
