package jdn

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatIso(t *testing.T) {
	cases := []struct {
		date CivilDate
		want string
	}{
		{CivilDate{-44, 3, 15}, "-0044-03-15"},
		{CivilDate{2000, 1, 1}, "2000-01-01"},
		{CivilDate{5, 12, 9}, "0005-12-09"},
		{CivilDate{-1, 12, 31}, "-0001-12-31"},
		{CivilDate{-4713, 1, 1}, "-4713-01-01"},
		{CivilDate{12345, 6, 7}, "12345-06-07"},
		{CivilDate{-12345, 6, 7}, "-12345-06-07"},
	}
	for _, c := range cases {
		if have := FormatIso(c.date); have != c.want {
			t.Errorf("Want %s, have %s", c.want, have)
		}
	}
}

func TestFormatIsoNoYearZero(t *testing.T) {
	for j := JDN(1700000); j < 1740000; j += 11 {
		d, _ := JDNToGregorian(j)
		s := FormatIso(d)
		if strings.HasPrefix(strings.TrimPrefix(s, "-"), "0000") {
			t.Fatalf("JDN %d: %s", j, s)
		}
		if (d.Year < 0) != strings.HasPrefix(s, "-") {
			t.Fatalf("JDN %d: sign of %s does not match year %d", j, s, d.Year)
		}
	}
}

func TestParseIso(t *testing.T) {
	cases := []struct {
		in   string
		cal  Calendar
		want CivilDate
	}{
		{"2000-01-01", Gregorian, CivilDate{2000, 1, 1}},
		{"+2000-01-01", Gregorian, CivilDate{2000, 1, 1}},
		{"-0044-03-15", Julian, CivilDate{-44, 3, 15}},
		{"−0044-03-15", Julian, CivilDate{-44, 3, 15}},
		{"２０００－０２－２９", Gregorian, CivilDate{2000, 2, 29}},
		{"  1582-10-10 ", Julian, CivilDate{1582, 10, 10}},
		{"1000000-12-31", Gregorian, CivilDate{1000000, 12, 31}},
	}
	for _, c := range cases {
		have, err := ParseIso(c.in, c.cal)
		if err != nil {
			t.Errorf("%q: unexpected error %s", c.in, err)
			continue
		}
		if have != c.want {
			t.Errorf("%q: Want %v, have %v", c.in, c.want, have)
		}
	}
}

func TestParseIsoErrors(t *testing.T) {
	cases := []struct {
		in   string
		cal  Calendar
		want error
	}{
		{"20000101", Gregorian, ErrSyntax},
		{"2000-1-01", Gregorian, ErrSyntax},
		{"12345678-01-01", Gregorian, ErrSyntax},
		{"", Gregorian, ErrSyntax},
		{"2000-13-01", Gregorian, ErrValidation},
		{"2001-02-29", Julian, ErrValidation},
		{"1582-10-10", Gregorian, ErrValidation},
		{"0000-01-01", Gregorian, ErrValidation},
		{"-0000-01-01", Julian, ErrValidation},
		{"-1000001-01-01", Julian, ErrRange},
	}
	for _, c := range cases {
		_, err := ParseIso(c.in, c.cal)
		if !errors.Is(err, c.want) {
			t.Errorf("%q: Want %v, have %v", c.in, c.want, err)
		}
	}
}

func TestParseIsoRoundTrip(t *testing.T) {
	for j := JDN(-200000); j < 3000000; j += 997 {
		d, _ := JDNToGregorian(j)
		have, err := ParseIso(FormatIso(d), Gregorian)
		if err != nil {
			t.Fatalf("%v: %s", d, err)
		}
		if have != d {
			t.Fatalf("Want %v, have %v", d, have)
		}
	}
}

func TestParseJDN(t *testing.T) {
	cases := []struct {
		in   string
		want JDN
	}{
		{"2451545", 2451545},
		{" -5 ", -5},
		{"＋２４５１５４５", 2451545},
		{"−100", -100},
		{"1000000000", MaxJDN},
	}
	for _, c := range cases {
		have, err := ParseJDN(c.in)
		if err != nil {
			t.Errorf("%q: unexpected error %s", c.in, err)
			continue
		}
		if have != c.want {
			t.Errorf("%q: Want %d, have %d", c.in, c.want, have)
		}
	}

	errs := []struct {
		in   string
		want error
	}{
		{"abc", ErrSyntax},
		{"1.5", ErrSyntax},
		{"", ErrSyntax},
		{"1000000001", ErrRange},
		{"99999999999999999999", ErrRange},
		{"-99999999999999999999", ErrRange},
	}
	for _, c := range errs {
		if _, err := ParseJDN(c.in); !errors.Is(err, c.want) {
			t.Errorf("%q: Want %v, have %v", c.in, c.want, err)
		}
	}
}
