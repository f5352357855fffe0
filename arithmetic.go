package jdn

// The conversions follow Meeus, Astronomical Algorithms, chapter 7, with the
// fractional constants replaced by exact integer floor divisions:
//
//	floor(365.25*n)         = floorDiv(1461*n, 4)
//	floor(30.6001*k)        = floorDiv(153*k, 5)       for 4 <= k <= 15
//	floor((b-122.1)/365.25) = floorDiv(100*b-12210, 36525)
//	floor(x/30.6001)        = floorDiv(10000*x, 306001)
//
// Because JDN counts from noon no half day offset is needed and nothing is
// rounded. Floor division keeps the formulas exact for negative day numbers.

// GregorianToJDN returns the day number of a date in the reform aware
// Gregorian calendar. Dates before 1582-10-15 are computed with the Julian
// rule, the ten days skipped by the reform are a *ValidationError.
func GregorianToJDN(year, month, day int) (JDN, error) {
	if err := validate(Gregorian, year, month, day); err != nil {
		return 0, err
	}
	return toJDN(astronomicalYear(year), month, day, onOrAfterReform(year, month, day)), nil
}

// JulianToJDN returns the day number of a date in the proleptic Julian calendar.
func JulianToJDN(year, month, day int) (JDN, error) {
	if err := validate(Julian, year, month, day); err != nil {
		return 0, err
	}
	return toJDN(astronomicalYear(year), month, day, false), nil
}

// ProlepticGregorianToJDN applies the Gregorian rule to any date, ignoring the reform.
func ProlepticGregorianToJDN(year, month, day int) (JDN, error) {
	if err := validate(ProlepticGregorian, year, month, day); err != nil {
		return 0, err
	}
	return toJDN(astronomicalYear(year), month, day, true), nil
}

// JDNToGregorian returns the reform aware Gregorian date of j: the Gregorian
// date from ReformJDN on, the Julian date before it.
func JDNToGregorian(j JDN) (CivilDate, error) {
	if err := j.check(); err != nil {
		return CivilDate{}, err
	}
	return fromJDN(int64(j), j >= ReformJDN), nil
}

// JDNToJulian returns the date of j in a continuously extended Julian calendar.
func JDNToJulian(j JDN) (CivilDate, error) {
	if err := j.check(); err != nil {
		return CivilDate{}, err
	}
	return fromJDN(int64(j), false), nil
}

// JDNToProlepticGregorian returns the date of j with the Gregorian rule
// applied to every day.
func JDNToProlepticGregorian(j JDN) (CivilDate, error) {
	if err := j.check(); err != nil {
		return CivilDate{}, err
	}
	return fromJDN(int64(j), true), nil
}

func onOrAfterReform(year, month, day int) bool {
	switch {
	case year != 1582:
		return year > 1582
	case month != 10:
		return month > 10
	}
	return day >= 15
}

// toJDN takes an astronomical year. The caller validates the date.
func toJDN(y int64, month, day int, gregorian bool) JDN {
	m := int64(month)
	if m <= 2 {
		y--
		m += 12
	}
	var b int64
	if gregorian {
		a := floorDiv(y, 100)
		b = 2 - a + floorDiv(a, 4)
	}
	return JDN(floorDiv(1461*(y+4716), 4) + floorDiv(153*(m+1), 5) + int64(day) + b - 1524)
}

func fromJDN(z int64, gregorian bool) CivilDate {
	a := z
	if gregorian {
		alpha := floorDiv(4*z-7468865, 146097)
		a = z + 1 + alpha - floorDiv(alpha, 4)
	}
	b := a + 1524
	c := floorDiv(100*b-12210, 36525)
	d := floorDiv(1461*c, 4)
	e := floorDiv(10000*(b-d), 306001)

	day := b - d - floorDiv(306001*e, 10000)
	month := e - 1
	if e >= 14 {
		month = e - 13
	}
	year := c - 4716
	if month <= 2 {
		year = c - 4715
	}
	return CivilDate{Year: historicalYear(year), Month: int(month), Day: int(day)}
}
