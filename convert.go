package jdn

// ConversionResult describes one day in every supported representation.
type ConversionResult struct {
	JDN       JDN       `json:"jdn" yaml:"jdn"`
	Gregorian CivilDate `json:"gregorian" yaml:"gregorian"`
	Julian    CivilDate `json:"julian" yaml:"julian"`
	ISO       string    `json:"iso" yaml:"iso"` //ISO-8601 form of Gregorian
	DayOfWeek Weekday   `json:"day_of_week" yaml:"day_of_week"`
}

// DescribeJDN expands j into its reform aware Gregorian date, its Julian
// date, the ISO text of the Gregorian date and its weekday.
func DescribeJDN(j JDN) (ConversionResult, error) {
	greg, err := JDNToGregorian(j)
	if err != nil {
		return ConversionResult{}, err
	}
	jul, err := JDNToJulian(j)
	if err != nil {
		return ConversionResult{}, err
	}
	return ConversionResult{
		JDN:       j,
		Gregorian: greg,
		Julian:    jul,
		ISO:       FormatIso(greg),
		DayOfWeek: DayOfWeek(j),
	}, nil
}

// DescribeDate returns the day number of d read in cal.
func DescribeDate(d CivilDate, cal Calendar) (JDN, error) {
	switch cal {
	case Gregorian:
		return GregorianToJDN(d.Year, d.Month, d.Day)
	case Julian:
		return JulianToJDN(d.Year, d.Month, d.Day)
	case ProlepticGregorian:
		return ProlepticGregorianToJDN(d.Year, d.Month, d.Day)
	}
	return 0, &ValidationError{Calendar: cal, Year: d.Year, Month: d.Month, Day: d.Day, Reason: "unknown calendar"}
}

// Convert is DescribeDate followed by DescribeJDN.
func Convert(d CivilDate, cal Calendar) (ConversionResult, error) {
	j, err := DescribeDate(d, cal)
	if err != nil {
		return ConversionResult{}, err
	}
	return DescribeJDN(j)
}
