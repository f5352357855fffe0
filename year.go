package jdn

// Historical numbering has no year 0, astronomical numbering calls 1 BCE
// year 0 and 2 BCE year -1. The conversion formulas work on astronomical
// years, these two functions are the only place the numberings meet.

func astronomicalYear(year int) int64 {
	if year < 0 {
		return int64(year) + 1
	}
	return int64(year)
}

func historicalYear(year int64) int {
	if year <= 0 {
		return int(year - 1)
	}
	return int(year)
}

// ToAstronomical converts a historical year to astronomical numbering,
// -1 (1 BCE) becomes 0. Year 0 is not a historical year and is returned as is.
func ToAstronomical(year int) int {
	return int(astronomicalYear(year))
}

// ToHistorical converts an astronomical year to historical numbering,
// 0 becomes -1 (1 BCE).
func ToHistorical(year int) int {
	return historicalYear(int64(year))
}
