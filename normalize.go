package jdn

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// Input text may come from East Asian input methods or word processors, so
// before parsing full-width forms are folded to ASCII and dash look-alikes
// become '-'.

func dashToHyphen(r rune) rune {
	switch r {
	case '\u2010', '\u2011', '\u2012', '\u2013', '\u2212', '\uFE63':
		return '-'
	}
	return r
}

// normalize builds a new chain per call, transform chains keep buffers and
// are not safe for concurrent use.
func normalize(s string) (string, error) {
	t := transform.Chain(width.Fold, runes.Map(dashToHyphen))
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return out, nil
}
