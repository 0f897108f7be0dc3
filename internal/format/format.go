// Package format renders planet facts for the terminal: field names as titles,
// large integers with thousands separators, and right-aligned fact lines.
package format

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// stopWords stay lower-case in titles.
var stopWords = map[string]bool{
	"a":    true,
	"the":  true,
	"of":   true,
	"to":   true,
	"from": true,
}

// TitleCase turns a snake_case field name into a title, e.g.
// "distance_from_the_sun" becomes "Distance from the Sun". Stop words are
// left as written; every other word gets an upper-case first letter and a
// lower-case remainder.
func TitleCase(field string) string {
	caser := cases.Title(language.Und)
	words := strings.Split(field, "_")
	for i, w := range words {
		if stopWords[strings.ToLower(w)] {
			continue
		}
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

// GroupDigits renders n with a comma every three digits from the right.
func GroupDigits(n *big.Int) string {
	return humanize.BigComma(n)
}

// GroupInt is GroupDigits for machine-sized integers.
func GroupInt(n int64) string {
	return humanize.Comma(n)
}

// Decimal renders v in its shortest exact form: 1898, 0.0146, 78.3.
func Decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FactLine renders "<label>: " followed by "<value> <unit>" right-justified
// so the line ends at column width+2. Content wider than the remaining space
// is never truncated.
func FactLine(label, value, unit string, width int) string {
	pad := width - len(label)
	if pad < 0 {
		pad = 0
	}
	return fmt.Sprintf("%s: %*s", label, pad, value+" "+unit)
}
