// Package extract pulls a numeric offer and a quantity out of free-form
// customer text. The heuristics are intentionally simple string patterns;
// callers treat a miss as "not said yet", never as an error.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var pricePattern = regexp.MustCompile(`\d{2,5}`)

// Quantity rules are tried in order; the first match wins. Unit words
// first, then transliterated regional request words (Marathi/Hindi).
var qtyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\s*(bag|bags|packet|packets|pkt|quintal|qtl)`),
	regexp.MustCompile(`(\d+)\s*(pahije|chahiye|havi|lene|ghya)`),
}

// Price returns the first 2-5 digit integer in text. Deliberately naive:
// no currency symbols, no decimals, first occurrence wins.
func Price(text string) (int, bool) {
	m := pricePattern.FindString(text)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Quantity returns the integer preceding a known unit or request keyword.
func Quantity(text string) (int, bool) {
	lowered := strings.ToLower(text)
	for _, p := range qtyPatterns {
		m := p.FindStringSubmatch(lowered)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}
