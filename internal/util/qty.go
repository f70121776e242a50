package util

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	qtyWithUnit    = regexp.MustCompile(`(?i)^(\d{1,3}(?:,\d{3})+|\d+(?:\.\d+)?)\s*(ea|each|pcs|pc|units?|x)?\.?$`)
	thousandsComma = regexp.MustCompile(`^\d{1,3}(?:,\d{3})+$`)
)

// ParseQty reads a spreadsheet quantity cell such as "2", "1,000", "3.0" or
// "4 ea". Fractions are truncated and anything below one counts as one.
// Values beyond math.MaxInt32 are rejected.
func ParseQty(input string) (int, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(input, "\u00a0", " "))
	if s == "" {
		return 1, true
	}

	m := qtyWithUnit.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	token := m[1]
	if thousandsComma.MatchString(token) {
		token = strings.ReplaceAll(token, ",", "")
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	if v < 1 {
		return 1, true
	}
	if v > math.MaxInt32 {
		return 0, false
	}
	return int(v), true
}
