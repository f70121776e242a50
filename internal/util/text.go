package util

import (
	"regexp"
	"strings"
)

var reSpaces = regexp.MustCompile(`\s+`)

func NormalizeSpaces(input string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}

// FoldKey is the comparison form of a model or serial number.
func FoldKey(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
