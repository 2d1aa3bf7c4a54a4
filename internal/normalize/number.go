package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	whitespace    = regexp.MustCompile(`\s+`)
	nonNumberChar = regexp.MustCompile(`[^0-9,.\-]`)
)

// ParseNumber reads free-form clinical text such as "94", "94%", "72,5",
// "500 ml" or "1.200,5". Returns nil if the input is empty or does not
// resolve to a finite number.
//
// When both "." and "," appear, "." is a thousands separator and "," the
// decimal separator. A lone "," is always decimal. Anything else is parsed
// as-is, so "1.200" reads as 1.2.
func ParseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = whitespace.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "%", "")
	s = nonNumberChar.ReplaceAllString(s, "")
	if s == "" {
		return nil
	}

	if strings.Contains(s, ".") && strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
	}
	s = strings.Replace(s, ",", ".", 1)

	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return nil
	}
	return &n
}

// Clamp bounds n to [lo, hi].
func Clamp(n, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, n))
}
