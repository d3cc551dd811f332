// Package provider holds value helpers shared by provider payload parsers.
package provider

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseStatValue parses a provider stat cell such as "34.2" as a finite
// float. Blank, non-numeric, NaN and infinite cells are errors.
func ParseStatValue(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-finite value %q", s)
	}
	return f, nil
}

// SplitPair splits a "made-attempted" style cell ("7.5-15.0") on sep into
// exactly two parts.
func SplitPair(s, sep string) (first, second string, err error) {
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("want two %q-separated parts, got %q", sep, s)
	}
	return parts[0], parts[1], nil
}
