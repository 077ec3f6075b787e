package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var numberPattern = regexp.MustCompile(`-?[\d.]+`)

// ParsePrice extracts a whole-dollar amount from s ("$120", "120.4") and
// clamps it to [floor, ceiling]. ok is false when s holds no number.
func ParsePrice(s string, floor, ceiling int) (price int, ok bool) {
	clean := strings.ReplaceAll(s, "$", "")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)

	match := numberPattern.FindString(clean)
	if match == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}

	price = int(math.Round(value))
	if price < floor {
		price = floor
	}
	if price > ceiling {
		price = ceiling
	}
	return price, true
}

// ParseRating extracts a rating threshold ("4.5", "4.5+ stars") clamped to [0, 5].
func ParseRating(s string) (rating float64, ok bool) {
	match := numberPattern.FindString(strings.TrimSpace(s))
	if match == "" {
		return 0, false
	}

	rating, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}

	return math.Max(0, math.Min(5, rating)), true
}
