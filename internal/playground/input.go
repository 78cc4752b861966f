package playground

import (
	"strconv"
	"strings"
)

// ParseDimension reads a pixel value typed by the user. Empty or
// non-numeric text yields fallback; the integer prefix of text like "120px"
// is honoured.
func ParseDimension(text string, fallback float64) float64 {
	v, ok := parseLeadingInt(text)
	if !ok || v == 0 {
		return fallback
	}
	return float64(v)
}

// ParseIncrement reads a snap grid size. Values outside
// (0, MaxSnapIncrement] are rejected with ok=false.
func ParseIncrement(text string) (int, bool) {
	v, ok := parseLeadingInt(text)
	if !ok || v <= 0 || v > MaxSnapIncrement {
		return 0, false
	}
	return v, true
}

// ParseSpringValue reads a spring parameter. Non-numeric text yields fallback.
func ParseSpringValue(text string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return fallback
	}
	return v
}

func parseLeadingInt(text string) (int, bool) {
	text = strings.TrimSpace(text)
	end := 0
	if end < len(text) && (text[end] == '-' || text[end] == '+') {
		end++
	}
	digits := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(text[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}
