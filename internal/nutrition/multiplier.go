package nutrition

import "strings"

const (
	kiloMultiplier    = 5
	cupMultiplier     = 1.2
	spoonMultiplier   = 0.15
	canMultiplier     = 2
	defaultMultiplier = 0.5
)

// Multiplier infers how many 100 g portions an ingredient line describes.
// The line is expected to be lowercased already. It always returns a value;
// lines without a recognizable quantity get the default of half a portion.
func Multiplier(line string) float64 {
	if strings.Contains(line, "kg") || strings.Contains(line, "quilo") {
		return kiloMultiplier
	}
	if grams, ok := gramQuantity(line); ok {
		return grams / 100
	}
	switch {
	case strings.Contains(line, "xícara"):
		return cupMultiplier
	case strings.Contains(line, "colher"):
		return spoonMultiplier
	case strings.Contains(line, "lata"):
		return canMultiplier
	default:
		return defaultMultiplier
	}
}

// gramQuantity finds the first "g" unit marker that has a run of digits
// before it, optionally separated by whitespace, and returns that number.
// A "g" that belongs to "kg" is never a gram marker.
func gramQuantity(line string) (float64, bool) {
	for i := 0; i < len(line); i++ {
		if line[i] != 'g' {
			continue
		}
		if i > 0 && line[i-1] == 'k' {
			continue
		}
		if v, ok := digitsBefore(line, i); ok {
			return v, true
		}
	}
	return 0, false
}

func digitsBefore(line string, unit int) (float64, bool) {
	end := unit
	for end > 0 && isSpace(line[end-1]) {
		end--
	}
	start := end
	for start > 0 && isDigit(line[start-1]) {
		start--
	}
	if start == end {
		return 0, false
	}
	var v float64
	for i := start; i < end; i++ {
		v = v*10 + float64(line[i]-'0')
	}
	return v, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
