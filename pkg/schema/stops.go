package schema

import (
	"strconv"
	"strings"
)

// Stops is a non-negative stop count, or StopsUnknown when the source text
// could not be parsed as one.
type Stops int

// StopsUnknown is the sentinel for unparseable stop-count text. It sorts
// after every real stop count.
const StopsUnknown Stops = -1

// StopsFromText parses a stop-count display string. "Nonstop" maps to zero,
// any text with a leading integer maps to that integer, and anything else
// downgrades to StopsUnknown. Parsing never fails.
func StopsFromText(text string) Stops {
	if strings.TrimSpace(text) == "Nonstop" {
		return 0
	}
	head, _, _ := strings.Cut(strings.TrimSpace(text), " ")
	n, err := strconv.Atoi(head)
	if err != nil || n < 0 {
		return StopsUnknown
	}
	return Stops(n)
}

// Unknown reports whether s is the unparseable sentinel.
func (s Stops) Unknown() bool {
	return s < 0
}

// Before reports whether s orders ahead of o. Counts order ascending and
// the unknown sentinel orders after every count.
func (s Stops) Before(o Stops) bool {
	if s.Unknown() {
		return false
	}
	if o.Unknown() {
		return true
	}
	return s < o
}

func (s Stops) String() string {
	if s.Unknown() {
		return "Unknown"
	}
	return strconv.Itoa(int(s))
}

// MarshalJSON emits a number for a known count and the string "Unknown"
// for the sentinel.
func (s Stops) MarshalJSON() ([]byte, error) {
	if s.Unknown() {
		return []byte(`"Unknown"`), nil
	}
	return []byte(strconv.Itoa(int(s))), nil
}

// MarshalYAML mirrors MarshalJSON for the YAML output writer.
func (s Stops) MarshalYAML() (any, error) {
	if s.Unknown() {
		return "Unknown", nil
	}
	return int(s), nil
}
