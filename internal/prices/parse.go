package prices

import (
	"strconv"
	"strings"
)

// ParseNumber converts an upstream numeric string into a float64.
//
// Price fields arrive Turkish-formatted with '.' as thousands separator and
// ',' as decimal separator ("5.777,76"). Percent fields already use a
// decimal dot ("34.72") and are parsed directly.
//
// Empty or malformed input yields 0 rather than an error: a single bad field
// must never abort a whole snapshot.
func ParseNumber(raw string, percent bool) float64 {
	if raw == "" {
		return 0
	}

	if percent {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0
		}
		return v
	}

	cleaned := strings.ReplaceAll(raw, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}
