package common

import "strconv"

// AtoiDefault converts the provided string to an integer falling back to the default when parsing fails.
func AtoiDefault(value string, def int) int {
	if value == "" {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

// ParseID parses a decimal path parameter into an int64 identifier.
func ParseID(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}
