package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedPair is returned when a key=number argument cannot be split or parsed.
var ErrMalformedPair = errors.New("malformed pair")

// ToFloat parses a decimal number. The second result is false when s is not numeric.
func ToFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// SplitList splits a comma separated argument into its items.
// An empty argument yields an empty list, not a list holding "".
func SplitList(arg string) []string {
	if arg == "" {
		return []string{}
	}
	return strings.Split(arg, ",")
}

// ParsePair splits "key=number" into its parts.
// The last '=' separates the number so keys may contain '='.
func ParsePair(arg string) (string, float64, error) {
	idx := strings.LastIndex(arg, "=")
	if idx <= 0 {
		return "", 0, fmt.Errorf("%w: %q, expected key=number", ErrMalformedPair, arg)
	}

	num, ok := ToFloat(arg[idx+1:])
	if !ok {
		return "", 0, fmt.Errorf("%w: %q, %q is not a number", ErrMalformedPair, arg, arg[idx+1:])
	}

	return arg[:idx], num, nil
}
