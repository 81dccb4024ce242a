package value

import (
	"unicode/utf8"

	"snippets/core/utils"

	"github.com/samber/mo"
)

// Value is a text (left) or number (right) variant.
type Value struct {
	either mo.Either[string, float64]
}

// Text tags s as a text value.
func Text(s string) Value {
	return Value{either: mo.Left[string, float64](s)}
}

// Number tags x as a numeric value.
func Number(x float64) Value {
	return Value{either: mo.Right[string, float64](x)}
}

// Parse tags raw as a Number when it parses as one, otherwise as Text.
func Parse(raw string) Value {
	if x, ok := utils.ToFloat(raw); ok {
		return Number(x)
	}
	return Text(raw)
}

// IsText reports whether v carries text.
func (v Value) IsText() bool {
	return v.either.IsLeft()
}

// ProcessValue returns the character count of a text value or twice a numeric value.
func ProcessValue(v Value) float64 {
	if s, ok := v.either.Left(); ok {
		return float64(utf8.RuneCountInString(s))
	}
	return v.either.MustRight() * 2
}
