package text

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatString converts input to upper case when toUpper is omitted or true,
// and to lower case when toUpper is explicitly false. Only the first toUpper
// value is considered.
func FormatString(input string, toUpper ...bool) string {
	if len(toUpper) == 0 || toUpper[0] {
		return cases.Upper(language.Und).String(input)
	}
	return cases.Lower(language.Und).String(input)
}
