// Package text provides case conversion for strings.
//
// FormatString uppercases by default and lowercases only when asked to
// explicitly. Case mapping is delegated to golang.org/x/text/cases using the
// undetermined language, so results do not depend on the host locale.
//
// # Command
//
//	snippets text Hello          # HELLO
//	snippets text Hello --lower  # hello
package text
