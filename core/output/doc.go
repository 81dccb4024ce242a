// Package output renders snippet results for the command line.
//
// The Config struct selects the format (text or json) and is embedded by the
// core/config package. Printer is handed to every feature so that all commands
// write results the same way.
package output
