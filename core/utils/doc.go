// Package utils provides common helpers for the snippets CLI.
// It includes argument conversion used by feature commands to turn raw
// command line strings into typed snippet inputs.
package utils
