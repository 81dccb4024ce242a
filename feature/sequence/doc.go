// Package sequence merges ordered slices.
package sequence
