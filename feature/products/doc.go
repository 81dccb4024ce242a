// Package products finds the most expensive product in a list.
//
// The scan is a single left-to-right pass that replaces the running maximum
// only on a strictly greater price. When several products share the highest
// price the earliest one wins. An empty list yields mo.None.
package products
