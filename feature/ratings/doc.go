// Package ratings filters rated items by a fixed threshold.
//
// Items rated 4 or higher are kept, in their original order. There is no upper
// or lower bound on a rating.
package ratings
