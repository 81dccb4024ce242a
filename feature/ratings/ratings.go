package ratings

import (
	"fmt"

	"github.com/samber/lo"
)

// Threshold is the minimum rating an item needs to be kept.
const Threshold = 4.0

// Item is a titled, rated entry.
type Item struct {
	Title  string  `json:"title"`
	Rating float64 `json:"rating"`
}

func (i Item) String() string {
	return fmt.Sprintf("%s (%g)", i.Title, i.Rating)
}

// FilterByRating returns the items whose rating is at least Threshold,
// preserving their relative order. The result is never nil.
func FilterByRating(items []Item) []Item {
	return lo.Filter(items, func(item Item, _ int) bool {
		return item.Rating >= Threshold
	})
}
