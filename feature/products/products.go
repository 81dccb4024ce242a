package products

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Product is a named, priced entry. Products have no identity beyond their fields.
type Product struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (p Product) String() string {
	return fmt.Sprintf("%s (%g)", p.Name, p.Price)
}

// MostExpensive returns the first product carrying the highest price,
// or mo.None when products is empty.
func MostExpensive(products []Product) mo.Option[Product] {
	if len(products) == 0 {
		return mo.None[Product]()
	}

	return mo.Some(lo.MaxBy(products, func(candidate, current Product) bool {
		return candidate.Price > current.Price
	}))
}
