package catalog

import (
	"strings"

	"storefront-engine/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is a read-only snapshot of a catalog entry. AvailableQuantity is
// advisory: it may already be stale by the time a purchase is attempted.
type Item struct {
	id                ID
	name              string
	price             decimal.Decimal
	availableQuantity int
	categoryID        ID
}

func NewItem(id ID, name string, price decimal.Decimal, availableQuantity int, categoryID ID) (Item, error) {
	if id <= 0 {
		return Item{}, errs.Mark(errs.New("item id must be positive"), errs.ErrValidation)
	}
	if price.IsNegative() {
		return Item{}, errs.Mark(errs.ErrInvalidPrice, errs.ErrValidation)
	}
	if availableQuantity < 0 {
		availableQuantity = 0
	}
	return Item{
		id:                id,
		name:              strings.TrimSpace(name),
		price:             price,
		availableQuantity: availableQuantity,
		categoryID:        categoryID,
	}, nil
}

func (i Item) ID() ID                 { return i.id }
func (i Item) Name() string           { return i.name }
func (i Item) Price() decimal.Decimal { return i.price }
func (i Item) AvailableQuantity() int { return i.availableQuantity }
func (i Item) CategoryID() ID         { return i.categoryID }
func (i Item) InStock() bool          { return i.availableQuantity > 0 }

type Category struct {
	ID   ID
	Name string
}
