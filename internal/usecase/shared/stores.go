package shared

import (
	"storefront-engine/internal/domain/cart"
	"storefront-engine/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

type CartView struct {
	Lines              []cart.Line
	Summary            cart.Summary
	CheckoutInProgress bool
}

type CartStore interface {
	Add(item catalog.Item, quantity int) error
	SetQuantity(itemID catalog.ID, quantity int) error
	Remove(itemID catalog.ID)
	Clear()
	View(taxRate decimal.Decimal) CartView

	// BeginCheckout snapshots the lines and marks the store busy. It fails
	// with ErrCheckoutInProgress or ErrEmptyCart.
	BeginCheckout() ([]cart.Line, error)
	// FinishCheckout drops the committed lines and releases the store.
	FinishCheckout(committed []catalog.ID)
}
