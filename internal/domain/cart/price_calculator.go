package cart

import "github.com/shopspring/decimal"

type Summary struct {
	Items    int
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Summarize computes the order summary shown before checkout. Tax is rounded
// to cents; shipping is free.
func Summarize(c *Cart, taxRate decimal.Decimal) Summary {
	subtotal := c.TotalPrice()
	tax := subtotal.Mul(taxRate).Round(2)
	return Summary{
		Items:    c.TotalItems(),
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
