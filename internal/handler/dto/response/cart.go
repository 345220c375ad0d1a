package response

import (
	"storefront-engine/internal/domain/cart"
	"storefront-engine/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type CartLineResponse struct {
	ItemID            int64           `json:"itemId"`
	Name              string          `json:"name"`
	Quantity          int             `json:"quantity"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	AvailableQuantity int             `json:"availableQuantity"`
}

type CartSummaryResponse struct {
	Items    int             `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

type CartResponse struct {
	Lines              []CartLineResponse  `json:"lines"`
	Summary            CartSummaryResponse `json:"summary"`
	CheckoutInProgress bool                `json:"checkoutInProgress"`
}

func FromCartLine(l cart.Line) CartLineResponse {
	return CartLineResponse{
		ItemID:            int64(l.ItemID()),
		Name:              l.Snapshot().Name(),
		Quantity:          l.Quantity(),
		UnitPrice:         l.UnitPrice(),
		Subtotal:          l.Subtotal(),
		AvailableQuantity: l.Snapshot().AvailableQuantity(),
	}
}

func FromCartView(v shared.CartView) CartResponse {
	lines := make([]CartLineResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = FromCartLine(l)
	}
	return CartResponse{
		Lines: lines,
		Summary: CartSummaryResponse{
			Items:    v.Summary.Items,
			Subtotal: v.Summary.Subtotal,
			Tax:      v.Summary.Tax,
			Total:    v.Summary.Total,
		},
		CheckoutInProgress: v.CheckoutInProgress,
	}
}
