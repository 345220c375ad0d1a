package request

import (
	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/pkg/patch"
)

const defaultAddQuantity = 1

type AddLineRequest struct {
	ItemID   int64 `json:"itemId" binding:"required,gt=0"`
	Quantity *int  `json:"quantity,omitempty"`
}

func (r AddLineRequest) GetItemID() catalog.ID {
	return catalog.ID(r.ItemID)
}

// GetQuantity defaults to one unit when the field is omitted.
func (r AddLineRequest) GetQuantity() int {
	return patch.Coalesce(r.Quantity, defaultAddQuantity)
}

// Quantity zero or below removes the line.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}
