package storeapi

import (
	"context"
	"net/http"

	"storefront-engine/internal/domain/catalog"
)

type purchaseRequest struct {
	Quantity int `json:"quantity"`
}

// Purchase runs POST /api/sweets/{id}/purchase. The service offers no
// multi-item transaction; each call commits or fails on its own.
func (c *Client) Purchase(ctx context.Context, itemID catalog.ID, quantity int) error {
	return c.do(ctx, http.MethodPost, "/api/sweets/"+itemID.String()+"/purchase", nil, purchaseRequest{Quantity: quantity}, nil)
}
