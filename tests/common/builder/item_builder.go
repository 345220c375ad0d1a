//go:build unit || e2e

package builder

import (
	"testing"

	"storefront-engine/internal/domain/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type ItemBuilder struct {
	ID                int64
	Name              string
	Price             string
	AvailableQuantity int
	CategoryID        int64
	CategoryName      string
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:                1,
		Name:              "Chocolate Truffle",
		Price:             "2.50",
		AvailableQuantity: 20,
		CategoryID:        3,
		CategoryName:      "Chocolates",
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) WithID(id int64) *ItemBuilder {
	b.ID = id
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithPrice(price string) *ItemBuilder {
	b.Price = price
	return b
}

func (b *ItemBuilder) WithAvailable(n int) *ItemBuilder {
	b.AvailableQuantity = n
	return b
}

func (b *ItemBuilder) BuildDomain(t *testing.T) catalog.Item {
	t.Helper()
	item, err := catalog.NewItem(
		catalog.ID(b.ID),
		b.Name,
		decimal.RequireFromString(b.Price),
		b.AvailableQuantity,
		catalog.ID(b.CategoryID),
	)
	require.NoError(t, err)
	return item
}

// BuildWire returns the item as the store API serializes it.
func (b *ItemBuilder) BuildWire() map[string]any {
	return map[string]any{
		"id":          b.ID,
		"name":        b.Name,
		"description": b.Name + " description",
		"price":       decimal.RequireFromString(b.Price).InexactFloat64(),
		"quantity":    b.AvailableQuantity,
		"imageUrl":    "",
		"category": map[string]any{
			"id":   b.CategoryID,
			"name": b.CategoryName,
		},
	}
}
