package request

import (
	"strings"

	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type CriteriaRequest struct {
	Text       string           `json:"text" binding:"max=200"`
	CategoryID *int64           `json:"categoryId,omitempty" binding:"omitempty,gt=0"`
	MinPrice   *decimal.Decimal `json:"minPrice,omitempty"`
	MaxPrice   *decimal.Decimal `json:"maxPrice,omitempty"`
}

func (r CriteriaRequest) ToInput() queries.CriteriaInput {
	in := queries.CriteriaInput{
		Text:     strings.TrimSpace(r.Text),
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
	}
	if r.CategoryID != nil {
		id := catalog.ID(*r.CategoryID)
		in.CategoryID = &id
	}
	return in
}
