package response

import (
	"time"

	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

type ItemResponse struct {
	ID                int64           `json:"id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	AvailableQuantity int             `json:"availableQuantity"`
	CategoryID        int64           `json:"categoryId"`
	InStock           bool            `json:"inStock"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CriteriaResponse struct {
	Text       string           `json:"text"`
	CategoryID *int64           `json:"categoryId,omitempty"`
	MinPrice   *decimal.Decimal `json:"minPrice,omitempty"`
	MaxPrice   *decimal.Decimal `json:"maxPrice,omitempty"`
}

type SearchResultResponse struct {
	Sequence    uint64           `json:"sequence"`
	Criteria    CriteriaResponse `json:"criteria"`
	Items       []ItemResponse   `json:"items"`
	Error       *ErrorResponse   `json:"error,omitempty"`
	PublishedAt time.Time        `json:"publishedAt"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type SubmitCriteriaResponse struct {
	Criteria CriteriaResponse `json:"criteria"`
	Status   string           `json:"status"`
}

func FromItem(i catalog.Item) ItemResponse {
	return ItemResponse{
		ID:                int64(i.ID()),
		Name:              i.Name(),
		Price:             i.Price(),
		AvailableQuantity: i.AvailableQuantity(),
		CategoryID:        int64(i.CategoryID()),
		InStock:           i.InStock(),
	}
}

func FromCategories(cs []catalog.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(cs))
	for i, c := range cs {
		out[i] = CategoryResponse{ID: int64(c.ID), Name: c.Name}
	}
	return out
}

func FromCriteria(f catalog.FilterCriteria) CriteriaResponse {
	r := CriteriaResponse{Text: f.Text()}
	if id, ok := f.CategoryID(); ok {
		v := int64(id)
		r.CategoryID = &v
	}
	if p, ok := f.MinPrice(); ok {
		r.MinPrice = &p
	}
	if p, ok := f.MaxPrice(); ok {
		r.MaxPrice = &p
	}
	return r
}

// FromResult maps a published search result. errorFor translates a failure
// into the same message and code the synchronous endpoints use.
func FromResult(r queries.Result, errorFor func(error) ErrorResponse) SearchResultResponse {
	items := make([]ItemResponse, len(r.Items))
	for i, it := range r.Items {
		items[i] = FromItem(it)
	}
	resp := SearchResultResponse{
		Sequence:    r.Request.SequenceNumber,
		Criteria:    FromCriteria(r.Request.Criteria),
		Items:       items,
		PublishedAt: r.PublishedAt,
	}
	if r.Err != nil {
		e := errorFor(r.Err)
		resp.Error = &e
	}
	return resp
}
