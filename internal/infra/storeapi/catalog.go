package storeapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/infra"

	"github.com/shopspring/decimal"
)

type categoryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type itemDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	Category    *categoryDTO    `json:"category,omitempty"`
	CategoryID  *int64          `json:"categoryId,omitempty"`
}

func (d itemDTO) toDomain() (catalog.Item, error) {
	var categoryID catalog.ID
	switch {
	case d.Category != nil:
		categoryID = catalog.ID(d.Category.ID)
	case d.CategoryID != nil:
		categoryID = catalog.ID(*d.CategoryID)
	}
	return catalog.NewItem(catalog.ID(d.ID), d.Name, d.Price, d.Quantity, categoryID)
}

func searchQuery(criteria catalog.FilterCriteria, onlyAvailable bool) url.Values {
	q := url.Values{}
	if text := criteria.Text(); text != "" {
		q.Set("name", text)
	}
	if id, ok := criteria.CategoryID(); ok {
		q.Set("categoryId", id.String())
	}
	if p, ok := criteria.MinPrice(); ok {
		q.Set("minPrice", p.String())
	}
	if p, ok := criteria.MaxPrice(); ok {
		q.Set("maxPrice", p.String())
	}
	q.Set("onlyAvailable", strconv.FormatBool(onlyAvailable))
	return q
}

// Search runs GET /api/sweets/search. The response order is preserved.
func (c *Client) Search(ctx context.Context, criteria catalog.FilterCriteria) ([]catalog.Item, error) {
	var dtos []itemDTO
	if err := c.do(ctx, http.MethodGet, "/api/sweets/search", searchQuery(criteria, c.onlyAvailable), nil, &dtos); err != nil {
		return nil, err
	}

	items := make([]catalog.Item, 0, len(dtos))
	for _, d := range dtos {
		item, err := d.toDomain()
		if err != nil {
			return nil, infra.WrapCallErr(c.logger, infra.KindServiceUnavailable, http.StatusOK, "", "invalid catalog item in search response", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *Client) Item(ctx context.Context, id catalog.ID) (catalog.Item, error) {
	var dto itemDTO
	if err := c.do(ctx, http.MethodGet, "/api/sweets/"+id.String(), nil, nil, &dto); err != nil {
		return catalog.Item{}, err
	}
	item, err := dto.toDomain()
	if err != nil {
		return catalog.Item{}, infra.WrapCallErr(c.logger, infra.KindServiceUnavailable, http.StatusOK, "", "invalid catalog item in response", err)
	}
	return item, nil
}

func (c *Client) Categories(ctx context.Context) ([]catalog.Category, error) {
	var dtos []categoryDTO
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, nil, &dtos); err != nil {
		return nil, err
	}
	out := make([]catalog.Category, len(dtos))
	for i, d := range dtos {
		out[i] = catalog.Category{ID: catalog.ID(d.ID), Name: d.Name}
	}
	return out, nil
}
