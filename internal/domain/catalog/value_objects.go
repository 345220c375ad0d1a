package catalog

import (
	"strconv"
	"strings"

	"storefront-engine/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type ID int64

func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v <= 0 {
		return 0, errs.Wrapf(errs.ErrValidation, "invalid id %q", s)
	}
	return ID(v), nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// FilterCriteria is an immutable search input. Two criteria are the same
// query when Equal reports true; prices compare by value, so 1.5 and 1.50
// are equal.
type FilterCriteria struct {
	text       string
	categoryID *ID
	minPrice   *decimal.Decimal
	maxPrice   *decimal.Decimal
}

func NewFilterCriteria(text string, categoryID *ID, minPrice, maxPrice *decimal.Decimal) (FilterCriteria, error) {
	if minPrice != nil && minPrice.IsNegative() {
		return FilterCriteria{}, errs.Mark(errs.ErrInvalidPrice, errs.ErrValidation)
	}
	if maxPrice != nil && maxPrice.IsNegative() {
		return FilterCriteria{}, errs.Mark(errs.ErrInvalidPrice, errs.ErrValidation)
	}
	if minPrice != nil && maxPrice != nil && minPrice.GreaterThan(*maxPrice) {
		return FilterCriteria{}, errs.Mark(errs.ErrInvalidRange, errs.ErrValidation)
	}

	fc := FilterCriteria{text: strings.TrimSpace(text)}
	if categoryID != nil {
		id := *categoryID
		fc.categoryID = &id
	}
	if minPrice != nil {
		p := *minPrice
		fc.minPrice = &p
	}
	if maxPrice != nil {
		p := *maxPrice
		fc.maxPrice = &p
	}
	return fc, nil
}

func (f FilterCriteria) Text() string { return f.text }

func (f FilterCriteria) CategoryID() (ID, bool) {
	if f.categoryID == nil {
		return 0, false
	}
	return *f.categoryID, true
}

func (f FilterCriteria) MinPrice() (decimal.Decimal, bool) {
	if f.minPrice == nil {
		return decimal.Zero, false
	}
	return *f.minPrice, true
}

func (f FilterCriteria) MaxPrice() (decimal.Decimal, bool) {
	if f.maxPrice == nil {
		return decimal.Zero, false
	}
	return *f.maxPrice, true
}

func (f FilterCriteria) IsEmpty() bool {
	return f.text == "" && f.categoryID == nil && f.minPrice == nil && f.maxPrice == nil
}

func (f FilterCriteria) Equal(other FilterCriteria) bool {
	return f.text == other.text &&
		equalID(f.categoryID, other.categoryID) &&
		equalPrice(f.minPrice, other.minPrice) &&
		equalPrice(f.maxPrice, other.maxPrice)
}

func equalID(a, b *ID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalPrice(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
