package cart

import (
	"storefront-engine/internal/domain/catalog"
	"storefront-engine/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const DefaultMaxLineQuantity = 10

// Line is one (item, desired quantity) entry. Quantity always sits in
// [1, min(maxLineQuantity, snapshot.AvailableQuantity())].
type Line struct {
	itemID    catalog.ID
	quantity  int
	unitPrice decimal.Decimal
	snapshot  catalog.Item
}

func (l Line) ItemID() catalog.ID         { return l.itemID }
func (l Line) Quantity() int              { return l.quantity }
func (l Line) UnitPrice() decimal.Decimal { return l.unitPrice }
func (l Line) Snapshot() catalog.Item     { return l.snapshot }

func (l Line) Subtotal() decimal.Decimal {
	return l.unitPrice.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// Cart is the local record of purchase intent. It never talks to the network
// and is not safe for concurrent use; callers serialize access.
type Cart struct {
	lines           []Line
	maxLineQuantity int
}

func New(maxLineQuantity int) *Cart {
	if maxLineQuantity < 1 {
		maxLineQuantity = DefaultMaxLineQuantity
	}
	return &Cart{maxLineQuantity: maxLineQuantity}
}

// Add creates a line for item or increments the existing one. Over-quantity
// is clamped silently. The line's snapshot and unit price are refreshed from
// item, since it is the newest view of the catalog the caller has.
func (c *Cart) Add(item catalog.Item, quantity int) error {
	if quantity <= 0 {
		return errs.Mark(errs.ErrInvalidQuantity, errs.ErrValidation)
	}
	if !item.InStock() {
		return errs.Mark(errs.ErrItemUnavailable, errs.ErrValidation)
	}

	if idx := c.indexOf(item.ID()); idx >= 0 {
		line := &c.lines[idx]
		line.snapshot = item
		line.unitPrice = item.Price()
		line.quantity = c.clamp(line.quantity+quantity, item)
		return nil
	}

	c.lines = append(c.lines, Line{
		itemID:    item.ID(),
		quantity:  c.clamp(quantity, item),
		unitPrice: item.Price(),
		snapshot:  item,
	})
	return nil
}

// SetQuantity replaces the quantity of an existing line. Zero or negative
// removes the line.
func (c *Cart) SetQuantity(itemID catalog.ID, quantity int) error {
	if quantity <= 0 {
		c.Remove(itemID)
		return nil
	}

	idx := c.indexOf(itemID)
	if idx < 0 {
		return errs.Mark(errs.ErrLineNotFound, errs.ErrValidation)
	}
	line := &c.lines[idx]
	line.quantity = c.clamp(quantity, line.snapshot)
	return nil
}

func (c *Cart) Remove(itemID catalog.ID) {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return
	}
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Line(itemID catalog.ID) (Line, bool) {
	idx := c.indexOf(itemID)
	if idx < 0 {
		return Line{}, false
	}
	return c.lines[idx], true
}

func (c *Cart) Len() int { return len(c.lines) }

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Cart) TotalItems() int {
	n := 0
	for _, l := range c.lines {
		n += l.quantity
	}
	return n
}

func (c *Cart) MaxLineQuantity() int { return c.maxLineQuantity }

func (c *Cart) clamp(quantity int, item catalog.Item) int {
	upper := min(c.maxLineQuantity, item.AvailableQuantity())
	if upper < 1 {
		upper = 1
	}
	return max(1, min(quantity, upper))
}

func (c *Cart) indexOf(itemID catalog.ID) int {
	for i, l := range c.lines {
		if l.itemID == itemID {
			return i
		}
	}
	return -1
}
