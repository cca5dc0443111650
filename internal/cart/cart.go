// Package cart holds the running bill of one staff session.
//
// Adding a product that is already on the bill bumps its quantity, anything else is appended.
// Lines only leave the bill through Clear or Settle. Totals are computed on demand from the
// current items.
// A Cart is not safe for concurrent use; its owner serialises access.
package cart

import (
	"github.com/aaravmahajanofficial/hypermart-pos/internal/models"
	"github.com/shopspring/decimal"
)

type Cart struct {
	items   []models.LineItem
	index   map[int64]int
	version uint64
}

func New() *Cart {
	return &Cart{index: make(map[int64]int)}
}

// AddItem merges the product into an existing line or appends a new line with quantity 1.
func (c *Cart) AddItem(product models.Product) models.LineItem {
	c.version++

	if i, ok := c.index[product.ID]; ok {
		c.items[i].Quantity++
		return c.items[i]
	}

	item := models.LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  1,
	}

	c.index[product.ID] = len(c.items)
	c.items = append(c.items, item)

	return item
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero

	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}

	return total
}

// Quantity is the number of units across all lines.
func (c *Cart) Quantity() int {
	var qty int

	for _, item := range c.items {
		qty += item.Quantity
	}

	return qty
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the lines in the order they were first added.
func (c *Cart) Items() []models.LineItem {
	out := make([]models.LineItem, len(c.items))
	copy(out, c.items)

	return out
}

// Version changes on every mutation.
func (c *Cart) Version() uint64 {
	return c.version
}

func (c *Cart) Clear() {
	c.items = nil
	c.index = make(map[int64]int)
	c.version++
}

// Settle takes paid lines off the bill. Units added after the payment was priced stay on it,
// in their original order.
func (c *Cart) Settle(paid []models.LineItem) {
	settled := make(map[int64]int, len(paid))
	for _, item := range paid {
		settled[item.ProductID] += item.Quantity
	}

	remaining := c.items[:0]
	index := make(map[int64]int, len(c.items))

	for _, item := range c.items {
		item.Quantity -= settled[item.ProductID]
		if item.Quantity <= 0 {
			continue
		}

		index[item.ProductID] = len(remaining)
		remaining = append(remaining, item)
	}

	c.items = remaining
	c.index = index
	c.version++
}

func (c *Cart) View() models.BillView {
	return models.BillView{
		Items:         c.Items(),
		ItemCount:     c.Len(),
		TotalQuantity: c.Quantity(),
		Total:         c.Total(),
		Version:       c.version,
	}
}
