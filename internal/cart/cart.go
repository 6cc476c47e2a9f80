// Package cart models the client-local shopping cart. Cart lines are
// never persisted on their own; at checkout the lines are serialized into
// the order's item snapshot, which stays immutable after submission.
package cart

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Item is one cart line. It is the same shape as the entries serialized
// into an order's item snapshot.
type Item struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Grade    int    `json:"grade"`
	Quantity int    `json:"quantity"`
}

// Cart holds lines in insertion order. Quantity stays >= 1: decrementing
// the last unit removes the line entirely.
type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add puts an item in the cart, incrementing the quantity when the book
// is already present. A non-positive quantity counts as one.
func (c *Cart) Add(it Item) {
	if it.Quantity < 1 {
		it.Quantity = 1
	}
	for i := range c.items {
		if c.items[i].ID == it.ID {
			c.items[i].Quantity += it.Quantity
			return
		}
	}
	c.items = append(c.items, it)
}

// Decrement reduces the quantity of the given book by one, removing the
// line when it drops to zero.
func (c *Cart) Decrement(id string) {
	for i := range c.items {
		if c.items[i].ID != id {
			continue
		}
		c.items[i].Quantity--
		if c.items[i].Quantity < 1 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
		return
	}
}

// Remove drops the line for the given book regardless of quantity.
func (c *Cart) Remove(id string) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Snapshot serializes the cart lines into the immutable string blob
// stored on an order.
func (c *Cart) Snapshot() (string, error) {
	b, err := json.Marshal(c.items)
	if err != nil {
		return "", errors.Wrap(err, "marshal cart snapshot")
	}
	return string(b), nil
}

// Total sums price*quantity over the cart with exact decimal arithmetic.
func (c *Cart) Total() (string, error) {
	return Total(c.items)
}

// ParseItems decodes an order's item snapshot back into cart lines.
func ParseItems(snapshot string) ([]Item, error) {
	var items []Item
	if err := json.Unmarshal([]byte(snapshot), &items); err != nil {
		return nil, errors.Wrap(err, "parse cart snapshot")
	}
	return items, nil
}

// Total sums price*quantity over the given lines, rendered with two
// fraction digits.
func Total(items []Item) (string, error) {
	sum := decimal.Zero
	for _, it := range items {
		sub, err := subtotal(it)
		if err != nil {
			return "", err
		}
		sum = sum.Add(sub)
	}
	return sum.StringFixed(2), nil
}

// Subtotal returns price*quantity for a single line with two fraction
// digits.
func Subtotal(it Item) (string, error) {
	sub, err := subtotal(it)
	if err != nil {
		return "", err
	}
	return sub.StringFixed(2), nil
}

func subtotal(it Item) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(it.Price)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid price %q for item %s", it.Price, it.ID)
	}
	return price.Mul(decimal.NewFromInt(int64(it.Quantity))), nil
}
