package cart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mathBook(qty int) Item {
	return Item{ID: "1", Title: "Math Adventures", Price: "24.99", Grade: 1, Quantity: qty}
}

func TestAdd_IncrementsExistingLine(t *testing.T) {
	c := New()
	c.Add(mathBook(1))
	c.Add(mathBook(1))

	items := c.Items()
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)
}

func TestAdd_NonPositiveQuantityCountsAsOne(t *testing.T) {
	c := New()
	c.Add(mathBook(0))

	items := c.Items()
	require.Len(t, items, 1)
	require.Equal(t, 1, items[0].Quantity)
}

func TestDecrement_RemovesLineAtZero(t *testing.T) {
	c := New()
	c.Add(mathBook(2))

	c.Decrement("1")
	require.Equal(t, 1, c.Items()[0].Quantity)

	c.Decrement("1")
	require.Empty(t, c.Items())

	// decrementing an absent line is a no-op
	c.Decrement("1")
	require.Empty(t, c.Items())
}

func TestRemove_DropsLineRegardlessOfQuantity(t *testing.T) {
	c := New()
	c.Add(mathBook(3))
	c.Remove("1")
	require.Empty(t, c.Items())
}

func TestSnapshot_RoundTrip(t *testing.T) {
	c := New()
	c.Add(mathBook(2))
	c.Add(Item{ID: "5", Title: "Reading Adventures", Price: "22.99", Grade: 2, Quantity: 1})

	snapshot, err := c.Snapshot()
	require.NoError(t, err)

	items, err := ParseItems(snapshot)
	require.NoError(t, err)
	require.Equal(t, c.Items(), items)
}

func TestTotal_ExactDecimalSum(t *testing.T) {
	c := New()
	c.Add(mathBook(2))

	total, err := c.Total()
	require.NoError(t, err)
	require.Equal(t, "49.98", total)

	c.Add(Item{ID: "5", Title: "Reading Adventures", Price: "22.99", Grade: 2, Quantity: 1})
	total, err = c.Total()
	require.NoError(t, err)
	require.Equal(t, "72.97", total)
}

func TestTotal_EmptyCart(t *testing.T) {
	total, err := New().Total()
	require.NoError(t, err)
	require.Equal(t, "0.00", total)
}

func TestTotal_InvalidPrice(t *testing.T) {
	_, err := Total([]Item{{ID: "1", Price: "not-a-price", Quantity: 1}})
	require.Error(t, err)
}

func TestSubtotal(t *testing.T) {
	sub, err := Subtotal(mathBook(3))
	require.NoError(t, err)
	require.Equal(t, "74.97", sub)
}

func TestParseItems_Invalid(t *testing.T) {
	_, err := ParseItems("{not json")
	require.Error(t, err)
}
