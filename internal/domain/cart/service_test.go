package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

func testProduct(id string, price float64) catalog.Product {
	return catalog.Product{ID: id, StoreID: "store1", Name: "Product " + id, Category: "Earrings", Price: price, Stock: 10}
}

func TestAddMergesByProductID(t *testing.T) {
	m := NewManager()

	m.Add("s1", testProduct("p1", 25))
	m.Add("s1", testProduct("p1", 25))

	items := m.Items("s1")
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddAppendsNewLine(t *testing.T) {
	m := NewManager()

	m.Add("s1", testProduct("p1", 25))
	m.Add("s1", testProduct("p2", 10))

	items := m.Items("s1")
	assert.Len(t, items, 2)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestSetQuantityDeltaFloorsAtOne(t *testing.T) {
	m := NewManager()
	m.Add("s1", testProduct("p1", 25))

	m.SetQuantityDelta("s1", "p1", -5)

	items := m.Items("s1")
	assert.Equal(t, 1, items[0].Quantity)

	m.SetQuantityDelta("s1", "p1", 3)
	assert.Equal(t, 4, m.Items("s1")[0].Quantity)
}

func TestRemoveDeletesWholeLine(t *testing.T) {
	m := NewManager()
	m.Add("s1", testProduct("p1", 25))
	m.SetQuantityDelta("s1", "p1", 4)

	m.Remove("s1", "p1")

	assert.Empty(t, m.Items("s1"))
}

func TestTotals(t *testing.T) {
	m := NewManager()
	m.Add("s1", testProduct("p1", 25))
	m.Add("s1", testProduct("p1", 25))
	m.Add("s1", testProduct("p2", 10))

	totals := m.Totals("s1")
	assert.Equal(t, 3, totals.LineCount)
	assert.Equal(t, 60.0, totals.Subtotal)
}

func TestTotalsEmptyCart(t *testing.T) {
	m := NewManager()

	totals := m.Totals("nobody")
	assert.Equal(t, 0, totals.LineCount)
	assert.Equal(t, 0.0, totals.Subtotal)
}

func TestClear(t *testing.T) {
	m := NewManager()
	m.Add("s1", testProduct("p1", 25))

	m.Clear("s1")

	assert.Empty(t, m.Items("s1"))
	assert.Equal(t, Totals{}, m.Totals("s1"))
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	m := NewManager()

	m.Add("s1", testProduct("p1", 25))
	m.Add("s2", testProduct("p2", 10))

	assert.Len(t, m.Items("s1"), 1)
	assert.Len(t, m.Items("s2"), 1)
	assert.Equal(t, "p1", m.Items("s1")[0].ID)
	assert.Equal(t, "p2", m.Items("s2")[0].ID)
}

func TestItemsReturnsCopy(t *testing.T) {
	m := NewManager()
	m.Add("s1", testProduct("p1", 25))

	items := m.Items("s1")
	items[0].Quantity = 99

	assert.Equal(t, 1, m.Items("s1")[0].Quantity)
}
