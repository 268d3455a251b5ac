package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/state"
)

func newService() *catalog.Service {
	c := state.NewSeededContainer()
	return catalog.NewService(c.Stores(), c.Categories(), c.Products())
}

func TestStores(t *testing.T) {
	s := newService()

	stores := s.Stores()
	require.Len(t, stores, 3)
	assert.Equal(t, "Quill & Coil", stores[0].Name)
}

func TestStoreNotFound(t *testing.T) {
	s := newService()

	_, err := s.Store("store99")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestUpdateStoreSettings(t *testing.T) {
	s := newService()

	store, err := s.Store("store1")
	require.NoError(t, err)

	store.Tagline = "New tagline"
	store.PaymentGatewayKey = "rzp_live_abc"
	require.NoError(t, s.UpdateStoreSettings(store))

	updated, err := s.Store("store1")
	require.NoError(t, err)
	assert.Equal(t, "New tagline", updated.Tagline)
	assert.Equal(t, "rzp_live_abc", updated.PaymentGatewayKey)
}

func TestUpdateStoreSettingsRequiresName(t *testing.T) {
	s := newService()

	err := s.UpdateStoreSettings(catalog.Store{ID: "store1"})
	assert.ErrorIs(t, err, catalog.ErrValidation)
}

func TestProductsFilterByStore(t *testing.T) {
	s := newService()

	all := s.Products("")
	assert.Len(t, all, 12)

	store1 := s.Products("store1")
	assert.Len(t, store1, 4)
	for _, p := range store1 {
		assert.Equal(t, "store1", p.StoreID)
	}

	// Exact match only, no prefix matching on store ids
	assert.Empty(t, s.Products("store"))
}

func TestSearchProductsCaseInsensitive(t *testing.T) {
	s := newService()

	byName := s.SearchProducts("", "mandala")
	require.Len(t, byName, 1)
	assert.Equal(t, "p1", byName[0].ID)

	byCategory := s.SearchProducts("store1", "EARRINGS")
	assert.Len(t, byCategory, 3)

	assert.Empty(t, s.SearchProducts("", "zzz-no-such-product"))
}

func TestSearchProductsEmptyQueryReturnsAll(t *testing.T) {
	s := newService()

	assert.Len(t, s.SearchProducts("store2", ""), 4)
}

func TestCreateProductStartsWithZeroRating(t *testing.T) {
	s := newService()

	created, err := s.CreateProduct("store1", &catalog.CreateProductRequest{
		Name:     "Quilled Bookmark",
		Category: "Home Decor",
		Price:    9.5,
		Stock:    25,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.ID, "p"))
	assert.Equal(t, "store1", created.StoreID)
	assert.Equal(t, 0.0, created.Rating)

	fetched, err := s.Product(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCreateProductUnknownStore(t *testing.T) {
	s := newService()

	_, err := s.CreateProduct("store99", &catalog.CreateProductRequest{Name: "X", Category: "Y"})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestCreateProductValidation(t *testing.T) {
	s := newService()

	_, err := s.CreateProduct("store1", &catalog.CreateProductRequest{Category: "Earrings"})
	assert.ErrorIs(t, err, catalog.ErrValidation)

	_, err = s.CreateProduct("store1", &catalog.CreateProductRequest{Name: "X", Category: "Earrings", Price: -1})
	assert.ErrorIs(t, err, catalog.ErrValidation)
}

func TestUpdateProduct(t *testing.T) {
	s := newService()

	p, err := s.Product("p1")
	require.NoError(t, err)

	p.Price = 27.5
	p.Stock = 8
	require.NoError(t, s.UpdateProduct(p))

	updated, err := s.Product("p1")
	require.NoError(t, err)
	assert.Equal(t, 27.5, updated.Price)
	assert.Equal(t, 8, updated.Stock)
}

func TestUpdateProductMissingIDIsNoOp(t *testing.T) {
	s := newService()

	err := s.UpdateProduct(catalog.Product{ID: "p99", Name: "Ghost", Price: 1})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
	assert.Len(t, s.Products(""), 12)
}

func TestDeleteProduct(t *testing.T) {
	s := newService()

	require.NoError(t, s.DeleteProduct("p1"))
	assert.Len(t, s.Products(""), 11)

	_, err := s.Product("p1")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	assert.ErrorIs(t, s.DeleteProduct("p1"), catalog.ErrNotFound)
}

func TestCategoriesByStore(t *testing.T) {
	s := newService()

	cats := s.Categories("store1")
	require.Len(t, cats, 3)
	assert.Equal(t, "Earrings", cats[0].Name)
}

func TestCreateCategory(t *testing.T) {
	s := newService()

	created, err := s.CreateCategory("store2", "Seasonal", "https://example.com/seasonal.jpg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.ID, "c"))
	assert.Equal(t, "store2", created.StoreID)
	assert.Len(t, s.Categories("store2"), 4)
}

func TestUpdateCategoryKeepsOwningStore(t *testing.T) {
	s := newService()

	err := s.UpdateCategory(catalog.Category{ID: "c1", StoreID: "store3", Name: "Renamed"})
	require.NoError(t, err)

	cats := s.Categories("store1")
	require.Len(t, cats, 3)
	assert.Equal(t, "Renamed", cats[0].Name)
	for _, cat := range s.Categories("store3") {
		assert.NotEqual(t, "Renamed", cat.Name)
	}
}

func TestUpdateCategoryNotFound(t *testing.T) {
	s := newService()

	err := s.UpdateCategory(catalog.Category{ID: "c99", Name: "Ghost"})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
