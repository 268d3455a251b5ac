// internal/domain/catalog/service.go
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a lookup by id matches nothing
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when a mutation is rejected before any state change
var ErrValidation = errors.New("validation failed")

// Service handles catalog business logic
type Service struct {
	stores     StoreRepository
	categories CategoryRepository
	products   ProductRepository
}

// NewService creates a new catalog service
func NewService(stores StoreRepository, categories CategoryRepository, products ProductRepository) *Service {
	return &Service{
		stores:     stores,
		categories: categories,
		products:   products,
	}
}

// CreateProductRequest represents a product create/update payload
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category" binding:"required"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// Stores returns the fixed store set
func (s *Service) Stores() []Store {
	return s.stores.List()
}

// Store returns a single store by id
func (s *Service) Store(id string) (Store, error) {
	store, ok := s.stores.Get(id)
	if !ok {
		return Store{}, fmt.Errorf("store %q: %w", id, ErrNotFound)
	}
	return store, nil
}

// UpdateStoreSettings replaces the store record matching the given id
func (s *Service) UpdateStoreSettings(store Store) error {
	if store.Name == "" {
		return fmt.Errorf("store name is required: %w", ErrValidation)
	}
	if !s.stores.Update(store) {
		return fmt.Errorf("store %q: %w", store.ID, ErrNotFound)
	}
	return nil
}

// Products lists products, optionally filtered by store id.
// Filtering is an exact, case-sensitive match on the owning store.
func (s *Service) Products(storeID string) []Product {
	return s.products.List(storeID)
}

// SearchProducts lists products whose name or category contains the query,
// case-insensitively. An empty query returns the unfiltered store listing.
func (s *Service) SearchProducts(storeID, query string) []Product {
	products := s.products.List(storeID)
	if query == "" {
		return products
	}

	q := strings.ToLower(query)
	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strings.ToLower(p.Category), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Product returns a single product by id
func (s *Service) Product(id string) (Product, error) {
	product, ok := s.products.Get(id)
	if !ok {
		return Product{}, fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	return product, nil
}

// CreateProduct validates and appends a new product. New products always
// start with a zero rating; the repository assigns the id.
func (s *Service) CreateProduct(storeID string, req *CreateProductRequest) (Product, error) {
	if err := validateProductInput(req); err != nil {
		return Product{}, err
	}

	if _, ok := s.stores.Get(storeID); !ok {
		return Product{}, fmt.Errorf("store %q: %w", storeID, ErrNotFound)
	}

	product := Product{
		StoreID:     storeID,
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		Image:       req.Image,
		Description: req.Description,
		Rating:      0,
	}

	return s.products.Create(product), nil
}

// UpdateProduct replaces the record matching the product id
func (s *Service) UpdateProduct(product Product) error {
	if product.Name == "" {
		return fmt.Errorf("product name is required: %w", ErrValidation)
	}
	if product.Price < 0 {
		return fmt.Errorf("product price cannot be negative: %w", ErrValidation)
	}
	if product.Stock < 0 {
		return fmt.Errorf("product stock cannot be negative: %w", ErrValidation)
	}

	if !s.products.Update(product) {
		return fmt.Errorf("product %q: %w", product.ID, ErrNotFound)
	}
	return nil
}

// DeleteProduct removes the product matching the given id
func (s *Service) DeleteProduct(id string) error {
	if !s.products.Delete(id) {
		return fmt.Errorf("product %q: %w", id, ErrNotFound)
	}
	return nil
}

// Categories lists the categories owned by a store
func (s *Service) Categories(storeID string) []Category {
	return s.categories.List(storeID)
}

// CreateCategory validates and appends a new category
func (s *Service) CreateCategory(storeID, name, image string) (Category, error) {
	if name == "" {
		return Category{}, fmt.Errorf("category name is required: %w", ErrValidation)
	}
	if _, ok := s.stores.Get(storeID); !ok {
		return Category{}, fmt.Errorf("store %q: %w", storeID, ErrNotFound)
	}

	return s.categories.Create(Category{
		StoreID: storeID,
		Name:    name,
		Image:   image,
	}), nil
}

// UpdateCategory replaces the record matching the category id.
// The owning store never changes on update.
func (s *Service) UpdateCategory(category Category) error {
	if category.Name == "" {
		return fmt.Errorf("category name is required: %w", ErrValidation)
	}

	existing, ok := s.categories.Get(category.ID)
	if !ok {
		return fmt.Errorf("category %q: %w", category.ID, ErrNotFound)
	}
	category.StoreID = existing.StoreID

	s.categories.Update(category)
	return nil
}

// DeleteCategory removes the category matching the given id
func (s *Service) DeleteCategory(id string) error {
	if !s.categories.Delete(id) {
		return fmt.Errorf("category %q: %w", id, ErrNotFound)
	}
	return nil
}

func validateProductInput(req *CreateProductRequest) error {
	if req.Name == "" {
		return fmt.Errorf("product name is required: %w", ErrValidation)
	}
	if req.Category == "" {
		return fmt.Errorf("product category is required: %w", ErrValidation)
	}
	if req.Price < 0 {
		return fmt.Errorf("product price cannot be negative: %w", ErrValidation)
	}
	if req.Stock < 0 {
		return fmt.Errorf("product stock cannot be negative: %w", ErrValidation)
	}
	return nil
}
