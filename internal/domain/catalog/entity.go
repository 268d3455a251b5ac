// internal/domain/catalog/entity.go
package catalog

// StoreType identifies which themed storefront a store is
type StoreType string

const (
	StoreTypeQuilling StoreType = "quilling"
	StoreTypeGifts    StoreType = "gifts"
	StoreTypeArt      StoreType = "art"
)

// Store represents one themed storefront (tenant)
type Store struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Type              StoreType `json:"type"`
	ThemeColor        string    `json:"theme_color"`
	HeroImage         string    `json:"hero_image"`
	Tagline           string    `json:"tagline"`
	Address           string    `json:"address"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	PaymentGatewayKey string    `json:"payment_gateway_key,omitempty"`
}

// Category represents a product category owned by exactly one store
type Category struct {
	ID      string `json:"id"`
	StoreID string `json:"store_id"`
	Name    string `json:"name"`
	Image   string `json:"image"`
}

// Product represents a catalog product owned by exactly one store
type Product struct {
	ID          string  `json:"id"`
	StoreID     string  `json:"store_id"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"` // Free text, expected to match a category name
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
}

// StoreRepository provides access to the fixed store set
type StoreRepository interface {
	List() []Store
	Get(id string) (Store, bool)
	Update(store Store) bool
}

// CategoryRepository provides access to the category collection
type CategoryRepository interface {
	List(storeID string) []Category
	Get(id string) (Category, bool)
	Create(category Category) Category
	Update(category Category) bool
	Delete(id string) bool
}

// ProductRepository provides access to the product collection.
// An empty storeID on List means all stores.
type ProductRepository interface {
	List(storeID string) []Product
	Get(id string) (Product, bool)
	Create(product Product) Product
	Update(product Product) bool
	Delete(id string) bool
}
