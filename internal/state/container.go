// internal/state/container.go
package state

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/user"
)

// Container owns the five in-memory collections. It is created once at the
// application root and injected into the domain services through the
// repository interfaces each domain package defines. Every read hands out
// copies so callers never alias the underlying slices. Nothing survives a
// restart.
type Container struct {
	mu         sync.RWMutex
	stores     []catalog.Store
	categories []catalog.Category
	products   []catalog.Product
	orders     []order.Order
	users      []user.User
}

// NewContainer creates an empty state container
func NewContainer() *Container {
	return &Container{}
}

// NewSeededContainer creates a state container preloaded with the demo
// stores, categories, products, orders and users
func NewSeededContainer() *Container {
	c := NewContainer()
	c.seed()
	return c
}

// Stores returns the store repository view of the container
func (c *Container) Stores() catalog.StoreRepository { return storeRepo{c} }

// Categories returns the category repository view of the container
func (c *Container) Categories() catalog.CategoryRepository { return categoryRepo{c} }

// Products returns the product repository view of the container
func (c *Container) Products() catalog.ProductRepository { return productRepo{c} }

// Orders returns the order ledger view of the container
func (c *Container) Orders() order.Repository { return orderRepo{c} }

// Users returns the user directory view of the container
func (c *Container) Users() user.Repository { return userRepo{c} }

// newID builds a prefixed unique id such as "p3f1a09c2b4d5"
func newID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// --- store repository ---

type storeRepo struct{ c *Container }

func (r storeRepo) List() []catalog.Store {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	out := make([]catalog.Store, len(r.c.stores))
	copy(out, r.c.stores)
	return out
}

func (r storeRepo) Get(id string) (catalog.Store, bool) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	for _, s := range r.c.stores {
		if s.ID == id {
			return s, true
		}
	}
	return catalog.Store{}, false
}

func (r storeRepo) Update(store catalog.Store) bool {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	for i := range r.c.stores {
		if r.c.stores[i].ID == store.ID {
			r.c.stores[i] = store
			return true
		}
	}
	return false
}

// --- category repository ---

type categoryRepo struct{ c *Container }

func (r categoryRepo) List(storeID string) []catalog.Category {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	out := make([]catalog.Category, 0, len(r.c.categories))
	for _, cat := range r.c.categories {
		if storeID == "" || cat.StoreID == storeID {
			out = append(out, cat)
		}
	}
	return out
}

func (r categoryRepo) Get(id string) (catalog.Category, bool) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	for _, cat := range r.c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return catalog.Category{}, false
}

func (r categoryRepo) Create(category catalog.Category) catalog.Category {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	if category.ID == "" {
		category.ID = newID("c")
	}
	r.c.categories = append(r.c.categories, category)
	return category
}

func (r categoryRepo) Update(category catalog.Category) bool {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	for i := range r.c.categories {
		if r.c.categories[i].ID == category.ID {
			r.c.categories[i] = category
			return true
		}
	}
	return false
}

func (r categoryRepo) Delete(id string) bool {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	for i := range r.c.categories {
		if r.c.categories[i].ID == id {
			r.c.categories = append(r.c.categories[:i], r.c.categories[i+1:]...)
			return true
		}
	}
	return false
}

// --- product repository ---

type productRepo struct{ c *Container }

func (r productRepo) List(storeID string) []catalog.Product {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	out := make([]catalog.Product, 0, len(r.c.products))
	for _, p := range r.c.products {
		if storeID == "" || p.StoreID == storeID {
			out = append(out, p)
		}
	}
	return out
}

func (r productRepo) Get(id string) (catalog.Product, bool) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	for _, p := range r.c.products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

func (r productRepo) Create(product catalog.Product) catalog.Product {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	if product.ID == "" {
		product.ID = newID("p")
	}
	r.c.products = append(r.c.products, product)
	return product
}

func (r productRepo) Update(product catalog.Product) bool {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	for i := range r.c.products {
		if r.c.products[i].ID == product.ID {
			r.c.products[i] = product
			return true
		}
	}
	return false
}

func (r productRepo) Delete(id string) bool {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	for i := range r.c.products {
		if r.c.products[i].ID == id {
			r.c.products = append(r.c.products[:i], r.c.products[i+1:]...)
			return true
		}
	}
	return false
}

// --- order ledger ---

type orderRepo struct{ c *Container }

func (r orderRepo) Insert(o order.Order) order.Order {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	if o.ID == "" {
		o.ID = newID("o")
	}
	// Most-recent-first: new orders go to the front of the ledger.
	r.c.orders = append([]order.Order{o}, r.c.orders...)
	return copyOrder(o)
}

func (r orderRepo) Get(id string) (order.Order, bool) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	for _, o := range r.c.orders {
		if o.ID == id {
			return copyOrder(o), true
		}
	}
	return order.Order{}, false
}

func (r orderRepo) List(storeID string) []order.Order {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	out := make([]order.Order, 0, len(r.c.orders))
	for _, o := range r.c.orders {
		if storeID == "" || o.StoreID == storeID {
			out = append(out, copyOrder(o))
		}
	}
	return out
}

func (r orderRepo) Update(o order.Order) bool {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	for i := range r.c.orders {
		if r.c.orders[i].ID == o.ID {
			r.c.orders[i] = copyOrder(o)
			return true
		}
	}
	return false
}

// copyOrder deep-copies the items slice so ledger entries stay frozen
// even if a caller mutates what it was handed.
func copyOrder(o order.Order) order.Order {
	items := make([]order.Item, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

// --- user directory ---

type userRepo struct{ c *Container }

func (r userRepo) List() []user.User {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	out := make([]user.User, len(r.c.users))
	copy(out, r.c.users)
	return out
}

func (r userRepo) Get(id string) (user.User, bool) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	for _, u := range r.c.users {
		if u.ID == id {
			return u, true
		}
	}
	return user.User{}, false
}

func (r userRepo) FindByCredentials(email, password string, role user.Role) (user.User, bool) {
	r.c.mu.RLock()
	defer r.c.mu.RUnlock()

	// Linear scan, exact string equality on all three fields. First match
	// wins; the directory allows duplicate emails.
	for _, u := range r.c.users {
		if u.Email == email && u.Password == password && u.Role == role {
			return u, true
		}
	}
	return user.User{}, false
}

func (r userRepo) Add(u user.User) user.User {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	if u.ID == "" {
		u.ID = newID("u")
	}
	r.c.users = append(r.c.users, u)
	return u
}

func (r userRepo) Delete(id string) bool {
	r.c.mu.Lock()
	defer r.c.mu.Unlock()

	for i := range r.c.users {
		if r.c.users[i].ID == id {
			r.c.users = append(r.c.users[:i], r.c.users[i+1:]...)
			return true
		}
	}
	return false
}
