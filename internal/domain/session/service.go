// internal/domain/session/service.go
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/user"
)

// ErrNotFound is returned when no session exists for the given id
var ErrNotFound = errors.New("session not found")

// ErrInvalidCredentials is returned when the admin gate rejects a login
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrNotAdmin is returned when an admin-track transition is attempted
// from a logged-out admin track
var ErrNotAdmin = errors.New("admin not authenticated")

// ErrUnknownStore is returned when a store selection names no seeded store
var ErrUnknownStore = errors.New("unknown store")

// Session is the process-lifetime record of who is authenticated and what
// is being browsed. The admin and customer tracks are independent: the
// same session can carry an authenticated customer while the admin track
// is logged out, and vice versa.
type Session struct {
	ID            string     `json:"id"`
	IsAdmin       bool       `json:"is_admin"`
	AdminStoreID  string     `json:"admin_store_id,omitempty"` // store the admin has entered, empty when none
	Customer      *user.User `json:"customer,omitempty"`
	ActiveStoreID string     `json:"active_store_id"` // storefront currently being browsed
	CreatedAt     time.Time  `json:"created_at"`
}

// Manager owns all live sessions, keyed by session id
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	config *config.Config
	users  *user.Service
	stores catalog.StoreRepository
}

// NewManager creates a new session manager
func NewManager(cfg *config.Config, users *user.Service, stores catalog.StoreRepository) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		config:   cfg,
		users:    users,
		stores:   stores,
	}
}

// Create starts a fresh anonymous session browsing the first store
func (m *Manager) Create() Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := &Session{
		ID:            uuid.NewString(),
		ActiveStoreID: m.defaultStoreID(),
		CreatedAt:     time.Now().UTC(),
	}
	m.sessions[s.ID] = s
	return m.snapshot(s)
}

// Get returns a snapshot of the session with the given id
func (m *Manager) Get(id string) (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[id]
	if !ok {
		return Session{}, ErrNotFound
	}
	return m.snapshot(s), nil
}

// SetActiveStore switches which storefront the session is browsing.
// The cart is deliberately left untouched on a switch.
func (m *Manager) SetActiveStore(id, storeID string) error {
	if _, ok := m.stores.Get(storeID); !ok {
		return ErrUnknownStore
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.ActiveStoreID = storeID
	return nil
}

// AdminLogin checks the supplied credentials against the single configured
// admin identity. This gate is separate from the user directory.
func (m *Manager) AdminLogin(id, email, password string) error {
	if email != m.config.Admin.Email || password != m.config.Admin.Password {
		return ErrInvalidCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.IsAdmin = true
	return nil
}

// AdminLogout returns the admin track to logged out and clears any store
// selection
func (m *Manager) AdminLogout(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.IsAdmin = false
	s.AdminStoreID = ""
	return nil
}

// EnterStore selects the store the admin is managing
func (m *Manager) EnterStore(id, storeID string) error {
	if _, ok := m.stores.Get(storeID); !ok {
		return ErrUnknownStore
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if !s.IsAdmin {
		return ErrNotAdmin
	}
	s.AdminStoreID = storeID
	return nil
}

// ExitStore returns the admin track to the no-store-selected state
func (m *Manager) ExitStore(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	if !s.IsAdmin {
		return ErrNotAdmin
	}
	s.AdminStoreID = ""
	return nil
}

// CustomerLogin authenticates the customer track against the user directory
func (m *Manager) CustomerLogin(id, email, password string) (user.User, error) {
	u, err := m.users.Authenticate(email, password, user.RoleCustomer)
	if err != nil {
		return user.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return user.User{}, ErrNotFound
	}
	s.Customer = &u
	return u, nil
}

// CustomerSignup inserts a new customer account and immediately
// authenticates it. No duplicate-email check is performed.
func (m *Manager) CustomerSignup(id string, req *user.CreateUserRequest) (user.User, error) {
	req.Role = user.RoleCustomer
	u, err := m.users.Add(req)
	if err != nil {
		return user.User{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return user.User{}, ErrNotFound
	}
	s.Customer = &u
	return u, nil
}

// CustomerLogout returns the customer track to anonymous
func (m *Manager) CustomerLogout(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return ErrNotFound
	}
	s.Customer = nil
	return nil
}

// snapshot copies a session so callers never alias the live record.
// Callers must hold at least a read lock.
func (m *Manager) snapshot(s *Session) Session {
	out := *s
	if s.Customer != nil {
		customer := *s.Customer
		out.Customer = &customer
	}
	return out
}

func (m *Manager) defaultStoreID() string {
	stores := m.stores.List()
	if len(stores) == 0 {
		return ""
	}
	return stores[0].ID
}
