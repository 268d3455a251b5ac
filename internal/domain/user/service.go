// internal/domain/user/service.go
package user

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a lookup by id matches nothing
var ErrNotFound = errors.New("user not found")

// ErrInvalidCredentials is returned when no directory entry matches the
// supplied email, password and role exactly
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrValidation is returned when a mutation is rejected before any state change
var ErrValidation = errors.New("validation failed")

// Service handles user directory business logic
type Service struct {
	users Repository
}

// NewService creates a new user service
func NewService(users Repository) *Service {
	return &Service{users: users}
}

// CreateUserRequest represents an add-user payload (signup or admin add)
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     Role   `json:"role"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// Users returns all directory accounts
func (s *Service) Users() []User {
	return s.users.List()
}

// Authenticate runs the exact-equality credential scan. Email comparison
// is case-sensitive with no normalization.
func (s *Service) Authenticate(email, password string, role Role) (User, error) {
	u, ok := s.users.FindByCredentials(email, password, role)
	if !ok {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}

// Add validates and appends a new account. Duplicate emails are allowed;
// the directory does not enforce uniqueness.
func (s *Service) Add(req *CreateUserRequest) (User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return User{}, fmt.Errorf("name, email and password are required: %w", ErrValidation)
	}

	role := req.Role
	if role == "" {
		role = RoleCustomer
	}
	if role != RoleAdmin && role != RoleCustomer {
		return User{}, fmt.Errorf("unknown role %q: %w", role, ErrValidation)
	}

	u := User{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Role:       role,
		JoinedDate: time.Now().UTC().Format("2006-01-02"),
		Phone:      req.Phone,
		Address:    req.Address,
	}

	return s.users.Add(u), nil
}

// Delete removes the account matching the given id
func (s *Service) Delete(id string) error {
	if !s.users.Delete(id) {
		return fmt.Errorf("user %q: %w", id, ErrNotFound)
	}
	return nil
}
