// internal/domain/user/entity.go
package user

// Role represents a directory account role
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "customer"
)

// User represents a directory account. Passwords are stored and compared
// in the clear; hardening the credential model is out of scope here.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"-"`
	Role       Role   `json:"role"`
	JoinedDate string `json:"joined_date"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
}

// Repository provides access to the user directory. Add appends without
// any duplicate-email check; FindByCredentials returns the first match.
type Repository interface {
	List() []User
	Get(id string) (User, bool)
	FindByCredentials(email, password string, role Role) (User, bool)
	Add(u User) User
	Delete(id string) bool
}
