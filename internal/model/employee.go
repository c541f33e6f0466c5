package model

// Role determines what a logged-in user may do. Admins have full CRUD over
// employees and tasks; employees may only view their own tasks and update
// completion status.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

// IsValid reports whether the role is one of the known values.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Employee represents an employee record owned by the backend.
type Employee struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Position string `json:"position,omitempty"`
	Role     Role   `json:"role"`
}
