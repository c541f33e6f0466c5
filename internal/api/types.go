package api

import "github.com/staffboard/tui-go/internal/model"

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the successful login response.
type LoginResult struct {
	Message    string     `json:"message"`
	EmployeeID int        `json:"employee_id"`
	Role       model.Role `json:"role"`
	Name       string     `json:"name"`
}

// EmployeeCreate is the registration payload. An empty password lets the
// backend assign its default.
type EmployeeCreate struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Position string `json:"position,omitempty"`
	Password string `json:"password,omitempty"`
}

// EmployeeUpdate is a partial employee update. Nil fields are omitted so
// the backend leaves them unchanged. An empty password is never sent —
// omitting it means no password change.
type EmployeeUpdate struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Position *string `json:"position,omitempty"`
	Password *string `json:"password,omitempty"`
}

// TaskCreate is the task creation payload (admin only).
type TaskCreate struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	EmployeeID  *int   `json:"employee_id"`
}

// TaskUpdate is the admin-shaped task update: the full record, with a nil
// EmployeeID serialized as an explicit null to unassign the task.
type TaskUpdate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	EmployeeID  *int   `json:"employee_id"`
}

// TaskStatusUpdate is the employee-shaped task update: completion status
// only. No other field is present in the payload.
type TaskStatusUpdate struct {
	Completed bool `json:"completed"`
}

// String pointer helper for building partial updates.
func String(s string) *string { return &s }

// Int pointer helper for building partial updates.
func Int(i int) *int { return &i }

// Bool pointer helper for building partial updates.
func Bool(b bool) *bool { return &b }
