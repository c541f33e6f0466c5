package session

import "github.com/staffboard/tui-go/internal/model"

// Action is a user-initiated operation gated by role.
type Action int

const (
	ActionManageEmployees Action = iota // list/create/edit/delete employees
	ActionCreateTask
	ActionEditTaskFields // title, description, assignee
	ActionDeleteTask
	ActionUpdateTaskStatus
)

// Session holds the current identity and the last-fetched entity lists.
// It is passed explicitly to the components that need it; there is no
// package-level instance. The backend owns the records — the cached lists
// are transient copies, refetched after every mutating call.
type Session struct {
	Role       model.Role
	EmployeeID int
	Name       string

	Employees []model.Employee
	Tasks     []model.Task
}

// New returns an unauthenticated session.
func New() *Session {
	return &Session{}
}

// Login transitions the session to the authenticated state.
func (s *Session) Login(role model.Role, employeeID int, name string) {
	s.Role = role
	s.EmployeeID = employeeID
	s.Name = name
}

// Logout clears the identity and discards the cached lists.
func (s *Session) Logout() {
	s.Role = ""
	s.EmployeeID = 0
	s.Name = ""
	s.Employees = nil
	s.Tasks = nil
}

// Authenticated reports whether a user is logged in.
func (s *Session) Authenticated() bool {
	return s.Role != ""
}

// IsAdmin reports whether the current user is an administrator.
func (s *Session) IsAdmin() bool {
	return s.Role == model.RoleAdmin
}

// CanPerform is the single authorization predicate consulted before every
// role-gated action. It is a UX convenience only — the backend enforces
// the real checks.
func (s *Session) CanPerform(action Action) bool {
	if !s.Authenticated() {
		return false
	}
	switch action {
	case ActionManageEmployees, ActionCreateTask, ActionEditTaskFields, ActionDeleteTask:
		return s.Role == model.RoleAdmin
	case ActionUpdateTaskStatus:
		return true
	default:
		return false
	}
}
