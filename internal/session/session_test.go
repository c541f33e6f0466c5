package session

import (
	"testing"

	"github.com/staffboard/tui-go/internal/model"
)

func TestLoginLogout(t *testing.T) {
	s := New()

	if s.Authenticated() {
		t.Fatal("new session should not be authenticated")
	}

	s.Login(model.RoleEmployee, 7, "Dana")
	if !s.Authenticated() {
		t.Fatal("expected authenticated after login")
	}
	if s.EmployeeID != 7 || s.Name != "Dana" {
		t.Errorf("got employeeID=%d name=%q, want 7/Dana", s.EmployeeID, s.Name)
	}

	s.Employees = []model.Employee{{ID: 1, Name: "A"}}
	s.Tasks = []model.Task{{ID: 1, Title: "T"}}

	s.Logout()
	if s.Authenticated() {
		t.Error("expected unauthenticated after logout")
	}
	if s.EmployeeID != 0 || s.Name != "" {
		t.Errorf("logout left identity fields set: id=%d name=%q", s.EmployeeID, s.Name)
	}
	if s.Employees != nil || s.Tasks != nil {
		t.Error("logout should discard cached lists")
	}
}

func TestCanPerform(t *testing.T) {
	tests := []struct {
		name   string
		role   model.Role
		action Action
		want   bool
	}{
		{"admin manages employees", model.RoleAdmin, ActionManageEmployees, true},
		{"admin creates task", model.RoleAdmin, ActionCreateTask, true},
		{"admin edits task fields", model.RoleAdmin, ActionEditTaskFields, true},
		{"admin deletes task", model.RoleAdmin, ActionDeleteTask, true},
		{"admin updates status", model.RoleAdmin, ActionUpdateTaskStatus, true},
		{"employee cannot manage employees", model.RoleEmployee, ActionManageEmployees, false},
		{"employee cannot create task", model.RoleEmployee, ActionCreateTask, false},
		{"employee cannot edit task fields", model.RoleEmployee, ActionEditTaskFields, false},
		{"employee cannot delete task", model.RoleEmployee, ActionDeleteTask, false},
		{"employee updates status", model.RoleEmployee, ActionUpdateTaskStatus, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Login(tt.role, 1, "x")
			if got := s.CanPerform(tt.action); got != tt.want {
				t.Errorf("CanPerform(%v) as %s = %v, want %v", tt.action, tt.role, got, tt.want)
			}
		})
	}
}

func TestCanPerformUnauthenticated(t *testing.T) {
	s := New()
	for _, a := range []Action{ActionManageEmployees, ActionCreateTask, ActionUpdateTaskStatus} {
		if s.CanPerform(a) {
			t.Errorf("unauthenticated session should not perform action %v", a)
		}
	}
}
