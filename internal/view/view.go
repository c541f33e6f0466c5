// Package view derives display rows from fetched entity lists. Everything
// here is a pure function of its inputs so it can be tested without a
// terminal; the TUI layer only styles the rows it is handed.
package view

import (
	"html"
	"strconv"
	"strings"

	"github.com/staffboard/tui-go/internal/model"
)

// EmployeeRow is a display-ready employee with user-supplied fields
// escaped.
type EmployeeRow struct {
	ID       int
	Name     string
	Email    string
	Position string
	Role     string
}

// TaskRow is a display-ready task with user-supplied fields escaped.
type TaskRow struct {
	ID          int
	Title       string
	Description string
	Assignee    string // employee id as text, empty when unassigned
	Completed   bool
	Icon        string
}

// FilterEmployees returns the employees whose name or email contains the
// query, case-insensitively. An empty query matches all; order is
// preserved.
func FilterEmployees(list []model.Employee, query string) []model.Employee {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return list
	}
	var out []model.Employee
	for _, emp := range list {
		if strings.Contains(strings.ToLower(emp.Name), q) ||
			strings.Contains(strings.ToLower(emp.Email), q) {
			out = append(out, emp)
		}
	}
	return out
}

// TaskFilter is the set of independently-combinable task filters. A zero
// field means "match all" for that dimension; active filters compose with
// logical AND.
type TaskFilter struct {
	Title      string
	EmployeeID *int
	Completed  *bool
}

// FilterTasks returns the tasks matching every active filter dimension.
func FilterTasks(list []model.Task, f TaskFilter) []model.Task {
	q := strings.ToLower(strings.TrimSpace(f.Title))
	var out []model.Task
	for _, t := range list {
		if q != "" && !strings.Contains(strings.ToLower(t.Title), q) {
			continue
		}
		if f.EmployeeID != nil && !t.AssignedTo(*f.EmployeeID) {
			continue
		}
		if f.Completed != nil && t.Completed != *f.Completed {
			continue
		}
		out = append(out, t)
	}
	return out
}

// EmployeeRows builds display rows from employees. Name and email are
// user-supplied and escaped before display so injected markup renders as
// text.
func EmployeeRows(list []model.Employee) []EmployeeRow {
	rows := make([]EmployeeRow, 0, len(list))
	for _, emp := range list {
		rows = append(rows, EmployeeRow{
			ID:       emp.ID,
			Name:     Escape(emp.Name),
			Email:    Escape(emp.Email),
			Position: Escape(emp.Position),
			Role:     string(emp.Role),
		})
	}
	return rows
}

// TaskRows builds display rows from tasks.
func TaskRows(list []model.Task) []TaskRow {
	rows := make([]TaskRow, 0, len(list))
	for _, t := range list {
		assignee := ""
		if t.EmployeeID != nil {
			assignee = strconv.Itoa(*t.EmployeeID)
		}
		rows = append(rows, TaskRow{
			ID:          t.ID,
			Title:       Escape(t.Title),
			Description: Escape(t.Description),
			Assignee:    assignee,
			Completed:   t.Completed,
			Icon:        t.StatusIcon(),
		})
	}
	return rows
}

// Escape neutralizes markup in a user-supplied string. Escaping is a
// correctness requirement for every displayed user field, not cosmetic.
func Escape(s string) string {
	return html.EscapeString(s)
}
