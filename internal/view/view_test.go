package view

import (
	"reflect"
	"strings"
	"testing"

	"github.com/staffboard/tui-go/internal/model"
)

func intp(i int) *int    { return &i }
func boolp(b bool) *bool { return &b }

var employees = []model.Employee{
	{ID: 1, Name: "Ada Lovelace", Email: "ada@x.com", Position: "Eng", Role: model.RoleAdmin},
	{ID: 2, Name: "Grace Hopper", Email: "grace@y.com", Position: "Eng", Role: model.RoleEmployee},
	{ID: 3, Name: "Bob", Email: "bob@ada-consulting.com", Position: "Ops", Role: model.RoleEmployee},
}

func TestFilterEmployees(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantIDs []int
	}{
		{"empty query matches all", "", []int{1, 2, 3}},
		{"whitespace query matches all", "   ", []int{1, 2, 3}},
		{"name substring", "grace", []int{2}},
		{"case insensitive", "GRACE", []int{2}},
		{"matches name or email", "ada", []int{1, 3}},
		{"email domain", "y.com", []int{2}},
		{"no match", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterEmployees(employees, tt.query)
			var ids []int
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("got ids %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

func TestFilterEmployeesPreservesOrder(t *testing.T) {
	got := FilterEmployees(employees, "")
	for i := range got {
		if got[i].ID != employees[i].ID {
			t.Fatalf("order changed at %d: got %d, want %d", i, got[i].ID, employees[i].ID)
		}
	}
}

var tasks = []model.Task{
	{ID: 1, Title: "Write report", EmployeeID: intp(1), Completed: false},
	{ID: 2, Title: "Review report", EmployeeID: intp(2), Completed: true},
	{ID: 3, Title: "Deploy service", EmployeeID: intp(1), Completed: true},
	{ID: 4, Title: "Plan sprint", EmployeeID: nil, Completed: false},
}

func TestFilterTasks(t *testing.T) {
	tests := []struct {
		name    string
		filter  TaskFilter
		wantIDs []int
	}{
		{"no filters", TaskFilter{}, []int{1, 2, 3, 4}},
		{"title substring", TaskFilter{Title: "report"}, []int{1, 2}},
		{"title case insensitive", TaskFilter{Title: "REPORT"}, []int{1, 2}},
		{"employee filter", TaskFilter{EmployeeID: intp(1)}, []int{1, 3}},
		{"completed filter", TaskFilter{Completed: boolp(true)}, []int{2, 3}},
		{"open filter", TaskFilter{Completed: boolp(false)}, []int{1, 4}},
		{"employee AND completed", TaskFilter{EmployeeID: intp(1), Completed: boolp(true)}, []int{3}},
		{"all three dimensions", TaskFilter{Title: "report", EmployeeID: intp(1), Completed: boolp(false)}, []int{1}},
		{"employee filter excludes unassigned", TaskFilter{EmployeeID: intp(99)}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterTasks(tasks, tt.filter)
			var ids []int
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("got ids %v, want %v", ids, tt.wantIDs)
			}
		})
	}
}

// The displayed set must equal the intersection of each individual filter's
// matches.
func TestFilterTasksIsIntersection(t *testing.T) {
	f := TaskFilter{Title: "report", EmployeeID: intp(1), Completed: boolp(false)}

	combined := map[int]bool{}
	for _, task := range FilterTasks(tasks, f) {
		combined[task.ID] = true
	}

	intersection := map[int]bool{}
	for _, task := range tasks {
		inTitle := false
		for _, m := range FilterTasks(tasks, TaskFilter{Title: f.Title}) {
			if m.ID == task.ID {
				inTitle = true
			}
		}
		inEmp := false
		for _, m := range FilterTasks(tasks, TaskFilter{EmployeeID: f.EmployeeID}) {
			if m.ID == task.ID {
				inEmp = true
			}
		}
		inStatus := false
		for _, m := range FilterTasks(tasks, TaskFilter{Completed: f.Completed}) {
			if m.ID == task.ID {
				inStatus = true
			}
		}
		if inTitle && inEmp && inStatus {
			intersection[task.ID] = true
		}
	}

	if !reflect.DeepEqual(combined, intersection) {
		t.Errorf("combined filter %v != intersection %v", combined, intersection)
	}
}

func TestTaskRowsEscapeMarkup(t *testing.T) {
	rows := TaskRows([]model.Task{
		{ID: 1, Title: `<script>alert("x")</script>`, Description: "a & b"},
	})

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if !strings.Contains(rows[0].Title, "&lt;script&gt;") {
		t.Errorf("title not escaped: %q", rows[0].Title)
	}
	if strings.Contains(rows[0].Title, "<script>") {
		t.Errorf("executable markup survived escaping: %q", rows[0].Title)
	}
	if rows[0].Description != "a &amp; b" {
		t.Errorf("description not escaped: %q", rows[0].Description)
	}
}

func TestEmployeeRowsEscapeMarkup(t *testing.T) {
	rows := EmployeeRows([]model.Employee{
		{ID: 1, Name: "<b>bold</b>", Email: `"quoted"@x.com`},
	})

	if rows[0].Name != "&lt;b&gt;bold&lt;/b&gt;" {
		t.Errorf("name not escaped: %q", rows[0].Name)
	}
	if strings.Contains(rows[0].Email, `"`) {
		t.Errorf("email quotes not escaped: %q", rows[0].Email)
	}
}

func TestTaskRowAssignee(t *testing.T) {
	rows := TaskRows([]model.Task{
		{ID: 1, Title: "a", EmployeeID: intp(12)},
		{ID: 2, Title: "b", EmployeeID: nil},
	})
	if rows[0].Assignee != "12" {
		t.Errorf("got assignee %q, want 12", rows[0].Assignee)
	}
	if rows[1].Assignee != "" {
		t.Errorf("unassigned task should have empty assignee, got %q", rows[1].Assignee)
	}
}
