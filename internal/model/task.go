package model

// Task represents a task record owned by the backend. EmployeeID is nil for
// unassigned tasks.
type Task struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Completed   bool   `json:"completed"`
	EmployeeID  *int   `json:"employee_id"`
}

// StatusIcon returns the icon for the task's completion state.
func (t Task) StatusIcon() string {
	if t.Completed {
		return "✓"
	}
	return "○"
}

// AssignedTo reports whether the task is assigned to the given employee.
func (t Task) AssignedTo(employeeID int) bool {
	return t.EmployeeID != nil && *t.EmployeeID == employeeID
}
