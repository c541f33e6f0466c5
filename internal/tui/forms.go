package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/staffboard/tui-go/internal/api"
	"github.com/staffboard/tui-go/internal/model"
)

// Employee form field indices
const (
	empFieldName = iota
	empFieldEmail
	empFieldPosition
	empFieldPassword
	empFieldCount
)

// employeeForm manages the create/edit modal for one employee.
type employeeForm struct {
	id     int // 0 when creating
	title  string
	inputs [empFieldCount]textinput.Model
	focus  int
	saving bool
}

func newFormInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 150
	ti.Width = 40
	return ti
}

// newEmployeeForm returns a blank create form.
func newEmployeeForm() employeeForm {
	f := employeeForm{title: "Add Employee"}
	f.inputs[empFieldName] = newFormInput("Name")
	f.inputs[empFieldEmail] = newFormInput("Email")
	f.inputs[empFieldPosition] = newFormInput("Position")
	f.inputs[empFieldPassword] = newFormInput("Password (blank = default)")
	f.inputs[empFieldPassword].EchoMode = textinput.EchoPassword
	f.inputs[empFieldName].Focus()
	return f
}

// editEmployeeForm returns a form populated from a freshly fetched record.
func editEmployeeForm(emp model.Employee) employeeForm {
	f := newEmployeeForm()
	f.id = emp.ID
	f.title = "Edit Employee"
	f.inputs[empFieldName].SetValue(emp.Name)
	f.inputs[empFieldEmail].SetValue(emp.Email)
	f.inputs[empFieldPosition].SetValue(emp.Position)
	f.inputs[empFieldPassword].Placeholder = "Password (blank = unchanged)"
	return f
}

// validate checks the client-side preconditions. It returns an error
// message, or "" when the form may be submitted.
func (f employeeForm) validate() string {
	if strings.TrimSpace(f.inputs[empFieldName].Value()) == "" ||
		strings.TrimSpace(f.inputs[empFieldEmail].Value()) == "" {
		return "Name & email required"
	}
	return ""
}

// createPayload builds the registration request.
func (f employeeForm) createPayload() api.EmployeeCreate {
	return api.EmployeeCreate{
		Name:     strings.TrimSpace(f.inputs[empFieldName].Value()),
		Email:    strings.TrimSpace(f.inputs[empFieldEmail].Value()),
		Position: strings.TrimSpace(f.inputs[empFieldPosition].Value()),
		Password: f.inputs[empFieldPassword].Value(),
	}
}

// updatePayload builds the partial update. An empty password field means no
// password change, so the field is omitted entirely.
func (f employeeForm) updatePayload() api.EmployeeUpdate {
	req := api.EmployeeUpdate{
		Name:     api.String(strings.TrimSpace(f.inputs[empFieldName].Value())),
		Email:    api.String(strings.TrimSpace(f.inputs[empFieldEmail].Value())),
		Position: api.String(strings.TrimSpace(f.inputs[empFieldPosition].Value())),
	}
	if pw := f.inputs[empFieldPassword].Value(); pw != "" {
		req.Password = api.String(pw)
	}
	return req
}

func (f *employeeForm) focusField(i int) {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focus = i
	f.inputs[i].Focus()
}

func (f *employeeForm) nextField() { f.focusField((f.focus + 1) % empFieldCount) }
func (f *employeeForm) prevField() { f.focusField((f.focus + empFieldCount - 1) % empFieldCount) }

// View renders the employee modal centered in the window.
func (f employeeForm) View(width, height int) string {
	labels := [empFieldCount]string{"Name", "Email", "Position", "Password"}

	var content strings.Builder
	content.WriteString(ModalTitleStyle.Render(f.title))
	content.WriteString("\n\n")

	for i := range f.inputs {
		label := FieldLabelStyle
		if i == f.focus {
			label = FieldLabelFocusedStyle
		}
		content.WriteString(label.Render(labels[i]))
		content.WriteString("\n")
		content.WriteString(InputStyle.Render(f.inputs[i].View()))
		content.WriteString("\n")
	}

	content.WriteString("\n")
	if f.saving {
		content.WriteString(DimStyle.Render("Saving..."))
	} else {
		content.WriteString(HelpDescStyle.Render("Tab next field - Enter save - Esc cancel"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		ModalStyle.Render(content.String()))
}

// Task form field indices
const (
	taskFieldTitle = iota
	taskFieldDesc
	taskFieldAssignee
	taskFieldCompleted
	taskFieldCount
)

// taskForm manages the create/edit modal for one task. In read-only mode
// (employee role) only the completed toggle is editable; the other fields
// are displayed as static text.
type taskForm struct {
	id        int // 0 when creating
	header    string
	readOnly  bool
	inputs    [3]textinput.Model // title, description, assignee
	completed bool
	focus     int
	saving    bool
}

// newTaskForm returns a blank create form (admin only).
func newTaskForm() taskForm {
	f := taskForm{header: "Add Task"}
	f.inputs[taskFieldTitle] = newFormInput("Title")
	f.inputs[taskFieldDesc] = newFormInput("Description")
	f.inputs[taskFieldAssignee] = newFormInput("Employee id (blank = unassigned)")
	f.inputs[taskFieldTitle].Focus()
	return f
}

// editTaskForm returns a form populated from the listed task. readOnly
// locks every field except the completed toggle.
func editTaskForm(task model.Task, readOnly bool) taskForm {
	f := newTaskForm()
	f.id = task.ID
	f.header = "Edit Task"
	f.readOnly = readOnly
	f.completed = task.Completed
	f.inputs[taskFieldTitle].SetValue(task.Title)
	f.inputs[taskFieldDesc].SetValue(task.Description)
	if task.EmployeeID != nil {
		f.inputs[taskFieldAssignee].SetValue(strconv.Itoa(*task.EmployeeID))
	}
	if readOnly {
		f.header = "Update Status"
		f.focus = taskFieldCompleted
		f.inputs[taskFieldTitle].Blur()
	}
	return f
}

// validate checks the client-side preconditions for the acting role.
func (f taskForm) validate() string {
	if f.readOnly {
		return ""
	}
	if strings.TrimSpace(f.inputs[taskFieldTitle].Value()) == "" {
		return "Title required"
	}
	if _, err := f.assigneeID(); err != nil {
		return "Assignee must be an employee id"
	}
	return ""
}

// assigneeID parses the assignee field. A blank field means unassigned.
func (f taskForm) assigneeID() (*int, error) {
	v := strings.TrimSpace(f.inputs[taskFieldAssignee].Value())
	if v == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// createPayload builds the admin creation request. validate must have
// passed first.
func (f taskForm) createPayload() api.TaskCreate {
	assignee, _ := f.assigneeID()
	return api.TaskCreate{
		Title:       strings.TrimSpace(f.inputs[taskFieldTitle].Value()),
		Description: strings.TrimSpace(f.inputs[taskFieldDesc].Value()),
		Completed:   f.completed,
		EmployeeID:  assignee,
	}
}

// updatePayload builds the admin-shaped full update.
func (f taskForm) updatePayload() api.TaskUpdate {
	assignee, _ := f.assigneeID()
	return api.TaskUpdate{
		Title:       strings.TrimSpace(f.inputs[taskFieldTitle].Value()),
		Description: strings.TrimSpace(f.inputs[taskFieldDesc].Value()),
		Completed:   f.completed,
		EmployeeID:  assignee,
	}
}

func (f *taskForm) focusField(i int) {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focus = i
	if i < len(f.inputs) {
		f.inputs[i].Focus()
	}
}

func (f *taskForm) nextField() {
	if f.readOnly {
		return
	}
	f.focusField((f.focus + 1) % taskFieldCount)
}

func (f *taskForm) prevField() {
	if f.readOnly {
		return
	}
	f.focusField((f.focus + taskFieldCount - 1) % taskFieldCount)
}

func (f taskForm) completedLabel() string {
	if f.completed {
		return "[x] completed"
	}
	return "[ ] completed"
}

// View renders the task modal centered in the window.
func (f taskForm) View(width, height int) string {
	labels := [3]string{"Title", "Description", "Assignee"}

	var content strings.Builder
	content.WriteString(ModalTitleStyle.Render(f.header))
	content.WriteString("\n\n")

	for i := range f.inputs {
		label := FieldLabelStyle
		if !f.readOnly && i == f.focus {
			label = FieldLabelFocusedStyle
		}
		content.WriteString(label.Render(labels[i]))
		content.WriteString("\n")
		if f.readOnly {
			content.WriteString(ReadOnlyFieldStyle.Render("  " + f.inputs[i].Value()))
		} else {
			content.WriteString(InputStyle.Render(f.inputs[i].View()))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	toggle := FieldLabelStyle
	if f.focus == taskFieldCompleted {
		toggle = FieldLabelFocusedStyle
	}
	content.WriteString(toggle.Render(f.completedLabel()))
	content.WriteString("\n\n")

	if f.saving {
		content.WriteString(DimStyle.Render("Saving..."))
	} else if f.readOnly {
		content.WriteString(HelpDescStyle.Render("Space toggle - Enter save - Esc cancel"))
	} else {
		content.WriteString(HelpDescStyle.Render("Tab next field - Space toggle done - Enter save - Esc cancel"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		ModalStyle.Render(content.String()))
}
