package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/staffboard/tui-go/internal/api"
	"github.com/staffboard/tui-go/internal/model"
	"github.com/staffboard/tui-go/internal/session"
	"github.com/staffboard/tui-go/internal/view"
)

// ViewMode represents the current top-level view
type ViewMode int

const (
	ViewModeLogin     ViewMode = iota // Login form (unauthenticated)
	ViewModeEmployees                 // Employee list (admin only)
	ViewModeTasks                     // Task list
)

// modalMode represents the active modal overlay, if any
type modalMode int

const (
	modalNone modalMode = iota
	modalEmployeeForm
	modalTaskForm
	modalConfirm
)

// toastDuration is how long a notification stays visible.
const toastDuration = 3 * time.Second

// Messages
type loginResultMsg struct {
	result *api.LoginResult
	err    error
}

type employeesLoadedMsg struct {
	employees []model.Employee
	err       error
}

type tasksLoadedMsg struct {
	tasks []model.Task
	err   error
}

// employeeFetchedMsg carries the single record fetched for editing.
type employeeFetchedMsg struct {
	employee *model.Employee
	err      error
}

type employeeSavedMsg struct {
	err error
}

type employeeDeletedMsg struct {
	err error
}

type taskSavedMsg struct {
	err error
}

type taskDeletedMsg struct {
	err error
}

// toastExpiredMsg dismisses the toast it was scheduled for. The id guards
// against dismissing a newer toast.
type toastExpiredMsg struct {
	id int
}

// toast is a transient, auto-dismissing notification.
type toast struct {
	id      int
	text    string
	isError bool
}

// confirmTarget is what a pending delete confirmation refers to.
type confirmTarget int

const (
	confirmEmployee confirmTarget = iota
	confirmTask
)

type confirmState struct {
	target confirmTarget
	id     int
	prompt string
}

// Model is the root Bubble Tea model
type Model struct {
	// Terminal dimensions
	width  int
	height int

	// View state
	viewMode ViewMode
	modal    modalMode

	// Collaborators, injected at construction
	client *api.Client
	sess   *session.Session

	// Login form
	emailInput    textinput.Model
	passwordInput textinput.Model
	loginFocus    int
	loggingIn     bool

	// Employees view
	employeeSearch  textinput.Model
	employeeFocused bool
	employeeIndex   int

	// Tasks view
	taskSearch     textinput.Model
	taskFocused    bool
	taskIndex      int
	assigneeFilter *int  // nil = all employees
	statusFilter   *bool // nil = all statuses

	// Modal state
	empForm  employeeForm
	taskForm taskForm
	confirm  confirmState

	// Notifications
	toast    *toast
	toastSeq int

	// Loading states
	loadingEmployees bool
	loadingTasks     bool

	// Key bindings
	keys KeyMap
}

// NewRootModel creates a new root model starting at the login view.
func NewRootModel(client *api.Client, sess *session.Session) Model {
	email := textinput.New()
	email.Placeholder = "Email"
	email.Prompt = ""
	email.CharLimit = 150
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.Prompt = ""
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 150
	password.Width = 40

	empSearch := textinput.New()
	empSearch.Placeholder = "Search name or email..."
	empSearch.Prompt = "/ "
	empSearch.PromptStyle = InputPromptStyle
	empSearch.Width = 40

	taskSearch := textinput.New()
	taskSearch.Placeholder = "Search title..."
	taskSearch.Prompt = "/ "
	taskSearch.PromptStyle = InputPromptStyle
	taskSearch.Width = 40

	return Model{
		viewMode:       ViewModeLogin,
		client:         client,
		sess:           sess,
		emailInput:     email,
		passwordInput:  password,
		employeeSearch: empSearch,
		taskSearch:     taskSearch,
		keys:           DefaultKeyMap(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// --- Commands ---

func (m Model) loginCmd(email, password string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		result, err := client.Login(email, password)
		return loginResultMsg{result: result, err: err}
	}
}

func (m Model) loadEmployeesCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		employees, err := client.ListEmployees()
		return employeesLoadedMsg{employees: employees, err: err}
	}
}

// loadTasksCmd fetches the task list for the current role: admins see every
// task, employees only their own.
func (m Model) loadTasksCmd() tea.Cmd {
	client := m.client
	isAdmin := m.sess.IsAdmin()
	employeeID := m.sess.EmployeeID
	return func() tea.Msg {
		var (
			tasks []model.Task
			err   error
		)
		if isAdmin {
			tasks, err = client.ListTasks()
		} else {
			tasks, err = client.ListMyTasks(employeeID)
		}
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

// fetchEmployeeCmd fetches a single record by id for editing. The cached
// list may be stale, so the form is populated from the backend.
func (m Model) fetchEmployeeCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		emp, err := client.GetEmployee(id)
		return employeeFetchedMsg{employee: emp, err: err}
	}
}

// saveEmployeeCmd routes to update-by-id when editing, registration when
// creating.
func (m Model) saveEmployeeCmd(f employeeForm) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		var err error
		if f.id != 0 {
			_, err = client.UpdateEmployee(f.id, f.updatePayload())
		} else {
			_, err = client.Register(f.createPayload())
		}
		return employeeSavedMsg{err: err}
	}
}

func (m Model) deleteEmployeeCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return employeeDeletedMsg{err: client.DeleteEmployee(id)}
	}
}

// saveTaskCmd submits the role-shaped payload: employees send completion
// status only, admins the full record.
func (m Model) saveTaskCmd(f taskForm) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		var err error
		switch {
		case f.readOnly:
			_, err = client.UpdateTaskStatus(f.id, f.completed)
		case f.id != 0:
			_, err = client.UpdateTask(f.id, f.updatePayload())
		default:
			_, err = client.CreateTask(f.createPayload())
		}
		return taskSavedMsg{err: err}
	}
}

func (m Model) deleteTaskCmd(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return taskDeletedMsg{err: client.DeleteTask(id)}
	}
}

// showToast replaces the current notification and schedules its dismissal.
func (m *Model) showToast(text string, isError bool) tea.Cmd {
	m.toastSeq++
	id := m.toastSeq
	m.toast = &toast{id: id, text: text, isError: isError}
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// --- Update ---

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil

	case loginResultMsg:
		return m.handleLoginResult(msg)

	case employeesLoadedMsg:
		m.loadingEmployees = false
		if msg.err != nil {
			return m, m.showToast("Failed to load employees: "+msg.err.Error(), true)
		}
		m.sess.Employees = msg.employees
		m.clampEmployeeIndex()
		return m, nil

	case tasksLoadedMsg:
		m.loadingTasks = false
		if msg.err != nil {
			return m, m.showToast("Failed to load tasks: "+msg.err.Error(), true)
		}
		m.sess.Tasks = msg.tasks
		m.clampTaskIndex()
		return m, nil

	case employeeFetchedMsg:
		if msg.err != nil {
			// NotFound: surface the message and leave the form closed.
			return m, m.showToast("Error loading employee: "+msg.err.Error(), true)
		}
		m.empForm = editEmployeeForm(*msg.employee)
		m.modal = modalEmployeeForm
		return m, nil

	case employeeSavedMsg:
		m.empForm.saving = false
		if msg.err != nil {
			return m, m.showToast("Save failed: "+msg.err.Error(), true)
		}
		m.modal = modalNone
		m.loadingEmployees = true
		return m, tea.Batch(m.showToast("Employee saved", false), m.loadEmployeesCmd())

	case employeeDeletedMsg:
		if msg.err != nil {
			return m, m.showToast("Delete failed: "+msg.err.Error(), true)
		}
		m.loadingEmployees = true
		return m, tea.Batch(m.showToast("Employee deleted", false), m.loadEmployeesCmd())

	case taskSavedMsg:
		m.taskForm.saving = false
		if msg.err != nil {
			return m, m.showToast("Save failed: "+msg.err.Error(), true)
		}
		m.modal = modalNone
		m.loadingTasks = true
		return m, tea.Batch(m.showToast("Task saved", false), m.loadTasksCmd())

	case taskDeletedMsg:
		if msg.err != nil {
			return m, m.showToast("Delete failed: "+msg.err.Error(), true)
		}
		m.loadingTasks = true
		return m, tea.Batch(m.showToast("Task deleted", false), m.loadTasksCmd())

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleLoginResult routes to the role's landing view: admins land on the
// employee list, employees on their own tasks.
func (m Model) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	m.loggingIn = false
	if msg.err != nil {
		return m, m.showToast(msg.err.Error(), true)
	}

	m.sess.Login(msg.result.Role, msg.result.EmployeeID, msg.result.Name)
	m.passwordInput.SetValue("")

	welcome := m.showToast("Welcome "+msg.result.Name, false)
	if m.sess.IsAdmin() {
		m.viewMode = ViewModeEmployees
		m.loadingEmployees = true
		m.loadingTasks = true
		return m, tea.Batch(welcome, m.loadEmployeesCmd(), m.loadTasksCmd())
	}
	m.viewMode = ViewModeTasks
	m.loadingTasks = true
	return m, tea.Batch(welcome, m.loadTasksCmd())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits; plain q only outside focused text fields.
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Quit) && !m.typing() {
		return m, tea.Quit
	}

	if m.viewMode == ViewModeLogin {
		return m.handleLoginKey(msg)
	}

	switch m.modal {
	case modalEmployeeForm:
		return m.handleEmployeeFormKey(msg)
	case modalTaskForm:
		return m.handleTaskFormKey(msg)
	case modalConfirm:
		return m.handleConfirmKey(msg)
	}

	switch m.viewMode {
	case ViewModeEmployees:
		return m.handleEmployeesKey(msg)
	case ViewModeTasks:
		return m.handleTasksKey(msg)
	}
	return m, nil
}

// typing reports whether a text input currently owns the keyboard.
func (m Model) typing() bool {
	if m.viewMode == ViewModeLogin || m.modal == modalEmployeeForm || m.modal == modalTaskForm {
		return true
	}
	return m.employeeFocused || m.taskFocused
}

// --- Login view ---

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyTab, tea.KeyDown, tea.KeyUp:
		m.loginFocus = 1 - m.loginFocus
		if m.loginFocus == 0 {
			m.emailInput.Focus()
			m.passwordInput.Blur()
		} else {
			m.emailInput.Blur()
			m.passwordInput.Focus()
		}
		return m, nil

	case tea.KeyEnter:
		if m.loggingIn {
			return m, nil
		}
		email := strings.TrimSpace(m.emailInput.Value())
		password := m.passwordInput.Value()
		if email == "" || password == "" {
			return m, m.showToast("Email & password required", true)
		}
		m.loggingIn = true
		return m, m.loginCmd(email, password)
	}

	var cmd tea.Cmd
	if m.loginFocus == 0 {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

// --- Employees view ---

func (m Model) handleEmployeesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.employeeFocused {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.employeeFocused = false
			m.employeeSearch.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.employeeSearch, cmd = m.employeeSearch.Update(msg)
		m.clampEmployeeIndex()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.employeeIndex > 0 {
			m.employeeIndex--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.employeeIndex < len(m.filteredEmployees())-1 {
			m.employeeIndex++
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.employeeFocused = true
		m.employeeSearch.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Tasks):
		return m.switchToTasks()

	case key.Matches(msg, m.keys.Refresh):
		m.loadingEmployees = true
		return m, m.loadEmployeesCmd()

	case key.Matches(msg, m.keys.Logout):
		return m.logout()

	case key.Matches(msg, m.keys.New):
		m.empForm = newEmployeeForm()
		m.modal = modalEmployeeForm
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Enter):
		if emp, ok := m.selectedEmployee(); ok {
			// Fetch by id rather than trusting the cached row.
			return m, m.fetchEmployeeCmd(emp.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if emp, ok := m.selectedEmployee(); ok {
			m.confirm = confirmState{
				target: confirmEmployee,
				id:     emp.ID,
				prompt: fmt.Sprintf("Delete employee %s and their tasks?", emp.Name),
			}
			m.modal = modalConfirm
		}
		return m, nil
	}

	return m, nil
}

// --- Tasks view ---

func (m Model) handleTasksKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.taskFocused {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.taskFocused = false
			m.taskSearch.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.taskSearch, cmd = m.taskSearch.Update(msg)
		m.clampTaskIndex()
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.taskIndex > 0 {
			m.taskIndex--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.taskIndex < len(m.filteredTasks())-1 {
			m.taskIndex++
		}
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.taskFocused = true
		m.taskSearch.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Employees):
		// The employees view does not exist for the employee role.
		if !m.sess.CanPerform(session.ActionManageEmployees) {
			return m, nil
		}
		return m.switchToEmployees()

	case key.Matches(msg, m.keys.Refresh):
		m.loadingTasks = true
		return m, m.loadTasksCmd()

	case key.Matches(msg, m.keys.Logout):
		return m.logout()

	case key.Matches(msg, m.keys.CycleAssign):
		if m.sess.IsAdmin() {
			m.cycleAssigneeFilter()
			m.clampTaskIndex()
		}
		return m, nil

	case key.Matches(msg, m.keys.CycleStatus):
		m.cycleStatusFilter()
		m.clampTaskIndex()
		return m, nil

	case key.Matches(msg, m.keys.New):
		if !m.sess.CanPerform(session.ActionCreateTask) {
			// Denied locally: no request is issued.
			return m, m.showToast("Only admins can create tasks", true)
		}
		m.taskForm = newTaskForm()
		m.modal = modalTaskForm
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Enter):
		if task, ok := m.selectedTask(); ok {
			readOnly := !m.sess.CanPerform(session.ActionEditTaskFields)
			m.taskForm = editTaskForm(task, readOnly)
			m.modal = modalTaskForm
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if !m.sess.CanPerform(session.ActionDeleteTask) {
			return m, m.showToast("Only admins can delete tasks", true)
		}
		if task, ok := m.selectedTask(); ok {
			m.confirm = confirmState{
				target: confirmTask,
				id:     task.ID,
				prompt: fmt.Sprintf("Delete task %q?", task.Title),
			}
			m.modal = modalConfirm
		}
		return m, nil
	}

	return m, nil
}

// --- Modal key handling ---

func (m Model) handleEmployeeFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.empForm.saving {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.modal = modalNone
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		m.empForm.nextField()
		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		m.empForm.prevField()
		return m, nil

	case tea.KeyEnter:
		if errMsg := m.empForm.validate(); errMsg != "" {
			// Precondition failed: no request is sent.
			return m, m.showToast(errMsg, true)
		}
		m.empForm.saving = true
		return m, m.saveEmployeeCmd(m.empForm)
	}

	var cmd tea.Cmd
	m.empForm.inputs[m.empForm.focus], cmd = m.empForm.inputs[m.empForm.focus].Update(msg)
	return m, cmd
}

func (m Model) handleTaskFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.taskForm.saving {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.modal = modalNone
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		m.taskForm.nextField()
		return m, nil

	case tea.KeyShiftTab, tea.KeyUp:
		m.taskForm.prevField()
		return m, nil

	case tea.KeySpace:
		if m.taskForm.focus == taskFieldCompleted {
			m.taskForm.completed = !m.taskForm.completed
			return m, nil
		}

	case tea.KeyEnter:
		if errMsg := m.taskForm.validate(); errMsg != "" {
			return m, m.showToast(errMsg, true)
		}
		m.taskForm.saving = true
		return m, m.saveTaskCmd(m.taskForm)
	}

	if m.taskForm.readOnly || m.taskForm.focus >= len(m.taskForm.inputs) {
		return m, nil
	}
	var cmd tea.Cmd
	m.taskForm.inputs[m.taskForm.focus], cmd = m.taskForm.inputs[m.taskForm.focus].Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		m.modal = modalNone
		if m.confirm.target == confirmEmployee {
			return m, m.deleteEmployeeCmd(m.confirm.id)
		}
		return m, m.deleteTaskCmd(m.confirm.id)

	case "n", "esc":
		m.modal = modalNone
		return m, nil
	}
	return m, nil
}

// --- Navigation ---

// switchToEmployees navigates to the employee list, always refetching it:
// cached data is never reused across a navigation.
func (m Model) switchToEmployees() (tea.Model, tea.Cmd) {
	m.viewMode = ViewModeEmployees
	m.loadingEmployees = true
	return m, m.loadEmployeesCmd()
}

func (m Model) switchToTasks() (tea.Model, tea.Cmd) {
	m.viewMode = ViewModeTasks
	m.loadingTasks = true
	return m, m.loadTasksCmd()
}

func (m Model) logout() (tea.Model, tea.Cmd) {
	m.sess.Logout()
	m.viewMode = ViewModeLogin
	m.modal = modalNone
	m.emailInput.SetValue("")
	m.passwordInput.SetValue("")
	m.employeeSearch.SetValue("")
	m.taskSearch.SetValue("")
	m.assigneeFilter = nil
	m.statusFilter = nil
	m.employeeIndex = 0
	m.taskIndex = 0
	m.loginFocus = 0
	m.emailInput.Focus()
	m.passwordInput.Blur()
	return m, m.showToast("Logged out", false)
}

// --- Filters and selection ---

func (m Model) filteredEmployees() []model.Employee {
	return view.FilterEmployees(m.sess.Employees, m.employeeSearch.Value())
}

func (m Model) filteredTasks() []model.Task {
	return view.FilterTasks(m.sess.Tasks, view.TaskFilter{
		Title:      m.taskSearch.Value(),
		EmployeeID: m.assigneeFilter,
		Completed:  m.statusFilter,
	})
}

func (m *Model) clampEmployeeIndex() {
	if n := len(m.filteredEmployees()); m.employeeIndex >= n {
		m.employeeIndex = n - 1
	}
	if m.employeeIndex < 0 {
		m.employeeIndex = 0
	}
}

func (m *Model) clampTaskIndex() {
	if n := len(m.filteredTasks()); m.taskIndex >= n {
		m.taskIndex = n - 1
	}
	if m.taskIndex < 0 {
		m.taskIndex = 0
	}
}

func (m Model) selectedEmployee() (model.Employee, bool) {
	list := m.filteredEmployees()
	if m.employeeIndex < 0 || m.employeeIndex >= len(list) {
		return model.Employee{}, false
	}
	return list[m.employeeIndex], true
}

func (m Model) selectedTask() (model.Task, bool) {
	list := m.filteredTasks()
	if m.taskIndex < 0 || m.taskIndex >= len(list) {
		return model.Task{}, false
	}
	return list[m.taskIndex], true
}

// cycleAssigneeFilter steps through all employees -> each employee -> all.
func (m *Model) cycleAssigneeFilter() {
	if len(m.sess.Employees) == 0 {
		return
	}
	if m.assigneeFilter == nil {
		id := m.sess.Employees[0].ID
		m.assigneeFilter = &id
		return
	}
	for i, emp := range m.sess.Employees {
		if emp.ID == *m.assigneeFilter {
			if i+1 < len(m.sess.Employees) {
				id := m.sess.Employees[i+1].ID
				m.assigneeFilter = &id
			} else {
				m.assigneeFilter = nil
			}
			return
		}
	}
	m.assigneeFilter = nil
}

// cycleStatusFilter steps all -> open -> done -> all.
func (m *Model) cycleStatusFilter() {
	switch {
	case m.statusFilter == nil:
		f := false
		m.statusFilter = &f
	case !*m.statusFilter:
		f := true
		m.statusFilter = &f
	default:
		m.statusFilter = nil
	}
}

// --- View ---

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	switch {
	case m.viewMode == ViewModeLogin:
		body = m.loginView()
	case m.modal == modalEmployeeForm:
		body = m.empForm.View(m.width, m.height-1)
	case m.modal == modalTaskForm:
		body = m.taskForm.View(m.width, m.height-1)
	case m.modal == modalConfirm:
		body = m.confirmView()
	case m.viewMode == ViewModeEmployees:
		body = m.employeesView()
	default:
		body = m.tasksView()
	}

	return body + "\n" + m.statusBar()
}

func (m Model) loginView() string {
	var content strings.Builder
	content.WriteString(HeaderStyle.Render("STAFFBOARD"))
	content.WriteString(DimStyle.Render(" · Sign in"))
	content.WriteString("\n\n")

	content.WriteString(FieldLabelStyle.Render("Email"))
	content.WriteString("\n")
	content.WriteString(InputStyle.Render(m.emailInput.View()))
	content.WriteString("\n")
	content.WriteString(FieldLabelStyle.Render("Password"))
	content.WriteString("\n")
	content.WriteString(InputStyle.Render(m.passwordInput.View()))
	content.WriteString("\n\n")

	if m.loggingIn {
		content.WriteString(DimStyle.Render("Signing in..."))
	} else {
		content.WriteString(HelpDescStyle.Render("Tab switch field - Enter sign in - Ctrl+C quit"))
	}

	box := ModalStyle.Render(content.String())
	return lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, box)
}

func (m Model) confirmView() string {
	var content strings.Builder
	content.WriteString(ModalTitleStyle.Render("Confirm"))
	content.WriteString("\n\n")
	content.WriteString(RowStyle.Render(m.confirm.prompt))
	content.WriteString("\n\n")
	content.WriteString(HelpDescStyle.Render("y confirm - n cancel"))

	box := ModalStyle.BorderForeground(ColorRed).Render(content.String())
	return lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, box)
}

// topBar renders the header with navigation. The Employees tab is omitted
// entirely for the employee role.
func (m Model) topBar() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("STAFFBOARD"))

	if m.sess.IsAdmin() {
		if m.viewMode == ViewModeEmployees {
			b.WriteString(NavActiveStyle.Render("[Employees]"))
			b.WriteString(NavInactiveStyle.Render("Tasks"))
		} else {
			b.WriteString(NavInactiveStyle.Render("Employees"))
			b.WriteString(NavActiveStyle.Render("[Tasks]"))
		}
	} else {
		b.WriteString(NavActiveStyle.Render("[My Tasks]"))
	}

	b.WriteString(UserStyle.Render(fmt.Sprintf("%s (%s)", m.sess.Name, m.sess.Role)))
	return b.String()
}

func (m Model) employeesView() string {
	var b strings.Builder
	b.WriteString(m.topBar())
	b.WriteString("\n\n")
	b.WriteString(m.employeeSearch.View())
	b.WriteString("\n\n")

	rows := view.EmployeeRows(m.filteredEmployees())
	header := fmt.Sprintf("%-5s %-22s %-26s %-14s %-8s", "ID", "NAME", "EMAIL", "POSITION", "ROLE")
	b.WriteString(TableHeaderStyle.Render(header))
	b.WriteString("\n")

	if m.loadingEmployees {
		b.WriteString(DimStyle.Render(" Loading employees..."))
		b.WriteString("\n")
	} else if len(rows) == 0 {
		b.WriteString(DimStyle.Render(" No employees found"))
		b.WriteString("\n")
	}

	for i, row := range rows {
		line := fmt.Sprintf("%-5d %-22s %-26s %-14s %-8s",
			row.ID, truncate(row.Name, 22), truncate(row.Email, 26), truncate(row.Position, 14), row.Role)
		if i == m.employeeIndex {
			b.WriteString(SelectedRowStyle.Render(line))
		} else {
			b.WriteString(RowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine("enter edit - n new - d delete - / search - t tasks - r refresh - l logout - q quit"))
	return b.String()
}

func (m Model) tasksView() string {
	var b strings.Builder
	b.WriteString(m.topBar())
	b.WriteString("\n\n")
	b.WriteString(m.taskSearch.View())
	b.WriteString("  ")
	b.WriteString(m.filterIndicator())
	b.WriteString("\n\n")

	rows := view.TaskRows(m.filteredTasks())
	header := fmt.Sprintf("%-3s %-5s %-28s %-30s %-8s", "", "ID", "TITLE", "DESCRIPTION", "ASSIGNEE")
	b.WriteString(TableHeaderStyle.Render(header))
	b.WriteString("\n")

	if m.loadingTasks {
		b.WriteString(DimStyle.Render(" Loading tasks..."))
		b.WriteString("\n")
	} else if len(rows) == 0 {
		b.WriteString(DimStyle.Render(" No tasks found"))
		b.WriteString("\n")
	}

	for i, row := range rows {
		icon := TaskOpenStyle.Render(row.Icon)
		if row.Completed {
			icon = TaskDoneStyle.Render(row.Icon)
		}
		line := fmt.Sprintf("%-5d %-28s %-30s %-8s",
			row.ID, truncate(row.Title, 28), truncate(row.Description, 30), row.Assignee)
		if i == m.taskIndex {
			b.WriteString(SelectedRowStyle.Render(icon + " " + line))
		} else {
			b.WriteString(RowStyle.Render(icon + " " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.sess.IsAdmin() {
		b.WriteString(m.helpLine("enter edit - n new - d delete - / search - a assignee - s status - e employees - r refresh - l logout - q quit"))
	} else {
		b.WriteString(m.helpLine("enter update status - / search - s status - r refresh - l logout - q quit"))
	}
	return b.String()
}

// filterIndicator summarizes the active task filters.
func (m Model) filterIndicator() string {
	var parts []string
	if m.assigneeFilter != nil {
		parts = append(parts, "assignee="+strconv.Itoa(*m.assigneeFilter))
	}
	if m.statusFilter != nil {
		if *m.statusFilter {
			parts = append(parts, "status=done")
		} else {
			parts = append(parts, "status=open")
		}
	}
	if len(parts) == 0 {
		return DimStyle.Render("filters: none")
	}
	return HelpKeyStyle.Render("filters: " + strings.Join(parts, " "))
}

func (m Model) helpLine(text string) string {
	return HelpDescStyle.Render(text)
}

// statusBar renders the bottom line: the active toast, or nothing.
func (m Model) statusBar() string {
	if m.toast == nil {
		return StatusBarStyle.Render("")
	}
	if m.toast.isError {
		return ToastErrorStyle.Render("✗ " + m.toast.text)
	}
	return ToastStyle.Render("✓ " + m.toast.text)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
