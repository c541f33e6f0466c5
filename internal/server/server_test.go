package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/staffboard/tui-go/internal/api"
	"github.com/staffboard/tui-go/internal/model"
	"github.com/staffboard/tui-go/internal/store"
)

// startTestServer boots the full router on an in-memory database and returns
// an API client pointed at it.
func startTestServer(t *testing.T) (*api.Client, *store.DB) {
	t.Helper()
	db, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(NewRouter(db, logger))
	t.Cleanup(srv.Close)

	return api.NewClient(srv.URL), db
}

func seedAdmin(t *testing.T, db *store.DB) {
	t.Helper()
	if err := EnsureAdmin(db, "Admin", "admin@example.com", "secret"); err != nil {
		t.Fatalf("seed admin: %v", err)
	}
}

func TestAdminWorkflow(t *testing.T) {
	client, db := startTestServer(t)
	seedAdmin(t, db)

	login, err := client.Login("admin@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if login.Role != model.RoleAdmin {
		t.Fatalf("got role %q, want admin", login.Role)
	}

	emp, err := client.Register(api.EmployeeCreate{
		Name: "Ava", Email: "ava@example.com", Position: "Engineer", Password: "pw123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	employees, err := client.ListEmployees()
	if err != nil {
		t.Fatalf("list employees: %v", err)
	}
	found := false
	for _, e := range employees {
		if e.ID == emp.ID && e.Name == "Ava" {
			found = true
		}
	}
	if !found {
		t.Fatalf("created employee missing from list: %+v", employees)
	}

	task, err := client.CreateTask(api.TaskCreate{Title: "Onboard", EmployeeID: &emp.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	mine, err := client.ListMyTasks(emp.ID)
	if err != nil {
		t.Fatalf("my tasks: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != task.ID {
		t.Fatalf("assignee filter wrong: %+v", mine)
	}

	if _, err := client.UpdateTaskStatus(task.ID, true); err != nil {
		t.Fatalf("update status: %v", err)
	}

	got, err := client.GetTask(task.ID)
	if err != nil {
		t.Fatalf("get task: %v", err)
	}
	if !got.Completed {
		t.Error("task should be completed after the status update")
	}
	if got.EmployeeID == nil || *got.EmployeeID != emp.ID {
		t.Error("status-only update must not clobber the assignee")
	}
}

func TestLoginFailures(t *testing.T) {
	client, db := startTestServer(t)
	seedAdmin(t, db)

	tests := []struct {
		name     string
		email    string
		password string
		status   int
		detail   string
	}{
		{"unknown email", "nobody@example.com", "x", 400, "Invalid email"},
		{"wrong password", "admin@example.com", "wrong", 400, "Invalid password"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Login(tt.email, tt.password)
			var reqErr *api.RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("got %v, want RequestError", err)
			}
			if reqErr.Status != tt.status || reqErr.Message != tt.detail {
				t.Errorf("got %d %q, want %d %q", reqErr.Status, reqErr.Message, tt.status, tt.detail)
			}
		})
	}
}

func TestExpiredPasswordRejectedWithForbidden(t *testing.T) {
	client, db := startTestServer(t)
	seedAdmin(t, db)

	// Age the password past the expiry window.
	if _, err := db.Exec(`UPDATE employees SET last_password_change = 0`); err != nil {
		t.Fatalf("age password: %v", err)
	}

	_, err := client.Login("admin@example.com", "secret")
	var reqErr *api.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("got %v, want RequestError", err)
	}
	if reqErr.Status != 403 {
		t.Errorf("got status %d, want 403", reqErr.Status)
	}
	if reqErr.Message != "Password expired, please update." {
		t.Errorf("got message %q", reqErr.Message)
	}

	// Changing the password through the employee endpoint unlocks login.
	rec, err := store.NewEmployeeStore(db).GetByEmail("admin@example.com")
	if err != nil {
		t.Fatalf("lookup admin: %v", err)
	}
	if _, err := client.UpdateEmployee(rec.ID, api.EmployeeUpdate{Password: api.String("fresh")}); err != nil {
		t.Fatalf("update password: %v", err)
	}
	if _, err := client.Login("admin@example.com", "fresh"); err != nil {
		t.Errorf("login after password change: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	client, db := startTestServer(t)
	seedAdmin(t, db)

	_, err := client.Register(api.EmployeeCreate{Name: "Clone", Email: "admin@example.com"})
	var reqErr *api.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("got %v, want RequestError", err)
	}
	if reqErr.Status != 400 || reqErr.Message != "Email already exists" {
		t.Errorf("got %d %q", reqErr.Status, reqErr.Message)
	}
}

func TestRegisterDefaultsRoleAndPassword(t *testing.T) {
	client, _ := startTestServer(t)

	emp, err := client.Register(api.EmployeeCreate{Name: "Eve", Email: "eve@example.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if emp.Role != model.RoleEmployee {
		t.Errorf("got role %q, want employee", emp.Role)
	}

	// The default password works for login.
	login, err := client.Login("eve@example.com", defaultPassword)
	if err != nil {
		t.Fatalf("login with default password: %v", err)
	}
	if login.EmployeeID != emp.ID {
		t.Errorf("got employee id %d, want %d", login.EmployeeID, emp.ID)
	}
}

func TestDeleteEmployeeCascadesAndIsNotIdempotent(t *testing.T) {
	client, _ := startTestServer(t)

	emp, err := client.Register(api.EmployeeCreate{Name: "Ava", Email: "ava@example.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := client.CreateTask(api.TaskCreate{Title: "T1", EmployeeID: &emp.ID}); err != nil {
		t.Fatalf("create task: %v", err)
	}

	if err := client.DeleteEmployee(emp.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	tasks, err := client.ListTasks()
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("assigned tasks must be removed with the employee, got %+v", tasks)
	}

	err = client.DeleteEmployee(emp.ID)
	var reqErr *api.RequestError
	if !errors.As(err, &reqErr) || reqErr.Status != 404 {
		t.Errorf("second delete should 404, got %v", err)
	}
}

func TestTaskUpdateDistinguishesNullFromAbsent(t *testing.T) {
	client, _ := startTestServer(t)

	emp, err := client.Register(api.EmployeeCreate{Name: "Ava", Email: "ava@example.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	task, err := client.CreateTask(api.TaskCreate{Title: "T", EmployeeID: &emp.ID})
	if err != nil {
		t.Fatalf("create task: %v", err)
	}

	// Full update with a nil assignee unassigns.
	updated, err := client.UpdateTask(task.ID, api.TaskUpdate{Title: "T", Completed: false})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.EmployeeID != nil {
		t.Errorf("explicit null must unassign, got %v", updated.EmployeeID)
	}
}

func TestTaskCreateRejectsUnknownAssignee(t *testing.T) {
	client, _ := startTestServer(t)

	missing := 999
	_, err := client.CreateTask(api.TaskCreate{Title: "T", EmployeeID: &missing})
	var reqErr *api.RequestError
	if !errors.As(err, &reqErr) || reqErr.Status != 400 {
		t.Fatalf("got %v, want 400 RequestError", err)
	}
}

func TestTaskNotFound(t *testing.T) {
	client, _ := startTestServer(t)

	_, err := client.GetTask(42)
	var reqErr *api.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("got %v, want RequestError", err)
	}
	if reqErr.Status != 404 || reqErr.Message != "Task not found" {
		t.Errorf("got %d %q", reqErr.Status, reqErr.Message)
	}

	err = client.DeleteTask(42)
	if !errors.As(err, &reqErr) || reqErr.Status != 404 {
		t.Errorf("delete missing task: %v", err)
	}
}
