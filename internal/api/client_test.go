package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/staffboard/tui-go/internal/model"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"detail field", `{"detail":"Email already exists"}`, "Email already exists"},
		{"message field", `{"message":"something broke"}`, "something broke"},
		{"detail preferred over message", `{"detail":"d","message":"m"}`, "d"},
		{"empty object", `{}`, "operation failed"},
		{"unparsable body", `<html>502 Bad Gateway</html>`, "operation failed"},
		{"empty body", ``, "operation failed"},
		{"null fields", `{"detail":null,"message":null}`, "operation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorMessage([]byte(tt.body)); got != tt.want {
				t.Errorf("errorMessage(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var creds Credentials
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			t.Fatalf("decode credentials: %v", err)
		}
		if creds.Email != "a@x.com" || creds.Password != "pass123" {
			t.Errorf("got credentials %+v", creds)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":     "Login successful",
			"employee_id": 4,
			"role":        "admin",
			"name":        "Ava",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.Login("a@x.com", "pass123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.EmployeeID != 4 || result.Role != model.RoleAdmin || result.Name != "Ava" {
		t.Errorf("got result %+v", result)
	}
}

func TestLoginRejectsMissingRole(t *testing.T) {
	// The backend owns role assignment. A success response without a role
	// must fail the login rather than fall back to a client-supplied role.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"message":     "Login successful",
			"employee_id": 4,
			"name":        "Ava",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.Login("a@x.com", "pass123"); err == nil {
		t.Fatal("expected error for login response without role")
	}
}

func TestLoginFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"Invalid password"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Login("a@x.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T: %v", err, err)
	}
	if reqErr.Status != http.StatusBadRequest {
		t.Errorf("got status %d, want 400", reqErr.Status)
	}
	if reqErr.Message != "Invalid password" {
		t.Errorf("got message %q, want %q", reqErr.Message, "Invalid password")
	}
}

func TestNetworkErrorReported(t *testing.T) {
	// Point at a closed server: the request cannot complete and must be
	// reported as a NetworkError, not retried.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL)
	_, err := client.ListEmployees()
	if err == nil {
		t.Fatal("expected error")
	}

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %T: %v", err, err)
	}
}

func TestUpdateTaskStatusPayloadShape(t *testing.T) {
	// The employee-shaped payload must contain only the completed field.
	var body map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/tasks/9" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		json.NewEncoder(w).Encode(model.Task{ID: 9, Title: "T", Completed: true})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	task, err := client.UpdateTaskStatus(9, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !task.Completed {
		t.Error("expected completed task in response")
	}

	if len(body) != 1 {
		t.Errorf("status payload should contain exactly one field, got %v", body)
	}
	if completed, ok := body["completed"].(bool); !ok || !completed {
		t.Errorf("got payload %v, want {\"completed\": true}", body)
	}
}

func TestUpdateTaskSendsExplicitNullAssignee(t *testing.T) {
	var body map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		json.NewEncoder(w).Encode(model.Task{ID: 3, Title: "T"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.UpdateTask(3, TaskUpdate{Title: "T"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	raw, ok := body["employee_id"]
	if !ok {
		t.Fatal("admin update should always include employee_id")
	}
	if string(raw) != "null" {
		t.Errorf("unassigned task should serialize employee_id as null, got %s", raw)
	}
}

func TestRegisterAndList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/register":
			var req EmployeeCreate
			json.NewDecoder(r.Body).Decode(&req)
			json.NewEncoder(w).Encode(model.Employee{
				ID: 1, Name: req.Name, Email: req.Email, Position: req.Position, Role: model.RoleEmployee,
			})
		case r.Method == http.MethodGet && r.URL.Path == "/employees":
			json.NewEncoder(w).Encode([]model.Employee{
				{ID: 1, Name: "A", Email: "a@x.com", Position: "Eng", Role: model.RoleEmployee},
			})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	emp, err := client.Register(EmployeeCreate{Name: "A", Email: "a@x.com", Position: "Eng"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if emp.ID == 0 {
		t.Error("expected backend-assigned id")
	}

	emps, err := client.ListEmployees()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(emps) != 1 || emps[0].Name != "A" || emps[0].Email != "a@x.com" {
		t.Errorf("got employees %+v", emps)
	}
}

func TestListMyTasksQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/my-tasks" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("employee_id"); got != "7" {
			t.Errorf("got employee_id=%q, want 7", got)
		}
		json.NewEncoder(w).Encode([]model.Task{})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	if _, err := client.ListMyTasks(7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
