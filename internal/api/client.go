package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/staffboard/tui-go/internal/model"
)

const (
	// DefaultBaseURL is the backend API endpoint used when no configuration
	// is present.
	DefaultBaseURL = "http://localhost:8000"

	// defaultErrorMessage is reported when an error body carries no
	// detail/message field or cannot be parsed.
	defaultErrorMessage = "operation failed"
)

// Client is a staffboard backend API client. Every operation is a single
// fire-once request: no retries, no backoff. Requests run to completion and
// their result is reported exactly once.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client for the given base URL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RequestError is a non-2xx response from the backend. Message is the
// human-readable text extracted from the error body.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// NetworkError is a request that could not complete at all (no response).
// It reports a generic message; the transport detail is kept for logs.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "request failed: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// do executes a single JSON request. On non-2xx it extracts a
// human-readable message from the body; on success it unmarshals the body
// into result when result is non-nil.
func (c *Client) do(method, path string, body, result interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{Status: resp.StatusCode, Message: errorMessage(respBody)}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}

	return nil
}

// errorMessage extracts the user-facing text from an error body. The
// backend reports {"detail": ...}; {"message": ...} is accepted as a
// fallback. Unparsable bodies fall back to a generic message rather than
// propagating the parse failure.
func errorMessage(body []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	return defaultErrorMessage
}

// Login authenticates with email and password. The backend must supply the
// role; a response without a valid role is treated as a failed login rather
// than trusting a client-asserted fallback.
func (c *Client) Login(email, password string) (*LoginResult, error) {
	var result LoginResult
	if err := c.do(http.MethodPost, "/login", Credentials{Email: email, Password: password}, &result); err != nil {
		return nil, err
	}
	if !result.Role.IsValid() {
		return nil, fmt.Errorf("login response missing role")
	}
	return &result, nil
}

// Register creates a new employee account. Employee creation is a side
// effect of registration; there is no separate create endpoint.
func (c *Client) Register(req EmployeeCreate) (*model.Employee, error) {
	var emp model.Employee
	if err := c.do(http.MethodPost, "/register", req, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

// ListEmployees returns all employees.
func (c *Client) ListEmployees() ([]model.Employee, error) {
	var emps []model.Employee
	if err := c.do(http.MethodGet, "/employees", nil, &emps); err != nil {
		return nil, err
	}
	return emps, nil
}

// GetEmployee returns a single employee by id.
func (c *Client) GetEmployee(id int) (*model.Employee, error) {
	var emp model.Employee
	if err := c.do(http.MethodGet, fmt.Sprintf("/employees/%d", id), nil, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

// UpdateEmployee applies a partial update to an employee. Nil fields are
// omitted from the payload and left unchanged by the backend.
func (c *Client) UpdateEmployee(id int, req EmployeeUpdate) (*model.Employee, error) {
	var emp model.Employee
	if err := c.do(http.MethodPut, fmt.Sprintf("/employees/%d", id), req, &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

// DeleteEmployee deletes an employee. The backend cascade-deletes the
// employee's tasks; the client does not clean them up separately.
func (c *Client) DeleteEmployee(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/employees/%d", id), nil, nil)
}

// ListTasks returns all tasks (admin view).
func (c *Client) ListTasks() ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ListMyTasks returns the tasks assigned to the given employee.
func (c *Client) ListMyTasks(employeeID int) ([]model.Task, error) {
	var tasks []model.Task
	if err := c.do(http.MethodGet, fmt.Sprintf("/my-tasks?employee_id=%d", employeeID), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask returns a single task by id.
func (c *Client) GetTask(id int) (*model.Task, error) {
	var task model.Task
	if err := c.do(http.MethodGet, fmt.Sprintf("/tasks/%d", id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a new task.
func (c *Client) CreateTask(req TaskCreate) (*model.Task, error) {
	var task model.Task
	if err := c.do(http.MethodPost, "/tasks", req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask applies the admin-shaped full update to a task.
func (c *Client) UpdateTask(id int, req TaskUpdate) (*model.Task, error) {
	var task model.Task
	if err := c.do(http.MethodPut, fmt.Sprintf("/tasks/%d", id), req, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTaskStatus applies the employee-shaped update: completion status
// only. No other field is included in the payload.
func (c *Client) UpdateTaskStatus(id int, completed bool) (*model.Task, error) {
	var task model.Task
	if err := c.do(http.MethodPut, fmt.Sprintf("/tasks/%d", id), TaskStatusUpdate{Completed: completed}, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(id int) error {
	return c.do(http.MethodDelete, fmt.Sprintf("/tasks/%d", id), nil, nil)
}
