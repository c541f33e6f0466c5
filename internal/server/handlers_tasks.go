package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/staffboard/tui-go/internal/store"
)

type TaskHandler struct {
	tasks     *store.TaskStore
	employees *store.EmployeeStore
}

func NewTaskHandler(tasks *store.TaskStore, employees *store.EmployeeStore) *TaskHandler {
	return &TaskHandler{tasks: tasks, employees: employees}
}

type taskCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	EmployeeID  *int   `json:"employee_id"`
}

// Create handles POST /tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req taskCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if !h.assigneeExists(w, req.EmployeeID) {
		return
	}

	task, err := h.tasks.Create(req.Title, req.Description, req.Completed, req.EmployeeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// List handles GET /tasks
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// MyTasks handles GET /my-tasks?employee_id=N
func (h *TaskHandler) MyTasks(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.Atoi(r.URL.Query().Get("employee_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid employee_id")
		return
	}
	tasks, err := h.tasks.ListByEmployee(employeeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

// Get handles GET /tasks/{id}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	task, err := h.tasks.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, task)
}

type taskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
	// Raw so that an explicit null (unassign) can be told apart from an
	// absent field (leave unchanged).
	EmployeeID json.RawMessage `json:"employee_id"`
}

// Update handles PUT /tasks/{id}. Fields absent from the body are left
// unchanged, so a status-only payload from the employee view cannot clobber
// the assignee.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req taskUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := store.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	}
	if len(req.EmployeeID) > 0 {
		patch.SetAssignee = true
		if string(req.EmployeeID) != "null" {
			var assignee int
			if err := json.Unmarshal(req.EmployeeID, &assignee); err != nil {
				writeError(w, http.StatusBadRequest, "invalid employee_id")
				return
			}
			patch.EmployeeID = &assignee
		}
	}
	if !h.assigneeExists(w, patch.EmployeeID) {
		return
	}

	task, err := h.tasks.Update(id, patch)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, task)
}

// Delete handles DELETE /tasks/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := h.tasks.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted"})
}

// assigneeExists rejects references to employees that are not in the store.
// A nil assignee is always fine.
func (h *TaskHandler) assigneeExists(w http.ResponseWriter, employeeID *int) bool {
	if employeeID == nil {
		return true
	}
	_, err := h.employees.Get(*employeeID)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusBadRequest, "Employee not found")
		return false
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return false
	}
	return true
}
