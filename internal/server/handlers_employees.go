package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffboard/tui-go/internal/store"
)

type EmployeeHandler struct {
	employees *store.EmployeeStore
}

func NewEmployeeHandler(employees *store.EmployeeStore) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// List handles GET /employees
func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

// Get handles GET /employees/{id}
func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	emp, err := h.employees.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

type employeeUpdateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Position *string `json:"position"`
	Password *string `json:"password"`
}

// Update handles PUT /employees/{id}
func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req employeeUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email != nil {
		if other, err := h.employees.GetByEmail(*req.Email); err == nil && other.ID != id {
			writeError(w, http.StatusBadRequest, "Email already exists")
			return
		}
	}

	upd := store.EmployeeUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Position: req.Position,
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		upd.PasswordHash = hash
	}

	emp, err := h.employees.Update(id, upd)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

// Delete handles DELETE /employees/{id}. Tasks assigned to the employee are
// removed with it.
func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	err := h.employees.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted"})
}

// pathID parses the {id} URL parameter, writing a 400 on garbage.
func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
