package server

import (
	"errors"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffboard/tui-go/internal/model"
	"github.com/staffboard/tui-go/internal/store"
)

// passwordMaxAge is how long a password stays valid before login demands a
// change.
const passwordMaxAge = 60 * 24 * time.Hour

// defaultPassword is assigned when an admin registers an employee without
// choosing one.
const defaultPassword = "changeme"

type AuthHandler struct {
	employees *store.EmployeeStore
}

func NewAuthHandler(employees *store.EmployeeStore) *AuthHandler {
	return &AuthHandler{employees: employees}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message    string     `json:"message"`
	EmployeeID int        `json:"employee_id"`
	Role       model.Role `json:"role"`
	Name       string     `json:"name"`
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.employees.GetByEmail(req.Email)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusBadRequest, "Invalid email")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if bcrypt.CompareHashAndPassword(rec.PasswordHash, []byte(req.Password)) != nil {
		writeError(w, http.StatusBadRequest, "Invalid password")
		return
	}

	if time.Since(rec.LastPasswordChange) > passwordMaxAge {
		writeError(w, http.StatusForbidden, "Password expired, please update.")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Message:    "Login successful",
		EmployeeID: rec.ID,
		Role:       rec.Role,
		Name:       rec.Name,
	})
}

type registerRequest struct {
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Position string     `json:"position"`
	Password string     `json:"password"`
	Role     model.Role `json:"role"`
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "name and email are required")
		return
	}
	if req.Role == "" {
		req.Role = model.RoleEmployee
	}
	if !req.Role.IsValid() {
		writeError(w, http.StatusBadRequest, "invalid role")
		return
	}

	if _, err := h.employees.GetByEmail(req.Email); err == nil {
		writeError(w, http.StatusBadRequest, "Email already exists")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	password := req.Password
	if password == "" {
		password = defaultPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	emp, err := h.employees.Create(req.Name, req.Email, req.Position, hash, req.Role)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, emp)
}
