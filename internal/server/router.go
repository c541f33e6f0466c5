package server

import (
	"errors"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffboard/tui-go/internal/model"
	"github.com/staffboard/tui-go/internal/store"
)

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(db *store.DB, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(CORS)
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	employees := store.NewEmployeeStore(db)
	tasks := store.NewTaskStore(db)

	authH := NewAuthHandler(employees)
	empH := NewEmployeeHandler(employees)
	taskH := NewTaskHandler(tasks, employees)

	r.Post("/login", authH.Login)
	r.Post("/register", authH.Register)

	r.Route("/employees", func(r chi.Router) {
		r.Get("/", empH.List)
		r.Get("/{id}", empH.Get)
		r.Put("/{id}", empH.Update)
		r.Delete("/{id}", empH.Delete)
	})

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskH.List)
		r.Post("/", taskH.Create)
		r.Get("/{id}", taskH.Get)
		r.Put("/{id}", taskH.Update)
		r.Delete("/{id}", taskH.Delete)
	})

	r.Get("/my-tasks", taskH.MyTasks)

	return r
}

// EnsureAdmin creates an admin account with the given credentials if the
// email is not registered yet. Used at startup so a fresh database has a
// way in.
func EnsureAdmin(db *store.DB, name, email, password string) error {
	employees := store.NewEmployeeStore(db)
	if _, err := employees.GetByEmail(email); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = employees.Create(name, email, "", hash, model.RoleAdmin)
	return err
}
