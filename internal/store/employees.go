package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/staffboard/tui-go/internal/model"
)

// EmployeeRecord is the full stored row, including the credential columns
// that never leave the server.
type EmployeeRecord struct {
	model.Employee
	PasswordHash       []byte
	LastPasswordChange time.Time
}

// EmployeeUpdate carries a partial update. Nil fields are left unchanged.
// A non-nil PasswordHash also resets the password-change timestamp.
type EmployeeUpdate struct {
	Name         *string
	Email        *string
	Position     *string
	PasswordHash []byte
}

// EmployeeStore provides CRUD operations for employees.
type EmployeeStore struct {
	db *DB
}

// NewEmployeeStore creates a new employee store.
func NewEmployeeStore(db *DB) *EmployeeStore {
	return &EmployeeStore{db: db}
}

// Create inserts a new employee and returns the stored row.
func (s *EmployeeStore) Create(name, email, position string, passwordHash []byte, role model.Role) (*model.Employee, error) {
	res, err := s.db.Exec(
		`INSERT INTO employees (name, email, position, password_hash, role, last_password_change)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		name, email, position, passwordHash, string(role), time.Now().Unix(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert employee: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return &model.Employee{
		ID:       int(id),
		Name:     name,
		Email:    email,
		Position: position,
		Role:     role,
	}, nil
}

// List returns all employees ordered by id.
func (s *EmployeeStore) List() ([]model.Employee, error) {
	rows, err := s.db.Query(
		`SELECT id, name, email, position, role FROM employees ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query employees: %w", err)
	}
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Email, &e.Position, &e.Role); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Get returns one employee by id.
func (s *EmployeeStore) Get(id int) (*model.Employee, error) {
	var e model.Employee
	err := s.db.QueryRow(
		`SELECT id, name, email, position, role FROM employees WHERE id = ?`, id).
		Scan(&e.ID, &e.Name, &e.Email, &e.Position, &e.Role)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query employee: %w", err)
	}
	return &e, nil
}

// GetByEmail returns the full stored record for the given email, used by
// login to reach the credential columns.
func (s *EmployeeStore) GetByEmail(email string) (*EmployeeRecord, error) {
	var rec EmployeeRecord
	var changed int64
	err := s.db.QueryRow(
		`SELECT id, name, email, position, role, password_hash, last_password_change
		 FROM employees WHERE email = ?`, email).
		Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Position, &rec.Role,
			&rec.PasswordHash, &changed)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query employee by email: %w", err)
	}
	rec.LastPasswordChange = time.Unix(changed, 0)
	return &rec, nil
}

// Update applies a partial update and returns the resulting row.
func (s *EmployeeStore) Update(id int, upd EmployeeUpdate) (*model.Employee, error) {
	sets := []string{}
	args := []any{}
	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *upd.Email)
	}
	if upd.Position != nil {
		sets = append(sets, "position = ?")
		args = append(args, *upd.Position)
	}
	if upd.PasswordHash != nil {
		sets = append(sets, "password_hash = ?", "last_password_change = ?")
		args = append(args, upd.PasswordHash, time.Now().Unix())
	}

	if len(sets) > 0 {
		args = append(args, id)
		res, err := s.db.Exec(
			"UPDATE employees SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return nil, fmt.Errorf("update employee: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return nil, ErrNotFound
		}
	}

	return s.Get(id)
}

// Delete removes an employee. Assigned tasks go with it via the foreign key
// cascade.
func (s *EmployeeStore) Delete(id int) error {
	res, err := s.db.Exec(`DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
