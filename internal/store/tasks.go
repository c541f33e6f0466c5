package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/staffboard/tui-go/internal/model"
)

// TaskPatch carries a partial task update. Nil fields are left unchanged.
// The assignee needs a presence flag of its own because "set to null"
// (unassign) and "not mentioned" are different requests.
type TaskPatch struct {
	Title       *string
	Description *string
	Completed   *bool
	SetAssignee bool
	EmployeeID  *int
}

// TaskStore provides CRUD operations for tasks.
type TaskStore struct {
	db *DB
}

// NewTaskStore creates a new task store.
func NewTaskStore(db *DB) *TaskStore {
	return &TaskStore{db: db}
}

// Create inserts a new task and returns the stored row.
func (s *TaskStore) Create(title, description string, completed bool, employeeID *int) (*model.Task, error) {
	res, err := s.db.Exec(
		`INSERT INTO tasks (title, description, completed, employee_id) VALUES (?, ?, ?, ?)`,
		title, description, completed, nullableInt(employeeID),
	)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return &model.Task{
		ID:          int(id),
		Title:       title,
		Description: description,
		Completed:   completed,
		EmployeeID:  employeeID,
	}, nil
}

// List returns all tasks ordered by id.
func (s *TaskStore) List() ([]model.Task, error) {
	return s.queryTasks(`SELECT id, title, description, completed, employee_id FROM tasks ORDER BY id`)
}

// ListByEmployee returns the tasks assigned to one employee.
func (s *TaskStore) ListByEmployee(employeeID int) ([]model.Task, error) {
	return s.queryTasks(
		`SELECT id, title, description, completed, employee_id FROM tasks WHERE employee_id = ? ORDER BY id`,
		employeeID)
}

func (s *TaskStore) queryTasks(query string, args ...any) ([]model.Task, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

// Get returns one task by id.
func (s *TaskStore) Get(id int) (*model.Task, error) {
	row := s.db.QueryRow(
		`SELECT id, title, description, completed, employee_id FROM tasks WHERE id = ?`, id)
	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return t, err
}

// Update applies a partial update and returns the resulting row.
func (s *TaskStore) Update(id int, patch TaskPatch) (*model.Task, error) {
	sets := []string{}
	args := []any{}
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, *patch.Completed)
	}
	if patch.SetAssignee {
		sets = append(sets, "employee_id = ?")
		args = append(args, nullableInt(patch.EmployeeID))
	}

	if len(sets) > 0 {
		args = append(args, id)
		res, err := s.db.Exec(
			"UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return nil, fmt.Errorf("update task: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return nil, ErrNotFound
		}
	}

	return s.Get(id)
}

// Delete removes a task.
func (s *TaskStore) Delete(id int) error {
	res, err := s.db.Exec(`DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*model.Task, error) {
	var t model.Task
	var assignee sql.NullInt64
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &assignee); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	if assignee.Valid {
		id := int(assignee.Int64)
		t.EmployeeID = &id
	}
	return &t, nil
}

func nullableInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
