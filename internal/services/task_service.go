package services

import (
	"context"
	"database/sql"
	"errors"

	"taskdeck/internal/models"
)

// TaskServiceProvider defines the interface for task services.
type TaskServiceProvider interface {
	ListTasksByUser(ctx context.Context, userID int64) ([]models.Task, error)
	GetTask(ctx context.Context, id int64) (models.Task, error)
	CreateTask(ctx context.Context, name, date string, userID int64) (models.Task, error)
	RenameTask(ctx context.Context, id int64, name string) error
	DeleteTask(ctx context.Context, id int64) error
}

// TaskService provides CRUD operations over the tasks table.
type TaskService struct {
	db *sql.DB
}

// NewTaskService creates a new TaskService.
func NewTaskService(db *sql.DB) *TaskService {
	return &TaskService{db: db}
}

// ListTasksByUser returns the tasks owned by a user in insertion order.
func (s *TaskService) ListTasksByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, date, user_id FROM tasks WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.Name, &t.Date, &t.UserID); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// GetTask retrieves a single task by its ID. The lookup is by ID alone;
// edit and delete act on whatever it returns without comparing the owner
// to the caller, matching the system being replaced.
func (s *TaskService) GetTask(ctx context.Context, id int64) (models.Task, error) {
	var t models.Task
	row := s.db.QueryRowContext(ctx, "SELECT id, name, date, user_id FROM tasks WHERE id = ?", id)
	err := row.Scan(&t.ID, &t.Name, &t.Date, &t.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrNotFound
		}
		return models.Task{}, err
	}
	return t, nil
}

// CreateTask inserts a task for the given owner. The date string is
// captured once here and never rewritten.
func (s *TaskService) CreateTask(ctx context.Context, name, date string, userID int64) (models.Task, error) {
	res, err := s.db.ExecContext(ctx, "INSERT INTO tasks(name, date, user_id) VALUES(?, ?, ?)", name, date, userID)
	if err != nil {
		return models.Task{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Task{}, err
	}
	return s.GetTask(ctx, id)
}

// RenameTask overwrites the name field only.
func (s *TaskService) RenameTask(ctx context.Context, id int64, name string) error {
	res, err := s.db.ExecContext(ctx, "UPDATE tasks SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteTask removes a task. Deleting an absent ID reports ErrNotFound
// rather than succeeding silently.
func (s *TaskService) DeleteTask(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
