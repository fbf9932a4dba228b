package task

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository handles task persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new task repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new task
func (r *Repository) Create(ctx context.Context, userID int64, title string, notes *string, priority Priority, dueDate *time.Time) (*Task, error) {
	query := `
		INSERT INTO tasks (user_id, title, notes, priority, due_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, title, notes, priority, due_date, done, created_at
	`

	task := &Task{}
	err := r.db.QueryRowContext(ctx, query, userID, title, notes, priority, dueDate).Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Notes,
		&task.Priority,
		&task.DueDate,
		&task.Done,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

// List retrieves a user's tasks, optionally filtered by done state
func (r *Repository) List(ctx context.Context, userID int64, done *bool) ([]*Task, error) {
	query := `
		SELECT id, user_id, title, notes, priority, due_date, done, created_at
		FROM tasks
		WHERE user_id = $1 AND ($2::boolean IS NULL OR done = $2)
		ORDER BY done, due_date NULLS LAST, created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, done)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*Task
	for rows.Next() {
		task := &Task{}
		if err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&task.Notes,
			&task.Priority,
			&task.DueDate,
			&task.Done,
			&task.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// GetByID retrieves a task owned by the given user
func (r *Repository) GetByID(ctx context.Context, id, userID int64) (*Task, error) {
	query := `
		SELECT id, user_id, title, notes, priority, due_date, done, created_at
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	task := &Task{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Notes,
		&task.Priority,
		&task.DueDate,
		&task.Done,
		&task.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// Update modifies a task owned by the given user
func (r *Repository) Update(ctx context.Context, id, userID int64, title, notes *string, priority *Priority, dueDate *time.Time) (*Task, error) {
	query := `
		UPDATE tasks
		SET title = COALESCE($3, title),
		    notes = COALESCE($4, notes),
		    priority = COALESCE($5, priority),
		    due_date = COALESCE($6, due_date)
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, notes, priority, due_date, done, created_at
	`

	task := &Task{}
	err := r.db.QueryRowContext(ctx, query, id, userID, title, notes, priority, dueDate).Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Notes,
		&task.Priority,
		&task.DueDate,
		&task.Done,
		&task.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

// SetDone sets a task's done flag
func (r *Repository) SetDone(ctx context.Context, id, userID int64, done bool) (*Task, error) {
	query := `
		UPDATE tasks
		SET done = $3
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, notes, priority, due_date, done, created_at
	`

	task := &Task{}
	err := r.db.QueryRowContext(ctx, query, id, userID, done).Scan(
		&task.ID,
		&task.UserID,
		&task.Title,
		&task.Notes,
		&task.Priority,
		&task.DueDate,
		&task.Done,
		&task.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to set task done: %w", err)
	}

	return task, nil
}

// Delete removes a task owned by the given user
func (r *Repository) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
