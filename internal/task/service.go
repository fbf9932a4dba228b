package task

import (
	"context"
	"errors"
	"time"
)

// Common errors
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidPriority = errors.New("invalid task priority")
)

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	Title    string  `json:"title" validate:"required,min=1,max=255"`
	Notes    *string `json:"notes,omitempty"`
	Priority string  `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	DueDate  *string `json:"due_date,omitempty"` // YYYY-MM-DD
}

// UpdateTaskRequest represents the request to update a task
type UpdateTaskRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Notes    *string `json:"notes,omitempty"`
	Priority *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	DueDate  *string `json:"due_date,omitempty"`
}

// Service handles task business logic
type Service struct {
	repo *Repository
}

// NewService creates a new task service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

func parseDueDate(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// Create creates a new task
func (s *Service) Create(ctx context.Context, userID int64, req *CreateTaskRequest) (*Task, error) {
	priority := Priority(req.Priority)
	if req.Priority == "" {
		priority = PriorityMedium
	}
	if !ValidPriority(priority) {
		return nil, ErrInvalidPriority
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, userID, req.Title, req.Notes, priority, dueDate)
}

// List retrieves a user's tasks, optionally filtered by done state
func (s *Service) List(ctx context.Context, userID int64, done *bool) ([]*Task, error) {
	return s.repo.List(ctx, userID, done)
}

// Update modifies a task
func (s *Service) Update(ctx context.Context, id, userID int64, req *UpdateTaskRequest) (*Task, error) {
	var priority *Priority
	if req.Priority != nil {
		p := Priority(*req.Priority)
		if !ValidPriority(p) {
			return nil, ErrInvalidPriority
		}
		priority = &p
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		return nil, err
	}

	task, err := s.repo.Update(ctx, id, userID, req.Title, req.Notes, priority, dueDate)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// SetDone toggles a task's completion state
func (s *Service) SetDone(ctx context.Context, id, userID int64, done bool) (*Task, error) {
	task, err := s.repo.SetDone(ctx, id, userID, done)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// Delete removes a task
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	return s.repo.Delete(ctx, id, userID)
}
