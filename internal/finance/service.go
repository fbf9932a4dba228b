package finance

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Common errors
var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidKind         = errors.New("kind must be income or expense")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidMonth        = errors.New("month must be formatted as YYYY-MM")
)

// CreateTransactionRequest represents the request to record a transaction
type CreateTransactionRequest struct {
	Kind       string  `json:"kind" validate:"required,oneof=income expense"`
	Amount     float64 `json:"amount" validate:"required,gt=0"`
	Category   string  `json:"category" validate:"required,min=1,max=100"`
	Note       *string `json:"note,omitempty"`
	OccurredAt string  `json:"occurred_at" validate:"required"` // YYYY-MM-DD
}

// UpdateTransactionRequest represents the request to update a transaction
type UpdateTransactionRequest struct {
	Amount     *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Category   *string  `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	Note       *string  `json:"note,omitempty"`
	OccurredAt *string  `json:"occurred_at,omitempty"`
}

// Service handles finance business logic
type Service struct {
	repo *Repository
}

// NewService creates a new finance service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// monthWindow converts "YYYY-MM" into the [first day, first day of next month) range
func monthWindow(month string) (time.Time, time.Time, error) {
	from, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, month)
	}
	return from, from.AddDate(0, 1, 0), nil
}

// Create records a new transaction
func (s *Service) Create(ctx context.Context, userID int64, req *CreateTransactionRequest) (*Transaction, error) {
	kind := Kind(req.Kind)
	if !ValidKind(kind) {
		return nil, ErrInvalidKind
	}
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	occurredAt, err := time.Parse("2006-01-02", req.OccurredAt)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, userID, kind, req.Amount, req.Category, req.Note, occurredAt)
}

// ListByMonth retrieves all of a user's transactions for one month
func (s *Service) ListByMonth(ctx context.Context, userID int64, month string) ([]*Transaction, error) {
	from, to, err := monthWindow(month)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByMonth(ctx, userID, from, to)
}

// Summary aggregates a month: income and expense totals, net, and the
// per-category expense breakdown
func (s *Service) Summary(ctx context.Context, userID int64, month string) (*MonthlySummary, error) {
	from, to, err := monthWindow(month)
	if err != nil {
		return nil, err
	}

	income, err := s.repo.SumByKind(ctx, userID, KindIncome, from, to)
	if err != nil {
		return nil, err
	}
	expense, err := s.repo.SumByKind(ctx, userID, KindExpense, from, to)
	if err != nil {
		return nil, err
	}
	byCategory, err := s.repo.ExpensesByCategory(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	return &MonthlySummary{
		Month:        month,
		IncomeTotal:  income,
		ExpenseTotal: expense,
		Net:          income - expense,
		ByCategory:   byCategory,
	}, nil
}

// Update modifies a transaction
func (s *Service) Update(ctx context.Context, id, userID int64, req *UpdateTransactionRequest) (*Transaction, error) {
	if req.Amount != nil && *req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var occurredAt *time.Time
	if req.OccurredAt != nil {
		parsed, err := time.Parse("2006-01-02", *req.OccurredAt)
		if err != nil {
			return nil, err
		}
		occurredAt = &parsed
	}

	tx, err := s.repo.Update(ctx, id, userID, req.Amount, req.Category, req.Note, occurredAt)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, ErrTransactionNotFound
	}
	return tx, nil
}

// Delete removes a transaction
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	return s.repo.Delete(ctx, id, userID)
}
