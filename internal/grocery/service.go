package grocery

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrItemNotFound = errors.New("grocery item not found")
)

// CreateItemRequest represents the request to add a grocery item
type CreateItemRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Quantity int    `json:"quantity,omitempty" validate:"omitempty,min=1"`
}

// UpdateItemRequest represents the request to update a grocery item
type UpdateItemRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Quantity *int    `json:"quantity,omitempty" validate:"omitempty,min=1"`
}

// Service handles grocery list business logic
type Service struct {
	repo *Repository
}

// NewService creates a new grocery service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create adds an item to the list
func (s *Service) Create(ctx context.Context, userID int64, req *CreateItemRequest) (*Item, error) {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return s.repo.Create(ctx, userID, req.Name, quantity)
}

// List retrieves the user's grocery list
func (s *Service) List(ctx context.Context, userID int64) ([]*Item, error) {
	return s.repo.List(ctx, userID)
}

// Update modifies an item
func (s *Service) Update(ctx context.Context, id, userID int64, req *UpdateItemRequest) (*Item, error) {
	item, err := s.repo.Update(ctx, id, userID, req.Name, req.Quantity)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// SetChecked toggles an item's checked state
func (s *Service) SetChecked(ctx context.Context, id, userID int64, checked bool) (*Item, error) {
	item, err := s.repo.SetChecked(ctx, id, userID, checked)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Delete removes an item
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	return s.repo.Delete(ctx, id, userID)
}

// ClearChecked removes all checked items
func (s *Service) ClearChecked(ctx context.Context, userID int64) (int64, error) {
	return s.repo.DeleteChecked(ctx, userID)
}
