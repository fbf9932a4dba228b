package grocery

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles grocery list persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new grocery repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new grocery item
func (r *Repository) Create(ctx context.Context, userID int64, name string, quantity int) (*Item, error) {
	query := `
		INSERT INTO grocery_items (user_id, name, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, quantity, checked, created_at
	`

	item := &Item{}
	err := r.db.QueryRowContext(ctx, query, userID, name, quantity).Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.Quantity,
		&item.Checked,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create grocery item: %w", err)
	}

	return item, nil
}

// List retrieves a user's grocery items, unchecked first
func (r *Repository) List(ctx context.Context, userID int64) ([]*Item, error) {
	query := `
		SELECT id, user_id, name, quantity, checked, created_at
		FROM grocery_items
		WHERE user_id = $1
		ORDER BY checked, created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list grocery items: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Name,
			&item.Quantity,
			&item.Checked,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan grocery item: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

// Update modifies a grocery item owned by the given user
func (r *Repository) Update(ctx context.Context, id, userID int64, name *string, quantity *int) (*Item, error) {
	query := `
		UPDATE grocery_items
		SET name = COALESCE($3, name),
		    quantity = COALESCE($4, quantity)
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, quantity, checked, created_at
	`

	item := &Item{}
	err := r.db.QueryRowContext(ctx, query, id, userID, name, quantity).Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.Quantity,
		&item.Checked,
		&item.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update grocery item: %w", err)
	}

	return item, nil
}

// SetChecked sets the checked flag on an item
func (r *Repository) SetChecked(ctx context.Context, id, userID int64, checked bool) (*Item, error) {
	query := `
		UPDATE grocery_items
		SET checked = $3
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, quantity, checked, created_at
	`

	item := &Item{}
	err := r.db.QueryRowContext(ctx, query, id, userID, checked).Scan(
		&item.ID,
		&item.UserID,
		&item.Name,
		&item.Quantity,
		&item.Checked,
		&item.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to set grocery item checked: %w", err)
	}

	return item, nil
}

// Delete removes a grocery item owned by the given user
func (r *Repository) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM grocery_items WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete grocery item: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// DeleteChecked removes all checked items and returns how many were removed
func (r *Repository) DeleteChecked(ctx context.Context, userID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM grocery_items WHERE user_id = $1 AND checked`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear checked items: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected, nil
}
