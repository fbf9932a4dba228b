package finance

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository handles transaction persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new finance repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new transaction
func (r *Repository) Create(ctx context.Context, userID int64, kind Kind, amount float64, category string, note *string, occurredAt time.Time) (*Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, kind, amount, category, note, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, kind, amount, category, note, occurred_at, created_at
	`

	tx := &Transaction{}
	err := r.db.QueryRowContext(ctx, query, userID, kind, amount, category, note, occurredAt).Scan(
		&tx.ID,
		&tx.UserID,
		&tx.Kind,
		&tx.Amount,
		&tx.Category,
		&tx.Note,
		&tx.OccurredAt,
		&tx.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return tx, nil
}

// ListByMonth retrieves a user's transactions with occurred_at inside [from, to)
func (r *Repository) ListByMonth(ctx context.Context, userID int64, from, to time.Time) ([]*Transaction, error) {
	query := `
		SELECT id, user_id, kind, amount, category, note, occurred_at, created_at
		FROM transactions
		WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3
		ORDER BY occurred_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*Transaction
	for rows.Next() {
		tx := &Transaction{}
		if err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.Kind,
			&tx.Amount,
			&tx.Category,
			&tx.Note,
			&tx.OccurredAt,
			&tx.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, nil
}

// SumByKind totals a user's transactions of one kind within [from, to)
func (r *Repository) SumByKind(ctx context.Context, userID int64, kind Kind, from, to time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND kind = $2 AND occurred_at >= $3 AND occurred_at < $4
	`

	var total float64
	if err := r.db.QueryRowContext(ctx, query, userID, kind, from, to).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}

	return total, nil
}

// ExpensesByCategory totals a user's expenses per category within [from, to)
func (r *Repository) ExpensesByCategory(ctx context.Context, userID int64, from, to time.Time) ([]CategoryTotal, error) {
	query := `
		SELECT category, COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE user_id = $1 AND kind = 'expense' AND occurred_at >= $2 AND occurred_at < $3
		GROUP BY category
		ORDER BY SUM(amount) DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to group expenses: %w", err)
	}
	defer rows.Close()

	var totals []CategoryTotal
	for rows.Next() {
		var ct CategoryTotal
		if err := rows.Scan(&ct.Category, &ct.Total); err != nil {
			return nil, fmt.Errorf("failed to scan category total: %w", err)
		}
		totals = append(totals, ct)
	}

	return totals, nil
}

// Update modifies a transaction owned by the given user
func (r *Repository) Update(ctx context.Context, id, userID int64, amount *float64, category, note *string, occurredAt *time.Time) (*Transaction, error) {
	query := `
		UPDATE transactions
		SET amount = COALESCE($3, amount),
		    category = COALESCE($4, category),
		    note = COALESCE($5, note),
		    occurred_at = COALESCE($6, occurred_at)
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, kind, amount, category, note, occurred_at, created_at
	`

	tx := &Transaction{}
	err := r.db.QueryRowContext(ctx, query, id, userID, amount, category, note, occurredAt).Scan(
		&tx.ID,
		&tx.UserID,
		&tx.Kind,
		&tx.Amount,
		&tx.Category,
		&tx.Note,
		&tx.OccurredAt,
		&tx.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return tx, nil
}

// Delete removes a transaction owned by the given user
func (r *Repository) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}
