package splitbill

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles split bill persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new split bill repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateBill inserts the bill row
func (r *Repository) CreateBill(ctx context.Context, userID int64, title string, tax, service, tip float64, shareToken string) (*Bill, error) {
	query := `
		INSERT INTO bills (user_id, title, tax_amount, service_amount, tip_amount, share_token)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, title, tax_amount, service_amount, tip_amount, share_token, created_at
	`

	bill := &Bill{}
	err := r.db.QueryRowContext(ctx, query, userID, title, tax, service, tip, shareToken).Scan(
		&bill.ID,
		&bill.UserID,
		&bill.Title,
		&bill.TaxAmount,
		&bill.ServiceAmount,
		&bill.TipAmount,
		&bill.ShareToken,
		&bill.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	return bill, nil
}

// CreateParticipant inserts a participant row with zeroed share columns
func (r *Repository) CreateParticipant(ctx context.Context, billID int64, name string) (*Participant, error) {
	query := `
		INSERT INTO bill_participants (bill_id, name)
		VALUES ($1, $2)
		RETURNING id, bill_id, name, items_subtotal, tax_share, service_share, tip_share, total_amount
	`

	p := &Participant{}
	err := r.db.QueryRowContext(ctx, query, billID, name).Scan(
		&p.ID,
		&p.BillID,
		&p.Name,
		&p.ItemsSubtotal,
		&p.TaxShare,
		&p.ServiceShare,
		&p.TipShare,
		&p.TotalAmount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create participant: %w", err)
	}

	return p, nil
}

// CreateItem inserts an item row
func (r *Repository) CreateItem(ctx context.Context, billID int64, name string, quantity int, unitPrice, totalPrice float64) (*Item, error) {
	query := `
		INSERT INTO bill_items (bill_id, name, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, bill_id, name, quantity, unit_price, total_price
	`

	item := &Item{}
	err := r.db.QueryRowContext(ctx, query, billID, name, quantity, unitPrice, totalPrice).Scan(
		&item.ID,
		&item.BillID,
		&item.Name,
		&item.Quantity,
		&item.UnitPrice,
		&item.TotalPrice,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

// CreateAssignment links an item to a participant
func (r *Repository) CreateAssignment(ctx context.Context, itemID, participantID int64) error {
	query := `INSERT INTO bill_item_assignments (item_id, participant_id) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, itemID, participantID); err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

// UpdateParticipantTotals writes the computed shares back to a participant row
func (r *Repository) UpdateParticipantTotals(ctx context.Context, participantID int64, itemsSubtotal, taxShare, serviceShare, tipShare, totalAmount float64) error {
	query := `
		UPDATE bill_participants
		SET items_subtotal = $2, tax_share = $3, service_share = $4, tip_share = $5, total_amount = $6
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, participantID, itemsSubtotal, taxShare, serviceShare, tipShare, totalAmount); err != nil {
		return fmt.Errorf("failed to update participant totals: %w", err)
	}
	return nil
}

// GetBill retrieves a bill owned by the given user
func (r *Repository) GetBill(ctx context.Context, id, userID int64) (*Bill, error) {
	query := `
		SELECT id, user_id, title, tax_amount, service_amount, tip_amount, share_token, created_at
		FROM bills
		WHERE id = $1 AND user_id = $2
	`
	return r.scanBill(r.db.QueryRowContext(ctx, query, id, userID))
}

// GetBillByToken retrieves a bill by its public share token
func (r *Repository) GetBillByToken(ctx context.Context, token string) (*Bill, error) {
	query := `
		SELECT id, user_id, title, tax_amount, service_amount, tip_amount, share_token, created_at
		FROM bills
		WHERE share_token = $1
	`
	return r.scanBill(r.db.QueryRowContext(ctx, query, token))
}

func (r *Repository) scanBill(row *sql.Row) (*Bill, error) {
	bill := &Bill{}
	err := row.Scan(
		&bill.ID,
		&bill.UserID,
		&bill.Title,
		&bill.TaxAmount,
		&bill.ServiceAmount,
		&bill.TipAmount,
		&bill.ShareToken,
		&bill.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	return bill, nil
}

// GetItems retrieves all items for a bill
func (r *Repository) GetItems(ctx context.Context, billID int64) ([]*Item, error) {
	query := `
		SELECT id, bill_id, name, quantity, unit_price, total_price
		FROM bill_items
		WHERE bill_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(
			&item.ID,
			&item.BillID,
			&item.Name,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
		); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}

	return items, nil
}

// GetParticipants retrieves all participants for a bill
func (r *Repository) GetParticipants(ctx context.Context, billID int64) ([]*Participant, error) {
	query := `
		SELECT id, bill_id, name, items_subtotal, tax_share, service_share, tip_share, total_amount
		FROM bill_participants
		WHERE bill_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []*Participant
	for rows.Next() {
		p := &Participant{}
		if err := rows.Scan(
			&p.ID,
			&p.BillID,
			&p.Name,
			&p.ItemsSubtotal,
			&p.TaxShare,
			&p.ServiceShare,
			&p.TipShare,
			&p.TotalAmount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}

	return participants, nil
}

// GetAssignments retrieves all item-participant links for a bill
func (r *Repository) GetAssignments(ctx context.Context, billID int64) ([]*Assignment, error) {
	query := `
		SELECT a.id, a.item_id, a.participant_id
		FROM bill_item_assignments a
		JOIN bill_items i ON a.item_id = i.id
		WHERE i.bill_id = $1
		ORDER BY a.id
	`

	rows, err := r.db.QueryContext(ctx, query, billID)
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*Assignment
	for rows.Next() {
		a := &Assignment{}
		if err := rows.Scan(&a.ID, &a.ItemID, &a.ParticipantID); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}

// ListBills retrieves a user's bills, newest first
func (r *Repository) ListBills(ctx context.Context, userID int64, limit, offset int) ([]*Bill, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM bills WHERE user_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bills: %w", err)
	}

	query := `
		SELECT id, user_id, title, tax_amount, service_amount, tip_amount, share_token, created_at
		FROM bills
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []*Bill
	for rows.Next() {
		bill := &Bill{}
		if err := rows.Scan(
			&bill.ID,
			&bill.UserID,
			&bill.Title,
			&bill.TaxAmount,
			&bill.ServiceAmount,
			&bill.TipAmount,
			&bill.ShareToken,
			&bill.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, bill)
	}

	return bills, total, nil
}

// DeleteBill removes a bill and, via cascade, its items, participants and
// assignments
func (r *Repository) DeleteBill(ctx context.Context, id, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM bills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrBillNotFound
	}

	return nil
}
