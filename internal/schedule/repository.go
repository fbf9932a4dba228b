package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository handles schedule event persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new schedule repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new schedule event
func (r *Repository) Create(ctx context.Context, event *ScheduleEvent) (*ScheduleEvent, error) {
	query := `
		INSERT INTO schedule_events (user_id, title, description, category, starts_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, title, description, category, starts_at, created_at
	`

	created := &ScheduleEvent{}
	err := r.db.QueryRowContext(ctx, query,
		event.UserID,
		event.Title,
		event.Description,
		event.Category,
		event.StartsAt,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Title,
		&created.Description,
		&created.Category,
		&created.StartsAt,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	return created, nil
}

// GetByID retrieves an event owned by the given user
func (r *Repository) GetByID(ctx context.Context, id, userID int64) (*ScheduleEvent, error) {
	query := `
		SELECT id, user_id, title, description, category, starts_at, created_at
		FROM schedule_events
		WHERE id = $1 AND user_id = $2
	`

	event := &ScheduleEvent{}
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(
		&event.ID,
		&event.UserID,
		&event.Title,
		&event.Description,
		&event.Category,
		&event.StartsAt,
		&event.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// ListByRange retrieves a user's events with starts_at inside [from, to)
func (r *Repository) ListByRange(ctx context.Context, userID int64, from, to time.Time) ([]*ScheduleEvent, error) {
	query := `
		SELECT id, user_id, title, description, category, starts_at, created_at
		FROM schedule_events
		WHERE user_id = $1 AND starts_at >= $2 AND starts_at < $3
		ORDER BY starts_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*ScheduleEvent
	for rows.Next() {
		event := &ScheduleEvent{}
		if err := rows.Scan(
			&event.ID,
			&event.UserID,
			&event.Title,
			&event.Description,
			&event.Category,
			&event.StartsAt,
			&event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	return events, nil
}

// Update modifies an event owned by the given user
func (r *Repository) Update(ctx context.Context, id, userID int64, req *UpdateEventRequest, startsAt *time.Time) (*ScheduleEvent, error) {
	query := `
		UPDATE schedule_events
		SET title = COALESCE($3, title),
		    description = COALESCE($4, description),
		    category = COALESCE($5, category),
		    starts_at = COALESCE($6, starts_at)
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, title, description, category, starts_at, created_at
	`

	event := &ScheduleEvent{}
	err := r.db.QueryRowContext(ctx, query, id, userID, req.Title, req.Description, req.Category, startsAt).Scan(
		&event.ID,
		&event.UserID,
		&event.Title,
		&event.Description,
		&event.Category,
		&event.StartsAt,
		&event.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}

// Delete removes an event owned by the given user
func (r *Repository) Delete(ctx context.Context, id, userID int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM schedule_events WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}
