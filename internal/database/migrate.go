package database

import (
	"database/sql"
	"fmt"
)

// schema contains the full table definitions. Statements are idempotent so
// Migrate can run on every startup.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		avatar_url TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_events (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT,
		category TEXT NOT NULL DEFAULT 'other',
		starts_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_events_user_starts
		ON schedule_events (user_id, starts_at)`,

	`CREATE TABLE IF NOT EXISTS bills (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		tax_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		service_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		tip_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		share_token TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS bill_participants (
		id BIGSERIAL PRIMARY KEY,
		bill_id BIGINT NOT NULL REFERENCES bills(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		items_subtotal DOUBLE PRECISION NOT NULL DEFAULT 0,
		tax_share DOUBLE PRECISION NOT NULL DEFAULT 0,
		service_share DOUBLE PRECISION NOT NULL DEFAULT 0,
		tip_share DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_amount DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS bill_items (
		id BIGSERIAL PRIMARY KEY,
		bill_id BIGINT NOT NULL REFERENCES bills(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		unit_price DOUBLE PRECISION NOT NULL DEFAULT 0,
		total_price DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS bill_item_assignments (
		id BIGSERIAL PRIMARY KEY,
		item_id BIGINT NOT NULL REFERENCES bill_items(id) ON DELETE CASCADE,
		participant_id BIGINT NOT NULL REFERENCES bill_participants(id) ON DELETE CASCADE,
		UNIQUE (item_id, participant_id)
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		notes TEXT,
		priority TEXT NOT NULL DEFAULT 'medium',
		due_date DATE,
		done BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS grocery_items (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		checked BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS transactions (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		kind TEXT NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		category TEXT NOT NULL,
		note TEXT,
		occurred_at DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_user_occurred
		ON transactions (user_id, occurred_at)`,
}

// Migrate creates all tables if they do not exist yet
func Migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}
	return nil
}
