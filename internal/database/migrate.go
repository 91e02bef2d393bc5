package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// Migrate applies the schema. Every statement is idempotent so it runs on each start.
func Migrate(ctx context.Context, db *sql.DB) error {
	slog.Info("running database migrations", "statements", len(migrations))

	for i, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}

	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS company_settings (
		company_id UUID PRIMARY KEY,
		calendar_enabled BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS clients (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		company_id UUID NOT NULL,
		label TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS clients_company_idx ON clients (company_id, label)`,

	`CREATE TABLE IF NOT EXISTS invoices (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		company_id UUID NOT NULL,
		client_id UUID NOT NULL REFERENCES clients(id),
		issue_date DATE NOT NULL,
		due_date DATE NOT NULL CHECK (due_date >= issue_date),
		invoice_number TEXT NOT NULL,
		reference_number TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (company_id, invoice_number)
	)`,

	`CREATE TABLE IF NOT EXISTS calendar_oauth_states (
		state TEXT PRIMARY KEY,
		user_id UUID NOT NULL,
		company_id UUID NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS calendar_oauth_states_created_idx ON calendar_oauth_states (created_at)`,

	`CREATE TABLE IF NOT EXISTS calendar_connections (
		user_id UUID PRIMARY KEY,
		token JSONB NOT NULL,
		connected_at TIMESTAMPTZ NOT NULL
	)`,
}
