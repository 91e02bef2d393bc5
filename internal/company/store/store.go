package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tempo/internal/company"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetSettings returns the company's settings; a company without a settings row has every
// integration disabled.
func (s *Store) GetSettings(ctx context.Context, companyID uuid.UUID) (*company.Settings, error) {
	query := `SELECT calendar_enabled FROM company_settings WHERE company_id = $1`

	settings := &company.Settings{CompanyID: companyID}

	err := s.db.QueryRowContext(ctx, query, companyID).Scan(&settings.CalendarEnabled)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("getting company settings: %w", err)
	}

	return settings, nil
}

func (s *Store) SetCalendarEnabled(ctx context.Context, companyID uuid.UUID, enabled bool) error {
	query := `
		INSERT INTO company_settings (company_id, calendar_enabled, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (company_id) DO UPDATE
		SET calendar_enabled = EXCLUDED.calendar_enabled, updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, companyID, enabled); err != nil {
		return fmt.Errorf("setting calendar_enabled: %w", err)
	}

	return nil
}
