package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/MrJamesThe3rd/tempo/internal/calendar"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) SaveState(ctx context.Context, st calendar.PendingState) error {
	query := `
		INSERT INTO calendar_oauth_states (state, user_id, company_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	if _, err := s.db.ExecContext(ctx, query, st.State, st.UserID, st.CompanyID, st.CreatedAt); err != nil {
		return fmt.Errorf("saving oauth state: %w", err)
	}

	return nil
}

func (s *Store) TakeState(ctx context.Context, state string) (*calendar.PendingState, error) {
	query := `
		DELETE FROM calendar_oauth_states
		WHERE state = $1
		RETURNING state, user_id, company_id, created_at
	`

	var st calendar.PendingState

	err := s.db.QueryRowContext(ctx, query, state).Scan(&st.State, &st.UserID, &st.CompanyID, &st.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, calendar.ErrNotFound
		}

		return nil, fmt.Errorf("taking oauth state: %w", err)
	}

	return &st, nil
}

func (s *Store) DeleteStatesBefore(ctx context.Context, cutoff time.Time) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM calendar_oauth_states WHERE created_at < $1`, cutoff); err != nil {
		return fmt.Errorf("deleting expired oauth states: %w", err)
	}

	return nil
}

func (s *Store) SaveConnection(ctx context.Context, c *calendar.Connection) error {
	token, err := json.Marshal(c.Token)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}

	query := `
		INSERT INTO calendar_connections (user_id, token, connected_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET token = EXCLUDED.token, connected_at = EXCLUDED.connected_at
	`

	if _, err := s.db.ExecContext(ctx, query, c.UserID, token, c.ConnectedAt); err != nil {
		return fmt.Errorf("saving calendar connection: %w", err)
	}

	return nil
}

func (s *Store) GetConnection(ctx context.Context, userID uuid.UUID) (*calendar.Connection, error) {
	query := `SELECT user_id, token, connected_at FROM calendar_connections WHERE user_id = $1`

	var (
		c   calendar.Connection
		raw []byte
	)

	err := s.db.QueryRowContext(ctx, query, userID).Scan(&c.UserID, &raw, &c.ConnectedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, calendar.ErrNotFound
		}

		return nil, fmt.Errorf("getting calendar connection: %w", err)
	}

	c.Token = new(oauth2.Token)
	if err := json.Unmarshal(raw, c.Token); err != nil {
		return nil, fmt.Errorf("decoding token: %w", err)
	}

	return &c, nil
}

func (s *Store) DeleteConnection(ctx context.Context, userID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM calendar_connections WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("deleting calendar connection: %w", err)
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return calendar.ErrNotFound
	}

	return nil
}
