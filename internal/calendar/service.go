package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/MrJamesThe3rd/tempo/internal/auth"
	"github.com/MrJamesThe3rd/tempo/internal/company"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDisabled     = errors.New("calendar sync is disabled for this company")
	ErrInvalidState = errors.New("unknown or expired authorization state")
)

// DefaultStateTTL bounds how long a user may take to finish the provider consent screen.
const DefaultStateTTL = 10 * time.Minute

// Connection is a user's completed calendar authorization.
type Connection struct {
	UserID      uuid.UUID
	Token       *oauth2.Token
	ConnectedAt time.Time
}

// PendingState ties an in-flight authorization redirect to the user who started it.
type PendingState struct {
	State     string
	UserID    uuid.UUID
	CompanyID uuid.UUID
	CreatedAt time.Time
}

//go:generate mockgen -source=service.go -destination=service_mock.go -package=calendar
type Repository interface {
	SaveState(ctx context.Context, st PendingState) error
	// TakeState returns and deletes the pending state; ErrNotFound if absent.
	TakeState(ctx context.Context, state string) (*PendingState, error)
	// DeleteStatesBefore drops pending states created before cutoff.
	DeleteStatesBefore(ctx context.Context, cutoff time.Time) error

	SaveConnection(ctx context.Context, c *Connection) error
	GetConnection(ctx context.Context, userID uuid.UUID) (*Connection, error)
	DeleteConnection(ctx context.Context, userID uuid.UUID) error
}

// OAuth is the part of *oauth2.Config used for the handshake.
type OAuth interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
}

type SettingsReader interface {
	Get(ctx context.Context, companyID uuid.UUID) (*company.Settings, error)
}

type Service struct {
	repo     Repository
	oauth    OAuth
	settings SettingsReader
	stateTTL time.Duration
	now      func() time.Time
}

func NewService(repo Repository, oauth OAuth, settings SettingsReader, stateTTL time.Duration) *Service {
	if stateTTL <= 0 {
		stateTTL = DefaultStateTTL
	}

	return &Service{
		repo:     repo,
		oauth:    oauth,
		settings: settings,
		stateTTL: stateTTL,
		now:      time.Now,
	}
}

// RedirectURL starts the handshake for the viewer and returns the provider consent URL.
func (s *Service) RedirectURL(ctx context.Context, v auth.Viewer) (string, error) {
	settings, err := s.settings.Get(ctx, v.CompanyID)
	if err != nil {
		return "", fmt.Errorf("loading company settings: %w", err)
	}

	if !settings.CalendarEnabled {
		return "", ErrDisabled
	}

	// Abandoned handshakes never reach the callback; their states are swept here.
	if err := s.repo.DeleteStatesBefore(ctx, s.now().Add(-s.stateTTL)); err != nil {
		slog.Warn("failed to sweep expired oauth states", "error", err)
	}

	st := PendingState{
		State:     uuid.NewString(),
		UserID:    v.UserID,
		CompanyID: v.CompanyID,
		CreatedAt: s.now(),
	}

	if err := s.repo.SaveState(ctx, st); err != nil {
		return "", fmt.Errorf("saving state: %w", err)
	}

	return s.oauth.AuthCodeURL(st.State, oauth2.AccessTypeOffline), nil
}

// Callback completes the handshake started by RedirectURL. A state can be used once.
func (s *Service) Callback(ctx context.Context, state, code string) (*Connection, error) {
	if state == "" || code == "" {
		return nil, ErrInvalidState
	}

	st, err := s.repo.TakeState(ctx, state)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidState
		}

		return nil, fmt.Errorf("loading state: %w", err)
	}

	if s.now().Sub(st.CreatedAt) > s.stateTTL {
		return nil, ErrInvalidState
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging code: %w", err)
	}

	conn := &Connection{
		UserID:      st.UserID,
		Token:       token,
		ConnectedAt: s.now(),
	}

	if err := s.repo.SaveConnection(ctx, conn); err != nil {
		return nil, fmt.Errorf("saving connection: %w", err)
	}

	return conn, nil
}

// Abandon consumes a state whose handshake the provider reported as failed or declined.
// An unknown state is not an error.
func (s *Service) Abandon(ctx context.Context, state string) error {
	if state == "" {
		return nil
	}

	if _, err := s.repo.TakeState(ctx, state); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("discarding state: %w", err)
	}

	return nil
}

// Status reports whether the viewer has a stored calendar connection.
func (s *Service) Status(ctx context.Context, v auth.Viewer) (bool, error) {
	_, err := s.repo.GetConnection(ctx, v.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("loading connection: %w", err)
	}

	return true, nil
}

// Disconnect removes the viewer's connection. Disconnecting twice is not an error.
func (s *Service) Disconnect(ctx context.Context, v auth.Viewer) error {
	if err := s.repo.DeleteConnection(ctx, v.UserID); err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("deleting connection: %w", err)
	}

	return nil
}
