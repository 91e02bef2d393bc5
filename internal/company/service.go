package company

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tempo/internal/auth"
)

// Settings are the company-wide integration switches.
type Settings struct {
	CompanyID       uuid.UUID
	CalendarEnabled bool
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=company
type Repository interface {
	GetSettings(ctx context.Context, companyID uuid.UUID) (*Settings, error)
	SetCalendarEnabled(ctx context.Context, companyID uuid.UUID, enabled bool) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, companyID uuid.UUID) (*Settings, error) {
	return s.repo.GetSettings(ctx, companyID)
}

// SetCalendarEnabled turns calendar sync on or off for the viewer's whole company.
// Only admins may do so.
func (s *Service) SetCalendarEnabled(ctx context.Context, v auth.Viewer, enabled bool) error {
	if !v.IsAdmin() {
		return auth.ErrForbidden
	}

	if err := s.repo.SetCalendarEnabled(ctx, v.CompanyID, enabled); err != nil {
		return fmt.Errorf("updating calendar setting: %w", err)
	}

	return nil
}
