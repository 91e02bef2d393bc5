package company_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tempo/internal/auth"
	"github.com/MrJamesThe3rd/tempo/internal/company"
)

func TestService_SetCalendarEnabled(t *testing.T) {
	companyID := uuid.New()

	type testCase struct {
		name      string
		role      auth.Role
		enabled   bool
		setupMock func(m *company.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name:    "AdminEnables",
			role:    auth.RoleAdmin,
			enabled: true,
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().SetCalendarEnabled(gomock.Any(), companyID, true).Return(nil)
			},
		},
		{
			name:    "OwnerDisables",
			role:    auth.RoleOwner,
			enabled: false,
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().SetCalendarEnabled(gomock.Any(), companyID, false).Return(nil)
			},
		},
		{
			name:    "EmployeeForbidden",
			role:    auth.RoleEmployee,
			enabled: true,
			wantErr: auth.ErrForbidden,
		},
		{
			name:    "RepoError",
			role:    auth.RoleAdmin,
			enabled: true,
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().SetCalendarEnabled(gomock.Any(), companyID, true).Return(errors.New("db error"))
			},
			wantErr: errors.New("updating calendar setting: db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := company.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			v := auth.Viewer{UserID: uuid.New(), CompanyID: companyID, Role: tt.role}
			err := company.NewService(repo).SetCalendarEnabled(context.Background(), v, tt.enabled)

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}

			assert.NoError(t, err)
		})
	}
}
