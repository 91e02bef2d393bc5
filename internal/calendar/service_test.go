package calendar_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/oauth2"

	"github.com/MrJamesThe3rd/tempo/internal/auth"
	"github.com/MrJamesThe3rd/tempo/internal/calendar"
	"github.com/MrJamesThe3rd/tempo/internal/company"
)

type mocks struct {
	repo     *calendar.MockRepository
	oauth    *calendar.MockOAuth
	settings *calendar.MockSettingsReader
}

func newService(t *testing.T) (*calendar.Service, mocks) {
	ctrl := gomock.NewController(t)

	m := mocks{
		repo:     calendar.NewMockRepository(ctrl),
		oauth:    calendar.NewMockOAuth(ctrl),
		settings: calendar.NewMockSettingsReader(ctrl),
	}

	return calendar.NewService(m.repo, m.oauth, m.settings, time.Minute), m
}

func TestService_RedirectURL(t *testing.T) {
	v := auth.Viewer{UserID: uuid.New(), CompanyID: uuid.New(), Role: auth.RoleEmployee}

	t.Run("Success", func(t *testing.T) {
		svc, m := newService(t)

		var (
			saved  calendar.PendingState
			cutoff time.Time
		)

		m.settings.EXPECT().Get(gomock.Any(), v.CompanyID).
			Return(&company.Settings{CompanyID: v.CompanyID, CalendarEnabled: true}, nil)
		m.repo.EXPECT().DeleteStatesBefore(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c time.Time) error {
				cutoff = c
				return nil
			})
		m.repo.EXPECT().SaveState(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, st calendar.PendingState) error {
				saved = st
				return nil
			})
		m.oauth.EXPECT().AuthCodeURL(gomock.Any(), oauth2.AccessTypeOffline).
			DoAndReturn(func(state string, _ ...oauth2.AuthCodeOption) string {
				return "https://accounts.example.com/auth?state=" + state
			})

		url, err := svc.RedirectURL(context.Background(), v)
		require.NoError(t, err)

		assert.Equal(t, v.UserID, saved.UserID)
		assert.NotEmpty(t, saved.State)
		assert.Equal(t, "https://accounts.example.com/auth?state="+saved.State, url)
		assert.WithinDuration(t, saved.CreatedAt.Add(-time.Minute), cutoff, time.Second)
	})

	t.Run("SweepFailureDoesNotBlock", func(t *testing.T) {
		svc, m := newService(t)

		m.settings.EXPECT().Get(gomock.Any(), v.CompanyID).
			Return(&company.Settings{CompanyID: v.CompanyID, CalendarEnabled: true}, nil)
		m.repo.EXPECT().DeleteStatesBefore(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
		m.repo.EXPECT().SaveState(gomock.Any(), gomock.Any()).Return(nil)
		m.oauth.EXPECT().AuthCodeURL(gomock.Any(), oauth2.AccessTypeOffline).Return("https://accounts.example.com/auth")

		url, err := svc.RedirectURL(context.Background(), v)
		require.NoError(t, err)
		assert.Equal(t, "https://accounts.example.com/auth", url)
	})

	t.Run("Disabled", func(t *testing.T) {
		svc, m := newService(t)

		m.settings.EXPECT().Get(gomock.Any(), v.CompanyID).
			Return(&company.Settings{CompanyID: v.CompanyID}, nil)

		_, err := svc.RedirectURL(context.Background(), v)
		assert.ErrorIs(t, err, calendar.ErrDisabled)
	})
}

func TestService_Callback(t *testing.T) {
	userID := uuid.New()

	type testCase struct {
		name      string
		state     string
		code      string
		setupMock func(m mocks)
		wantErr   error
	}

	tests := []testCase{
		{
			name:  "Success",
			state: "s1",
			code:  "c1",
			setupMock: func(m mocks) {
				m.repo.EXPECT().TakeState(gomock.Any(), "s1").
					Return(&calendar.PendingState{State: "s1", UserID: userID, CreatedAt: time.Now()}, nil)
				m.oauth.EXPECT().Exchange(gomock.Any(), "c1").
					Return(&oauth2.Token{AccessToken: "at", RefreshToken: "rt"}, nil)
				m.repo.EXPECT().SaveConnection(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *calendar.Connection) error {
						assert.Equal(t, userID, c.UserID)
						assert.Equal(t, "rt", c.Token.RefreshToken)

						return nil
					})
			},
		},
		{
			name:    "MissingCode",
			state:   "s1",
			wantErr: calendar.ErrInvalidState,
		},
		{
			name:  "UnknownState",
			state: "nope",
			code:  "c1",
			setupMock: func(m mocks) {
				m.repo.EXPECT().TakeState(gomock.Any(), "nope").Return(nil, calendar.ErrNotFound)
			},
			wantErr: calendar.ErrInvalidState,
		},
		{
			name:  "ExpiredState",
			state: "old",
			code:  "c1",
			setupMock: func(m mocks) {
				m.repo.EXPECT().TakeState(gomock.Any(), "old").
					Return(&calendar.PendingState{State: "old", UserID: userID, CreatedAt: time.Now().Add(-time.Hour)}, nil)
			},
			wantErr: calendar.ErrInvalidState,
		},
		{
			name:  "ExchangeFails",
			state: "s1",
			code:  "bad",
			setupMock: func(m mocks) {
				m.repo.EXPECT().TakeState(gomock.Any(), "s1").
					Return(&calendar.PendingState{State: "s1", UserID: userID, CreatedAt: time.Now()}, nil)
				m.oauth.EXPECT().Exchange(gomock.Any(), "bad").Return(nil, errors.New("invalid_grant"))
			},
			wantErr: errors.New("exchanging code: invalid_grant"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			conn, err := svc.Callback(context.Background(), tt.state, tt.code)

			if tt.wantErr != nil {
				if errors.Is(tt.wantErr, calendar.ErrInvalidState) {
					assert.ErrorIs(t, err, calendar.ErrInvalidState)
				} else {
					assert.EqualError(t, err, tt.wantErr.Error())
				}

				assert.Nil(t, conn)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, conn.UserID)
		})
	}
}

func TestService_Abandon(t *testing.T) {
	type testCase struct {
		name      string
		state     string
		setupMock func(m mocks)
		wantErr   bool
	}

	tests := []testCase{
		{
			name:  "ConsumesState",
			state: "s1",
			setupMock: func(m mocks) {
				m.repo.EXPECT().TakeState(gomock.Any(), "s1").Return(&calendar.PendingState{State: "s1"}, nil)
			},
		},
		{
			name:  "UnknownState",
			state: "gone",
			setupMock: func(m mocks) {
				m.repo.EXPECT().TakeState(gomock.Any(), "gone").Return(nil, calendar.ErrNotFound)
			},
		},
		{
			name: "NoState",
		},
		{
			name:  "RepoError",
			state: "s1",
			setupMock: func(m mocks) {
				m.repo.EXPECT().TakeState(gomock.Any(), "s1").Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)
			if tt.setupMock != nil {
				tt.setupMock(m)
			}

			err := svc.Abandon(context.Background(), tt.state)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Status(t *testing.T) {
	v := auth.Viewer{UserID: uuid.New()}

	t.Run("Connected", func(t *testing.T) {
		svc, m := newService(t)
		m.repo.EXPECT().GetConnection(gomock.Any(), v.UserID).Return(&calendar.Connection{UserID: v.UserID}, nil)

		ok, err := svc.Status(context.Background(), v)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("NotConnected", func(t *testing.T) {
		svc, m := newService(t)
		m.repo.EXPECT().GetConnection(gomock.Any(), v.UserID).Return(nil, calendar.ErrNotFound)

		ok, err := svc.Status(context.Background(), v)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestService_Disconnect_Idempotent(t *testing.T) {
	v := auth.Viewer{UserID: uuid.New()}

	svc, m := newService(t)
	m.repo.EXPECT().DeleteConnection(gomock.Any(), v.UserID).Return(calendar.ErrNotFound)

	assert.NoError(t, svc.Disconnect(context.Background(), v))
}
