package http_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/tempo/internal/auth"
	"github.com/MrJamesThe3rd/tempo/internal/calendar"
	"github.com/MrJamesThe3rd/tempo/internal/company"
	apihttp "github.com/MrJamesThe3rd/tempo/internal/http"
	calendarv1 "github.com/MrJamesThe3rd/tempo/internal/http/calendar"
	"github.com/MrJamesThe3rd/tempo/internal/http/clients"
	companyv1 "github.com/MrJamesThe3rd/tempo/internal/http/company"
	"github.com/MrJamesThe3rd/tempo/internal/http/invoices"
	"github.com/MrJamesThe3rd/tempo/internal/http/profile"
	"github.com/MrJamesThe3rd/tempo/internal/importer"
	"github.com/MrJamesThe3rd/tempo/internal/invoice"
)

type mocks struct {
	invoices *invoice.MockRepository
	company  *company.MockRepository
	calendar *calendar.MockRepository
	oauth    *calendar.MockOAuth
}

type env struct {
	handler http.Handler
	issuer  *auth.Issuer
	m       mocks
}

func newEnv(t *testing.T) *env {
	ctrl := gomock.NewController(t)

	m := mocks{
		invoices: invoice.NewMockRepository(ctrl),
		company:  company.NewMockRepository(ctrl),
		calendar: calendar.NewMockRepository(ctrl),
		oauth:    calendar.NewMockOAuth(ctrl),
	}

	invoiceSvc := invoice.NewService(m.invoices)
	companySvc := company.NewService(m.company)
	calendarSvc := calendar.NewService(m.calendar, m.oauth, companySvc, time.Minute)
	issuer := auth.NewIssuer("test-secret", time.Hour)

	h := apihttp.New(
		issuer,
		[]string{"http://localhost:3000"},
		profile.NewHandler(companySvc, calendarSvc),
		companyv1.NewHandler(companySvc),
		calendarv1.NewHandler(calendarSvc),
		clients.NewHandler(importer.NewService(), invoiceSvc),
		invoices.NewHandler(invoiceSvc),
	)

	return &env{handler: h, issuer: issuer, m: m}
}

func (e *env) do(t *testing.T, v *auth.Viewer, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	if v != nil {
		token, err := e.issuer.Issue(*v)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	return rec
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	return req
}

func viewer(role auth.Role) *auth.Viewer {
	return &auth.Viewer{UserID: uuid.New(), CompanyID: uuid.New(), Role: role}
}

func TestRouter_RequiresToken(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, nil, httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = e.do(t, nil, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/status", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_Companies(t *testing.T) {
	e := newEnv(t)
	v := viewer(auth.RoleEmployee)

	e.m.company.EXPECT().GetSettings(gomock.Any(), v.CompanyID).
		Return(&company.Settings{CompanyID: v.CompanyID, CalendarEnabled: true}, nil)

	rec := e.do(t, v, httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.JSONEq(t, `{"company_details":{"calendar_enabled":true}}`, rec.Body.String())
}

func TestRouter_UpdateTeam(t *testing.T) {
	type testCase struct {
		name      string
		role      auth.Role
		body      string
		setupMock func(m mocks, v *auth.Viewer)
		want      int
	}

	tests := []testCase{
		{
			name: "AdminEnables",
			role: auth.RoleAdmin,
			body: `{"team":{"calendar_enabled":true}}`,
			setupMock: func(m mocks, v *auth.Viewer) {
				m.company.EXPECT().SetCalendarEnabled(gomock.Any(), v.CompanyID, true).Return(nil)
			},
			want: http.StatusNoContent,
		},
		{
			name: "EmployeeForbidden",
			role: auth.RoleEmployee,
			body: `{"team":{"calendar_enabled":true}}`,
			want: http.StatusForbidden,
		},
		{
			name: "MissingField",
			role: auth.RoleOwner,
			body: `{"team":{}}`,
			want: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEnv(t)
			v := viewer(tt.role)

			if tt.setupMock != nil {
				tt.setupMock(e.m, v)
			}

			rec := e.do(t, v, jsonRequest(http.MethodPut, "/api/v1/team", tt.body))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRouter_Profile(t *testing.T) {
	e := newEnv(t)
	v := viewer(auth.RoleOwner)

	e.m.company.EXPECT().GetSettings(gomock.Any(), v.CompanyID).
		Return(&company.Settings{CompanyID: v.CompanyID, CalendarEnabled: true}, nil)
	e.m.calendar.EXPECT().GetConnection(gomock.Any(), v.UserID).Return(nil, calendar.ErrNotFound)

	rec := e.do(t, v, httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, "owner", got["role"])
	assert.Equal(t, true, got["is_admin"])
	assert.Equal(t, true, got["calendar_enabled"])
	assert.Equal(t, false, got["calendar_connected"])
}

func TestRouter_CalendarRedirect(t *testing.T) {
	t.Run("Enabled", func(t *testing.T) {
		e := newEnv(t)
		v := viewer(auth.RoleEmployee)

		e.m.company.EXPECT().GetSettings(gomock.Any(), v.CompanyID).
			Return(&company.Settings{CompanyID: v.CompanyID, CalendarEnabled: true}, nil)
		e.m.calendar.EXPECT().DeleteStatesBefore(gomock.Any(), gomock.Any()).Return(nil)
		e.m.calendar.EXPECT().SaveState(gomock.Any(), gomock.Any()).Return(nil)
		e.m.oauth.EXPECT().AuthCodeURL(gomock.Any(), gomock.Any()).Return("https://accounts.example.com/o/oauth2/auth")

		rec := e.do(t, v, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/redirect", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"url":"https://accounts.example.com/o/oauth2/auth"}`, rec.Body.String())
	})

	t.Run("Disabled", func(t *testing.T) {
		e := newEnv(t)
		v := viewer(auth.RoleEmployee)

		e.m.company.EXPECT().GetSettings(gomock.Any(), v.CompanyID).
			Return(&company.Settings{CompanyID: v.CompanyID}, nil)

		rec := e.do(t, v, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/redirect", nil))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRouter_CalendarCallback(t *testing.T) {
	t.Run("ProviderDeclined", func(t *testing.T) {
		e := newEnv(t)
		e.m.calendar.EXPECT().TakeState(gomock.Any(), "s").Return(&calendar.PendingState{State: "s"}, nil)

		rec := e.do(t, nil, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/callback?state=s&error=access_denied", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Authorization declined")
	})

	t.Run("UnknownState", func(t *testing.T) {
		e := newEnv(t)
		e.m.calendar.EXPECT().TakeState(gomock.Any(), "bogus").Return(nil, calendar.ErrNotFound)

		rec := e.do(t, nil, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/callback?state=bogus&code=c", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Calendar not connected")
	})

	t.Run("ExpiredState", func(t *testing.T) {
		e := newEnv(t)
		e.m.calendar.EXPECT().TakeState(gomock.Any(), "old").
			Return(&calendar.PendingState{State: "old", CreatedAt: time.Now().Add(-time.Hour)}, nil)

		rec := e.do(t, nil, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/callback?state=old&code=c", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Success", func(t *testing.T) {
		e := newEnv(t)
		userID := uuid.New()

		e.m.calendar.EXPECT().TakeState(gomock.Any(), "s").
			Return(&calendar.PendingState{State: "s", UserID: userID, CreatedAt: time.Now()}, nil)
		e.m.oauth.EXPECT().Exchange(gomock.Any(), "c").Return(nil, nil)
		e.m.calendar.EXPECT().SaveConnection(gomock.Any(), gomock.Any()).Return(nil)

		rec := e.do(t, nil, httptest.NewRequest(http.MethodGet, "/api/v1/calendar/callback?state=s&code=c", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "You can close this window")
	})
}

func TestRouter_CalendarDisconnect(t *testing.T) {
	e := newEnv(t)
	v := viewer(auth.RoleEmployee)

	e.m.calendar.EXPECT().DeleteConnection(gomock.Any(), v.UserID).Return(calendar.ErrNotFound)

	rec := e.do(t, v, httptest.NewRequest(http.MethodDelete, "/api/v1/calendar/connection", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_CreateInvoice(t *testing.T) {
	t.Run("ValidationFailure", func(t *testing.T) {
		e := newEnv(t)

		body := `{"billedTo":null,"issueDate":"2024-01-31T00:00:00Z","dueDate":"2024-02-29T00:00:00Z","invoiceNumber":"  "}`

		rec := e.do(t, viewer(auth.RoleEmployee), jsonRequest(http.MethodPost, "/api/v1/invoices", body))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var got struct {
			Errors map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

		assert.Contains(t, got.Errors, "billedTo")
		assert.Contains(t, got.Errors, "invoiceNumber")
		assert.NotContains(t, got.Errors, "dueDate")
	})

	t.Run("DuplicateNumber", func(t *testing.T) {
		e := newEnv(t)
		v := viewer(auth.RoleEmployee)
		client := &invoice.Client{ID: uuid.New(), Label: "Acme"}

		e.m.invoices.EXPECT().GetClient(gomock.Any(), v.CompanyID, client.ID).Return(client, nil)
		e.m.invoices.EXPECT().InvoiceNumberExists(gomock.Any(), v.CompanyID, "7").Return(true, nil)

		body := `{"billedTo":{"id":"` + client.ID.String() + `","label":"Acme"},"issueDate":"2024-01-31T00:00:00Z","dueDate":"2024-02-29T00:00:00Z","invoiceNumber":"7"}`

		rec := e.do(t, v, jsonRequest(http.MethodPost, "/api/v1/invoices", body))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "invoiceNumber")
	})

	t.Run("Created", func(t *testing.T) {
		e := newEnv(t)
		v := viewer(auth.RoleEmployee)
		client := &invoice.Client{ID: uuid.New(), Label: "Acme"}

		e.m.invoices.EXPECT().GetClient(gomock.Any(), v.CompanyID, client.ID).Return(client, nil)
		e.m.invoices.EXPECT().InvoiceNumberExists(gomock.Any(), v.CompanyID, "7").Return(false, nil)
		e.m.invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(nil)

		body := `{"billedTo":{"id":"` + client.ID.String() + `","label":"Acme"},"issueDate":"2024-01-31T00:00:00Z","dueDate":"2024-02-29T00:00:00Z","invoiceNumber":"7"}`

		rec := e.do(t, v, jsonRequest(http.MethodPost, "/api/v1/invoices", body))
		require.Equal(t, http.StatusCreated, rec.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "2024-02-29", got["due_date"])
	})
}

func TestRouter_NextInvoiceNumber(t *testing.T) {
	e := newEnv(t)
	v := viewer(auth.RoleEmployee)

	e.m.invoices.EXPECT().LatestInvoiceNumber(gomock.Any(), v.CompanyID).Return("INV-0041", nil)

	rec := e.do(t, v, httptest.NewRequest(http.MethodGet, "/api/v1/invoices/next-number", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"invoice_number":"INV-0042"}`, rec.Body.String())
}

func TestRouter_ImportClients(t *testing.T) {
	e := newEnv(t)
	v := viewer(auth.RoleAdmin)

	e.m.invoices.EXPECT().CreateClients(gomock.Any(), v.CompanyID, gomock.Len(2)).Return(nil)

	var body bytes.Buffer

	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "clients.csv")
	require.NoError(t, err)

	_, err = fw.Write([]byte("label;address;phone\nAcme;1 Main St;555\nGlobex;;\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/clients/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	rec := e.do(t, v, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"imported":2}`, rec.Body.String())
}
