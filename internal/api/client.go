// Package api is the HTTP client the terminal app uses to talk to the tempo API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tempo/internal/auth"
	"github.com/MrJamesThe3rd/tempo/internal/invoice"
)

// Error is a non-2xx answer from the API.
type Error struct {
	Status  int
	Message string
	// Fields is set for 422 responses.
	Fields invoice.ValidationErrors
}

func (e *Error) Error() string {
	if e.Fields != nil {
		return e.Fields.Error()
	}

	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Unwrap exposes field errors so callers can errors.As into invoice.ValidationErrors.
func (e *Error) Unwrap() error {
	if e.Fields == nil {
		return nil
	}

	return e.Fields
}

type Profile struct {
	UserID            uuid.UUID `json:"user_id"`
	CompanyID         uuid.UUID `json:"company_id"`
	Role              auth.Role `json:"role"`
	IsAdmin           bool      `json:"is_admin"`
	CalendarEnabled   bool      `json:"calendar_enabled"`
	CalendarConnected bool      `json:"calendar_connected"`
}

type CompanySettings struct {
	CalendarEnabled bool `json:"calendar_enabled"`
}

// SavedInvoice is the API's answer to a successful save.
type SavedInvoice struct {
	ID            uuid.UUID `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	DueDate       string    `json:"due_date"`
}

type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var p Profile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

// Company reads the company settings.
func (c *Client) Company(ctx context.Context) (*CompanySettings, error) {
	var resp struct {
		CompanyDetails CompanySettings `json:"company_details"`
	}

	if err := c.do(ctx, http.MethodGet, "/companies", nil, &resp); err != nil {
		return nil, err
	}

	return &resp.CompanyDetails, nil
}

// UpdateTeam writes the team-wide calendar flag.
func (c *Client) UpdateTeam(ctx context.Context, calendarEnabled bool) error {
	body := map[string]any{"team": map[string]bool{"calendar_enabled": calendarEnabled}}
	return c.do(ctx, http.MethodPut, "/team", body, nil)
}

// CalendarRedirect returns the provider URL that starts the calendar handshake.
func (c *Client) CalendarRedirect(ctx context.Context) (string, error) {
	var resp struct {
		URL string `json:"url"`
	}

	if err := c.do(ctx, http.MethodGet, "/calendar/redirect", nil, &resp); err != nil {
		return "", err
	}

	if resp.URL == "" {
		return "", errors.New("api: empty redirect url")
	}

	return resp.URL, nil
}

func (c *Client) CalendarStatus(ctx context.Context) (bool, error) {
	var resp struct {
		Connected bool `json:"connected"`
	}

	if err := c.do(ctx, http.MethodGet, "/calendar/status", nil, &resp); err != nil {
		return false, err
	}

	return resp.Connected, nil
}

func (c *Client) CalendarDisconnect(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/calendar/connection", nil, nil)
}

func (c *Client) Clients(ctx context.Context) ([]invoice.Client, error) {
	var resp struct {
		Clients []invoice.Client `json:"clients"`
	}

	if err := c.do(ctx, http.MethodGet, "/clients", nil, &resp); err != nil {
		return nil, err
	}

	return resp.Clients, nil
}

func (c *Client) NextInvoiceNumber(ctx context.Context) (string, error) {
	var resp struct {
		InvoiceNumber string `json:"invoice_number"`
	}

	if err := c.do(ctx, http.MethodGet, "/invoices/next-number", nil, &resp); err != nil {
		return "", err
	}

	return resp.InvoiceNumber, nil
}

// SaveInvoice stores the draft. Server-side validation failures come back as an *Error
// wrapping invoice.ValidationErrors.
func (c *Client) SaveInvoice(ctx context.Context, d invoice.Draft) (*SavedInvoice, error) {
	var saved SavedInvoice
	if err := c.do(ctx, http.MethodPost, "/invoices", d, &saved); err != nil {
		return nil, err
	}

	return &saved, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}

		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func readError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	apiErr := &Error{
		Status:  resp.StatusCode,
		Message: strings.TrimSpace(string(raw)),
	}

	if resp.StatusCode == http.StatusUnprocessableEntity {
		var body struct {
			Errors invoice.ValidationErrors `json:"errors"`
		}

		if err := json.Unmarshal(raw, &body); err == nil && len(body.Errors) > 0 {
			apiErr.Fields = body.Errors
		}
	}

	return apiErr
}
