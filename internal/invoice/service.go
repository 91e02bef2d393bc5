package invoice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	CreateInvoice(ctx context.Context, inv *Invoice) error
	InvoiceNumberExists(ctx context.Context, companyID uuid.UUID, number string) (bool, error)
	LatestInvoiceNumber(ctx context.Context, companyID uuid.UUID) (string, error)

	GetClient(ctx context.Context, companyID, id uuid.UUID) (*Client, error)
	ListClients(ctx context.Context, companyID uuid.UUID) ([]*Client, error)
	CreateClients(ctx context.Context, companyID uuid.UUID, clients []*Client) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the draft and stores it as an invoice of the company.
func (s *Service) Create(ctx context.Context, companyID uuid.UUID, d Draft) (*Invoice, error) {
	if err := Validate(d); err != nil {
		return nil, err
	}

	client, err := s.repo.GetClient(ctx, companyID, d.BilledTo.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ValidationErrors{"billedTo": "unknown client"}
		}

		return nil, fmt.Errorf("loading client: %w", err)
	}

	number := strings.TrimSpace(d.InvoiceNumber)

	exists, err := s.repo.InvoiceNumberExists(ctx, companyID, number)
	if err != nil {
		return nil, fmt.Errorf("checking invoice number: %w", err)
	}

	if exists {
		return nil, ErrDuplicateNumber
	}

	inv := &Invoice{
		CompanyID:       companyID,
		ClientID:        client.ID,
		Client:          client,
		IssueDate:       DateOnly(d.IssueDate),
		DueDate:         DateOnly(d.DueDate),
		InvoiceNumber:   number,
		ReferenceNumber: strings.TrimSpace(d.ReferenceNumber),
	}

	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

// NextInvoiceNumber suggests the number following the company's latest invoice.
// A trailing run of digits is incremented keeping its width ("INV-0009" -> "INV-0010");
// a number without digits gets "-1" appended. The first invoice is "1".
func (s *Service) NextInvoiceNumber(ctx context.Context, companyID uuid.UUID) (string, error) {
	latest, err := s.repo.LatestInvoiceNumber(ctx, companyID)
	if err != nil {
		return "", fmt.Errorf("loading latest invoice number: %w", err)
	}

	return nextNumber(latest), nil
}

func nextNumber(latest string) string {
	if latest == "" {
		return "1"
	}

	i := len(latest)
	for i > 0 && latest[i-1] >= '0' && latest[i-1] <= '9' {
		i--
	}

	prefix, digits := latest[:i], latest[i:]
	if digits == "" {
		return latest + "-1"
	}

	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return latest + "-1"
	}

	return fmt.Sprintf("%s%0*d", prefix, len(digits), n+1)
}

func (s *Service) ListClients(ctx context.Context, companyID uuid.UUID) ([]*Client, error) {
	return s.repo.ListClients(ctx, companyID)
}

// ImportClients stores the given clients, skipping rows without a label.
func (s *Service) ImportClients(ctx context.Context, companyID uuid.UUID, clients []*Client) (int, error) {
	valid := make([]*Client, 0, len(clients))

	for _, c := range clients {
		if strings.TrimSpace(c.Label) == "" {
			continue
		}

		valid = append(valid, c)
	}

	if len(valid) == 0 {
		return 0, nil
	}

	if err := s.repo.CreateClients(ctx, companyID, valid); err != nil {
		return 0, fmt.Errorf("creating clients: %w", err)
	}

	return len(valid), nil
}
