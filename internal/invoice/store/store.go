package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/tempo/internal/invoice"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	query := `
		INSERT INTO invoices (company_id, client_id, issue_date, due_date, invoice_number, reference_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		inv.CompanyID,
		inv.ClientID,
		inv.IssueDate,
		inv.DueDate,
		inv.InvoiceNumber,
		inv.ReferenceNumber,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		// A concurrent save can take the number after the service checked it.
		if isUniqueViolation(err) {
			return invoice.ErrDuplicateNumber
		}

		return fmt.Errorf("creating invoice: %w", err)
	}

	return nil
}

func (s *Store) InvoiceNumberExists(ctx context.Context, companyID uuid.UUID, number string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM invoices WHERE company_id = $1 AND invoice_number = $2)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, companyID, number).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking invoice number: %w", err)
	}

	return exists, nil
}

func (s *Store) LatestInvoiceNumber(ctx context.Context, companyID uuid.UUID) (string, error) {
	query := `
		SELECT invoice_number
		FROM invoices
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var number string

	err := s.db.QueryRowContext(ctx, query, companyID).Scan(&number)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("loading latest invoice number: %w", err)
	}

	return number, nil
}

func (s *Store) GetClient(ctx context.Context, companyID, id uuid.UUID) (*invoice.Client, error) {
	query := `SELECT id, label, address, phone FROM clients WHERE company_id = $1 AND id = $2`

	var c invoice.Client

	err := s.db.QueryRowContext(ctx, query, companyID, id).Scan(&c.ID, &c.Label, &c.Address, &c.Phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrNotFound
		}

		return nil, fmt.Errorf("getting client: %w", err)
	}

	return &c, nil
}

func (s *Store) ListClients(ctx context.Context, companyID uuid.UUID) ([]*invoice.Client, error) {
	query := `SELECT id, label, address, phone FROM clients WHERE company_id = $1 ORDER BY label`

	rows, err := s.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*invoice.Client

	for rows.Next() {
		var c invoice.Client
		if err := rows.Scan(&c.ID, &c.Label, &c.Address, &c.Phone); err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}

		clients = append(clients, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clients: %w", err)
	}

	return clients, nil
}

func (s *Store) CreateClients(ctx context.Context, companyID uuid.UUID, clients []*invoice.Client) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO clients (company_id, label, address, phone, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range clients {
		if err := stmt.QueryRowContext(ctx, companyID, c.Label, c.Address, c.Phone).Scan(&c.ID); err != nil {
			return fmt.Errorf("inserting client %q: %w", c.Label, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing clients: %w", err)
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
