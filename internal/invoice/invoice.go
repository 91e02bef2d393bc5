package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateNumber = errors.New("invoice number already in use")
)

// Client is a billable customer as shown in the "Billed to" picker.
type Client struct {
	ID      uuid.UUID `json:"id"`
	Label   string    `json:"label" validate:"notblank"`
	Address string    `json:"address"`
	Phone   string    `json:"phone"`
}

// Draft is the unsaved invoice metadata collected by the invoice details form.
type Draft struct {
	BilledTo        *Client   `json:"billedTo" validate:"required"`
	IssueDate       time.Time `json:"issueDate" validate:"required"`
	DueDate         time.Time `json:"dueDate" validate:"required,gtefield=IssueDate"`
	InvoiceNumber   string    `json:"invoiceNumber" validate:"notblank"`
	ReferenceNumber string    `json:"referenceNumber"`
}

// Invoice is a saved invoice header.
type Invoice struct {
	ID              uuid.UUID
	CompanyID       uuid.UUID
	ClientID        uuid.UUID
	Client          *Client // Loaded via JOIN
	IssueDate       time.Time
	DueDate         time.Time
	InvoiceNumber   string
	ReferenceNumber string
	CreatedAt       time.Time
}

// NewDraft returns a draft issued on the given day with the derived due date.
func NewDraft(issue time.Time) Draft {
	issue = DateOnly(issue)

	return Draft{
		IssueDate: issue,
		DueDate:   DueDateFor(issue),
	}
}

// DueDateFor returns the default due date for an invoice issued on issue: the same day one
// calendar month later, clamped to the last day of that month (Jan 31 -> Feb 28/29).
func DueDateFor(issue time.Time) time.Time {
	return AddMonths(issue, 1)
}

// AddMonths moves t by n calendar months keeping the day of month where it exists and
// clamping to the month's last day where it does not. The time of day is dropped.
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()

	target := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, t.Location())
	if last := daysIn(target.Year(), target.Month(), t.Location()); d > last {
		d = last
	}

	return time.Date(target.Year(), target.Month(), d, 0, 0, 0, 0, t.Location())
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}
