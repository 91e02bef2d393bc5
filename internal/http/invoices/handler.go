package invoices

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/tempo/internal/http/respond"
	"github.com/MrJamesThe3rd/tempo/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/next-number", h.nextNumber)
	r.Post("/", h.create)
}

type nextNumberResponse struct {
	InvoiceNumber string `json:"invoice_number"`
}

type validationResponse struct {
	Errors invoice.ValidationErrors `json:"errors"`
}

type invoiceResponse struct {
	ID              uuid.UUID       `json:"id"`
	Client          *invoice.Client `json:"client"`
	IssueDate       string          `json:"issue_date"`
	DueDate         string          `json:"due_date"`
	InvoiceNumber   string          `json:"invoice_number"`
	ReferenceNumber string          `json:"reference_number,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (h *Handler) nextNumber(w http.ResponseWriter, r *http.Request) {
	v, ok := respond.Viewer(w, r)
	if !ok {
		return
	}

	number, err := h.svc.NextInvoiceNumber(r.Context(), v.CompanyID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respond.JSON(w, http.StatusOK, nextNumberResponse{InvoiceNumber: number})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	v, ok := respond.Viewer(w, r)
	if !ok {
		return
	}

	var draft invoice.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	inv, err := h.svc.Create(r.Context(), v.CompanyID, draft)
	if err != nil {
		var verrs invoice.ValidationErrors

		switch {
		case errors.As(err, &verrs):
			respond.JSON(w, http.StatusUnprocessableEntity, validationResponse{Errors: verrs})
		case errors.Is(err, invoice.ErrDuplicateNumber):
			respond.JSON(w, http.StatusUnprocessableEntity, validationResponse{
				Errors: invoice.ValidationErrors{"invoiceNumber": err.Error()},
			})
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	respond.JSON(w, http.StatusCreated, invoiceResponse{
		ID:              inv.ID,
		Client:          inv.Client,
		IssueDate:       inv.IssueDate.Format(time.DateOnly),
		DueDate:         inv.DueDate.Format(time.DateOnly),
		InvoiceNumber:   inv.InvoiceNumber,
		ReferenceNumber: inv.ReferenceNumber,
		CreatedAt:       inv.CreatedAt,
	})
}
