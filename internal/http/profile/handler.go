package profile

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/tempo/internal/auth"
	"github.com/MrJamesThe3rd/tempo/internal/calendar"
	"github.com/MrJamesThe3rd/tempo/internal/company"
	"github.com/MrJamesThe3rd/tempo/internal/http/respond"
)

type Handler struct {
	companySvc  *company.Service
	calendarSvc *calendar.Service
}

func NewHandler(companySvc *company.Service, calendarSvc *calendar.Service) *Handler {
	return &Handler{
		companySvc:  companySvc,
		calendarSvc: calendarSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

type profileResponse struct {
	UserID            string    `json:"user_id"`
	CompanyID         string    `json:"company_id"`
	Role              auth.Role `json:"role"`
	IsAdmin           bool      `json:"is_admin"`
	CalendarEnabled   bool      `json:"calendar_enabled"`
	CalendarConnected bool      `json:"calendar_connected"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	v, ok := respond.Viewer(w, r)
	if !ok {
		return
	}

	settings, err := h.companySvc.Get(r.Context(), v.CompanyID)
	if err != nil {
		slog.Error("failed to load company settings", "company_id", v.CompanyID, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	connected, err := h.calendarSvc.Status(r.Context(), v)
	if err != nil {
		slog.Error("failed to load calendar status", "user_id", v.UserID, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	respond.JSON(w, http.StatusOK, profileResponse{
		UserID:            v.UserID.String(),
		CompanyID:         v.CompanyID.String(),
		Role:              v.Role,
		IsAdmin:           v.IsAdmin(),
		CalendarEnabled:   settings.CalendarEnabled,
		CalendarConnected: connected,
	})
}
