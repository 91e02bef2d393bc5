package company

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/tempo/internal/auth"
	"github.com/MrJamesThe3rd/tempo/internal/company"
	"github.com/MrJamesThe3rd/tempo/internal/http/respond"
)

type Handler struct {
	svc *company.Service
}

func NewHandler(svc *company.Service) *Handler {
	return &Handler{svc: svc}
}

// CompanyRoutes serves the company settings reader.
func (h *Handler) CompanyRoutes(r chi.Router) {
	r.Get("/", h.get)
}

// TeamRoutes serves the team settings writer.
func (h *Handler) TeamRoutes(r chi.Router) {
	r.Put("/", h.updateTeam)
}

type companyDetails struct {
	CalendarEnabled bool `json:"calendar_enabled"`
}

type companyResponse struct {
	CompanyDetails companyDetails `json:"company_details"`
}

type teamRequest struct {
	Team struct {
		CalendarEnabled *bool `json:"calendar_enabled"`
	} `json:"team"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	v, ok := respond.Viewer(w, r)
	if !ok {
		return
	}

	settings, err := h.svc.Get(r.Context(), v.CompanyID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respond.JSON(w, http.StatusOK, companyResponse{
		CompanyDetails: companyDetails{CalendarEnabled: settings.CalendarEnabled},
	})
}

func (h *Handler) updateTeam(w http.ResponseWriter, r *http.Request) {
	v, ok := respond.Viewer(w, r)
	if !ok {
		return
	}

	var req teamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	if req.Team.CalendarEnabled == nil {
		http.Error(w, "team.calendar_enabled is required", http.StatusBadRequest)
		return
	}

	if err := h.svc.SetCalendarEnabled(r.Context(), v, *req.Team.CalendarEnabled); err != nil {
		if errors.Is(err, auth.ErrForbidden) {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
