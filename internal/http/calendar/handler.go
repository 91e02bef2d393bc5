package calendar

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/tempo/internal/calendar"
	"github.com/MrJamesThe3rd/tempo/internal/http/respond"
)

type Handler struct {
	svc *calendar.Service
}

func NewHandler(svc *calendar.Service) *Handler {
	return &Handler{svc: svc}
}

// Routes are the authenticated calendar endpoints.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/redirect", h.redirect)
	r.Get("/status", h.status)
	r.Delete("/connection", h.disconnect)
}

// PublicRoutes are reached by the provider redirect and carry no bearer token.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Get("/callback", h.callback)
}

type redirectResponse struct {
	URL string `json:"url"`
}

type statusResponse struct {
	Connected bool `json:"connected"`
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request) {
	v, ok := respond.Viewer(w, r)
	if !ok {
		return
	}

	url, err := h.svc.RedirectURL(r.Context(), v)
	if err != nil {
		if errors.Is(err, calendar.ErrDisabled) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		slog.Error("failed to start calendar authorization", "user_id", v.UserID, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	respond.JSON(w, http.StatusOK, redirectResponse{URL: url})
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	v, ok := respond.Viewer(w, r)
	if !ok {
		return
	}

	connected, err := h.svc.Status(r.Context(), v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respond.JSON(w, http.StatusOK, statusResponse{Connected: connected})
}

func (h *Handler) disconnect(w http.ResponseWriter, r *http.Request) {
	v, ok := respond.Viewer(w, r)
	if !ok {
		return
	}

	if err := h.svc.Disconnect(r.Context(), v); err != nil {
		slog.Error("failed to disconnect calendar", "user_id", v.UserID, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

var callbackPage = template.Must(template.New("callback").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Google Calendar</title></head>
<body>
<h1>{{.Title}}</h1>
<p>{{.Message}}</p>
</body>
</html>
`))

type callbackView struct {
	Title   string
	Message string
}

func (h *Handler) callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status := http.StatusOK
	view := callbackView{
		Title:   "Calendar connected",
		Message: "You can close this window and return to Tempo.",
	}

	if providerErr := q.Get("error"); providerErr != "" {
		if err := h.svc.Abandon(r.Context(), q.Get("state")); err != nil {
			slog.Error("failed to discard calendar authorization state", "error", err)
		}

		status = http.StatusBadRequest
		view = callbackView{Title: "Authorization declined", Message: providerErr}
	} else if _, err := h.svc.Callback(r.Context(), q.Get("state"), q.Get("code")); err != nil {
		status = http.StatusBadRequest
		if !errors.Is(err, calendar.ErrInvalidState) {
			status = http.StatusBadGateway

			slog.Error("failed to complete calendar authorization", "error", err)
		}

		view = callbackView{Title: "Calendar not connected", Message: err.Error()}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)

	if err := callbackPage.Execute(w, view); err != nil {
		slog.Error("failed to render callback page", "error", err)
	}
}
