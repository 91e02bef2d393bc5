package clients

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/tempo/internal/http/respond"
	"github.com/MrJamesThe3rd/tempo/internal/importer"
	"github.com/MrJamesThe3rd/tempo/internal/invoice"
)

type Handler struct {
	importSvc  *importer.Service
	invoiceSvc *invoice.Service
}

func NewHandler(importSvc *importer.Service, invoiceSvc *invoice.Service) *Handler {
	return &Handler{
		importSvc:  importSvc,
		invoiceSvc: invoiceSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/import", h.importCSV)
}

type listResponse struct {
	Clients []*invoice.Client `json:"clients"`
}

type importResponse struct {
	Imported int `json:"imported"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	v, ok := respond.Viewer(w, r)
	if !ok {
		return
	}

	clients, err := h.invoiceSvc.ListClients(r.Context(), v.CompanyID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if clients == nil {
		clients = []*invoice.Client{}
	}

	respond.JSON(w, http.StatusOK, listResponse{Clients: clients})
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	v, ok := respond.Viewer(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	parsed, err := h.importSvc.Import(importer.Format(r.FormValue("format")), file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	clients := make([]*invoice.Client, 0, len(parsed))
	for i := range parsed {
		clients = append(clients, &parsed[i])
	}

	n, err := h.invoiceSvc.ImportClients(r.Context(), v.CompanyID, clients)
	if err != nil {
		slog.Error("failed to import clients", "company_id", v.CompanyID, "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	respond.JSON(w, http.StatusCreated, importResponse{Imported: n})
}
