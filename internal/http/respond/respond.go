// Package respond holds the response helpers shared by the v1 handlers.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/MrJamesThe3rd/tempo/internal/auth"
)

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Viewer returns the authenticated viewer, answering 401 when the request was not
// routed through auth.Middleware.
func Viewer(w http.ResponseWriter, r *http.Request) (auth.Viewer, bool) {
	v, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
	}

	return v, ok
}
