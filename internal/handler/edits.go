package handler

import (
	"net/http"

	"erpviews-backend/internal/views"
	"github.com/go-chi/chi/v5"
)

// EditHandler exposes the change log of the in-process edit overlay.
type EditHandler struct {
	Registry *views.Registry
}

func (h EditHandler) RegisterRoutes(r chi.Router) {
	r.Get("/edits", h.list)
}

func (h EditHandler) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Registry.Edits())
}
