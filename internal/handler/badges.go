package handler

import (
	"net/http"
	"sort"

	"erpviews-backend/internal/badge"
	"github.com/go-chi/chi/v5"
)

type BadgeHandler struct{}

func (h BadgeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/badges", h.palettes)
	r.Get("/badges/{palette}/{status}", h.resolve)
}

func (h BadgeHandler) palettes(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(badge.Kinds))
	for name := range badge.Kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	writeJSON(w, http.StatusOK, names)
}

// resolve falls back to the neutral style for statuses the palette does not
// know; only an unknown palette is an error.
func (h BadgeHandler) resolve(w http.ResponseWriter, r *http.Request) {
	kind, ok := badge.Kinds[chi.URLParam(r, "palette")]
	if !ok {
		writeError(w, http.StatusNotFound, "unknown palette")
		return
	}
	writeJSON(w, http.StatusOK, kind.Badge(chi.URLParam(r, "status")))
}
