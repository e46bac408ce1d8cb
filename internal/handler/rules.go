package handler

import (
	"net/http"

	"erpviews-backend/internal/server/authctx"
	"erpviews-backend/internal/views"
	"github.com/go-chi/chi/v5"
)

type RuleHandler struct {
	Registry *views.Registry
}

func (h RuleHandler) RegisterRoutes(r chi.Router) {
	r.Post("/assignment-rules/{id}/toggle", h.toggle)
}

func (h RuleHandler) toggle(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	rule, err := h.Registry.ToggleRule(r.Context(), chi.URLParam(r, "id"), user.Email)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rule)
}
