package handler

import (
	"encoding/json"
	"net/http"

	"erpviews-backend/internal/domain"
	"erpviews-backend/internal/server/authctx"
	"erpviews-backend/internal/service"
	"erpviews-backend/internal/views"
	"github.com/go-chi/chi/v5"
)

type InventoryHandler struct {
	Service  service.InventoryService
	Registry *views.Registry
}

func (h InventoryHandler) RegisterRoutes(r chi.Router) {
	r.Get("/inventory/reorder-suggestions", h.reorderSuggestions)
}

// RegisterManagerRoutes mounts the replenishment edits.
func (h InventoryHandler) RegisterManagerRoutes(r chi.Router) {
	r.Put("/replenishment/{id}/status", h.setStatus)
	r.Get("/replenishment/import-template", h.importTemplate)
}

func (h InventoryHandler) reorderSuggestions(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.GetReorderSuggestions(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h InventoryHandler) setStatus(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Status == "" {
		writeError(w, http.StatusBadRequest, "status is required")
		return
	}
	item, err := h.Registry.SetReplenishmentStatus(r.Context(), chi.URLParam(r, "id"), domain.ReplenishmentStatus(req.Status), user.Email)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h InventoryHandler) importTemplate(w http.ResponseWriter, r *http.Request) {
	data, err := service.ReplenishmentTemplate()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="replenishment_import_template.csv"`)
	_, _ = w.Write(data)
}
