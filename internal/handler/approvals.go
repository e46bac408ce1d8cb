package handler

import (
	"net/http"

	"erpviews-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

type ApprovalHandler struct {
	Service service.ApprovalService
}

func (h ApprovalHandler) RegisterRoutes(r chi.Router) {
	r.Get("/approvals/{docType}/{docId}/history", h.history)
}

func (h ApprovalHandler) history(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Service.GetHistory(r.Context(), chi.URLParam(r, "docId"), chi.URLParam(r, "docType"))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
