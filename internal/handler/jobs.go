package handler

import (
	"net/http"

	"erpviews-backend/internal/server/authctx"
	"erpviews-backend/internal/service"
	"github.com/go-chi/chi/v5"
)

type JobHandler struct {
	Processor *service.Processor
}

func (h JobHandler) RegisterRoutes(r chi.Router) {
	r.Get("/jobs/status", h.status)
}

func (h JobHandler) RegisterManagerRoutes(r chi.Router) {
	r.Post("/jobs/{kind}", h.submit)
}

func (h JobHandler) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Processor.Status())
}

func (h JobHandler) submit(w http.ResponseWriter, r *http.Request) {
	user := authctx.FromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	kind, err := service.ParseJobKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeErr(w, err)
		return
	}
	job, err := h.Processor.Submit(kind, user.Email)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, job)
}
