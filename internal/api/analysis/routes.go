package analysis

import (
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/generate-report", h.GenerateReport)
	r.Post("/create-tasks", h.CreateTasks)
	r.Post("/create-advisory", h.CreateAdvisory)
	r.Post("/export-report", h.ExportReport)
}
