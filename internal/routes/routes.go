package routes

import (
	"net/http"

	"github.com/AnshRaj112/emogo-backend/internal/handlers"
	"github.com/go-chi/chi/v5"
)

func SetupRoutes(r *chi.Mux, h *handlers.Handler) {
	r.Get("/", h.Root)
	r.Get("/health", h.Health)

	// Video retrieval: forced download, bulk ZIP, and a plain static mount
	// over the upload directory (no attachment header there).
	r.Get("/download/{filename}", h.DownloadFile)
	r.Get("/download-all", h.DownloadAll)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.Uploads.Dir()))))

	// Mood submission API
	r.Post("/api/moods", h.CreateMoodRecord)

	// HTML export views
	r.Get("/export", h.ExportIndex)
	r.Get("/export/vlog", h.ExportVlog)
	r.Get("/export/sentiments", h.ExportSentiments)
	r.Get("/export/gps", h.ExportGps)
}
