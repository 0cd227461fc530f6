package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// DownloadFile serves a stored video with a forced-download disposition.
// A miss answers 200 with a JSON error body rather than a 404; existing
// clients key off the body, so the status stays as it always was.
func (h *Handler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	f, err := h.Uploads.Open(filename)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"error": "File not found"})
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	io.Copy(w, f)
}

// DownloadAll streams a ZIP of every stored file, rebuilt per request.
func (h *Handler) DownloadAll(w http.ResponseWriter, r *http.Request) {
	buf, err := h.Uploads.BuildArchive()
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to build archive"})
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", "attachment; filename=emogo_all_videos.zip")
	w.Write(buf.Bytes())
}
