package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AnshRaj112/emogo-backend/internal/models"
	"github.com/AnshRaj112/emogo-backend/internal/store"
)

// DataStore abstracts the document store so handlers can be tested without a
// live MongoDB. The production implementation is database.MongoStore.
type DataStore interface {
	InsertMoodRecord(ctx context.Context, record models.MoodRecord) (string, error)
	InsertVlogEntry(ctx context.Context, entry models.VlogEntry) error
	InsertSentimentEntry(ctx context.Context, entry models.SentimentEntry) error
	InsertGpsEntry(ctx context.Context, entry models.GpsEntry) error
	ListVlogEntries(ctx context.Context) ([]models.VlogEntry, error)
	ListSentimentEntries(ctx context.Context) ([]models.SentimentEntry, error)
	ListGpsEntries(ctx context.Context) ([]models.GpsEntry, error)
}

// Handler carries the process-wide dependencies. Both are constructed once in
// main and shared by every request.
type Handler struct {
	Store   DataStore
	Uploads *store.UploadStore
}

func New(dataStore DataStore, uploads *store.UploadStore) *Handler {
	return &Handler{Store: dataStore, Uploads: uploads}
}

// Root is the original health probe; existing clients check its exact body.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "server ok"})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("OK"))
}
