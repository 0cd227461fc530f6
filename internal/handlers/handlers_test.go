package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AnshRaj112/emogo-backend/internal/handlers"
	"github.com/AnshRaj112/emogo-backend/internal/models"
	"github.com/AnshRaj112/emogo-backend/internal/routes"
	"github.com/AnshRaj112/emogo-backend/internal/store"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeStore is an in-memory DataStore so handlers run without a live Mongo.
type fakeStore struct {
	moods      []models.MoodRecord
	vlogs      []models.VlogEntry
	sentiments []models.SentimentEntry
	gps        []models.GpsEntry

	sentimentErr error // injected failure for the mid-fanout path
}

func (f *fakeStore) InsertMoodRecord(_ context.Context, record models.MoodRecord) (string, error) {
	record.ID = primitive.NewObjectID()
	f.moods = append(f.moods, record)
	return record.ID.Hex(), nil
}

func (f *fakeStore) InsertVlogEntry(_ context.Context, entry models.VlogEntry) error {
	f.vlogs = append(f.vlogs, entry)
	return nil
}

func (f *fakeStore) InsertSentimentEntry(_ context.Context, entry models.SentimentEntry) error {
	if f.sentimentErr != nil {
		return f.sentimentErr
	}
	f.sentiments = append(f.sentiments, entry)
	return nil
}

func (f *fakeStore) InsertGpsEntry(_ context.Context, entry models.GpsEntry) error {
	f.gps = append(f.gps, entry)
	return nil
}

func (f *fakeStore) ListVlogEntries(_ context.Context) ([]models.VlogEntry, error) {
	return f.vlogs, nil
}

func (f *fakeStore) ListSentimentEntries(_ context.Context) ([]models.SentimentEntry, error) {
	return f.sentiments, nil
}

func (f *fakeStore) ListGpsEntries(_ context.Context) ([]models.GpsEntry, error) {
	return f.gps, nil
}

func newTestApp(t *testing.T) (*fakeStore, *store.UploadStore, *chi.Mux) {
	t.Helper()
	fs := &fakeStore{}
	uploads, err := store.New(t.TempDir())
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	r := chi.NewRouter()
	routes.SetupRoutes(r, handlers.New(fs, uploads))
	return fs, uploads, r
}

// moodForm builds a multipart body for POST /api/moods. videoName == ""
// means no video part.
func moodForm(t *testing.T, fields map[string]string, videoName, videoBody string) (*bytes.Buffer, string) {
	t.Helper()
	buf := new(bytes.Buffer)
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("WriteField %s: %v", k, err)
		}
	}
	if videoName != "" {
		fw, err := mw.CreateFormFile("video", videoName)
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := fw.Write([]byte(videoBody)); err != nil {
			t.Fatalf("write video: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func postMood(t *testing.T, r *chi.Mux, fields map[string]string, videoName, videoBody string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := moodForm(t, fields, videoName, videoBody)
	req := httptest.NewRequest(http.MethodPost, "/api/moods", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeMoodResponse(t *testing.T, rec *httptest.ResponseRecorder) handlers.CreateMoodResponse {
	t.Helper()
	var resp handlers.CreateMoodResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestRoot(t *testing.T) {
	_, _, r := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "server ok" {
		t.Fatalf("message = %q, want %q", body["message"], "server ok")
	}
}

func TestHealth(t *testing.T) {
	_, _, r := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("got %d %q, want 200 OK", rec.Code, rec.Body.String())
	}
}
