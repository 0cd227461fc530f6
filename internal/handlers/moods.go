package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/AnshRaj112/emogo-backend/internal/models"
)

const maxUploadBytes = 50 << 20 // 50MB

// CreateMoodResponse is returned by POST /api/moods. VideoURL is null when
// the submission carried no video.
type CreateMoodResponse struct {
	Success  bool    `json:"success"`
	Message  string  `json:"message"`
	ID       string  `json:"id,omitempty"`
	VideoURL *string `json:"video_url"`
}

// CreateMoodRecord accepts a multipart mood submission and fans it out into
// up to four collections: the primary record and a sentiment entry always, a
// vlog entry when a video is attached, a GPS entry when both coordinates are
// present. The inserts are independent; a failure partway through leaves the
// earlier writes (and any saved video) in place.
func (h *Handler) CreateMoodRecord(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeMoodError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	moodScore, err := strconv.Atoi(r.FormValue("mood_score"))
	if err != nil {
		writeMoodError(w, http.StatusBadRequest, "mood_score is required and must be an integer")
		return
	}

	latitude, err := optionalFloat(r, "latitude")
	if err != nil {
		writeMoodError(w, http.StatusBadRequest, "latitude must be a number")
		return
	}
	longitude, err := optionalFloat(r, "longitude")
	if err != nil {
		writeMoodError(w, http.StatusBadRequest, "longitude must be a number")
		return
	}
	accuracy, err := optionalFloat(r, "location_accuracy")
	if err != nil {
		writeMoodError(w, http.StatusBadRequest, "location_accuracy must be a number")
		return
	}

	var timestamp int64
	if v := r.FormValue("timestamp"); v != "" {
		timestamp, err = strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeMoodError(w, http.StatusBadRequest, "timestamp must be an integer")
			return
		}
	}
	// Zero means "not provided"; an explicit timestamp=0 is replaced too,
	// matching the clients this API grew up with.
	if timestamp == 0 {
		timestamp = time.Now().Unix()
	}

	createdAt := nowUTC()

	// Save the video (if any) and build its public URL from the request's
	// own origin. The URL is stored verbatim, so it is only reachable
	// through the origin that served this request.
	var videoURL *string
	if file, header, ferr := r.FormFile("video"); ferr == nil {
		defer file.Close()

		filename := vlogFilename(timestamp, moodScore, header.Filename)
		if err := h.Uploads.Save(filename, file); err != nil {
			writeMoodError(w, http.StatusInternalServerError, "Failed to save video")
			return
		}
		u := baseURL(r) + "/uploads/" + filename
		videoURL = &u
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	record := models.MoodRecord{
		MoodScore:        moodScore,
		VideoURL:         videoURL,
		Latitude:         latitude,
		Longitude:        longitude,
		LocationAccuracy: accuracy,
		Timestamp:        timestamp,
		CreatedAt:        createdAt,
	}

	id, err := h.Store.InsertMoodRecord(ctx, record)
	if err != nil {
		writeMoodError(w, http.StatusInternalServerError, "Failed to create mood record")
		return
	}

	if videoURL != nil {
		err = h.Store.InsertVlogEntry(ctx, models.VlogEntry{
			VideoURL:  *videoURL,
			MoodScore: moodScore,
			Timestamp: timestamp,
			CreatedAt: createdAt,
		})
		if err != nil {
			writeMoodError(w, http.StatusInternalServerError, "Failed to create vlog entry")
			return
		}
	}

	err = h.Store.InsertSentimentEntry(ctx, models.SentimentEntry{
		MoodScore: moodScore,
		Timestamp: timestamp,
		CreatedAt: createdAt,
	})
	if err != nil {
		writeMoodError(w, http.StatusInternalServerError, "Failed to create sentiment entry")
		return
	}

	// A zero coordinate counts as absent, so points on the equator or prime
	// meridian never get a GPS entry.
	if latitude != nil && *latitude != 0 && longitude != nil && *longitude != 0 {
		err = h.Store.InsertGpsEntry(ctx, models.GpsEntry{
			Latitude:  *latitude,
			Longitude: *longitude,
			Accuracy:  accuracy,
			Timestamp: timestamp,
			CreatedAt: createdAt,
		})
		if err != nil {
			writeMoodError(w, http.StatusInternalServerError, "Failed to create gps entry")
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateMoodResponse{
		Success:  true,
		Message:  "Mood record created successfully",
		ID:       id,
		VideoURL: videoURL,
	})
}

// vlogFilename derives the stored name from the submission. The extension is
// the final dot-segment of the client filename taken verbatim; a dotless name
// becomes the extension wholesale and a trailing dot yields an empty one.
// Identical timestamp+score+extension silently overwrite.
func vlogFilename(timestamp int64, moodScore int, original string) string {
	parts := strings.Split(original, ".")
	ext := parts[len(parts)-1]
	return fmt.Sprintf("vlog_%d_%d.%s", timestamp, moodScore, ext)
}

// nowUTC formats server time the way the stored documents expect:
// RFC 3339 UTC with microseconds and a literal Z suffix.
func nowUTC() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000000") + "Z"
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func optionalFloat(r *http.Request, field string) (*float64, error) {
	v := r.FormValue(field)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func writeMoodError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(CreateMoodResponse{
		Success: false,
		Message: message,
	})
}
