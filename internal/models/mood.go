package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoodRecord is the primary document written for every submission.
// Optional fields are pointers so an absent value persists as BSON null,
// matching the documents existing clients already read.
type MoodRecord struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MoodScore        int                `bson:"mood_score" json:"mood_score"`
	VideoURL         *string            `bson:"video_url" json:"video_url"`
	Latitude         *float64           `bson:"latitude" json:"latitude"`
	Longitude        *float64           `bson:"longitude" json:"longitude"`
	LocationAccuracy *float64           `bson:"location_accuracy" json:"location_accuracy"`
	Timestamp        int64              `bson:"timestamp" json:"timestamp"`
	CreatedAt        string             `bson:"created_at" json:"created_at"`
}

// VlogEntry is a denormalized copy of the video-bearing subset of a
// MoodRecord, written only when a submission carried a video.
type VlogEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VideoURL  string             `bson:"video_url" json:"video_url"`
	MoodScore int                `bson:"mood_score" json:"mood_score"`
	Timestamp int64              `bson:"timestamp" json:"timestamp"`
	CreatedAt string             `bson:"created_at" json:"created_at"`
}

// SentimentEntry is written once per submission.
type SentimentEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MoodScore int                `bson:"mood_score" json:"mood_score"`
	Timestamp int64              `bson:"timestamp" json:"timestamp"`
	CreatedAt string             `bson:"created_at" json:"created_at"`
}

// GpsEntry is written only when a submission carried both coordinates.
type GpsEntry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Latitude  float64            `bson:"latitude" json:"latitude"`
	Longitude float64            `bson:"longitude" json:"longitude"`
	Accuracy  *float64           `bson:"accuracy" json:"accuracy"`
	Timestamp int64              `bson:"timestamp" json:"timestamp"`
	CreatedAt string             `bson:"created_at" json:"created_at"`
}
