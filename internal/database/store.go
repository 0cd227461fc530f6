package database

import (
	"context"

	"github.com/AnshRaj112/emogo-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection names are part of the persisted contract.
const (
	CollMoodRecords = "mood_records"
	CollVlog        = "vlog"
	CollSentiments  = "sentiments"
	CollGps         = "gps"
)

// MongoStore persists the four mood collections. Inserts are independent
// single-document writes; there is no transaction across the fan-out.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(conn *Connection) *MongoStore {
	return &MongoStore{db: conn.Database()}
}

// InsertMoodRecord writes the primary record and returns the generated
// ObjectID as a hex string.
func (s *MongoStore) InsertMoodRecord(ctx context.Context, record models.MoodRecord) (string, error) {
	record.ID = primitive.NewObjectID()
	result, err := s.db.Collection(CollMoodRecords).InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *MongoStore) InsertVlogEntry(ctx context.Context, entry models.VlogEntry) error {
	entry.ID = primitive.NewObjectID()
	_, err := s.db.Collection(CollVlog).InsertOne(ctx, entry)
	return err
}

func (s *MongoStore) InsertSentimentEntry(ctx context.Context, entry models.SentimentEntry) error {
	entry.ID = primitive.NewObjectID()
	_, err := s.db.Collection(CollSentiments).InsertOne(ctx, entry)
	return err
}

func (s *MongoStore) InsertGpsEntry(ctx context.Context, entry models.GpsEntry) error {
	entry.ID = primitive.NewObjectID()
	_, err := s.db.Collection(CollGps).InsertOne(ctx, entry)
	return err
}

// ListVlogEntries returns the entire vlog collection; the export views have
// no pagination.
func (s *MongoStore) ListVlogEntries(ctx context.Context) ([]models.VlogEntry, error) {
	cursor, err := s.db.Collection(CollVlog).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.VlogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *MongoStore) ListSentimentEntries(ctx context.Context) ([]models.SentimentEntry, error) {
	cursor, err := s.db.Collection(CollSentiments).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.SentimentEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *MongoStore) ListGpsEntries(ctx context.Context) ([]models.GpsEntry, error) {
	cursor, err := s.db.Collection(CollGps).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []models.GpsEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
