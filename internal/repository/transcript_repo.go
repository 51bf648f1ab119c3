package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arakitakashi/homework-coach-robo-sub000/internal/model"
)

// TranscriptRepo handles MongoDB operations for archived coaching
// sessions.
type TranscriptRepo interface {
	Archive(ctx context.Context, transcript *model.Transcript) error
	GetBySessionID(ctx context.Context, sessionID string) (*model.Transcript, error)
	ListRecent(ctx context.Context, limit int64) ([]*model.Transcript, error)
}

type transcriptRepo struct {
	collection *mongo.Collection
}

// NewTranscriptRepo creates a transcript repository on the given
// database.
func NewTranscriptRepo(db *mongo.Database) TranscriptRepo {
	return &transcriptRepo{
		collection: db.Collection("transcripts"),
	}
}

func (r *transcriptRepo) Archive(ctx context.Context, transcript *model.Transcript) error {
	transcript.EndedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, transcript)
	return err
}

func (r *transcriptRepo) GetBySessionID(ctx context.Context, sessionID string) (*model.Transcript, error) {
	var transcript model.Transcript
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&transcript)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &transcript, nil
}

func (r *transcriptRepo) ListRecent(ctx context.Context, limit int64) ([]*model.Transcript, error) {
	opts := options.Find().SetSort(bson.D{{Key: "endedAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var transcripts []*model.Transcript
	if err := cursor.All(ctx, &transcripts); err != nil {
		return nil, err
	}
	return transcripts, nil
}
