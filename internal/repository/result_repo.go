package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"descentcheck/internal/model"
)

type ResultRepository interface {
	Save(ctx context.Context, result *model.ResultRecord) error
	GetBySessionID(ctx context.Context, sessionID string) (*model.ResultRecord, error)
}

type resultRepository struct {
	collection *mongo.Collection
}

func NewResultRepository(db *mongo.Database) ResultRepository {
	return &resultRepository{
		collection: db.Collection("results"),
	}
}

func (r *resultRepository) Save(ctx context.Context, result *model.ResultRecord) error {
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, result)
	return err
}

func (r *resultRepository) GetBySessionID(ctx context.Context, sessionID string) (*model.ResultRecord, error) {
	var result model.ResultRecord
	err := r.collection.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &result, nil
}
