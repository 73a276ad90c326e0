package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"descentcheck/internal/model"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *model.Lead) error
	List(ctx context.Context, limit int64) ([]*model.Lead, error)
}

type leadRepository struct {
	collection *mongo.Collection
}

func NewLeadRepository(db *mongo.Database) LeadRepository {
	return &leadRepository{
		collection: db.Collection("leads"),
	}
}

func (r *leadRepository) Create(ctx context.Context, lead *model.Lead) error {
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, lead)
	return err
}

func (r *leadRepository) List(ctx context.Context, limit int64) ([]*model.Lead, error) {
	opts := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []*model.Lead
	if err = cursor.All(ctx, &leads); err != nil {
		return nil, err
	}

	return leads, nil
}
