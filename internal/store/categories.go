package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/labstack/gommon/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/docnest/docnest/internal/model"
)

type CategoryCatalog interface {
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	List(ctx context.Context) ([]*model.Category, error)
	Edit(ctx context.Context, params *model.EditCategoryParams) (*model.Category, error)
}

type CategoryStore struct {
	collection *mongo.Collection
	logger     *log.Logger
}

func NewCategoryStore(db *mongo.Database, logger *log.Logger) *CategoryStore {
	return &CategoryStore{collection: db.Collection("categories"), logger: logger}
}

func (s *CategoryStore) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	category.ID = primitive.NewObjectID()

	if _, err := s.collection.InsertOne(ctx, category); err != nil {
		return nil, fmt.Errorf("inserting category: %w", err)
	}

	s.logger.Infof("category created: %s", category.ID.Hex())
	return category, nil
}

// List returns all categories, most recently trained first.
func (s *CategoryStore) List(ctx context.Context) ([]*model.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "trainDate", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []*model.Category
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decoding categories: %w", err)
	}
	return categories, nil
}

func (s *CategoryStore) Edit(ctx context.Context, params *model.EditCategoryParams) (*model.Category, error) {
	objectID, err := primitive.ObjectIDFromHex(params.ID)
	if err != nil {
		return nil, model.ErrorCategoryNotFound
	}

	result := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{
			"name":      params.Name,
			"sample":    params.Files,
			"trainDate": params.Updated,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, model.ErrorCategoryNotFound
		}
		return nil, fmt.Errorf("editing category: %w", result.Err())
	}

	category := &model.Category{}
	if err := result.Decode(category); err != nil {
		return nil, fmt.Errorf("decoding edited category: %w", err)
	}
	return category, nil
}
