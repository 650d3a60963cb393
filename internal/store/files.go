package store

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/gommon/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/docnest/docnest/internal/model"
)

type FileCatalog interface {
	Create(ctx context.Context, file *model.FileInfo) (*model.FileInfo, error)
	List(ctx context.Context) ([]*model.FileInfo, error)
	Delete(ctx context.Context, id string) error
}

type FileStore struct {
	collection *mongo.Collection
	logger     *log.Logger
}

func NewFileStore(db *mongo.Database, logger *log.Logger) *FileStore {
	return &FileStore{collection: db.Collection("files"), logger: logger}
}

func (s *FileStore) Create(ctx context.Context, file *model.FileInfo) (*model.FileInfo, error) {
	file.ID = primitive.NewObjectID()
	if file.Date.IsZero() {
		file.Date = time.Now().UTC()
	}

	if _, err := s.collection.InsertOne(ctx, file); err != nil {
		return nil, fmt.Errorf("inserting file metadata: %w", err)
	}

	s.logger.Infof("file metadata saved: %s", file.ID.Hex())
	return file, nil
}

func (s *FileStore) List(ctx context.Context) ([]*model.FileInfo, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}
	defer cursor.Close(ctx)

	var files []*model.FileInfo
	if err := cursor.All(ctx, &files); err != nil {
		return nil, fmt.Errorf("decoding files: %w", err)
	}
	return files, nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrorFileNotFound
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("deleting file metadata: %w", err)
	}
	if result.DeletedCount == 0 {
		return model.ErrorFileNotFound
	}
	return nil
}
