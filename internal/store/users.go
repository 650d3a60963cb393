package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/labstack/gommon/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/docnest/docnest/internal/model"
)

// UserDirectory is the contract the account workflows need from user
// persistence. UpdateFields takes a flat field map so callers stay free of
// driver types.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	Create(ctx context.Context, user *model.User) (*model.User, error)
	UpdateFields(ctx context.Context, email string, fields map[string]any) (*model.User, error)
}

type UserStore struct {
	collection *mongo.Collection
	logger     *log.Logger
}

func NewUserStore(ctx context.Context, db *mongo.Database, logger *log.Logger) (*UserStore, error) {
	collection := db.Collection("users")

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		return nil, fmt.Errorf("creating unique email index: %w", err)
	}

	return &UserStore{collection: collection, logger: logger}, nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrorUserNotFound
		}
		return nil, fmt.Errorf("fetching user by email: %w", err)
	}
	return user, nil
}

func (s *UserStore) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}
	err := s.collection.FindOne(ctx, bson.M{"username": username}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrorUserNotFound
		}
		return nil, fmt.Errorf("fetching user by username: %w", err)
	}
	return user, nil
}

func (s *UserStore) FindByID(ctx context.Context, id string) (*model.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, model.ErrorUserNotFound
	}

	user := &model.User{}
	err = s.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrorUserNotFound
		}
		return nil, fmt.Errorf("fetching user by id: %w", err)
	}
	return user, nil
}

func (s *UserStore) Create(ctx context.Context, user *model.User) (*model.User, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt

	if _, err := s.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, model.ErrorDuplicateEmail
		}
		return nil, fmt.Errorf("inserting user: %w", err)
	}

	s.logger.Infof("user created: %s", user.ID.Hex())
	return user, nil
}

func (s *UserStore) UpdateFields(ctx context.Context, email string, fields map[string]any) (*model.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}

	result := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"email": email},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, model.ErrorUserNotFound
		}
		return nil, fmt.Errorf("updating user: %w", result.Err())
	}

	user := &model.User{}
	if err := result.Decode(user); err != nil {
		return nil, fmt.Errorf("decoding updated user: %w", err)
	}
	return user, nil
}
