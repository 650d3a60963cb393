// Package store is the MongoDB persistence layer. Uniqueness of user emails
// is enforced here with a unique index so concurrent signups for the same
// address are resolved by the database, not by the callers' existence checks.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/gommon/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database

	Users      *UserStore
	Files      *FileStore
	Categories *CategoryStore
}

func Connect(ctx context.Context, url string, dbName string, logger *log.Logger) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}

	db := client.Database(dbName)

	users, err := NewUserStore(ctx, db, logger)
	if err != nil {
		return nil, fmt.Errorf("preparing users collection: %w", err)
	}

	return &Store{
		client:     client,
		db:         db,
		Users:      users,
		Files:      NewFileStore(db, logger),
		Categories: NewCategoryStore(db, logger),
	}, nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) DB() *mongo.Database {
	return s.db
}
