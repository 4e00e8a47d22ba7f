// Package mongorepo stores checkout transactions, saved companies and audit
// events in MongoDB.
package mongorepo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	CollectionTransactions = "transactions"
	CollectionCompanies    = "companies"
	CollectionAuditEvents  = "audit_events"
)

var ErrEmptyDatabaseName = errors.New("mongo database name is required")

// Store bundles the client and the database every repository writes to.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, database string, timeout time.Duration) (*Store, error) {
	if strings.TrimSpace(database) == "" {
		return nil, ErrEmptyDatabaseName
	}
	opts := options.Client().ApplyURI(uri)
	if timeout > 0 {
		opts.SetConnectTimeout(timeout).SetServerSelectionTimeout(timeout)
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &Store{client: client, db: client.Database(database)}, nil
}

func (s *Store) Database() *mongo.Database {
	return s.db
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the lookup and uniqueness indexes the repositories rely on.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	specs := map[string][]mongo.IndexModel{
		CollectionTransactions: {
			{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		},
		CollectionCompanies: {
			{
				Keys:    bson.D{{Key: "owner_id", Value: 1}, {Key: "cin", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uq_companies_owner_cin"),
			},
			{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}}},
		},
		CollectionAuditEvents: {
			{Keys: bson.D{{Key: "entity_id", Value: 1}, {Key: "occurred_at", Value: -1}}},
		},
	}
	for coll, models := range specs {
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("ensure indexes on %s: %w", coll, err)
		}
	}
	return nil
}
