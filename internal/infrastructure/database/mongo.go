package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names shared by repositories and index setup.
const (
	UsersCollection       = "users"
	ArticlesCollection    = "articles"
	TagsCollection        = "tags"
	ArticleTagsCollection = "article_tags"
)

// MongoDBClient wraps the driver client together with the timeout used for
// connection management calls.
type MongoDBClient struct {
	Client  *mongo.Client
	timeout time.Duration
}

// NewMongoDBClient connects to MongoDB and verifies the connection with a ping.
func NewMongoDBClient(uri string, timeout time.Duration) (*MongoDBClient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	return &MongoDBClient{Client: client, timeout: timeout}, nil
}

// Ping checks that the primary is reachable.
func (m *MongoDBClient) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

// Disconnect closes the connection pool.
func (m *MongoDBClient) Disconnect() error {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()
	return m.Client.Disconnect(ctx)
}

// IndexModels lists the indexes every collection needs. The unique indexes
// on tags.name and article_tags(article_id, tag_id) back the atomic tag
// upsert and the idempotent tag linking.
func IndexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		TagsCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_tag_name")},
		},
		ArticleTagsCollection: {
			{Keys: bson.D{{Key: "article_id", Value: 1}, {Key: "tag_id", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_article_tag")},
			{Keys: bson.D{{Key: "tag_id", Value: 1}}, Options: options.Index().SetName("idx_tag_id")},
		},
		ArticlesCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetName("idx_user_id")},
		},
		UsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
		},
	}
}

// EnsureIndexes creates the indexes from IndexModels. Creating an index that
// already exists with the same definition is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for coll, models := range IndexModels() {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
