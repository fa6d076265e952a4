package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/contract"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
	"github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/database"
)

// TagRepository represents the MongoDB implementation of the ITagRepository interface.
type TagRepository struct {
	tags        *mongo.Collection
	articleTags *mongo.Collection
	uuidGen     contract.IUUIDGenerator
}

var _ contract.ITagRepository = (*TagRepository)(nil)

// NewTagRepository creates and returns a new TagRepository instance.
func NewTagRepository(db *mongo.Database, uuidGen contract.IUUIDGenerator) *TagRepository {
	return &TagRepository{
		tags:        db.Collection(database.TagsCollection),
		articleTags: db.Collection(database.ArticleTagsCollection),
		uuidGen:     uuidGen,
	}
}

// ResolveTagID upserts the tag by name and returns its id. Two callers
// racing on an unseen name both end up with the single stored row: the
// loser's upsert fails on the unique name index and re-reads the winner.
func (r *TagRepository) ResolveTagID(ctx context.Context, name string) (id string, err error) {
	ctx, span := startSpan(ctx, "TagRepository.ResolveTagID", database.TagsCollection)
	defer func() { endSpan(span, err) }()

	filter := bson.M{"name": name}
	update := bson.M{"$setOnInsert": bson.M{
		"_id":        r.uuidGen.NewUUID(),
		"created_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var tag entity.Tag
	err = r.tags.FindOneAndUpdate(ctx, filter, update, opts).Decode(&tag)
	if mongo.IsDuplicateKeyError(err) {
		err = r.tags.FindOne(ctx, filter).Decode(&tag)
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve tag %q: %w", name, err)
	}
	return tag.ID, nil
}

// LinkTagToArticle upserts the (article, tag) pair so repeated links collapse
// into one row.
func (r *TagRepository) LinkTagToArticle(ctx context.Context, articleID, tagID string) (err error) {
	ctx, span := startSpan(ctx, "TagRepository.LinkTagToArticle", database.ArticleTagsCollection)
	defer func() { endSpan(span, err) }()

	filter := bson.M{"article_id": articleID, "tag_id": tagID}
	update := bson.M{"$setOnInsert": bson.M{"created_at": time.Now().UTC()}}

	_, err = r.articleTags.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// a concurrent upsert inserted the same pair first
		err = nil
	}
	if err != nil {
		return fmt.Errorf("failed to link tag %s to article %s: %w", tagID, articleID, err)
	}
	return nil
}
