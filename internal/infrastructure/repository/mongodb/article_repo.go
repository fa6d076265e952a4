package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/apperror"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/contract"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
	"github.com/mikiasgoitom/ScribeSpace/internal/infrastructure/database"
)

// ArticleRepository represents the MongoDB implementation of the IArticleRepository interface.
type ArticleRepository struct {
	collection  *mongo.Collection
	tags        *mongo.Collection
	articleTags *mongo.Collection
}

var _ contract.IArticleRepository = (*ArticleRepository)(nil)

// NewArticleRepository creates and returns a new ArticleRepository instance.
func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{
		collection:  db.Collection(database.ArticlesCollection),
		tags:        db.Collection(database.TagsCollection),
		articleTags: db.Collection(database.ArticleTagsCollection),
	}
}

// tagJoinStages attaches the article's tag names as tag_names. Links whose
// tag is missing or unnamed contribute nothing.
func tagJoinStages() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         database.ArticleTagsCollection,
			"localField":   "_id",
			"foreignField": "article_id",
			"as":           "tag_links",
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         database.TagsCollection,
			"localField":   "tag_links.tag_id",
			"foreignField": "_id",
			"as":           "tag_docs",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"tag_names": bson.M{"$filter": bson.M{
				"input": "$tag_docs.name",
				"as":    "name",
				"cond":  bson.M{"$gt": bson.A{"$$name", ""}},
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{"tag_links": 0, "tag_docs": 0}}},
	}
}

var newestFirst = bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}

func (r *ArticleRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline) ([]*entity.Article, error) {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	articles := []*entity.Article{}
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, err
	}
	for _, a := range articles {
		if a.Tags == nil {
			a.Tags = []string{}
		}
	}
	return articles, nil
}

// CreateArticle inserts the article row. Tags are stored as links by the
// tag repository, never on the article document.
func (r *ArticleRepository) CreateArticle(ctx context.Context, article *entity.Article) (err error) {
	ctx, span := startSpan(ctx, "ArticleRepository.CreateArticle", database.ArticlesCollection)
	defer func() { endSpan(span, err) }()

	doc := *article
	doc.Tags = nil
	if _, err = r.collection.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("error creating article: %w", err)
	}
	return nil
}

// GetArticles returns every article, newest first.
func (r *ArticleRepository) GetArticles(ctx context.Context) (articles []*entity.Article, err error) {
	ctx, span := startSpan(ctx, "ArticleRepository.GetArticles", database.ArticlesCollection)
	defer func() { endSpan(span, err) }()

	pipeline := append(mongo.Pipeline{newestFirst}, tagJoinStages()...)
	articles, err = r.aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error fetching articles: %w", err)
	}
	return articles, nil
}

// GetArticleByID retrieves a single article by its id.
func (r *ArticleRepository) GetArticleByID(ctx context.Context, articleID string) (article *entity.Article, err error) {
	ctx, span := startSpan(ctx, "ArticleRepository.GetArticleByID", database.ArticlesCollection)
	defer func() { endSpan(span, err) }()

	article, err = r.findOneWithTags(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("error fetching article %s: %w", articleID, err)
	}
	return article, nil
}

func (r *ArticleRepository) findOneWithTags(ctx context.Context, articleID string) (*entity.Article, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": articleID}}},
		bson.D{{Key: "$limit", Value: 1}},
	}
	articles, err := r.aggregate(ctx, append(pipeline, tagJoinStages()...))
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, apperror.ErrNotFound
	}
	return articles[0], nil
}

// GetArticlesByUserID returns the articles owned by userID, newest first.
func (r *ArticleRepository) GetArticlesByUserID(ctx context.Context, userID string) (articles []*entity.Article, err error) {
	ctx, span := startSpan(ctx, "ArticleRepository.GetArticlesByUserID", database.ArticlesCollection)
	defer func() { endSpan(span, err) }()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"user_id": userID}}},
		newestFirst,
	}
	articles, err = r.aggregate(ctx, append(pipeline, tagJoinStages()...))
	if err != nil {
		return nil, fmt.Errorf("error fetching articles by user ID: %w", err)
	}
	return articles, nil
}

// GetArticlesByTagNames returns up to limit articles sharing at least one tag
// name with tagNames, skipping excludeArticleID. An empty exclusion id is
// rejected before the store is queried. Tag names resolve to ids, ids to
// linked article ids, and only those articles are joined.
func (r *ArticleRepository) GetArticlesByTagNames(ctx context.Context, tagNames []string, excludeArticleID string, limit int) (articles []*entity.Article, err error) {
	if excludeArticleID == "" {
		return nil, fmt.Errorf("excludeArticleId is required: %w", apperror.ErrValidation)
	}
	if limit <= 0 || limit > entity.MaxRecommendations {
		limit = entity.MaxRecommendations
	}
	if len(tagNames) == 0 {
		return []*entity.Article{}, nil
	}

	ctx, span := startSpan(ctx, "ArticleRepository.GetArticlesByTagNames", database.ArticlesCollection)
	defer func() { endSpan(span, err) }()

	tagIDs, err := r.tags.Distinct(ctx, "_id", bson.M{"name": bson.M{"$in": tagNames}})
	if err != nil {
		return nil, fmt.Errorf("error resolving tag names: %w", err)
	}
	if len(tagIDs) == 0 {
		return []*entity.Article{}, nil
	}

	articleIDs, err := r.articleTags.Distinct(ctx, "article_id", bson.M{
		"tag_id":     bson.M{"$in": tagIDs},
		"article_id": bson.M{"$ne": excludeArticleID},
	})
	if err != nil {
		return nil, fmt.Errorf("error fetching tagged article ids: %w", err)
	}
	if len(articleIDs) == 0 {
		return []*entity.Article{}, nil
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"_id": bson.M{"$in": articleIDs, "$ne": excludeArticleID}}}},
		newestFirst,
		bson.D{{Key: "$limit", Value: int64(limit)}},
	}
	articles, err = r.aggregate(ctx, append(pipeline, tagJoinStages()...))
	if err != nil {
		return nil, fmt.Errorf("error fetching articles by tags: %w", err)
	}
	// the store filters too; this keeps the cap and exclusion exact
	out := articles[:0]
	for _, a := range articles {
		if a.ID == excludeArticleID {
			continue
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// UpdateImageURL sets the article's image URL and returns the updated article.
func (r *ArticleRepository) UpdateImageURL(ctx context.Context, articleID, imageURL string) (article *entity.Article, err error) {
	ctx, span := startSpan(ctx, "ArticleRepository.UpdateImageURL", database.ArticlesCollection)
	defer func() { endSpan(span, err) }()

	update := bson.M{"$set": bson.M{"image_url": imageURL, "updated_at": time.Now().UTC()}}
	article, err = r.findOneAndUpdate(ctx, articleID, update)
	if err != nil {
		return nil, fmt.Errorf("error updating article image URL: %w", err)
	}
	return article, nil
}

// IncrementViews adds one to the view count with a single $inc, so
// concurrent calls never lose an increment.
func (r *ArticleRepository) IncrementViews(ctx context.Context, articleID string) (article *entity.Article, err error) {
	ctx, span := startSpan(ctx, "ArticleRepository.IncrementViews", database.ArticlesCollection)
	defer func() { endSpan(span, err) }()

	article, err = r.findOneAndUpdate(ctx, articleID, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return nil, fmt.Errorf("error updating article views: %w", err)
	}
	return article, nil
}

func (r *ArticleRepository) findOneAndUpdate(ctx context.Context, articleID string, update bson.M) (*entity.Article, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var article entity.Article
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": articleID}, update, opts).Decode(&article)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}

	withTags, err := r.findOneWithTags(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("article %s updated but reading its tags failed: %w", articleID, err)
	}
	return withTags, nil
}
