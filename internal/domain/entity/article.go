package entity

import "time"

// Article is a published piece of writing. Tags is derived from the
// article_tags join when reading and is never stored on the article itself.
type Article struct {
	ID        string    `bson:"_id" json:"article_id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	UserID    string    `bson:"user_id" json:"user_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	ImageURL  *string   `bson:"image_url" json:"image_url"`
	Views     int       `bson:"views" json:"views"`
	Tags      []string  `bson:"tag_names,omitempty" json:"tags"`
}

// ArticleSummary echoes what was written when an article is published.
type ArticleSummary struct {
	ArticleID string    `json:"article_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}

// MaxRecommendations caps the number of articles returned by a tag
// recommendation query.
const MaxRecommendations = 6
