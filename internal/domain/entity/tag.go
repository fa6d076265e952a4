package entity

import "time"

// Tag is a named label shared by every article that references it.
// Names are matched exactly and case-sensitively.
type Tag struct {
	ID        string    `bson:"_id" json:"tag_id"`
	Name      string    `bson:"name" json:"name"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ArticleTag links one article to one tag.
type ArticleTag struct {
	ArticleID string    `bson:"article_id" json:"article_id"`
	TagID     string    `bson:"tag_id" json:"tag_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
