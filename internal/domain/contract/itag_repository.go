package contract

import (
	"context"
)

// ITagRepository defines the interface for tag data persistence.
type ITagRepository interface {
	// ResolveTagID returns the id of the tag with this exact name, creating
	// the tag when it does not exist yet.
	ResolveTagID(ctx context.Context, name string) (string, error)
	// LinkTagToArticle records the (article, tag) pair. Linking the same pair
	// twice leaves a single link.
	LinkTagToArticle(ctx context.Context, articleID, tagID string) error
}
