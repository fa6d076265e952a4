package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPublicURL(t *testing.T) {
	s := &GridFSStorage{baseURL: "https://api.example.com"}

	assert.Equal(t, "https://api.example.com/media/a-1/u_photo.png", s.PublicURL("a-1/u_photo.png"))
	assert.Equal(t, "https://api.example.com/media/a-1/u_my%20photo%23.png", s.PublicURL("a-1/u_my photo#.png"))
}

func TestValidatePath(t *testing.T) {
	valid := []string{"public/1714564800000.png", "a-1/uuid_file.jpg"}
	for _, p := range valid {
		assert.NoError(t, ValidatePath(p), p)
	}

	invalid := []string{"", "/abs", "a/../b", "a//b", "./x", "a/"}
	for _, p := range invalid {
		assert.Error(t, ValidatePath(p), p)
	}
}

func TestContentTypeOf(t *testing.T) {
	meta, err := bson.Marshal(bson.M{"contentType": "image/png"})
	assert.NoError(t, err)

	assert.Equal(t, "image/png", contentTypeOf(meta))
	assert.Equal(t, "application/octet-stream", contentTypeOf(nil))
}
