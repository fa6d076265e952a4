package mongodb

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

type seqUUID struct{ n int }

func (g *seqUUID) NewUUID() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

var fixedTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func articleDoc(id string, views int, tagNames ...string) bson.D {
	names := bson.A{}
	for _, n := range tagNames {
		names = append(names, n)
	}
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: "Title " + id},
		{Key: "content", Value: `{"blocks":[]}`},
		{Key: "user_id", Value: "u-1"},
		{Key: "created_at", Value: fixedTime},
		{Key: "updated_at", Value: fixedTime},
		{Key: "image_url", Value: nil},
		{Key: "views", Value: views},
		{Key: "tag_names", Value: names},
	}
}
