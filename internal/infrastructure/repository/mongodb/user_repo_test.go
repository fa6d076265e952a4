package mongodb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/apperror"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
)

func userDoc(id, email string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "username", Value: "ada"},
		{Key: "email", Value: email},
		{Key: "password", Value: "$2a$10$hash"},
		{Key: "profile_picture", Value: nil},
		{Key: "created_at", Value: fixedTime},
		{Key: "updated_at", Value: fixedTime},
	}
}

func TestMongoUserRepository_CreateUser(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.CreateUser(context.Background(), &entity.User{ID: "u-1", Email: "ada@example.com"})
		assert.NoError(mt, err)
	})

	mt.Run("duplicate email", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{Index: 0, Code: 11000, Message: "duplicate key"}))

		err := repo.CreateUser(context.Background(), &entity.User{ID: "u-1", Email: "ada@example.com"})
		assert.ErrorContains(mt, err, "failed to create user")
	})
}

func TestMongoUserRepository_Lookups(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("by id", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc("u-1", "ada@example.com")))

		user, err := repo.GetUserByID(context.Background(), "u-1")
		require.NoError(mt, err)
		assert.Equal(mt, "u-1", user.ID)
		assert.Equal(mt, "$2a$10$hash", user.PasswordHash)
	})

	mt.Run("by email", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, userDoc("u-1", "ada@example.com")))

		user, err := repo.GetUserByEmail(context.Background(), "ada@example.com")
		require.NoError(mt, err)
		assert.Equal(mt, "ada@example.com", user.Email)
	})

	mt.Run("missing", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.GetUserByEmail(context.Background(), "ghost@example.com")
		assert.True(mt, errors.Is(err, apperror.ErrNotFound))
	})
}

func TestMongoUserRepository_UpdateProfile(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("without picture leaves it untouched", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: userDoc("u-1", "ada@example.com")}))

		user, err := repo.UpdateProfile(context.Background(), "u-1", entity.ProfileUpdate{Username: "ada"})
		require.NoError(mt, err)
		assert.Equal(mt, "ada", user.Username)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		set := evt.Command.Lookup("update", "$set").Document()
		_, err = set.LookupErr("profile_picture")
		assert.Error(mt, err)
		assert.Equal(mt, "ada", set.Lookup("username").StringValue())
	})

	mt.Run("with picture", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		doc := userDoc("u-1", "ada@example.com")
		doc[4] = bson.E{Key: "profile_picture", Value: "https://cdn/public/1.png"}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: doc}))

		pic := "https://cdn/public/1.png"
		user, err := repo.UpdateProfile(context.Background(), "u-1", entity.ProfileUpdate{Username: "ada", ProfilePicture: &pic})
		require.NoError(mt, err)
		require.NotNil(mt, user.ProfilePicture)
		assert.Equal(mt, pic, *user.ProfilePicture)

		evt := mt.GetStartedEvent()
		require.NotNil(mt, evt)
		assert.Equal(mt, pic, evt.Command.Lookup("update", "$set", "profile_picture").StringValue())
	})

	mt.Run("missing user", func(mt *mtest.T) {
		repo := NewMongoUserRepository(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		_, err := repo.UpdateProfile(context.Background(), "nope", entity.ProfileUpdate{Username: "x"})
		assert.True(mt, errors.Is(err, apperror.ErrNotFound))
	})
}
