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

type MongoUserRepository struct {
	collection *mongo.Collection
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) (err error) {
	ctx, span := startSpan(ctx, "UserRepository.CreateUser", database.UsersCollection)
	defer func() { endSpan(span, err) }()

	if _, err = r.collection.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (user *entity.User, err error) {
	ctx, span := startSpan(ctx, "UserRepository.GetUserByID", database.UsersCollection)
	defer func() { endSpan(span, err) }()

	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (user *entity.User, err error) {
	ctx, span := startSpan(ctx, "UserRepository.GetUserByEmail", database.UsersCollection)
	defer func() { endSpan(span, err) }()

	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoUserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

// UpdateProfile sets the username and the picture, each only when given, and
// returns the updated user.
func (r *MongoUserRepository) UpdateProfile(ctx context.Context, id string, update entity.ProfileUpdate) (user *entity.User, err error) {
	ctx, span := startSpan(ctx, "UserRepository.UpdateProfile", database.UsersCollection)
	defer func() { endSpan(span, err) }()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Username != "" {
		set["username"] = update.Username
	}
	if update.ProfilePicture != nil {
		set["profile_picture"] = *update.ProfilePicture
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated entity.User
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}
	return &updated, nil
}
