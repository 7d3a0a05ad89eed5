package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"libraryapi/internal/platform/crypto"
)

const collectionName = "admins"

type MongoRepo struct {
	coll *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{coll: db.Collection(collectionName)}
}

func (r *MongoRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoRepo) GetByUsername(ctx context.Context, username string) (Admin, error) {
	var admin Admin
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Admin{}, ErrAdminNotFound
		}
		return Admin{}, err
	}
	return admin, nil
}

// EnsureAdmin inserts the bootstrap admin if no record with that username
// exists yet. An existing admin's password is never overwritten.
func (r *MongoRepo) EnsureAdmin(ctx context.Context, logger *slog.Logger, username, password string) error {
	_, err := r.GetByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrAdminNotFound) {
		return err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}

	_, err = r.coll.InsertOne(ctx, Admin{
		ID:           bson.NewObjectID(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		// Lost a race against a concurrent bootstrap; the admin exists.
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return err
	}

	logger.Info("bootstrap admin created", slog.String("username", username))
	return nil
}
