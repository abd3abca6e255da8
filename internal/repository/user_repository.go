package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devconnector/internal/models"
)

type MongoUserRepo struct {
	col *mongo.Collection
}

func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{col: db.Collection("users")}
}

func (r *MongoUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *MongoUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, bson.M{"email": strings.ToLower(email)})
}

func (r *MongoUserRepo) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, filter).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *MongoUserRepo) Create(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	u.Email = strings.ToLower(u.Email)
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}
