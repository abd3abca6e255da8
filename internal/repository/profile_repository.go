package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"devconnector/internal/models"
)

var socialKeys = []string{"youtube", "twitter", "facebook", "instagram", "linkedin"}

type MongoProfileRepo struct {
	col *mongo.Collection
}

func NewMongoProfileRepo(db *mongo.Database) *MongoProfileRepo {
	return &MongoProfileRepo{col: db.Collection("profiles")}
}

// withOwner joins the owner's public fields from users.
func withOwner(match bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user",
			"foreignField": "_id",
			"as":           "owner",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$owner",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"owner.email":         0,
			"owner.password_hash": 0,
			"owner.date":          0,
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}}}},
	}
}

func (r *MongoProfileRepo) aggregate(ctx context.Context, match bson.M) ([]models.ProfileView, error) {
	cur, err := r.col.Aggregate(ctx, withOwner(match))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.ProfileView{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Skills == nil {
			out[i].Skills = []string{}
		}
	}
	return out, nil
}

func (r *MongoProfileRepo) FindByUser(ctx context.Context, userID string) (*models.ProfileView, error) {
	uid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	views, err := r.aggregate(ctx, bson.M{"user": uid})
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrNotFound
	}
	return &views[0], nil
}

func (r *MongoProfileRepo) FindAll(ctx context.Context) ([]models.ProfileView, error) {
	return r.aggregate(ctx, bson.M{})
}

// profileUpdate builds the upsert document for ch. Social links are set one
// key at a time so unlisted ones are kept.
func profileUpdate(ch ProfileChanges, now time.Time) bson.M {
	set := bson.M{}
	setIf := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	setIf("company", ch.Company)
	setIf("location", ch.Location)
	setIf("website", ch.Website)
	setIf("bio", ch.Bio)
	setIf("status", ch.Status)
	setIf("githubusername", ch.GithubUsername)
	if ch.Skills != nil {
		set["skills"] = ch.Skills
	}
	for _, k := range socialKeys {
		if v, ok := ch.Social[k]; ok {
			set["social."+k] = v
		}
	}

	update := bson.M{"$setOnInsert": bson.M{"date": now}}
	if len(set) > 0 {
		update["$set"] = set
	}
	return update
}

// Upsert overwrites the listed fields, creating the profile on first use.
func (r *MongoProfileRepo) Upsert(ctx context.Context, userID bson.ObjectID, ch ProfileChanges) (*models.ProfileView, error) {
	update := profileUpdate(ch, time.Now().UTC())
	_, err := r.col.UpdateOne(ctx, bson.M{"user": userID}, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	return r.FindByUser(ctx, userID.Hex())
}
