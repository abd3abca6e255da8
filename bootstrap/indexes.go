package bootstrap

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type CollectionIndex struct {
	Collection string
	Model      mongo.IndexModel
}

// Indexes lists the indexes the API relies on. The unique ones back the
// one-account-per-email and one-profile-per-user rules.
func Indexes() []CollectionIndex {
	return []CollectionIndex{
		{"users", mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		}},
		{"profiles", mongo.IndexModel{
			Keys:    bson.D{{Key: "user", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_user"),
		}},
		{"posts", mongo.IndexModel{
			Keys:    bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("date_desc"),
		}},
	}
}

func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for _, ix := range Indexes() {
		if _, err := db.Collection(ix.Collection).Indexes().CreateOne(ctx, ix.Model); err != nil {
			return fmt.Errorf("index on %s: %w", ix.Collection, err)
		}
	}
	return nil
}
