package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Social struct {
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
}

type Profile struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	User           bson.ObjectID `bson:"user" json:"-"`
	Company        string        `bson:"company,omitempty" json:"company,omitempty"`
	Location       string        `bson:"location,omitempty" json:"location,omitempty"`
	Website        string        `bson:"website,omitempty" json:"website,omitempty"`
	Bio            string        `bson:"bio,omitempty" json:"bio,omitempty"`
	Status         string        `bson:"status" json:"status"`
	GithubUsername string        `bson:"githubusername,omitempty" json:"githubusername,omitempty"`
	Skills         []string      `bson:"skills" json:"skills"`
	Social         *Social       `bson:"social,omitempty" json:"social,omitempty"`
	Date           time.Time     `bson:"date" json:"date"`
}

// ProfileView is a profile with its owner's public fields joined in. Owner
// is nil when the user record no longer exists.
type ProfileView struct {
	Profile `bson:",inline"`
	Owner   *PublicUser `bson:"owner,omitempty" json:"user"`
}
