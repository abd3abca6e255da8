package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	Avatar       string        `bson:"avatar,omitempty" json:"avatar,omitempty"`
	PasswordHash string        `bson:"password_hash,omitempty" json:"-"`
	Date         time.Time     `bson:"date" json:"date"`
}

// PublicUser is the part of a user that anyone may see next to a profile.
type PublicUser struct {
	ID     bson.ObjectID `bson:"_id" json:"_id"`
	Name   string        `bson:"name" json:"name"`
	Avatar string        `bson:"avatar,omitempty" json:"avatar,omitempty"`
}
