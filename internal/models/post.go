package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Like struct {
	User bson.ObjectID `bson:"user" json:"user"`
}

type Comment struct {
	ID     bson.ObjectID `bson:"_id" json:"_id"`
	User   bson.ObjectID `bson:"user" json:"user"`
	Name   string        `bson:"name" json:"name"`
	Avatar string        `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Text   string        `bson:"text" json:"text"`
	Date   time.Time     `bson:"date" json:"date"`
}

// Post stores the author's name and avatar as they were when it was written.
// They are not refreshed when the user changes them later.
type Post struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	User     bson.ObjectID `bson:"user" json:"user"`
	Name     string        `bson:"name" json:"name"`
	Avatar   string        `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Text     string        `bson:"text" json:"text"`
	Likes    []Like        `bson:"likes" json:"likes"`
	Comments []Comment     `bson:"comments" json:"comments"`
	Date     time.Time     `bson:"date" json:"date"`
}

func (p *Post) Comment(id bson.ObjectID) (Comment, bool) {
	for _, c := range p.Comments {
		if c.ID == id {
			return c, true
		}
	}
	return Comment{}, false
}
