package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"devconnector/internal/utils"
)

var (
	ErrNotFound         = errors.New("document not found")
	ErrInvalidID        = errors.New("malformed object id")
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrNotPostAuthor    = errors.New("requester is not the post author")
	ErrAlreadyLiked     = errors.New("post already liked")
	ErrNotLiked         = errors.New("post has not yet been liked")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrNotCommentAuthor = errors.New("requester is not the comment author")
)

// parseID turns a hex id into an ObjectID, reporting ErrInvalidID rather
// than ErrNotFound so callers can tell the two apart.
func parseID(hex string) (bson.ObjectID, error) {
	oid, err := utils.Oid(hex)
	if err != nil {
		return bson.NilObjectID, ErrInvalidID
	}
	return oid, nil
}

func isDuplicateKey(err error) bool {
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 && we.WriteErrors[0].Code == 11000 {
		return true
	}
	return mongo.IsDuplicateKeyError(err)
}
