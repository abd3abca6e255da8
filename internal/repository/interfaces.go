package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"devconnector/internal/models"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}

// PostRepository mutates the likes and comments arrays with single
// conditional updates, so concurrent requests never overwrite each other.
type PostRepository interface {
	Create(ctx context.Context, p *models.Post) error
	FindAll(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id string) (*models.Post, error)
	DeleteByAuthor(ctx context.Context, id string, author bson.ObjectID) error
	AddLike(ctx context.Context, id string, uid bson.ObjectID) ([]models.Like, error)
	RemoveLike(ctx context.Context, id string, uid bson.ObjectID) ([]models.Like, error)
	PushComment(ctx context.Context, id string, c models.Comment) ([]models.Comment, error)
	PullComment(ctx context.Context, id, commentID string, uid bson.ObjectID) ([]models.Comment, error)
}

// ProfileChanges lists the profile fields to overwrite. Nil pointers, a nil
// Skills slice and missing Social keys leave the stored value untouched.
type ProfileChanges struct {
	Company        *string
	Location       *string
	Website        *string
	Bio            *string
	Status         *string
	GithubUsername *string
	Skills         []string
	Social         map[string]string
}

type ProfileRepository interface {
	FindByUser(ctx context.Context, userID string) (*models.ProfileView, error)
	FindAll(ctx context.Context) ([]models.ProfileView, error)
	Upsert(ctx context.Context, userID bson.ObjectID, ch ProfileChanges) (*models.ProfileView, error)
}
