package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"devconnector/internal/models"
)

type MongoPostRepo struct {
	col *mongo.Collection
}

func NewMongoPostRepo(db *mongo.Database) *MongoPostRepo {
	return &MongoPostRepo{col: db.Collection("posts")}
}

func (r *MongoPostRepo) Create(ctx context.Context, p *models.Post) error {
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}
	normalizePost(p)
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *MongoPostRepo) FindAll(ctx context.Context) ([]models.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	posts := []models.Post{}
	if err := cur.All(ctx, &posts); err != nil {
		return nil, err
	}
	for i := range posts {
		normalizePost(&posts[i])
	}
	return posts, nil
}

func (r *MongoPostRepo) FindByID(ctx context.Context, id string) (*models.Post, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return r.findByOID(ctx, oid)
}

func (r *MongoPostRepo) findByOID(ctx context.Context, oid bson.ObjectID) (*models.Post, error) {
	var p models.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	normalizePost(&p)
	return &p, nil
}

func (r *MongoPostRepo) exists(ctx context.Context, oid bson.ObjectID) (bool, error) {
	n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	return n > 0, err
}

// DeleteByAuthor removes the post only when author wrote it.
func (r *MongoPostRepo) DeleteByAuthor(ctx context.Context, id string, author bson.ObjectID) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid, "user": author})
	if err != nil {
		return err
	}
	if res.DeletedCount == 1 {
		return nil
	}
	ok, err := r.exists(ctx, oid)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return ErrNotPostAuthor
}

// AddLike appends uid to likes unless it is already there.
func (r *MongoPostRepo) AddLike(ctx context.Context, id string, uid bson.ObjectID) ([]models.Like, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	p, err := r.updateArrays(ctx,
		bson.M{"_id": oid, "likes.user": bson.M{"$ne": uid}},
		bson.M{"$push": bson.M{"likes": models.Like{User: uid}}},
	)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, r.missingOr(ctx, oid, ErrAlreadyLiked)
	}
	if err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// RemoveLike drops uid's like entry if there is one.
func (r *MongoPostRepo) RemoveLike(ctx context.Context, id string, uid bson.ObjectID) ([]models.Like, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	p, err := r.updateArrays(ctx,
		bson.M{"_id": oid, "likes.user": uid},
		bson.M{"$pull": bson.M{"likes": bson.M{"user": uid}}},
	)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, r.missingOr(ctx, oid, ErrNotLiked)
	}
	if err != nil {
		return nil, err
	}
	return p.Likes, nil
}

// PushComment puts c at the head of the comments array.
func (r *MongoPostRepo) PushComment(ctx context.Context, id string, c models.Comment) ([]models.Comment, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	p, err := r.updateArrays(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"comments": bson.M{"$each": bson.A{c}, "$position": 0}}},
	)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p.Comments, nil
}

// PullComment removes one comment, and only when uid wrote it.
func (r *MongoPostRepo) PullComment(ctx context.Context, id, commentID string, uid bson.ObjectID) ([]models.Comment, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	cid, err := parseID(commentID)
	if err != nil {
		return nil, err
	}
	p, err := r.updateArrays(ctx,
		bson.M{"_id": oid, "comments": bson.M{"$elemMatch": bson.M{"_id": cid, "user": uid}}},
		bson.M{"$pull": bson.M{"comments": bson.M{"_id": cid}}},
	)
	if err == nil {
		return p.Comments, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	cur, err := r.findByOID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if _, ok := cur.Comment(cid); !ok {
		return nil, ErrCommentNotFound
	}
	return nil, ErrNotCommentAuthor
}

func (r *MongoPostRepo) updateArrays(ctx context.Context, filter, update bson.M) (*models.Post, error) {
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"likes": 1, "comments": 1})

	var p models.Post
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&p); err != nil {
		return nil, err
	}
	normalizePost(&p)
	return &p, nil
}

// missingOr reports ErrNotFound when the post is gone, otherwise stateErr.
func (r *MongoPostRepo) missingOr(ctx context.Context, oid bson.ObjectID, stateErr error) error {
	ok, err := r.exists(ctx, oid)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return stateErr
}

func normalizePost(p *models.Post) {
	if p.Likes == nil {
		p.Likes = []models.Like{}
	}
	if p.Comments == nil {
		p.Comments = []models.Comment{}
	}
}
