package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"devconnector/internal/logger"
	"devconnector/internal/models"
	"devconnector/internal/repository"
	"devconnector/internal/utils"
)

type PostService struct {
	users  repository.UserRepository
	posts  repository.PostRepository
	log    *zap.Logger
	events EventCounter
	now    func() time.Time
}

func NewPostService(users repository.UserRepository, posts repository.PostRepository, log *zap.Logger, events EventCounter) *PostService {
	return &PostService{
		users:  users,
		posts:  posts,
		log:    logger.OrNop(log),
		events: counterOrNop(events),
		now:    time.Now,
	}
}

var (
	errPostNotFound    = newErr(ErrNotFound, "Post not found")
	errCommentNotFound = newErr(ErrNotFound, "Comment does not exist")
	errNotAuthorized   = newErr(ErrForbidden, "User not authorized")
)

// mapPostErr translates repository errors for post operations.
func (s *PostService) mapPostErr(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrInvalidID):
		return errPostNotFound
	case errors.Is(err, repository.ErrCommentNotFound):
		return errCommentNotFound
	case errors.Is(err, repository.ErrNotPostAuthor), errors.Is(err, repository.ErrNotCommentAuthor):
		return errNotAuthorized
	case errors.Is(err, repository.ErrAlreadyLiked):
		return newErr(ErrConflict, "Post already liked")
	case errors.Is(err, repository.ErrNotLiked):
		return newErr(ErrConflict, "Post has not yet been liked")
	default:
		return internal(s.log, op, err)
	}
}

// requireText trims raw and rejects it when nothing is left. The text is
// otherwise stored exactly as sent.
func requireText(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", ValidationErrors{{Msg: "Text is required", Param: "text"}}
	}
	return text, nil
}

// Create writes a post with the author's current name and avatar copied in.
func (s *PostService) Create(ctx context.Context, uid, text string) (*models.Post, error) {
	text, err := requireText(text)
	if err != nil {
		return nil, err
	}
	oid, name, avatar, err := loadActor(ctx, s.users, s.log, uid)
	if err != nil {
		return nil, err
	}

	p := &models.Post{
		User:     oid,
		Name:     name,
		Avatar:   avatar,
		Text:     text,
		Likes:    []models.Like{},
		Comments: []models.Comment{},
		Date:     s.now().UTC(),
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return nil, internal(s.log, "create post", err)
	}
	s.events.Inc("post_created")
	return p, nil
}

func (s *PostService) ListAll(ctx context.Context) ([]models.Post, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, internal(s.log, "list posts", err)
	}
	return posts, nil
}

func (s *PostService) GetByID(ctx context.Context, id string) (*models.Post, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapPostErr("get post", err)
	}
	return p, nil
}

func (s *PostService) Delete(ctx context.Context, uid, id string) error {
	oid, err := actorID(uid)
	if err != nil {
		return err
	}
	if err := s.posts.DeleteByAuthor(ctx, id, oid); err != nil {
		return s.mapPostErr("delete post", err)
	}
	s.events.Inc("post_deleted")
	return nil
}

func (s *PostService) Like(ctx context.Context, uid, id string) ([]models.Like, error) {
	oid, err := actorID(uid)
	if err != nil {
		return nil, err
	}
	likes, err := s.posts.AddLike(ctx, id, oid)
	if err != nil {
		return nil, s.mapPostErr("like post", err)
	}
	s.events.Inc("post_liked")
	return likes, nil
}

func (s *PostService) Unlike(ctx context.Context, uid, id string) ([]models.Like, error) {
	oid, err := actorID(uid)
	if err != nil {
		return nil, err
	}
	likes, err := s.posts.RemoveLike(ctx, id, oid)
	if err != nil {
		return nil, s.mapPostErr("unlike post", err)
	}
	s.events.Inc("post_unliked")
	return likes, nil
}

// AddComment puts a new comment at the head of the post's comments.
func (s *PostService) AddComment(ctx context.Context, uid, id, text string) ([]models.Comment, error) {
	text, err := requireText(text)
	if err != nil {
		return nil, err
	}
	oid, name, avatar, err := loadActor(ctx, s.users, s.log, uid)
	if err != nil {
		return nil, err
	}

	c := models.Comment{
		User:   oid,
		Name:   name,
		Avatar: avatar,
		Text:   text,
		Date:   s.now().UTC(),
	}
	comments, err := s.posts.PushComment(ctx, id, c)
	if err != nil {
		return nil, s.mapPostErr("add comment", err)
	}
	s.events.Inc("comment_added")
	return comments, nil
}

func (s *PostService) DeleteComment(ctx context.Context, uid, id, commentID string) ([]models.Comment, error) {
	oid, err := actorID(uid)
	if err != nil {
		return nil, err
	}
	comments, err := s.posts.PullComment(ctx, id, commentID, oid)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			if _, perr := utils.Oid(id); perr != nil {
				return nil, errPostNotFound
			}
			return nil, errCommentNotFound
		}
		return nil, s.mapPostErr("delete comment", err)
	}
	s.events.Inc("comment_deleted")
	return comments, nil
}
