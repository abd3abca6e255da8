package services

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"errors"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"devconnector/dto"
	"devconnector/internal/logger"
	"devconnector/internal/models"
	"devconnector/internal/repository"
)

const minPasswordLen = 6

// TokenIssuer signs a credential for a user id.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

type AuthService struct {
	users  repository.UserRepository
	tokens TokenIssuer
	log    *zap.Logger
	events EventCounter
	cost   int
}

func NewAuthService(users repository.UserRepository, tokens TokenIssuer, log *zap.Logger, events EventCounter) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		log:    logger.OrNop(log),
		events: counterOrNop(events),
		cost:   bcrypt.DefaultCost,
	}
}

var errBadCredentials = newErr(ErrUnauthorized, "Invalid Credentials")

// GravatarURL is the avatar a new account starts with.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return "https://www.gravatar.com/avatar/" + hex.EncodeToString(sum[:]) + "?s=200&r=pg&d=mm"
}

func validEmail(s string) bool {
	a, err := mail.ParseAddress(s)
	return err == nil && a.Address == s
}

// Register creates an account and returns a token for it.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterReq) (string, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var verr ValidationErrors
	if name == "" {
		verr.add("name", "Name is required")
	}
	if !validEmail(email) {
		verr.add("email", "Please include a valid email")
	}
	if len(req.Password) < minPasswordLen {
		verr.add("password", "Please enter a password with 6 or more characters")
	}
	if err := verr.orNil(); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return "", internal(s.log, "hash password", err)
	}
	u := &models.User{
		Name:         name,
		Email:        email,
		Avatar:       GravatarURL(email),
		PasswordHash: string(hash),
		Date:         time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return "", ValidationErrors{{Msg: "User already exists", Param: "email"}}
		}
		return "", internal(s.log, "create user", err)
	}
	s.events.Inc("user_registered")
	return s.issue(u.ID.Hex())
}

// Login checks the password and returns a fresh token.
func (s *AuthService) Login(ctx context.Context, req dto.LoginReq) (string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var verr ValidationErrors
	if !validEmail(email) {
		verr.add("email", "Please include a valid email")
	}
	if req.Password == "" {
		verr.add("password", "Password is required")
	}
	if err := verr.orNil(); err != nil {
		return "", err
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", errBadCredentials
		}
		return "", internal(s.log, "find user", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return "", errBadCredentials
	}
	return s.issue(u.ID.Hex())
}

func (s *AuthService) issue(uid string) (string, error) {
	tok, err := s.tokens.Issue(uid)
	if err != nil {
		s.log.Error("sign token", zap.Error(err))
		return "", newErr(ErrInternal, "Server Error")
	}
	return tok, nil
}

// Me returns the caller's account without the password hash.
func (s *AuthService) Me(ctx context.Context, uid string) (*models.User, error) {
	if _, err := actorID(uid); err != nil {
		return nil, err
	}
	u, err := s.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newErr(ErrNotFound, "User not found")
		}
		return nil, internal(s.log, "get user", err)
	}
	u.PasswordHash = ""
	return u, nil
}
