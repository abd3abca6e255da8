package jwtutil

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"devconnector/internal/logger"
)

var ErrInvalidToken = errors.New("invalid token")

type UserClaim struct {
	ID string `json:"id"`
}

// Claims carries the identity as {"user":{"id":...}}. uid and sub are
// accepted as fallbacks for tokens minted by other services.
type Claims struct {
	User *UserClaim `json:"user,omitempty"`
	UID  string     `json:"uid,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) identity() string {
	if c.User != nil && c.User.ID != "" {
		return c.User.ID
	}
	if c.UID != "" {
		return c.UID
	}
	return c.Subject
}

type Manager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    *zap.Logger
}

func NewManager(secret string, ttl time.Duration, log *zap.Logger) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		log:    logger.OrNop(log),
	}
}

// Issue signs an HS256 token carrying userID.
func (m *Manager) Issue(userID string) (string, error) {
	now := m.now()
	claims := Claims{
		User: &UserClaim{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify returns the identity claim of a valid token. Every failure is
// reported as ErrInvalidToken; the cause only goes to the log.
func (m *Manager) Verify(tokenStr string) (string, error) {
	if tokenStr == "" {
		m.log.Debug("token rejected", zap.String("reason", "missing token"))
		return "", ErrInvalidToken
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		m.log.Debug("token rejected", zap.Error(err))
		return "", ErrInvalidToken
	}

	uid := claims.identity()
	if uid == "" {
		m.log.Debug("token rejected", zap.String("reason", "missing identity"))
		return "", ErrInvalidToken
	}
	return uid, nil
}
