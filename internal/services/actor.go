package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"devconnector/internal/repository"
	"devconnector/internal/utils"
)

// EventCounter receives domain events such as "post_created".
type EventCounter interface {
	Inc(event string)
}

type nopCounter struct{}

func (nopCounter) Inc(string) {}

func counterOrNop(c EventCounter) EventCounter {
	if c == nil {
		return nopCounter{}
	}
	return c
}

// actorID parses the identity claim of the caller.
func actorID(uid string) (bson.ObjectID, error) {
	oid, err := utils.Oid(uid)
	if err != nil {
		return bson.NilObjectID, newErr(ErrUnauthorized, "Token is not valid")
	}
	return oid, nil
}

// loadActor fetches the caller's user record for denormalized fields.
func loadActor(ctx context.Context, users repository.UserRepository, log *zap.Logger, uid string) (bson.ObjectID, string, string, error) {
	oid, err := actorID(uid)
	if err != nil {
		return oid, "", "", err
	}
	u, err := users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return oid, "", "", newErr(ErrNotFound, "User not found")
		}
		return oid, "", "", internal(log, "load user", err)
	}
	return oid, u.Name, u.Avatar, nil
}

// internal logs err and hides it behind ErrInternal.
func internal(log *zap.Logger, op string, err error) error {
	log.Error("persistence failure", zap.String("op", op), zap.Error(err))
	return newErr(ErrInternal, "Server Error")
}
