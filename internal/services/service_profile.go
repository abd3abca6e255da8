package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"devconnector/dto"
	"devconnector/internal/logger"
	"devconnector/internal/models"
	"devconnector/internal/repository"
	"devconnector/internal/utils"
)

type ProfileService struct {
	profiles repository.ProfileRepository
	log      *zap.Logger
	events   EventCounter
}

func NewProfileService(profiles repository.ProfileRepository, log *zap.Logger, events EventCounter) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		log:      logger.OrNop(log),
		events:   counterOrNop(events),
	}
}

// GetMine returns the caller's own profile.
func (s *ProfileService) GetMine(ctx context.Context, uid string) (*models.ProfileView, error) {
	if _, err := actorID(uid); err != nil {
		return nil, err
	}
	p, err := s.profiles.FindByUser(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newErr(ErrNotFound, "There is no profile for this user")
		}
		return nil, internal(s.log, "get own profile", err)
	}
	return p, nil
}

// Upsert creates or updates the caller's profile from req.
func (s *ProfileService) Upsert(ctx context.Context, uid string, req dto.ProfileReq) (*models.ProfileView, error) {
	oid, err := actorID(uid)
	if err != nil {
		return nil, err
	}
	ch, err := profileChanges(req)
	if err != nil {
		return nil, err
	}
	p, err := s.profiles.Upsert(ctx, oid, ch)
	if err != nil {
		return nil, internal(s.log, "upsert profile", err)
	}
	s.events.Inc("profile_saved")
	return p, nil
}

// profileChanges validates req and keeps only the fields it sets.
func profileChanges(req dto.ProfileReq) (repository.ProfileChanges, error) {
	var (
		ch   repository.ProfileChanges
		verr ValidationErrors
	)
	present := func(v string) *string {
		v = strings.TrimSpace(v)
		if v == "" {
			return nil
		}
		return &v
	}

	ch.Status = present(req.Status)
	if ch.Status == nil {
		verr.add("status", "Status is required")
	}
	ch.Skills = utils.SplitSkills(req.Skills)
	if len(ch.Skills) == 0 {
		verr.add("skills", "Skills is required")
	}
	if err := verr.orNil(); err != nil {
		return repository.ProfileChanges{}, err
	}

	ch.Company = present(req.Company)
	ch.Location = present(req.Location)
	ch.Website = present(req.Website)
	ch.Bio = present(req.Bio)
	ch.GithubUsername = present(req.GithubUsername)

	social := map[string]string{
		"youtube":   req.YouTube,
		"twitter":   req.Twitter,
		"facebook":  req.Facebook,
		"instagram": req.Instagram,
		"linkedin":  req.LinkedIn,
	}
	for k, v := range social {
		if p := present(v); p != nil {
			if ch.Social == nil {
				ch.Social = map[string]string{}
			}
			ch.Social[k] = *p
		}
	}
	return ch, nil
}

func (s *ProfileService) ListAll(ctx context.Context) ([]models.ProfileView, error) {
	profiles, err := s.profiles.FindAll(ctx)
	if err != nil {
		return nil, internal(s.log, "list profiles", err)
	}
	return profiles, nil
}

func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (*models.ProfileView, error) {
	p, err := s.profiles.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
			return nil, newErr(ErrNotFound, "Profile not found")
		}
		return nil, internal(s.log, "get profile", err)
	}
	return p, nil
}
