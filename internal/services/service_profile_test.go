package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"devconnector/dto"
	"devconnector/internal/models"
)

func newProfileFixture() (*ProfileService, *fakeProfiles, models.User) {
	u := models.User{ID: bson.NewObjectID(), Name: "Ada", Avatar: "a.png", Email: "ada@example.com"}
	profiles := newFakeProfiles(newFakeUsers(u))
	return NewProfileService(profiles, nil, nil), profiles, u
}

func TestProfileService_UpsertMinimal(t *testing.T) {
	svc, _, u := newProfileFixture()
	ctx := context.Background()

	p, err := svc.Upsert(ctx, u.ID.Hex(), dto.ProfileReq{Status: "Developer", Skills: "a, b, c"})
	require.NoError(t, err)
	assert.Equal(t, "Developer", p.Status)
	assert.Equal(t, []string{"a", "b", "c"}, p.Skills)
	assert.Empty(t, p.Company)
	assert.Empty(t, p.Location)
	assert.Empty(t, p.Website)
	assert.Empty(t, p.Bio)
	assert.Empty(t, p.GithubUsername)
	assert.Nil(t, p.Social)
	assert.Equal(t, u.ID, p.User)
	assert.Equal(t, &models.PublicUser{ID: u.ID, Name: "Ada", Avatar: "a.png"}, p.Owner)
}

func TestProfileService_UpsertRequiresStatusAndSkills(t *testing.T) {
	svc, profiles, u := newProfileFixture()
	ctx := context.Background()

	_, err := svc.Upsert(ctx, u.ID.Hex(), dto.ProfileReq{Skills: " , "})
	var verr ValidationErrors
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr, 2)
	assert.Equal(t, "status", verr[0].Param)
	assert.Equal(t, "skills", verr[1].Param)
	assert.Empty(t, profiles.profiles)
}

func TestProfileService_UpsertMergesSocialPerField(t *testing.T) {
	svc, _, u := newProfileFixture()
	ctx := context.Background()
	uid := u.ID.Hex()

	_, err := svc.Upsert(ctx, uid, dto.ProfileReq{
		Status:   "Dev",
		Skills:   "go",
		Company:  "Acme",
		Twitter:  "https://twitter.com/ada",
		LinkedIn: "https://linkedin.com/in/ada",
	})
	require.NoError(t, err)

	p, err := svc.Upsert(ctx, uid, dto.ProfileReq{
		Status:  "Senior Dev",
		Skills:  "go, mongo, go",
		YouTube: "https://youtube.com/ada",
	})
	require.NoError(t, err)

	assert.Equal(t, "Senior Dev", p.Status)
	assert.Equal(t, []string{"go", "mongo"}, p.Skills)
	assert.Equal(t, "Acme", p.Company, "absent fields keep their value")
	require.NotNil(t, p.Social)
	assert.Equal(t, "https://twitter.com/ada", p.Social.Twitter)
	assert.Equal(t, "https://linkedin.com/in/ada", p.Social.LinkedIn)
	assert.Equal(t, "https://youtube.com/ada", p.Social.YouTube)
}

func TestProfileService_Reads(t *testing.T) {
	svc, profiles, u := newProfileFixture()
	ctx := context.Background()

	_, err := svc.GetMine(ctx, u.ID.Hex())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "There is no profile for this user")

	_, err = svc.GetByUserID(ctx, "bogus")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Profile not found")

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = svc.Upsert(ctx, u.ID.Hex(), dto.ProfileReq{Status: "Dev", Skills: "go"})
	require.NoError(t, err)

	mine, err := svc.GetMine(ctx, u.ID.Hex())
	require.NoError(t, err)
	byID, err := svc.GetByUserID(ctx, u.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, mine, byID)

	all, err = svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	profiles.err = errors.New("timeout")
	_, err = svc.ListAll(ctx)
	assert.ErrorIs(t, err, ErrInternal)
	_, err = svc.GetMine(ctx, u.ID.Hex())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestProfileService_OwnerGone(t *testing.T) {
	svc, _, _ := newProfileFixture()
	ctx := context.Background()
	orphan := bson.NewObjectID()

	p, err := svc.Upsert(ctx, orphan.Hex(), dto.ProfileReq{Status: "Dev", Skills: "go"})
	require.NoError(t, err)
	assert.Nil(t, p.Owner)
	assert.Equal(t, orphan, p.User)
}

func TestProfileService_BioStoredAsSent(t *testing.T) {
	svc, _, u := newProfileFixture()

	p, err := svc.Upsert(context.Background(), u.ID.Hex(), dto.ProfileReq{
		Status: "Dev",
		Skills: "go",
		Bio:    " <b>Gopher</b> & friends ",
	})
	require.NoError(t, err)
	assert.Equal(t, "<b>Gopher</b> & friends", p.Bio)
}
