package services

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"devconnector/internal/models"
	"devconnector/internal/repository"
)

type fakeUsers struct {
	mu   sync.Mutex
	byID map[bson.ObjectID]models.User
	err  error
}

func newFakeUsers(users ...models.User) *fakeUsers {
	f := &fakeUsers{byID: map[bson.ObjectID]models.User{}}
	for _, u := range users {
		f.byID[u.ID] = u
	}
	return f
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byID[oid]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == strings.ToLower(email) {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, other := range f.byID {
		if other.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	if u.ID.IsZero() {
		u.ID = bson.NewObjectID()
	}
	f.byID[u.ID] = *u
	return nil
}

// fakePosts mirrors the conditional updates of MongoPostRepo in memory.
type fakePosts struct {
	mu    sync.Mutex
	posts map[bson.ObjectID]*models.Post
	err   error
}

func newFakePosts() *fakePosts {
	return &fakePosts{posts: map[bson.ObjectID]*models.Post{}}
}

func (f *fakePosts) lookup(id string) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	p, ok := f.posts[oid]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func clonePost(p *models.Post) *models.Post {
	c := *p
	c.Likes = append([]models.Like{}, p.Likes...)
	c.Comments = append([]models.Comment{}, p.Comments...)
	return &c
}

func (f *fakePosts) Create(_ context.Context, p *models.Post) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = bson.NewObjectID()
	}
	f.posts[p.ID] = clonePost(p)
	return nil
}

func (f *fakePosts) FindAll(context.Context) ([]models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Post{}
	for _, p := range f.posts {
		out = append(out, *clonePost(p))
	}
	return out, nil
}

func (f *fakePosts) FindByID(_ context.Context, id string) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.lookup(id)
	if err != nil {
		return nil, err
	}
	return clonePost(p), nil
}

func (f *fakePosts) DeleteByAuthor(_ context.Context, id string, author bson.ObjectID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.lookup(id)
	if err != nil {
		return err
	}
	if p.User != author {
		return repository.ErrNotPostAuthor
	}
	delete(f.posts, p.ID)
	return nil
}

func likedBy(p *models.Post, uid bson.ObjectID) bool {
	for _, l := range p.Likes {
		if l.User == uid {
			return true
		}
	}
	return false
}

func (f *fakePosts) AddLike(_ context.Context, id string, uid bson.ObjectID) ([]models.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.lookup(id)
	if err != nil {
		return nil, err
	}
	if likedBy(p, uid) {
		return nil, repository.ErrAlreadyLiked
	}
	p.Likes = append(p.Likes, models.Like{User: uid})
	return clonePost(p).Likes, nil
}

func (f *fakePosts) RemoveLike(_ context.Context, id string, uid bson.ObjectID) ([]models.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.lookup(id)
	if err != nil {
		return nil, err
	}
	if !likedBy(p, uid) {
		return nil, repository.ErrNotLiked
	}
	kept := []models.Like{}
	for _, l := range p.Likes {
		if l.User != uid {
			kept = append(kept, l)
		}
	}
	p.Likes = kept
	return clonePost(p).Likes, nil
}

func (f *fakePosts) PushComment(_ context.Context, id string, c models.Comment) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.lookup(id)
	if err != nil {
		return nil, err
	}
	if c.ID.IsZero() {
		c.ID = bson.NewObjectID()
	}
	p.Comments = append([]models.Comment{c}, p.Comments...)
	return clonePost(p).Comments, nil
}

func (f *fakePosts) PullComment(_ context.Context, id, commentID string, uid bson.ObjectID) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, err := f.lookup(id)
	if err != nil {
		return nil, err
	}
	cid, err := bson.ObjectIDFromHex(commentID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	c, ok := p.Comment(cid)
	if !ok {
		return nil, repository.ErrCommentNotFound
	}
	if c.User != uid {
		return nil, repository.ErrNotCommentAuthor
	}
	kept := []models.Comment{}
	for _, c := range p.Comments {
		if c.ID != cid {
			kept = append(kept, c)
		}
	}
	p.Comments = kept
	return clonePost(p).Comments, nil
}

type fakeProfiles struct {
	mu       sync.Mutex
	users    *fakeUsers
	profiles map[bson.ObjectID]*models.Profile
	err      error
}

func newFakeProfiles(users *fakeUsers) *fakeProfiles {
	return &fakeProfiles{users: users, profiles: map[bson.ObjectID]*models.Profile{}}
}

func (f *fakeProfiles) view(p *models.Profile) models.ProfileView {
	v := models.ProfileView{Profile: *p}
	v.Skills = append([]string{}, p.Skills...)
	if p.Social != nil {
		s := *p.Social
		v.Social = &s
	}
	if u, ok := f.users.byID[p.User]; ok {
		v.Owner = &models.PublicUser{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
	}
	return v
}

func (f *fakeProfiles) FindByUser(_ context.Context, userID string) (*models.ProfileView, error) {
	if f.err != nil {
		return nil, f.err
	}
	oid, err := bson.ObjectIDFromHex(userID)
	if err != nil {
		return nil, repository.ErrInvalidID
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[oid]
	if !ok {
		return nil, repository.ErrNotFound
	}
	v := f.view(p)
	return &v, nil
}

func (f *fakeProfiles) FindAll(context.Context) ([]models.ProfileView, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.ProfileView{}
	for _, p := range f.profiles {
		out = append(out, f.view(p))
	}
	return out, nil
}

func (f *fakeProfiles) Upsert(ctx context.Context, userID bson.ObjectID, ch repository.ProfileChanges) (*models.ProfileView, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	p, ok := f.profiles[userID]
	if !ok {
		p = &models.Profile{ID: bson.NewObjectID(), User: userID}
		f.profiles[userID] = p
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&p.Company, ch.Company)
	set(&p.Location, ch.Location)
	set(&p.Website, ch.Website)
	set(&p.Bio, ch.Bio)
	set(&p.Status, ch.Status)
	set(&p.GithubUsername, ch.GithubUsername)
	if ch.Skills != nil {
		p.Skills = ch.Skills
	}
	if len(ch.Social) > 0 && p.Social == nil {
		p.Social = &models.Social{}
	}
	for k, v := range ch.Social {
		switch k {
		case "youtube":
			p.Social.YouTube = v
		case "twitter":
			p.Social.Twitter = v
		case "facebook":
			p.Social.Facebook = v
		case "instagram":
			p.Social.Instagram = v
		case "linkedin":
			p.Social.LinkedIn = v
		}
	}
	f.mu.Unlock()
	return f.FindByUser(ctx, userID.Hex())
}

type countingEvents struct {
	mu sync.Mutex
	n  map[string]int
}

func (c *countingEvents) Inc(event string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.n == nil {
		c.n = map[string]int{}
	}
	c.n[event]++
}

func (c *countingEvents) count(event string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n[event]
}
