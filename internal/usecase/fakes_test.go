package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/apperror"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/entity"
)

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{})   {}
func (nopLogger) Infof(string, ...interface{})    {}
func (nopLogger) Warnf(string, ...interface{})    {}
func (nopLogger) Warningf(string, ...interface{}) {}
func (nopLogger) Errorf(string, ...interface{})   {}
func (nopLogger) Fatalf(string, ...interface{})   {}

type seqUUID struct {
	mu sync.Mutex
	n  int
}

func (g *seqUUID) NewUUID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("uuid-%d", g.n)
}

// memStore is an in-memory article, tag and link store.
type memStore struct {
	mu       sync.Mutex
	articles map[string]*entity.Article
	order    []string
	tags     map[string]string // name -> id
	links    map[string]map[string]bool
	nextTag  int
	calls    int

	createErr  error
	resolveErr map[string]error
}

func newMemStore() *memStore {
	return &memStore{
		articles:   map[string]*entity.Article{},
		tags:       map[string]string{},
		links:      map[string]map[string]bool{},
		resolveErr: map[string]error{},
	}
}

func (m *memStore) withTags(a *entity.Article) *entity.Article {
	cp := *a
	cp.Tags = []string{}
	for name, id := range m.tags {
		if m.links[a.ID][id] {
			cp.Tags = append(cp.Tags, name)
		}
	}
	sort.Strings(cp.Tags)
	return &cp
}

func (m *memStore) CreateArticle(_ context.Context, a *entity.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.createErr != nil {
		return m.createErr
	}
	cp := *a
	m.articles[a.ID] = &cp
	m.order = append(m.order, a.ID)
	return nil
}

func (m *memStore) GetArticles(_ context.Context) ([]*entity.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	out := []*entity.Article{}
	for _, id := range m.order {
		out = append(out, m.withTags(m.articles[id]))
	}
	return out, nil
}

func (m *memStore) GetArticleByID(_ context.Context, id string) (*entity.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	a, ok := m.articles[id]
	if !ok {
		return nil, fmt.Errorf("error fetching article %s: %w", id, apperror.ErrNotFound)
	}
	return m.withTags(a), nil
}

func (m *memStore) GetArticlesByUserID(_ context.Context, userID string) ([]*entity.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	out := []*entity.Article{}
	for _, id := range m.order {
		if m.articles[id].UserID == userID {
			out = append(out, m.withTags(m.articles[id]))
		}
	}
	return out, nil
}

func (m *memStore) GetArticlesByTagNames(_ context.Context, names []string, exclude string, limit int) ([]*entity.Article, error) {
	if exclude == "" {
		return nil, apperror.ErrValidation
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	want := map[string]bool{}
	for _, n := range names {
		want[n] = true
	}
	out := []*entity.Article{}
	for _, id := range m.order {
		if id == exclude {
			continue
		}
		a := m.withTags(m.articles[id])
		for _, t := range a.Tags {
			if want[t] {
				out = append(out, a)
				break
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) UpdateImageURL(_ context.Context, id, url string) (*entity.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	a, ok := m.articles[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	a.ImageURL = &url
	return m.withTags(a), nil
}

func (m *memStore) IncrementViews(_ context.Context, id string) (*entity.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	a, ok := m.articles[id]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	a.Views++
	return m.withTags(a), nil
}

func (m *memStore) ResolveTagID(_ context.Context, name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.resolveErr[name]; err != nil {
		return "", err
	}
	if id, ok := m.tags[name]; ok {
		return id, nil
	}
	m.nextTag++
	id := fmt.Sprintf("tag-%d", m.nextTag)
	m.tags[name] = id
	return id, nil
}

func (m *memStore) LinkTagToArticle(_ context.Context, articleID, tagID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.links[articleID] == nil {
		m.links[articleID] = map[string]bool{}
	}
	m.links[articleID][tagID] = true
	return nil
}

// memCache is an in-memory IArticleCache.
type memCache struct {
	articles map[string]*entity.Article
	list     []*entity.Article
	hasList  bool
	getErr   error
}

func newMemCache() *memCache { return &memCache{articles: map[string]*entity.Article{}} }

func (c *memCache) GetArticle(_ context.Context, id string) (*entity.Article, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	a, ok := c.articles[id]
	return a, ok, nil
}
func (c *memCache) SetArticle(_ context.Context, a *entity.Article) error {
	c.articles[a.ID] = a
	return nil
}
func (c *memCache) InvalidateArticle(_ context.Context, id string) error {
	delete(c.articles, id)
	return nil
}
func (c *memCache) GetArticleList(_ context.Context) ([]*entity.Article, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	return c.list, c.hasList, nil
}
func (c *memCache) SetArticleList(_ context.Context, list []*entity.Article) error {
	c.list, c.hasList = list, true
	return nil
}
func (c *memCache) InvalidateArticleList(_ context.Context) error {
	c.list, c.hasList = nil, false
	return nil
}

// memStorage is an in-memory IMediaStorage.
type memStorage struct {
	objects   map[string][]byte
	types     map[string]string
	uploadErr error
}

func newMemStorage() *memStorage {
	return &memStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *memStorage) Upload(_ context.Context, path string, r io.Reader, contentType string) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.objects[path] = b
	s.types[path] = contentType
	return nil
}

func (s *memStorage) Open(_ context.Context, path string) (*entity.StoredMedia, error) {
	b, ok := s.objects[path]
	if !ok {
		return nil, apperror.ErrNotFound
	}
	return &entity.StoredMedia{Path: path, ContentType: s.types[path], Size: int64(len(b)), Content: io.NopCloser(bytes.NewReader(b))}, nil
}

func (s *memStorage) PublicURL(path string) string { return "https://cdn.test/media/" + path }

// memUsers is an in-memory IUserRepository.
type memUsers struct {
	users     map[string]*entity.User
	createErr error
}

func newMemUsers() *memUsers { return &memUsers{users: map[string]*entity.User{}} }

func (r *memUsers) CreateUser(_ context.Context, u *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUsers) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *memUsers) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
}

func (r *memUsers) UpdateProfile(_ context.Context, id string, update entity.ProfileUpdate) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
	}
	if update.Username != "" {
		u.Username = update.Username
	}
	if update.ProfilePicture != nil {
		u.ProfilePicture = update.ProfilePicture
	}
	cp := *u
	return &cp, nil
}

type fakeAuth struct {
	accounts map[string]string
	failWith error
	signUps  int
}

func newFakeAuth() *fakeAuth { return &fakeAuth{accounts: map[string]string{}} }

func (a *fakeAuth) SignUp(_ context.Context, email, password string) error {
	a.signUps++
	if a.failWith != nil {
		return a.failWith
	}
	if _, ok := a.accounts[email]; ok {
		return fmt.Errorf("%w: identifier exists", apperror.ErrAuthRejected)
	}
	a.accounts[email] = password
	return nil
}

func (a *fakeAuth) SignIn(_ context.Context, email, password string) error {
	if a.failWith != nil {
		return a.failWith
	}
	if pw, ok := a.accounts[email]; !ok || pw != password {
		return fmt.Errorf("%w: credentials invalid", apperror.ErrInvalidCredentials)
	}
	return nil
}

type fakeHasher struct{ err error }

func (h fakeHasher) HashPassword(p string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + p, nil
}

type fakeValidator struct{}

func (fakeValidator) ValidateEmail(email string) error {
	if email == "" || !bytes.Contains([]byte(email), []byte("@")) {
		return errors.New("invalid email")
	}
	return nil
}
