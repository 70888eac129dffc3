package service_test

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/atulv2861/seven-healer-backend/internal/mailer"
	"github.com/atulv2861/seven-healer-backend/internal/model"
	"github.com/atulv2861/seven-healer-backend/internal/repository"
)

// errDuplicateKey mimics the Postgres unique-violation error surfaced by pgx.
var errDuplicateKey = &pgconn.PgError{Code: "23505"}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*model.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := uuid.New()
	copied := *user
	copied.ID = id
	f.users[id] = &copied
	return id, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context, filter repository.UserFilter, page, limit int) ([]model.User, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.User
	for _, u := range f.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.IsActive != nil && u.IsActive != *filter.IsActive {
			continue
		}
		out = append(out, *u)
	}
	return out, len(out), nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

type fakeBlogRepo struct {
	mu    sync.Mutex
	blogs map[uuid.UUID]*model.Blog
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{blogs: map[uuid.UUID]*model.Blog{}}
}

func (f *fakeBlogRepo) Create(ctx context.Context, blog *model.Blog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	blog.ID = uuid.New()
	copied := *blog
	f.blogs[blog.ID] = &copied
	return nil
}

func (f *fakeBlogRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.blogs[id]; ok {
		copied := *b
		copied.Content = append([]model.ContentSection(nil), b.Content...)
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeBlogRepo) FindBySlug(ctx context.Context, slug string) (*model.Blog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.blogs {
		if b.Slug == slug {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBlogRepo) SlugExists(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, b := range f.blogs {
		if excludeID != nil && id == *excludeID {
			continue
		}
		if b.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBlogRepo) List(ctx context.Context, filter repository.BlogFilter, page, limit int) ([]model.Blog, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Blog
	for _, b := range f.blogs {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		out = append(out, *b)
	}
	return out, len(out), nil
}

func (f *fakeBlogRepo) Update(ctx context.Context, blog *model.Blog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *blog
	copied.Content = append([]model.ContentSection(nil), blog.Content...)
	f.blogs[blog.ID] = &copied
	return nil
}

func (f *fakeBlogRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.blogs[id]; !ok {
		return false, nil
	}
	delete(f.blogs, id)
	return true, nil
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[string]*model.JobOpening
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[string]*model.JobOpening{}}
}

func (f *fakeJobRepo) Create(ctx context.Context, job *model.JobOpening) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[job.JobID]; ok {
		return errDuplicateKey
	}
	job.ID = uuid.New()
	copied := *job
	f.jobs[job.JobID] = &copied
	return nil
}

func (f *fakeJobRepo) FindByJobID(ctx context.Context, jobID string) (*model.JobOpening, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if j, ok := f.jobs[jobID]; ok {
		copied := *j
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeJobRepo) List(ctx context.Context, filter repository.JobFilter, page, limit int) ([]model.JobOpening, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.JobOpening
	for _, j := range f.jobs {
		if filter.Status != "" && j.Status != filter.Status {
			continue
		}
		out = append(out, *j)
	}
	return out, len(out), nil
}

func (f *fakeJobRepo) Update(ctx context.Context, job *model.JobOpening) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if other, ok := f.jobs[job.JobID]; ok && other.ID != job.ID {
		return errDuplicateKey
	}
	for key, existing := range f.jobs {
		if existing.ID == job.ID {
			delete(f.jobs, key)
			break
		}
	}
	copied := *job
	f.jobs[job.JobID] = &copied
	return nil
}

func (f *fakeJobRepo) Delete(ctx context.Context, jobID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[jobID]; !ok {
		return false, nil
	}
	delete(f.jobs, jobID)
	return true, nil
}

func (f *fakeJobRepo) Stats(ctx context.Context) (*model.JobStats, error) {
	return &model.JobStats{}, nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	apps map[uuid.UUID]*model.JobApplication
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[uuid.UUID]*model.JobApplication{}}
}

func (f *fakeApplicationRepo) Create(ctx context.Context, app *model.JobApplication) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.apps {
		if existing.SelectedJobID != nil && app.SelectedJobID != nil &&
			*existing.SelectedJobID == *app.SelectedJobID &&
			strings.EqualFold(existing.Email, app.Email) {
			return errDuplicateKey
		}
	}
	app.ID = uuid.New()
	copied := *app
	f.apps[app.ID] = &copied
	return nil
}

func (f *fakeApplicationRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.JobApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.apps[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeApplicationRepo) List(ctx context.Context, filter repository.ApplicationFilter, page, limit int) ([]model.JobApplication, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.JobApplication
	for _, a := range f.apps {
		out = append(out, *a)
	}
	return out, len(out), nil
}

func (f *fakeApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.JobApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.apps[id]
	if !ok {
		return nil, nil
	}
	a.Status = status
	copied := *a
	return &copied, nil
}

func (f *fakeApplicationRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.apps[id]; !ok {
		return false, nil
	}
	delete(f.apps, id)
	return true, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

type fakePublisher struct {
	mu           sync.Mutex
	contacts     int
	applications int
}

func (f *fakePublisher) PublishContactReceived(name, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.contacts++
	return nil
}

func (f *fakePublisher) PublishApplicationReceived(id uuid.UUID, email string, jobID *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.applications++
	return nil
}
