package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atulv2861/seven-healer-backend/internal/model"
	"github.com/atulv2861/seven-healer-backend/internal/repository"
	"github.com/atulv2861/seven-healer-backend/internal/slug"
)

var (
	ErrBlogNotFound      = errors.New("blog not found")
	ErrSectionNotFound   = errors.New("content section not found")
	ErrSlugTaken         = errors.New("slug already in use")
	ErrSlugExhausted     = errors.New("could not derive a unique slug")
	ErrInvalidBlogStatus = errors.New("invalid publication status")
)

// maxSlugAttempts bounds the collision-suffix loop; the unique index on
// blogs.slug remains the backstop if the bound is somehow exceeded.
const maxSlugAttempts = 100

type CreateBlogDTO struct {
	Title       string
	Slug        string
	Excerpt     string
	Content     []model.ContentSection
	Image       *string
	Author      string
	AuthorBio   *string
	AuthorImage *string
	PublishedAt *time.Time
	Tags        []string
	Status      string
}

type UpdateBlogDTO struct {
	Title       *string
	Slug        *string
	Excerpt     *string
	Content     *[]model.ContentSection
	Image       *string
	Author      *string
	AuthorBio   *string
	AuthorImage *string
	PublishedAt *time.Time
	Tags        *[]string
	Status      *string
}

type UpdateSectionDTO struct {
	Heading     string
	NewHeading  *string
	Description *string
	SubSections *[]string
}

type BlogService interface {
	Create(ctx context.Context, dto CreateBlogDTO) (*model.Blog, error)
	ListPublished(ctx context.Context, page, limit int) ([]model.Blog, int, error)
	ListAdmin(ctx context.Context, filter repository.BlogFilter, page, limit int) ([]model.Blog, int, error)
	Get(ctx context.Context, id uuid.UUID, includeUnpublished bool) (*model.Blog, error)
	GetBySlug(ctx context.Context, s string) (*model.Blog, error)
	Update(ctx context.Context, id uuid.UUID, dto UpdateBlogDTO) (*model.Blog, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Blog, error)
	UpdateTags(ctx context.Context, id uuid.UUID, tags []string) (*model.Blog, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddSection(ctx context.Context, id uuid.UUID, section model.ContentSection) (*model.Blog, error)
	UpdateSection(ctx context.Context, id uuid.UUID, dto UpdateSectionDTO) (*model.Blog, error)
	RemoveSection(ctx context.Context, id uuid.UUID, heading string) (*model.Blog, error)
}

type blogService struct {
	blogRepo repository.BlogRepository
}

func NewBlogService(blogRepo repository.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) Create(ctx context.Context, dto CreateBlogDTO) (*model.Blog, error) {
	status := dto.Status
	if status == "" {
		status = model.BlogStatusDraft
	}
	if !slices.Contains(model.BlogStatuses, status) {
		return nil, ErrInvalidBlogStatus
	}

	candidate := dto.Slug
	if candidate == "" {
		candidate = slug.Generate(dto.Title)
	}
	unique, err := s.ensureUniqueSlug(ctx, candidate, nil)
	if err != nil {
		return nil, err
	}

	publishedAt := time.Now().UTC()
	if dto.PublishedAt != nil {
		publishedAt = *dto.PublishedAt
	}

	blog := &model.Blog{
		Title:       dto.Title,
		Slug:        unique,
		Excerpt:     dto.Excerpt,
		Content:     dto.Content,
		Image:       dto.Image,
		Author:      dto.Author,
		AuthorBio:   dto.AuthorBio,
		AuthorImage: dto.AuthorImage,
		PublishedAt: publishedAt,
		Tags:        dto.Tags,
		Status:      status,
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	return blog, nil
}

func (s *blogService) ListPublished(ctx context.Context, page, limit int) ([]model.Blog, int, error) {
	return s.blogRepo.List(ctx, repository.BlogFilter{Status: model.BlogStatusPublished}, page, limit)
}

func (s *blogService) ListAdmin(ctx context.Context, filter repository.BlogFilter, page, limit int) ([]model.Blog, int, error) {
	if filter.Status != "" && !slices.Contains(model.BlogStatuses, filter.Status) {
		return nil, 0, ErrInvalidBlogStatus
	}
	return s.blogRepo.List(ctx, filter, page, limit)
}

func (s *blogService) Get(ctx context.Context, id uuid.UUID, includeUnpublished bool) (*model.Blog, error) {
	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}
	if !includeUnpublished && blog.Status != model.BlogStatusPublished {
		return nil, ErrBlogNotFound
	}
	return blog, nil
}

func (s *blogService) GetBySlug(ctx context.Context, sl string) (*model.Blog, error) {
	blog, err := s.blogRepo.FindBySlug(ctx, sl)
	if err != nil {
		return nil, err
	}
	if blog == nil || blog.Status != model.BlogStatusPublished {
		return nil, ErrBlogNotFound
	}
	return blog, nil
}

func (s *blogService) Update(ctx context.Context, id uuid.UUID, dto UpdateBlogDTO) (*model.Blog, error) {
	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	if dto.Status != nil && !slices.Contains(model.BlogStatuses, *dto.Status) {
		return nil, ErrInvalidBlogStatus
	}

	// A title change without an explicit slug regenerates it; an explicit
	// slug is de-duplicated too, excluding this post.
	switch {
	case dto.Slug != nil:
		unique, err := s.ensureUniqueSlug(ctx, *dto.Slug, &id)
		if err != nil {
			return nil, err
		}
		blog.Slug = unique
	case dto.Title != nil:
		unique, err := s.ensureUniqueSlug(ctx, slug.Generate(*dto.Title), &id)
		if err != nil {
			return nil, err
		}
		blog.Slug = unique
	}

	if dto.Title != nil {
		blog.Title = *dto.Title
	}
	if dto.Excerpt != nil {
		blog.Excerpt = *dto.Excerpt
	}
	if dto.Content != nil {
		blog.Content = *dto.Content
	}
	if dto.Image != nil {
		blog.Image = dto.Image
	}
	if dto.Author != nil {
		blog.Author = *dto.Author
	}
	if dto.AuthorBio != nil {
		blog.AuthorBio = dto.AuthorBio
	}
	if dto.AuthorImage != nil {
		blog.AuthorImage = dto.AuthorImage
	}
	if dto.PublishedAt != nil {
		blog.PublishedAt = *dto.PublishedAt
	}
	if dto.Tags != nil {
		blog.Tags = *dto.Tags
	}
	if dto.Status != nil {
		blog.Status = *dto.Status
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	return blog, nil
}

func (s *blogService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Blog, error) {
	if !slices.Contains(model.BlogStatuses, status) {
		return nil, ErrInvalidBlogStatus
	}

	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	blog.Status = status
	if status == model.BlogStatusPublished && blog.PublishedAt.IsZero() {
		blog.PublishedAt = time.Now().UTC()
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *blogService) UpdateTags(ctx context.Context, id uuid.UUID, tags []string) (*model.Blog, error) {
	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	blog.Tags = tags
	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *blogService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.blogRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrBlogNotFound
	}
	return nil
}

func (s *blogService) AddSection(ctx context.Context, id uuid.UUID, section model.ContentSection) (*model.Blog, error) {
	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	if section.SubSections == nil {
		section.SubSections = []string{}
	}
	// No heading-uniqueness check on append; lookups later take the first
	// case-insensitive match.
	blog.Content = append(blog.Content, section)

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *blogService) UpdateSection(ctx context.Context, id uuid.UUID, dto UpdateSectionDTO) (*model.Blog, error) {
	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	idx := findSection(blog.Content, dto.Heading)
	if idx < 0 {
		return nil, ErrSectionNotFound
	}

	if dto.Description != nil {
		blog.Content[idx].Description = *dto.Description
	}
	if dto.SubSections != nil {
		blog.Content[idx].SubSections = *dto.SubSections
	}
	// Rename is applied after the field updates so the lookup heading stays
	// the one the caller addressed.
	if dto.NewHeading != nil {
		blog.Content[idx].Heading = *dto.NewHeading
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

func (s *blogService) RemoveSection(ctx context.Context, id uuid.UUID, heading string) (*model.Blog, error) {
	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, ErrBlogNotFound
	}

	idx := findSection(blog.Content, heading)
	if idx < 0 {
		return nil, ErrSectionNotFound
	}
	blog.Content = append(blog.Content[:idx], blog.Content[idx+1:]...)

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// findSection returns the index of the first section whose heading matches
// case-insensitively, or -1.
func findSection(sections []model.ContentSection, heading string) int {
	for i, section := range sections {
		if strings.EqualFold(section.Heading, heading) {
			return i
		}
	}
	return -1
}

func (s *blogService) ensureUniqueSlug(ctx context.Context, base string, excludeID *uuid.UUID) (string, error) {
	candidate := base
	for i := 0; i < maxSlugAttempts; i++ {
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		exists, err := s.blogRepo.SlugExists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", ErrSlugExhausted
}
