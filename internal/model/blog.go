package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
	BlogStatusArchived  = "archived"
)

var BlogStatuses = []string{BlogStatusDraft, BlogStatusPublished, BlogStatusArchived}

// ContentSection is an ordered block of a blog post. Sections are embedded in
// the blog row and looked up by heading, case-insensitively, first match wins.
type ContentSection struct {
	Heading     string   `json:"heading"`
	Description string   `json:"description"`
	SubSections []string `json:"sub_sections"`
}

type ContentSections []ContentSection

func (s ContentSections) Value() (driver.Value, error) {
	if s == nil {
		return jsonbValue([]ContentSection{})
	}
	return jsonbValue([]ContentSection(s))
}

func (s *ContentSections) Scan(src any) error {
	return jsonbScan(s, src)
}

type Blog struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Title       string          `db:"title" json:"title"`
	Slug        string          `db:"slug" json:"slug"`
	Excerpt     string          `db:"excerpt" json:"excerpt"`
	Content     ContentSections `db:"content" json:"content"`
	Image       *string         `db:"image" json:"image,omitempty"`
	Author      string          `db:"author" json:"author"`
	AuthorBio   *string         `db:"author_bio" json:"author_bio,omitempty"`
	AuthorImage *string         `db:"author_image" json:"author_image,omitempty"`
	PublishedAt time.Time       `db:"published_at" json:"published_at"`
	Tags        StringList      `db:"tags" json:"tags"`
	Status      string          `db:"status" json:"status"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}
