package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	ApplicationStatusPending     = "Pending"
	ApplicationStatusUnderReview = "Under Review"
	ApplicationStatusShortlisted = "Shortlisted"
	ApplicationStatusRejected    = "Rejected"
	ApplicationStatusHired       = "Hired"
)

var ApplicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusUnderReview,
	ApplicationStatusShortlisted,
	ApplicationStatusRejected,
	ApplicationStatusHired,
}

// JobApplication references an opening by its business job_id, not the storage
// id. The CV is kept inline as a base64 payload. An applicant email may apply
// at most once per selected job; the database enforces the pair.
type JobApplication struct {
	ID              uuid.UUID `db:"id" json:"id"`
	FirstName       string    `db:"first_name" json:"first_name"`
	LastName        string    `db:"last_name" json:"last_name"`
	Email           string    `db:"email" json:"email"`
	Phone           string    `db:"phone" json:"phone"`
	Address         string    `db:"address" json:"address"`
	City            string    `db:"city" json:"city"`
	State           string    `db:"state" json:"state"`
	Country         string    `db:"country" json:"country"`
	Qualification   string    `db:"qualification" json:"qualification"`
	ExperienceYears string    `db:"experience_years" json:"experience_years"`
	CurrentCompany  *string   `db:"current_company" json:"current_company,omitempty"`
	SelectedJobID   *string   `db:"selected_job_id" json:"selected_job_id,omitempty"`
	CVFileName      *string   `db:"cv_file_name" json:"cv_file_name,omitempty"`
	CVContent       *string   `db:"cv_content" json:"cv_content,omitempty"`
	CVSize          *int64    `db:"cv_size" json:"cv_size,omitempty"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
