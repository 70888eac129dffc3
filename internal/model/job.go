package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

const (
	JobStatusActive   = "Active"
	JobStatusInactive = "Inactive"
	JobStatusClosed   = "Closed"
	JobStatusDraft    = "Draft"
)

var (
	JobStatuses = []string{JobStatusActive, JobStatusInactive, JobStatusClosed, JobStatusDraft}
	JobTypes    = []string{"Full Time", "Part Time", "Contract", "Internship", "Freelance"}
)

// KeyResponsibility groups responsibility items under a category heading.
type KeyResponsibility struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

type KeyResponsibilities []KeyResponsibility

func (k KeyResponsibilities) Value() (driver.Value, error) {
	if k == nil {
		return jsonbValue([]KeyResponsibility{})
	}
	return jsonbValue([]KeyResponsibility(k))
}

func (k *KeyResponsibilities) Scan(src any) error {
	return jsonbScan(k, src)
}

// JobOpening is keyed by the business job_id (e.g. "JD-0028") in addition to
// the storage id. job_id uniqueness is enforced by the database.
type JobOpening struct {
	ID                  uuid.UUID           `db:"id" json:"id"`
	JobID               string              `db:"job_id" json:"job_id"`
	Title               string              `db:"title" json:"title"`
	Company             string              `db:"company" json:"company"`
	Location            string              `db:"location" json:"location"`
	Type                string              `db:"type" json:"type"`
	PostedDate          string              `db:"posted_date" json:"posted_date"`
	Description         string              `db:"description" json:"description"`
	Overview            string              `db:"overview" json:"overview"`
	KeyResponsibilities KeyResponsibilities `db:"key_responsibilities" json:"key_responsibilities"`
	Qualifications      StringList          `db:"qualifications" json:"qualifications"`
	Remuneration        string              `db:"remuneration" json:"remuneration"`
	WhyJoinUs           string              `db:"why_join_us" json:"why_join_us"`
	Status              string              `db:"status" json:"status"`
	CreatedAt           time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time           `db:"updated_at" json:"updated_at"`
}

type JobStats struct {
	TotalJobs        int            `json:"total_jobs"`
	ActiveJobs       int            `json:"active_jobs"`
	InactiveJobs     int            `json:"inactive_jobs"`
	ClosedJobs       int            `json:"closed_jobs"`
	DraftJobs        int            `json:"draft_jobs"`
	TypeBreakdown    map[string]int `json:"type_breakdown"`
	CompanyBreakdown map[string]int `json:"company_breakdown"`
}
