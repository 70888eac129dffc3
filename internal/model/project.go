package model

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

const (
	ProjectStatusCompleted  = "Completed"
	ProjectStatusInProgress = "In Progress"
	ProjectStatusPlanning   = "Planning"
	ProjectStatusOnHold     = "On Hold"
)

var ProjectStatuses = []string{
	ProjectStatusCompleted,
	ProjectStatusInProgress,
	ProjectStatusPlanning,
	ProjectStatusOnHold,
}

// ProjectDetail is a free-form (heading, description) block shown on the
// project page, kept in insertion order.
type ProjectDetail struct {
	Heading     string `json:"heading"`
	Description string `json:"description"`
}

type ProjectDetails []ProjectDetail

func (d ProjectDetails) Value() (driver.Value, error) {
	if d == nil {
		return jsonbValue([]ProjectDetail{})
	}
	return jsonbValue([]ProjectDetail(d))
}

func (d *ProjectDetails) Scan(src any) error {
	return jsonbScan(d, src)
}

type Project struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	Title       string         `db:"title" json:"title"`
	Location    string         `db:"location" json:"location"`
	Beds        string         `db:"beds" json:"beds"`
	Area        string         `db:"area" json:"area"`
	Client      string         `db:"client" json:"client"`
	Status      string         `db:"status" json:"status"`
	Description string         `db:"description" json:"description"`
	Features    StringList     `db:"features" json:"features"`
	Image       *string        `db:"image" json:"image,omitempty"`
	ImageName   *string        `db:"image_name" json:"image_name,omitempty"`
	Details     ProjectDetails `db:"details" json:"details"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

type ProjectStats struct {
	TotalProjects   int            `json:"total_projects"`
	StatusBreakdown map[string]int `json:"status_breakdown"`
	ClientBreakdown map[string]int `json:"client_breakdown"`
	TotalClients    int            `json:"total_clients"`
}
