package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Phone        string    `db:"phone" json:"phone"`
	Role         string    `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Identity is the resolved caller of a request: either the configured
// superuser (never persisted) or a stored user. The superuser variant carries
// a synthetic User so response shaping stays uniform.
type Identity struct {
	Superuser bool
	User      *User
}

func (i Identity) IsAdmin() bool {
	if i.Superuser {
		return true
	}
	return i.User != nil && i.User.Role == RoleAdmin
}

func (i Identity) Email() string {
	if i.User == nil {
		return ""
	}
	return i.User.Email
}
