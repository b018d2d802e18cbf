package model

import (
	"time"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/types"
)

// Person represents a team member profile. The VisibleInTeam flag soft-hides
// a person from assignment pickers without deleting the record.
type Person struct {
	ID            types.PersonID `json:"id"`
	FullName      string         `json:"full_name"`
	Role          string         `json:"role"`
	Email         string         `json:"email"`
	AvatarURL     string         `json:"avatar_url"`
	VisibleInTeam bool           `json:"visible_in_team"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Credential holds the auth principal for a person, keyed by email.
// PasswordHash is a bcrypt hash and never leaves the repository layer.
type Credential struct {
	Email        string
	PasswordHash string
	PersonID     types.PersonID
	CreatedAt    time.Time
}
