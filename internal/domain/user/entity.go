package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"full_name"`
	Role         string    `json:"role"`

	Phone           string `json:"phone,omitempty"`
	Company         string `json:"company,omitempty"`
	Position        string `json:"position,omitempty"`
	ExperienceYears *int   `json:"experience_years,omitempty"`
	Skills          string `json:"skills,omitempty"`
	Bio             string `json:"bio,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProfileUpdate carries the editable profile fields. Nil pointers
// leave the stored value untouched.
type ProfileUpdate struct {
	Phone           *string
	Company         *string
	Position        *string
	ExperienceYears *int
	Skills          *string
	Bio             *string
}

// CandidateSummary is one row of the recruiter dashboard candidate list.
type CandidateSummary struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Company         string    `json:"company,omitempty"`
	Position        string    `json:"position,omitempty"`
	ExperienceYears *int      `json:"experience_years,omitempty"`
	BestScore       *int      `json:"best_score,omitempty"`
	TotalInterviews int       `json:"total_interviews"`
	CreatedAt       time.Time `json:"created_at"`
}
