package models

import (
	"time"

	"github.com/google/uuid"
)

// UserType is the role a user signs up with.
type UserType string

const (
	UserTypeTalent   UserType = "talent"
	UserTypeEmployer UserType = "employer"
)

// Availability describes whether a talent is open for work.
type Availability string

const (
	AvailabilityAvailable    Availability = "available"
	AvailabilityNotAvailable Availability = "not_available"
	AvailabilityPartTime     Availability = "part_time"
)

// User represents a row of the users table.
type User struct {
	ID               uuid.UUID `json:"id" db:"id"`
	Fullname         string    `json:"fullname" db:"fullname"`
	Email            string    `json:"email" db:"email"`
	PasswordHash     string    `json:"-" db:"password_hash"`
	UserType         UserType  `json:"user_type" db:"user_type"`
	EmailVerified    bool      `json:"email_verified" db:"email_verified"`
	ProfileCompleted bool      `json:"profile_completed" db:"profile_completed"`

	// Onboarding fields
	Profession      *string `json:"profession" db:"profession"`
	Company         *string `json:"company" db:"company"`
	JobTitle        *string `json:"job_title" db:"job_title"`
	YearsExperience *int    `json:"years_experience" db:"years_experience"`
	Hobbies         *string `json:"hobbies" db:"hobbies"`
	AboutMe         *string `json:"about_me" db:"about_me"`
	Goals           *string `json:"goals" db:"goals"`

	// Public profile fields
	Bio            *string       `json:"bio" db:"bio"`
	Location       *string       `json:"location" db:"location"`
	Website        *string       `json:"website" db:"website"`
	GithubURL      *string       `json:"github_url" db:"github_url"`
	LinkedinURL    *string       `json:"linkedin_url" db:"linkedin_url"`
	ProfilePicture *string       `json:"profile_picture" db:"profile_picture"`
	HourlyRate     *float64      `json:"hourly_rate" db:"hourly_rate"`
	Availability   *Availability `json:"availability" db:"availability"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NeedsOnboarding reports whether the onboarding wizard should be shown.
func (u *User) NeedsOnboarding() bool {
	return !u.ProfileCompleted
}
