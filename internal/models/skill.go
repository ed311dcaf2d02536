package models

import (
	"time"

	"github.com/google/uuid"
)

// Proficiency is the self-assessed level for a user skill.
type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

// Skill is a globally unique named capability.
type Skill struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Category  *string   `json:"category" db:"category"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UserSkill is a skill attached to a user with proficiency details.
type UserSkill struct {
	SkillID         uuid.UUID   `json:"skill_id" db:"skill_id"`
	Name            string      `json:"name" db:"name"`
	Category        *string     `json:"category" db:"category"`
	Proficiency     Proficiency `json:"proficiency" db:"proficiency"`
	ExperienceYears int         `json:"experience_years" db:"experience_years"`
}

// SkillInput describes a skill to attach to a user.
// Empty Proficiency falls back to intermediate.
type SkillInput struct {
	Name            string
	Category        *string
	Proficiency     Proficiency
	ExperienceYears int
}
