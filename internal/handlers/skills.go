package handlers

//go:generate mockgen -source=skills.go -destination=skills_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/techlinker/internal/models"
)

// SkillAdder attaches a skill to a user.
type SkillAdder interface {
	AddSkill(ctx context.Context, userID uuid.UUID, in models.SkillInput) (bool, error)
}

// SkillRemover detaches a skill from a user.
type SkillRemover interface {
	RemoveSkill(ctx context.Context, userID, skillID uuid.UUID) error
}

// SkillLister returns the skill catalog.
type SkillLister interface {
	ListSkills(ctx context.Context) ([]models.Skill, error)
}

// SkillRequest describes a skill to attach
// swagger:model SkillRequest
type SkillRequest struct {
	// required: true
	// default: Go
	Name string `json:"name" validate:"required"`

	Category *string `json:"category"`

	// beginner, intermediate, advanced or expert
	// default: intermediate
	Proficiency string `json:"proficiency" validate:"omitempty,oneof=beginner intermediate advanced expert"`

	ExperienceYears int `json:"experience_years" validate:"gte=0"`
}

func (req SkillRequest) input() models.SkillInput {
	return models.SkillInput{
		Name:            req.Name,
		Category:        req.Category,
		Proficiency:     models.Proficiency(req.Proficiency),
		ExperienceYears: req.ExperienceYears,
	}
}

// AddSkillResponse reports whether the skill was newly attached
// swagger:model AddSkillResponse
type AddSkillResponse struct {
	Message string `json:"message"`
	Added   bool   `json:"added"`
}

// NewAddSkillHandler returns an HTTP handler that attaches a skill to the caller.
// @Summary Add skill
// @Tags skills
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param skillRequest body handlers.SkillRequest true "Skill"
// @Success 200 {object} handlers.AddSkillResponse "Skill attached or already present"
// @Failure 400 {object} handlers.ErrorResponse "Invalid skill"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile/{id}/skills [post]
// @Security BearerAuth
func NewAddSkillHandler(svc SkillAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerID(w, r)
		if !ok {
			return
		}

		var req SkillRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		added, err := svc.AddSkill(r.Context(), userID, req.input())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		msg := "Skill added successfully"
		if !added {
			msg = "Skill already added"
		}
		writeJSON(w, http.StatusOK, AddSkillResponse{Message: msg, Added: added})
	}
}

// NewRemoveSkillHandler returns an HTTP handler that detaches a skill from the caller.
// @Summary Remove skill
// @Tags skills
// @Produce json
// @Param id path string true "User ID"
// @Param skillId path string true "Skill ID"
// @Success 200 {object} handlers.MessageResponse "Skill removed"
// @Failure 400 {object} handlers.ErrorResponse "Invalid skill id"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "Skill not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile/{id}/skills/{skillId} [delete]
// @Security BearerAuth
func NewRemoveSkillHandler(svc SkillRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerID(w, r)
		if !ok {
			return
		}

		skillID, err := uuid.Parse(chi.URLParam(r, "skillId"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid skill id")
			return
		}

		if err := svc.RemoveSkill(r.Context(), userID, skillID); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Skill removed successfully"})
	}
}

// NewListSkillsHandler returns an HTTP handler listing the skill catalog.
// @Summary List skills
// @Tags skills
// @Produce json
// @Success 200 {array} models.Skill "Skills ordered by name"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /skills [get]
func NewListSkillsHandler(svc SkillLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := svc.ListSkills(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if skills == nil {
			skills = []models.Skill{}
		}
		writeJSON(w, http.StatusOK, skills)
	}
}
