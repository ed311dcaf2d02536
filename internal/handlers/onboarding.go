package handlers

//go:generate mockgen -source=onboarding.go -destination=onboarding_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/techlinker/internal/models"
)

// OnboardingManager drives the onboarding wizard.
type OnboardingManager interface {
	SetBasicInfo(ctx context.Context, userID uuid.UUID, info models.BasicInfo) (models.OnboardingStep, error)
	SetPersonalDetails(ctx context.Context, userID uuid.UUID, details models.PersonalDetails) (models.OnboardingStep, error)
	SetSkills(ctx context.Context, userID uuid.UUID, skills []models.SkillInput) (models.OnboardingStep, error)
	Complete(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetStatus(ctx context.Context, userID uuid.UUID) (*models.OnboardingStatus, error)
	GetData(ctx context.Context, userID uuid.UUID) (*models.OnboardingData, error)
}

// BasicInfoRequest is the basic_info step
// swagger:model BasicInfoRequest
type BasicInfoRequest struct {
	// required: true
	// default: talent
	UserType        string  `json:"user_type" validate:"required,oneof=talent employer"`
	Profession      *string `json:"profession"`
	Company         *string `json:"company"`
	JobTitle        *string `json:"job_title"`
	YearsExperience *int    `json:"years_experience" validate:"omitempty,gte=0"`
}

// PersonalDetailsRequest is the personal_details step
// swagger:model PersonalDetailsRequest
type PersonalDetailsRequest struct {
	Hobbies  *string `json:"hobbies"`
	AboutMe  *string `json:"about_me"`
	Goals    *string `json:"goals"`
	Location *string `json:"location"`
}

// SkillsRequest is the skills step
// swagger:model SkillsRequest
type SkillsRequest struct {
	Skills []SkillRequest `json:"skills" validate:"dive"`
}

// OnboardingStepResponse names the suggested next step
// swagger:model OnboardingStepResponse
type OnboardingStepResponse struct {
	Message  string                `json:"message"`
	NextStep models.OnboardingStep `json:"next_step"`
}

// CompleteOnboardingResponse carries the completed user
// swagger:model CompleteOnboardingResponse
type CompleteOnboardingResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// NewBasicInfoHandler returns an HTTP handler for the basic_info step.
// @Summary Save basic info
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param basicInfoRequest body handlers.BasicInfoRequest true "Basic info"
// @Success 200 {object} handlers.OnboardingStepResponse "Saved"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /onboarding/{id}/basic-info [post]
// @Security BearerAuth
func NewBasicInfoHandler(svc OnboardingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerID(w, r)
		if !ok {
			return
		}

		var req BasicInfoRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		next, err := svc.SetBasicInfo(r.Context(), userID, models.BasicInfo{
			UserType:        models.UserType(req.UserType),
			Profession:      req.Profession,
			Company:         req.Company,
			JobTitle:        req.JobTitle,
			YearsExperience: req.YearsExperience,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, OnboardingStepResponse{Message: "Basic info saved", NextStep: next})
	}
}

// NewPersonalDetailsHandler returns an HTTP handler for the personal_details step.
// @Summary Save personal details
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param personalDetailsRequest body handlers.PersonalDetailsRequest true "Personal details"
// @Success 200 {object} handlers.OnboardingStepResponse "Saved"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /onboarding/{id}/personal-details [post]
// @Security BearerAuth
func NewPersonalDetailsHandler(svc OnboardingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerID(w, r)
		if !ok {
			return
		}

		var req PersonalDetailsRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		next, err := svc.SetPersonalDetails(r.Context(), userID, models.PersonalDetails{
			Hobbies:  req.Hobbies,
			AboutMe:  req.AboutMe,
			Goals:    req.Goals,
			Location: req.Location,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, OnboardingStepResponse{Message: "Personal details saved", NextStep: next})
	}
}

// NewOnboardingSkillsHandler returns an HTTP handler for the skills step.
// @Summary Save skills
// @Tags onboarding
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param skillsRequest body handlers.SkillsRequest true "Skills"
// @Success 200 {object} handlers.OnboardingStepResponse "Saved"
// @Failure 400 {object} handlers.ErrorResponse "Invalid skill"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /onboarding/{id}/skills [post]
// @Security BearerAuth
func NewOnboardingSkillsHandler(svc OnboardingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerID(w, r)
		if !ok {
			return
		}

		var req SkillsRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		skills := make([]models.SkillInput, 0, len(req.Skills))
		for _, s := range req.Skills {
			skills = append(skills, s.input())
		}

		next, err := svc.SetSkills(r.Context(), userID, skills)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, OnboardingStepResponse{Message: "Skills saved", NextStep: next})
	}
}

// NewCompleteOnboardingHandler returns an HTTP handler that finishes onboarding.
// @Summary Complete onboarding
// @Tags onboarding
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.CompleteOnboardingResponse "Completed"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /onboarding/{id}/complete [post]
// @Security BearerAuth
func NewCompleteOnboardingHandler(svc OnboardingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerID(w, r)
		if !ok {
			return
		}

		user, err := svc.Complete(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, CompleteOnboardingResponse{Message: "Onboarding completed", User: user})
	}
}

// NewOnboardingStatusHandler returns an HTTP handler reporting onboarding progress.
// @Summary Onboarding status
// @Tags onboarding
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.OnboardingStatus "Status"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /onboarding/{id}/status [get]
// @Security BearerAuth
func NewOnboardingStatusHandler(svc OnboardingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerID(w, r)
		if !ok {
			return
		}

		status, err := svc.GetStatus(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, status)
	}
}

// NewOnboardingDataHandler returns an HTTP handler with everything the wizard collected.
// @Summary Onboarding data
// @Tags onboarding
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.OnboardingData "Data"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /onboarding/{id}/data [get]
// @Security BearerAuth
func NewOnboardingDataHandler(svc OnboardingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerID(w, r)
		if !ok {
			return
		}

		data, err := svc.GetData(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, data)
	}
}
