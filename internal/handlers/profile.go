package handlers

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/techlinker/internal/models"
	"github.com/sbilibin2017/techlinker/internal/services"
)

// ProfileGetter reads a profile with its skills.
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
}

// ProfileUpdater applies partial profile updates.
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.ProfilePatch) (int64, error)
}

// PictureUploader hands out presigned upload URLs.
type PictureUploader interface {
	CreatePictureUploadURL(ctx context.Context, userID uuid.UUID) (*services.PictureUpload, error)
}

// UpdateProfileRequest is a partial profile update. Omitted fields are left unchanged.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Fullname     *string  `json:"fullname" validate:"omitempty,min=1"`
	Bio          *string  `json:"bio"`
	Location     *string  `json:"location"`
	Website      *string  `json:"website"`
	GithubURL    *string  `json:"github_url"`
	LinkedinURL  *string  `json:"linkedin_url"`
	HourlyRate   *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
	Availability *string  `json:"availability" validate:"omitempty,oneof=available not_available part_time"`
}

func (req UpdateProfileRequest) patch() models.ProfilePatch {
	p := models.ProfilePatch{
		Fullname:    req.Fullname,
		Bio:         req.Bio,
		Location:    req.Location,
		Website:     req.Website,
		GithubURL:   req.GithubURL,
		LinkedinURL: req.LinkedinURL,
		HourlyRate:  req.HourlyRate,
	}
	if req.Availability != nil {
		a := models.Availability(*req.Availability)
		p.Availability = &a
	}
	return p
}

// UpdateProfileResponse represents a successful profile update
// swagger:model UpdateProfileResponse
type UpdateProfileResponse struct {
	Message      string `json:"message"`
	AffectedRows int64  `json:"affectedRows"`
}

// PictureUploadResponse carries a presigned PUT URL
// swagger:model PictureUploadResponse
type PictureUploadResponse struct {
	UploadURL string    `json:"upload_url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewGetProfileHandler returns an HTTP handler for reading the caller's profile.
// @Summary Get profile
// @Tags profile
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.Profile "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile/{id} [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerID(w, r)
		if !ok {
			return
		}

		profile, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewUpdateProfileHandler returns an HTTP handler for partial profile updates.
// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} handlers.UpdateProfileResponse "Profile updated"
// @Failure 400 {object} handlers.ErrorResponse "No fields to update"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile/{id} [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerID(w, r)
		if !ok {
			return
		}

		var req UpdateProfileRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		rows, err := svc.UpdateProfile(r.Context(), userID, req.patch())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, UpdateProfileResponse{
			Message:      "Profile updated successfully",
			AffectedRows: rows,
		})
	}
}

// NewPictureUploadHandler returns an HTTP handler that presigns a profile picture upload.
// @Summary Create profile picture upload URL
// @Tags profile
// @Produce json
// @Param id path string true "User ID"
// @Success 201 {object} handlers.PictureUploadResponse "Presigned URL"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Access denied"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 503 {object} handlers.ErrorResponse "Uploads not configured"
// @Router /profile/{id}/picture [post]
// @Security BearerAuth
func NewPictureUploadHandler(svc PictureUploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := ownerID(w, r)
		if !ok {
			return
		}

		upload, err := svc.CreatePictureUploadURL(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, PictureUploadResponse{
			UploadURL: upload.URL,
			Key:       upload.Key,
			ExpiresAt: upload.ExpiresAt,
		})
	}
}
