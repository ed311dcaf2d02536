package handlers

//go:generate mockgen -source=verification.go -destination=verification_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/techlinker/internal/models"
	"github.com/sbilibin2017/techlinker/internal/services"
)

// VerificationSender issues verification emails.
type VerificationSender interface {
	SendVerification(ctx context.Context, email string) (*services.VerificationDispatch, error)
}

// EmailVerifier consumes verification tokens.
type EmailVerifier interface {
	VerifyEmail(ctx context.Context, token string) (*models.User, error)
}

// VerificationStatusGetter reads a user's verification flag.
type VerificationStatusGetter interface {
	VerificationStatus(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// EmailRequest carries a single email address.
// swagger:model EmailRequest
type EmailRequest struct {
	// required: true
	// default: jane@example.com
	Email string `json:"email" validate:"required"`
}

// TokenRequest carries a single token.
// swagger:model TokenRequest
type TokenRequest struct {
	// required: true
	Token string `json:"token" validate:"required"`
}

// VerificationDebug exposes the token outside production.
// swagger:model VerificationDebug
type VerificationDebug struct {
	Token            string `json:"token"`
	VerificationLink string `json:"verificationLink"`
}

// SendVerificationResponse represents a send-verification result
// swagger:model SendVerificationResponse
type SendVerificationResponse struct {
	Message         string             `json:"message"`
	AlreadyVerified bool               `json:"already_verified"`
	Debug           *VerificationDebug `json:"debug,omitempty"`
}

// VerifiedUser is the user block returned after verification.
// swagger:model VerifiedUser
type VerifiedUser struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Fullname      string    `json:"fullname"`
	EmailVerified bool      `json:"email_verified"`
}

// VerifyEmailResponse represents a successful verification
// swagger:model VerifyEmailResponse
type VerifyEmailResponse struct {
	Message string       `json:"message"`
	User    VerifiedUser `json:"user"`
}

// VerificationStatusResponse reports whether a user's email is verified
// swagger:model VerificationStatusResponse
type VerificationStatusResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
}

// NewSendVerificationHandler returns an HTTP handler that (re)sends the verification email.
// @Summary Send verification email
// @Description Issues a new verification token. Earlier tokens stop working.
// @Tags auth
// @Accept json
// @Produce json
// @Param emailRequest body handlers.EmailRequest true "Email"
// @Success 200 {object} handlers.SendVerificationResponse "Email sent or already verified"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/send-verification [post]
func NewSendVerificationHandler(svc VerificationSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EmailRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		dispatch, err := svc.SendVerification(r.Context(), req.Email)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		if dispatch.AlreadyVerified {
			writeJSON(w, http.StatusOK, SendVerificationResponse{
				Message:         "Email is already verified",
				AlreadyVerified: true,
			})
			return
		}

		resp := SendVerificationResponse{Message: "Verification email sent successfully"}
		if dispatch.Token != "" {
			resp.Debug = &VerificationDebug{
				Token:            dispatch.Token,
				VerificationLink: dispatch.Link,
			}
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewVerifyEmailHandler returns an HTTP handler that consumes a verification token.
// @Summary Verify email
// @Tags auth
// @Accept json
// @Produce json
// @Param tokenRequest body handlers.TokenRequest true "Verification token"
// @Success 200 {object} handlers.VerifyEmailResponse "Email verified"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/verify-email [post]
func NewVerifyEmailHandler(svc EmailVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TokenRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := svc.VerifyEmail(r.Context(), req.Token)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, VerifyEmailResponse{
			Message: "Email verified successfully!",
			User: VerifiedUser{
				ID:            user.ID,
				Email:         user.Email,
				Fullname:      user.Fullname,
				EmailVerified: user.EmailVerified,
			},
		})
	}
}

// NewVerificationStatusHandler returns an HTTP handler reporting a user's verification flag.
// @Summary Verification status
// @Tags auth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.VerificationStatusResponse "Verification status"
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/verification-status/{id} [get]
func NewVerificationStatusHandler(svc VerificationStatusGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		user, err := svc.VerificationStatus(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, VerificationStatusResponse{
			ID:            user.ID,
			Email:         user.Email,
			EmailVerified: user.EmailVerified,
		})
	}
}
