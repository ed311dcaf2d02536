package handlers

//go:generate mockgen -source=password.go -destination=password_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// PasswordForgetter starts the password reset flow.
type PasswordForgetter interface {
	ForgotPassword(ctx context.Context, email string) error
}

// ResetTokenVerifier checks reset tokens without consuming them.
type ResetTokenVerifier interface {
	VerifyResetToken(ctx context.Context, token string) (uuid.UUID, error)
}

// PasswordResetter consumes reset tokens.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// ResetPasswordRequest represents the JSON body for a password reset
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// required: true
	Token string `json:"token" validate:"required"`

	// required: true
	// default: newsecret123
	Password string `json:"password" validate:"required"`
}

// VerifyResetTokenResponse reports that a reset token is usable
// swagger:model VerifyResetTokenResponse
type VerifyResetTokenResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

const forgotPasswordMessage = "If an account with that email exists, a password reset link has been sent."

// NewForgotPasswordHandler returns an HTTP handler that emails a reset link.
// The response does not reveal whether the email is registered.
// @Summary Forgot password
// @Tags auth
// @Accept json
// @Produce json
// @Param emailRequest body handlers.EmailRequest true "Email"
// @Success 200 {object} handlers.MessageResponse "Request accepted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/forgot-password [post]
func NewForgotPasswordHandler(svc PasswordForgetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EmailRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.ForgotPassword(r.Context(), req.Email); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: forgotPasswordMessage})
	}
}

// NewVerifyResetTokenHandler returns an HTTP handler that checks a reset token.
// @Summary Verify reset token
// @Tags auth
// @Produce json
// @Param token query string true "Reset token"
// @Success 200 {object} handlers.VerifyResetTokenResponse "Token is valid"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/verify-reset-token [get]
func NewVerifyResetTokenHandler(svc ResetTokenVerifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			writeError(w, http.StatusBadRequest, "token is required")
			return
		}

		if _, err := svc.VerifyResetToken(r.Context(), token); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, VerifyResetTokenResponse{Valid: true, Message: "Token is valid"})
	}
}

// NewResetPasswordHandler returns an HTTP handler that sets a new password.
// @Summary Reset password
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Token and new password"
// @Success 200 {object} handlers.MessageResponse "Password reset"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password has been reset successfully"})
	}
}
