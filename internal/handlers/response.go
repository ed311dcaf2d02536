package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/techlinker/internal/logger"
	"github.com/sbilibin2017/techlinker/internal/middlewares"
	"github.com/sbilibin2017/techlinker/internal/services"
)

var validate = validator.New()

// ErrorResponse is the body of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// MessageResponse is a plain acknowledgement.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// errorStatus maps service errors onto HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrSkillNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrUserAlreadyExists),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrPasswordRequired),
		errors.Is(err, services.ErrInvalidUserType),
		errors.Is(err, services.ErrInvalidToken),
		errors.Is(err, services.ErrNoFieldsToUpdate),
		errors.Is(err, services.ErrInvalidAvailability),
		errors.Is(err, services.ErrInvalidHourlyRate),
		errors.Is(err, services.ErrSkillNameRequired),
		errors.Is(err, services.ErrInvalidProficiency):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrUploadsDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeServiceError answers with the status for err. Internal errors are
// logged and their text is not exposed.
func writeServiceError(w http.ResponseWriter, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, status, "Internal server error")
		return
	}
	writeError(w, status, err.Error())
}

// decodeJSON reads the body into dst and runs its validate tags.
// On failure it writes a 400 and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed on '%s'", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}

// ownerID returns the {id} path parameter after checking that it names the
// authenticated user.
func ownerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return uuid.Nil, false
	}

	authID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token required")
		return uuid.Nil, false
	}
	if authID != id {
		logger.Log.Warnw("access to another user's resource denied", "user_id", authID, "target_id", id)
		writeError(w, http.StatusForbidden, "Access denied")
		return uuid.Nil, false
	}
	return id, true
}
