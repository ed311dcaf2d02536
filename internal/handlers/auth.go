package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/techlinker/internal/models"
	"github.com/sbilibin2017/techlinker/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, fullname, email, password string, userType models.UserType) (*services.Session, error)
}

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*services.Session, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Full name
	// required: true
	// default: Jane Doe
	Fullname string `json:"fullname" validate:"required"`

	// Email address
	// required: true
	// default: jane@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`

	// talent or employer, talent when empty
	// default: talent
	UserType string `json:"user_type" validate:"omitempty,oneof=talent employer"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email address
	// required: true
	// default: jane@example.com
	Email string `json:"email" validate:"required"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// UserSummary is the user block returned on register and login.
// swagger:model UserSummary
type UserSummary struct {
	ID               uuid.UUID       `json:"id"`
	Fullname         string          `json:"fullname"`
	Email            string          `json:"email"`
	UserType         models.UserType `json:"user_type"`
	EmailVerified    bool            `json:"email_verified"`
	ProfileCompleted bool            `json:"profile_completed"`
	NeedsOnboarding  bool            `json:"needs_onboarding"`
}

// AuthResponse represents a successful register or login response
// swagger:model AuthResponse
type AuthResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserSummary `json:"user"`
}

func newUserSummary(u *models.User) UserSummary {
	return UserSummary{
		ID:               u.ID,
		Fullname:         u.Fullname,
		Email:            u.Email,
		UserType:         u.UserType,
		EmailVerified:    u.EmailVerified,
		ProfileCompleted: u.ProfileCompleted,
		NeedsOnboarding:  u.NeedsOnboarding(),
	}
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates the account, sends a verification email and returns a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "Register Request"
// @Success 201 {object} handlers.AuthResponse "User registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input or email already used"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		session, err := svc.Register(r.Context(), req.Fullname, req.Email, req.Password, models.UserType(req.UserType))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{
			Message: "User created successfully. Please verify your email.",
			Token:   session.Token,
			User:    newUserSummary(session.User),
		})
	}
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.AuthResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid email or password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		session, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{
			Message: "Login successful",
			Token:   session.Token,
			User:    newUserSummary(session.User),
		})
	}
}
