package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sbilibin2017/techlinker/internal/logger"
	"github.com/sbilibin2017/techlinker/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordRequired   = errors.New("password is required")
	ErrInvalidUserType    = errors.New("user type must be talent or employer")
)

var validate = validator.New()

// UserReader looks users up.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserWriter creates users and changes their credentials.
type UserWriter interface {
	Create(ctx context.Context, fullname, email, passwordHash string, userType models.UserType) (*models.User, error)
	SetEmailVerified(ctx context.Context, id uuid.UUID) error
	SetPasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}

// TokenManager is the single-use token lifecycle.
type TokenManager interface {
	Issue(ctx context.Context, userID uuid.UUID, kind models.TokenKind) (string, error)
	Validate(ctx context.Context, token string, kind models.TokenKind) (uuid.UUID, error)
	Consume(ctx context.Context, token string, kind models.TokenKind, effect func(ctx context.Context, userID uuid.UUID) error) (uuid.UUID, error)
}

// JWTGenerator signs session tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// Mailer delivers account emails.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, to, name, link string) error
	SendPasswordResetEmail(ctx context.Context, to, name, link string) error
}

// EventPublisher announces user lifecycle events.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, userID uuid.UUID)
}

// Session is a signed-in user.
type Session struct {
	Token string
	User  *models.User
}

// VerificationDispatch is the outcome of a verification email request.
// Token and Link are only filled in debug mode.
type VerificationDispatch struct {
	AlreadyVerified bool
	Token           string
	Link            string
}

// AuthService handles registration, login, email verification and password reset.
type AuthService struct {
	tx          Transactor
	reader      UserReader
	writer      UserWriter
	tokens      TokenManager
	jwt         JWTGenerator
	mailer      Mailer
	events      EventPublisher
	frontendURL string
	debug       bool
	async       func(fn func())
}

type AuthOption func(*AuthService)

// WithFrontendURL sets the base URL used in emailed links.
func WithFrontendURL(u string) AuthOption {
	return func(s *AuthService) {
		s.frontendURL = strings.TrimRight(u, "/")
	}
}

// WithDebugTokens makes SendVerification return the issued token and link.
func WithDebugTokens(enabled bool) AuthOption {
	return func(s *AuthService) {
		s.debug = enabled
	}
}

// WithAsync sets how email delivery is dispatched. Defaults to a goroutine.
func WithAsync(async func(fn func())) AuthOption {
	return func(s *AuthService) {
		s.async = async
	}
}

func NewAuthService(
	tx Transactor,
	reader UserReader,
	writer UserWriter,
	tokens TokenManager,
	jwt JWTGenerator,
	mailer Mailer,
	events EventPublisher,
	opts ...AuthOption,
) *AuthService {
	s := &AuthService{
		tx:          tx,
		reader:      reader,
		writer:      writer,
		tokens:      tokens,
		jwt:         jwt,
		mailer:      mailer,
		events:      events,
		frontendURL: "http://localhost:3000",
		async:       func(fn func()) { go fn() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) link(path, token string) string {
	return s.frontendURL + path + "?token=" + url.QueryEscape(token)
}

// Register creates the user and its first verification token atomically,
// then emails the token and returns a session.
func (s *AuthService) Register(ctx context.Context, fullname, email, password string, userType models.UserType) (*Session, error) {
	email = normalizeEmail(email)
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, ErrInvalidEmail
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}
	if userType == "" {
		userType = models.UserTypeTalent
	}
	if userType != models.UserTypeTalent && userType != models.UserTypeEmployer {
		return nil, ErrInvalidUserType
	}

	if _, err := s.reader.GetByEmail(ctx, email); err == nil {
		logger.Log.Errorw("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, models.ErrNotFound) {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	var (
		user  *models.User
		token string
	)
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.writer.Create(ctx, strings.TrimSpace(fullname), email, string(hashedPassword), userType)
		if err != nil {
			return err
		}
		token, err = s.tokens.Issue(ctx, user.ID, models.TokenKindVerification)
		return err
	})
	if err != nil {
		if errors.Is(err, models.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to register user", "email", email, "err", err)
		return nil, err
	}

	s.sendVerification(user, token)
	s.events.Publish(ctx, models.EventUserRegistered, user.ID)

	jwtToken, err := s.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}

	return &Session{Token: jwtToken, User: user}, nil
}

// Login checks the credentials. Unknown emails and wrong passwords are
// reported identically.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	email = normalizeEmail(email)

	user, err := s.reader.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			logger.Log.Infow("login for unknown email")
			return nil, ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(ctx, user.ID, user.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}

	return &Session{Token: token, User: user}, nil
}

// SendVerification issues a fresh verification token and emails it.
// Previous unconsumed verification tokens stop working.
func (s *AuthService) SendVerification(ctx context.Context, email string) (*VerificationDispatch, error) {
	user, err := s.reader.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}

	if user.EmailVerified {
		return &VerificationDispatch{AlreadyVerified: true}, nil
	}

	token, err := s.tokens.Issue(ctx, user.ID, models.TokenKindVerification)
	if err != nil {
		return nil, err
	}
	s.sendVerification(user, token)

	out := &VerificationDispatch{}
	if s.debug {
		out.Token = token
		out.Link = s.link("/verify-email", token)
	}
	return out, nil
}

// VerifyEmail consumes a verification token and marks its owner verified.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokens.Consume(ctx, token, models.TokenKindVerification, func(ctx context.Context, userID uuid.UUID) error {
		return s.writer.SetEmailVerified(ctx, userID)
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, models.EventEmailVerified, userID)

	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load verified user", "user_id", userID, "err", err)
		return nil, err
	}
	return user, nil
}

// VerificationStatus returns the user whose verification flag is asked for.
func (s *AuthService) VerificationStatus(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.reader.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ForgotPassword emails a reset link when the address belongs to a user.
// The caller cannot tell whether it did.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.reader.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			logger.Log.Infow("password reset requested for unknown email")
			return nil
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}

	token, err := s.tokens.Issue(ctx, user.ID, models.TokenKindPasswordReset)
	if err != nil {
		return err
	}

	link := s.link("/reset-password", token)
	s.async(func() {
		if err := s.mailer.SendPasswordResetEmail(context.Background(), user.Email, user.Fullname, link); err != nil {
			logger.Log.Errorw("failed to send password reset email", "user_id", user.ID, "err", err)
		}
	})
	return nil
}

// VerifyResetToken reports whether a reset token is currently usable.
func (s *AuthService) VerifyResetToken(ctx context.Context, token string) (uuid.UUID, error) {
	return s.tokens.Validate(ctx, token, models.TokenKindPasswordReset)
}

// ResetPassword consumes a reset token and replaces its owner's password.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if newPassword == "" {
		return ErrPasswordRequired
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	userID, err := s.tokens.Consume(ctx, token, models.TokenKindPasswordReset, func(ctx context.Context, userID uuid.UUID) error {
		return s.writer.SetPasswordHash(ctx, userID, string(hashedPassword))
	})
	if err != nil {
		return err
	}

	s.events.Publish(ctx, models.EventPasswordReset, userID)
	return nil
}

func (s *AuthService) sendVerification(user *models.User, token string) {
	link := s.link("/verify-email", token)
	s.async(func() {
		if err := s.mailer.SendVerificationEmail(context.Background(), user.Email, user.Fullname, link); err != nil {
			logger.Log.Errorw("failed to send verification email", "user_id", user.ID, "err", err)
		}
	})
}
