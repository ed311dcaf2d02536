package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/techlinker/internal/models"
	"github.com/sbilibin2017/techlinker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authFixture struct {
	tx     *services.MockTransactor
	reader *services.MockUserReader
	writer *services.MockUserWriter
	tokens *services.MockTokenManager
	jwt    *services.MockJWTGenerator
	mailer *services.MockMailer
	events *services.MockEventPublisher
	svc    *services.AuthService
}

func newAuthFixture(t *testing.T, opts ...services.AuthOption) *authFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &authFixture{
		tx:     services.NewMockTransactor(ctrl),
		reader: services.NewMockUserReader(ctrl),
		writer: services.NewMockUserWriter(ctrl),
		tokens: services.NewMockTokenManager(ctrl),
		jwt:    services.NewMockJWTGenerator(ctrl),
		mailer: services.NewMockMailer(ctrl),
		events: services.NewMockEventPublisher(ctrl),
	}
	passthroughTx(f.tx)

	opts = append([]services.AuthOption{
		services.WithFrontendURL("https://app.example.com/"),
		services.WithAsync(func(fn func()) { fn() }),
	}, opts...)
	f.svc = services.NewAuthService(f.tx, f.reader, f.writer, f.tokens, f.jwt, f.mailer, f.events, opts...)
	return f
}

func hashOf(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("creates user, token and session", func(t *testing.T) {
		f := newAuthFixture(t)
		user := &models.User{ID: uuid.New(), Fullname: "Alice", Email: "alice@x.com", UserType: models.UserTypeTalent}

		f.reader.EXPECT().GetByEmail(gomock.Any(), "alice@x.com").Return(nil, models.ErrNotFound)
		f.writer.EXPECT().
			Create(gomock.Any(), "Alice", "alice@x.com", gomock.Any(), models.UserTypeTalent).
			DoAndReturn(func(_ context.Context, _, _, hash string, _ models.UserType) (*models.User, error) {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw123")))
				return user, nil
			})
		f.tokens.EXPECT().Issue(gomock.Any(), user.ID, models.TokenKindVerification).Return("tok", nil)
		f.mailer.EXPECT().SendVerificationEmail(gomock.Any(), "alice@x.com", "Alice", "https://app.example.com/verify-email?token=tok").Return(nil)
		f.events.EXPECT().Publish(gomock.Any(), models.EventUserRegistered, user.ID)
		f.jwt.EXPECT().Generate(gomock.Any(), user.ID, "alice@x.com").Return("jwt", nil)

		session, err := f.svc.Register(context.Background(), " Alice ", "Alice@X.com", "pw123", "")
		require.NoError(t, err)
		assert.Equal(t, "jwt", session.Token)
		assert.False(t, session.User.EmailVerified)
		assert.True(t, session.User.NeedsOnboarding())
	})

	t.Run("email already registered", func(t *testing.T) {
		f := newAuthFixture(t)
		f.reader.EXPECT().GetByEmail(gomock.Any(), "bob@x.com").Return(&models.User{ID: uuid.New()}, nil)

		_, err := f.svc.Register(context.Background(), "Bob", "bob@x.com", "pw", models.UserTypeEmployer)
		assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
	})

	t.Run("lost race on unique email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.reader.EXPECT().GetByEmail(gomock.Any(), "bob@x.com").Return(nil, models.ErrNotFound)
		f.writer.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, models.ErrDuplicate)

		_, err := f.svc.Register(context.Background(), "Bob", "bob@x.com", "pw", models.UserTypeEmployer)
		assert.ErrorIs(t, err, services.ErrUserAlreadyExists)
	})

	t.Run("token failure rolls back registration", func(t *testing.T) {
		f := newAuthFixture(t)
		user := &models.User{ID: uuid.New(), Email: "eve@x.com"}
		f.reader.EXPECT().GetByEmail(gomock.Any(), "eve@x.com").Return(nil, models.ErrNotFound)
		f.writer.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(user, nil)
		f.tokens.EXPECT().Issue(gomock.Any(), user.ID, models.TokenKindVerification).Return("", errors.New("insert failed"))

		_, err := f.svc.Register(context.Background(), "Eve", "eve@x.com", "pw", models.UserTypeTalent)
		assert.EqualError(t, err, "insert failed")
	})

	t.Run("mail failure does not fail registration", func(t *testing.T) {
		f := newAuthFixture(t)
		user := &models.User{ID: uuid.New(), Email: "dan@x.com"}
		f.reader.EXPECT().GetByEmail(gomock.Any(), "dan@x.com").Return(nil, models.ErrNotFound)
		f.writer.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(user, nil)
		f.tokens.EXPECT().Issue(gomock.Any(), user.ID, models.TokenKindVerification).Return("tok", nil)
		f.mailer.EXPECT().SendVerificationEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))
		f.events.EXPECT().Publish(gomock.Any(), models.EventUserRegistered, user.ID)
		f.jwt.EXPECT().Generate(gomock.Any(), user.ID, "dan@x.com").Return("jwt", nil)

		_, err := f.svc.Register(context.Background(), "Dan", "dan@x.com", "pw", models.UserTypeTalent)
		assert.NoError(t, err)
	})

	validation := []struct {
		name     string
		email    string
		password string
		userType models.UserType
		wantErr  error
	}{
		{"bad email", "not-an-email", "pw", models.UserTypeTalent, services.ErrInvalidEmail},
		{"missing password", "a@x.com", "", models.UserTypeTalent, services.ErrPasswordRequired},
		{"unknown user type", "a@x.com", "pw", "admin", services.ErrInvalidUserType},
	}
	for _, tt := range validation {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			_, err := f.svc.Register(context.Background(), "A", tt.email, tt.password, tt.userType)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "alice@x.com", PasswordHash: hashOf(t, "pw123")}

	tests := []struct {
		name      string
		email     string
		password  string
		found     *models.User
		readerErr error
		wantErr   error
	}{
		{name: "success", email: "alice@x.com", password: "pw123", found: user},
		{name: "wrong password", email: "alice@x.com", password: "nope", found: user, wantErr: services.ErrInvalidCredentials},
		{name: "unknown email", email: "ghost@x.com", password: "pw123", readerErr: models.ErrNotFound, wantErr: services.ErrInvalidCredentials},
		{name: "store failure", email: "alice@x.com", password: "pw123", readerErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFixture(t)
			f.reader.EXPECT().GetByEmail(gomock.Any(), tt.email).Return(tt.found, tt.readerErr)
			if tt.wantErr == nil {
				f.jwt.EXPECT().Generate(gomock.Any(), user.ID, user.Email).Return("jwt", nil)
			}

			session, err := f.svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, session)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "jwt", session.Token)
			assert.Equal(t, user.ID, session.User.ID)
		})
	}
}

func TestAuthService_SendVerification(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.reader.EXPECT().GetByEmail(gomock.Any(), "ghost@x.com").Return(nil, models.ErrNotFound)

		_, err := f.svc.SendVerification(context.Background(), "ghost@x.com")
		assert.ErrorIs(t, err, services.ErrUserNotFound)
	})

	t.Run("already verified issues nothing", func(t *testing.T) {
		f := newAuthFixture(t)
		f.reader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(&models.User{ID: uuid.New(), EmailVerified: true}, nil)

		out, err := f.svc.SendVerification(context.Background(), "a@x.com")
		require.NoError(t, err)
		assert.True(t, out.AlreadyVerified)
	})

	t.Run("issues and mails, debug hidden", func(t *testing.T) {
		f := newAuthFixture(t)
		user := &models.User{ID: uuid.New(), Email: "a@x.com", Fullname: "A"}
		f.reader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(user, nil)
		f.tokens.EXPECT().Issue(gomock.Any(), user.ID, models.TokenKindVerification).Return("tok", nil)
		f.mailer.EXPECT().SendVerificationEmail(gomock.Any(), "a@x.com", "A", "https://app.example.com/verify-email?token=tok").Return(nil)

		out, err := f.svc.SendVerification(context.Background(), "a@x.com")
		require.NoError(t, err)
		assert.False(t, out.AlreadyVerified)
		assert.Empty(t, out.Token)
		assert.Empty(t, out.Link)
	})

	t.Run("debug mode exposes token", func(t *testing.T) {
		f := newAuthFixture(t, services.WithDebugTokens(true))
		user := &models.User{ID: uuid.New(), Email: "a@x.com"}
		f.reader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(user, nil)
		f.tokens.EXPECT().Issue(gomock.Any(), user.ID, models.TokenKindVerification).Return("tok", nil)
		f.mailer.EXPECT().SendVerificationEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		out, err := f.svc.SendVerification(context.Background(), "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "tok", out.Token)
		assert.Equal(t, "https://app.example.com/verify-email?token=tok", out.Link)
	})
}

func TestAuthService_VerifyEmail(t *testing.T) {
	userID := uuid.New()

	t.Run("consumes token and marks verified", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().
			Consume(gomock.Any(), "tok", models.TokenKindVerification, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, _ models.TokenKind, effect func(context.Context, uuid.UUID) error) (uuid.UUID, error) {
				return userID, effect(ctx, userID)
			})
		f.writer.EXPECT().SetEmailVerified(gomock.Any(), userID).Return(nil)
		f.events.EXPECT().Publish(gomock.Any(), models.EventEmailVerified, userID)
		f.reader.EXPECT().GetByID(gomock.Any(), userID).Return(&models.User{ID: userID, EmailVerified: true}, nil)

		user, err := f.svc.VerifyEmail(context.Background(), "tok")
		require.NoError(t, err)
		assert.True(t, user.EmailVerified)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Consume(gomock.Any(), "bad", models.TokenKindVerification, gomock.Any()).Return(uuid.Nil, services.ErrInvalidToken)

		_, err := f.svc.VerifyEmail(context.Background(), "bad")
		assert.ErrorIs(t, err, services.ErrInvalidToken)
	})
}

func TestAuthService_VerificationStatus(t *testing.T) {
	f := newAuthFixture(t)
	id := uuid.New()
	f.reader.EXPECT().GetByID(gomock.Any(), id).Return(nil, models.ErrNotFound)

	_, err := f.svc.VerificationStatus(context.Background(), id)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestAuthService_ForgotPassword(t *testing.T) {
	t.Run("unknown email looks like success", func(t *testing.T) {
		f := newAuthFixture(t)
		f.reader.EXPECT().GetByEmail(gomock.Any(), "ghost@x.com").Return(nil, models.ErrNotFound)

		assert.NoError(t, f.svc.ForgotPassword(context.Background(), "ghost@x.com"))
	})

	t.Run("known email gets a reset link", func(t *testing.T) {
		f := newAuthFixture(t)
		user := &models.User{ID: uuid.New(), Email: "a@x.com", Fullname: "A"}
		f.reader.EXPECT().GetByEmail(gomock.Any(), "a@x.com").Return(user, nil)
		f.tokens.EXPECT().Issue(gomock.Any(), user.ID, models.TokenKindPasswordReset).Return("rst", nil)
		f.mailer.EXPECT().SendPasswordResetEmail(gomock.Any(), "a@x.com", "A", "https://app.example.com/reset-password?token=rst").Return(nil)

		assert.NoError(t, f.svc.ForgotPassword(context.Background(), "a@x.com"))
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	userID := uuid.New()

	t.Run("replaces password hash", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().
			Consume(gomock.Any(), "rst", models.TokenKindPasswordReset, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, _ models.TokenKind, effect func(context.Context, uuid.UUID) error) (uuid.UUID, error) {
				return userID, effect(ctx, userID)
			})
		f.writer.EXPECT().
			SetPasswordHash(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass")))
				return nil
			})
		f.events.EXPECT().Publish(gomock.Any(), models.EventPasswordReset, userID)

		assert.NoError(t, f.svc.ResetPassword(context.Background(), "rst", "newpass"))
	})

	t.Run("empty password", func(t *testing.T) {
		f := newAuthFixture(t)
		assert.ErrorIs(t, f.svc.ResetPassword(context.Background(), "rst", ""), services.ErrPasswordRequired)
	})

	t.Run("reused token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.tokens.EXPECT().Consume(gomock.Any(), "rst", models.TokenKindPasswordReset, gomock.Any()).Return(uuid.Nil, services.ErrInvalidToken)

		assert.ErrorIs(t, f.svc.ResetPassword(context.Background(), "rst", "newpass"), services.ErrInvalidToken)
	})
}

func TestAuthService_VerifyResetToken(t *testing.T) {
	f := newAuthFixture(t)
	id := uuid.New()
	f.tokens.EXPECT().Validate(gomock.Any(), "rst", models.TokenKindPasswordReset).Return(id, nil)

	got, err := f.svc.VerifyResetToken(context.Background(), "rst")
	assert.NoError(t, err)
	assert.Equal(t, id, got)
}
