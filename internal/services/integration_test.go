package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/techlinker/internal/jwt"
	"github.com/sbilibin2017/techlinker/internal/migrations"
	"github.com/sbilibin2017/techlinker/internal/models"
	"github.com/sbilibin2017/techlinker/internal/repositories"
	"github.com/sbilibin2017/techlinker/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type stack struct {
	db         *sqlx.DB
	tokens     *services.TokenService
	auth       *services.AuthService
	onboarding *services.OnboardingService
	profile    *services.ProfileService
}

func setupStack(t *testing.T) *stack {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForListeningPort("5432/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")
	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	require.NoError(t, migrations.Up(ctx, db.DB))

	t.Cleanup(func() {
		db.Close()
		container.Terminate(context.Background())
	})

	ctrl := gomock.NewController(t)
	mailer := services.NewMockMailer(ctrl)
	mailer.EXPECT().SendVerificationEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mailer.EXPECT().SendPasswordResetEmail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	transactor := repositories.NewTransactor(db)
	userReader := repositories.NewUserReadRepository(db)
	userWriter := repositories.NewUserWriteRepository(db, repositories.GetTxFromContext)
	tokenRepo := repositories.NewTokenRepository(db, repositories.GetTxFromContext)
	skillReader := repositories.NewSkillReadRepository(db)
	skillWriter := repositories.NewSkillWriteRepository(db, repositories.GetTxFromContext)
	events := services.NewKafkaEventPublisher(nil)

	tokens := services.NewTokenService(transactor, tokenRepo, userWriter)
	return &stack{
		db:     db,
		tokens: tokens,
		auth: services.NewAuthService(transactor, userReader, userWriter, tokens,
			jwt.New(jwt.WithSecretKey("it-secret")), mailer, events,
			services.WithAsync(func(fn func()) { fn() })),
		onboarding: services.NewOnboardingService(userReader, userWriter, skillReader, skillWriter, nil, events),
		profile:    services.NewProfileService(userReader, userWriter, skillReader, skillWriter, nil, nil),
	}
}

func TestIntegration_TokenLifecycleAndOnboarding(t *testing.T) {
	s := setupStack(t)
	ctx := context.Background()

	session, err := s.auth.Register(ctx, "Alice", "alice@x.com", "pw123", models.UserTypeTalent)
	require.NoError(t, err)
	userID := session.User.ID
	assert.False(t, session.User.EmailVerified)
	assert.NotEmpty(t, session.Token)

	t.Run("login with registered credentials", func(t *testing.T) {
		got, err := s.auth.Login(ctx, "alice@x.com", "pw123")
		require.NoError(t, err)
		assert.Equal(t, userID, got.User.ID)

		_, err = s.auth.Login(ctx, "alice@x.com", "wrong")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)

		_, err = s.auth.Login(ctx, "nobody@x.com", "pw123")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("reissue invalidates the previous verification token", func(t *testing.T) {
		a, err := s.tokens.Issue(ctx, userID, models.TokenKindVerification)
		require.NoError(t, err)
		b, err := s.tokens.Issue(ctx, userID, models.TokenKindVerification)
		require.NoError(t, err)

		_, err = s.tokens.Validate(ctx, a, models.TokenKindVerification)
		assert.ErrorIs(t, err, services.ErrInvalidToken)

		owner, err := s.tokens.Validate(ctx, b, models.TokenKindVerification)
		assert.NoError(t, err)
		assert.Equal(t, userID, owner)
	})

	t.Run("expired token fails", func(t *testing.T) {
		past := services.NewTokenService(repositories.NewTransactor(s.db),
			repositories.NewTokenRepository(s.db, repositories.GetTxFromContext),
			repositories.NewUserWriteRepository(s.db, repositories.GetTxFromContext),
			services.WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }))

		stale, err := past.Issue(ctx, userID, models.TokenKindPasswordReset)
		require.NoError(t, err)

		_, err = s.auth.VerifyResetToken(ctx, stale)
		assert.ErrorIs(t, err, services.ErrInvalidToken)
		assert.ErrorIs(t, s.auth.ResetPassword(ctx, stale, "newpw"), services.ErrInvalidToken)
	})

	t.Run("verify email once then profile shows verified", func(t *testing.T) {
		token, err := s.tokens.Issue(ctx, userID, models.TokenKindVerification)
		require.NoError(t, err)

		user, err := s.auth.VerifyEmail(ctx, token)
		require.NoError(t, err)
		assert.True(t, user.EmailVerified)

		_, err = s.auth.VerifyEmail(ctx, token)
		assert.ErrorIs(t, err, services.ErrInvalidToken)

		profile, err := s.profile.GetProfile(ctx, userID)
		require.NoError(t, err)
		assert.True(t, profile.EmailVerified)
	})

	t.Run("password reset consumes once", func(t *testing.T) {
		require.NoError(t, s.auth.ForgotPassword(ctx, "alice@x.com"))

		var token string
		require.NoError(t, s.db.Get(&token, "SELECT token FROM password_reset_tokens WHERE user_id = $1 AND used = FALSE AND expires_at > NOW() ORDER BY created_at DESC LIMIT 1", userID))

		require.NoError(t, s.auth.ResetPassword(ctx, token, "fresh-pw"))
		assert.ErrorIs(t, s.auth.ResetPassword(ctx, token, "again"), services.ErrInvalidToken)

		_, err := s.auth.Login(ctx, "alice@x.com", "fresh-pw")
		assert.NoError(t, err)
	})

	t.Run("zero field patch performs no write", func(t *testing.T) {
		before, err := s.profile.GetProfile(ctx, userID)
		require.NoError(t, err)

		_, err = s.profile.UpdateProfile(ctx, userID, models.ProfilePatch{})
		assert.ErrorIs(t, err, services.ErrNoFieldsToUpdate)

		after, err := s.profile.GetProfile(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
	})

	t.Run("duplicate skill in one submission yields one row", func(t *testing.T) {
		_, err := s.onboarding.SetSkills(ctx, userID, []models.SkillInput{{Name: "Go"}, {Name: "Go"}})
		require.NoError(t, err)

		var rows int
		require.NoError(t, s.db.Get(&rows, "SELECT COUNT(*) FROM user_skills us JOIN skills s ON s.id = us.skill_id WHERE us.user_id = $1 AND s.name = 'Go'", userID))
		assert.Equal(t, 1, rows)

		status, err := s.onboarding.GetStatus(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 1, status.SkillsCount)
	})

	t.Run("complete without prior steps", func(t *testing.T) {
		other, err := s.auth.Register(ctx, "Bob", "bob@x.com", "pw", models.UserTypeEmployer)
		require.NoError(t, err)

		user, err := s.onboarding.Complete(ctx, other.User.ID)
		require.NoError(t, err)
		assert.True(t, user.ProfileCompleted)
		assert.False(t, user.NeedsOnboarding())
	})
}
