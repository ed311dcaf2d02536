package services

//go:generate mockgen -source=token.go -destination=token_mock.go -package=services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/techlinker/internal/logger"
	"github.com/sbilibin2017/techlinker/internal/models"
)

const tokenBytes = 32

var (
	// ErrInvalidToken covers missing, used and expired tokens alike.
	ErrInvalidToken     = errors.New("invalid or expired token")
	ErrUnknownTokenKind = errors.New("unknown token kind")
	ErrUserNotFound     = errors.New("user not found")
)

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// TokenStore persists single-use tokens per kind.
type TokenStore interface {
	Save(ctx context.Context, kind models.TokenKind, userID uuid.UUID, token string, expiresAt time.Time) error
	DeleteUnusedByUser(ctx context.Context, kind models.TokenKind, userID uuid.UUID) (int64, error)
	FindValid(ctx context.Context, kind models.TokenKind, token string, now time.Time) (*models.Token, error)
	MarkUsed(ctx context.Context, kind models.TokenKind, token string, now time.Time) (uuid.UUID, error)
}

// UserLocker serializes token issuance per user.
type UserLocker interface {
	LockByID(ctx context.Context, id uuid.UUID) error
}

// TokenPolicy is the lifecycle configuration of a token kind.
type TokenPolicy struct {
	TTL          time.Duration
	PurgeOnIssue bool
}

// DefaultTokenPolicies returns the built-in policies per kind.
func DefaultTokenPolicies() map[models.TokenKind]TokenPolicy {
	return map[models.TokenKind]TokenPolicy{
		models.TokenKindVerification:  {TTL: 24 * time.Hour, PurgeOnIssue: true},
		models.TokenKindPasswordReset: {TTL: time.Hour, PurgeOnIssue: false},
	}
}

// TokenService issues, validates and consumes single-use tokens.
type TokenService struct {
	tx       Transactor
	store    TokenStore
	locker   UserLocker
	policies map[models.TokenKind]TokenPolicy
	clock    func() time.Time
	random   io.Reader
}

type TokenOption func(*TokenService)

// WithTokenPolicy overrides the policy of a known kind.
func WithTokenPolicy(kind models.TokenKind, policy TokenPolicy) TokenOption {
	return func(s *TokenService) {
		if _, ok := s.policies[kind]; ok {
			s.policies[kind] = policy
		}
	}
}

// WithClock sets the time source used for both issuance and validation.
func WithClock(clock func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.clock = clock
	}
}

// WithRandom sets the entropy source for token values.
func WithRandom(r io.Reader) TokenOption {
	return func(s *TokenService) {
		s.random = r
	}
}

func NewTokenService(tx Transactor, store TokenStore, locker UserLocker, opts ...TokenOption) *TokenService {
	s := &TokenService{
		tx:       tx,
		store:    store,
		locker:   locker,
		policies: DefaultTokenPolicies(),
		clock:    time.Now,
		random:   rand.Reader,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TokenService) now() time.Time {
	return s.clock().UTC()
}

func (s *TokenService) policy(kind models.TokenKind) (TokenPolicy, error) {
	p, ok := s.policies[kind]
	if !ok {
		return TokenPolicy{}, fmt.Errorf("%w: %q", ErrUnknownTokenKind, kind)
	}
	return p, nil
}

func (s *TokenService) generate() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(s.random, buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Issue creates a new token of the given kind for the user. The user row is
// locked for the duration of the transaction so concurrent issues for the
// same user serialize.
func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID, kind models.TokenKind) (string, error) {
	policy, err := s.policy(kind)
	if err != nil {
		return "", err
	}

	token, err := s.generate()
	if err != nil {
		logger.Log.Errorw("failed to generate token", "kind", kind, "error", err)
		return "", err
	}
	expiresAt := s.now().Add(policy.TTL)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.locker.LockByID(ctx, userID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if policy.PurgeOnIssue {
			deleted, err := s.store.DeleteUnusedByUser(ctx, kind, userID)
			if err != nil {
				return err
			}
			if deleted > 0 {
				logger.Log.Infow("purged previous tokens", "kind", kind, "user_id", userID, "count", deleted)
			}
		}

		return s.store.Save(ctx, kind, userID, token, expiresAt)
	})
	if err != nil {
		logger.Log.Errorw("failed to issue token", "kind", kind, "user_id", userID, "error", err)
		return "", err
	}

	return token, nil
}

// Validate returns the owner of a token that is unused and unexpired now.
func (s *TokenService) Validate(ctx context.Context, token string, kind models.TokenKind) (uuid.UUID, error) {
	if _, err := s.policy(kind); err != nil {
		return uuid.Nil, err
	}
	if token == "" {
		return uuid.Nil, ErrInvalidToken
	}

	t, err := s.store.FindValid(ctx, kind, token, s.now())
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return uuid.Nil, ErrInvalidToken
		}
		logger.Log.Errorw("failed to validate token", "kind", kind, "error", err)
		return uuid.Nil, err
	}
	return t.UserID, nil
}

// Consume marks the token used and applies effect to its owner in one
// transaction. Either both persist or neither does.
func (s *TokenService) Consume(ctx context.Context, token string, kind models.TokenKind, effect func(ctx context.Context, userID uuid.UUID) error) (uuid.UUID, error) {
	if _, err := s.policy(kind); err != nil {
		return uuid.Nil, err
	}
	if token == "" {
		return uuid.Nil, ErrInvalidToken
	}

	var owner uuid.UUID
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		userID, err := s.store.MarkUsed(ctx, kind, token, s.now())
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return ErrInvalidToken
			}
			return err
		}

		if effect != nil {
			if err := effect(ctx, userID); err != nil {
				return err
			}
		}
		owner = userID
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInvalidToken) {
			logger.Log.Errorw("failed to consume token", "kind", kind, "error", err)
		}
		return uuid.Nil, err
	}

	return owner, nil
}
