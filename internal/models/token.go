package models

import (
	"time"

	"github.com/google/uuid"
)

// TokenKind selects the token table and lifecycle policy.
type TokenKind string

const (
	TokenKindVerification  TokenKind = "verification"
	TokenKindPasswordReset TokenKind = "password_reset"
)

// Token is a single-use credential owned by a user.
type Token struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	Used      bool      `db:"used"`
	CreatedAt time.Time `db:"created_at"`
}
