package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/techlinker/internal/models"
)

// tokenTables is the allowlist of token kinds and their tables.
var tokenTables = map[models.TokenKind]string{
	models.TokenKindVerification:  "email_verification_tokens",
	models.TokenKindPasswordReset: "password_reset_tokens",
}

func tokenTable(kind models.TokenKind) (string, error) {
	table, ok := tokenTables[kind]
	if !ok {
		return "", fmt.Errorf("unknown token kind %q", kind)
	}
	return table, nil
}

// TokenRepository stores verification and password reset tokens.
type TokenRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTokenRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TokenRepository {
	return &TokenRepository{db: db, txGetter: txGetter}
}

// Save inserts a new unused token.
func (r *TokenRepository) Save(ctx context.Context, kind models.TokenKind, userID uuid.UUID, token string, expiresAt time.Time) error {
	table, err := tokenTable(kind)
	if err != nil {
		return err
	}

	query := `INSERT INTO ` + table + ` (user_id, token, expires_at) VALUES ($1, $2, $3)`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, token, expiresAt)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{userID, expiresAt}, rowsAffected, err)

	return translateError(err)
}

// DeleteUnusedByUser removes the user's unconsumed tokens of the given kind.
func (r *TokenRepository) DeleteUnusedByUser(ctx context.Context, kind models.TokenKind, userID uuid.UUID) (int64, error) {
	table, err := tokenTable(kind)
	if err != nil {
		return 0, err
	}

	query := `DELETE FROM ` + table + ` WHERE user_id = $1 AND used = FALSE`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{userID}, rowsAffected, err)

	return rowsAffected, err
}

// FindValid returns the token if it is unused and expires after now.
// Missing, used and expired tokens all yield models.ErrNotFound.
func (r *TokenRepository) FindValid(ctx context.Context, kind models.TokenKind, token string, now time.Time) (*models.Token, error) {
	table, err := tokenTable(kind)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, token, expires_at, used, created_at
		FROM ` + table + `
		WHERE token = $1 AND used = FALSE AND expires_at > $2
	`

	var t models.Token
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &t, query, token, now)
	logQuery(query, []any{now}, t.UserID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &t, nil
}

// MarkUsed atomically re-validates the token and flags it as used,
// returning the owner. A token that is not valid at now yields models.ErrNotFound.
func (r *TokenRepository) MarkUsed(ctx context.Context, kind models.TokenKind, token string, now time.Time) (uuid.UUID, error) {
	table, err := tokenTable(kind)
	if err != nil {
		return uuid.Nil, err
	}

	query := `
		UPDATE ` + table + `
		SET used = TRUE
		WHERE token = $1 AND used = FALSE AND expires_at > $2
		RETURNING user_id
	`

	var userID uuid.UUID
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &userID, query, token, now)
	logQuery(query, []any{now}, userID, err)

	if err != nil {
		return uuid.Nil, translateError(err)
	}
	return userID, nil
}
