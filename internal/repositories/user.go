package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/techlinker/internal/models"
)

const userColumns = `
	id, fullname, email, password_hash, user_type, email_verified, profile_completed,
	profession, company, job_title, years_experience, hobbies, about_me, goals,
	bio, location, website, github_url, linkedin_url, profile_picture, hourly_rate, availability,
	created_at, updated_at
`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id or models.ErrNotFound.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	logQuery(query, []any{id}, user.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// GetByEmail returns the user with the given email or models.ErrNotFound.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	logQuery(query, []any{email}, user.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new user. A taken email yields models.ErrDuplicate.
func (r *UserWriteRepository) Create(ctx context.Context, fullname, email, passwordHash string, userType models.UserType) (*models.User, error) {
	query := `
		INSERT INTO users (fullname, email, password_hash, user_type)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + userColumns
	args := []any{fullname, email, "<redacted>", userType}

	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, fullname, email, passwordHash, userType)
	logQuery(query, args, user.ID, err)

	if err != nil {
		return nil, translateError(err)
	}
	return &user, nil
}

// LockByID takes a row lock on the user for the current transaction.
func (r *UserWriteRepository) LockByID(ctx context.Context, id uuid.UUID) error {
	const query = `SELECT id FROM users WHERE id = $1 FOR UPDATE`

	var locked uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &locked, query, id)
	logQuery(query, []any{id}, locked, err)

	return translateError(err)
}

// SetEmailVerified marks the user's email as verified.
func (r *UserWriteRepository) SetEmailVerified(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE users SET email_verified = TRUE, updated_at = NOW() WHERE id = $1`
	return r.execOne(ctx, query, id)
}

// SetPasswordHash replaces the user's password hash.
func (r *UserWriteRepository) SetPasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	const query = `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, passwordHash, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{"<redacted>", id}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// SetProfilePicture stores the object key of the user's profile picture.
func (r *UserWriteRepository) SetProfilePicture(ctx context.Context, id uuid.UUID, key string) error {
	const query = `UPDATE users SET profile_picture = $1, updated_at = NOW() WHERE id = $2`
	return r.execOne(ctx, query, key, id)
}

// MarkProfileCompleted sets the onboarding completion flag.
func (r *UserWriteRepository) MarkProfileCompleted(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE users SET profile_completed = TRUE, updated_at = NOW() WHERE id = $1`
	return r.execOne(ctx, query, id)
}

// UpdateBasicInfo overwrites the basic_info onboarding columns.
func (r *UserWriteRepository) UpdateBasicInfo(ctx context.Context, id uuid.UUID, info models.BasicInfo) error {
	const query = `
		UPDATE users
		SET user_type = $1, profession = $2, company = $3, job_title = $4, years_experience = $5, updated_at = NOW()
		WHERE id = $6
	`
	return r.execOne(ctx, query, info.UserType, info.Profession, info.Company, info.JobTitle, info.YearsExperience, id)
}

// UpdatePersonalDetails overwrites the personal_details onboarding columns.
func (r *UserWriteRepository) UpdatePersonalDetails(ctx context.Context, id uuid.UUID, details models.PersonalDetails) error {
	const query = `
		UPDATE users
		SET hobbies = $1, about_me = $2, goals = $3, location = $4, updated_at = NOW()
		WHERE id = $5
	`
	return r.execOne(ctx, query, details.Hobbies, details.AboutMe, details.Goals, details.Location, id)
}

// UpdateProfile writes only the columns present in patch and returns the
// number of affected rows. An empty patch is rejected without a query.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, id uuid.UUID, patch models.ProfilePatch) (int64, error) {
	assignments := patch.Assignments()
	if len(assignments) == 0 {
		return 0, fmt.Errorf("update profile: no fields")
	}

	sets := make([]string, 0, len(assignments)+1)
	args := make([]any, 0, len(assignments)+1)
	for i, a := range assignments {
		sets = append(sets, fmt.Sprintf("%s = $%d", a.Column, i+1))
		args = append(args, a.Value)
	}
	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return rowsAffected, err
}

// execOne runs an update that must touch exactly one user row.
func (r *UserWriteRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
