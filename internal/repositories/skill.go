package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/techlinker/internal/models"
)

type SkillReadRepository struct {
	db *sqlx.DB
}

func NewSkillReadRepository(db *sqlx.DB) *SkillReadRepository {
	return &SkillReadRepository{db: db}
}

// ListAll returns the whole skill catalog ordered by name.
func (r *SkillReadRepository) ListAll(ctx context.Context) ([]models.Skill, error) {
	const query = `SELECT id, name, category, created_at FROM skills ORDER BY name`

	skills := []models.Skill{}
	err := r.db.SelectContext(ctx, &skills, query)
	logQuery(query, nil, len(skills), err)

	return skills, err
}

// ListByUser returns the skills attached to a user ordered by name.
func (r *SkillReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.UserSkill, error) {
	const query = `
		SELECT s.id AS skill_id, s.name, s.category, us.proficiency, us.experience_years
		FROM user_skills us
		JOIN skills s ON s.id = us.skill_id
		WHERE us.user_id = $1
		ORDER BY s.name
	`

	skills := []models.UserSkill{}
	err := r.db.SelectContext(ctx, &skills, query, userID)
	logQuery(query, []any{userID}, len(skills), err)

	return skills, err
}

type SkillWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSkillWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SkillWriteRepository {
	return &SkillWriteRepository{db: db, txGetter: txGetter}
}

// GetOrCreate returns the skill with the given name, creating it when absent.
// The first writer of a name wins; created reports whether this call inserted it.
func (r *SkillWriteRepository) GetOrCreate(ctx context.Context, name string, category *string) (skill *models.Skill, created bool, err error) {
	const insert = `
		INSERT INTO skills (name, category)
		VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
		RETURNING id, name, category, created_at
	`
	const selectByName = `SELECT id, name, category, created_at FROM skills WHERE name = $1`

	ex := executor(ctx, r.db, r.txGetter)

	var s models.Skill
	err = sqlx.GetContext(ctx, ex, &s, insert, name, category)
	logQuery(insert, []any{name, category}, s.ID, err)
	if err == nil {
		return &s, true, nil
	}
	if translateError(err) != models.ErrNotFound {
		return nil, false, err
	}

	err = sqlx.GetContext(ctx, ex, &s, selectByName, name)
	logQuery(selectByName, []any{name}, s.ID, err)
	if err != nil {
		return nil, false, translateError(err)
	}
	return &s, false, nil
}

// AddToUser attaches a skill to a user. An existing (user, skill) pair is
// left untouched and reported as added = false.
func (r *SkillWriteRepository) AddToUser(ctx context.Context, userID, skillID uuid.UUID, proficiency models.Proficiency, experienceYears int) (bool, error) {
	const query = `
		INSERT INTO user_skills (user_id, skill_id, proficiency, experience_years)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, skill_id) DO NOTHING
	`
	args := []any{userID, skillID, proficiency, experienceYears}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

// RemoveFromUser detaches a skill from a user. A missing pair yields models.ErrNotFound.
func (r *SkillWriteRepository) RemoveFromUser(ctx context.Context, userID, skillID uuid.UUID) error {
	const query = `DELETE FROM user_skills WHERE user_id = $1 AND skill_id = $2`
	args := []any{userID, skillID}

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
