package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/techlinker/internal/logger"
	"github.com/sbilibin2017/techlinker/internal/models"
)

const skillCatalogKey = "skills:catalog"

// SkillCacheRepository caches the skill catalog in Redis.
type SkillCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewSkillCacheRepository(client *redis.Client, expiration time.Duration) *SkillCacheRepository {
	return &SkillCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached catalog or an error on a miss.
func (r *SkillCacheRepository) Get(ctx context.Context) ([]models.Skill, error) {
	val, err := r.client.Get(ctx, skillCatalogKey).Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", skillCatalogKey,
			"result", nil,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("skill catalog not found in cache")
		}
		return nil, err
	}

	var skills []models.Skill
	if err := json.Unmarshal(val, &skills); err != nil {
		logger.Log.Infow(
			"key", skillCatalogKey,
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", skillCatalogKey,
		"result", len(skills),
		"error", nil,
	)
	return skills, nil
}

// Set stores the catalog with the configured expiration.
func (r *SkillCacheRepository) Set(ctx context.Context, skills []models.Skill) error {
	data, err := json.Marshal(skills)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, skillCatalogKey, data, r.exp).Err()
	logger.Log.Infow(
		"key", skillCatalogKey,
		"skills", len(skills),
		"error", err,
	)
	return err
}

// Invalidate drops the cached catalog.
func (r *SkillCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, skillCatalogKey).Err()
	logger.Log.Infow(
		"key", skillCatalogKey,
		"result", "deleted",
		"error", err,
	)
	return err
}
