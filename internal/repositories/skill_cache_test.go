package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/techlinker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestSkillCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	assert.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	assert.NoError(t, rdb.Ping(ctx).Err())

	repo := NewSkillCacheRepository(rdb, 2*time.Second)
	category := "Programming"
	catalog := []models.Skill{
		{ID: uuid.New(), Name: "Go", Category: &category, CreatedAt: time.Now().UTC().Truncate(time.Second)},
		{ID: uuid.New(), Name: "Rust", CreatedAt: time.Now().UTC().Truncate(time.Second)},
	}

	t.Run("miss before set", func(t *testing.T) {
		_, err := repo.Get(ctx)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found in cache")
	})

	t.Run("set and get", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, catalog))

		got, err := repo.Get(ctx)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Equal(t, catalog[0].ID, got[0].ID)
		assert.Equal(t, "Programming", *got[0].Category)
		assert.Nil(t, got[1].Category)
	})

	t.Run("invalidate", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, catalog))
		assert.NoError(t, repo.Invalidate(ctx))

		_, err := repo.Get(ctx)
		assert.Error(t, err)
	})

	t.Run("expires", func(t *testing.T) {
		assert.NoError(t, repo.Set(ctx, catalog))
		time.Sleep(3 * time.Second)

		_, err := repo.Get(ctx)
		assert.Error(t, err)
	})
}
