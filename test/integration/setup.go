package integration

import (
	"context"
	"testing"
	"time"

	"shopfront/internal/storage"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestRedis represents a Redis test instance.
type TestRedis struct {
	Container *tcredis.RedisContainer
	Client    *goredis.Client
	Storage   storage.Storage
}

// SetupTestRedis starts a Redis container and returns a slot store
// backed by it.
func SetupTestRedis(t *testing.T) *TestRedis {
	t.Helper()

	ctx := context.Background()

	redisContainer, err := tcredis.Run(ctx,
		"redis:7-alpine",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start redis container: %v", err)
	}

	uri, err := redisContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get redis connection string: %v", err)
	}

	opts, err := goredis.ParseURL(uri)
	if err != nil {
		t.Fatalf("failed to parse redis connection string: %v", err)
	}
	client := goredis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("failed to ping redis: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Close()
		if err := redisContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestRedis{
		Container: redisContainer,
		Client:    client,
		Storage:   storage.NewRedisStoreWithClient(client, zerolog.Nop()),
	}
}

// FlushRedis clears all keys between test cases.
func FlushRedis(t *testing.T, client *goredis.Client) {
	t.Helper()

	if err := client.FlushAll(context.Background()).Err(); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}
}
