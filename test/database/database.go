// Package database provides a throwaway PostgreSQL instance for
// integration tests, with migrations applied.
package database

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/transparencia-ai/veritas/pkg/database"
)

const (
	testImage    = "postgres:16-alpine"
	testDatabase = "veritas_test"
	testUser     = "veritas"
	testPassword = "veritas"
)

// NewTestClient starts a PostgreSQL container, runs the embedded
// migrations, and returns a ready client. The container is torn down with
// the test.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, testImage,
		postgres.WithDatabase(testDatabase),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get mapped port: %v", err)
	}

	cfg := database.Config{
		Host:            host,
		Port:            port.Int(),
		User:            testUser,
		Password:        testPassword,
		Database:        testDatabase,
		SSLMode:         "disable",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: time.Minute,
	}

	client, err := database.NewClient(ctx, cfg)
	if err != nil {
		t.Fatalf("failed to initialize database client: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}
