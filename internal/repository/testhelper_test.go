package repository_test

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/thedemodev/superdesk-publisher/internal/infrastructure/database"
)

// journalDB is a throwaway PostgreSQL with the publish job schema applied.
type journalDB struct {
	Pool      *pgxpool.Pool
	container testcontainers.Container
}

// migrationsDir resolves the repository's migrations directory from this file.
func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

// startJournalDB boots a container and goes through the same migrate and
// connect path as the server. The container is removed on test cleanup.
func startJournalDB(t *testing.T) *journalDB {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("publisher"),
		postgres.WithUsername("publisher"),
		postgres.WithPassword("publisher"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	db := &journalDB{container: container}
	t.Cleanup(func() { db.close(t) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	cfg := database.PoolConfig{
		Host:              host,
		Port:              port.Int(),
		User:              "publisher",
		Password:          "publisher",
		Database:          "publisher",
		SSLMode:           "disable",
		MaxConns:          4,
		MinConns:          1,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   time.Minute,
		HealthCheckPeriod: time.Minute,
	}

	if err := database.Migrate(cfg, migrationsDir()); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// A second run is a no-op.
	if err := database.Migrate(cfg, migrationsDir()); err != nil {
		t.Fatalf("migrate again: %v", err)
	}

	db.Pool, err = database.NewPostgres(ctx, cfg)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	return db
}

func (db *journalDB) close(t *testing.T) {
	if db.Pool != nil {
		db.Pool.Close()
	}
	if err := db.container.Terminate(context.Background()); err != nil {
		t.Logf("terminate container: %v", err)
	}
}

// reset empties the journal between subtests.
func (db *journalDB) reset(t *testing.T) {
	t.Helper()
	if _, err := db.Pool.Exec(context.Background(), "TRUNCATE TABLE publish_jobs"); err != nil {
		t.Fatalf("truncate publish_jobs: %v", err)
	}
}
