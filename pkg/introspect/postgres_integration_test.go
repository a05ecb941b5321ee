//go:build integration

package introspect

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/marshallshelly/domino/pkg/schema"
)

// setupPostgres starts a PostgreSQL container and returns its connection string.
func setupPostgres(t *testing.T) string {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return connStr
}

func TestPostgresIntrospection(t *testing.T) {
	ctx := context.Background()
	connStr := setupPostgres(t)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, `
		CREATE TABLE users (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			balance NUMERIC(10,2),
			tags TEXT[],
			created_at TIMESTAMP DEFAULT NOW()
		);
		CREATE TABLE posts (id BIGSERIAL PRIMARY KEY, title TEXT NOT NULL);
		CREATE TABLE schema_migrations (version VARCHAR(255) PRIMARY KEY);
	`)
	require.NoError(t, err)

	src := NewPostgres(pool, "")

	tables, err := src.Tables(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"posts", "schema_migrations", "users"}, tables)

	columns, err := src.Columns(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, []schema.Column{
		{Name: "id", SQLType: "integer", Nullable: false, Position: 0},
		{Name: "name", SQLType: "varchar(100)", Nullable: false, Position: 1},
		{Name: "balance", SQLType: "numeric(10,2)", Nullable: true, Position: 2},
		{Name: "tags", SQLType: "text[]", Nullable: true, Position: 3},
		{Name: "created_at", SQLType: "timestamp without time zone", Nullable: true, Position: 4},
	}, columns)

	conn, err := Open(ctx, "", connStr, Options{})
	require.NoError(t, err)
	defer conn.Close()

	tables, err = conn.Tables(ctx)
	require.NoError(t, err)
	assert.Len(t, tables, 3)
}
