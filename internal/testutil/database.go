package testutil

import (
	"context"
	"testing"
	"time"
	"token-arena/internal/database"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

// MathBlitzID is the seeded Math Blitz game (bets 10..500)
const MathBlitzID int64 = 1

// TestDatabase is a migrated postgres container for one test
type TestDatabase struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	URL       string
}

// SetupTestDatabase starts a PostgreSQL container and applies migrations.
// Skipped under -short.
func SetupTestDatabase(t *testing.T) *TestDatabase {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("token_arena_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		postgres.BasicWaitStrategies(),
		testcontainers.WithLabels(map[string]string{
			"test":      "token-arena",
			"test-name": t.Name(),
		}),
	)
	require.NoError(t, err)

	testDB := &TestDatabase{Container: container}
	t.Cleanup(func() { testDB.cleanup(t) })

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, database.MigrateUp(connStr))

	pool, err := database.NewPoolFromURL(ctx, connStr)
	require.NoError(t, err)

	testDB.Pool = pool
	testDB.URL = connStr
	return testDB
}

func (td *TestDatabase) cleanup(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if td.Pool != nil {
		td.Pool.Close()
	}
	if td.Container != nil {
		if err := td.Container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate test container: %v", err)
		}
	}
}

// CreateUser inserts a user with the given opening balance. The balance is
// recorded as a bonus transaction so the ledger audit stays clean.
func (td *TestDatabase) CreateUser(t *testing.T, username string, balance int64) int64 {
	t.Helper()
	ctx := context.Background()

	var id int64
	err := td.Pool.QueryRow(ctx,
		`INSERT INTO users (username, balance) VALUES ($1, $2) RETURNING id`,
		username, balance,
	).Scan(&id)
	require.NoError(t, err)

	if balance > 0 {
		_, err = td.Pool.Exec(ctx,
			`INSERT INTO transactions (user_id, type, amount, description) VALUES ($1, 'bonus', $2, 'opening balance')`,
			id, balance,
		)
		require.NoError(t, err)
	}
	return id
}

// Balance reads a user's cached balance
func (td *TestDatabase) Balance(t *testing.T, userID int64) int64 {
	t.Helper()

	var balance int64
	err := td.Pool.QueryRow(context.Background(), `SELECT balance FROM users WHERE id = $1`, userID).Scan(&balance)
	require.NoError(t, err)
	return balance
}

// LedgerSum adds up a user's transactions
func (td *TestDatabase) LedgerSum(t *testing.T, userID int64) int64 {
	t.Helper()

	var sum int64
	err := td.Pool.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1`, userID).Scan(&sum)
	require.NoError(t, err)
	return sum
}
