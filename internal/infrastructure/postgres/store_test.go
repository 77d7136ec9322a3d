package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storesage/internal/domain/repository"
	"github.com/jhoicas/storesage/internal/infrastructure/postgres"
	"github.com/jhoicas/storesage/internal/infrastructure/storetest"
)

// getPool se conecta a TEST_DATABASE_URL; si no hay base de datos disponible el test se omite.
func getPool(t *testing.T) *pgxpool.Pool {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Skipf("PostgreSQL no disponible: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Skipf("PostgreSQL no disponible: %v", err)
	}
	return pool
}

func TestStore_Contrato(t *testing.T) {
	pool := getPool(t)
	t.Cleanup(pool.Close)
	ctx := context.Background()
	require.NoError(t, postgres.Migrate(ctx, pool))

	storetest.Run(t, func(t *testing.T) repository.Store {
		_, err := pool.Exec(ctx, `TRUNCATE products, borrowed_items, reminders`)
		require.NoError(t, err)
		return postgres.NewStore(pool)
	})
}
