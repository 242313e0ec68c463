//go:build integration

package persistence

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/bizdesk/backend/internal/domain/resource"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/bizdesk/backend/internal/infrastructure/migration"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
)

// newPostgresDatabase starts a throwaway PostgreSQL container and applies
// the embedded migrations to it.
func newPostgresDatabase(t *testing.T) *Database {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("bizdesk_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := Open(postgres.Open(dsn))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sqlDB, err := db.DB.DB()
	require.NoError(t, err)
	m, err := migration.New(sqlDB, "", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, m.Up())
	return db
}

func TestPostgres_ResourceStores(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()
	db := newPostgresDatabase(t)

	categories := NewResourceStore(db, resource.Category)
	n, err := categories.Add(ctx, "Tools", "Hand tools")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	products := NewResourceStore(db, resource.Product)
	_, err = products.Add(ctx, "Hammer", int64(1), "HAM-1", decimal.RequireFromString("12.50"), nil)
	require.NoError(t, err)

	rows, err := products.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Hammer", rows[0]["product_name"])

	n, err = categories.Update(ctx, int64(99), "Missing", nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	// unique violation surfaces as a write error
	_, err = categories.Add(ctx, "Tools", nil)
	require.Error(t, err)
	assert.Equal(t, ErrorClassConstraint, Classify(err))

	n, err = NewResourceStore(db, resource.Supplier).Delete(ctx, "42")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPostgres_OrderItemReservesStock(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	ctx := context.Background()
	db := newPostgresDatabase(t)

	require.NoError(t, db.DB.Exec(`INSERT INTO products (product_name, price) VALUES ('Widget', 5)`).Error)
	require.NoError(t, db.DB.Exec(`INSERT INTO inventory (product_id, quantity) VALUES (1, 10)`).Error)
	require.NoError(t, db.DB.Exec(`INSERT INTO customers (first_name, last_name) VALUES ('Ada', 'Lovelace')`).Error)
	require.NoError(t, db.DB.Exec(`INSERT INTO orders (customer_id, order_date) VALUES (1, CURRENT_DATE)`).Error)

	store := NewOrderItemStore(db)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Add(ctx, int64(1), int64(1), int64(3), decimal.NewFromInt(5))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, shared.ErrInsufficientStock):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 3, succeeded)
	assert.Equal(t, 2, rejected)

	var remaining int64
	require.NoError(t, db.DB.Raw(`SELECT quantity FROM inventory WHERE product_id = 1`).Scan(&remaining).Error)
	assert.Equal(t, int64(1), remaining)

	items, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}
