package persistence

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bizdesk/backend/internal/domain/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceStore_Add(t *testing.T) {
	t.Run("binds fields as named parameters in declaration order", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewResourceStore(db, resource.Order)

		mock.ExpectExec(regexp.QuoteMeta(
			`INSERT INTO orders (customer_id, order_date, order_status, total_amount, discount, tax) VALUES ($1, $2, $3, $4, $5, $6)`)).
			WithArgs(int64(42), "2025-04-19", "New", int64(200), int64(10), int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := store.Add(context.Background(), int64(42), "2025-04-19", "New", int64(200), int64(10), int64(5))
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("store errors propagate unchanged", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewResourceStore(db, resource.Category)
		storeErr := errors.New(`duplicate key value violates unique constraint "categories_category_name_key"`)

		mock.ExpectExec(`INSERT INTO categories`).WillReturnError(storeErr)

		n, err := store.Add(context.Background(), "Tools", nil)
		assert.Equal(t, int64(0), n)
		assert.ErrorIs(t, err, storeErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wrong argument count issues no statement", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewResourceStore(db, resource.Category)

		_, err := store.Add(context.Background(), "Tools")
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestResourceStore_Update(t *testing.T) {
	t.Run("keys bind after fields in the WHERE clause", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewResourceStore(db, resource.Category)

		mock.ExpectExec(regexp.QuoteMeta(
			`UPDATE categories SET category_name = $1, description = $2 WHERE category_id = $3`)).
			WithArgs("Garden", "Outdoor", int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := store.Update(context.Background(), int64(7), "Garden", "Outdoor")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row reports zero without error", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewResourceStore(db, resource.Category)

		mock.ExpectExec(`UPDATE categories`).WillReturnResult(sqlmock.NewResult(0, 0))

		n, err := store.Update(context.Background(), int64(999), "Garden", nil)
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestResourceStore_Delete(t *testing.T) {
	t.Run("path parameter is bound unconverted", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewResourceStore(db, resource.Category)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM categories WHERE category_id = $1`)).
			WithArgs("42").
			WillReturnResult(sqlmock.NewResult(0, 1))

		n, err := store.Delete(context.Background(), "42")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("composite key", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewResourceStore(db, resource.ProductSupplier)

		mock.ExpectExec(regexp.QuoteMeta(
			`DELETE FROM product_suppliers WHERE product_id = $1 AND supplier_id = $2`)).
			WithArgs("3", "9").
			WillReturnResult(sqlmock.NewResult(0, 1))

		_, err := store.Delete(context.Background(), "3", "9")
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestResourceStore_List(t *testing.T) {
	t.Run("store errors propagate unchanged", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewResourceStore(db, resource.Role)
		storeErr := errors.New("connection reset by peer")

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM v_roles`)).WillReturnError(storeErr)

		rows, err := store.List(context.Background())
		assert.Nil(t, rows)
		assert.ErrorIs(t, err, storeErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestResourceStore_ReadOnly(t *testing.T) {
	db, mock, _ := newMockDatabase(t)
	store := NewResourceStore(db, resource.OrderSummary)

	_, err := store.Delete(context.Background(), "1")
	assert.ErrorContains(t, err, "read-only")
	assert.NoError(t, mock.ExpectationsWereMet())
}
