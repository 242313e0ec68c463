package persistence

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bizdesk/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	reserveStockPattern = regexp.QuoteMeta(
		`UPDATE inventory SET quantity = quantity - $1 WHERE product_id = $2 AND quantity >= $3`)
	insertOrderItemPattern = regexp.QuoteMeta(
		`INSERT INTO order_items (order_id, product_id, quantity, unit_price) VALUES ($1, $2, $3, $4)`)
	lockOrderItemPattern = regexp.QuoteMeta(
		`UPDATE order_items SET quantity = quantity WHERE order_item_id = $1`)
	heldStockPattern = regexp.QuoteMeta(
		`SELECT product_id, quantity FROM order_items WHERE order_item_id = $1`)
	releaseStockPattern = regexp.QuoteMeta(
		`UPDATE inventory SET quantity = quantity + $1 WHERE product_id = $2`)
	updateOrderItemPattern = regexp.QuoteMeta(
		`UPDATE order_items SET order_id = $1, product_id = $2, quantity = $3, unit_price = $4 WHERE order_item_id = $5`)
)

func TestOrderItemStore_Add(t *testing.T) {
	t.Run("reserves stock and inserts in one transaction", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewOrderItemStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(reserveStockPattern).
			WithArgs(int64(3), int64(11), int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertOrderItemPattern).
			WithArgs(int64(5), int64(11), int64(3), int64(20)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		n, err := store.Add(context.Background(), int64(5), int64(11), int64(3), int64(20))
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insufficient stock rolls back without inserting", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewOrderItemStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(reserveStockPattern).
			WithArgs(int64(50), int64(11), int64(50)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		n, err := store.Add(context.Background(), int64(5), int64(11), int64(50), int64(20))
		assert.Zero(t, n)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed insert releases the reservation", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewOrderItemStore(db)
		fkErr := errors.New(`insert or update on table "order_items" violates foreign key constraint`)

		mock.ExpectBegin()
		mock.ExpectExec(reserveStockPattern).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(insertOrderItemPattern).WillReturnError(fkErr)
		mock.ExpectRollback()

		_, err := store.Add(context.Background(), int64(999), int64(11), int64(1), int64(20))
		assert.ErrorIs(t, err, fkErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reservation error propagates", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewOrderItemStore(db)
		storeErr := errors.New("deadlock detected")

		mock.ExpectBegin()
		mock.ExpectExec(reserveStockPattern).WillReturnError(storeErr)
		mock.ExpectRollback()

		_, err := store.Add(context.Background(), int64(1), int64(11), int64(1), int64(20))
		assert.ErrorIs(t, err, storeErr)
		assert.NotErrorIs(t, err, shared.ErrInsufficientStock)
	})
}

func TestOrderItemStore_Update(t *testing.T) {
	t.Run("moves the reservation and overwrites the item", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewOrderItemStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(lockOrderItemPattern).WithArgs(int64(4)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(heldStockPattern).WithArgs(int64(4)).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity"}).AddRow(int64(11), int64(2)))
		mock.ExpectExec(releaseStockPattern).WithArgs(int64(2), int64(11)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(reserveStockPattern).WithArgs(int64(6), int64(11), int64(6)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(updateOrderItemPattern).
			WithArgs(int64(5), int64(11), int64(6), int64(20), int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		n, err := store.Update(context.Background(), int64(4), int64(5), int64(11), int64(6), int64(20))
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("raising past stock rolls back", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewOrderItemStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(lockOrderItemPattern).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(heldStockPattern).
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity"}).AddRow(int64(11), int64(2)))
		mock.ExpectExec(releaseStockPattern).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(reserveStockPattern).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		n, err := store.Update(context.Background(), int64(4), int64(5), int64(11), int64(600), int64(20))
		assert.Zero(t, n)
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown item changes nothing", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewOrderItemStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(lockOrderItemPattern).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		n, err := store.Update(context.Background(), int64(404), int64(5), int64(11), int64(1), int64(20))
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("quantity must be a positive integer", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewOrderItemStore(db)

		for _, q := range []any{nil, int64(0), int64(-2), "3"} {
			_, err := store.Update(context.Background(), int64(4), int64(5), int64(11), q, int64(20))
			assert.ErrorIs(t, err, shared.ErrInvalidInput, q)
		}
		_, err := store.Update(context.Background(), int64(4), int64(5), nil, int64(1), int64(20))
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderItemStore_Delete(t *testing.T) {
	t.Run("returns the held quantity to inventory", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewOrderItemStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(lockOrderItemPattern).WithArgs("4").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(heldStockPattern).WithArgs("4").
			WillReturnRows(sqlmock.NewRows([]string{"product_id", "quantity"}).AddRow(int64(11), int64(3)))
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM order_items WHERE order_item_id = $1`)).
			WithArgs("4").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(releaseStockPattern).WithArgs(int64(3), int64(11)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		n, err := store.Delete(context.Background(), "4")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown item deletes nothing", func(t *testing.T) {
		db, mock, _ := newMockDatabase(t)
		store := NewOrderItemStore(db)

		mock.ExpectBegin()
		mock.ExpectExec(lockOrderItemPattern).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		n, err := store.Delete(context.Background(), "404")
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
