package persistence

import (
	"context"
	"errors"

	"github.com/bizdesk/backend/internal/domain/resource"
	"github.com/bizdesk/backend/internal/domain/shared"
	"gorm.io/gorm"
)

const (
	reserveStockSQL = "UPDATE inventory SET quantity = quantity - @quantity " +
		"WHERE product_id = @product_id AND quantity >= @quantity"
	releaseStockSQL = "UPDATE inventory SET quantity = quantity + @quantity WHERE product_id = @product_id"

	// the no-op update takes the row lock before the held quantity is read
	lockOrderItemSQL = "UPDATE order_items SET quantity = quantity WHERE order_item_id = @order_item_id"
	heldStockSQL     = "SELECT product_id, quantity FROM order_items WHERE order_item_id = @order_item_id"
)

// OrderItemStore keeps inventory in step with order items. Adding an item
// reserves its quantity, updating it moves the reservation and deleting it
// releases the stock. Each change commits together with its reservation,
// so concurrent requests cannot both consume the same stock.
type OrderItemStore struct {
	*ResourceStore
	database *Database
}

// NewOrderItemStore creates the guarded order-item accessor
func NewOrderItemStore(db *Database) *OrderItemStore {
	return &OrderItemStore{
		ResourceStore: NewResourceStore(db, resource.OrderItem),
		database:      db,
	}
}

// Add decrements inventory for product_id by quantity and inserts the
// order item. If the product lacks stock it returns
// shared.ErrInsufficientStock and changes nothing.
func (s *OrderItemStore) Add(ctx context.Context, args ...any) (int64, error) {
	named, err := resource.Bind(s.res.InsertColumns(), args)
	if err != nil {
		return 0, err
	}

	var inserted int64
	err = s.database.Transaction(ctx, func(tx *gorm.DB) error {
		reserve := tx.Exec(reserveStockSQL, map[string]any{
			"quantity":   named["quantity"],
			"product_id": named["product_id"],
		})
		if reserve.Error != nil {
			return reserve.Error
		}
		if reserve.RowsAffected == 0 {
			return shared.ErrInsufficientStock
		}

		insert := tx.Exec(s.res.InsertSQL(), named)
		if insert.Error != nil {
			return insert.Error
		}
		inserted = insert.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// Update releases the stock held by the item, reserves the new quantity of
// the new product and overwrites the item. Without enough stock it returns
// shared.ErrInsufficientStock and changes nothing. An unknown item updates
// nothing.
func (s *OrderItemStore) Update(ctx context.Context, args ...any) (int64, error) {
	named, err := resource.Bind(s.res.UpdateColumns(), args)
	if err != nil {
		return 0, err
	}
	if named["product_id"] == nil {
		return 0, shared.ErrInvalidInput.Wrap(errors.New("product_id is required"))
	}
	if q, ok := named["quantity"].(int64); !ok || q <= 0 {
		return 0, shared.ErrInvalidInput.Wrap(errors.New("quantity must be a positive integer"))
	}

	var updated int64
	err = s.database.Transaction(ctx, func(tx *gorm.DB) error {
		held, found, err := holdItem(tx, named["order_item_id"])
		if err != nil || !found {
			return err
		}
		if err := tx.Exec(releaseStockSQL, held.named()).Error; err != nil {
			return err
		}

		reserve := tx.Exec(reserveStockSQL, map[string]any{
			"quantity":   named["quantity"],
			"product_id": named["product_id"],
		})
		if reserve.Error != nil {
			return reserve.Error
		}
		if reserve.RowsAffected == 0 {
			return shared.ErrInsufficientStock
		}

		update := tx.Exec(s.res.UpdateSQL(), named)
		if update.Error != nil {
			return update.Error
		}
		updated = update.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

// Delete removes the item and returns its quantity to inventory
func (s *OrderItemStore) Delete(ctx context.Context, key ...any) (int64, error) {
	named, err := resource.Bind(s.res.KeyColumns(), key)
	if err != nil {
		return 0, err
	}

	var deleted int64
	err = s.database.Transaction(ctx, func(tx *gorm.DB) error {
		held, found, err := holdItem(tx, named["order_item_id"])
		if err != nil || !found {
			return err
		}
		del := tx.Exec(s.res.DeleteSQL(), named)
		if del.Error != nil {
			return del.Error
		}
		deleted = del.RowsAffected
		return tx.Exec(releaseStockSQL, held.named()).Error
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

type heldStock struct {
	productID int64
	quantity  int64
}

func (h heldStock) named() map[string]any {
	return map[string]any{"quantity": h.quantity, "product_id": h.productID}
}

// holdItem locks the order item and reads the stock it holds
func holdItem(tx *gorm.DB, id any) (heldStock, bool, error) {
	params := map[string]any{"order_item_id": id}
	lock := tx.Exec(lockOrderItemSQL, params)
	if lock.Error != nil {
		return heldStock{}, false, lock.Error
	}
	if lock.RowsAffected == 0 {
		return heldStock{}, false, nil
	}

	var h heldStock
	if err := tx.Raw(heldStockSQL, params).Row().Scan(&h.productID, &h.quantity); err != nil {
		return heldStock{}, false, err
	}
	return h, true, nil
}
