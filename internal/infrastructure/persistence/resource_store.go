package persistence

import (
	"context"
	"fmt"

	"github.com/bizdesk/backend/internal/domain/resource"
	"gorm.io/gorm"
)

// Row is one record of a view, keyed by column name
type Row = map[string]any

// ResourceStore is the generic accessor for one resource: a view reader
// plus insert, update and delete by key. Each call is a single statement
// and store errors are returned unchanged.
type ResourceStore struct {
	db  *gorm.DB
	res *resource.Resource
}

// NewResourceStore creates the accessor for res
func NewResourceStore(db *Database, res *resource.Resource) *ResourceStore {
	return &ResourceStore{db: db.DB, res: res}
}

// Resource returns the descriptor the store serves
func (s *ResourceStore) Resource() *resource.Resource {
	return s.res
}

// List returns every row of the resource view in store order
func (s *ResourceStore) List(ctx context.Context) ([]Row, error) {
	rows := make([]Row, 0)
	if err := s.db.WithContext(ctx).Raw(s.res.SelectSQL()).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Add inserts one row from positional field values and returns the
// affected-row count.
func (s *ResourceStore) Add(ctx context.Context, args ...any) (int64, error) {
	return s.exec(ctx, s.res.InsertSQL(), s.res.InsertColumns(), args)
}

// Update overwrites the row identified by the leading key values. A
// missing row yields 0 without error.
func (s *ResourceStore) Update(ctx context.Context, args ...any) (int64, error) {
	return s.exec(ctx, s.res.UpdateSQL(), s.res.UpdateColumns(), args)
}

// Delete removes the row identified by key. Values are bound as given.
func (s *ResourceStore) Delete(ctx context.Context, key ...any) (int64, error) {
	return s.exec(ctx, s.res.DeleteSQL(), s.res.KeyColumns(), key)
}

func (s *ResourceStore) exec(ctx context.Context, stmt string, cols []string, args []any) (int64, error) {
	if s.res.ReadOnly() {
		return 0, fmt.Errorf("%s is read-only", s.res.Label)
	}
	named, err := resource.Bind(cols, args)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", s.res.Label, err)
	}
	result := s.db.WithContext(ctx).Exec(stmt, named)
	return result.RowsAffected, result.Error
}
