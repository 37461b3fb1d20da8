package repositories

import (
	"context"

	"gorm.io/gorm"
)

// GormStore is the relational backend. Ids come from serial primary keys and
// referential integrity is enforced declaratively: the foreign keys carry
// ON DELETE CASCADE as a second line of defense behind the access layer's
// own cascade logic.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an already-opened connection. The caller owns the
// connection lifecycle: open at process start, close at shutdown.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) getDB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

var _ IStore = (*GormStore)(nil)
