package uow

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"secdash/internal/ports"
)

// UnitOfWork implements ports.UnitOfWork on a gorm transaction. Repositories
// pick the transaction up from the context.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ports.WithTxContext(ctx, tx))
	})
}
