package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

type contextKey string

const txKey contextKey = "tx"

// ErrNoTransaction is returned by Commit and Rollback when ctx carries no transaction
var ErrNoTransaction = errors.New("no transaction found in context")

// UnitOfWork implements persistence.UnitOfWork on top of GORM transactions.
// The open transaction travels in the context returned by Begin.
type UnitOfWork struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) *UnitOfWork {
	return &UnitOfWork{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(),
	}
}

// Begin starts a transaction and returns a context carrying it
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, u.errorMapper.MapError(tx.Error, "begin transaction")
	}

	u.logger.Debug("Transaction started", map[string]any{
		"request_id": coreport.RequestIDFromContext(ctx),
	})
	return context.WithValue(ctx, txKey, tx), nil
}

// Commit commits the transaction carried by ctx
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return ErrNoTransaction
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return u.errorMapper.MapError(fmt.Errorf("commit: %w", err), "commit transaction")
	}
	return nil
}

// Rollback rolls back the transaction carried by ctx. Rolling back a finished
// transaction is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := txFromContext(ctx)
	if !ok {
		return ErrNoTransaction
	}

	err := tx.Rollback().Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrTxDone), errors.Is(err, gorm.ErrInvalidTransaction):
		u.logger.Warn("Transaction has already been committed or rolled back", map[string]any{
			"error": err.Error(),
		})
		return nil
	default:
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return u.errorMapper.MapError(err, "rollback transaction")
	}
}

// GetUserRepository returns a user repository bound to the transaction in ctx
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.dbFromContext(ctx), u.logger)
}

// GetCustomerRepository returns a customer repository bound to the transaction in ctx
func (u *UnitOfWork) GetCustomerRepository(ctx context.Context) persistence.CustomerRepository {
	return repository.NewCustomerRepository(u.dbFromContext(ctx), u.logger)
}

// GetPaymentRepository returns a payment repository bound to the transaction in ctx
func (u *UnitOfWork) GetPaymentRepository(ctx context.Context) persistence.PaymentRepository {
	return repository.NewPaymentRepository(u.dbFromContext(ctx), u.logger)
}

// dbFromContext returns the transaction in ctx, or the pool when there is none
func (u *UnitOfWork) dbFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}
	return u.db.WithContext(ctx)
}

func txFromContext(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txKey).(*gorm.DB)
	return tx, ok && tx != nil
}
