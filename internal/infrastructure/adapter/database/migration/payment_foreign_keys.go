package migration

import (
	"context"
	"fmt"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"gorm.io/gorm"
)

type foreignKey struct {
	name     string
	column   string
	onDelete string
}

// Payers may disappear without erasing the payment; payments die with their recipient.
var paymentForeignKeys = []foreignKey{
	{name: "fk_payments_from_customer", column: "from_customer_id", onDelete: "SET NULL"},
	{name: "fk_payments_to_customer", column: "to_customer_id", onDelete: "CASCADE"},
}

// PaymentForeignKeys links payments to customers
type PaymentForeignKeys struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewPaymentForeignKeys creates the migration step
func NewPaymentForeignKeys(db *gorm.DB, logger coreport.Logger) *PaymentForeignKeys {
	return &PaymentForeignKeys{
		db:     db,
		logger: logger,
	}
}

// Run adds the constraints that do not exist yet
func (m *PaymentForeignKeys) Run(ctx context.Context) error {
	existing, err := m.existingConstraints(ctx)
	if err != nil {
		return err
	}

	for _, fk := range paymentForeignKeys {
		if existing[fk.name] {
			continue
		}

		stmt := fmt.Sprintf(
			"ALTER TABLE payments ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES customers (id) ON DELETE %s",
			fk.name, fk.column, fk.onDelete)
		if err := m.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			m.logger.Error("Failed to add foreign key", map[string]any{
				"constraint": fk.name,
				"error":      err.Error(),
			})
			return err
		}
		m.logger.Info("Foreign key added", map[string]any{"constraint": fk.name})
	}
	return nil
}

func (m *PaymentForeignKeys) existingConstraints(ctx context.Context) (map[string]bool, error) {
	var names []string
	err := m.db.WithContext(ctx).Raw(`
		SELECT constraint_name
		FROM information_schema.table_constraints
		WHERE table_name = 'payments' AND constraint_type = 'FOREIGN KEY'
	`).Scan(&names).Error
	if err != nil {
		m.logger.Error("Failed to read payment constraints", map[string]any{"error": err.Error()})
		return nil, err
	}

	existing := make(map[string]bool, len(names))
	for _, name := range names {
		existing[name] = true
	}
	return existing, nil
}
