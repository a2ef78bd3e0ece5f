package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"gorm.io/gorm"
)

type indexDefinition struct {
	name string
	sql  string
}

var advancedIndexes = []indexDefinition{
	{
		name: "idx_customers_email_lower",
		sql:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_email_lower ON customers (lower(email))`,
	},
	{
		name: "idx_users_email_lower",
		sql:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users (lower(email))`,
	},
	{
		name: "idx_movies_title_lower",
		sql:  `CREATE INDEX IF NOT EXISTS idx_movies_title_lower ON movies (lower(title) text_pattern_ops)`,
	},
	{
		name: "idx_payments_created_at_brin",
		sql:  `CREATE INDEX IF NOT EXISTS idx_payments_created_at_brin ON payments USING BRIN (created_at) WITH (pages_per_range = 32)`,
	},
	{
		name: "idx_methods_active",
		sql:  `CREATE INDEX IF NOT EXISTS idx_methods_active ON methods (id) WHERE active`,
	},
}

// AdvancedIndexManager creates the PostgreSQL specific indexes gorm tags cannot express
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

// CreateAdvancedIndexes creates every index that is missing
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}
