package migration

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/payment-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/payment-api/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CurrentSchemaVersion is the version of the last registered step
const CurrentSchemaVersion = "1.2.0"

// Step is one versioned schema change
type Step struct {
	Version string
	Name    string
	Run     func(ctx context.Context) error
}

// MigrationManager applies the versioned steps the database has not seen yet
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// Steps returns every registered step in application order
func (m *MigrationManager) Steps() []Step {
	return []Step{
		{Version: "1.0.0", Name: "Base schema", Run: m.autoMigrateModels},
		{Version: "1.1.0", Name: "Payment foreign keys", Run: NewPaymentForeignKeys(m.db, m.logger).Run},
		{Version: "1.2.0", Name: "Lookup and search indexes", Run: m.advancedIndexMgr.CreateAdvancedIndexes},
	}
}

// MigrateAll brings the schema to CurrentSchemaVersion
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("failed to create migration version table: %w", err)
	}

	applied, err := m.AppliedVersions(ctx)
	if err != nil {
		return fmt.Errorf("failed to read applied migrations: %w", err)
	}

	pending := PendingSteps(m.Steps(), applied)
	if len(pending) == 0 {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": CurrentSchemaVersion,
		})
		return nil
	}

	// Models may have gained columns since the base step was recorded.
	if applied["1.0.0"] {
		if err := m.autoMigrateModels(ctx); err != nil {
			return err
		}
	}

	for _, step := range pending {
		m.logger.Info("Applying migration", map[string]any{
			"version": step.Version,
			"name":    step.Name,
		})
		if err := step.Run(ctx); err != nil {
			m.logger.Error("Migration failed", map[string]any{
				"version": step.Version,
				"error":   err.Error(),
			})
			return fmt.Errorf("migration %s (%s): %w", step.Version, step.Name, err)
		}
		if err := m.setVersion(ctx, step.Version, step.Name); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", step.Version, err)
		}
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
		"applied": len(pending),
	})
	return nil
}

// PendingSteps returns the steps whose version is not in applied, keeping their order
func PendingSteps(steps []Step, applied map[string]bool) []Step {
	var pending []Step
	for _, step := range steps {
		if !applied[step.Version] {
			pending = append(pending, step)
		}
	}
	return pending
}

// AppliedVersions returns the set of recorded versions
func (m *MigrationManager) AppliedVersions(ctx context.Context) (map[string]bool, error) {
	var versions []string
	if err := m.db.WithContext(ctx).Model(&model.MigrationVersion{}).Pluck("version", &versions).Error; err != nil {
		return nil, err
	}

	applied := make(map[string]bool, len(versions))
	for _, v := range versions {
		applied[v] = true
	}
	return applied, nil
}

// GetCurrentVersion returns the most recently applied version, or "" on a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var version model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").First(&version).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return version.Version, nil
}

func (m *MigrationManager) setVersion(ctx context.Context, version, details string) error {
	return m.db.WithContext(ctx).Create(&model.MigrationVersion{
		Version:   version,
		Name:      details,
		AppliedAt: m.timeProvider.Now(),
		Details:   "target " + CurrentSchemaVersion,
	}).Error
}

func (m *MigrationManager) autoMigrateModels(ctx context.Context) error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.WithContext(ctx).AutoMigrate(
		&model.User{},
		&model.Customer{},
		&model.Payment{},
		&model.Method{},
		&model.Movie{},
	)
}
