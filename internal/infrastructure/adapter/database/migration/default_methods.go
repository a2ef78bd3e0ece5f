package migration

import (
	"context"
	"fmt"
)

// MethodSeeder creates the built-in payment methods
type MethodSeeder interface {
	CreateDefaultMethods(ctx context.Context) error
}

// SeedDefaultMethods creates the default payment methods that are missing
func SeedDefaultMethods(ctx context.Context, seeder MethodSeeder) error {
	if err := seeder.CreateDefaultMethods(ctx); err != nil {
		return fmt.Errorf("failed to seed default methods: %w", err)
	}
	return nil
}
