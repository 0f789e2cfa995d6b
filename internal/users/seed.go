package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/teruzahostel/minimarket-backend/pkg/config"
	"github.com/teruzahostel/minimarket-backend/pkg/logger"
	"github.com/teruzahostel/minimarket-backend/pkg/security"
)

// SeedDefaultAdmin creates the configured back-office operator when no
// user with that email exists yet. Safe to run on every boot.
func SeedDefaultAdmin(ctx context.Context, cfg *config.Config, repo *Repository, logg *logger.Logger) error {
	email := strings.ToLower(strings.TrimSpace(cfg.Market.DefaultAdminEmail))
	password := cfg.Market.DefaultAdminPassword
	if email == "" || password == "" {
		return fmt.Errorf("default admin email and password are required for seeding")
	}

	hash, err := security.HashPassword(password, cfg.Password)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	created, err := repo.EnsureExists(ctx, CreateUserDTO{
		Email:        email,
		PasswordHash: hash,
		Name:         "Teruza Admin",
	})
	if err != nil {
		return fmt.Errorf("seed default admin: %w", err)
	}

	if created {
		logg.Info(logg.WithField(ctx, "email", email), "default admin created")
	}
	return nil
}
