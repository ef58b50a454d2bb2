// Package seed creates the default superadmin account at startup so a
// fresh deployment is reachable before anyone registers.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/umid/rosterhub/internal/app/models"
	appRepos "github.com/umid/rosterhub/internal/app/repositories"
	"github.com/umid/rosterhub/internal/config"
	"github.com/umid/rosterhub/internal/pkg/apperrors"
	"github.com/umid/rosterhub/internal/pkg/auth"
)

// CreateDefaultData ensures a superadmin account exists. Skipped when
// no seed password is configured.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Seed.SuperadminPassword == "" {
		lgr.Info().Msg("No seed superadmin password configured, skipping default data")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)

	hashed, err := auth.HashPassword(cfg.Seed.SuperadminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed superadmin password: %w", err)
	}

	superadmin := &appModels.User{
		Username: cfg.Seed.SuperadminUsername,
		Password: hashed,
		Role:     appModels.RoleSuperadmin,
	}

	if _, err := userRepo.Create(ctx, superadmin); err != nil {
		if errors.Is(err, apperrors.ErrUsernameTaken) {
			lgr.Info().Str("username", superadmin.Username).Msg("Seed superadmin already exists")
			return nil
		}
		return fmt.Errorf("failed to create seed superadmin: %w", err)
	}

	lgr.Info().Str("username", superadmin.Username).Msg("Seed superadmin created")
	return nil
}
