package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/yigit/placementhub/internal/app/models"
	appRepos "github.com/yigit/placementhub/internal/app/repositories"
	"github.com/yigit/placementhub/internal/pkg/apperrors"
	"github.com/yigit/placementhub/internal/pkg/auth"
)

const (
	defaultPlacementCellEmail    = "placement@campus.edu"
	defaultPlacementCellPassword = "ChangeMe123!"
)

// CreateDefaultData creates the default placement cell account if it does not
// exist so the portal has an operator login on a fresh database.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default placement cell account...")

	exists, err := userRepo.EmailExists(ctx, defaultPlacementCellEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if placement cell account exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Placement cell account already exists, skipping creation")
		return nil
	}

	hashedPassword, err := auth.HashPassword(defaultPlacementCellPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing placement cell password")
		return err
	}

	operator := &appModels.User{
		Email:     defaultPlacementCellEmail,
		Password:  hashedPassword,
		FullName:  "Placement Cell",
		RoleType:  appModels.RolePlacementCell,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := userRepo.Create(ctx, operator); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Info().Msg("Placement cell account created concurrently, skipping")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating placement cell account")
		return err
	}

	lgr.Info().Int64("userID", operator.ID).Msg("Default placement cell account created successfully")
	return nil
}
