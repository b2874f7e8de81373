package impl

import (
	"context"
	"log/slog"

	domainerrors "quorum/internal/domain/errors"
	"quorum/internal/domain/repository"
	"quorum/internal/domain/service"
	"quorum/internal/errors"
	"quorum/internal/usecase"

	"github.com/google/uuid"
)

type credentialService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// NewCredentialService creates the password rotation use case.
func NewCredentialService(
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.CredentialUsecase {
	return &credentialService{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// UpdatePassword hashes the new password and replaces the stored hash.
// The outstanding token slot is untouched; revocation is a separate call.
func (s *credentialService) UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	if newPassword == "" {
		return domainerrors.ErrMissingArgument.WrapMessage("new password is required")
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, passwordHash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("cannot rotate password for missing user")
		}

		return err
	}

	s.logger.InfoContext(ctx, "password rotated",
		slog.String("userID", userID.String()),
	)

	return nil
}
