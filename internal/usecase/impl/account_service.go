// Package impl provides the concrete implementations of the use case
// interfaces. Services here orchestrate repositories, domain services, and
// the transaction manager; they hold no business state of their own.
package impl

import (
	"context"
	"log/slog"

	"quorum/internal/domain/entity"
	domainerrors "quorum/internal/domain/errors"
	"quorum/internal/domain/repository"
	"quorum/internal/domain/service"
	"quorum/internal/errors"
	"quorum/internal/usecase"

	"github.com/google/uuid"
)

type accountService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewAccountService creates the account lifecycle use case.
func NewAccountService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		logger:    logger,
	}
}

// CreateAccount provisions the user row and its default role binding in one
// transaction. The id is generated here, the password is hashed before the
// transaction starts, and a missing default role aborts everything.
func (s *accountService) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*entity.SameUserView, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingArgument.WrapMessage("email and password are required")
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		ID:           uuid.New(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
	}

	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return err
		}

		role, err := repoFactory.RoleRepo().FindByName(ctx, entity.RoleNamePublic)
		if err != nil {
			if errors.Is(err, repository.ErrRoleNotFound) {
				return domainerrors.ErrRoleNotFound.WrapMessage("default role is not seeded")
			}

			return err
		}

		return repoFactory.ProfileRepo().Create(ctx, &entity.Profile{
			UserID: user.ID,
			RoleID: role.ID,
		})
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "account provisioning failed",
			slog.String("email", input.Email),
			slog.Any("error", err),
		)

		return nil, err
	}

	s.logger.InfoContext(ctx, "account provisioned",
		slog.String("userID", user.ID.String()),
	)

	return entity.NewSameUserView(user), nil
}

// UpdateAccount modifies the mutable identity fields and returns the fresh
// owner-facing projection.
func (s *accountService) UpdateAccount(ctx context.Context, userID uuid.UUID, input usecase.UpdateAccountInput) (*entity.SameUserView, error) {
	user := &entity.User{
		ID:        userID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  input.Username,
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("cannot update missing user")
		}

		return nil, err
	}

	updated, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload updated user")
	}

	return entity.NewSameUserView(updated), nil
}

// RemoveAccount deletes the user; the role binding cascades in the store.
func (s *accountService) RemoveAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("cannot remove missing user")
		}

		return err
	}

	s.logger.InfoContext(ctx, "account removed",
		slog.String("userID", userID.String()),
	)

	return nil
}
