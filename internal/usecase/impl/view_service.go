package impl

import (
	"context"
	"log/slog"

	"quorum/internal/domain/entity"
	domainerrors "quorum/internal/domain/errors"
	"quorum/internal/domain/repository"
	"quorum/internal/errors"
	"quorum/internal/usecase"

	"github.com/google/uuid"
)

type viewService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewViewService creates the user projection use case.
func NewViewService(userRepo repository.UserRepository, logger *slog.Logger) usecase.ViewUsecase {
	return &viewService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *viewService) AuthFlowView(ctx context.Context, userID uuid.UUID) (*entity.AuthFlowUserView, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return entity.NewAuthFlowUserView(user), nil
}

func (s *viewService) AuthFlowViewByEmail(ctx context.Context, email string) (*entity.AuthFlowUserView, error) {
	if email == "" {
		return nil, domainerrors.ErrMissingArgument.WrapMessage("email is required")
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no user registered with this email")
		}

		return nil, err
	}

	return entity.NewAuthFlowUserView(user), nil
}

func (s *viewService) SameUserView(ctx context.Context, userID uuid.UUID) (*entity.SameUserView, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return entity.NewSameUserView(user), nil
}

func (s *viewService) PublicView(ctx context.Context, userID uuid.UUID) (*entity.PublicUserView, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return entity.NewPublicUserView(user), nil
}

func (s *viewService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user does not exist")
		}

		return nil, err
	}

	return user, nil
}
