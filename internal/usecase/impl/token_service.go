package impl

import (
	"context"
	"log/slog"
	"time"

	"quorum/internal/domain/entity"
	domainerrors "quorum/internal/domain/errors"
	"quorum/internal/domain/repository"
	"quorum/internal/errors"
	"quorum/internal/usecase"

	"github.com/google/uuid"
)

type tokenLifecycleService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger

	// now is swappable so expiry boundaries can be pinned in tests.
	now func() time.Time
}

// NewTokenLifecycleService creates the one-time token use case.
func NewTokenLifecycleService(userRepo repository.UserRepository, logger *slog.Logger) usecase.TokenUsecase {
	return &tokenLifecycleService{
		userRepo: userRepo,
		logger:   logger,
		now:      time.Now,
	}
}

// IssueToken stores the token in the user's single slot, overwriting any
// prior value. The previous token, if any, stops working immediately.
func (s *tokenLifecycleService) IssueToken(ctx context.Context, userID uuid.UUID, token string) error {
	if token == "" {
		return domainerrors.ErrMissingArgument.WrapMessage("token is required")
	}

	if err := s.userRepo.SetToken(ctx, userID, &token); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("cannot issue token for missing user")
		}

		return err
	}

	s.logger.InfoContext(ctx, "one-time token issued",
		slog.String("userID", userID.String()),
	)

	return nil
}

// RevokeToken clears the slot. Clearing an already empty slot succeeds.
func (s *tokenLifecycleService) RevokeToken(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.SetToken(ctx, userID, nil); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("cannot revoke token for missing user")
		}

		return err
	}

	s.logger.InfoContext(ctx, "one-time token revoked",
		slog.String("userID", userID.String()),
	)

	return nil
}

// VerifyToken runs the fixed check order: argument presence, id and token
// match, expiry, then conditional consumption. An expired token fails the
// check but stays outstanding so the failure is observable afterwards.
func (s *tokenLifecycleService) VerifyToken(ctx context.Context, input usecase.VerifyTokenInput) (*entity.AuthFlowUserView, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerrors.ErrMissingArgument.WrapMessage("user id is required")
	}
	if input.Token == "" {
		return nil, domainerrors.ErrMissingArgument.WrapMessage("token is required")
	}
	if input.ExpiresAt <= 0 {
		return nil, domainerrors.ErrMissingArgument.WrapMessage("token expiry is required")
	}

	user, err := s.userRepo.FindByIDAndToken(ctx, input.UserID, input.Token)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidToken.WrapMessage("token does not match any user")
		}

		return nil, err
	}

	// Expiry is carried in seconds; compare in milliseconds against now.
	if s.now().UnixMilli() > input.ExpiresAt*1000 {
		return nil, domainerrors.ErrTokenExpired.WrapMessage("token expired before verification")
	}

	// The conditional consume guarantees at most one concurrent verification
	// wins even though the match above already succeeded.
	consumed, err := s.userRepo.ConsumeToken(ctx, input.UserID, input.Token)
	if err != nil {
		return nil, err
	}
	if !consumed {
		return nil, domainerrors.ErrInvalidToken.WrapMessage("token was already consumed")
	}

	s.logger.InfoContext(ctx, "one-time token verified",
		slog.String("userID", input.UserID.String()),
	)

	user.Token = nil

	return entity.NewAuthFlowUserView(user), nil
}
