package impl

import (
	"context"
	"testing"
	"time"

	"quorum/internal/domain/entity"
	domainerrors "quorum/internal/domain/errors"
	"quorum/internal/domain/repository"
	mockrepo "quorum/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjections_FieldSensitivity(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	token := "outstanding-token"

	user := &entity.User{
		ID:           userID,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Username:     "ada",
		Email:        "ada@example.com",
		PasswordHash: "hashed",
		Token:        &token,
		CreatedAt:    time.Now(),
	}

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.On("FindByID", ctx, userID).Return(user, nil).Times(3)

	svc := NewViewService(userRepo, newDiscardLogger())

	authView, err := svc.AuthFlowView(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "hashed", authView.PasswordHash)
	require.NotNil(t, authView.Token)
	assert.Equal(t, token, *authView.Token)

	sameView, err := svc.SameUserView(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", sameView.Email)

	publicView, err := svc.PublicView(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "ada", publicView.Username)
	assert.Equal(t, userID, publicView.ID)
}

func TestViews_UserNotFound(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.On("FindByID", ctx, userID).Return(nil, repository.ErrUserNotFound).Times(3)

	svc := NewViewService(userRepo, newDiscardLogger())

	_, err := svc.AuthFlowView(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	_, err = svc.SameUserView(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	_, err = svc.PublicView(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthFlowViewByEmail(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.On("FindByEmail", ctx, "ada@example.com").Return(&entity.User{
		ID:           userID,
		Email:        "ada@example.com",
		PasswordHash: "hashed",
	}, nil)
	userRepo.On("FindByEmail", ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	svc := NewViewService(userRepo, newDiscardLogger())

	view, err := svc.AuthFlowViewByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, userID, view.ID)

	_, err = svc.AuthFlowViewByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	_, err = svc.AuthFlowViewByEmail(ctx, "")
	assert.ErrorIs(t, err, domainerrors.ErrMissingArgument)
}
