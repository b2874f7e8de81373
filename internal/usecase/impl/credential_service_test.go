package impl

import (
	"context"
	"testing"

	domainerrors "quorum/internal/domain/errors"
	"quorum/internal/domain/repository"
	mockrepo "quorum/internal/mocks/repository"
	mockservice "quorum/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdatePassword_Success(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userRepo := mockrepo.NewMockUserRepository(t)
	hasher := mockservice.NewMockPasswordHasher(t)

	hasher.On("Hash", "new-pass").Return("hashed-new-pass", nil)
	userRepo.On("UpdatePassword", ctx, userID, "hashed-new-pass").Return(nil)

	svc := NewCredentialService(userRepo, hasher, newDiscardLogger())

	require.NoError(t, svc.UpdatePassword(ctx, userID, "new-pass"))
	// Rotation only touches the credential column; the token slot stays as is.
	userRepo.AssertNotCalled(t, "SetToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePassword_EmptyPassword(t *testing.T) {
	userRepo := mockrepo.NewMockUserRepository(t)
	hasher := mockservice.NewMockPasswordHasher(t)

	svc := NewCredentialService(userRepo, hasher, newDiscardLogger())

	err := svc.UpdatePassword(context.Background(), uuid.New(), "")

	assert.ErrorIs(t, err, domainerrors.ErrMissingArgument)
	hasher.AssertNotCalled(t, "Hash", mock.Anything)
}

func TestUpdatePassword_UserNotFound(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userRepo := mockrepo.NewMockUserRepository(t)
	hasher := mockservice.NewMockPasswordHasher(t)

	hasher.On("Hash", "new-pass").Return("hashed-new-pass", nil)
	userRepo.On("UpdatePassword", ctx, userID, "hashed-new-pass").
		Return(repository.ErrUserNotFound)

	svc := NewCredentialService(userRepo, hasher, newDiscardLogger())

	err := svc.UpdatePassword(ctx, userID, "new-pass")

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
