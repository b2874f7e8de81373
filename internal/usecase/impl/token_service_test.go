package impl

import (
	"context"
	"testing"
	"time"

	"quorum/internal/domain/entity"
	domainerrors "quorum/internal/domain/errors"
	"quorum/internal/domain/repository"
	mockrepo "quorum/internal/mocks/repository"
	"quorum/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTokenServiceAt(userRepo repository.UserRepository, now time.Time) usecase.TokenUsecase {
	svc := NewTokenLifecycleService(userRepo, newDiscardLogger()).(*tokenLifecycleService)
	svc.now = func() time.Time { return now }

	return svc
}

func TestIssueToken_OverwritesPriorToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userRepo := mockrepo.NewMockUserRepository(t)

	// Both issues hit the same single slot; the second silently replaces the first.
	userRepo.On("SetToken", ctx, userID, mock.MatchedBy(func(tok *string) bool {
		return tok != nil && *tok == "token-a"
	})).Return(nil).Once()
	userRepo.On("SetToken", ctx, userID, mock.MatchedBy(func(tok *string) bool {
		return tok != nil && *tok == "token-b"
	})).Return(nil).Once()

	svc := NewTokenLifecycleService(userRepo, newDiscardLogger())

	require.NoError(t, svc.IssueToken(ctx, userID, "token-a"))
	require.NoError(t, svc.IssueToken(ctx, userID, "token-b"))
}

func TestIssueToken_EmptyToken(t *testing.T) {
	userRepo := mockrepo.NewMockUserRepository(t)
	svc := NewTokenLifecycleService(userRepo, newDiscardLogger())

	err := svc.IssueToken(context.Background(), uuid.New(), "")

	assert.ErrorIs(t, err, domainerrors.ErrMissingArgument)
}

func TestRevokeToken_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.On("SetToken", ctx, userID, (*string)(nil)).Return(nil).Times(2)

	svc := NewTokenLifecycleService(userRepo, newDiscardLogger())

	// Revoking with no outstanding token succeeds exactly like a real revoke.
	require.NoError(t, svc.RevokeToken(ctx, userID))
	require.NoError(t, svc.RevokeToken(ctx, userID))
}

func TestVerifyToken_Success(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	token := "token-a"
	now := time.Now()
	expiresAt := now.Add(time.Hour).Unix()

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.On("FindByIDAndToken", ctx, userID, token).Return(&entity.User{
		ID:           userID,
		Email:        "ada@example.com",
		PasswordHash: "hashed",
		Token:        &token,
	}, nil)
	userRepo.On("ConsumeToken", ctx, userID, token).Return(true, nil)

	svc := newTokenServiceAt(userRepo, now)

	view, err := svc.VerifyToken(ctx, usecase.VerifyTokenInput{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	})

	require.NoError(t, err)
	require.NotNil(t, view)
	assert.Equal(t, userID, view.ID)
	assert.Equal(t, "hashed", view.PasswordHash)
	assert.Nil(t, view.Token)
}

func TestVerifyToken_MissingArguments(t *testing.T) {
	ctx := context.Background()
	userRepo := mockrepo.NewMockUserRepository(t)
	svc := NewTokenLifecycleService(userRepo, newDiscardLogger())

	cases := []struct {
		name  string
		input usecase.VerifyTokenInput
	}{
		{"no user id", usecase.VerifyTokenInput{Token: "tok", ExpiresAt: 100}},
		{"no token", usecase.VerifyTokenInput{UserID: uuid.New(), ExpiresAt: 100}},
		{"no expiry", usecase.VerifyTokenInput{UserID: uuid.New(), Token: "tok"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.VerifyToken(ctx, tc.input)
			assert.ErrorIs(t, err, domainerrors.ErrMissingArgument)
		})
	}
}

func TestVerifyToken_NoMatchingToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.On("FindByIDAndToken", ctx, userID, "wrong").
		Return(nil, repository.ErrUserNotFound)

	svc := newTokenServiceAt(userRepo, time.Now())

	_, err := svc.VerifyToken(ctx, usecase.VerifyTokenInput{
		UserID:    userID,
		Token:     "wrong",
		ExpiresAt: time.Now().Add(time.Hour).Unix(),
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestVerifyToken_ExpiredTokenRemainsOutstanding(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	token := "token-a"
	expiresAt := time.Now().Unix()
	now := time.Unix(expiresAt, 0).Add(time.Minute)

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.On("FindByIDAndToken", ctx, userID, token).Return(&entity.User{
		ID:    userID,
		Token: &token,
	}, nil)

	svc := newTokenServiceAt(userRepo, now)

	_, err := svc.VerifyToken(ctx, usecase.VerifyTokenInput{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	})

	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	// The expired token is not cleared; only a successful verification or an
	// explicit revoke removes it.
	userRepo.AssertNotCalled(t, "ConsumeToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyToken_ExactExpirySecondStillValid(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	token := "token-a"
	expiresAt := int64(1_700_000_000)

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.On("FindByIDAndToken", ctx, userID, token).Return(&entity.User{
		ID:    userID,
		Token: &token,
	}, nil)
	userRepo.On("ConsumeToken", ctx, userID, token).Return(true, nil)

	// now equals the expiry instant exactly; the comparison is strict.
	svc := newTokenServiceAt(userRepo, time.UnixMilli(expiresAt*1000))

	_, err := svc.VerifyToken(ctx, usecase.VerifyTokenInput{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
	})

	assert.NoError(t, err)
}

func TestVerifyToken_LosesConsumeRace(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	token := "token-a"
	now := time.Now()

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.On("FindByIDAndToken", ctx, userID, token).Return(&entity.User{
		ID:    userID,
		Token: &token,
	}, nil)
	// Another verification consumed the token between the read and the
	// conditional update.
	userRepo.On("ConsumeToken", ctx, userID, token).Return(false, nil)

	svc := newTokenServiceAt(userRepo, now)

	_, err := svc.VerifyToken(ctx, usecase.VerifyTokenInput{
		UserID:    userID,
		Token:     token,
		ExpiresAt: now.Add(time.Hour).Unix(),
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestVerifyToken_SingleUse(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	token := "token-a"
	now := time.Now()
	expiresAt := now.Add(time.Hour).Unix()

	userRepo := mockrepo.NewMockUserRepository(t)
	userRepo.On("FindByIDAndToken", ctx, userID, token).Return(&entity.User{
		ID:    userID,
		Token: &token,
	}, nil).Once()
	userRepo.On("ConsumeToken", ctx, userID, token).Return(true, nil).Once()
	// The second attempt no longer matches a stored token.
	userRepo.On("FindByIDAndToken", ctx, userID, token).
		Return(nil, repository.ErrUserNotFound).Once()

	svc := newTokenServiceAt(userRepo, now)
	input := usecase.VerifyTokenInput{UserID: userID, Token: token, ExpiresAt: expiresAt}

	_, err := svc.VerifyToken(ctx, input)
	require.NoError(t, err)

	_, err = svc.VerifyToken(ctx, input)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}
