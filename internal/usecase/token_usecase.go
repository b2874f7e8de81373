package usecase

import (
	"context"

	"quorum/internal/domain/entity"

	"github.com/google/uuid"
)

// VerifyTokenInput carries the three values a token verification needs.
// ExpiresAt is a unix timestamp in seconds; the comparison against the
// current time happens inside the use case, in milliseconds.
type VerifyTokenInput struct {
	UserID    uuid.UUID
	Token     string
	ExpiresAt int64
}

// TokenUsecase drives the single-slot one-time token state machine on a user
// record. A user holds at most one outstanding token: issuing overwrites,
// revoking clears, and a successful verification consumes it.
type TokenUsecase interface {
	// IssueToken stores token as the user's outstanding one-time credential,
	// replacing any prior token.
	IssueToken(ctx context.Context, userID uuid.UUID, token string) error

	// RevokeToken clears the outstanding token. Revoking when no token is
	// outstanding is a no-op, not an error.
	RevokeToken(ctx context.Context, userID uuid.UUID) error

	// VerifyToken checks the presented token against the stored one and, on
	// success, consumes it and returns the full auth-flow projection.
	// An expired token fails verification but is left outstanding.
	VerifyToken(ctx context.Context, input VerifyTokenInput) (*entity.AuthFlowUserView, error)
}
