package usecase

import (
	"context"

	"quorum/internal/domain/entity"

	"github.com/google/uuid"
)

// ViewUsecase reads a single user through one of the fixed projections.
// The projection is chosen by the caller's trust level, never by a
// caller-supplied field list.
type ViewUsecase interface {
	// AuthFlowView returns the internal projection including credentials.
	// Reserved for the authentication flow; never serialized to a client.
	AuthFlowView(ctx context.Context, userID uuid.UUID) (*entity.AuthFlowUserView, error)

	// AuthFlowViewByEmail resolves a user by email for the recovery flow.
	AuthFlowViewByEmail(ctx context.Context, email string) (*entity.AuthFlowUserView, error)

	// SameUserView returns the owner-facing projection: contact details
	// included, credentials withheld.
	SameUserView(ctx context.Context, userID uuid.UUID) (*entity.SameUserView, error)

	// PublicView returns the third-party-safe projection.
	PublicView(ctx context.Context, userID uuid.UUID) (*entity.PublicUserView, error)
}
