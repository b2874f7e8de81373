package repository

import (
	"context"

	"quorum/internal/domain/entity"
)

// VoteRepository exposes the read-only listing contract over votes.
type VoteRepository interface {
	// FindAndCount returns the filtered page and the total matching count.
	FindAndCount(ctx context.Context, filter VoteFilter) ([]*entity.Vote, int64, error)
}
