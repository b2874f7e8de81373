package repository

import (
	"context"

	"quorum/internal/domain/entity"
)

// CityRepository exposes the read-only listing contract over cities.
type CityRepository interface {
	// FindAndCount returns the filtered page and the total matching count.
	FindAndCount(ctx context.Context, filter CityFilter) ([]*entity.City, int64, error)
}
