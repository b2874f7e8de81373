package usecase

import (
	"context"

	"quorum/internal/domain/entity"

	"github.com/google/uuid"
)

// PageQuery is the shared optional pagination window. The window applies only
// when both limit and offset are supplied; the returned total always reflects
// the full filtered count.
type PageQuery struct {
	Limit  *int
	Offset *int
}

// ListUsersQuery filters the user listing. ID matches by equality; FirstName
// and CreatedAt match by case-insensitive substring.
type ListUsersQuery struct {
	PageQuery

	ID        *uuid.UUID
	FirstName string
	CreatedAt string
}

// ListCitiesQuery filters the city listing.
type ListCitiesQuery struct {
	PageQuery

	ID   *int64
	Name string
}

// ListVotesQuery filters the vote listing.
type ListVotesQuery struct {
	PageQuery

	UserID *uuid.UUID
}

// UserListResult is a page of public user projections plus the filtered total.
type UserListResult struct {
	Users []*entity.PublicUserView `json:"rows"`
	Total int64                    `json:"count"`
}

// CityListResult is a page of cities plus the filtered total.
type CityListResult struct {
	Cities []*entity.City `json:"rows"`
	Total  int64          `json:"count"`
}

// VoteListResult is a page of votes plus the filtered total.
type VoteListResult struct {
	Votes []*entity.Vote `json:"rows"`
	Total int64          `json:"count"`
}

// ListingUsecase answers the shared filtered, paginated listing operations.
// All listings are read-only and count before the pagination window applies.
type ListingUsecase interface {
	// ListUsers returns the filtered user page as public projections.
	ListUsers(ctx context.Context, query ListUsersQuery) (*UserListResult, error)

	// ListCities returns the filtered city page.
	ListCities(ctx context.Context, query ListCitiesQuery) (*CityListResult, error)

	// ListVotes returns the filtered vote page.
	ListVotes(ctx context.Context, query ListVotesQuery) (*VoteListResult, error)
}
