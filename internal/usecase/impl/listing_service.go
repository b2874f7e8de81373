package impl

import (
	"context"
	"log/slog"

	"quorum/internal/domain/entity"
	"quorum/internal/domain/repository"
	"quorum/internal/usecase"
)

type listingService struct {
	userRepo repository.UserRepository
	cityRepo repository.CityRepository
	voteRepo repository.VoteRepository
	logger   *slog.Logger
}

// NewListingService creates the shared filtered listing use case.
func NewListingService(
	userRepo repository.UserRepository,
	cityRepo repository.CityRepository,
	voteRepo repository.VoteRepository,
	logger *slog.Logger,
) usecase.ListingUsecase {
	return &listingService{
		userRepo: userRepo,
		cityRepo: cityRepo,
		voteRepo: voteRepo,
		logger:   logger,
	}
}

// ListUsers returns the filtered page as public projections. The repository
// counts before the window applies, so Total is the full filtered count.
func (s *listingService) ListUsers(ctx context.Context, query usecase.ListUsersQuery) (*usecase.UserListResult, error) {
	users, total, err := s.userRepo.FindAndCount(ctx, repository.UserFilter{
		Page:      repository.Page{Limit: query.Limit, Offset: query.Offset},
		ID:        query.ID,
		FirstName: query.FirstName,
		CreatedAt: query.CreatedAt,
	})
	if err != nil {
		return nil, err
	}

	views := make([]*entity.PublicUserView, 0, len(users))
	for _, user := range users {
		views = append(views, entity.NewPublicUserView(user))
	}

	return &usecase.UserListResult{Users: views, Total: total}, nil
}

func (s *listingService) ListCities(ctx context.Context, query usecase.ListCitiesQuery) (*usecase.CityListResult, error) {
	cities, total, err := s.cityRepo.FindAndCount(ctx, repository.CityFilter{
		Page: repository.Page{Limit: query.Limit, Offset: query.Offset},
		ID:   query.ID,
		Name: query.Name,
	})
	if err != nil {
		return nil, err
	}

	return &usecase.CityListResult{Cities: cities, Total: total}, nil
}

func (s *listingService) ListVotes(ctx context.Context, query usecase.ListVotesQuery) (*usecase.VoteListResult, error) {
	votes, total, err := s.voteRepo.FindAndCount(ctx, repository.VoteFilter{
		Page:   repository.Page{Limit: query.Limit, Offset: query.Offset},
		UserID: query.UserID,
	})
	if err != nil {
		return nil, err
	}

	return &usecase.VoteListResult{Votes: votes, Total: total}, nil
}
