package impl

import (
	"context"
	"testing"

	"quorum/internal/domain/entity"
	"quorum/internal/domain/repository"
	mockrepo "quorum/internal/mocks/repository"
	"quorum/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestListUsers_PassesFilterAndProjectsPublicViews(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	users := []*entity.User{
		{ID: userID, FirstName: "Ada", Email: "ada@example.com", PasswordHash: "hashed"},
	}

	userRepo := mockrepo.NewMockUserRepository(t)
	cityRepo := mockrepo.NewMockCityRepository(t)
	voteRepo := mockrepo.NewMockVoteRepository(t)

	userRepo.On("FindAndCount", ctx, mock.MatchedBy(func(f repository.UserFilter) bool {
		return f.FirstName == "ada" &&
			f.Limit != nil && *f.Limit == 10 &&
			f.Offset != nil && *f.Offset == 20
	})).Return(users, int64(31), nil)

	svc := NewListingService(userRepo, cityRepo, voteRepo, newDiscardLogger())

	result, err := svc.ListUsers(ctx, usecase.ListUsersQuery{
		PageQuery: usecase.PageQuery{Limit: intPtr(10), Offset: intPtr(20)},
		FirstName: "ada",
	})

	require.NoError(t, err)
	// Total reflects the filtered count, not the page size.
	assert.Equal(t, int64(31), result.Total)
	require.Len(t, result.Users, 1)
	assert.Equal(t, userID, result.Users[0].ID)
	assert.Equal(t, "Ada", result.Users[0].FirstName)
}

func TestListUsers_UnboundedWhenWindowIncomplete(t *testing.T) {
	ctx := context.Background()

	userRepo := mockrepo.NewMockUserRepository(t)
	cityRepo := mockrepo.NewMockCityRepository(t)
	voteRepo := mockrepo.NewMockVoteRepository(t)

	userRepo.On("FindAndCount", ctx, mock.MatchedBy(func(f repository.UserFilter) bool {
		// Limit alone does not bound the page.
		return f.Limit != nil && f.Offset == nil && !f.Bounded()
	})).Return([]*entity.User{}, int64(0), nil)

	svc := NewListingService(userRepo, cityRepo, voteRepo, newDiscardLogger())

	_, err := svc.ListUsers(ctx, usecase.ListUsersQuery{
		PageQuery: usecase.PageQuery{Limit: intPtr(5)},
	})

	require.NoError(t, err)
}

func TestListCities(t *testing.T) {
	ctx := context.Background()

	userRepo := mockrepo.NewMockUserRepository(t)
	cityRepo := mockrepo.NewMockCityRepository(t)
	voteRepo := mockrepo.NewMockVoteRepository(t)

	cityRepo.On("FindAndCount", ctx, mock.MatchedBy(func(f repository.CityFilter) bool {
		return f.Name == "spring"
	})).Return([]*entity.City{{ID: 3, Name: "Springfield"}}, int64(1), nil)

	svc := NewListingService(userRepo, cityRepo, voteRepo, newDiscardLogger())

	result, err := svc.ListCities(ctx, usecase.ListCitiesQuery{Name: "spring"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Cities, 1)
	assert.Equal(t, "Springfield", result.Cities[0].Name)
}

func TestListVotes(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	userRepo := mockrepo.NewMockUserRepository(t)
	cityRepo := mockrepo.NewMockCityRepository(t)
	voteRepo := mockrepo.NewMockVoteRepository(t)

	voteRepo.On("FindAndCount", ctx, mock.MatchedBy(func(f repository.VoteFilter) bool {
		return f.UserID != nil && *f.UserID == userID
	})).Return([]*entity.Vote{{ID: 1, UserID: userID, CityID: 3}}, int64(1), nil)

	svc := NewListingService(userRepo, cityRepo, voteRepo, newDiscardLogger())

	result, err := svc.ListVotes(ctx, usecase.ListVotesQuery{UserID: &userID})

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Votes, 1)
	assert.Equal(t, int64(3), result.Votes[0].CityID)
}
