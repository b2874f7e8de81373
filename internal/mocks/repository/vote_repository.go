package repository

import (
	"context"
	"testing"

	"quorum/internal/domain/entity"
	domainrepo "quorum/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockVoteRepository is a mock implementation of repository.VoteRepository.
type MockVoteRepository struct {
	mock.Mock
}

// NewMockVoteRepository creates a mock whose expectations are asserted on
// test cleanup.
func NewMockVoteRepository(t *testing.T) *MockVoteRepository {
	m := &MockVoteRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockVoteRepository) FindAndCount(ctx context.Context, filter domainrepo.VoteFilter) ([]*entity.Vote, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.Vote), args.Get(1).(int64), args.Error(2)
}
