package repository

import (
	"context"
	"testing"

	"quorum/internal/domain/entity"
	domainrepo "quorum/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockCityRepository is a mock implementation of repository.CityRepository.
type MockCityRepository struct {
	mock.Mock
}

// NewMockCityRepository creates a mock whose expectations are asserted on
// test cleanup.
func NewMockCityRepository(t *testing.T) *MockCityRepository {
	m := &MockCityRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCityRepository) FindAndCount(ctx context.Context, filter domainrepo.CityFilter) ([]*entity.City, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}

	return args.Get(0).([]*entity.City), args.Get(1).(int64), args.Error(2)
}
