// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

// NewMockPasswordHasher creates a mock whose expectations are asserted on
// test cleanup.
func NewMockPasswordHasher(t *testing.T) *MockPasswordHasher {
	m := &MockPasswordHasher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockOneTimeTokenService is a mock implementation of service.OneTimeTokenService.
type MockOneTimeTokenService struct {
	mock.Mock
}

// NewMockOneTimeTokenService creates a mock whose expectations are asserted
// on test cleanup.
func NewMockOneTimeTokenService(t *testing.T) *MockOneTimeTokenService {
	m := &MockOneTimeTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOneTimeTokenService) Mint(userID uuid.UUID) (string, int64, error) {
	args := m.Called(userID)

	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockOneTimeTokenService) Inspect(token string) (uuid.UUID, int64, error) {
	args := m.Called(token)

	return args.Get(0).(uuid.UUID), args.Get(1).(int64), args.Error(2)
}
