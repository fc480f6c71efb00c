package repository

import (
	"context"

	"directorio/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

// MockTransactionManager is a mock of repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

var _ repository.TransactionManager = (*MockTransactionManager)(nil)

// NewMockTransactionManager creates a mock whose expectations are asserted when the test ends.
func NewMockTransactionManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTransactionManager {
	m := &MockTransactionManager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// Execute records the call. When the expectation returns a RepositoryFactory as its
// second value, fn is run against it and its error is returned instead.
func (m *MockTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	if len(args) > 1 {
		if factory, ok := args.Get(1).(repository.RepositoryFactory); ok {
			return fn(factory)
		}
	}

	return args.Error(0)
}

// MockRepositoryFactory is a mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

var _ repository.RepositoryFactory = (*MockRepositoryFactory)(nil)

// NewMockRepositoryFactory creates a factory mock. Expectations are not asserted
// so tests may register repositories that a failing path never reaches.
func NewMockRepositoryFactory() *MockRepositoryFactory {
	return &MockRepositoryFactory{}
}

func (m *MockRepositoryFactory) UsuarioRepo() repository.UsuarioRepository {
	args := m.Called()

	return args.Get(0).(repository.UsuarioRepository)
}

func (m *MockRepositoryFactory) ComercioRepo() repository.ComercioRepository {
	args := m.Called()

	return args.Get(0).(repository.ComercioRepository)
}

func (m *MockRepositoryFactory) WebRepo() repository.WebRepository {
	args := m.Called()

	return args.Get(0).(repository.WebRepository)
}
