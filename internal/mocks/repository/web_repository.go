package repository

import (
	"context"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockWebRepository is a mock of repository.WebRepository.
type MockWebRepository struct {
	mock.Mock
}

var _ repository.WebRepository = (*MockWebRepository)(nil)

// NewMockWebRepository creates a mock whose expectations are asserted when the test ends.
func NewMockWebRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWebRepository {
	m := &MockWebRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockWebRepository) Create(ctx context.Context, web *entity.Web) error {
	args := m.Called(ctx, web)

	return args.Error(0)
}

func (m *MockWebRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Web, error) {
	args := m.Called(ctx, id)

	return webOrNil(args.Get(0)), args.Error(1)
}

func (m *MockWebRepository) List(ctx context.Context, filter repository.WebFilter) ([]*entity.Web, error) {
	args := m.Called(ctx, filter)

	webs, _ := args.Get(0).([]*entity.Web)

	return webs, args.Error(1)
}

func (m *MockWebRepository) Update(ctx context.Context, id uuid.UUID, patch *repository.WebPatch) (*entity.Web, error) {
	args := m.Called(ctx, id, patch)

	return webOrNil(args.Get(0)), args.Error(1)
}

func (m *MockWebRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*entity.Web, error) {
	args := m.Called(ctx, id)

	return webOrNil(args.Get(0)), args.Error(1)
}

func (m *MockWebRepository) HardDelete(ctx context.Context, id uuid.UUID) (*entity.Web, error) {
	args := m.Called(ctx, id)

	return webOrNil(args.Get(0)), args.Error(1)
}

func (m *MockWebRepository) AppendResena(ctx context.Context, id uuid.UUID, resena *entity.Resena) error {
	args := m.Called(ctx, id, resena)

	return args.Error(0)
}

func webOrNil(v any) *entity.Web {
	web, _ := v.(*entity.Web)

	return web
}
