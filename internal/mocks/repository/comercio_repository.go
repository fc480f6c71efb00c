package repository

import (
	"context"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockComercioRepository is a mock of repository.ComercioRepository.
type MockComercioRepository struct {
	mock.Mock
}

var _ repository.ComercioRepository = (*MockComercioRepository)(nil)

// NewMockComercioRepository creates a mock whose expectations are asserted when the test ends.
func NewMockComercioRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockComercioRepository {
	m := &MockComercioRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockComercioRepository) Create(ctx context.Context, comercio *entity.Comercio) error {
	args := m.Called(ctx, comercio)

	return args.Error(0)
}

func (m *MockComercioRepository) FindByCIF(ctx context.Context, cif string) (*entity.Comercio, error) {
	args := m.Called(ctx, cif)

	return comercioOrNil(args.Get(0)), args.Error(1)
}

func (m *MockComercioRepository) List(ctx context.Context) ([]*entity.Comercio, error) {
	args := m.Called(ctx)

	comercios, _ := args.Get(0).([]*entity.Comercio)

	return comercios, args.Error(1)
}

func (m *MockComercioRepository) Update(ctx context.Context, cif string, patch *repository.ComercioPatch) (*entity.Comercio, error) {
	args := m.Called(ctx, cif, patch)

	return comercioOrNil(args.Get(0)), args.Error(1)
}

func (m *MockComercioRepository) SoftDelete(ctx context.Context, cif string) (*entity.Comercio, error) {
	args := m.Called(ctx, cif)

	return comercioOrNil(args.Get(0)), args.Error(1)
}

func (m *MockComercioRepository) HardDelete(ctx context.Context, cif string) (*entity.Comercio, error) {
	args := m.Called(ctx, cif)

	return comercioOrNil(args.Get(0)), args.Error(1)
}

func (m *MockComercioRepository) AssignPagina(ctx context.Context, cif string, webID uuid.UUID) error {
	args := m.Called(ctx, cif, webID)

	return args.Error(0)
}

func (m *MockComercioRepository) ClearPagina(ctx context.Context, cif string) error {
	args := m.Called(ctx, cif)

	return args.Error(0)
}

func comercioOrNil(v any) *entity.Comercio {
	comercio, _ := v.(*entity.Comercio)

	return comercio
}
