// Package repository provides testify mocks of the persistence interfaces.
package repository

import (
	"context"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUsuarioRepository is a mock of repository.UsuarioRepository.
type MockUsuarioRepository struct {
	mock.Mock
}

var _ repository.UsuarioRepository = (*MockUsuarioRepository)(nil)

// NewMockUsuarioRepository creates a mock whose expectations are asserted when the test ends.
func NewMockUsuarioRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUsuarioRepository {
	m := &MockUsuarioRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockUsuarioRepository) Create(ctx context.Context, usuario *entity.Usuario) error {
	args := m.Called(ctx, usuario)

	return args.Error(0)
}

func (m *MockUsuarioRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Usuario, error) {
	args := m.Called(ctx, id)

	return usuarioOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUsuarioRepository) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	args := m.Called(ctx, email)

	return usuarioOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUsuarioRepository) List(ctx context.Context, filter repository.UsuarioFilter) ([]*entity.Usuario, error) {
	args := m.Called(ctx, filter)

	usuarios, _ := args.Get(0).([]*entity.Usuario)

	return usuarios, args.Error(1)
}

func (m *MockUsuarioRepository) Update(ctx context.Context, id uuid.UUID, patch *repository.UsuarioPatch) (*entity.Usuario, error) {
	args := m.Called(ctx, id, patch)

	return usuarioOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUsuarioRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*entity.Usuario, error) {
	args := m.Called(ctx, id)

	return usuarioOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUsuarioRepository) HardDelete(ctx context.Context, id uuid.UUID) (*entity.Usuario, error) {
	args := m.Called(ctx, id)

	return usuarioOrNil(args.Get(0)), args.Error(1)
}

func (m *MockUsuarioRepository) AppendResena(ctx context.Context, id uuid.UUID, webID uuid.UUID) error {
	args := m.Called(ctx, id, webID)

	return args.Error(0)
}

func usuarioOrNil(v any) *entity.Usuario {
	usuario, _ := v.(*entity.Usuario)

	return usuario
}
