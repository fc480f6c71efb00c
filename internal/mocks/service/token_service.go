package service

import (
	"directorio/internal/domain/entity"
	"directorio/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockTokenService is a mock of service.TokenService.
type MockTokenService struct {
	mock.Mock
}

var _ service.TokenService = (*MockTokenService)(nil)

// NewMockTokenService creates a mock whose expectations are asserted when the test ends.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockTokenService) IssueUsuarioToken(usuario *entity.Usuario) (string, error) {
	args := m.Called(usuario)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) IssueComercioToken(comercio *entity.Comercio) (string, error) {
	args := m.Called(comercio)

	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidateToken(tokenString string) (*entity.Principal, error) {
	args := m.Called(tokenString)

	principal, _ := args.Get(0).(*entity.Principal)

	return principal, args.Error(1)
}
