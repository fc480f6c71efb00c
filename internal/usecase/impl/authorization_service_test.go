package impl

import (
	"context"
	"testing"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	mockRepo "directorio/internal/mocks/repository"
	"directorio/internal/testutil/fixtures"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authorizationFixtures struct {
	authorizer   usecase.Authorizer
	usuarioRepo  *mockRepo.MockUsuarioRepository
	comercioRepo *mockRepo.MockComercioRepository
}

func createTestAuthorizationService(t *testing.T) authorizationFixtures {
	usuarioRepo := mockRepo.NewMockUsuarioRepository(t)
	comercioRepo := mockRepo.NewMockComercioRepository(t)

	return authorizationFixtures{
		authorizer: NewAuthorizationService(AuthorizationServiceParams{
			UsuarioRepo:  usuarioRepo,
			ComercioRepo: comercioRepo,
			Logger:       newDiscardLogger(),
		}),
		usuarioRepo:  usuarioRepo,
		comercioRepo: comercioRepo,
	}
}

func usuarioPrincipal(u *entity.Usuario) *entity.Principal {
	return &entity.Principal{ID: u.ID, Kind: entity.PrincipalUsuario, Rol: u.Rol, Email: u.Email}
}

func comercioPrincipal(c *entity.Comercio) *entity.Principal {
	return &entity.Principal{ID: c.ID, Kind: entity.PrincipalComercio, CIF: c.CIF}
}

func TestAuthorizationService_PublicActions(t *testing.T) {
	f := createTestAuthorizationService(t)

	for _, action := range []entity.Action{
		entity.ActionSignup, entity.ActionSignin, entity.ActionListUsuarios,
		entity.ActionListComercios, entity.ActionGetComercio,
		entity.ActionListWebs, entity.ActionGetWeb,
	} {
		grant, err := f.authorizer.Authorize(context.Background(), nil, action)
		require.NoError(t, err, action)
		assert.Nil(t, grant.Usuario)
		assert.Nil(t, grant.Comercio)
	}
}

func TestAuthorizationService_MissingPrincipal(t *testing.T) {
	f := createTestAuthorizationService(t)

	_, err := f.authorizer.Authorize(context.Background(), nil, entity.ActionUpdateSelf)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthorizationService_UnknownAction(t *testing.T) {
	f := createTestAuthorizationService(t)
	principal := usuarioPrincipal(fixtures.Usuario(entity.RolAdmin))

	_, err := f.authorizer.Authorize(context.Background(), principal, entity.Action("drop_tables"))
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAuthorizationService_WrongPrincipalKind(t *testing.T) {
	f := createTestAuthorizationService(t)
	ctx := context.Background()

	_, err := f.authorizer.Authorize(ctx, comercioPrincipal(fixtures.Comercio()), entity.ActionCreateResena)
	assert.ErrorIs(t, err, domainerrors.ErrWrongPrincipalKind)

	_, err = f.authorizer.Authorize(ctx, usuarioPrincipal(fixtures.Usuario(entity.RolAdmin)), entity.ActionCreateWeb)
	assert.ErrorIs(t, err, domainerrors.ErrWrongPrincipalKind)
}

func TestAuthorizationService_Usuario(t *testing.T) {
	ctx := context.Background()

	t.Run("self actions load the usuario", func(t *testing.T) {
		f := createTestAuthorizationService(t)
		usuario := fixtures.Usuario(entity.RolUsuario)
		f.usuarioRepo.On("FindByID", ctx, usuario.ID).Return(usuario, nil).Once()

		grant, err := f.authorizer.Authorize(ctx, usuarioPrincipal(usuario), entity.ActionUpdateSelf)
		require.NoError(t, err)
		assert.Same(t, usuario, grant.Usuario)
	})

	t.Run("deleted usuario is unauthorized", func(t *testing.T) {
		f := createTestAuthorizationService(t)
		usuario := fixtures.Usuario(entity.RolUsuario)
		f.usuarioRepo.On("FindByID", ctx, usuario.ID).Return(nil, domainerrors.ErrUsuarioNotFound).Once()

		_, err := f.authorizer.Authorize(ctx, usuarioPrincipal(usuario), entity.ActionCreateResena)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("non admin cannot manage comercios", func(t *testing.T) {
		f := createTestAuthorizationService(t)
		usuario := fixtures.Usuario(entity.RolUsuario)
		f.usuarioRepo.On("FindByID", ctx, usuario.ID).Return(usuario, nil).Once()

		_, err := f.authorizer.Authorize(ctx, usuarioPrincipal(usuario), entity.ActionCreateComercio)
		assert.ErrorIs(t, err, domainerrors.ErrNotAdmin)
	})

	t.Run("role is read from storage not from the token", func(t *testing.T) {
		f := createTestAuthorizationService(t)
		stored := fixtures.Usuario(entity.RolUsuario)
		principal := usuarioPrincipal(stored)
		principal.Rol = entity.RolAdmin
		f.usuarioRepo.On("FindByID", ctx, stored.ID).Return(stored, nil).Once()

		_, err := f.authorizer.Authorize(ctx, principal, entity.ActionDeleteComercio)
		assert.ErrorIs(t, err, domainerrors.ErrNotAdmin)
	})

	t.Run("admin manages comercios", func(t *testing.T) {
		f := createTestAuthorizationService(t)
		admin := fixtures.Usuario(entity.RolAdmin)
		f.usuarioRepo.On("FindByID", ctx, admin.ID).Return(admin, nil).Once()

		grant, err := f.authorizer.Authorize(ctx, usuarioPrincipal(admin), entity.ActionUpdateComercio)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, grant.Usuario.ID)
	})
}

func TestAuthorizationService_Comercio(t *testing.T) {
	ctx := context.Background()
	pagina := uuid.New()

	tests := []struct {
		name    string
		action  entity.Action
		pagina  *uuid.UUID
		wantErr error
	}{
		{name: "create without page", action: entity.ActionCreateWeb},
		{name: "create with page", action: entity.ActionCreateWeb, pagina: &pagina, wantErr: domainerrors.ErrComercioHasPagina},
		{name: "update with page", action: entity.ActionUpdateWeb, pagina: &pagina},
		{name: "update without page", action: entity.ActionUpdateWeb, wantErr: domainerrors.ErrComercioSinPagina},
		{name: "delete without page", action: entity.ActionDeleteWeb, wantErr: domainerrors.ErrComercioSinPagina},
		{name: "upload with page", action: entity.ActionUploadFoto, pagina: &pagina},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestAuthorizationService(t)
			comercio := fixtures.Comercio()
			comercio.Pagina = tt.pagina
			f.comercioRepo.On("FindByCIF", ctx, comercio.CIF).Return(comercio, nil).Once()

			grant, err := f.authorizer.Authorize(ctx, comercioPrincipal(comercio), tt.action)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Same(t, comercio, grant.Comercio)
		})
	}

	t.Run("missing comercio", func(t *testing.T) {
		f := createTestAuthorizationService(t)
		comercio := fixtures.Comercio()
		f.comercioRepo.On("FindByCIF", ctx, comercio.CIF).Return(nil, domainerrors.ErrComercioNotFound).Once()

		_, err := f.authorizer.Authorize(ctx, comercioPrincipal(comercio), entity.ActionCreateWeb)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("re-registered cif does not honor old tokens", func(t *testing.T) {
		f := createTestAuthorizationService(t)
		comercio := fixtures.Comercio()
		principal := comercioPrincipal(comercio)
		principal.ID = uuid.New()
		f.comercioRepo.On("FindByCIF", ctx, comercio.CIF).Return(comercio, nil).Once()

		_, err := f.authorizer.Authorize(ctx, principal, entity.ActionCreateWeb)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}
