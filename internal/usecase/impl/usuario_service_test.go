package impl

import (
	"context"
	"testing"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	mockRepo "directorio/internal/mocks/repository"
	mockSvc "directorio/internal/mocks/service"
	"directorio/internal/testutil/fixtures"
	"directorio/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type usuarioServiceFixtures struct {
	service      usecase.UsuarioUsecase
	usuarioRepo  *mockRepo.MockUsuarioRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	notifier     *mockSvc.MockNotifier
}

func createTestUsuarioService(t *testing.T) usuarioServiceFixtures {
	usuarioRepo := mockRepo.NewMockUsuarioRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	notifier := mockSvc.NewMockNotifier(t)
	logger := newDiscardLogger()

	authorizer := NewAuthorizationService(AuthorizationServiceParams{
		UsuarioRepo:  usuarioRepo,
		ComercioRepo: mockRepo.NewMockComercioRepository(t),
		Logger:       logger,
	})

	return usuarioServiceFixtures{
		service: NewUsuarioService(UsuarioServiceParams{
			UsuarioRepo:  usuarioRepo,
			Authorizer:   authorizer,
			Hasher:       hasher,
			TokenService: tokenService,
			Notifier:     notifier,
			Logger:       logger,
		}),
		usuarioRepo:  usuarioRepo,
		hasher:       hasher,
		tokenService: tokenService,
		notifier:     notifier,
	}
}

func signupInput() *usecase.SignupInput {
	return &usecase.SignupInput{
		Nombre:                "Lucía",
		Email:                 " Lucia@Example.com ",
		Password:              "s3creta",
		Edad:                  31,
		Ciudad:                "Madrid",
		Intereses:             []string{"cine"},
		PermiteRecibirOfertas: true,
	}
}

func TestUsuarioService_Signup_Success(t *testing.T) {
	f := createTestUsuarioService(t)
	ctx := context.Background()

	f.hasher.On("Hash", "s3creta").Return("hashed", nil).Once()
	f.usuarioRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.Usuario) bool {
		return u.Email == "lucia@example.com" && u.PasswordHash == "hashed" && u.Rol == entity.RolUsuario
	})).Return(nil).Once()
	f.notifier.On("Send", ctx, "lucia@example.com", signupMailSubject, mock.AnythingOfType("string")).Return(nil).Once()

	usuario, err := f.service.Signup(ctx, signupInput())
	require.NoError(t, err)
	assert.Equal(t, entity.RolUsuario, usuario.Rol)
	assert.Empty(t, usuario.PasswordHash)
	assert.Equal(t, []string{"cine"}, usuario.Intereses)
}

func TestUsuarioService_Signup_MailFailureDoesNotFail(t *testing.T) {
	f := createTestUsuarioService(t)
	ctx := context.Background()

	f.hasher.On("Hash", mock.Anything).Return("hashed", nil).Once()
	f.usuarioRepo.On("Create", ctx, mock.Anything).Return(nil).Once()
	f.notifier.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()

	usuario, err := f.service.Signup(ctx, signupInput())
	require.NoError(t, err)
	assert.NotNil(t, usuario)
}

func TestUsuarioService_Signup_AdminRol(t *testing.T) {
	f := createTestUsuarioService(t)
	ctx := context.Background()
	input := signupInput()
	input.Rol = entity.RolAdmin

	f.hasher.On("Hash", mock.Anything).Return("hashed", nil).Once()
	f.usuarioRepo.On("Create", ctx, mock.MatchedBy(func(u *entity.Usuario) bool {
		return u.Rol == entity.RolAdmin
	})).Return(nil).Once()
	f.notifier.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	usuario, err := f.service.Signup(ctx, input)
	require.NoError(t, err)
	assert.True(t, usuario.IsAdmin())
}

func TestUsuarioService_Signup_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid rol", func(t *testing.T) {
		f := createTestUsuarioService(t)
		input := signupInput()
		input.Rol = entity.Rol("root")

		_, err := f.service.Signup(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := createTestUsuarioService(t)
		f.hasher.On("Hash", mock.Anything).Return("hashed", nil).Once()
		f.usuarioRepo.On("Create", ctx, mock.Anything).Return(domainerrors.ErrUsuarioAlreadyExists).Once()

		_, err := f.service.Signup(ctx, signupInput())
		assert.ErrorIs(t, err, domainerrors.ErrUsuarioAlreadyExists)
	})

	t.Run("hash failure", func(t *testing.T) {
		f := createTestUsuarioService(t)
		f.hasher.On("Hash", mock.Anything).Return("", domainerrors.ErrPasswordHashFailed).Once()

		_, err := f.service.Signup(ctx, signupInput())
		assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	})
}

func TestUsuarioService_Signin(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := createTestUsuarioService(t)
		usuario := fixtures.Usuario(entity.RolUsuario)
		usuario.PasswordHash = "hashed"
		f.usuarioRepo.On("FindByEmail", ctx, usuario.Email).Return(usuario, nil).Once()
		f.hasher.On("Check", "pw", "hashed").Return(true).Once()
		f.tokenService.On("IssueUsuarioToken", usuario).Return("jwt", nil).Once()

		out, err := f.service.Signin(ctx, &usecase.SigninInput{Email: usuario.Email, Password: "pw"})
		require.NoError(t, err)
		assert.Equal(t, "jwt", out.Token)
		assert.Empty(t, out.Usuario.PasswordHash)
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		f := createTestUsuarioService(t)
		usuario := fixtures.Usuario(entity.RolUsuario)
		usuario.PasswordHash = "hashed"
		f.usuarioRepo.On("FindByEmail", ctx, "nadie@example.com").Return(nil, domainerrors.ErrUsuarioNotFound).Once()
		f.usuarioRepo.On("FindByEmail", ctx, usuario.Email).Return(usuario, nil).Once()
		f.hasher.On("Check", "mala", "hashed").Return(false).Once()

		_, unknownErr := f.service.Signin(ctx, &usecase.SigninInput{Email: "nadie@example.com", Password: "pw"})
		_, wrongErr := f.service.Signin(ctx, &usecase.SigninInput{Email: usuario.Email, Password: "mala"})

		assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})
}

func TestUsuarioService_UpdateSelf_RehashesPassword(t *testing.T) {
	f := createTestUsuarioService(t)
	ctx := context.Background()
	usuario := fixtures.Usuario(entity.RolUsuario)

	f.usuarioRepo.On("FindByID", ctx, usuario.ID).Return(usuario, nil).Once()
	f.hasher.On("Hash", "nueva").Return("rehashed", nil).Once()
	f.usuarioRepo.On("Update", ctx, usuario.ID, mock.MatchedBy(func(p *repository.UsuarioPatch) bool {
		return p.PasswordHash != nil && *p.PasswordHash == "rehashed" &&
			p.Email != nil && *p.Email == "nuevo@example.com" && p.Nombre == nil
	})).Return(&entity.Usuario{ID: usuario.ID, PasswordHash: "rehashed"}, nil).Once()

	updated, err := f.service.UpdateSelf(ctx, usuarioPrincipal(usuario), &usecase.UpdateUsuarioInput{
		Email:    ptr("Nuevo@example.com"),
		Password: ptr("nueva"),
	})
	require.NoError(t, err)
	assert.Empty(t, updated.PasswordHash)
}

func TestUsuarioService_UpdateSelf_RequiresUsuario(t *testing.T) {
	f := createTestUsuarioService(t)

	_, err := f.service.UpdateSelf(context.Background(), nil, &usecase.UpdateUsuarioInput{})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestUsuarioService_DeleteSelf(t *testing.T) {
	ctx := context.Background()

	for _, logico := range []bool{true, false} {
		f := createTestUsuarioService(t)
		usuario := fixtures.Usuario(entity.RolUsuario)
		f.usuarioRepo.On("FindByID", ctx, usuario.ID).Return(usuario, nil).Once()
		if logico {
			f.usuarioRepo.On("SoftDelete", ctx, usuario.ID).Return(usuario, nil).Once()
		} else {
			f.usuarioRepo.On("HardDelete", ctx, usuario.ID).Return(usuario, nil).Once()
		}

		deleted, err := f.service.DeleteSelf(ctx, usuarioPrincipal(usuario), logico)
		require.NoError(t, err)
		assert.Equal(t, usuario.ID, deleted.ID)
	}
}

func TestUsuarioService_ListByCiudad(t *testing.T) {
	f := createTestUsuarioService(t)
	ctx := context.Background()

	joven := &entity.Usuario{Nombre: "Ana", Edad: 20, PasswordHash: "x"}
	mayor := &entity.Usuario{Nombre: "Bea", Edad: 60, PasswordHash: "y"}
	f.usuarioRepo.On("List", ctx, mock.MatchedBy(func(filter repository.UsuarioFilter) bool {
		return *filter.Ciudad == "Sevilla" && *filter.PermiteRecibirOfertas
	})).Return([]*entity.Usuario{joven, mayor}, nil).Once()

	usuarios, err := f.service.ListByCiudad(ctx, &usecase.ListUsuariosInput{
		Ciudad:    "Sevilla",
		ListInput: usecase.ListInput{SortBy: "edad"},
	})
	require.NoError(t, err)
	require.Len(t, usuarios, 2)
	assert.Equal(t, "Bea", usuarios[0].Nombre)
	assert.Empty(t, usuarios[0].PasswordHash)
}
