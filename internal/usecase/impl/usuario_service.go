package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "directorio/internal/delivery/context"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/domain/service"
	"directorio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const signupMailSubject = "Usuario registrado correctamente"

// usuarioService implements the UsuarioUsecase interface.
type usuarioService struct {
	usuarioRepo  repository.UsuarioRepository
	authorizer   usecase.Authorizer
	hasher       service.PasswordHasher
	tokenService service.TokenService
	notifier     service.Notifier
	logger       *slog.Logger
}

// UsuarioServiceParams holds dependencies for UsuarioService, injected by Fx.
type UsuarioServiceParams struct {
	fx.In

	UsuarioRepo  repository.UsuarioRepository
	Authorizer   usecase.Authorizer
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Notifier     service.Notifier
	Logger       *slog.Logger
}

// NewUsuarioService is the constructor for usuarioService.
func NewUsuarioService(params UsuarioServiceParams) usecase.UsuarioUsecase {
	return &usuarioService{
		usuarioRepo:  params.UsuarioRepo,
		authorizer:   params.Authorizer,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		notifier:     params.Notifier,
		logger:       params.Logger,
	}
}

func (srv *usuarioService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers a usuario and sends a confirmation mail.
func (srv *usuarioService) Signup(ctx context.Context, input *usecase.SignupInput) (*entity.Usuario, error) {
	rol := input.Rol
	if rol == "" {
		rol = entity.RolUsuario
	}
	if !rol.IsValid() {
		return nil, domainerrors.NewValidationError("rol debe ser admin o usuario")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	usuario := &entity.Usuario{
		Nombre:                input.Nombre,
		Email:                 normalizeEmail(input.Email),
		PasswordHash:          hashedPassword,
		Edad:                  input.Edad,
		Ciudad:                input.Ciudad,
		Rol:                   rol,
		Intereses:             input.Intereses,
		PermiteRecibirOfertas: input.PermiteRecibirOfertas,
	}
	if usuario.Intereses == nil {
		usuario.Intereses = []string{}
	}

	if err := srv.usuarioRepo.Create(ctx, usuario); err != nil {
		return nil, errors.Wrap(err, "failed to create usuario during signup")
	}

	srv.log(ctx).Info("Usuario registered", slog.Any("usuarioID", usuario.ID), slog.Any("rol", usuario.Rol))

	body := fmt.Sprintf("Hola %s, tu cuenta se ha creado correctamente.", usuario.Nombre)
	if err := srv.notifier.Send(ctx, usuario.Email, signupMailSubject, body); err != nil {
		srv.log(ctx).Warn("Failed to send signup mail", slog.Any("usuarioID", usuario.ID), slog.Any("error", err))
	}

	usuario.PasswordHash = ""

	return usuario, nil
}

// Signin verifies credentials and issues a usuario token.
// An unknown email and a wrong password return the same error.
func (srv *usuarioService) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.SigninOutput, error) {
	usuario, err := srv.usuarioRepo.FindByEmail(ctx, normalizeEmail(input.Email))
	if errors.Is(err, domainerrors.ErrUsuarioNotFound) {
		srv.log(ctx).Info("Signin with unknown email")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find usuario during signin")
	}

	if !srv.hasher.Check(input.Password, usuario.PasswordHash) {
		srv.log(ctx).Info("Signin with wrong password", slog.Any("usuarioID", usuario.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.IssueUsuarioToken(usuario)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue usuario token")
	}

	usuario.PasswordHash = ""

	return &usecase.SigninOutput{Token: token, Usuario: usuario}, nil
}

// UpdateSelf patches the caller's own account.
func (srv *usuarioService) UpdateSelf(ctx context.Context, principal *entity.Principal, input *usecase.UpdateUsuarioInput) (*entity.Usuario, error) {
	grant, err := srv.authorizer.Authorize(ctx, principal, entity.ActionUpdateSelf)
	if err != nil {
		return nil, err
	}

	patch := &repository.UsuarioPatch{
		Nombre:                input.Nombre,
		Edad:                  input.Edad,
		Ciudad:                input.Ciudad,
		Intereses:             input.Intereses,
		PermiteRecibirOfertas: input.PermiteRecibirOfertas,
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		patch.Email = &email
	}
	if input.Password != nil {
		hashedPassword, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash new password")
		}
		patch.PasswordHash = &hashedPassword
	}

	updated, err := srv.usuarioRepo.Update(ctx, grant.Usuario.ID, patch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update usuario")
	}

	updated.PasswordHash = ""

	return updated, nil
}

// DeleteSelf removes the caller's own account, logically when logico is set.
func (srv *usuarioService) DeleteSelf(ctx context.Context, principal *entity.Principal, logico bool) (*entity.Usuario, error) {
	grant, err := srv.authorizer.Authorize(ctx, principal, entity.ActionDeleteSelf)
	if err != nil {
		return nil, err
	}

	var deleted *entity.Usuario
	if logico {
		deleted, err = srv.usuarioRepo.SoftDelete(ctx, grant.Usuario.ID)
	} else {
		deleted, err = srv.usuarioRepo.HardDelete(ctx, grant.Usuario.ID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete usuario")
	}

	srv.log(ctx).Info("Usuario deleted", slog.Any("usuarioID", deleted.ID), slog.Bool("logico", logico))
	deleted.PasswordHash = ""

	return deleted, nil
}

// ListByCiudad returns the usuarios of a city that accept commerce offers.
func (srv *usuarioService) ListByCiudad(ctx context.Context, input *usecase.ListUsuariosInput) ([]*entity.Usuario, error) {
	acceptsOffers := true
	usuarios, err := srv.usuarioRepo.List(ctx, repository.UsuarioFilter{
		Ciudad:                &input.Ciudad,
		PermiteRecibirOfertas: &acceptsOffers,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list usuarios")
	}

	if err := sortByField(usuarios, usuarioSortFields, &input.ListInput); err != nil {
		return nil, err
	}

	for _, u := range usuarios {
		u.PasswordHash = ""
	}

	return usuarios, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
