// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "directorio/internal/delivery/context"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authorizationService implements the Authorizer interface.
type authorizationService struct {
	usuarioRepo  repository.UsuarioRepository
	comercioRepo repository.ComercioRepository
	logger       *slog.Logger
}

// AuthorizationServiceParams holds dependencies for the authorization guard, injected by Fx.
type AuthorizationServiceParams struct {
	fx.In

	UsuarioRepo  repository.UsuarioRepository
	ComercioRepo repository.ComercioRepository
	Logger       *slog.Logger
}

// NewAuthorizationService is the constructor for authorizationService.
func NewAuthorizationService(params AuthorizationServiceParams) usecase.Authorizer {
	return &authorizationService{
		usuarioRepo:  params.UsuarioRepo,
		comercioRepo: params.ComercioRepo,
		logger:       params.Logger,
	}
}

func (srv *authorizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Authorize evaluates the capability rules for the action. Roles and page
// ownership are always re-read from storage, never trusted from the token.
func (srv *authorizationService) Authorize(ctx context.Context, principal *entity.Principal, action entity.Action) (*usecase.Grant, error) {
	if action.IsPublic() {
		return &usecase.Grant{}, nil
	}

	if principal == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	required := action.RequiredKind()
	if required == "" {
		srv.log(ctx).Warn("Authorization requested for unknown action", slog.String("action", string(action)))

		return nil, domainerrors.ErrForbidden
	}

	if principal.Kind != required {
		return nil, domainerrors.ErrWrongPrincipalKind.WithDetails(
			"action " + string(action) + " requires a " + string(required) + " token",
		)
	}

	switch required {
	case entity.PrincipalUsuario:
		return srv.authorizeUsuario(ctx, principal, action)
	case entity.PrincipalComercio:
		return srv.authorizeComercio(ctx, principal, action)
	default:
		return nil, domainerrors.ErrForbidden
	}
}

func (srv *authorizationService) authorizeUsuario(ctx context.Context, principal *entity.Principal, action entity.Action) (*usecase.Grant, error) {
	usuario, err := srv.usuarioRepo.FindByID(ctx, principal.ID)
	if errors.Is(err, domainerrors.ErrUsuarioNotFound) {
		srv.log(ctx).Warn("Token references a missing usuario", slog.Any("usuarioID", principal.ID))

		return nil, domainerrors.ErrUnauthorized
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load usuario for authorization")
	}

	if action.RequiresAdmin() && !usuario.IsAdmin() {
		srv.log(ctx).Info("Admin action denied", slog.Any("usuarioID", usuario.ID), slog.String("action", string(action)))

		return nil, domainerrors.ErrNotAdmin
	}

	return &usecase.Grant{Usuario: usuario}, nil
}

func (srv *authorizationService) authorizeComercio(ctx context.Context, principal *entity.Principal, action entity.Action) (*usecase.Grant, error) {
	comercio, err := srv.comercioRepo.FindByCIF(ctx, principal.CIF)
	if errors.Is(err, domainerrors.ErrComercioNotFound) {
		srv.log(ctx).Warn("Token references a missing comercio", slog.String("cif", principal.CIF))

		return nil, domainerrors.ErrUnauthorized
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load comercio for authorization")
	}

	// A CIF re-registered after a hard delete must not honor tokens of the old record.
	if comercio.ID != principal.ID {
		return nil, domainerrors.ErrUnauthorized
	}

	switch action {
	case entity.ActionCreateWeb:
		if comercio.HasPagina() {
			return nil, domainerrors.ErrComercioHasPagina
		}
	case entity.ActionUpdateWeb, entity.ActionDeleteWeb, entity.ActionUploadFoto:
		if !comercio.HasPagina() {
			return nil, domainerrors.ErrComercioSinPagina
		}
	}

	return &usecase.Grant{Comercio: comercio}, nil
}
