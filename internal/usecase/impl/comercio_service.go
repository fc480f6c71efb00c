package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "directorio/internal/delivery/context"
	"directorio/internal/domain/entity"
	"directorio/internal/domain/repository"
	"directorio/internal/domain/service"
	"directorio/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// comercioService implements the ComercioUsecase interface.
type comercioService struct {
	txManager    repository.TransactionManager
	comercioRepo repository.ComercioRepository
	authorizer   usecase.Authorizer
	tokenService service.TokenService
	logger       *slog.Logger
}

// ComercioServiceParams holds dependencies for ComercioService, injected by Fx.
type ComercioServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ComercioRepo repository.ComercioRepository
	Authorizer   usecase.Authorizer
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewComercioService is the constructor for comercioService.
func NewComercioService(params ComercioServiceParams) usecase.ComercioUsecase {
	return &comercioService{
		txManager:    params.TxManager,
		comercioRepo: params.ComercioRepo,
		authorizer:   params.Authorizer,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *comercioService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *comercioService) List(ctx context.Context, input *usecase.ListInput) ([]*entity.Comercio, error) {
	comercios, err := srv.comercioRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comercios")
	}

	if err := sortByField(comercios, comercioSortFields, input); err != nil {
		return nil, err
	}

	return comercios, nil
}

func (srv *comercioService) Get(ctx context.Context, cif string) (*entity.Comercio, error) {
	comercio, err := srv.comercioRepo.FindByCIF(ctx, normalizeCIF(cif))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get comercio")
	}

	return comercio, nil
}

// Create registers a comercio and issues its token. A failure to sign the
// token rolls the registration back, since the token cannot be reissued.
func (srv *comercioService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateComercioInput) (*usecase.CreateComercioOutput, error) {
	grant, err := srv.authorizer.Authorize(ctx, principal, entity.ActionCreateComercio)
	if err != nil {
		return nil, err
	}

	comercio := &entity.Comercio{
		Nombre:    input.Nombre,
		CIF:       normalizeCIF(input.CIF),
		Direccion: input.Direccion,
		Email:     normalizeEmail(input.Email),
		Telefono:  input.Telefono,
	}

	var token string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ComercioRepo().Create(ctx, comercio); err != nil {
			return errors.Wrap(err, "failed to create comercio")
		}

		issued, err := srv.tokenService.IssueComercioToken(comercio)
		if err != nil {
			return errors.Wrap(err, "failed to issue comercio token")
		}
		token = issued

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute comercio creation transaction", slog.String("cif", comercio.CIF), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute comercio creation transaction")
	}

	srv.log(ctx).Info("Comercio created", slog.String("cif", comercio.CIF), slog.Any("adminID", grant.Usuario.ID))

	return &usecase.CreateComercioOutput{Comercio: comercio, Token: token}, nil
}

func (srv *comercioService) Update(ctx context.Context, principal *entity.Principal, cif string, input *usecase.UpdateComercioInput) (*entity.Comercio, error) {
	if _, err := srv.authorizer.Authorize(ctx, principal, entity.ActionUpdateComercio); err != nil {
		return nil, err
	}

	patch := &repository.ComercioPatch{
		Nombre:    input.Nombre,
		Direccion: input.Direccion,
		Telefono:  input.Telefono,
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		patch.Email = &email
	}

	updated, err := srv.comercioRepo.Update(ctx, normalizeCIF(cif), patch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update comercio")
	}

	return updated, nil
}

// Delete removes a comercio together with its page, both in the same mode.
func (srv *comercioService) Delete(ctx context.Context, principal *entity.Principal, cif string, logico bool) (*entity.Comercio, error) {
	if _, err := srv.authorizer.Authorize(ctx, principal, entity.ActionDeleteComercio); err != nil {
		return nil, err
	}

	cif = normalizeCIF(cif)

	var deleted *entity.Comercio
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		comercioRepo := repoFactory.ComercioRepo()

		var err error
		if logico {
			deleted, err = comercioRepo.SoftDelete(ctx, cif)
		} else {
			deleted, err = comercioRepo.HardDelete(ctx, cif)
		}
		if err != nil {
			return errors.Wrap(err, "failed to delete comercio")
		}

		if !deleted.HasPagina() {
			return nil
		}

		return deleteWeb(ctx, repoFactory.WebRepo(), *deleted.Pagina, logico)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute comercio deletion transaction")
	}

	srv.log(ctx).Info("Comercio deleted", slog.String("cif", cif), slog.Bool("logico", logico))

	return deleted, nil
}

func normalizeCIF(cif string) string {
	return strings.ToUpper(strings.TrimSpace(cif))
}
