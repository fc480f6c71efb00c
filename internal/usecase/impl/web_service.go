package impl

import (
	"context"
	"log/slog"
	"path"
	"strconv"
	"strings"
	"time"

	deliverycontext "directorio/internal/delivery/context"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/domain/service"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// webService implements the WebUsecase interface. It keeps the link between a
// comercio and its single page consistent.
type webService struct {
	txManager  repository.TransactionManager
	webRepo    repository.WebRepository
	authorizer usecase.Authorizer
	storage    service.FileStorage
	now        func() time.Time
	logger     *slog.Logger
}

// WebServiceParams holds dependencies for WebService, injected by Fx.
type WebServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	WebRepo    repository.WebRepository
	Authorizer usecase.Authorizer
	Storage    service.FileStorage
	Logger     *slog.Logger
}

// NewWebService is the constructor for webService.
func NewWebService(params WebServiceParams) usecase.WebUsecase {
	return &webService{
		txManager:  params.TxManager,
		webRepo:    params.WebRepo,
		authorizer: params.Authorizer,
		storage:    params.Storage,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *webService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *webService) List(ctx context.Context, input *usecase.ListWebsInput) ([]*usecase.WebView, error) {
	webs, err := srv.webRepo.List(ctx, repository.WebFilter{
		Ciudad:    input.Ciudad,
		Actividad: input.Actividad,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list webs")
	}

	views := make([]*usecase.WebView, 0, len(webs))
	for _, web := range webs {
		views = append(views, usecase.NewWebView(web))
	}

	if err := sortByField(views, webSortFields, &input.ListInput); err != nil {
		return nil, err
	}

	return views, nil
}

// Get returns a web by id. A malformed id is reported as a missing web.
func (srv *webService) Get(ctx context.Context, id string) (*usecase.WebView, error) {
	webID, err := uuid.Parse(id)
	if err != nil {
		return nil, domainerrors.ErrWebNotFound.WithDetails("invalid web id")
	}

	web, err := srv.webRepo.FindByID(ctx, webID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get web")
	}

	return usecase.NewWebView(web), nil
}

// Create inserts the page and links it to the calling comercio in one transaction.
// If the comercio was linked concurrently the insert is rolled back.
func (srv *webService) Create(ctx context.Context, principal *entity.Principal, input *usecase.CreateWebInput) (*usecase.WebView, error) {
	grant, err := srv.authorizer.Authorize(ctx, principal, entity.ActionCreateWeb)
	if err != nil {
		return nil, err
	}

	web := &entity.Web{
		Ciudad:    input.Ciudad,
		Actividad: input.Actividad,
		Titulo:    input.Titulo,
		Resumen:   input.Resumen,
		Textos:    nonNil(input.Textos),
		Fotos:     nonNil(input.Fotos),
		Resenas:   []entity.Resena{},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.WebRepo().Create(ctx, web); err != nil {
			return errors.Wrap(err, "failed to create web")
		}

		if err := repoFactory.ComercioRepo().AssignPagina(ctx, grant.Comercio.CIF, web.ID); err != nil {
			return errors.Wrap(err, "failed to link web to comercio")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute web creation transaction", slog.String("cif", grant.Comercio.CIF), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute web creation transaction")
	}

	srv.log(ctx).Info("Web created", slog.String("cif", grant.Comercio.CIF), slog.Any("webID", web.ID))

	return usecase.NewWebView(web), nil
}

// Update patches the page owned by the calling comercio.
func (srv *webService) Update(ctx context.Context, principal *entity.Principal, input *usecase.UpdateWebInput) (*usecase.WebView, error) {
	grant, err := srv.authorizer.Authorize(ctx, principal, entity.ActionUpdateWeb)
	if err != nil {
		return nil, err
	}

	updated, err := srv.webRepo.Update(ctx, *grant.Comercio.Pagina, &repository.WebPatch{
		Ciudad:    input.Ciudad,
		Actividad: input.Actividad,
		Titulo:    input.Titulo,
		Resumen:   input.Resumen,
		Textos:    input.Textos,
		Fotos:     input.Fotos,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update web")
	}

	return usecase.NewWebView(updated), nil
}

// Delete removes the page owned by the calling comercio and unlinks it.
func (srv *webService) Delete(ctx context.Context, principal *entity.Principal, logico bool) (*usecase.WebView, error) {
	grant, err := srv.authorizer.Authorize(ctx, principal, entity.ActionDeleteWeb)
	if err != nil {
		return nil, err
	}

	webID := *grant.Comercio.Pagina

	var deleted *entity.Web
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		webRepo := repoFactory.WebRepo()

		var err error
		if logico {
			deleted, err = webRepo.SoftDelete(ctx, webID)
		} else {
			deleted, err = webRepo.HardDelete(ctx, webID)
		}
		if err != nil {
			return errors.Wrap(err, "failed to delete web")
		}

		if err := repoFactory.ComercioRepo().ClearPagina(ctx, grant.Comercio.CIF); err != nil {
			return errors.Wrap(err, "failed to unlink web from comercio")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute web deletion transaction")
	}

	srv.log(ctx).Info("Web deleted", slog.String("cif", grant.Comercio.CIF), slog.Any("webID", webID), slog.Bool("logico", logico))

	return usecase.NewWebView(deleted), nil
}

// UploadFoto stores an image and appends its path to the owned page.
func (srv *webService) UploadFoto(ctx context.Context, principal *entity.Principal, input *usecase.FotoInput) (*usecase.FotoOutput, error) {
	grant, err := srv.authorizer.Authorize(ctx, principal, entity.ActionUploadFoto)
	if err != nil {
		return nil, err
	}

	if input.Content == nil {
		return nil, domainerrors.NewValidationError("foto es obligatoria")
	}
	if !strings.HasPrefix(input.ContentType, "image/") {
		return nil, domainerrors.NewValidationError("foto debe ser una imagen")
	}

	key := grant.Comercio.ID.String() + "/" + strconv.FormatInt(srv.now().UnixNano(), 10) + strings.ToLower(path.Ext(input.Filename))

	fotoPath, err := srv.storage.Save(ctx, key, input.ContentType, input.Content)
	if err != nil {
		srv.log(ctx).Error("Failed to store foto", slog.String("key", key), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrFotoUploadFailed, err.Error())
	}

	webID := *grant.Comercio.Pagina

	var updated *entity.Web
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		webRepo := repoFactory.WebRepo()

		web, err := webRepo.FindByID(ctx, webID)
		if err != nil {
			return errors.Wrap(err, "failed to load web for foto")
		}

		fotos := append(nonNil(web.Fotos), fotoPath)
		updated, err = webRepo.Update(ctx, webID, &repository.WebPatch{Fotos: &fotos})
		if err != nil {
			return errors.Wrap(err, "failed to append foto")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Stored foto is not linked to any web", slog.String("path", fotoPath), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute foto upload transaction")
	}

	return &usecase.FotoOutput{Path: fotoPath, Web: usecase.NewWebView(updated)}, nil
}

// deleteWeb removes a web in the requested mode. A web that is already gone is not an error.
func deleteWeb(ctx context.Context, webRepo repository.WebRepository, webID uuid.UUID, logico bool) error {
	var err error
	if logico {
		_, err = webRepo.SoftDelete(ctx, webID)
	} else {
		_, err = webRepo.HardDelete(ctx, webID)
	}
	if err != nil && !errors.Is(err, domainerrors.ErrWebNotFound) {
		return errors.Wrap(err, "failed to delete owned web")
	}

	return nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
