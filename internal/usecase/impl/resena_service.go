package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "directorio/internal/delivery/context"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	minPuntuacion = 0
	maxPuntuacion = 5
)

// resenaService implements the ResenaUsecase interface.
type resenaService struct {
	txManager  repository.TransactionManager
	authorizer usecase.Authorizer
	now        func() time.Time
	logger     *slog.Logger
}

// ResenaServiceParams holds dependencies for ResenaService, injected by Fx.
type ResenaServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	Authorizer usecase.Authorizer
	Logger     *slog.Logger
}

// NewResenaService is the constructor for resenaService.
func NewResenaService(params ResenaServiceParams) usecase.ResenaUsecase {
	return &resenaService{
		txManager:  params.TxManager,
		authorizer: params.Authorizer,
		now:        time.Now,
		logger:     params.Logger,
	}
}

func (srv *resenaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddResena records a usuario's single review of a web on both sides and returns the rescored web.
func (srv *resenaService) AddResena(ctx context.Context, principal *entity.Principal, webID string, input *usecase.CreateResenaInput) (*usecase.WebView, error) {
	grant, err := srv.authorizer.Authorize(ctx, principal, entity.ActionCreateResena)
	if err != nil {
		return nil, err
	}

	if input.Puntuacion < minPuntuacion || input.Puntuacion > maxPuntuacion {
		return nil, domainerrors.NewValidationError("puntuacion debe estar entre 0 y 5")
	}

	id, err := uuid.Parse(webID)
	if err != nil {
		return nil, domainerrors.ErrWebNotFound.WithDetails("invalid web id")
	}

	var reloaded *entity.Web
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		webRepo := repoFactory.WebRepo()
		usuarioRepo := repoFactory.UsuarioRepo()

		if _, err := webRepo.FindByID(ctx, id); err != nil {
			return errors.Wrap(err, "failed to load web for resena")
		}

		usuario, err := usuarioRepo.FindByID(ctx, grant.Usuario.ID)
		if err != nil {
			return errors.Wrap(err, "failed to load usuario for resena")
		}

		if usuario.HasReviewed(id) {
			return domainerrors.ErrResenaDuplicada
		}

		if err := usuarioRepo.AppendResena(ctx, usuario.ID, id); err != nil {
			return errors.Wrap(err, "failed to record resena on usuario")
		}

		resena := &entity.Resena{
			UsuarioID:  usuario.ID,
			Comentario: input.Comentario,
			Puntuacion: input.Puntuacion,
			CreatedAt:  srv.now(),
		}
		if err := webRepo.AppendResena(ctx, id, resena); err != nil {
			return errors.Wrap(err, "failed to append resena to web")
		}

		reloaded, err = webRepo.FindByID(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to reload web")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute resena transaction")
	}

	view := usecase.NewWebView(reloaded)
	srv.log(ctx).Info("Resena added", slog.Any("webID", id), slog.Any("usuarioID", grant.Usuario.ID), slog.Float64("score", view.Score))

	return view, nil
}
