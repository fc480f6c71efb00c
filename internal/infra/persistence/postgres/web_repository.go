package postgres

import (
	"context"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// webRepository implements the domain.WebRepository interface using GORM.
type webRepository struct {
	db *gorm.DB
}

// NewWebRepository is the constructor for webRepository.
func NewWebRepository(db *gorm.DB) repository.WebRepository {
	return &webRepository{db: db}
}

func (repo *webRepository) Create(ctx context.Context, web *entity.Web) error {
	webM := fromWebDomain(web)
	if webM.ID == uuid.Nil {
		webM.ID = uuid.New()
	}
	// A new page never starts with reviews.
	webM.Resenas = nil

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(webM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create web")
	}

	web.ID = webM.ID
	web.Resenas = []entity.Resena{}
	web.CreatedAt = webM.CreatedAt
	web.UpdatedAt = webM.UpdatedAt

	return nil
}

func (repo *webRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Web, error) {
	webM, err := repo.findModel(ctx, id)
	if err != nil {
		return nil, err
	}

	return toWebDomain(webM), nil
}

func (repo *webRepository) List(ctx context.Context, filter repository.WebFilter) ([]*entity.Web, error) {
	query := repo.withResenas(repo.db.WithContext(ctx))
	if filter.Ciudad != nil {
		query = query.Where("ciudad = ?", *filter.Ciudad)
	}
	if filter.Actividad != nil {
		query = query.Where("actividad = ?", *filter.Actividad)
	}

	var webMs []*model.WebModel
	if err := query.Order("created_at ASC").Order("id ASC").Find(&webMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list webs")
	}

	webs := make([]*entity.Web, 0, len(webMs))
	for _, webM := range webMs {
		webs = append(webs, toWebDomain(webM))
	}

	return webs, nil
}

func (repo *webRepository) Update(ctx context.Context, id uuid.UUID, patch *repository.WebPatch) (*entity.Web, error) {
	webM, err := repo.findModel(ctx, id)
	if err != nil {
		return nil, err
	}

	columns := applyWebPatch(webM, patch)
	if len(columns) == 0 {
		return toWebDomain(webM), nil
	}

	columns = append(columns, "updated_at")
	if err := repo.db.WithContext(ctx).Model(webM).Select(columns).Omit(clause.Associations).Updates(webM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update web")
	}

	return toWebDomain(webM), nil
}

// SoftDelete hides the web. Its reviews stay attached to the retained row.
func (repo *webRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*entity.Web, error) {
	webM, err := repo.findModel(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Delete(webM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to soft delete web")
	}

	return toWebDomain(webM), nil
}

// HardDelete removes the web and its reviews.
func (repo *webRepository) HardDelete(ctx context.Context, id uuid.UUID) (*entity.Web, error) {
	webM, err := repo.findModel(ctx, id)
	if err != nil {
		return nil, err
	}

	db := repo.db.WithContext(ctx)
	if err := db.Where("web_id = ?", id).Delete(&model.ResenaModel{}).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete resenas")
	}

	if err := db.Unscoped().Omit(clause.Associations).Delete(webM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete web")
	}

	return toWebDomain(webM), nil
}

// AppendResena inserts a review row. The (web_id, usuario_id) unique index rejects duplicates.
func (repo *webRepository) AppendResena(ctx context.Context, id uuid.UUID, resena *entity.Resena) error {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.WebModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to find web")
	}
	if count == 0 {
		return domainerrors.ErrWebNotFound
	}

	resenaM := &model.ResenaModel{
		WebID:      id,
		UsuarioID:  resena.UsuarioID,
		Comentario: resena.Comentario,
		Puntuacion: resena.Puntuacion,
	}
	if err := repo.db.WithContext(ctx).Create(resenaM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrResenaDuplicada
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.NewValidationError("puntuacion debe estar entre 0 y 5")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create resena")
	}

	resena.CreatedAt = resenaM.CreatedAt

	return nil
}

func (repo *webRepository) withResenas(db *gorm.DB) *gorm.DB {
	return db.Preload("Resenas", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id ASC")
	})
}

func (repo *webRepository) findModel(ctx context.Context, id uuid.UUID) (*model.WebModel, error) {
	var webM model.WebModel
	if err := repo.withResenas(repo.db.WithContext(ctx)).Where("id = ?", id).First(&webM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrWebNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find web")
	}

	return &webM, nil
}

func applyWebPatch(webM *model.WebModel, patch *repository.WebPatch) []string {
	if patch == nil {
		return nil
	}

	var columns []string
	if patch.Ciudad != nil {
		webM.Ciudad = *patch.Ciudad
		columns = append(columns, "ciudad")
	}
	if patch.Actividad != nil {
		webM.Actividad = *patch.Actividad
		columns = append(columns, "actividad")
	}
	if patch.Titulo != nil {
		webM.Titulo = *patch.Titulo
		columns = append(columns, "titulo")
	}
	if patch.Resumen != nil {
		webM.Resumen = *patch.Resumen
		columns = append(columns, "resumen")
	}
	if patch.Textos != nil {
		webM.Textos = *patch.Textos
		columns = append(columns, "textos")
	}
	if patch.Fotos != nil {
		webM.Fotos = *patch.Fotos
		columns = append(columns, "fotos")
	}

	return columns
}

func toWebDomain(data *model.WebModel) *entity.Web {
	if data == nil {
		return nil
	}

	resenas := make([]entity.Resena, 0, len(data.Resenas))
	for _, r := range data.Resenas {
		resenas = append(resenas, entity.Resena{
			UsuarioID:  r.UsuarioID,
			Comentario: r.Comentario,
			Puntuacion: r.Puntuacion,
			CreatedAt:  r.CreatedAt,
		})
	}

	return &entity.Web{
		ID:        data.ID,
		Ciudad:    data.Ciudad,
		Actividad: data.Actividad,
		Titulo:    data.Titulo,
		Resumen:   data.Resumen,
		Textos:    data.Textos,
		Fotos:     data.Fotos,
		Resenas:   resenas,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromWebDomain(data *entity.Web) *model.WebModel {
	if data == nil {
		return nil
	}

	return &model.WebModel{
		ID:        data.ID,
		Ciudad:    data.Ciudad,
		Actividad: data.Actividad,
		Titulo:    data.Titulo,
		Resumen:   data.Resumen,
		Textos:    data.Textos,
		Fotos:     data.Fotos,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
