package postgres

import (
	"context"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"
	"directorio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// comercioRepository implements the domain.ComercioRepository interface using GORM.
type comercioRepository struct {
	db *gorm.DB
}

// NewComercioRepository is the constructor for comercioRepository.
func NewComercioRepository(db *gorm.DB) repository.ComercioRepository {
	return &comercioRepository{db: db}
}

func (repo *comercioRepository) Create(ctx context.Context, comercio *entity.Comercio) error {
	comercioM := fromComercioDomain(comercio)
	if comercioM.ID == uuid.Nil {
		comercioM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(comercioM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrComercioAlreadyExists.WrapMessage("cif or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comercio")
	}

	comercio.ID = comercioM.ID
	comercio.CreatedAt = comercioM.CreatedAt
	comercio.UpdatedAt = comercioM.UpdatedAt

	return nil
}

func (repo *comercioRepository) FindByCIF(ctx context.Context, cif string) (*entity.Comercio, error) {
	comercioM, err := repo.findModel(ctx, cif)
	if err != nil {
		return nil, err
	}

	return toComercioDomain(comercioM), nil
}

func (repo *comercioRepository) List(ctx context.Context) ([]*entity.Comercio, error) {
	var comercioMs []*model.ComercioModel
	if err := repo.db.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&comercioMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comercios")
	}

	comercios := make([]*entity.Comercio, 0, len(comercioMs))
	for _, comercioM := range comercioMs {
		comercios = append(comercios, toComercioDomain(comercioM))
	}

	return comercios, nil
}

func (repo *comercioRepository) Update(ctx context.Context, cif string, patch *repository.ComercioPatch) (*entity.Comercio, error) {
	comercioM, err := repo.findModel(ctx, cif)
	if err != nil {
		return nil, err
	}

	columns := applyComercioPatch(comercioM, patch)
	if len(columns) == 0 {
		return toComercioDomain(comercioM), nil
	}

	columns = append(columns, "updated_at")
	if err := repo.db.WithContext(ctx).Model(comercioM).Select(columns).Updates(comercioM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrComercioAlreadyExists.WrapMessage("email already exists")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update comercio")
	}

	return toComercioDomain(comercioM), nil
}

func (repo *comercioRepository) SoftDelete(ctx context.Context, cif string) (*entity.Comercio, error) {
	comercioM, err := repo.findModel(ctx, cif)
	if err != nil {
		return nil, err
	}

	if err := repo.db.WithContext(ctx).Delete(comercioM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to soft delete comercio")
	}

	return toComercioDomain(comercioM), nil
}

func (repo *comercioRepository) HardDelete(ctx context.Context, cif string) (*entity.Comercio, error) {
	comercioM, err := repo.findModel(ctx, cif)
	if err != nil {
		return nil, err
	}

	if err := repo.db.WithContext(ctx).Unscoped().Delete(comercioM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete comercio")
	}

	return toComercioDomain(comercioM), nil
}

// AssignPagina is a conditional update: it only succeeds while pagina is still NULL,
// so two concurrent page creations for one comercio cannot both win.
func (repo *comercioRepository) AssignPagina(ctx context.Context, cif string, webID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ComercioModel{}).
		Where("cif = ? AND pagina IS NULL", cif).
		Update("pagina", webID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to assign pagina")
	}

	if result.RowsAffected == 0 {
		if _, err := repo.findModel(ctx, cif); err != nil {
			return err
		}

		return domainerrors.ErrComercioHasPagina
	}

	return nil
}

func (repo *comercioRepository) ClearPagina(ctx context.Context, cif string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ComercioModel{}).
		Where("cif = ?", cif).
		Update("pagina", nil)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear pagina")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrComercioNotFound
	}

	return nil
}

func (repo *comercioRepository) findModel(ctx context.Context, cif string) (*model.ComercioModel, error) {
	var comercioM model.ComercioModel
	if err := repo.db.WithContext(ctx).Where("cif = ?", cif).First(&comercioM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrComercioNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find comercio")
	}

	return &comercioM, nil
}

func applyComercioPatch(comercioM *model.ComercioModel, patch *repository.ComercioPatch) []string {
	if patch == nil {
		return nil
	}

	var columns []string
	if patch.Nombre != nil {
		comercioM.Nombre = *patch.Nombre
		columns = append(columns, "nombre")
	}
	if patch.Direccion != nil {
		comercioM.Direccion = *patch.Direccion
		columns = append(columns, "direccion")
	}
	if patch.Email != nil {
		comercioM.Email = *patch.Email
		columns = append(columns, "email")
	}
	if patch.Telefono != nil {
		comercioM.Telefono = *patch.Telefono
		columns = append(columns, "telefono")
	}

	return columns
}

func toComercioDomain(data *model.ComercioModel) *entity.Comercio {
	if data == nil {
		return nil
	}

	return &entity.Comercio{
		ID:        data.ID,
		Nombre:    data.Nombre,
		CIF:       data.CIF,
		Direccion: data.Direccion,
		Email:     data.Email,
		Telefono:  data.Telefono,
		Pagina:    data.Pagina,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromComercioDomain(data *entity.Comercio) *model.ComercioModel {
	if data == nil {
		return nil
	}

	return &model.ComercioModel{
		ID:        data.ID,
		Nombre:    data.Nombre,
		CIF:       data.CIF,
		Direccion: data.Direccion,
		Email:     data.Email,
		Telefono:  data.Telefono,
		Pagina:    data.Pagina,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
