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

// usuarioRepository implements the domain.UsuarioRepository interface using GORM.
type usuarioRepository struct {
	db *gorm.DB
}

// NewUsuarioRepository is the constructor for usuarioRepository.
// It returns the repository as a domain.UsuarioRepository interface, adhering to dependency inversion.
func NewUsuarioRepository(db *gorm.DB) repository.UsuarioRepository {
	return &usuarioRepository{db: db}
}

// Create persists a new usuario. The ID is generated here when the caller left it empty.
func (repo *usuarioRepository) Create(ctx context.Context, usuario *entity.Usuario) error {
	usuarioM := fromUsuarioDomain(usuario)
	if usuarioM.ID == uuid.Nil {
		usuarioM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(usuarioM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUsuarioAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create usuario")
	}

	usuario.ID = usuarioM.ID
	usuario.CreatedAt = usuarioM.CreatedAt
	usuario.UpdatedAt = usuarioM.UpdatedAt

	return nil
}

// FindByID retrieves a single live usuario by ID.
func (repo *usuarioRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Usuario, error) {
	usuarioM, err := repo.findModel(ctx, "id = ?", id)
	if err != nil {
		return nil, err
	}

	return toUsuarioDomain(usuarioM), nil
}

// FindByEmail retrieves a single live usuario by email.
func (repo *usuarioRepository) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	usuarioM, err := repo.findModel(ctx, "email = ?", email)
	if err != nil {
		return nil, err
	}

	return toUsuarioDomain(usuarioM), nil
}

// List returns the live usuarios matching the filter in insertion order.
func (repo *usuarioRepository) List(ctx context.Context, filter repository.UsuarioFilter) ([]*entity.Usuario, error) {
	query := repo.db.WithContext(ctx).Model(&model.UsuarioModel{})
	if filter.Ciudad != nil {
		query = query.Where("ciudad = ?", *filter.Ciudad)
	}
	if filter.PermiteRecibirOfertas != nil {
		query = query.Where("permite_recibir_ofertas = ?", *filter.PermiteRecibirOfertas)
	}

	var usuarioMs []*model.UsuarioModel
	if err := query.Order("created_at ASC").Order("id ASC").Find(&usuarioMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list usuarios")
	}

	usuarios := make([]*entity.Usuario, 0, len(usuarioMs))
	for _, usuarioM := range usuarioMs {
		usuarios = append(usuarios, toUsuarioDomain(usuarioM))
	}

	return usuarios, nil
}

// Update writes only the columns present in the patch.
func (repo *usuarioRepository) Update(ctx context.Context, id uuid.UUID, patch *repository.UsuarioPatch) (*entity.Usuario, error) {
	usuarioM, err := repo.findModel(ctx, "id = ?", id)
	if err != nil {
		return nil, err
	}

	columns := applyUsuarioPatch(usuarioM, patch)
	if len(columns) == 0 {
		return toUsuarioDomain(usuarioM), nil
	}

	columns = append(columns, "updated_at")
	if err := repo.db.WithContext(ctx).Model(usuarioM).Select(columns).Updates(usuarioM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.ErrUsuarioAlreadyExists.WrapMessage("email already exists")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update usuario")
	}

	return toUsuarioDomain(usuarioM), nil
}

// SoftDelete sets deleted_at and returns the usuario as it was.
func (repo *usuarioRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*entity.Usuario, error) {
	usuarioM, err := repo.findModel(ctx, "id = ?", id)
	if err != nil {
		return nil, err
	}

	if err := repo.db.WithContext(ctx).Delete(usuarioM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to soft delete usuario")
	}

	return toUsuarioDomain(usuarioM), nil
}

// HardDelete removes the row permanently and returns the usuario as it was.
func (repo *usuarioRepository) HardDelete(ctx context.Context, id uuid.UUID) (*entity.Usuario, error) {
	usuarioM, err := repo.findModel(ctx, "id = ?", id)
	if err != nil {
		return nil, err
	}

	if err := repo.db.WithContext(ctx).Unscoped().Delete(usuarioM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete usuario")
	}

	return toUsuarioDomain(usuarioM), nil
}

// AppendResena records the reviewed web in the usuario's list. Appending an existing id is a no-op.
func (repo *usuarioRepository) AppendResena(ctx context.Context, id uuid.UUID, webID uuid.UUID) error {
	usuarioM, err := repo.findModel(ctx, "id = ?", id)
	if err != nil {
		return err
	}

	for _, reviewed := range usuarioM.Resenas {
		if reviewed == webID {
			return nil
		}
	}

	usuarioM.Resenas = append(usuarioM.Resenas, webID)
	if err := repo.db.WithContext(ctx).Model(usuarioM).Select("resenas", "updated_at").Updates(usuarioM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append resena to usuario")
	}

	return nil
}

func (repo *usuarioRepository) findModel(ctx context.Context, query string, args ...any) (*model.UsuarioModel, error) {
	var usuarioM model.UsuarioModel
	if err := repo.db.WithContext(ctx).Where(query, args...).First(&usuarioM).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrUsuarioNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find usuario")
	}

	return &usuarioM, nil
}

// applyUsuarioPatch copies the non-nil patch fields onto the model and returns the touched columns.
func applyUsuarioPatch(usuarioM *model.UsuarioModel, patch *repository.UsuarioPatch) []string {
	if patch == nil {
		return nil
	}

	var columns []string
	if patch.Nombre != nil {
		usuarioM.Nombre = *patch.Nombre
		columns = append(columns, "nombre")
	}
	if patch.Email != nil {
		usuarioM.Email = *patch.Email
		columns = append(columns, "email")
	}
	if patch.PasswordHash != nil {
		usuarioM.PasswordHash = *patch.PasswordHash
		columns = append(columns, "password_hash")
	}
	if patch.Edad != nil {
		usuarioM.Edad = *patch.Edad
		columns = append(columns, "edad")
	}
	if patch.Ciudad != nil {
		usuarioM.Ciudad = *patch.Ciudad
		columns = append(columns, "ciudad")
	}
	if patch.Intereses != nil {
		usuarioM.Intereses = *patch.Intereses
		columns = append(columns, "intereses")
	}
	if patch.PermiteRecibirOfertas != nil {
		usuarioM.PermiteRecibirOfertas = *patch.PermiteRecibirOfertas
		columns = append(columns, "permite_recibir_ofertas")
	}

	return columns
}

func toUsuarioDomain(data *model.UsuarioModel) *entity.Usuario {
	if data == nil {
		return nil
	}

	return &entity.Usuario{
		ID:                    data.ID,
		Nombre:                data.Nombre,
		Email:                 data.Email,
		PasswordHash:          data.PasswordHash,
		Edad:                  data.Edad,
		Ciudad:                data.Ciudad,
		Rol:                   entity.Rol(data.Rol),
		Intereses:             data.Intereses,
		PermiteRecibirOfertas: data.PermiteRecibirOfertas,
		Resenas:               data.Resenas,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

func fromUsuarioDomain(data *entity.Usuario) *model.UsuarioModel {
	if data == nil {
		return nil
	}

	return &model.UsuarioModel{
		ID:                    data.ID,
		Nombre:                data.Nombre,
		Email:                 data.Email,
		PasswordHash:          data.PasswordHash,
		Edad:                  data.Edad,
		Ciudad:                data.Ciudad,
		Rol:                   data.Rol.String(),
		Intereses:             data.Intereses,
		PermiteRecibirOfertas: data.PermiteRecibirOfertas,
		Resenas:               data.Resenas,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
