package memory

import (
	"context"
	"slices"
	"sort"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"

	"github.com/google/uuid"
)

type usuarioRepository struct {
	store *Store
	held  bool
}

// NewUsuarioRepository returns a UsuarioRepository backed by the store.
func NewUsuarioRepository(store *Store) repository.UsuarioRepository {
	return &usuarioRepository{store: store}
}

func (repo *usuarioRepository) Create(ctx context.Context, usuario *entity.Usuario) error {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return err
	}
	defer unlock()

	for _, rec := range repo.store.usuarios {
		if rec.usuario.Email == usuario.Email {
			return domainerrors.ErrUsuarioAlreadyExists.WrapMessage("email already exists")
		}
	}

	if usuario.ID == uuid.Nil {
		usuario.ID = uuid.New()
	}
	if _, exists := repo.store.usuarios[usuario.ID]; exists {
		return domainerrors.ErrUsuarioAlreadyExists.WrapMessage("id already exists")
	}

	now := repo.store.now()
	usuario.CreatedAt = now
	usuario.UpdatedAt = now

	repo.store.usuarios[usuario.ID] = &usuarioRecord{
		usuario: *cloneUsuario(usuario),
		seq:     repo.store.nextSeq(),
	}

	return nil
}

func (repo *usuarioRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Usuario, error) {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return nil, err
	}
	defer unlock()

	rec, err := repo.live(id)
	if err != nil {
		return nil, err
	}

	return cloneUsuario(&rec.usuario), nil
}

func (repo *usuarioRepository) FindByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return nil, err
	}
	defer unlock()

	for _, rec := range repo.store.usuarios {
		if rec.deletedAt == nil && rec.usuario.Email == email {
			return cloneUsuario(&rec.usuario), nil
		}
	}

	return nil, domainerrors.ErrUsuarioNotFound
}

func (repo *usuarioRepository) List(ctx context.Context, filter repository.UsuarioFilter) ([]*entity.Usuario, error) {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return nil, err
	}
	defer unlock()

	recs := make([]*usuarioRecord, 0, len(repo.store.usuarios))
	for _, rec := range repo.store.usuarios {
		if rec.deletedAt != nil {
			continue
		}
		if filter.Ciudad != nil && rec.usuario.Ciudad != *filter.Ciudad {
			continue
		}
		if filter.PermiteRecibirOfertas != nil && rec.usuario.PermiteRecibirOfertas != *filter.PermiteRecibirOfertas {
			continue
		}
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	usuarios := make([]*entity.Usuario, 0, len(recs))
	for _, rec := range recs {
		usuarios = append(usuarios, cloneUsuario(&rec.usuario))
	}

	return usuarios, nil
}

func (repo *usuarioRepository) Update(ctx context.Context, id uuid.UUID, patch *repository.UsuarioPatch) (*entity.Usuario, error) {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return nil, err
	}
	defer unlock()

	rec, err := repo.live(id)
	if err != nil {
		return nil, err
	}
	if patch == nil {
		return cloneUsuario(&rec.usuario), nil
	}

	if patch.Email != nil && *patch.Email != rec.usuario.Email {
		for otherID, other := range repo.store.usuarios {
			if otherID != id && other.usuario.Email == *patch.Email {
				return nil, domainerrors.ErrUsuarioAlreadyExists.WrapMessage("email already exists")
			}
		}
	}

	u := &rec.usuario
	if patch.Nombre != nil {
		u.Nombre = *patch.Nombre
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	if patch.Edad != nil {
		u.Edad = *patch.Edad
	}
	if patch.Ciudad != nil {
		u.Ciudad = *patch.Ciudad
	}
	if patch.Intereses != nil {
		u.Intereses = slices.Clone(*patch.Intereses)
	}
	if patch.PermiteRecibirOfertas != nil {
		u.PermiteRecibirOfertas = *patch.PermiteRecibirOfertas
	}
	u.UpdatedAt = repo.store.now()

	return cloneUsuario(u), nil
}

func (repo *usuarioRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*entity.Usuario, error) {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return nil, err
	}
	defer unlock()

	rec, err := repo.live(id)
	if err != nil {
		return nil, err
	}

	now := repo.store.now()
	rec.deletedAt = &now

	return cloneUsuario(&rec.usuario), nil
}

func (repo *usuarioRepository) HardDelete(ctx context.Context, id uuid.UUID) (*entity.Usuario, error) {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return nil, err
	}
	defer unlock()

	rec, err := repo.live(id)
	if err != nil {
		return nil, err
	}
	delete(repo.store.usuarios, id)

	return cloneUsuario(&rec.usuario), nil
}

func (repo *usuarioRepository) AppendResena(ctx context.Context, id uuid.UUID, webID uuid.UUID) error {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return err
	}
	defer unlock()

	rec, err := repo.live(id)
	if err != nil {
		return err
	}

	if !slices.Contains(rec.usuario.Resenas, webID) {
		rec.usuario.Resenas = append(rec.usuario.Resenas, webID)
		rec.usuario.UpdatedAt = repo.store.now()
	}

	return nil
}

func (repo *usuarioRepository) live(id uuid.UUID) (*usuarioRecord, error) {
	rec, ok := repo.store.usuarios[id]
	if !ok || rec.deletedAt != nil {
		return nil, domainerrors.ErrUsuarioNotFound
	}

	return rec, nil
}
