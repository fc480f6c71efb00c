package memory

import (
	"context"
	"sort"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/repository"

	"github.com/google/uuid"
)

type comercioRepository struct {
	store *Store
	held  bool
}

// NewComercioRepository returns a ComercioRepository backed by the store.
func NewComercioRepository(store *Store) repository.ComercioRepository {
	return &comercioRepository{store: store}
}

func (repo *comercioRepository) Create(ctx context.Context, comercio *entity.Comercio) error {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return err
	}
	defer unlock()

	if _, exists := repo.store.comercios[comercio.CIF]; exists {
		return domainerrors.ErrComercioAlreadyExists.WrapMessage("cif already exists")
	}
	for _, rec := range repo.store.comercios {
		if rec.comercio.Email == comercio.Email {
			return domainerrors.ErrComercioAlreadyExists.WrapMessage("email already exists")
		}
	}

	if comercio.ID == uuid.Nil {
		comercio.ID = uuid.New()
	}
	now := repo.store.now()
	comercio.CreatedAt = now
	comercio.UpdatedAt = now

	repo.store.comercios[comercio.CIF] = &comercioRecord{
		comercio: *cloneComercio(comercio),
		seq:      repo.store.nextSeq(),
	}

	return nil
}

func (repo *comercioRepository) FindByCIF(ctx context.Context, cif string) (*entity.Comercio, error) {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return nil, err
	}
	defer unlock()

	rec, err := repo.live(cif)
	if err != nil {
		return nil, err
	}

	return cloneComercio(&rec.comercio), nil
}

func (repo *comercioRepository) List(ctx context.Context) ([]*entity.Comercio, error) {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return nil, err
	}
	defer unlock()

	recs := make([]*comercioRecord, 0, len(repo.store.comercios))
	for _, rec := range repo.store.comercios {
		if rec.deletedAt == nil {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	comercios := make([]*entity.Comercio, 0, len(recs))
	for _, rec := range recs {
		comercios = append(comercios, cloneComercio(&rec.comercio))
	}

	return comercios, nil
}

func (repo *comercioRepository) Update(ctx context.Context, cif string, patch *repository.ComercioPatch) (*entity.Comercio, error) {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return nil, err
	}
	defer unlock()

	rec, err := repo.live(cif)
	if err != nil {
		return nil, err
	}
	if patch == nil {
		return cloneComercio(&rec.comercio), nil
	}

	if patch.Email != nil && *patch.Email != rec.comercio.Email {
		for otherCIF, other := range repo.store.comercios {
			if otherCIF != cif && other.comercio.Email == *patch.Email {
				return nil, domainerrors.ErrComercioAlreadyExists.WrapMessage("email already exists")
			}
		}
	}

	c := &rec.comercio
	if patch.Nombre != nil {
		c.Nombre = *patch.Nombre
	}
	if patch.Direccion != nil {
		c.Direccion = *patch.Direccion
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Telefono != nil {
		c.Telefono = *patch.Telefono
	}
	c.UpdatedAt = repo.store.now()

	return cloneComercio(c), nil
}

func (repo *comercioRepository) SoftDelete(ctx context.Context, cif string) (*entity.Comercio, error) {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return nil, err
	}
	defer unlock()

	rec, err := repo.live(cif)
	if err != nil {
		return nil, err
	}

	now := repo.store.now()
	rec.deletedAt = &now

	return cloneComercio(&rec.comercio), nil
}

func (repo *comercioRepository) HardDelete(ctx context.Context, cif string) (*entity.Comercio, error) {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return nil, err
	}
	defer unlock()

	rec, err := repo.live(cif)
	if err != nil {
		return nil, err
	}
	delete(repo.store.comercios, cif)

	return cloneComercio(&rec.comercio), nil
}

func (repo *comercioRepository) AssignPagina(ctx context.Context, cif string, webID uuid.UUID) error {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return err
	}
	defer unlock()

	rec, err := repo.live(cif)
	if err != nil {
		return err
	}
	if rec.comercio.HasPagina() {
		return domainerrors.ErrComercioHasPagina
	}

	pagina := webID
	rec.comercio.Pagina = &pagina
	rec.comercio.UpdatedAt = repo.store.now()

	return nil
}

func (repo *comercioRepository) ClearPagina(ctx context.Context, cif string) error {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return err
	}
	defer unlock()

	rec, ok := repo.store.comercios[cif]
	if !ok {
		return domainerrors.ErrComercioNotFound
	}

	rec.comercio.Pagina = nil
	rec.comercio.UpdatedAt = repo.store.now()

	return nil
}

func (repo *comercioRepository) live(cif string) (*comercioRecord, error) {
	rec, ok := repo.store.comercios[cif]
	if !ok || rec.deletedAt != nil {
		return nil, domainerrors.ErrComercioNotFound
	}

	return rec, nil
}
