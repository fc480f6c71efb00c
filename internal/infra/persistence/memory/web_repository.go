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

type webRepository struct {
	store *Store
	held  bool
}

// NewWebRepository returns a WebRepository backed by the store.
func NewWebRepository(store *Store) repository.WebRepository {
	return &webRepository{store: store}
}

func (repo *webRepository) Create(ctx context.Context, web *entity.Web) error {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return err
	}
	defer unlock()

	if web.ID == uuid.Nil {
		web.ID = uuid.New()
	}
	if _, exists := repo.store.webs[web.ID]; exists {
		return domainerrors.ErrConflict.WrapMessage("web id already exists")
	}

	now := repo.store.now()
	web.CreatedAt = now
	web.UpdatedAt = now
	web.Resenas = []entity.Resena{}

	repo.store.webs[web.ID] = &webRecord{
		web: *cloneWeb(web),
		seq: repo.store.nextSeq(),
	}

	return nil
}

func (repo *webRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Web, error) {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return nil, err
	}
	defer unlock()

	rec, err := repo.live(id)
	if err != nil {
		return nil, err
	}

	return cloneWeb(&rec.web), nil
}

func (repo *webRepository) List(ctx context.Context, filter repository.WebFilter) ([]*entity.Web, error) {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return nil, err
	}
	defer unlock()

	recs := make([]*webRecord, 0, len(repo.store.webs))
	for _, rec := range repo.store.webs {
		if rec.deletedAt != nil {
			continue
		}
		if filter.Ciudad != nil && rec.web.Ciudad != *filter.Ciudad {
			continue
		}
		if filter.Actividad != nil && rec.web.Actividad != *filter.Actividad {
			continue
		}
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })

	webs := make([]*entity.Web, 0, len(recs))
	for _, rec := range recs {
		webs = append(webs, cloneWeb(&rec.web))
	}

	return webs, nil
}

func (repo *webRepository) Update(ctx context.Context, id uuid.UUID, patch *repository.WebPatch) (*entity.Web, error) {
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
		return cloneWeb(&rec.web), nil
	}

	w := &rec.web
	if patch.Ciudad != nil {
		w.Ciudad = *patch.Ciudad
	}
	if patch.Actividad != nil {
		w.Actividad = *patch.Actividad
	}
	if patch.Titulo != nil {
		w.Titulo = *patch.Titulo
	}
	if patch.Resumen != nil {
		w.Resumen = *patch.Resumen
	}
	if patch.Textos != nil {
		w.Textos = slices.Clone(*patch.Textos)
	}
	if patch.Fotos != nil {
		w.Fotos = slices.Clone(*patch.Fotos)
	}
	w.UpdatedAt = repo.store.now()

	return cloneWeb(w), nil
}

func (repo *webRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*entity.Web, error) {
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

	return cloneWeb(&rec.web), nil
}

func (repo *webRepository) HardDelete(ctx context.Context, id uuid.UUID) (*entity.Web, error) {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return nil, err
	}
	defer unlock()

	rec, err := repo.live(id)
	if err != nil {
		return nil, err
	}
	delete(repo.store.webs, id)

	return cloneWeb(&rec.web), nil
}

func (repo *webRepository) AppendResena(ctx context.Context, id uuid.UUID, resena *entity.Resena) error {
	unlock, err := repo.store.lock(ctx, repo.held)
	if err != nil {
		return err
	}
	defer unlock()

	rec, err := repo.live(id)
	if err != nil {
		return err
	}

	if resena.Puntuacion < 0 || resena.Puntuacion > 5 {
		return domainerrors.NewValidationError("puntuacion debe estar entre 0 y 5")
	}
	for _, existing := range rec.web.Resenas {
		if existing.UsuarioID == resena.UsuarioID {
			return domainerrors.ErrResenaDuplicada
		}
	}

	resena.CreatedAt = repo.store.now()
	rec.web.Resenas = append(rec.web.Resenas, *resena)
	rec.web.UpdatedAt = resena.CreatedAt

	return nil
}

func (repo *webRepository) live(id uuid.UUID) (*webRecord, error) {
	rec, ok := repo.store.webs[id]
	if !ok || rec.deletedAt != nil {
		return nil, domainerrors.ErrWebNotFound
	}

	return rec, nil
}
