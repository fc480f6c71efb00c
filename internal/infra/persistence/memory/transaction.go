package memory

import (
	"context"

	"directorio/internal/domain/repository"
)

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
}

// NewTransactionManager serializes transactions on the store mutex and restores
// a snapshot when the callback fails.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (f *repositoryFactory) UsuarioRepo() repository.UsuarioRepository {
	return &usuarioRepository{store: f.store, held: true}
}

func (f *repositoryFactory) ComercioRepo() repository.ComercioRepository {
	return &comercioRepository{store: f.store, held: true}
}

func (f *repositoryFactory) WebRepo() repository.WebRepository {
	return &webRepository{store: f.store, held: true}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snap := tm.store.snapshot()
	defer func() {
		if r := recover(); r != nil {
			tm.store.restore(snap)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store}); err != nil {
		tm.store.restore(snap)

		return err
	}

	return nil
}
