package impl

import (
	"context"
	"testing"

	"directorio/internal/domain/entity"
	"directorio/internal/domain/repository"
	"directorio/internal/infra/persistence/memory"
	"directorio/internal/infra/storage"
	mockSvc "directorio/internal/mocks/service"
	"directorio/internal/testutil/fixtures"
	"directorio/internal/usecase"

	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

// memoryEnv wires the services against the in-memory store.
type memoryEnv struct {
	store        *memory.Store
	usuarios     repository.UsuarioRepository
	comercios    repository.ComercioRepository
	webs         repository.WebRepository
	tokenService *mockSvc.MockTokenService
	comercioSvc  usecase.ComercioUsecase
	webSvc       usecase.WebUsecase
	resenaSvc    usecase.ResenaUsecase
}

func newMemoryEnv(t *testing.T) *memoryEnv {
	t.Helper()

	store := memory.NewStore()
	usuarios := memory.NewUsuarioRepository(store)
	comercios := memory.NewComercioRepository(store)
	webs := memory.NewWebRepository(store)
	txManager := memory.NewTransactionManager(store)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := newDiscardLogger()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	authorizer := NewAuthorizationService(AuthorizationServiceParams{
		UsuarioRepo:  usuarios,
		ComercioRepo: comercios,
		Logger:       logger,
	})

	return &memoryEnv{
		store:        store,
		usuarios:     usuarios,
		comercios:    comercios,
		webs:         webs,
		tokenService: tokenService,
		comercioSvc: NewComercioService(ComercioServiceParams{
			TxManager:    txManager,
			ComercioRepo: comercios,
			Authorizer:   authorizer,
			TokenService: tokenService,
			Logger:       logger,
		}),
		webSvc: NewWebService(WebServiceParams{
			TxManager:  txManager,
			WebRepo:    webs,
			Authorizer: authorizer,
			Storage:    storage.NewWithBucket(bucket, "/files"),
			Logger:     logger,
		}),
		resenaSvc: NewResenaService(ResenaServiceParams{
			TxManager:  txManager,
			Authorizer: authorizer,
			Logger:     logger,
		}),
	}
}

func (env *memoryEnv) givenUsuario(t *testing.T, rol entity.Rol) *entity.Usuario {
	t.Helper()

	usuario := fixtures.Usuario(rol)
	require.NoError(t, env.usuarios.Create(context.Background(), usuario))

	return usuario
}

func (env *memoryEnv) givenComercio(t *testing.T) *entity.Comercio {
	t.Helper()

	comercio := fixtures.Comercio()
	require.NoError(t, env.comercios.Create(context.Background(), comercio))

	return comercio
}

func (env *memoryEnv) givenWeb(t *testing.T, comercio *entity.Comercio) *usecase.WebView {
	t.Helper()

	fixture := fixtures.Web()
	view, err := env.webSvc.Create(context.Background(), comercioPrincipal(comercio), &usecase.CreateWebInput{
		Ciudad:    fixture.Ciudad,
		Actividad: fixture.Actividad,
		Titulo:    fixture.Titulo,
		Resumen:   fixture.Resumen,
		Textos:    fixture.Textos,
	})
	require.NoError(t, err)

	return view
}
