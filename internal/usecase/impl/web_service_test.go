package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebService_Create_LinksPagina(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()
	comercio := env.givenComercio(t)

	view := env.givenWeb(t, comercio)
	assert.Empty(t, view.Resenas)
	assert.Zero(t, view.Score)

	stored, err := env.comercios.FindByCIF(ctx, comercio.CIF)
	require.NoError(t, err)
	require.NotNil(t, stored.Pagina)
	assert.Equal(t, view.ID, *stored.Pagina)

	_, err = env.webSvc.Create(ctx, comercioPrincipal(comercio), &usecase.CreateWebInput{Titulo: "otra"})
	assert.ErrorIs(t, err, domainerrors.ErrComercioHasPagina)

	webs, err := env.webSvc.List(ctx, &usecase.ListWebsInput{})
	require.NoError(t, err)
	assert.Len(t, webs, 1)
}

func TestWebService_Update(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()
	comercio := env.givenComercio(t)

	_, err := env.webSvc.Update(ctx, comercioPrincipal(comercio), &usecase.UpdateWebInput{Titulo: ptr("x")})
	assert.ErrorIs(t, err, domainerrors.ErrComercioSinPagina)

	created := env.givenWeb(t, comercio)
	updated, err := env.webSvc.Update(ctx, comercioPrincipal(comercio), &usecase.UpdateWebInput{Titulo: ptr("Nuevo título")})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Nuevo título", updated.Titulo)
	assert.Equal(t, created.Resumen, updated.Resumen)
}

func TestWebService_Delete_ClearsPagina(t *testing.T) {
	for _, logico := range []bool{true, false} {
		env := newMemoryEnv(t)
		ctx := context.Background()
		comercio := env.givenComercio(t)
		created := env.givenWeb(t, comercio)

		deleted, err := env.webSvc.Delete(ctx, comercioPrincipal(comercio), logico)
		require.NoError(t, err)
		assert.Equal(t, created.ID, deleted.ID)

		stored, err := env.comercios.FindByCIF(ctx, comercio.CIF)
		require.NoError(t, err)
		assert.False(t, stored.HasPagina())

		_, err = env.webSvc.Get(ctx, created.ID.String())
		assert.ErrorIs(t, err, domainerrors.ErrWebNotFound)

		_, isDeleted, found := env.store.LookupWeb(created.ID)
		assert.Equal(t, logico, found, "soft deleted webs stay in storage")
		assert.Equal(t, logico, isDeleted)

		again := env.givenWeb(t, comercio)
		assert.NotEqual(t, created.ID, again.ID)
	}
}

func TestWebService_Get(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()

	_, err := env.webSvc.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, domainerrors.ErrWebNotFound)

	_, err = env.webSvc.Get(ctx, uuid.NewString())
	assert.ErrorIs(t, err, domainerrors.ErrWebNotFound)
}

func TestWebService_List_FiltersAndScore(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()

	low := env.givenComercio(t)
	high := env.givenComercio(t)
	lowWeb, err := env.webSvc.Create(ctx, comercioPrincipal(low), &usecase.CreateWebInput{Ciudad: "Bilbao", Actividad: "bar", Titulo: "low"})
	require.NoError(t, err)
	highWeb, err := env.webSvc.Create(ctx, comercioPrincipal(high), &usecase.CreateWebInput{Ciudad: "Bilbao", Actividad: "museo", Titulo: "high"})
	require.NoError(t, err)

	reviewer := env.givenUsuario(t, entity.RolUsuario)
	_, err = env.resenaSvc.AddResena(ctx, usuarioPrincipal(reviewer), lowWeb.ID.String(), &usecase.CreateResenaInput{Puntuacion: 1})
	require.NoError(t, err)
	_, err = env.resenaSvc.AddResena(ctx, usuarioPrincipal(reviewer), highWeb.ID.String(), &usecase.CreateResenaInput{Puntuacion: 5})
	require.NoError(t, err)

	sorted, err := env.webSvc.List(ctx, &usecase.ListWebsInput{ListInput: usecase.ListInput{SortBy: "score"}})
	require.NoError(t, err)
	require.Len(t, sorted, 2)
	assert.Equal(t, "high", sorted[0].Titulo)
	assert.InDelta(t, 5.0, sorted[0].Score, 1e-9)

	actividad := "bar"
	ciudad := "Bilbao"
	bars, err := env.webSvc.List(ctx, &usecase.ListWebsInput{Ciudad: &ciudad, Actividad: &actividad})
	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.Equal(t, "low", bars[0].Titulo)

	_, err = env.webSvc.List(ctx, &usecase.ListWebsInput{ListInput: usecase.ListInput{SortBy: "resenas"}})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSortField)
}

func TestWebService_UploadFoto(t *testing.T) {
	env := newMemoryEnv(t)
	ctx := context.Background()
	comercio := env.givenComercio(t)
	web := env.givenWeb(t, comercio)

	svc := env.webSvc.(*webService)
	svc.now = func() time.Time { return time.Unix(0, 42) }

	out, err := env.webSvc.UploadFoto(ctx, comercioPrincipal(comercio), &usecase.FotoInput{
		Filename:    "Fachada.PNG",
		ContentType: "image/png",
		Content:     strings.NewReader("png-bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "/files/"+comercio.ID.String()+"/42.png", out.Path)
	assert.Equal(t, web.ID, out.Web.ID)
	assert.Contains(t, out.Web.Fotos, out.Path)

	rc, contentType, err := svc.storage.Open(ctx, comercio.ID.String()+"/42.png")
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, "image/png", contentType)

	_, err = env.webSvc.UploadFoto(ctx, comercioPrincipal(comercio), &usecase.FotoInput{
		Filename:    "notas.txt",
		ContentType: "text/plain",
		Content:     strings.NewReader("hola"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestWebService_UploadFoto_RequiresPagina(t *testing.T) {
	env := newMemoryEnv(t)
	comercio := env.givenComercio(t)

	_, err := env.webSvc.UploadFoto(context.Background(), comercioPrincipal(comercio), &usecase.FotoInput{
		Filename:    "a.jpg",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("jpg"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrComercioSinPagina)
}
