package impl

import (
	"testing"
	"time"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nombres(comercios []*entity.Comercio) []string {
	out := make([]string, 0, len(comercios))
	for _, c := range comercios {
		out = append(out, c.Nombre)
	}

	return out
}

func TestSortByField(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newList := func() []*entity.Comercio {
		return []*entity.Comercio{
			{Nombre: "b", CreatedAt: base},
			{Nombre: "a", CreatedAt: base.Add(time.Hour)},
			{Nombre: "c", CreatedAt: base.Add(2 * time.Hour)},
		}
	}

	tests := []struct {
		name  string
		input *usecase.ListInput
		want  []string
	}{
		{name: "nil keeps insertion order", input: nil, want: []string{"b", "a", "c"}},
		{name: "empty sortBy keeps insertion order", input: &usecase.ListInput{Order: "asc"}, want: []string{"b", "a", "c"}},
		{name: "descending by default", input: &usecase.ListInput{SortBy: "nombre"}, want: []string{"c", "b", "a"}},
		{name: "ascending", input: &usecase.ListInput{SortBy: "nombre", Order: "ASC"}, want: []string{"a", "b", "c"}},
		{name: "by time", input: &usecase.ListInput{SortBy: "createdAt", Order: "desc"}, want: []string{"c", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := newList()
			require.NoError(t, sortByField(items, comercioSortFields, tt.input))
			assert.Equal(t, tt.want, nombres(items))
		})
	}
}

func TestSortByField_Stable(t *testing.T) {
	items := []*usecase.WebView{
		{Web: &entity.Web{Titulo: "first"}, Score: 3},
		{Web: &entity.Web{Titulo: "second"}, Score: 3},
		{Web: &entity.Web{Titulo: "top"}, Score: 5},
	}

	require.NoError(t, sortByField(items, webSortFields, &usecase.ListInput{SortBy: "score"}))
	assert.Equal(t, "top", items[0].Titulo)
	assert.Equal(t, "first", items[1].Titulo)
	assert.Equal(t, "second", items[2].Titulo)
}

func TestSortByField_Rejects(t *testing.T) {
	items := []*entity.Comercio{{Nombre: "a"}}

	err := sortByField(items, comercioSortFields, &usecase.ListInput{SortBy: "passwordHash"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSortField)

	err = sortByField(items, comercioSortFields, &usecase.ListInput{SortBy: "nombre", Order: "sideways"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
