package impl

import (
	"cmp"
	"slices"
	"strings"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/usecase"
)

type compareFunc[T any] func(a, b T) int

var usuarioSortFields = map[string]compareFunc[*entity.Usuario]{
	"nombre":    func(a, b *entity.Usuario) int { return strings.Compare(a.Nombre, b.Nombre) },
	"email":     func(a, b *entity.Usuario) int { return strings.Compare(a.Email, b.Email) },
	"edad":      func(a, b *entity.Usuario) int { return cmp.Compare(a.Edad, b.Edad) },
	"ciudad":    func(a, b *entity.Usuario) int { return strings.Compare(a.Ciudad, b.Ciudad) },
	"createdAt": func(a, b *entity.Usuario) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

var comercioSortFields = map[string]compareFunc[*entity.Comercio]{
	"nombre":    func(a, b *entity.Comercio) int { return strings.Compare(a.Nombre, b.Nombre) },
	"cif":       func(a, b *entity.Comercio) int { return strings.Compare(a.CIF, b.CIF) },
	"email":     func(a, b *entity.Comercio) int { return strings.Compare(a.Email, b.Email) },
	"direccion": func(a, b *entity.Comercio) int { return strings.Compare(a.Direccion, b.Direccion) },
	"createdAt": func(a, b *entity.Comercio) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

var webSortFields = map[string]compareFunc[*usecase.WebView]{
	"titulo":    func(a, b *usecase.WebView) int { return strings.Compare(a.Titulo, b.Titulo) },
	"ciudad":    func(a, b *usecase.WebView) int { return strings.Compare(a.Ciudad, b.Ciudad) },
	"actividad": func(a, b *usecase.WebView) int { return strings.Compare(a.Actividad, b.Actividad) },
	"score":     func(a, b *usecase.WebView) int { return cmp.Compare(a.Score, b.Score) },
	"createdAt": func(a, b *usecase.WebView) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

// sortByField stable-sorts items by a whitelisted field, descending unless the order is "asc".
// An empty SortBy keeps the repository's insertion order.
func sortByField[T any](items []T, fields map[string]compareFunc[T], input *usecase.ListInput) error {
	if input == nil || input.SortBy == "" {
		return nil
	}

	compare, ok := fields[input.SortBy]
	if !ok {
		return domainerrors.ErrInvalidSortField.WithDetails("sortBy=" + input.SortBy)
	}

	var desc bool
	switch strings.ToLower(input.Order) {
	case "", usecase.OrderDesc:
		desc = true
	case usecase.OrderAsc:
		desc = false
	default:
		return domainerrors.NewValidationError("order debe ser asc o desc")
	}

	slices.SortStableFunc(items, func(a, b T) int {
		if desc {
			return compare(b, a)
		}

		return compare(a, b)
	})

	return nil
}
