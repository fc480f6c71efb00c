// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"directorio/internal/domain/entity"
)

// Grant is the result of a successful authorization. It carries the records the
// guard loaded so callers do not read them twice.
type Grant struct {
	Usuario  *entity.Usuario  // Set for usuario-only actions.
	Comercio *entity.Comercio // Set for comercio-only actions.
}

// Authorizer decides whether a principal may perform an action.
type Authorizer interface {
	// Authorize returns ErrUnauthorized, ErrWrongPrincipalKind, ErrNotAdmin,
	// ErrComercioHasPagina or ErrComercioSinPagina when the action is denied.
	Authorize(ctx context.Context, principal *entity.Principal, action entity.Action) (*Grant, error)
}
