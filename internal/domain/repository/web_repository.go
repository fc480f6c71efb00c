package repository

import (
	"context"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
)

// WebFilter narrows a web listing. Nil fields are not applied.
type WebFilter struct {
	Ciudad    *string
	Actividad *string
}

// WebPatch carries a partial update. Reviews are never written through a patch.
type WebPatch struct {
	Ciudad    *string
	Actividad *string
	Titulo    *string
	Resumen   *string
	Textos    *[]string
	Fotos     *[]string
}

// WebRepository defines the standard operations for web persistence.
// Returned webs always carry their reviews.
type WebRepository interface {
	// Create persists a new web with an empty review list.
	Create(ctx context.Context, web *entity.Web) error

	// FindByID retrieves a web by its ID, or ErrWebNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Web, error)

	// List returns the webs matching the filter in insertion order.
	List(ctx context.Context, filter WebFilter) ([]*entity.Web, error)

	// Update applies the patch and returns the updated web.
	Update(ctx context.Context, id uuid.UUID, patch *WebPatch) (*entity.Web, error)

	// SoftDelete hides the web from reads while keeping it in storage.
	SoftDelete(ctx context.Context, id uuid.UUID) (*entity.Web, error)

	// HardDelete permanently removes the web and its reviews.
	HardDelete(ctx context.Context, id uuid.UUID) (*entity.Web, error)

	// AppendResena adds a review. A second review by the same usuario returns ErrResenaDuplicada.
	AppendResena(ctx context.Context, id uuid.UUID, resena *entity.Resena) error
}
