// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
)

// UsuarioFilter narrows a usuario listing. Nil fields are not applied.
type UsuarioFilter struct {
	Ciudad                *string
	PermiteRecibirOfertas *bool
}

// UsuarioPatch carries a partial update. Only non-nil fields are written.
type UsuarioPatch struct {
	Nombre                *string
	Email                 *string
	PasswordHash          *string
	Edad                  *int
	Ciudad                *string
	Intereses             *[]string
	PermiteRecibirOfertas *bool
}

// UsuarioRepository defines the standard operations for usuario persistence.
// Soft-deleted usuarios are invisible to every read.
type UsuarioRepository interface {
	// Create persists a new usuario. A duplicate email returns ErrUsuarioAlreadyExists.
	Create(ctx context.Context, usuario *entity.Usuario) error

	// FindByID retrieves a usuario by its ID, or ErrUsuarioNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Usuario, error)

	// FindByEmail retrieves a usuario by its email, or ErrUsuarioNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.Usuario, error)

	// List returns the usuarios matching the filter in insertion order.
	List(ctx context.Context, filter UsuarioFilter) ([]*entity.Usuario, error)

	// Update applies the patch and returns the updated usuario.
	Update(ctx context.Context, id uuid.UUID, patch *UsuarioPatch) (*entity.Usuario, error)

	// SoftDelete hides the usuario from reads while keeping it in storage.
	SoftDelete(ctx context.Context, id uuid.UUID) (*entity.Usuario, error)

	// HardDelete permanently removes the usuario.
	HardDelete(ctx context.Context, id uuid.UUID) (*entity.Usuario, error)

	// AppendResena records that the usuario reviewed the given web.
	AppendResena(ctx context.Context, id uuid.UUID, webID uuid.UUID) error
}
