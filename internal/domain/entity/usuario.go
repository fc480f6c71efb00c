// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Usuario is an end-user account. It can review webs and, with the admin role, manage comercios.
type Usuario struct {
	ID                    uuid.UUID   // Global unique identifier.
	Nombre                string      // Display name.
	Email                 string      // Login identifier, unique across non hard-deleted accounts.
	PasswordHash          string      // bcrypt hash; never leaves the service layer.
	Edad                  int         // Age in years.
	Ciudad                string      // City used for offer targeting.
	Rol                   Rol         // admin or usuario.
	Intereses             []string    // Free-form interest tags.
	PermiteRecibirOfertas bool        // Opt-in for commerce offers.
	Resenas               []uuid.UUID // IDs of the webs this user already reviewed.
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// IsAdmin reports whether the account holds the global admin capability.
func (u *Usuario) IsAdmin() bool {
	return u.Rol == RolAdmin
}

// HasReviewed reports whether the user already left a review on the given web.
func (u *Usuario) HasReviewed(webID uuid.UUID) bool {
	return slices.Contains(u.Resenas, webID)
}
