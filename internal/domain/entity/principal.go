package entity

import "github.com/google/uuid"

// PrincipalKind distinguishes the two kinds of authenticated callers.
type PrincipalKind string

const (
	// PrincipalUsuario is a signed-in end-user.
	PrincipalUsuario PrincipalKind = "usuario"
	// PrincipalComercio is a commerce holding the token issued when it was created.
	PrincipalComercio PrincipalKind = "comercio"
)

// IsValid checks if the PrincipalKind is a valid value.
func (k PrincipalKind) IsValid() bool {
	return k == PrincipalUsuario || k == PrincipalComercio
}

// Principal is the identity derived from a bearer token for a single request. It is never persisted.
type Principal struct {
	ID    uuid.UUID
	Kind  PrincipalKind
	Rol   Rol    // Only set for usuario principals.
	CIF   string // Only set for comercio principals.
	Email string // Only set for usuario principals.
}

// IsUsuario reports whether the principal is an end-user.
func (p *Principal) IsUsuario() bool {
	return p != nil && p.Kind == PrincipalUsuario
}

// IsComercio reports whether the principal is a commerce.
func (p *Principal) IsComercio() bool {
	return p != nil && p.Kind == PrincipalComercio
}
