// Package entity contains the core business objects of the project.
package entity

// Rol represents the role a Usuario holds in the system.
type Rol string

const (
	// RolAdmin can create, update and delete any Comercio.
	RolAdmin Rol = "admin"
	// RolUsuario is the default role for registered users.
	RolUsuario Rol = "usuario"
)

// String returns the string representation of the Rol.
func (r Rol) String() string {
	return string(r)
}

// IsValid checks if the Rol is a valid value.
func (r Rol) IsValid() bool {
	switch r {
	case RolAdmin, RolUsuario:
		return true
	default:
		return false
	}
}
