package service

import (
	"directorio/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by every token.
type Claims struct {
	Kind  string `json:"kind"`
	Rol   string `json:"rol,omitempty"`
	Email string `json:"email,omitempty"`
	CIF   string `json:"cif,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the bearer tokens of both principal kinds.
type TokenService interface {
	// IssueUsuarioToken signs a time-limited token for a usuario.
	IssueUsuarioToken(usuario *entity.Usuario) (string, error)

	// IssueComercioToken signs a token for a comercio. It only expires when a comercio TTL is configured.
	IssueComercioToken(comercio *entity.Comercio) (string, error)

	// ValidateToken verifies signature and expiry and returns the principal the token represents.
	ValidateToken(tokenString string) (*entity.Principal, error)
}
