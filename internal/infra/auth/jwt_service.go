// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"directorio/config"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/domain/service"
	"directorio/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret      []byte        // Secret key for signing tokens.
	usuarioTTL  time.Duration // Time-to-live for usuario tokens.
	comercioTTL time.Duration // Time-to-live for comercio tokens, zero means no expiry.
	now         func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	usuarioTTL := 2 * time.Hour
	var comercioTTL time.Duration
	if cfg.Auth != nil {
		if cfg.Auth.UsuarioTokenTTL > 0 {
			usuarioTTL = cfg.Auth.UsuarioTokenTTL
		}
		comercioTTL = cfg.Auth.ComercioTokenTTL
	}

	return &jwtService{
		secret:      []byte(cfg.SecretKey.Access),
		usuarioTTL:  usuarioTTL,
		comercioTTL: comercioTTL,
		now:         time.Now,
	}, nil
}

// IssueUsuarioToken signs a token carrying the usuario's id, role and email.
func (s *jwtService) IssueUsuarioToken(usuario *entity.Usuario) (string, error) {
	now := s.now()
	claims := service.Claims{
		Kind:  string(entity.PrincipalUsuario),
		Rol:   usuario.Rol.String(),
		Email: usuario.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usuario.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.usuarioTTL)),
		},
	}

	return s.sign(claims)
}

// IssueComercioToken signs a token carrying the comercio's id and CIF.
func (s *jwtService) IssueComercioToken(comercio *entity.Comercio) (string, error) {
	now := s.now()
	claims := service.Claims{
		Kind: string(entity.PrincipalComercio),
		CIF:  comercio.CIF,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  comercio.ID.String(),
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if s.comercioTTL > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.comercioTTL))
	}

	return s.sign(claims)
}

// ValidateToken checks signature and expiry and maps the claims to a Principal.
func (s *jwtService) ValidateToken(tokenString string) (*entity.Principal, error) {
	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithIssuedAt(), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "parse token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token subject is not a uuid")
	}

	kind := entity.PrincipalKind(claims.Kind)
	switch kind {
	case entity.PrincipalUsuario:
		return &entity.Principal{
			ID:    id,
			Kind:  kind,
			Rol:   entity.Rol(claims.Rol),
			Email: claims.Email,
		}, nil
	case entity.PrincipalComercio:
		if claims.CIF == "" {
			return nil, errors.Wrap(domainerrors.ErrTokenInvalid, "comercio token without cif")
		}

		return &entity.Principal{
			ID:   id,
			Kind: kind,
			CIF:  claims.CIF,
		}, nil
	default:
		return nil, errors.Wrapf(domainerrors.ErrTokenInvalid, "unknown token kind %q", claims.Kind)
	}
}

func (s *jwtService) sign(claims service.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return signed, nil
}
