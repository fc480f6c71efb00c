package auth

import (
	"testing"
	"time"

	"directorio/config"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, auth *config.AuthConfig) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: auth}
	cfg.SecretKey.Access = testSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)

	return impl
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_UsuarioToken(t *testing.T) {
	svc := newTestJWTService(t, &config.AuthConfig{UsuarioTokenTTL: time.Hour})
	usuario := &entity.Usuario{ID: uuid.New(), Email: "ana@example.com", Rol: entity.RolAdmin}

	token, err := svc.IssueUsuarioToken(usuario)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	principal, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, usuario.ID, principal.ID)
	assert.Equal(t, entity.PrincipalUsuario, principal.Kind)
	assert.Equal(t, entity.RolAdmin, principal.Rol)
	assert.Equal(t, usuario.Email, principal.Email)
	assert.Empty(t, principal.CIF)
}

func TestJWTService_UsuarioTokenExpires(t *testing.T) {
	svc := newTestJWTService(t, &config.AuthConfig{UsuarioTokenTTL: time.Hour})
	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.IssueUsuarioToken(&entity.Usuario{ID: uuid.New(), Rol: entity.RolUsuario})
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(2 * time.Hour) }
	principal, err := svc.ValidateToken(token)
	assert.Nil(t, principal)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_ComercioTokenWithoutExpiry(t *testing.T) {
	svc := newTestJWTService(t, nil)
	comercio := &entity.Comercio{ID: uuid.New(), CIF: "B12345678"}

	token, err := svc.IssueComercioToken(comercio)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)

	// Still valid far in the future.
	svc.now = func() time.Time { return time.Now().Add(24 * 365 * time.Hour) }
	principal, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, entity.PrincipalComercio, principal.Kind)
	assert.Equal(t, comercio.ID, principal.ID)
	assert.Equal(t, "B12345678", principal.CIF)
}

func TestJWTService_ComercioTokenWithTTL(t *testing.T) {
	svc := newTestJWTService(t, &config.AuthConfig{ComercioTokenTTL: time.Minute})
	issuedAt := time.Now()
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.IssueComercioToken(&entity.Comercio{ID: uuid.New(), CIF: "B1"})
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(time.Hour) }
	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	svc := newTestJWTService(t, nil)

	sign := func(t *testing.T, method jwt.SigningMethod, key any, claims jwt.Claims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)

		return token
	}

	tests := []struct {
		name  string
		token func(t *testing.T) string
	}{
		{
			name:  "not a jwt",
			token: func(*testing.T) string { return "clearly-not-a-jwt-token-format" },
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte("other-secret"), jwt.MapClaims{
					"sub": uuid.NewString(), "kind": "usuario",
				})
			},
		},
		{
			name: "unsigned",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{
					"sub": uuid.NewString(), "kind": "usuario",
				})
			},
		},
		{
			name: "unknown kind",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
					"sub": uuid.NewString(), "kind": "robot",
				})
			},
		},
		{
			name: "subject is not a uuid",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
					"sub": "42", "kind": "usuario",
				})
			},
		},
		{
			name: "comercio without cif",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
					"sub": uuid.NewString(), "kind": "comercio",
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			principal, err := svc.ValidateToken(tt.token(t))
			assert.Nil(t, principal)
			assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
		})
	}
}
