package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "directorio/internal/delivery/context"
	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	mockservice "directorio/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc *mockservice.MockTokenService, header string) (*httptest.ResponseRecorder, *entity.Principal) {
	t.Helper()

	m := NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokenSvc,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *entity.Principal
	err := m.Authenticate(func(c echo.Context) error {
		seen = deliverycontext.GetPrincipal(c)

		return c.NoContent(http.StatusNoContent)
	})(c)
	require.NoError(t, err)

	return rec, seen
}

func TestAuthMiddleware_SetsPrincipal(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	principal := &entity.Principal{ID: uuid.New(), Kind: entity.PrincipalComercio, CIF: "B12345678"}
	tokenSvc.On("ValidateToken", "good").Return(principal, nil).Once()

	rec, seen := runAuthenticate(t, tokenSvc, "Bearer good")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, principal, seen)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		validate bool
		wantCode string
	}{
		{name: "missing header", header: "", wantCode: domainerrors.ErrUnauthorized.ErrorCode()},
		{name: "not a bearer token", header: "Basic dXNlcjpwYXNz", wantCode: domainerrors.ErrTokenInvalid.ErrorCode()},
		{name: "empty bearer", header: "Bearer ", wantCode: domainerrors.ErrTokenInvalid.ErrorCode()},
		{name: "invalid token", header: "Bearer expired", validate: true, wantCode: domainerrors.ErrTokenInvalid.ErrorCode()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockservice.NewMockTokenService(t)
			if tt.validate {
				tokenSvc.On("ValidateToken", "expired").Return(nil, domainerrors.ErrTokenInvalid).Once()
			}

			rec, seen := runAuthenticate(t, tokenSvc, tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantCode)
			assert.Nil(t, seen)
		})
	}
}
