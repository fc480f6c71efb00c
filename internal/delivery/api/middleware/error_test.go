package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "directorio/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, domainerrors.ErrorData) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError(err, c)

	var body domainerrors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Data)

	return rec, *body.Data
}

func TestErrorMiddleware_AppErrorKeepsDetailsForClientErrors(t *testing.T) {
	rec, data := handleError(t, errors.WithStack(domainerrors.ErrComercioNotFound.WithDetails("cif B00000000")))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "COMERCIO_NOT_FOUND", data.Code)
	assert.Equal(t, "cif B00000000", data.Details)
	assert.Len(t, data.Errors, 1)
}

func TestErrorMiddleware_ServerErrorsHideDetails(t *testing.T) {
	rec, data := handleError(t, domainerrors.ErrTransactionFailed.WithDetails("pq: deadlock detected"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "TRANSACTION_FAILED", data.Code)
	assert.Empty(t, data.Details)
}

func TestErrorMiddleware_ValidationErrorListsEveryMessage(t *testing.T) {
	rec, data := handleError(t, domainerrors.NewValidationError("nombre es obligatorio", "edad es obligatorio"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", data.Code)
	assert.Equal(t, []string{"nombre es obligatorio", "edad es obligatorio"}, data.Errors)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, data := handleError(t, echo.NewHTTPError(http.StatusMethodNotAllowed))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "HTTP_ERROR", data.Code)
	assert.Equal(t, []string{"Method Not Allowed"}, data.Errors)
}

func TestErrorMiddleware_UnknownErrorIsHidden(t *testing.T) {
	rec, data := handleError(t, errors.New("connection reset by peer"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, domainerrors.ErrInternalError.ErrorCode(), data.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
