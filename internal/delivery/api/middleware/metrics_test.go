package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddleware_LabelsByRouteTemplate(t *testing.T) {
	metrics, err := NewMetricsMiddleware()
	require.NoError(t, err)

	e := echo.New()
	e.Use(metrics.Handle)
	e.GET("/webs/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/webs/"+id, nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",path="/webs/:id",status="204"} 2`)
	assert.Contains(t, body, "go_goroutines")
}

func TestMetricsMiddleware_IndependentRegistries(t *testing.T) {
	_, err := NewMetricsMiddleware()
	require.NoError(t, err)

	_, err = NewMetricsMiddleware()
	assert.NoError(t, err)
}
