package handler

import (
	"log/slog"
	"net/http"

	"directorio/internal/delivery/api/response"
	"directorio/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FileHandlerParams holds dependencies for FileHandler, injected by Fx.
type FileHandlerParams struct {
	fx.In

	Storage service.FileStorage
	Logger  *slog.Logger
}

// FileHandler serves uploaded photos back from the bucket.
type FileHandler struct {
	storage service.FileStorage
	logger  *slog.Logger
}

// NewFileHandler is the constructor for FileHandler
func NewFileHandler(params FileHandlerParams) *FileHandler {
	return &FileHandler{storage: params.Storage, logger: params.Logger}
}

// Serve streams the file stored under the wildcard key.
func (h *FileHandler) Serve(c echo.Context) error {
	rc, contentType, err := h.storage.Open(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer rc.Close()

	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Stream(http.StatusOK, contentType, rc)
}
