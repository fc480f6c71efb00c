package handler

import (
	"log/slog"
	"mime"
	"net/http"
	"path"

	"directorio/config"
	"directorio/internal/delivery/api/response"
	deliverycontext "directorio/internal/delivery/context"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/usecase"
	"directorio/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	fotoFormField         = "foto"
	defaultMaxUploadBytes = 5 << 20
)

// WebHandlerParams holds dependencies for WebHandler, injected by Fx.
type WebHandlerParams struct {
	fx.In

	WebUC    usecase.WebUsecase
	ResenaUC usecase.ResenaUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// WebHandler holds dependencies for web and review handlers
type WebHandler struct {
	webUC          usecase.WebUsecase
	resenaUC       usecase.ResenaUsecase
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewWebHandler is the constructor for WebHandler
func NewWebHandler(params WebHandlerParams) (*WebHandler, error) {
	maxUploadBytes := int64(defaultMaxUploadBytes)
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.MaxUploadSize != "" {
		parsed, err := util.ParseBytes(params.Config.Storage.MaxUploadSize)
		if err != nil {
			return nil, errors.Wrap(err, "invalid storage.maxUploadSize")
		}
		maxUploadBytes = parsed
	}

	return &WebHandler{
		webUC:          params.WebUC,
		resenaUC:       params.ResenaUC,
		maxUploadBytes: maxUploadBytes,
		logger:         params.Logger,
	}, nil
}

// WebRequest is the full content of a page, used by POST and PUT.
type WebRequest struct {
	Ciudad    string   `json:"ciudad" validate:"required"`
	Actividad string   `json:"actividad" validate:"required"`
	Titulo    string   `json:"titulo" validate:"required"`
	Resumen   string   `json:"resumen" validate:"required"`
	Textos    []string `json:"textos" validate:"omitempty,dive,required"`
	Fotos     []string `json:"fotos" validate:"omitempty,dive,required"`
}

// PatchWebRequest is a partial update of a page.
type PatchWebRequest struct {
	Ciudad    *string   `json:"ciudad" validate:"omitempty,min=1"`
	Actividad *string   `json:"actividad" validate:"omitempty,min=1"`
	Titulo    *string   `json:"titulo" validate:"omitempty,min=1"`
	Resumen   *string   `json:"resumen" validate:"omitempty,min=1"`
	Textos    *[]string `json:"textos"`
	Fotos     *[]string `json:"fotos"`
}

// ResenaRequest is a review of a web.
type ResenaRequest struct {
	Resena     string `json:"resena" validate:"required"`
	Puntuacion *int   `json:"puntuacion" validate:"required,gte=0,lte=5"`
}

// ListWebsRequest narrows a listing by the optional path filters.
type ListWebsRequest struct {
	Ciudad    string `param:"ciudad"`
	Actividad string `param:"actividad"`
	ListQuery
}

// FotoResponse returns the stored path and the updated web.
type FotoResponse struct {
	Path string       `json:"path"`
	Web  *WebResponse `json:"web"`
}

// List handles GET /webs, /webs/ciudad/:ciudad and /webs/ciudad/:ciudad/:actividad
func (h *WebHandler) List(c echo.Context) error {
	var req ListWebsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.ListWebsInput{ListInput: req.toInput()}
	if req.Ciudad != "" {
		input.Ciudad = &req.Ciudad
	}
	if req.Actividad != "" {
		input.Actividad = &req.Actividad
	}

	webs, err := h.webUC.List(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toWebResponses(webs))
}

// Get handles GET /webs/:id
func (h *WebHandler) Get(c echo.Context) error {
	web, err := h.webUC.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toWebResponse(web))
}

// Create handles POST /webs
func (h *WebHandler) Create(c echo.Context) error {
	var req WebRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	web, err := h.webUC.Create(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.CreateWebInput{
		Ciudad:    req.Ciudad,
		Actividad: req.Actividad,
		Titulo:    req.Titulo,
		Resumen:   req.Resumen,
		Textos:    req.Textos,
		Fotos:     req.Fotos,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toWebResponse(web))
}

// Replace handles PUT /webs
func (h *WebHandler) Replace(c echo.Context) error {
	var req WebRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	textos := emptyIfNil(req.Textos)
	fotos := emptyIfNil(req.Fotos)

	return h.update(c, &usecase.UpdateWebInput{
		Ciudad:    &req.Ciudad,
		Actividad: &req.Actividad,
		Titulo:    &req.Titulo,
		Resumen:   &req.Resumen,
		Textos:    &textos,
		Fotos:     &fotos,
	})
}

// Patch handles PATCH /webs
func (h *WebHandler) Patch(c echo.Context) error {
	var req PatchWebRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.update(c, &usecase.UpdateWebInput{
		Ciudad:    req.Ciudad,
		Actividad: req.Actividad,
		Titulo:    req.Titulo,
		Resumen:   req.Resumen,
		Textos:    req.Textos,
		Fotos:     req.Fotos,
	})
}

func (h *WebHandler) update(c echo.Context, input *usecase.UpdateWebInput) error {
	web, err := h.webUC.Update(c.Request().Context(), deliverycontext.GetPrincipal(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toWebResponse(web))
}

// Delete handles DELETE /webs
func (h *WebHandler) Delete(c echo.Context) error {
	logico, err := logicoParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	web, err := h.webUC.Delete(c.Request().Context(), deliverycontext.GetPrincipal(c), logico)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toWebResponse(web))
}

// UploadFoto handles POST /webs/fotos with a multipart "foto" field
func (h *WebHandler) UploadFoto(c echo.Context) error {
	fileHeader, err := c.FormFile(fotoFormField)
	if err != nil {
		return response.HandleAppError(c, domainerrors.NewValidationError("foto es obligatoria"))
	}

	if fileHeader.Size > h.maxUploadBytes {
		return response.HandleAppError(c, domainerrors.NewValidationError(
			"foto supera el tamaño máximo de "+util.FormatBytes(h.maxUploadBytes),
		))
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = mime.TypeByExtension(path.Ext(fileHeader.Filename))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded foto")
	}
	defer file.Close()

	out, err := h.webUC.UploadFoto(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.FotoInput{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Content:     file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, FotoResponse{
		Path: out.Path,
		Web:  toWebResponse(out.Web),
	})
}

// CreateResena handles POST /webs/:id/resenas
func (h *WebHandler) CreateResena(c echo.Context) error {
	var req ResenaRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	web, err := h.resenaUC.AddResena(c.Request().Context(), deliverycontext.GetPrincipal(c), c.Param("id"), &usecase.CreateResenaInput{
		Comentario: req.Resena,
		Puntuacion: *req.Puntuacion,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toWebResponse(web))
}
