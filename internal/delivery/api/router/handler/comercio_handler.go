package handler

import (
	"log/slog"
	"net/http"

	"directorio/internal/delivery/api/response"
	deliverycontext "directorio/internal/delivery/context"
	"directorio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ComercioHandlerParams holds dependencies for ComercioHandler, injected by Fx.
type ComercioHandlerParams struct {
	fx.In

	ComercioUC usecase.ComercioUsecase
	Logger     *slog.Logger
}

// ComercioHandler holds dependencies for comercio-related handlers
type ComercioHandler struct {
	comercioUC usecase.ComercioUsecase
	logger     *slog.Logger
}

// NewComercioHandler is the constructor for ComercioHandler
func NewComercioHandler(params ComercioHandlerParams) *ComercioHandler {
	return &ComercioHandler{
		comercioUC: params.ComercioUC,
		logger:     params.Logger,
	}
}

// CreateComercioRequest represents the request body for registering a comercio
type CreateComercioRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	CIF       string `json:"cif" validate:"required"`
	Direccion string `json:"direccion" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Telefono  string `json:"telefono" validate:"required"`
}

// ReplaceComercioRequest is a full update; every field is required.
type ReplaceComercioRequest struct {
	Nombre    *string `json:"nombre" validate:"required"`
	Direccion *string `json:"direccion" validate:"required"`
	Email     *string `json:"email" validate:"required,email"`
	Telefono  *string `json:"telefono" validate:"required"`
}

// PatchComercioRequest is a partial update.
type PatchComercioRequest struct {
	Nombre    *string `json:"nombre" validate:"omitempty,min=1"`
	Direccion *string `json:"direccion" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Telefono  *string `json:"telefono" validate:"omitempty,min=1"`
}

// CreateComercioResponse carries the comercio and its token.
type CreateComercioResponse struct {
	Comercio *ComercioResponse `json:"comercio"`
	JWT      string            `json:"jwt"`
}

// List handles GET /comercios
func (h *ComercioHandler) List(c echo.Context) error {
	var query ListQuery
	if err := bindAndValidate(c, &query); err != nil {
		return response.HandleAppError(c, err)
	}

	input := query.toInput()
	comercios, err := h.comercioUC.List(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*ComercioResponse, 0, len(comercios))
	for _, comercio := range comercios {
		out = append(out, toComercioResponse(comercio))
	}

	return response.Success(c, http.StatusOK, out)
}

// Get handles GET /comercios/:cif
func (h *ComercioHandler) Get(c echo.Context) error {
	comercio, err := h.comercioUC.Get(c.Request().Context(), c.Param("cif"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toComercioResponse(comercio))
}

// Create handles POST /comercios
func (h *ComercioHandler) Create(c echo.Context) error {
	var req CreateComercioRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.comercioUC.Create(c.Request().Context(), deliverycontext.GetPrincipal(c), &usecase.CreateComercioInput{
		Nombre:    req.Nombre,
		CIF:       req.CIF,
		Direccion: req.Direccion,
		Email:     req.Email,
		Telefono:  req.Telefono,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CreateComercioResponse{
		Comercio: toComercioResponse(out.Comercio),
		JWT:      out.Token,
	})
}

// Replace handles PUT /comercios/:cif
func (h *ComercioHandler) Replace(c echo.Context) error {
	var req ReplaceComercioRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.update(c, &usecase.UpdateComercioInput{
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		Email:     req.Email,
		Telefono:  req.Telefono,
	})
}

// Patch handles PATCH /comercios/:cif
func (h *ComercioHandler) Patch(c echo.Context) error {
	var req PatchComercioRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.update(c, &usecase.UpdateComercioInput{
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		Email:     req.Email,
		Telefono:  req.Telefono,
	})
}

func (h *ComercioHandler) update(c echo.Context, input *usecase.UpdateComercioInput) error {
	comercio, err := h.comercioUC.Update(c.Request().Context(), deliverycontext.GetPrincipal(c), c.Param("cif"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toComercioResponse(comercio))
}

// Delete handles DELETE /comercios/:cif
func (h *ComercioHandler) Delete(c echo.Context) error {
	logico, err := logicoParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	comercio, err := h.comercioUC.Delete(c.Request().Context(), deliverycontext.GetPrincipal(c), c.Param("cif"), logico)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toComercioResponse(comercio))
}
