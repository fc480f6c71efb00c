package handler

import (
	"log/slog"
	"net/http"

	"directorio/internal/delivery/api/response"
	deliverycontext "directorio/internal/delivery/context"
	"directorio/internal/domain/entity"
	"directorio/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UsuarioHandlerParams holds dependencies for UsuarioHandler, injected by Fx.
type UsuarioHandlerParams struct {
	fx.In

	UsuarioUC usecase.UsuarioUsecase
	Logger    *slog.Logger
}

// UsuarioHandler holds dependencies for usuario-related handlers
type UsuarioHandler struct {
	usuarioUC usecase.UsuarioUsecase
	logger    *slog.Logger
}

// NewUsuarioHandler is the constructor for UsuarioHandler
func NewUsuarioHandler(params UsuarioHandlerParams) *UsuarioHandler {
	return &UsuarioHandler{
		usuarioUC: params.UsuarioUC,
		logger:    params.Logger,
	}
}

// SignupRequest represents the request body for registering a usuario
type SignupRequest struct {
	Nombre                string   `json:"nombre" validate:"required"`
	Email                 string   `json:"email" validate:"required,email"`
	Password              string   `json:"password" validate:"required,min=6"`
	Edad                  *int     `json:"edad" validate:"required,gte=0,lte=150"`
	Ciudad                string   `json:"ciudad" validate:"required"`
	Rol                   string   `json:"rol" validate:"omitempty,oneof=admin usuario"`
	Intereses             []string `json:"intereses" validate:"omitempty,dive,required"`
	PermiteRecibirOfertas bool     `json:"permiteRecibirOfertas"`
}

// SigninRequest represents the credentials of a usuario
type SigninRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ReplaceUsuarioRequest is a full update; every field is required.
type ReplaceUsuarioRequest struct {
	Nombre                *string   `json:"nombre" validate:"required"`
	Email                 *string   `json:"email" validate:"required,email"`
	Password              *string   `json:"password" validate:"required,min=6"`
	Edad                  *int      `json:"edad" validate:"required,gte=0,lte=150"`
	Ciudad                *string   `json:"ciudad" validate:"required"`
	Intereses             *[]string `json:"intereses" validate:"required"`
	PermiteRecibirOfertas *bool     `json:"permiteRecibirOfertas" validate:"required"`
}

// PatchUsuarioRequest is a partial update; absent fields are left untouched.
type PatchUsuarioRequest struct {
	Nombre                *string   `json:"nombre" validate:"omitempty,min=1"`
	Email                 *string   `json:"email" validate:"omitempty,email"`
	Password              *string   `json:"password" validate:"omitempty,min=6"`
	Edad                  *int      `json:"edad" validate:"omitempty,gte=0,lte=150"`
	Ciudad                *string   `json:"ciudad" validate:"omitempty,min=1"`
	Intereses             *[]string `json:"intereses"`
	PermiteRecibirOfertas *bool     `json:"permiteRecibirOfertas"`
}

// ListUsuariosRequest lists the usuarios of a city accepting offers.
type ListUsuariosRequest struct {
	Ciudad string `param:"ciudad" validate:"required"`
	ListQuery
}

// Signup handles usuario registration
func (h *UsuarioHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	usuario, err := h.usuarioUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Nombre:                req.Nombre,
		Email:                 req.Email,
		Password:              req.Password,
		Edad:                  *req.Edad,
		Ciudad:                req.Ciudad,
		Rol:                   entity.Rol(req.Rol),
		Intereses:             req.Intereses,
		PermiteRecibirOfertas: req.PermiteRecibirOfertas,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUsuarioResponse(usuario))
}

// Signin handles usuario login and returns the token
func (h *UsuarioHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	out, err := h.usuarioUC.Signin(c.Request().Context(), &usecase.SigninInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out.Token)
}

// Replace handles PUT /usuarios/me
func (h *UsuarioHandler) Replace(c echo.Context) error {
	var req ReplaceUsuarioRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.update(c, &usecase.UpdateUsuarioInput{
		Nombre:                req.Nombre,
		Email:                 req.Email,
		Password:              req.Password,
		Edad:                  req.Edad,
		Ciudad:                req.Ciudad,
		Intereses:             req.Intereses,
		PermiteRecibirOfertas: req.PermiteRecibirOfertas,
	})
}

// Patch handles PATCH /usuarios/me
func (h *UsuarioHandler) Patch(c echo.Context) error {
	var req PatchUsuarioRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.update(c, &usecase.UpdateUsuarioInput{
		Nombre:                req.Nombre,
		Email:                 req.Email,
		Password:              req.Password,
		Edad:                  req.Edad,
		Ciudad:                req.Ciudad,
		Intereses:             req.Intereses,
		PermiteRecibirOfertas: req.PermiteRecibirOfertas,
	})
}

func (h *UsuarioHandler) update(c echo.Context, input *usecase.UpdateUsuarioInput) error {
	usuario, err := h.usuarioUC.UpdateSelf(c.Request().Context(), deliverycontext.GetPrincipal(c), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUsuarioResponse(usuario))
}

// Delete handles DELETE /usuarios/me
func (h *UsuarioHandler) Delete(c echo.Context) error {
	logico, err := logicoParam(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	usuario, err := h.usuarioUC.DeleteSelf(c.Request().Context(), deliverycontext.GetPrincipal(c), logico)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUsuarioResponse(usuario))
}

// ListByCiudad handles GET /usuarios/ciudad/:ciudad
func (h *UsuarioHandler) ListByCiudad(c echo.Context) error {
	var req ListUsuariosRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	usuarios, err := h.usuarioUC.ListByCiudad(c.Request().Context(), &usecase.ListUsuariosInput{
		Ciudad:    req.Ciudad,
		ListInput: req.toInput(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, toUsuarioResponse(u))
	}

	return response.Success(c, http.StatusOK, out)
}
