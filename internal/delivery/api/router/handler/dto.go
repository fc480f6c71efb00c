package handler

import (
	"strconv"
	"time"

	"directorio/internal/domain/entity"
	domainerrors "directorio/internal/domain/errors"
	"directorio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListQuery is the optional ordering accepted by every listing.
type ListQuery struct {
	SortBy string `query:"sortBy"`
	Order  string `query:"order" validate:"omitempty,oneof=asc desc ASC DESC"`
}

func (q ListQuery) toInput() usecase.ListInput {
	return usecase.ListInput{SortBy: q.SortBy, Order: q.Order}
}

// UsuarioResponse is the public view of a usuario. The password hash is never serialized.
type UsuarioResponse struct {
	ID                    uuid.UUID   `json:"id"`
	Nombre                string      `json:"nombre"`
	Email                 string      `json:"email"`
	Edad                  int         `json:"edad"`
	Ciudad                string      `json:"ciudad"`
	Rol                   entity.Rol  `json:"rol"`
	Intereses             []string    `json:"intereses"`
	PermiteRecibirOfertas bool        `json:"permiteRecibirOfertas"`
	Resenas               []uuid.UUID `json:"resenas"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
}

func toUsuarioResponse(u *entity.Usuario) *UsuarioResponse {
	return &UsuarioResponse{
		ID:                    u.ID,
		Nombre:                u.Nombre,
		Email:                 u.Email,
		Edad:                  u.Edad,
		Ciudad:                u.Ciudad,
		Rol:                   u.Rol,
		Intereses:             emptyIfNil(u.Intereses),
		PermiteRecibirOfertas: u.PermiteRecibirOfertas,
		Resenas:               emptyIfNil(u.Resenas),
		CreatedAt:             u.CreatedAt,
		UpdatedAt:             u.UpdatedAt,
	}
}

// ComercioResponse is the public view of a comercio.
type ComercioResponse struct {
	ID        uuid.UUID  `json:"id"`
	Nombre    string     `json:"nombre"`
	CIF       string     `json:"cif"`
	Direccion string     `json:"direccion"`
	Email     string     `json:"email"`
	Telefono  string     `json:"telefono"`
	Pagina    *uuid.UUID `json:"pagina"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toComercioResponse(c *entity.Comercio) *ComercioResponse {
	return &ComercioResponse{
		ID:        c.ID,
		Nombre:    c.Nombre,
		CIF:       c.CIF,
		Direccion: c.Direccion,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Pagina:    c.Pagina,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ResenaResponse is a single review of a web.
type ResenaResponse struct {
	UsuarioID  uuid.UUID `json:"usuarioId"`
	Resena     string    `json:"resena"`
	Puntuacion int       `json:"puntuacion"`
	CreatedAt  time.Time `json:"createdAt"`
}

// WebResponse is the public view of a web, including its derived score.
type WebResponse struct {
	ID        uuid.UUID        `json:"id"`
	Ciudad    string           `json:"ciudad"`
	Actividad string           `json:"actividad"`
	Titulo    string           `json:"titulo"`
	Resumen   string           `json:"resumen"`
	Textos    []string         `json:"textos"`
	Fotos     []string         `json:"fotos"`
	Resenas   []ResenaResponse `json:"resenas"`
	Score     float64          `json:"score"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func toWebResponse(view *usecase.WebView) *WebResponse {
	resenas := make([]ResenaResponse, 0, len(view.Resenas))
	for _, r := range view.Resenas {
		resenas = append(resenas, ResenaResponse{
			UsuarioID:  r.UsuarioID,
			Resena:     r.Comentario,
			Puntuacion: r.Puntuacion,
			CreatedAt:  r.CreatedAt,
		})
	}

	return &WebResponse{
		ID:        view.ID,
		Ciudad:    view.Ciudad,
		Actividad: view.Actividad,
		Titulo:    view.Titulo,
		Resumen:   view.Resumen,
		Textos:    emptyIfNil(view.Textos),
		Fotos:     emptyIfNil(view.Fotos),
		Resenas:   resenas,
		Score:     view.Score,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
}

func toWebResponses(views []*usecase.WebView) []*WebResponse {
	out := make([]*WebResponse, 0, len(views))
	for _, view := range views {
		out = append(out, toWebResponse(view))
	}

	return out
}

func emptyIfNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}

	return values
}

// logicoParam reads the optional ?logico= flag selecting a soft delete.
func logicoParam(c echo.Context) (bool, error) {
	raw := c.QueryParam("logico")
	if raw == "" {
		return false, nil
	}

	logico, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domainerrors.NewValidationError("logico debe ser true o false")
	}

	return logico, nil
}

// bindAndValidate binds the request and runs its validation tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.NewValidationError("cuerpo de la petición no válido")
	}

	return c.Validate(req)
}
