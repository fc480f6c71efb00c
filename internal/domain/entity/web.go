package entity

import (
	"time"

	"github.com/google/uuid"
)

// Web is the public page of a Comercio.
type Web struct {
	ID        uuid.UUID
	Ciudad    string
	Actividad string
	Titulo    string
	Resumen   string
	Textos    []string
	Fotos     []string
	Resenas   []Resena
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Resena is a review embedded in a Web. A Usuario leaves at most one per Web.
type Resena struct {
	UsuarioID  uuid.UUID
	Comentario string
	Puntuacion int
	CreatedAt  time.Time
}

// Score returns the arithmetic mean of the review scores, or 0 when there are no reviews.
// It is derived on every read and never stored.
func (w *Web) Score() float64 {
	if len(w.Resenas) == 0 {
		return 0
	}

	total := 0
	for _, r := range w.Resenas {
		total += r.Puntuacion
	}

	return float64(total) / float64(len(w.Resenas))
}
