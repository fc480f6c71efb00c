package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comercio is a registered commerce. It owns at most one Web, referenced through Pagina.
type Comercio struct {
	ID        uuid.UUID
	Nombre    string
	CIF       string     // Tax id, unique; the public key of a comercio.
	Direccion string
	Email     string     // Unique contact email.
	Telefono  string
	Pagina    *uuid.UUID // Owned web, nil while the comercio has no page.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPagina reports whether the comercio currently owns a web.
func (c *Comercio) HasPagina() bool {
	return c.Pagina != nil && *c.Pagina != uuid.Nil
}
