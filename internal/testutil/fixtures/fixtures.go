// Package fixtures builds realistic random entities for tests.
package fixtures

import (
	"strings"

	"directorio/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"
)

var fake = faker.New()

// Email returns a unique address on example.com.
func Email() string {
	return strings.ToLower(fake.Person().FirstName()) + "." + uuid.NewString()[:8] + "@example.com"
}

// CIF returns a random Spanish-looking tax id.
func CIF() string {
	return fake.Numerify("B########")
}

// Ciudad returns a random city name.
func Ciudad() string {
	return fake.Address().City()
}

// Usuario returns a live usuario with the given role. The password hash is left empty.
func Usuario(rol entity.Rol) *entity.Usuario {
	return &entity.Usuario{
		ID:                    uuid.New(),
		Nombre:                fake.Person().Name(),
		Email:                 Email(),
		Edad:                  fake.IntBetween(18, 90),
		Ciudad:                Ciudad(),
		Rol:                   rol,
		Intereses:             fake.Lorem().Words(3),
		PermiteRecibirOfertas: fake.Bool(),
		Resenas:               []uuid.UUID{},
	}
}

// Comercio returns a comercio without a page.
func Comercio() *entity.Comercio {
	return &entity.Comercio{
		ID:        uuid.New(),
		Nombre:    fake.Company().Name(),
		CIF:       CIF(),
		Direccion: fake.Address().Address(),
		Email:     Email(),
		Telefono:  fake.Numerify("6########"),
	}
}

// Web returns a web with no reviews.
func Web() *entity.Web {
	return &entity.Web{
		ID:        uuid.New(),
		Ciudad:    Ciudad(),
		Actividad: fake.Lorem().Word(),
		Titulo:    fake.Company().Name(),
		Resumen:   fake.Lorem().Sentence(8),
		Textos:    []string{fake.Lorem().Paragraph(2)},
		Fotos:     []string{},
		Resenas:   []entity.Resena{},
	}
}

// Resena returns a review by the given usuario with the given score.
func Resena(usuarioID uuid.UUID, puntuacion int) entity.Resena {
	return entity.Resena{
		UsuarioID:  usuarioID,
		Comentario: fake.Lorem().Sentence(6),
		Puntuacion: puntuacion,
	}
}
