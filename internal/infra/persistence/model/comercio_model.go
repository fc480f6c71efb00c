package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ComercioModel mirrors the 'comercios' table. Pagina references webs.id and is NULL while the comercio has no page.
type ComercioModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Nombre    string     `gorm:"type:varchar(150);not null"`
	CIF       string     `gorm:"column:cif;type:varchar(20);uniqueIndex;not null"`
	Direccion string     `gorm:"type:varchar(255)"`
	Email     string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Telefono  string     `gorm:"type:varchar(30)"`
	Pagina    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ComercioModel) TableName() string {
	return "comercios"
}
