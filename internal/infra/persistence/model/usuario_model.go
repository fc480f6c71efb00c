// Package model holds the GORM persistence models. They never leave the infra layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioModel mirrors the 'usuarios' table.
type UsuarioModel struct {
	ID                    uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Nombre                string      `gorm:"type:varchar(100);not null"`
	Email                 string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash          string      `gorm:"type:varchar(255);not null"`
	Edad                  int         `gorm:"not null;default:0"`
	Ciudad                string      `gorm:"type:varchar(100);index"`
	Rol                   string      `gorm:"type:varchar(20);not null;default:usuario"`
	Intereses             []string    `gorm:"type:jsonb;serializer:json"`
	PermiteRecibirOfertas bool        `gorm:"not null;default:false"`
	Resenas               []uuid.UUID `gorm:"type:jsonb;serializer:json"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UsuarioModel) TableName() string {
	return "usuarios"
}
