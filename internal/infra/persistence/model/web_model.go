package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebModel mirrors the 'webs' table. Reviews live in 'resenas'.
type WebModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Ciudad    string    `gorm:"type:varchar(100);index:idx_webs_ciudad_actividad;not null"`
	Actividad string    `gorm:"type:varchar(100);index:idx_webs_ciudad_actividad;not null"`
	Titulo    string    `gorm:"type:varchar(200);not null"`
	Resumen   string    `gorm:"type:text"`
	Textos    []string  `gorm:"type:jsonb;serializer:json"`
	Fotos     []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Resenas []ResenaModel `gorm:"foreignKey:WebID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (WebModel) TableName() string {
	return "webs"
}

// ResenaModel mirrors the 'resenas' table. A usuario reviews a web at most once.
type ResenaModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	WebID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_resenas_web_usuario"`
	UsuarioID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_resenas_web_usuario"`
	Comentario string    `gorm:"type:text"`
	Puntuacion int       `gorm:"not null;check:chk_resenas_puntuacion,puntuacion >= 0 AND puntuacion <= 5"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResenaModel) TableName() string {
	return "resenas"
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&UsuarioModel{},
		&WebModel{},
		&ResenaModel{},
		&ComercioModel{},
	}
}
