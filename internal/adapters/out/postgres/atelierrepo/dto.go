// Package atelierrepo stores each atelier as one jsonb document.
package atelierrepo

import (
	"time"

	"atelier/internal/adapters/out/document"
	"atelier/internal/core/domain/model/atelier"

	"gorm.io/datatypes"
)

// AtelierDTO is one row per atelier. The aggregate is stored whole; a
// write always replaces the previous document.
type AtelierDTO struct {
	ID        string         `gorm:"primaryKey"`
	Document  datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming.
func (AtelierDTO) TableName() string {
	return "ateliers"
}

func fromDomain(a *atelier.Atelier) (AtelierDTO, error) {
	doc, err := document.Marshal(a)
	if err != nil {
		return AtelierDTO{}, err
	}
	return AtelierDTO{ID: a.ID(), Document: datatypes.JSON(doc)}, nil
}

func toDomain(dto AtelierDTO) (*atelier.Atelier, error) {
	return document.Unmarshal(dto.Document, dto.ID)
}
