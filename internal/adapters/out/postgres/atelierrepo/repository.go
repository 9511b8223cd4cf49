package atelierrepo

import (
	"context"
	"errors"
	"strings"

	"atelier/internal/core/domain/model/atelier"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.AtelierStore = (*GormAtelierStore)(nil)

// GormAtelierStore implements ports.AtelierStore on PostgreSQL.
type GormAtelierStore struct {
	db *gorm.DB
}

func NewGormAtelierStore(db *gorm.DB) *GormAtelierStore {
	return &GormAtelierStore{db: db}
}

// Fetch loads the aggregate, or returns an errs.ObjectNotFoundError.
func (s *GormAtelierStore) Fetch(ctx context.Context, atelierID string) (*atelier.Atelier, error) {
	atelierID = strings.TrimSpace(atelierID)
	if atelierID == "" {
		return nil, atelier.ErrAtelierIDIsRequired
	}

	var dto AtelierDTO
	if err := s.db.WithContext(ctx).First(&dto, "id = ?", atelierID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("atelierId", atelierID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Replace upserts the whole document.
func (s *GormAtelierStore) Replace(ctx context.Context, a *atelier.Atelier) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(a)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
		}).
		Create(&dto).Error
}
