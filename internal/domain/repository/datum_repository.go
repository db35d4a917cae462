package repository

import (
	"context"

	"medops-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DatumRepository interface {
	Store(ctx context.Context, db *gorm.DB, datum entity.Datum) error
	FindByUser(ctx context.Context, db *gorm.DB, kind string, userID uint) ([]entity.Datum, error)
}
