package repository

import (
	"context"

	"medops-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type DeviceTypeRepository interface {
	Create(ctx context.Context, db *gorm.DB, deviceType *entity.DeviceType) error
	FindByID(ctx context.Context, db *gorm.DB, deviceTypeID uint) (*entity.DeviceType, error)
	Update(ctx context.Context, db *gorm.DB, deviceType *entity.DeviceType) error
	Delete(ctx context.Context, db *gorm.DB, deviceTypeID uint) (int64, error)
}

type DeviceRepository interface {
	Create(ctx context.Context, db *gorm.DB, device *entity.Device) error
	FindByID(ctx context.Context, db *gorm.DB, deviceID uint) (*entity.Device, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.Device, error)
	Update(ctx context.Context, db *gorm.DB, device *entity.Device) error
	Delete(ctx context.Context, db *gorm.DB, deviceID uint) (int64, error)
}
