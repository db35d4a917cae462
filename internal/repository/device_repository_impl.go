package repository

import (
	"context"
	"errors"

	"medops-backend/internal/domain/entity"
	domainRepo "medops-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type deviceTypeRepository struct{}

func NewDeviceTypeRepository() domainRepo.DeviceTypeRepository {
	return &deviceTypeRepository{}
}

func (r *deviceTypeRepository) Create(ctx context.Context, db *gorm.DB, deviceType *entity.DeviceType) error {
	return db.WithContext(ctx).Create(deviceType).Error
}

func (r *deviceTypeRepository) FindByID(ctx context.Context, db *gorm.DB, deviceTypeID uint) (*entity.DeviceType, error) {
	var deviceType entity.DeviceType
	err := db.WithContext(ctx).Where("device_type_id = ?", deviceTypeID).First(&deviceType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &deviceType, nil
}

func (r *deviceTypeRepository) Update(ctx context.Context, db *gorm.DB, deviceType *entity.DeviceType) error {
	return db.WithContext(ctx).Save(deviceType).Error
}

func (r *deviceTypeRepository) Delete(ctx context.Context, db *gorm.DB, deviceTypeID uint) (int64, error) {
	result := db.WithContext(ctx).Where("device_type_id = ?", deviceTypeID).Delete(&entity.DeviceType{})
	return result.RowsAffected, result.Error
}

type deviceRepository struct{}

func NewDeviceRepository() domainRepo.DeviceRepository {
	return &deviceRepository{}
}

func (r *deviceRepository) Create(ctx context.Context, db *gorm.DB, device *entity.Device) error {
	return db.WithContext(ctx).Omit("DeviceType").Create(device).Error
}

func (r *deviceRepository) FindByID(ctx context.Context, db *gorm.DB, deviceID uint) (*entity.Device, error) {
	var device entity.Device
	err := db.WithContext(ctx).Preload("DeviceType").Where("device_id = ?", deviceID).First(&device).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &device, nil
}

func (r *deviceRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.Device, error) {
	var devices []entity.Device
	err := db.WithContext(ctx).Preload("DeviceType").Find(&devices).Error
	if err != nil {
		return nil, err
	}
	return devices, nil
}

func (r *deviceRepository) Update(ctx context.Context, db *gorm.DB, device *entity.Device) error {
	return db.WithContext(ctx).Omit("DeviceType").Save(device).Error
}

func (r *deviceRepository) Delete(ctx context.Context, db *gorm.DB, deviceID uint) (int64, error) {
	result := db.WithContext(ctx).Where("device_id = ?", deviceID).Delete(&entity.Device{})
	return result.RowsAffected, result.Error
}
