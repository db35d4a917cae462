package usecase

import (
	"context"
	"errors"

	"medops-backend/internal/domain/entity"
	"medops-backend/internal/domain/repository"
	"medops-backend/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDeviceNotFound       = errors.New("device not found")
	ErrDeviceTypeNotFound   = errors.New("device type not found")
	ErrDeviceIDOnCreate     = errors.New("device_id must not be set when creating a device")
	ErrDeviceTypeIDOnCreate = errors.New("device_type_id must not be set when creating a device type")
	ErrDeviceTypeReference  = errors.New("referenced device type does not exist")
)

// DeviceUsecase is the store for devices and device types.
type DeviceUsecase interface {
	CreateType(ctx context.Context, deviceType *entity.DeviceType) (*entity.DeviceType, error)
	GetType(ctx context.Context, deviceTypeID uint) (*entity.DeviceType, error)
	UpdateType(ctx context.Context, deviceType *entity.DeviceType) (*entity.DeviceType, error)
	DeleteType(ctx context.Context, deviceTypeID uint) (bool, error)

	Create(ctx context.Context, device *entity.Device) (*entity.Device, error)
	Get(ctx context.Context, deviceID uint) (*entity.Device, error)
	GetAll(ctx context.Context) ([]entity.Device, error)
	Update(ctx context.Context, device *entity.Device) (*entity.Device, error)
	Delete(ctx context.Context, deviceID uint) (bool, error)
}

type deviceUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	deviceRepo     repository.DeviceRepository
	deviceTypeRepo repository.DeviceTypeRepository
	validator      *validator.CustomValidator
}

func NewDeviceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	deviceRepo repository.DeviceRepository,
	deviceTypeRepo repository.DeviceTypeRepository,
	validator *validator.CustomValidator,
) DeviceUsecase {
	return &deviceUsecase{
		db:             db,
		log:            log,
		deviceRepo:     deviceRepo,
		deviceTypeRepo: deviceTypeRepo,
		validator:      validator,
	}
}

func (u *deviceUsecase) CreateType(ctx context.Context, deviceType *entity.DeviceType) (*entity.DeviceType, error) {
	if deviceType.DeviceTypeID != 0 {
		return nil, ErrDeviceTypeIDOnCreate
	}
	if err := u.validator.Validate(deviceType); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.deviceTypeRepo.Create(ctx, tx, deviceType); err != nil {
		u.log.Warnf("Failed to create device type: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return deviceType, nil
}

func (u *deviceUsecase) GetType(ctx context.Context, deviceTypeID uint) (*entity.DeviceType, error) {
	deviceType, err := u.deviceTypeRepo.FindByID(ctx, u.db, deviceTypeID)
	if err != nil {
		u.log.Warnf("Failed to find device type: %+v", err)
		return nil, err
	}
	return deviceType, nil
}

func (u *deviceUsecase) UpdateType(ctx context.Context, deviceType *entity.DeviceType) (*entity.DeviceType, error) {
	if err := u.validator.Validate(deviceType); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.deviceTypeRepo.FindByID(ctx, tx, deviceType.DeviceTypeID)
	if err != nil {
		u.log.Warnf("Failed to find device type: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrDeviceTypeNotFound
	}

	if err := u.deviceTypeRepo.Update(ctx, tx, deviceType); err != nil {
		u.log.Warnf("Failed to update device type: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return deviceType, nil
}

func (u *deviceUsecase) DeleteType(ctx context.Context, deviceTypeID uint) (bool, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affectedRows, err := u.deviceTypeRepo.Delete(ctx, tx, deviceTypeID)
	if err != nil {
		u.log.Warnf("Failed to delete device type: %+v", err)
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return false, err
	}

	return affectedRows > 0, nil
}

func (u *deviceUsecase) Create(ctx context.Context, device *entity.Device) (*entity.Device, error) {
	if device.DeviceID != 0 {
		return nil, ErrDeviceIDOnCreate
	}
	if err := u.validator.Validate(device); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	deviceType, err := u.deviceTypeRepo.FindByID(ctx, tx, device.DeviceTypeID)
	if err != nil {
		u.log.Warnf("Failed to find device type: %+v", err)
		return nil, err
	}
	if deviceType == nil {
		return nil, ErrDeviceTypeReference
	}

	if err := u.deviceRepo.Create(ctx, tx, device); err != nil {
		u.log.Warnf("Failed to create device: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	device.DeviceType = *deviceType
	return device, nil
}

func (u *deviceUsecase) Get(ctx context.Context, deviceID uint) (*entity.Device, error) {
	device, err := u.deviceRepo.FindByID(ctx, u.db, deviceID)
	if err != nil {
		u.log.Warnf("Failed to find device: %+v", err)
		return nil, err
	}
	return device, nil
}

func (u *deviceUsecase) GetAll(ctx context.Context) ([]entity.Device, error) {
	devices, err := u.deviceRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to find devices: %+v", err)
		return nil, err
	}
	return devices, nil
}

func (u *deviceUsecase) Update(ctx context.Context, device *entity.Device) (*entity.Device, error) {
	if err := u.validator.Validate(device); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.deviceRepo.FindByID(ctx, tx, device.DeviceID)
	if err != nil {
		u.log.Warnf("Failed to find device: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrDeviceNotFound
	}

	deviceType, err := u.deviceTypeRepo.FindByID(ctx, tx, device.DeviceTypeID)
	if err != nil {
		u.log.Warnf("Failed to find device type: %+v", err)
		return nil, err
	}
	if deviceType == nil {
		return nil, ErrDeviceTypeReference
	}

	if err := u.deviceRepo.Update(ctx, tx, device); err != nil {
		u.log.Warnf("Failed to update device: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	device.DeviceType = *deviceType
	return device, nil
}

func (u *deviceUsecase) Delete(ctx context.Context, deviceID uint) (bool, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affectedRows, err := u.deviceRepo.Delete(ctx, tx, deviceID)
	if err != nil {
		u.log.Warnf("Failed to delete device: %+v", err)
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return false, err
	}

	return affectedRows > 0, nil
}
