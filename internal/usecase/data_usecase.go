package usecase

import (
	"context"
	"errors"
	"time"

	"medops-backend/internal/domain/entity"
	"medops-backend/internal/domain/repository"
	"medops-backend/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrDeviceReference = errors.New("referenced device does not exist")

// DataUsecase is the ingestion store for typed device measurements.
type DataUsecase interface {
	Store(ctx context.Context, data ...entity.Datum) error
	FindByUser(ctx context.Context, kind string, userID uint) ([]entity.Datum, error)
}

type dataUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	datumRepo  repository.DatumRepository
	deviceRepo repository.DeviceRepository
	validator  *validator.CustomValidator
}

func NewDataUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	datumRepo repository.DatumRepository,
	deviceRepo repository.DeviceRepository,
	validator *validator.CustomValidator,
) DataUsecase {
	return &dataUsecase{
		db:         db,
		log:        log,
		datumRepo:  datumRepo,
		deviceRepo: deviceRepo,
		validator:  validator,
	}
}

// Store persists a batch of measurements atomically. Every datum must
// reference an existing device; a missing ReceivedTime is stamped on arrival.
func (u *dataUsecase) Store(ctx context.Context, data ...entity.Datum) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, datum := range data {
		if err := u.validator.Validate(datum); err != nil {
			return err
		}

		meta := datum.Meta()
		device, err := u.deviceRepo.FindByID(ctx, tx, meta.DeviceID)
		if err != nil {
			u.log.Warnf("Failed to find device: %+v", err)
			return err
		}
		if device == nil {
			return ErrDeviceReference
		}

		if meta.ReceivedTime.IsZero() {
			meta.ReceivedTime = now
		}

		if err := u.datumRepo.Store(ctx, tx, datum); err != nil {
			u.log.Warnf("Failed to store datum: %+v", err)
			return err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func (u *dataUsecase) FindByUser(ctx context.Context, kind string, userID uint) ([]entity.Datum, error) {
	data, err := u.datumRepo.FindByUser(ctx, u.db, kind, userID)
	if err != nil {
		u.log.Warnf("Failed to find data: %+v", err)
		return nil, err
	}
	return data, nil
}
