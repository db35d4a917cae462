package repository

import (
	"context"
	"fmt"

	"medops-backend/internal/domain/entity"
	domainRepo "medops-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type datumRepository struct{}

func NewDatumRepository() domainRepo.DatumRepository {
	return &datumRepository{}
}

func (r *datumRepository) Store(ctx context.Context, db *gorm.DB, datum entity.Datum) error {
	return db.WithContext(ctx).Create(datum).Error
}

func (r *datumRepository) FindByUser(ctx context.Context, db *gorm.DB, kind string, userID uint) ([]entity.Datum, error) {
	tx := db.WithContext(ctx).Where("assigned_user = ?", userID).Order("collection_time")

	switch kind {
	case entity.DataKindTemperature:
		var rows []entity.TemperatureDatum
		if err := tx.Find(&rows).Error; err != nil {
			return nil, err
		}
		return collect(rows), nil
	case entity.DataKindBloodPressure:
		var rows []entity.BloodPressureDatum
		if err := tx.Find(&rows).Error; err != nil {
			return nil, err
		}
		return collect(rows), nil
	case entity.DataKindOxygenSat:
		var rows []entity.BloodSaturationDatum
		if err := tx.Find(&rows).Error; err != nil {
			return nil, err
		}
		return collect(rows), nil
	case entity.DataKindGlucose:
		var rows []entity.GlucometerDatum
		if err := tx.Find(&rows).Error; err != nil {
			return nil, err
		}
		return collect(rows), nil
	case entity.DataKindHeartRate:
		var rows []entity.PulseDatum
		if err := tx.Find(&rows).Error; err != nil {
			return nil, err
		}
		return collect(rows), nil
	case entity.DataKindWeight:
		var rows []entity.WeightDatum
		if err := tx.Find(&rows).Error; err != nil {
			return nil, err
		}
		return collect(rows), nil
	default:
		return nil, fmt.Errorf("unknown data kind: %s", kind)
	}
}

// collect converts a typed row slice into the Datum interface slice. The
// pointer element is what implements Datum.
func collect[T any, PT interface {
	*T
	entity.Datum
}](rows []T) []entity.Datum {
	data := make([]entity.Datum, len(rows))
	for i := range rows {
		data[i] = PT(&rows[i])
	}
	return data
}
