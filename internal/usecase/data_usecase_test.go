package usecase

import (
	"context"
	"testing"
	"time"

	"medops-backend/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datumMeta(device *entity.Device, userID uint, collected time.Time) entity.DatumMeta {
	return entity.DatumMeta{
		DeviceID:       device.DeviceID,
		AssignedUser:   userID,
		CollectionTime: collected,
	}
}

func TestDataStoreAndFind(t *testing.T) {
	stores := newTestStores(t)

	deviceType := mustCreateDeviceType(t, stores, "Thermometer", entity.DataTypeFloat)
	device := mustCreateDevice(t, stores, deviceType, "Ward Thermometer")
	user := mustCreateUser(t, stores, "readings@example.com")

	morning := time.Date(2026, 2, 3, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 2, 3, 20, 0, 0, 0, time.UTC)

	err := stores.data.Store(context.Background(),
		&entity.TemperatureDatum{DatumMeta: datumMeta(device, user.UserID, evening), DegC: 37.9},
		&entity.TemperatureDatum{DatumMeta: datumMeta(device, user.UserID, morning), DegC: 36.7},
	)
	require.NoError(t, err)

	data, err := stores.data.FindByUser(context.Background(), entity.DataKindTemperature, user.UserID)
	require.NoError(t, err)
	require.Len(t, data, 2)

	// Readings come back ordered by collection time.
	first, ok := data[0].(*entity.TemperatureDatum)
	require.True(t, ok)
	assert.Equal(t, 36.7, first.DegC)
	assert.True(t, first.CollectionTime.Equal(morning))
	assert.False(t, first.ReceivedTime.IsZero())

	second, ok := data[1].(*entity.TemperatureDatum)
	require.True(t, ok)
	assert.Equal(t, 37.9, second.DegC)
}

func TestDataStoreAllKinds(t *testing.T) {
	stores := newTestStores(t)

	deviceType := mustCreateDeviceType(t, stores, "Multimeter", entity.DataTypeFloat)
	device := mustCreateDevice(t, stores, deviceType, "Bedside Unit")
	user := mustCreateUser(t, stores, "allkinds@example.com")

	collected := time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)
	meta := datumMeta(device, user.UserID, collected)

	err := stores.data.Store(context.Background(),
		&entity.TemperatureDatum{DatumMeta: meta, DegC: 36.6},
		&entity.BloodPressureDatum{DatumMeta: meta, Systolic: 120, Diastolic: 80},
		&entity.BloodSaturationDatum{DatumMeta: meta, Percentage: 98.5},
		&entity.GlucometerDatum{DatumMeta: meta, MgDl: 95},
		&entity.PulseDatum{DatumMeta: meta, BPM: 62},
		&entity.WeightDatum{DatumMeta: meta, Grams: 72500},
	)
	require.NoError(t, err)

	for _, kind := range []string{
		entity.DataKindTemperature,
		entity.DataKindBloodPressure,
		entity.DataKindOxygenSat,
		entity.DataKindGlucose,
		entity.DataKindHeartRate,
		entity.DataKindWeight,
	} {
		data, err := stores.data.FindByUser(context.Background(), kind, user.UserID)
		require.NoError(t, err)
		require.Len(t, data, 1, "kind %s", kind)
		assert.Equal(t, kind, data[0].Kind())
		assert.Equal(t, device.DeviceID, data[0].Meta().DeviceID)
	}
}

func TestDataStoreDanglingDevice(t *testing.T) {
	stores := newTestStores(t)

	deviceType := mustCreateDeviceType(t, stores, "Scale", entity.DataTypeInteger)
	device := mustCreateDevice(t, stores, deviceType, "Scale A")
	user := mustCreateUser(t, stores, "rollback@example.com")

	collected := time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)
	err := stores.data.Store(context.Background(),
		&entity.WeightDatum{DatumMeta: datumMeta(device, user.UserID, collected), Grams: 70000},
		&entity.WeightDatum{DatumMeta: entity.DatumMeta{DeviceID: 404, AssignedUser: user.UserID, CollectionTime: collected}, Grams: 71000},
	)
	require.ErrorIs(t, err, ErrDeviceReference)

	// The whole batch rolls back, including the valid reading.
	data, err := stores.data.FindByUser(context.Background(), entity.DataKindWeight, user.UserID)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestDataStoreRequiresCollectionTime(t *testing.T) {
	stores := newTestStores(t)

	deviceType := mustCreateDeviceType(t, stores, "Scale", entity.DataTypeInteger)
	device := mustCreateDevice(t, stores, deviceType, "Scale A")

	err := stores.data.Store(context.Background(), &entity.WeightDatum{
		DatumMeta: entity.DatumMeta{DeviceID: device.DeviceID},
		Grams:     70000,
	})
	assert.Error(t, err)
}

func TestDataFindByUserUnknownKind(t *testing.T) {
	stores := newTestStores(t)

	_, err := stores.data.FindByUser(context.Background(), "barometric_pressure", 1)
	assert.Error(t, err)
}

func TestDataFindByUserFiltersByUser(t *testing.T) {
	stores := newTestStores(t)

	deviceType := mustCreateDeviceType(t, stores, "Pulse Oximeter", entity.DataTypeInteger)
	device := mustCreateDevice(t, stores, deviceType, "Oximeter A")
	alice := mustCreateUser(t, stores, "alice@example.com")
	bob := mustCreateUser(t, stores, "bob@example.com")

	collected := time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC)
	err := stores.data.Store(context.Background(),
		&entity.PulseDatum{DatumMeta: datumMeta(device, alice.UserID, collected), BPM: 60},
		&entity.PulseDatum{DatumMeta: datumMeta(device, bob.UserID, collected), BPM: 90},
	)
	require.NoError(t, err)

	data, err := stores.data.FindByUser(context.Background(), entity.DataKindHeartRate, alice.UserID)
	require.NoError(t, err)
	require.Len(t, data, 1)
	pulse, ok := data[0].(*entity.PulseDatum)
	require.True(t, ok)
	assert.Equal(t, 60, pulse.BPM)
}
