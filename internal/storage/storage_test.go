package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"medops-backend/config"
	"medops-backend/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestOpenCreatesDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medops.db")

	store, err := Open(config.DBConfig{Type: "sqlite", Path: path}, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	_, err = os.Stat(path)
	require.NoError(t, err)

	// The schema is ready for use straight away.
	role, err := store.UserRoles.Create(context.Background(), &entity.UserRole{RoleName: "Admin"})
	require.NoError(t, err)
	assert.NotZero(t, role.RoleID)
}

func TestOpenReusesExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medops.db")
	cfg := config.DBConfig{Type: "sqlite", Path: path}

	store, err := Open(cfg, testLogger())
	require.NoError(t, err)

	user, err := store.Users.Create(context.Background(), &entity.User{
		DOB:       time.Date(1985, 6, 1, 0, 0, 0, 0, time.UTC),
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := Open(cfg, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, reopened.Close())
	})

	retrieved, err := reopened.Users.Get(context.Background(), user.UserID)
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, "Ada", retrieved.FirstName)
	assert.Equal(t, "ada@example.com", retrieved.Email)
}

func TestStoresShareOneConnection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medops.db")

	store, err := Open(config.DBConfig{Type: "sqlite", Path: path}, testLogger())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	deviceType, err := store.Devices.CreateType(context.Background(), &entity.DeviceType{
		Name:     "Thermometer",
		DataType: entity.DataTypeFloat,
	})
	require.NoError(t, err)

	device, err := store.Devices.Create(context.Background(), &entity.Device{
		DeviceTypeID: deviceType.DeviceTypeID,
		Name:         "Ward Thermometer",
	})
	require.NoError(t, err)

	err = store.Data.Store(context.Background(), &entity.TemperatureDatum{
		DatumMeta: entity.DatumMeta{
			DeviceID:       device.DeviceID,
			AssignedUser:   1,
			CollectionTime: time.Date(2026, 2, 3, 8, 0, 0, 0, time.UTC),
		},
		DegC: 36.8,
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, store.DB().Model(&entity.TemperatureDatum{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
