package usecase

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"medops-backend/config"
	"medops-backend/internal/domain/entity"
	"medops-backend/internal/infrastructure/database"
	"medops-backend/internal/repository"
	"medops-backend/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a fresh file-backed sqlite store with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "medops_test.db")
	db, err := database.Connect(config.DBConfig{Type: "sqlite", Path: path})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		database.Close(db)
	})
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type testStores struct {
	db        *gorm.DB
	userRoles UserRoleUsecase
	users     UserUsecase
	devices   DeviceUsecase
	data      DataUsecase
}

func newTestStores(t *testing.T) *testStores {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	customValidator := validator.NewValidator()

	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewUserRoleRepository()
	deviceRepo := repository.NewDeviceRepository()
	deviceTypeRepo := repository.NewDeviceTypeRepository()
	datumRepo := repository.NewDatumRepository()

	return &testStores{
		db:        db,
		userRoles: NewUserRoleUsecase(db, log, roleRepo, customValidator),
		users:     NewUserUsecase(db, log, userRepo, roleRepo, customValidator),
		devices:   NewDeviceUsecase(db, log, deviceRepo, deviceTypeRepo, customValidator),
		data:      NewDataUsecase(db, log, datumRepo, deviceRepo, customValidator),
	}
}

func mustCreateRole(t *testing.T, stores *testStores, name string) *entity.UserRole {
	t.Helper()

	role, err := stores.userRoles.Create(context.Background(), &entity.UserRole{RoleName: name})
	require.NoError(t, err)
	require.NotZero(t, role.RoleID)
	return role
}

func testUser(email string, roles ...entity.UserRole) *entity.User {
	return &entity.User{
		DOB:       time.Date(1990, 12, 15, 0, 0, 0, 0, time.UTC),
		FirstName: "John",
		LastName:  "Doe",
		Email:     email,
		Roles:     roles,
	}
}

func mustCreateUser(t *testing.T, stores *testStores, email string, roles ...entity.UserRole) *entity.User {
	t.Helper()

	user, err := stores.users.Create(context.Background(), testUser(email, roles...))
	require.NoError(t, err)
	require.NotZero(t, user.UserID)
	return user
}

func roleIDs(roles []entity.UserRole) []uint {
	ids := make([]uint, len(roles))
	for i, role := range roles {
		ids[i] = role.RoleID
	}
	return ids
}

func userIDs(users []entity.User) []uint {
	ids := make([]uint, len(users))
	for i, user := range users {
		ids[i] = user.UserID
	}
	return ids
}
