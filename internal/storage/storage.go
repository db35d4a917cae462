package storage

import (
	"medops-backend/config"
	"medops-backend/internal/infrastructure/database"
	"medops-backend/internal/repository"
	"medops-backend/internal/usecase"
	"medops-backend/pkg/validator"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Storage bundles every relational store behind a single open/close
// lifecycle. The individual stores are views over one shared connection and
// have no lifecycle of their own.
type Storage struct {
	db *gorm.DB

	UserRoles usecase.UserRoleUsecase
	Users     usecase.UserUsecase
	Devices   usecase.DeviceUsecase
	Data      usecase.DataUsecase
}

// Open connects to the configured backing store and prepares the schema.
// Opening a sqlite path that does not exist yet creates an empty database;
// an existing path is reopened with its data intact.
func Open(cfg config.DBConfig, log *logrus.Logger) (*Storage, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	if err := database.AutoMigrate(db); err != nil {
		database.Close(db)
		return nil, err
	}

	customValidator := validator.NewValidator()

	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewUserRoleRepository()
	deviceRepo := repository.NewDeviceRepository()
	deviceTypeRepo := repository.NewDeviceTypeRepository()
	datumRepo := repository.NewDatumRepository()

	return &Storage{
		db:        db,
		UserRoles: usecase.NewUserRoleUsecase(db, log, roleRepo, customValidator),
		Users:     usecase.NewUserUsecase(db, log, userRepo, roleRepo, customValidator),
		Devices:   usecase.NewDeviceUsecase(db, log, deviceRepo, deviceTypeRepo, customValidator),
		Data:      usecase.NewDataUsecase(db, log, datumRepo, deviceRepo, customValidator),
	}, nil
}

// DB exposes the shared connection for callers that need raw access.
func (s *Storage) DB() *gorm.DB {
	return s.db
}

// Close releases the backing connection.
func (s *Storage) Close() error {
	return database.Close(s.db)
}
