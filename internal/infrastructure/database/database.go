package database

import (
	"fmt"

	"medops-backend/config"
	"medops-backend/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the relational store configured by DB_TYPE. sqlite is the
// default embedded engine; postgres is available for shared deployments.
func Connect(cfg config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Type {
	case "sqlite", "":
		dialector = sqlite.Open(cfg.Path)

	case "postgres", "postgresql":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
		)
		dialector = postgres.Open(dsn)

	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

// AutoMigrate creates or updates the schema for every stored model. Opening
// a fresh sqlite file yields an empty, fully formed schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.UserRole{},
		&entity.User{},
		&entity.UserRoleAssignment{},
		&entity.UserRelation{},
		&entity.DeviceType{},
		&entity.Device{},
		&entity.TemperatureDatum{},
		&entity.BloodPressureDatum{},
		&entity.BloodSaturationDatum{},
		&entity.GlucometerDatum{},
		&entity.PulseDatum{},
		&entity.WeightDatum{},
	)
}

// Close releases the underlying connection.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
