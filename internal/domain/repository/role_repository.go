package repository

import (
	"context"

	"medops-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRoleRepository interface {
	Create(ctx context.Context, db *gorm.DB, role *entity.UserRole) error
	FindByID(ctx context.Context, db *gorm.DB, roleID uint) (*entity.UserRole, error)
	Update(ctx context.Context, db *gorm.DB, role *entity.UserRole) error
	Delete(ctx context.Context, db *gorm.DB, roleID uint) (int64, error)
	DeleteAssignmentsByRole(ctx context.Context, db *gorm.DB, roleID uint) error
}
