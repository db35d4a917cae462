package repository

import (
	"context"
	"errors"

	"medops-backend/internal/domain/entity"
	domainRepo "medops-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type userRoleRepository struct{}

func NewUserRoleRepository() domainRepo.UserRoleRepository {
	return &userRoleRepository{}
}

func (r *userRoleRepository) Create(ctx context.Context, db *gorm.DB, role *entity.UserRole) error {
	return db.WithContext(ctx).Create(role).Error
}

func (r *userRoleRepository) FindByID(ctx context.Context, db *gorm.DB, roleID uint) (*entity.UserRole, error) {
	var role entity.UserRole
	err := db.WithContext(ctx).Where("role_id = ?", roleID).First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *userRoleRepository) Update(ctx context.Context, db *gorm.DB, role *entity.UserRole) error {
	return db.WithContext(ctx).Save(role).Error
}

func (r *userRoleRepository) Delete(ctx context.Context, db *gorm.DB, roleID uint) (int64, error) {
	result := db.WithContext(ctx).Where("role_id = ?", roleID).Delete(&entity.UserRole{})
	return result.RowsAffected, result.Error
}

func (r *userRoleRepository) DeleteAssignmentsByRole(ctx context.Context, db *gorm.DB, roleID uint) error {
	return db.WithContext(ctx).Where("role_id = ?", roleID).Delete(&entity.UserRoleAssignment{}).Error
}
