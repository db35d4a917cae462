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
	ErrRoleNotFound   = errors.New("user role not found")
	ErrRoleIDOnCreate = errors.New("role_id must not be set when creating a user role")
	ErrRoleIDRequired = errors.New("role_id is required")
)

// UserRoleUsecase is the store for user roles. Get returns nil for a missing
// id; Update fails with ErrRoleNotFound; Delete is idempotent and reports
// whether a row was removed.
type UserRoleUsecase interface {
	Create(ctx context.Context, role *entity.UserRole) (*entity.UserRole, error)
	Get(ctx context.Context, roleID uint) (*entity.UserRole, error)
	Update(ctx context.Context, role *entity.UserRole) (*entity.UserRole, error)
	Delete(ctx context.Context, roleID uint) (bool, error)
}

type userRoleUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	roleRepo  repository.UserRoleRepository
	validator *validator.CustomValidator
}

func NewUserRoleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	roleRepo repository.UserRoleRepository,
	validator *validator.CustomValidator,
) UserRoleUsecase {
	return &userRoleUsecase{
		db:        db,
		log:       log,
		roleRepo:  roleRepo,
		validator: validator,
	}
}

func (u *userRoleUsecase) Create(ctx context.Context, role *entity.UserRole) (*entity.UserRole, error) {
	if role.RoleID != 0 {
		return nil, ErrRoleIDOnCreate
	}
	if err := u.validator.Validate(role); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.roleRepo.Create(ctx, tx, role); err != nil {
		u.log.Warnf("Failed to create user role: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return role, nil
}

func (u *userRoleUsecase) Get(ctx context.Context, roleID uint) (*entity.UserRole, error) {
	role, err := u.roleRepo.FindByID(ctx, u.db, roleID)
	if err != nil {
		u.log.Warnf("Failed to find user role: %+v", err)
		return nil, err
	}
	return role, nil
}

func (u *userRoleUsecase) Update(ctx context.Context, role *entity.UserRole) (*entity.UserRole, error) {
	if role.RoleID == 0 {
		return nil, ErrRoleIDRequired
	}
	if err := u.validator.Validate(role); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.roleRepo.FindByID(ctx, tx, role.RoleID)
	if err != nil {
		u.log.Warnf("Failed to find user role: %+v", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrRoleNotFound
	}

	if err := u.roleRepo.Update(ctx, tx, role); err != nil {
		u.log.Warnf("Failed to update user role: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return role, nil
}

func (u *userRoleUsecase) Delete(ctx context.Context, roleID uint) (bool, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Assignment rows referencing the role go with it; deleting a role is
	// never blocked by users still carrying it.
	if err := u.roleRepo.DeleteAssignmentsByRole(ctx, tx, roleID); err != nil {
		u.log.Warnf("Failed to delete role assignments: %+v", err)
		return false, err
	}

	affectedRows, err := u.roleRepo.Delete(ctx, tx, roleID)
	if err != nil {
		u.log.Warnf("Failed to delete user role: %+v", err)
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return false, err
	}

	return affectedRows > 0, nil
}
