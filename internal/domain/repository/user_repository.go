package repository

import (
	"context"

	"medops-backend/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByID(ctx context.Context, db *gorm.DB, userID uint) (*entity.User, error)
	FindByIDs(ctx context.Context, db *gorm.DB, userIDs []uint) ([]entity.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error)
	Exists(ctx context.Context, db *gorm.DB, userID uint) (bool, error)
	Save(ctx context.Context, db *gorm.DB, user *entity.User) error
	Delete(ctx context.Context, db *gorm.DB, userID uint) (int64, error)

	FindRoleAssignments(ctx context.Context, db *gorm.DB, userID uint) ([]entity.UserRoleAssignment, error)
	AddRoleAssignment(ctx context.Context, db *gorm.DB, userID, roleID uint) error
	RemoveRoleAssignment(ctx context.Context, db *gorm.DB, userID, roleID uint) error
	DeleteAssignmentsByUser(ctx context.Context, db *gorm.DB, userID uint) error

	FindPatientRelations(ctx context.Context, db *gorm.DB, doctorID uint) ([]entity.UserRelation, error)
	AddRelation(ctx context.Context, db *gorm.DB, doctorID, patientID uint) error
	RemoveRelation(ctx context.Context, db *gorm.DB, doctorID, patientID uint) error
	DeleteRelationsByUser(ctx context.Context, db *gorm.DB, userID uint) error
}
