package repository

import (
	"context"
	"errors"

	"medops-backend/internal/domain/entity"
	domainRepo "medops-backend/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

// hydrate attaches the preloads needed to resolve roles and both sides of the
// doctor<->patient relationship to full records. Nested users get their roles
// resolved but not their own relationships.
func hydrate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Roles").
		Preload("MedicalStaff").
		Preload("MedicalStaff.Roles").
		Preload("Patients").
		Preload("Patients.Roles")
}

func (r *userRepository) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	// Associations are managed through explicit join rows, never through
	// GORM's association writes.
	return db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, db *gorm.DB, userID uint) (*entity.User, error) {
	var user entity.User
	err := hydrate(db.WithContext(ctx)).Where("user_id = ?", userID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIDs(ctx context.Context, db *gorm.DB, userIDs []uint) ([]entity.User, error) {
	var users []entity.User
	err := hydrate(db.WithContext(ctx)).Where("user_id IN ?", userIDs).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, db *gorm.DB, userID uint) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.User{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) Save(ctx context.Context, db *gorm.DB, user *entity.User) error {
	return db.WithContext(ctx).Omit(clause.Associations).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, db *gorm.DB, userID uint) (int64, error) {
	result := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.User{})
	return result.RowsAffected, result.Error
}

func (r *userRepository) FindRoleAssignments(ctx context.Context, db *gorm.DB, userID uint) ([]entity.UserRoleAssignment, error) {
	var assignments []entity.UserRoleAssignment
	err := db.WithContext(ctx).Where("user_id = ?", userID).Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *userRepository) AddRoleAssignment(ctx context.Context, db *gorm.DB, userID, roleID uint) error {
	assignment := entity.UserRoleAssignment{UserID: userID, RoleID: roleID}
	return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&assignment).Error
}

func (r *userRepository) RemoveRoleAssignment(ctx context.Context, db *gorm.DB, userID, roleID uint) error {
	return db.WithContext(ctx).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&entity.UserRoleAssignment{}).Error
}

func (r *userRepository) DeleteAssignmentsByUser(ctx context.Context, db *gorm.DB, userID uint) error {
	return db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.UserRoleAssignment{}).Error
}

func (r *userRepository) FindPatientRelations(ctx context.Context, db *gorm.DB, doctorID uint) ([]entity.UserRelation, error) {
	var relations []entity.UserRelation
	err := db.WithContext(ctx).Where("doctor_id = ?", doctorID).Find(&relations).Error
	if err != nil {
		return nil, err
	}
	return relations, nil
}

func (r *userRepository) AddRelation(ctx context.Context, db *gorm.DB, doctorID, patientID uint) error {
	relation := entity.UserRelation{DoctorID: doctorID, PatientID: patientID}
	return db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&relation).Error
}

func (r *userRepository) RemoveRelation(ctx context.Context, db *gorm.DB, doctorID, patientID uint) error {
	return db.WithContext(ctx).
		Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).
		Delete(&entity.UserRelation{}).Error
}

func (r *userRepository) DeleteRelationsByUser(ctx context.Context, db *gorm.DB, userID uint) error {
	return db.WithContext(ctx).
		Where("doctor_id = ? OR patient_id = ?", userID, userID).
		Delete(&entity.UserRelation{}).Error
}
