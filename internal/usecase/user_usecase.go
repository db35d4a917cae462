package usecase

import (
	"context"
	"errors"

	"medops-backend/internal/domain/entity"
	"medops-backend/internal/domain/repository"
	"medops-backend/pkg/validator"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserIDOnCreate     = errors.New("user_id must not be set when creating a user")
	ErrUserIDRequired     = errors.New("user_id is required")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrRoleReference      = errors.New("referenced role does not exist")
	ErrUserReference      = errors.New("referenced user does not exist")
)

// UserUsecase is the store for users and their relationships.
//
// Reads hydrate roles, medical staff and patients to full records every time.
// On update, the role set and the patients set are diffed against persisted
// state and reconciled with minimal inserts and deletes; the medical_staff
// side is derived from the reverse edges and ignored, except at create where
// it seeds doctor->patient edges for the new user.
type UserUsecase interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, userID uint) (*entity.User, error)
	GetMany(ctx context.Context, userIDs []uint) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	Delete(ctx context.Context, userID uint) (bool, error)
}

type userUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	userRepo  repository.UserRepository
	roleRepo  repository.UserRoleRepository
	validator *validator.CustomValidator
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	roleRepo repository.UserRoleRepository,
	validator *validator.CustomValidator,
) UserUsecase {
	return &userUsecase{
		db:        db,
		log:       log,
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		validator: validator,
	}
}

func (u *userUsecase) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user.UserID != 0 {
		return nil, ErrUserIDOnCreate
	}
	if err := u.validator.Validate(user); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.userRepo.FindByEmail(ctx, tx, user.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	if user.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	roleIDs, err := u.resolveRoleIDs(ctx, tx, user.Roles)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, tx, user); err != nil {
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	for roleID := range roleIDs {
		if err := u.userRepo.AddRoleAssignment(ctx, tx, user.UserID, roleID); err != nil {
			u.log.Warnf("Failed to assign role: %+v", err)
			return nil, err
		}
	}

	// Construction-time relationships: the new user may arrive already
	// linked to existing doctors or patients.
	for _, doctor := range user.MedicalStaff {
		if err := u.addRelation(ctx, tx, doctor.UserID, user.UserID, doctor.UserID); err != nil {
			return nil, err
		}
	}
	for _, patient := range user.Patients {
		if err := u.addRelation(ctx, tx, user.UserID, patient.UserID, patient.UserID); err != nil {
			return nil, err
		}
	}

	created, err := u.userRepo.FindByID(ctx, tx, user.UserID)
	if err != nil {
		u.log.Warnf("Failed to read back created user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return normalize(created), nil
}

func (u *userUsecase) Get(ctx context.Context, userID uint) (*entity.User, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	return normalize(user), nil
}

func (u *userUsecase) GetMany(ctx context.Context, userIDs []uint) ([]*entity.User, error) {
	found, err := u.userRepo.FindByIDs(ctx, u.db, userIDs)
	if err != nil {
		u.log.Warnf("Failed to find users: %+v", err)
		return nil, err
	}

	byID := make(map[uint]*entity.User, len(found))
	for i := range found {
		byID[found[i].UserID] = &found[i]
	}

	// Result slots line up with the requested ids; missing ids stay nil.
	users := make([]*entity.User, len(userIDs))
	for i, id := range userIDs {
		users[i] = normalize(byID[id])
	}
	return users, nil
}

func (u *userUsecase) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	if user.UserID == 0 {
		return nil, ErrUserIDRequired
	}
	if err := u.validator.Validate(user); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	current, err := u.userRepo.FindByID(ctx, tx, user.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if current == nil {
		return nil, ErrUserNotFound
	}

	if user.Email != current.Email {
		existing, err := u.userRepo.FindByEmail(ctx, tx, user.Email)
		if err != nil {
			u.log.Warnf("Failed to find user by email: %+v", err)
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailAlreadyExists
		}
	}

	if user.Password == "" {
		user.Password = current.Password
	} else if user.Password != current.Password {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return nil, err
		}
		user.Password = string(hashedPassword)
	}
	user.CreatedAt = current.CreatedAt

	if err := u.userRepo.Save(ctx, tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := u.reconcileRoles(ctx, tx, user); err != nil {
		return nil, err
	}
	if err := u.reconcilePatients(ctx, tx, user); err != nil {
		return nil, err
	}

	updated, err := u.userRepo.FindByID(ctx, tx, user.UserID)
	if err != nil {
		u.log.Warnf("Failed to read back updated user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return normalize(updated), nil
}

func (u *userUsecase) Delete(ctx context.Context, userID uint) (bool, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Every row referencing the user goes in the same transaction: role
	// assignments and relationship edges in both directions.
	if err := u.userRepo.DeleteAssignmentsByUser(ctx, tx, userID); err != nil {
		u.log.Warnf("Failed to delete role assignments: %+v", err)
		return false, err
	}
	if err := u.userRepo.DeleteRelationsByUser(ctx, tx, userID); err != nil {
		u.log.Warnf("Failed to delete user relations: %+v", err)
		return false, err
	}

	affectedRows, err := u.userRepo.Delete(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return false, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return false, err
	}

	return affectedRows > 0, nil
}

// resolveRoleIDs checks every referenced role against the store and returns
// the deduplicated id set. A dangling reference fails the whole operation.
func (u *userUsecase) resolveRoleIDs(ctx context.Context, tx *gorm.DB, roles []entity.UserRole) (map[uint]bool, error) {
	roleIDs := make(map[uint]bool, len(roles))
	for _, role := range roles {
		if roleIDs[role.RoleID] {
			continue
		}
		found, err := u.roleRepo.FindByID(ctx, tx, role.RoleID)
		if err != nil {
			u.log.Warnf("Failed to find role: %+v", err)
			return nil, err
		}
		if found == nil {
			return nil, ErrRoleReference
		}
		roleIDs[role.RoleID] = true
	}
	return roleIDs, nil
}

// addRelation verifies the counterpart user exists before inserting the
// directed edge. otherID names whichever end of the edge is not the user
// being created or updated.
func (u *userUsecase) addRelation(ctx context.Context, tx *gorm.DB, doctorID, patientID, otherID uint) error {
	if otherID == 0 || doctorID == patientID {
		return ErrUserReference
	}
	exists, err := u.userRepo.Exists(ctx, tx, otherID)
	if err != nil {
		u.log.Warnf("Failed to check user existence: %+v", err)
		return err
	}
	if !exists {
		return ErrUserReference
	}
	if err := u.userRepo.AddRelation(ctx, tx, doctorID, patientID); err != nil {
		u.log.Warnf("Failed to add relation: %+v", err)
		return err
	}
	return nil
}

// reconcileRoles diffs the desired role set against the persisted assignment
// rows and applies only the delta.
func (u *userUsecase) reconcileRoles(ctx context.Context, tx *gorm.DB, user *entity.User) error {
	desired, err := u.resolveRoleIDs(ctx, tx, user.Roles)
	if err != nil {
		return err
	}

	assignments, err := u.userRepo.FindRoleAssignments(ctx, tx, user.UserID)
	if err != nil {
		u.log.Warnf("Failed to find role assignments: %+v", err)
		return err
	}

	persisted := make(map[uint]bool, len(assignments))
	for _, assignment := range assignments {
		persisted[assignment.RoleID] = true
		if !desired[assignment.RoleID] {
			if err := u.userRepo.RemoveRoleAssignment(ctx, tx, user.UserID, assignment.RoleID); err != nil {
				u.log.Warnf("Failed to remove role assignment: %+v", err)
				return err
			}
		}
	}
	for roleID := range desired {
		if !persisted[roleID] {
			if err := u.userRepo.AddRoleAssignment(ctx, tx, user.UserID, roleID); err != nil {
				u.log.Warnf("Failed to add role assignment: %+v", err)
				return err
			}
		}
	}
	return nil
}

// reconcilePatients diffs the desired patients set against the persisted
// doctor->patient edges for this user. Only the patients side is
// authoritative; edges where this user is the patient are left untouched.
func (u *userUsecase) reconcilePatients(ctx context.Context, tx *gorm.DB, user *entity.User) error {
	desired := make(map[uint]bool, len(user.Patients))
	for _, patient := range user.Patients {
		if patient.UserID == user.UserID {
			return ErrUserReference
		}
		desired[patient.UserID] = true
	}

	relations, err := u.userRepo.FindPatientRelations(ctx, tx, user.UserID)
	if err != nil {
		u.log.Warnf("Failed to find patient relations: %+v", err)
		return err
	}

	persisted := make(map[uint]bool, len(relations))
	for _, relation := range relations {
		persisted[relation.PatientID] = true
		if !desired[relation.PatientID] {
			if err := u.userRepo.RemoveRelation(ctx, tx, user.UserID, relation.PatientID); err != nil {
				u.log.Warnf("Failed to remove relation: %+v", err)
				return err
			}
		}
	}
	for patientID := range desired {
		if !persisted[patientID] {
			if err := u.addRelation(ctx, tx, user.UserID, patientID, patientID); err != nil {
				return err
			}
		}
	}
	return nil
}

// normalize replaces nil relationship slices with empty ones so callers and
// serializers always see a list.
func normalize(user *entity.User) *entity.User {
	if user == nil {
		return nil
	}
	if user.Roles == nil {
		user.Roles = []entity.UserRole{}
	}
	if user.MedicalStaff == nil {
		user.MedicalStaff = []entity.User{}
	}
	if user.Patients == nil {
		user.Patients = []entity.User{}
	}
	return user
}
