package entity

import (
	"time"
)

// User represents a person in the system. A user can be staff, a patient,
// or both at once; nothing here restricts which side of a care relationship
// a user may appear on.
type User struct {
	UserID    uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	DOB       time.Time `gorm:"column:dob;type:date;not null" json:"dob" validate:"required"`
	FirstName string    `gorm:"type:varchar(255);not null" json:"first_name" validate:"required"`
	LastName  string    `gorm:"type:varchar(255);not null" json:"last_name" validate:"required"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required"`
	Password  string    `gorm:"type:text" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships. MedicalStaff and Patients are two views of the same
	// directed doctor->patient edge, stored once in user_relations.
	// MedicalStaff is derived on read; only Patients is authoritative on update.
	Roles        []UserRole `gorm:"many2many:user_role_assignments;foreignKey:UserID;joinForeignKey:UserID;references:RoleID;joinReferences:RoleID" json:"roles"`
	MedicalStaff []User     `gorm:"many2many:user_relations;foreignKey:UserID;joinForeignKey:PatientID;references:UserID;joinReferences:DoctorID" json:"medical_staff"`
	Patients     []User     `gorm:"many2many:user_relations;foreignKey:UserID;joinForeignKey:DoctorID;references:UserID;joinReferences:PatientID" json:"patients"`
}

func (User) TableName() string {
	return "users"
}

// HasRole reports whether the user carries the named role.
func (u *User) HasRole(roleName string) bool {
	for _, role := range u.Roles {
		if role.RoleName == roleName {
			return true
		}
	}
	return false
}

// UserRelation is one directed doctor->patient edge. Edge existence is a
// single row keyed by the ordered pair (doctor_id, patient_id).
type UserRelation struct {
	DoctorID  uint `gorm:"column:doctor_id;primaryKey"`
	PatientID uint `gorm:"column:patient_id;primaryKey"`
}

func (UserRelation) TableName() string {
	return "user_relations"
}
