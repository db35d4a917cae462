package entity

// UserRole is a named category tag attachable to many users.
type UserRole struct {
	RoleID   uint   `gorm:"column:role_id;primaryKey;autoIncrement" json:"role_id"`
	RoleName string `gorm:"type:varchar(100);not null" json:"role_name" validate:"required"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

// UserRoleAssignment is one row of the user<->role join table.
type UserRoleAssignment struct {
	UserID uint `gorm:"column:user_id;primaryKey"`
	RoleID uint `gorm:"column:role_id;primaryKey"`
}

func (UserRoleAssignment) TableName() string {
	return "user_role_assignments"
}
