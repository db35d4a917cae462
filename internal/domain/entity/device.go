package entity

import (
	"time"
)

// Supported data type names for DeviceType.DataType
const (
	DataTypeInteger     = "integer"
	DataTypeFloat       = "float"
	DataTypeNumberArray = "number_array"
	DataTypeString      = "string"
)

// DeviceType classifies a device and the shape of data it reports.
type DeviceType struct {
	DeviceTypeID uint   `gorm:"column:device_type_id;primaryKey;autoIncrement" json:"device_type_id"`
	Name         string `gorm:"type:varchar(100);not null" json:"name" validate:"required"`
	DataType     string `gorm:"type:varchar(20);not null" json:"data_type" validate:"required,oneof=integer float number_array string"`
}

func (DeviceType) TableName() string {
	return "device_types"
}

// Device holds the metadata for one physical device that collects data from
// users. A device reports exactly one type of data; a device that can measure
// more than one thing is entered once per device type, correlated by serial
// number.
type Device struct {
	DeviceID               uint       `gorm:"column:device_id;primaryKey;autoIncrement" json:"device_id"`
	DeviceTypeID           uint       `gorm:"column:device_type_id;not null;index" json:"device_type_id" validate:"required"`
	Name                   string     `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	CurrentFirmwareVersion string     `gorm:"type:varchar(50)" json:"current_firmware_version,omitempty"`
	DateOfPurchase         *time.Time `json:"date_of_purchase,omitempty"`
	SerialNumber           *string    `gorm:"type:varchar(100)" json:"serial_number,omitempty"`
	MACAddress             *string    `gorm:"column:mac_address;type:varchar(17)" json:"mac_address,omitempty"`
	AssignedUser           *uint      `gorm:"column:assigned_user;index" json:"assigned_user,omitempty"`
	Assigner               *uint      `json:"assigner,omitempty"`

	// Relationships
	DeviceType DeviceType `gorm:"foreignKey:DeviceTypeID" json:"device_type,omitempty" validate:"-"`
}

func (Device) TableName() string {
	return "devices"
}
