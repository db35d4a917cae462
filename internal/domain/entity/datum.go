package entity

import (
	"time"
)

// Data kind names reported by devices.
const (
	DataKindTemperature   = "temperature"
	DataKindBloodPressure = "blood_pressure"
	DataKindOxygenSat     = "oxygen_saturation"
	DataKindGlucose       = "glucose_level"
	DataKindHeartRate     = "heart_rate"
	DataKindWeight        = "weight"
)

// Datum is implemented by every typed measurement record.
type Datum interface {
	Kind() string
	Meta() *DatumMeta
}

// DatumMeta carries the fields shared by every measurement kind.
type DatumMeta struct {
	DatumID        uint      `gorm:"column:datum_id;primaryKey;autoIncrement" json:"datum_id"`
	DeviceID       uint      `gorm:"column:device_id;not null;index" json:"device_id" validate:"required"`
	AssignedUser   uint      `gorm:"column:assigned_user;index" json:"assigned_user"`
	ReceivedTime   time.Time `json:"received_time"`
	CollectionTime time.Time `json:"collection_time" validate:"required"`
}

// TemperatureDatum is a body temperature reading in degrees celsius.
type TemperatureDatum struct {
	DatumMeta `gorm:"embedded"`
	DegC      float64 `gorm:"column:deg_c;not null" json:"deg_c"`
}

func (TemperatureDatum) TableName() string   { return "temperature_data" }
func (TemperatureDatum) Kind() string        { return DataKindTemperature }
func (d *TemperatureDatum) Meta() *DatumMeta { return &d.DatumMeta }

// BloodPressureDatum is a systolic/diastolic blood pressure reading in mmHg.
type BloodPressureDatum struct {
	DatumMeta `gorm:"embedded"`
	Systolic  int `gorm:"not null" json:"systolic"`
	Diastolic int `gorm:"not null" json:"diastolic"`
}

func (BloodPressureDatum) TableName() string   { return "blood_pressure_data" }
func (BloodPressureDatum) Kind() string        { return DataKindBloodPressure }
func (d *BloodPressureDatum) Meta() *DatumMeta { return &d.DatumMeta }

// BloodSaturationDatum is a blood oxygen saturation percentage.
type BloodSaturationDatum struct {
	DatumMeta  `gorm:"embedded"`
	Percentage float64 `gorm:"not null" json:"percentage"`
}

func (BloodSaturationDatum) TableName() string   { return "blood_saturation_data" }
func (BloodSaturationDatum) Kind() string        { return DataKindOxygenSat }
func (d *BloodSaturationDatum) Meta() *DatumMeta { return &d.DatumMeta }

// GlucometerDatum is a blood glucose reading in mg/dL.
type GlucometerDatum struct {
	DatumMeta `gorm:"embedded"`
	MgDl      float64 `gorm:"column:mg_dl;not null" json:"mg_dl"`
}

func (GlucometerDatum) TableName() string   { return "glucometer_data" }
func (GlucometerDatum) Kind() string        { return DataKindGlucose }
func (d *GlucometerDatum) Meta() *DatumMeta { return &d.DatumMeta }

// PulseDatum is a heart rate reading in beats per minute.
type PulseDatum struct {
	DatumMeta `gorm:"embedded"`
	BPM       int `gorm:"column:bpm;not null" json:"bpm"`
}

func (PulseDatum) TableName() string   { return "pulse_data" }
func (PulseDatum) Kind() string        { return DataKindHeartRate }
func (d *PulseDatum) Meta() *DatumMeta { return &d.DatumMeta }

// WeightDatum is a body weight reading in grams.
type WeightDatum struct {
	DatumMeta `gorm:"embedded"`
	Grams     int `gorm:"not null" json:"grams"`
}

func (WeightDatum) TableName() string   { return "weight_data" }
func (WeightDatum) Kind() string        { return DataKindWeight }
func (d *WeightDatum) Meta() *DatumMeta { return &d.DatumMeta }
