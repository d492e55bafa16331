package gorm

import "time"

type FlightCrew struct {
	SAP             int64     `gorm:"column:staffid;primaryKey"`
	FirstName       string    `gorm:"column:fname"`
	LastName        string    `gorm:"column:lname"`
	Designation     string    `gorm:"column:designation;index"`
	Mobile          int64     `gorm:"column:contact"`
	ATPLHolder      bool      `gorm:"column:atpl"`
	LicenceNo       int64     `gorm:"column:license_no"`
	MedicalValidity time.Time `gorm:"column:medical_validity"`
	BaseOps         string    `gorm:"column:base_ops"`
	Availability    bool      `gorm:"column:availability;index"`
	Login           string    `gorm:"column:login;uniqueIndex"`
	Password        string    `gorm:"column:pw"`
}

func (FlightCrew) TableName() string {
	return "flight_crew"
}
