package gorm

import "time"

type Training struct {
	ID          int       `gorm:"column:training_id;primaryKey;autoIncrement:false"`
	Name        string    `gorm:"column:training_name"`
	Description string    `gorm:"column:training_desc"`
	TrainerSAP  int64     `gorm:"column:trainer;index"`
	TraineeSAP  int64     `gorm:"column:trainee;index"`
	Date        time.Time `gorm:"column:date"`
	Location    string    `gorm:"column:location"`
	Duration    string    `gorm:"column:duration"`
}

func (Training) TableName() string {
	return "training"
}
