package gorm

type Aircraft struct {
	MSN          int64  `gorm:"column:msn;primaryKey"`
	Type         string `gorm:"column:type;index"`
	Registration string `gorm:"column:regn;uniqueIndex"`
	Availability bool   `gorm:"column:availability;index"`
	Engine       string `gorm:"column:engine"`
	EngineHours  int    `gorm:"column:engine_hours"`
}

func (Aircraft) TableName() string {
	return "aircraft_fleet"
}
