package gorm

type AMECrew struct {
	SAP       int64  `gorm:"column:staffid;primaryKey"`
	Name      string `gorm:"column:name"`
	FleetCert string `gorm:"column:fleet_certified;index"`
	Login     string `gorm:"column:login;uniqueIndex"`
	Password  string `gorm:"column:pw"`
}

func (AMECrew) TableName() string {
	return "ame_crew"
}
