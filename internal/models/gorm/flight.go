package gorm

type Flight struct {
	Number       int    `gorm:"column:flight_no;primaryKey;autoIncrement:false"`
	Departure    string `gorm:"column:departure"`
	Arrival      string `gorm:"column:arrival"`
	AircraftType string `gorm:"column:aircraft_type;index"`
	DepTime      string `gorm:"column:dep_time"`
	ArrTime      string `gorm:"column:arr_time"`
	Duration     string `gorm:"column:duration"`
}

func (Flight) TableName() string {
	return "flights"
}
