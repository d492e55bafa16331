package gorm

// MonthlyRoster rows are written by the sqlx roster repository; the GORM
// model exists so AutoMigrate owns the whole schema. Dates are stored as
// ISO strings so the same rows scan identically on Postgres and sqlite.
type MonthlyRoster struct {
	ID          uint   `gorm:"column:id;primaryKey;autoIncrement"`
	Date        string `gorm:"column:date;index"`
	FlightNo    int    `gorm:"column:flight_no;index"`
	AircraftMSN int64  `gorm:"column:aircraft_msn"`
	P1SAP       int64  `gorm:"column:p1_id;index"`
	P2SAP       int64  `gorm:"column:p2_id;index"`
}

func (MonthlyRoster) TableName() string {
	return "monthly_roster"
}
