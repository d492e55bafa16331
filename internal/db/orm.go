package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	gormModels "skyops/crewdeck/internal/models/gorm"
)

var PgDB *gorm.DB

func InitPostgresORM(dsn string) (*gorm.DB, error) {
	orm, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	PgDB = orm
	return orm, nil
}

// Migrate keeps the relational schema in step with the models.
func Migrate(orm *gorm.DB) error {
	return orm.AutoMigrate(
		&gormModels.FlightCrew{},
		&gormModels.Aircraft{},
		&gormModels.Flight{},
		&gormModels.AMECrew{},
		&gormModels.Training{},
		&gormModels.MonthlyRoster{},
	)
}
