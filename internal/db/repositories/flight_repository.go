package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"skyops/crewdeck/internal/models/entities"
	gormModels "skyops/crewdeck/internal/models/gorm"
)

// FlightRepository is the GORM-backed flight catalog.
type FlightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

func (r *FlightRepository) Insert(ctx context.Context, flight *entities.Flight) error {
	row := flightToRow(flight)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert flight %d: %w", flight.Number, err)
	}
	return nil
}

func (r *FlightRepository) Delete(ctx context.Context, number int) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.Flight{}, "flight_no = ?", number)
	if res.Error != nil {
		return fmt.Errorf("delete flight %d: %w", number, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FlightRepository) FindByNumber(ctx context.Context, number int) (*entities.Flight, error) {
	var row gormModels.Flight
	err := r.db.WithContext(ctx).Where("flight_no = ?", number).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find flight %d: %w", number, err)
	}
	flight := flightFromRow(row)
	return &flight, nil
}

// ListAll returns the whole catalog in flight-number order; the builder
// iterates this same sequence once per day.
func (r *FlightRepository) ListAll(ctx context.Context) ([]entities.Flight, error) {
	var rows []gormModels.Flight
	if err := r.db.WithContext(ctx).Order("flight_no").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}
	out := make([]entities.Flight, 0, len(rows))
	for _, row := range rows {
		out = append(out, flightFromRow(row))
	}
	return out, nil
}

func flightToRow(f *entities.Flight) gormModels.Flight {
	return gormModels.Flight{
		Number:       f.Number,
		Departure:    f.Departure,
		Arrival:      f.Arrival,
		AircraftType: f.AircraftType,
		DepTime:      f.DepTime,
		ArrTime:      f.ArrTime,
		Duration:     f.Duration,
	}
}

func flightFromRow(row gormModels.Flight) entities.Flight {
	return entities.Flight{
		Number:       row.Number,
		Departure:    row.Departure,
		Arrival:      row.Arrival,
		AircraftType: row.AircraftType,
		DepTime:      row.DepTime,
		ArrTime:      row.ArrTime,
		Duration:     row.Duration,
	}
}
