package services

import (
	"context"

	"skyops/crewdeck/internal/db/repositories"
	"skyops/crewdeck/internal/models/dtos"
	"skyops/crewdeck/internal/models/entities"
)

// FlightService manages the daily flight catalog.
type FlightService struct {
	repo *repositories.FlightRepository
}

func NewFlightService(repo *repositories.FlightRepository) *FlightService {
	return &FlightService{repo: repo}
}

func (s *FlightService) AddFlight(ctx context.Context, req *dtos.AddFlightRequest) (*entities.Flight, error) {
	flight := &entities.Flight{
		Number:       req.Number,
		Departure:    req.Departure,
		Arrival:      req.Arrival,
		AircraftType: req.AircraftType,
		DepTime:      req.DepTime,
		ArrTime:      req.ArrTime,
		Duration:     req.Duration,
	}
	flight.Normalize()
	if err := flight.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

func (s *FlightService) DeleteFlight(ctx context.Context, number int) error {
	return s.repo.Delete(ctx, number)
}

func (s *FlightService) ListFlights(ctx context.Context) ([]entities.Flight, error) {
	return s.repo.ListAll(ctx)
}

func (s *FlightService) GetFlight(ctx context.Context, number int) (*entities.Flight, error) {
	return s.repo.FindByNumber(ctx, number)
}
