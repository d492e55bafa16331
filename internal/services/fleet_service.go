package services

import (
	"context"

	"skyops/crewdeck/internal/db/repositories"
	"skyops/crewdeck/internal/models/dtos"
	"skyops/crewdeck/internal/models/entities"
)

// FleetService manages the aircraft inventory.
type FleetService struct {
	repo *repositories.FleetRepository
}

func NewFleetService(repo *repositories.FleetRepository) *FleetService {
	return &FleetService{repo: repo}
}

func (s *FleetService) AddAircraft(ctx context.Context, req *dtos.AddAircraftRequest) (*entities.Aircraft, error) {
	aircraft := &entities.Aircraft{
		MSN:          req.MSN,
		Type:         req.Type,
		Registration: req.Registration,
		Availability: req.Availability,
		Engine:       req.Engine,
		EngineHours:  req.EngineHours,
	}
	aircraft.Normalize()
	if err := aircraft.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, aircraft); err != nil {
		return nil, err
	}
	return aircraft, nil
}

// UpdateAircraft replaces the record keyed by the MSN in the URL.
func (s *FleetService) UpdateAircraft(ctx context.Context, msn int64, req *dtos.AddAircraftRequest) (*entities.Aircraft, error) {
	aircraft := &entities.Aircraft{
		MSN:          msn,
		Type:         req.Type,
		Registration: req.Registration,
		Availability: req.Availability,
		Engine:       req.Engine,
		EngineHours:  req.EngineHours,
	}
	aircraft.Normalize()
	if err := aircraft.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, aircraft); err != nil {
		return nil, err
	}
	return aircraft, nil
}

func (s *FleetService) DeleteAircraft(ctx context.Context, msn int64) error {
	return s.repo.Delete(ctx, msn)
}

func (s *FleetService) ListFleet(ctx context.Context) ([]entities.Aircraft, error) {
	return s.repo.ListAll(ctx)
}

func (s *FleetService) GetAircraft(ctx context.Context, msn int64) (*entities.Aircraft, error) {
	return s.repo.FindByMSN(ctx, msn)
}

// SetAvailability grounds or restores an airframe. Grounded aircraft are
// skipped when rosters pick tails.
func (s *FleetService) SetAvailability(ctx context.Context, msn int64, available bool) error {
	return s.repo.UpdateAvailability(ctx, msn, available)
}
