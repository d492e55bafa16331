package services

import (
	"context"

	"skyops/crewdeck/internal/db/repositories"
	"skyops/crewdeck/internal/models/dtos"
	"skyops/crewdeck/internal/models/entities"
)

// AMEService manages aircraft maintenance engineer records.
type AMEService struct {
	repo *repositories.AMERepository
}

func NewAMEService(repo *repositories.AMERepository) *AMEService {
	return &AMEService{repo: repo}
}

func (s *AMEService) AddEngineer(ctx context.Context, req *dtos.AddAMERequest) (*entities.AMEngineer, error) {
	engineer := &entities.AMEngineer{
		SAP:       req.SAP,
		Name:      req.Name,
		FleetCert: req.FleetCert,
		Login:     req.Login,
		Password:  req.Password,
	}
	engineer.Normalize()
	if err := engineer.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, engineer); err != nil {
		return nil, err
	}
	return engineer, nil
}

// UpdateEngineer replaces the record keyed by the staff number in the URL.
func (s *AMEService) UpdateEngineer(ctx context.Context, sap int64, req *dtos.AddAMERequest) (*entities.AMEngineer, error) {
	engineer := &entities.AMEngineer{
		SAP:       sap,
		Name:      req.Name,
		FleetCert: req.FleetCert,
		Login:     req.Login,
		Password:  req.Password,
	}
	engineer.Normalize()
	if err := engineer.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, engineer); err != nil {
		return nil, err
	}
	return engineer, nil
}

func (s *AMEService) DeleteEngineer(ctx context.Context, sap int64) error {
	return s.repo.Delete(ctx, sap)
}

func (s *AMEService) ListEngineers(ctx context.Context) ([]entities.AMEngineer, error) {
	return s.repo.ListAll(ctx)
}

func (s *AMEService) GetEngineer(ctx context.Context, sap int64) (*entities.AMEngineer, error) {
	return s.repo.FindBySAP(ctx, sap)
}
