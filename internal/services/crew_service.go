package services

import (
	"context"
	"fmt"
	"time"

	"skyops/crewdeck/internal/db/repositories"
	"skyops/crewdeck/internal/models/dtos"
	"skyops/crewdeck/internal/models/entities"
)

// CrewService fronts the flight crew roster: admissions, removals and
// availability flips.
type CrewService struct {
	repo *repositories.CrewRepository
}

func NewCrewService(repo *repositories.CrewRepository) *CrewService {
	return &CrewService{repo: repo}
}

// AddCrewMember validates the admission form and inserts the record.
func (s *CrewService) AddCrewMember(ctx context.Context, req *dtos.AddCrewRequest) (*entities.CrewMember, error) {
	validity, err := time.Parse("2006-01-02", req.MedicalValidity)
	if err != nil {
		return nil, fmt.Errorf("medical validity must be a YYYY-MM-DD date")
	}

	member := &entities.CrewMember{
		SAP:             req.SAP,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Designation:     req.Designation,
		Mobile:          req.Mobile,
		ATPLHolder:      req.ATPLHolder,
		LicenceNo:       req.LicenceNo,
		MedicalValidity: validity,
		BaseOps:         req.BaseOps,
		Availability:    true,
		Login:           req.Login,
		Password:        req.Password,
	}
	member.Normalize()
	if err := member.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// UpdateCrewMember replaces the record keyed by the staff number in the
// URL. Availability is not part of the form and carries over unchanged;
// it is driven separately through SetAvailability.
func (s *CrewService) UpdateCrewMember(ctx context.Context, sap int64, req *dtos.AddCrewRequest) (*entities.CrewMember, error) {
	existing, err := s.repo.FindBySAP(ctx, sap)
	if err != nil {
		return nil, err
	}

	validity, err := time.Parse("2006-01-02", req.MedicalValidity)
	if err != nil {
		return nil, fmt.Errorf("medical validity must be a YYYY-MM-DD date")
	}

	member := &entities.CrewMember{
		SAP:             sap,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Designation:     req.Designation,
		Mobile:          req.Mobile,
		ATPLHolder:      req.ATPLHolder,
		LicenceNo:       req.LicenceNo,
		MedicalValidity: validity,
		BaseOps:         req.BaseOps,
		Availability:    existing.Availability,
		Login:           req.Login,
		Password:        req.Password,
	}
	member.Normalize()
	if err := member.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *CrewService) DeleteCrewMember(ctx context.Context, sap int64) error {
	return s.repo.Delete(ctx, sap)
}

func (s *CrewService) ListCrew(ctx context.Context) ([]entities.CrewMember, error) {
	return s.repo.ListAll(ctx)
}

func (s *CrewService) GetCrewMember(ctx context.Context, sap int64) (*entities.CrewMember, error) {
	return s.repo.FindBySAP(ctx, sap)
}

// SetAvailability marks a crew member on or off the line. Unavailable crew
// drop out of roster generation on the next build.
func (s *CrewService) SetAvailability(ctx context.Context, sap int64, available bool) error {
	return s.repo.UpdateAvailability(ctx, sap, available)
}
