package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"skyops/crewdeck/internal/constants"
	"skyops/crewdeck/internal/models/entities"
	gormModels "skyops/crewdeck/internal/models/gorm"
)

var ErrNotFound = errors.New("record not found")

// CrewRepository is the GORM-backed store for flight crew. It doubles as
// the builder's crew availability provider: ListAvailable filters by the
// injected role-to-designation mapping rather than a package-level table.
type CrewRepository struct {
	db               *gorm.DB
	roleDesignations map[constants.CrewRole][]string
}

func NewCrewRepository(db *gorm.DB, roleDesignations map[constants.CrewRole][]string) *CrewRepository {
	return &CrewRepository{db: db, roleDesignations: roleDesignations}
}

func (r *CrewRepository) Insert(ctx context.Context, member *entities.CrewMember) error {
	row := crewToRow(member)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert crew %d: %w", member.SAP, err)
	}
	return nil
}

// Update overwrites the whole record keyed by staff number, zero-valued
// fields included.
func (r *CrewRepository) Update(ctx context.Context, member *entities.CrewMember) error {
	row := crewToRow(member)
	res := r.db.WithContext(ctx).
		Model(&gormModels.FlightCrew{}).
		Where("staffid = ?", member.SAP).
		Select("*").
		Updates(&row)
	if res.Error != nil {
		return fmt.Errorf("update crew %d: %w", member.SAP, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CrewRepository) Delete(ctx context.Context, sap int64) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.FlightCrew{}, "staffid = ?", sap)
	if res.Error != nil {
		return fmt.Errorf("delete crew %d: %w", sap, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CrewRepository) ListAll(ctx context.Context) ([]entities.CrewMember, error) {
	var rows []gormModels.FlightCrew
	if err := r.db.WithContext(ctx).Order("staffid").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list crew: %w", err)
	}
	return crewFromRows(rows), nil
}

func (r *CrewRepository) FindBySAP(ctx context.Context, sap int64) (*entities.CrewMember, error) {
	var row gormModels.FlightCrew
	err := r.db.WithContext(ctx).Where("staffid = ?", sap).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find crew %d: %w", sap, err)
	}
	member := crewFromRow(row)
	return &member, nil
}

func (r *CrewRepository) FindByLogin(ctx context.Context, login string) (*entities.CrewMember, error) {
	var row gormModels.FlightCrew
	err := r.db.WithContext(ctx).Where("login = ?", login).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find crew by login: %w", err)
	}
	member := crewFromRow(row)
	return &member, nil
}

// UpdateAvailability flips the leave flag for one crew member.
func (r *CrewRepository) UpdateAvailability(ctx context.Context, sap int64, available bool) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.FlightCrew{}).
		Where("staffid = ?", sap).
		Update("availability", available)
	if res.Error != nil {
		return fmt.Errorf("update availability for %d: %w", sap, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAvailable returns crew of one role, availability-filtered, in
// provider-stable (staff number) order.
func (r *CrewRepository) ListAvailable(ctx context.Context, role constants.CrewRole) ([]entities.CrewMember, error) {
	designations, ok := r.roleDesignations[role]
	if !ok {
		return nil, fmt.Errorf("no designations configured for role %s", role)
	}

	var rows []gormModels.FlightCrew
	err := r.db.WithContext(ctx).
		Where("availability = ? AND designation IN ?", true, designations).
		Order("staffid").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list available %s crew: %w", role, err)
	}
	return crewFromRows(rows), nil
}

func crewToRow(m *entities.CrewMember) gormModels.FlightCrew {
	return gormModels.FlightCrew{
		SAP:             m.SAP,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Designation:     m.Designation,
		Mobile:          m.Mobile,
		ATPLHolder:      m.ATPLHolder,
		LicenceNo:       m.LicenceNo,
		MedicalValidity: m.MedicalValidity,
		BaseOps:         m.BaseOps,
		Availability:    m.Availability,
		Login:           m.Login,
		Password:        m.Password,
	}
}

func crewFromRow(row gormModels.FlightCrew) entities.CrewMember {
	return entities.CrewMember{
		SAP:             row.SAP,
		FirstName:       row.FirstName,
		LastName:        row.LastName,
		Designation:     row.Designation,
		Mobile:          row.Mobile,
		ATPLHolder:      row.ATPLHolder,
		LicenceNo:       row.LicenceNo,
		MedicalValidity: row.MedicalValidity,
		BaseOps:         row.BaseOps,
		Availability:    row.Availability,
		Login:           row.Login,
		Password:        row.Password,
	}
}

func crewFromRows(rows []gormModels.FlightCrew) []entities.CrewMember {
	out := make([]entities.CrewMember, 0, len(rows))
	for _, row := range rows {
		out = append(out, crewFromRow(row))
	}
	return out
}
