package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"skyops/crewdeck/internal/models/entities"
	gormModels "skyops/crewdeck/internal/models/gorm"
)

// FleetRepository is the GORM-backed store for the aircraft fleet and the
// builder's aircraft availability provider.
type FleetRepository struct {
	db *gorm.DB
}

func NewFleetRepository(db *gorm.DB) *FleetRepository {
	return &FleetRepository{db: db}
}

func (r *FleetRepository) Insert(ctx context.Context, aircraft *entities.Aircraft) error {
	row := aircraftToRow(aircraft)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert aircraft %d: %w", aircraft.MSN, err)
	}
	return nil
}

// Update overwrites the whole record keyed by MSN, zero-valued fields
// included.
func (r *FleetRepository) Update(ctx context.Context, aircraft *entities.Aircraft) error {
	row := aircraftToRow(aircraft)
	res := r.db.WithContext(ctx).
		Model(&gormModels.Aircraft{}).
		Where("msn = ?", aircraft.MSN).
		Select("*").
		Updates(&row)
	if res.Error != nil {
		return fmt.Errorf("update aircraft %d: %w", aircraft.MSN, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FleetRepository) Delete(ctx context.Context, msn int64) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.Aircraft{}, "msn = ?", msn)
	if res.Error != nil {
		return fmt.Errorf("delete aircraft %d: %w", msn, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *FleetRepository) ListAll(ctx context.Context) ([]entities.Aircraft, error) {
	var rows []gormModels.Aircraft
	if err := r.db.WithContext(ctx).Order("msn").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list fleet: %w", err)
	}
	return aircraftFromRows(rows), nil
}

func (r *FleetRepository) FindByMSN(ctx context.Context, msn int64) (*entities.Aircraft, error) {
	var row gormModels.Aircraft
	err := r.db.WithContext(ctx).Where("msn = ?", msn).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find aircraft %d: %w", msn, err)
	}
	aircraft := aircraftFromRow(row)
	return &aircraft, nil
}

func (r *FleetRepository) UpdateAvailability(ctx context.Context, msn int64, available bool) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.Aircraft{}).
		Where("msn = ?", msn).
		Update("availability", available)
	if res.Error != nil {
		return fmt.Errorf("update availability for %d: %w", msn, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAvailable returns available airframes of one type in MSN order.
func (r *FleetRepository) ListAvailable(ctx context.Context, acType string) ([]entities.Aircraft, error) {
	var rows []gormModels.Aircraft
	err := r.db.WithContext(ctx).
		Where("availability = ? AND type = ?", true, acType).
		Order("msn").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list available %s fleet: %w", acType, err)
	}
	return aircraftFromRows(rows), nil
}

func aircraftToRow(a *entities.Aircraft) gormModels.Aircraft {
	return gormModels.Aircraft{
		MSN:          a.MSN,
		Type:         a.Type,
		Registration: a.Registration,
		Availability: a.Availability,
		Engine:       a.Engine,
		EngineHours:  a.EngineHours,
	}
}

func aircraftFromRow(row gormModels.Aircraft) entities.Aircraft {
	return entities.Aircraft{
		MSN:          row.MSN,
		Type:         row.Type,
		Registration: row.Registration,
		Availability: row.Availability,
		Engine:       row.Engine,
		EngineHours:  row.EngineHours,
	}
}

func aircraftFromRows(rows []gormModels.Aircraft) []entities.Aircraft {
	out := make([]entities.Aircraft, 0, len(rows))
	for _, row := range rows {
		out = append(out, aircraftFromRow(row))
	}
	return out
}
