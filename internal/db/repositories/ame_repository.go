package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"skyops/crewdeck/internal/models/entities"
	gormModels "skyops/crewdeck/internal/models/gorm"
)

// AMERepository stores aircraft maintenance engineer records.
type AMERepository struct {
	db *gorm.DB
}

func NewAMERepository(db *gorm.DB) *AMERepository {
	return &AMERepository{db: db}
}

func (r *AMERepository) Insert(ctx context.Context, engineer *entities.AMEngineer) error {
	row := gormModels.AMECrew{
		SAP:       engineer.SAP,
		Name:      engineer.Name,
		FleetCert: engineer.FleetCert,
		Login:     engineer.Login,
		Password:  engineer.Password,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert AME %d: %w", engineer.SAP, err)
	}
	return nil
}

// Update overwrites the whole record keyed by staff number.
func (r *AMERepository) Update(ctx context.Context, engineer *entities.AMEngineer) error {
	row := gormModels.AMECrew{
		SAP:       engineer.SAP,
		Name:      engineer.Name,
		FleetCert: engineer.FleetCert,
		Login:     engineer.Login,
		Password:  engineer.Password,
	}
	res := r.db.WithContext(ctx).
		Model(&gormModels.AMECrew{}).
		Where("staffid = ?", engineer.SAP).
		Select("*").
		Updates(&row)
	if res.Error != nil {
		return fmt.Errorf("update AME %d: %w", engineer.SAP, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AMERepository) Delete(ctx context.Context, sap int64) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.AMECrew{}, "staffid = ?", sap)
	if res.Error != nil {
		return fmt.Errorf("delete AME %d: %w", sap, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AMERepository) FindBySAP(ctx context.Context, sap int64) (*entities.AMEngineer, error) {
	var row gormModels.AMECrew
	err := r.db.WithContext(ctx).Where("staffid = ?", sap).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find AME %d: %w", sap, err)
	}
	return &entities.AMEngineer{
		SAP:       row.SAP,
		Name:      row.Name,
		FleetCert: row.FleetCert,
		Login:     row.Login,
		Password:  row.Password,
	}, nil
}

func (r *AMERepository) ListAll(ctx context.Context) ([]entities.AMEngineer, error) {
	var rows []gormModels.AMECrew
	if err := r.db.WithContext(ctx).Order("staffid").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list AME crew: %w", err)
	}
	out := make([]entities.AMEngineer, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.AMEngineer{
			SAP:       row.SAP,
			Name:      row.Name,
			FleetCert: row.FleetCert,
			Login:     row.Login,
			Password:  row.Password,
		})
	}
	return out, nil
}
