package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"skyops/crewdeck/internal/models/entities"
	gormModels "skyops/crewdeck/internal/models/gorm"
)

// TrainingRepository stores training sessions and serves the joined view
// listing trainer and trainee by name.
type TrainingRepository struct {
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

func (r *TrainingRepository) Insert(ctx context.Context, training *entities.Training) error {
	row := gormModels.Training{
		ID:          training.ID,
		Name:        training.Name,
		Description: training.Description,
		TrainerSAP:  training.TrainerSAP,
		TraineeSAP:  training.TraineeSAP,
		Date:        training.Date,
		Location:    training.Location,
		Duration:    training.Duration,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert training %d: %w", training.ID, err)
	}
	return nil
}

func (r *TrainingRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&gormModels.Training{}, "training_id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete training %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type trainingViewRow struct {
	ID           int    `gorm:"column:training_id"`
	Name         string `gorm:"column:training_name"`
	Description  string `gorm:"column:training_desc"`
	TrainerFname string `gorm:"column:trainer_fname"`
	TrainerLname string `gorm:"column:trainer_lname"`
	TraineeFname string `gorm:"column:trainee_fname"`
	TraineeLname string `gorm:"column:trainee_lname"`
	Date         string `gorm:"column:date"`
	Location     string `gorm:"column:location"`
	Duration     string `gorm:"column:duration"`
}

// ListViews joins trainer and trainee rows so the listing can show names
// rather than staff numbers.
func (r *TrainingRepository) ListViews(ctx context.Context) ([]entities.TrainingView, error) {
	var rows []trainingViewRow
	err := r.db.WithContext(ctx).
		Table("training AS t").
		Select(`t.training_id, t.training_name, t.training_desc,
			fc1.fname AS trainer_fname, fc1.lname AS trainer_lname,
			fc2.fname AS trainee_fname, fc2.lname AS trainee_lname,
			t.date, t.location, t.duration`).
		Joins("JOIN flight_crew fc1 ON t.trainer = fc1.staffid").
		Joins("JOIN flight_crew fc2 ON t.trainee = fc2.staffid").
		Order("t.training_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list training views: %w", err)
	}

	out := make([]entities.TrainingView, 0, len(rows))
	for _, row := range rows {
		out = append(out, entities.TrainingView{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			Trainer:     fmt.Sprintf("Capt %s %s", row.TrainerFname, row.TrainerLname),
			Trainee:     fmt.Sprintf("Capt %s %s", row.TraineeFname, row.TraineeLname),
			Date:        row.Date,
			Location:    row.Location,
			Duration:    row.Duration,
		})
	}
	return out, nil
}
