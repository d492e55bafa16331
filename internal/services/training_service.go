package services

import (
	"context"
	"fmt"
	"time"

	"skyops/crewdeck/internal/db/repositories"
	"skyops/crewdeck/internal/models/dtos"
	"skyops/crewdeck/internal/models/entities"
)

// TrainingService schedules trainer/trainee sessions.
type TrainingService struct {
	repo *repositories.TrainingRepository
	crew *repositories.CrewRepository
}

func NewTrainingService(repo *repositories.TrainingRepository, crew *repositories.CrewRepository) *TrainingService {
	return &TrainingService{repo: repo, crew: crew}
}

// ScheduleTraining validates the session and both participants before
// inserting. Trainer and trainee must be crew on the books.
func (s *TrainingService) ScheduleTraining(ctx context.Context, req *dtos.AddTrainingRequest) (*entities.Training, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("training date must be a YYYY-MM-DD date")
	}

	training := &entities.Training{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		TrainerSAP:  req.TrainerSAP,
		TraineeSAP:  req.TraineeSAP,
		Date:        date,
		Location:    req.Location,
		Duration:    req.Duration,
	}
	if err := training.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.crew.FindBySAP(ctx, training.TrainerSAP); err != nil {
		return nil, fmt.Errorf("trainer %d: %w", training.TrainerSAP, err)
	}
	if _, err := s.crew.FindBySAP(ctx, training.TraineeSAP); err != nil {
		return nil, fmt.Errorf("trainee %d: %w", training.TraineeSAP, err)
	}

	if err := s.repo.Insert(ctx, training); err != nil {
		return nil, err
	}
	return training, nil
}

func (s *TrainingService) CancelTraining(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *TrainingService) ListTrainings(ctx context.Context) ([]entities.TrainingView, error) {
	return s.repo.ListViews(ctx)
}
