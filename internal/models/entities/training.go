package entities

import (
	"fmt"
	"time"
)

// Training is a scheduled training session pairing a trainer with a trainee.
type Training struct {
	ID          int       `db:"training_id"`
	Name        string    `db:"training_name"`
	Description string    `db:"training_desc"`
	TrainerSAP  int64     `db:"trainer"`
	TraineeSAP  int64     `db:"trainee"`
	Date        time.Time `db:"date"`
	Location    string    `db:"location"`
	Duration    string    `db:"duration"` // HH:MM
}

func (t *Training) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("training ID must be positive")
	}
	if t.Name == "" {
		return fmt.Errorf("training name cannot be empty")
	}
	if digits(t.TrainerSAP) != 8 {
		return fmt.Errorf("trainer SAP (staff ID) must be exactly 8 digits long")
	}
	if digits(t.TraineeSAP) != 8 {
		return fmt.Errorf("trainee SAP (staff ID) must be exactly 8 digits long")
	}
	if t.TrainerSAP == t.TraineeSAP {
		return fmt.Errorf("trainer and trainee must be different crew members")
	}
	if t.Location == "" {
		return fmt.Errorf("location cannot be empty")
	}
	if _, err := parseClock(t.Duration); err != nil {
		return err
	}
	return nil
}

// TrainingView is the join-enriched row listing trainer and trainee by name.
type TrainingView struct {
	ID          int    `json:"training_id"`
	Name        string `json:"training_name"`
	Description string `json:"training_desc"`
	Trainer     string `json:"trainer"`
	Trainee     string `json:"trainee"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Duration    string `json:"duration"`
}
