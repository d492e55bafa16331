package entities

import (
	"fmt"
	"strings"
)

// Aircraft is a single airframe in the fleet, keyed by its Manufacturer
// Serial Number.
type Aircraft struct {
	MSN          int64  `db:"msn"`
	Type         string `db:"type"`
	Registration string `db:"regn"`
	Availability bool   `db:"availability"`
	Engine       string `db:"engine"`
	EngineHours  int    `db:"engine_hours"`
}

func (a *Aircraft) Normalize() {
	a.Type = strings.ToUpper(a.Type)
	a.Registration = strings.ToUpper(a.Registration)
}

func (a *Aircraft) Validate() error {
	if a.MSN <= 0 {
		return fmt.Errorf("MSN cannot be empty")
	}
	if !isAlnum(a.Type) || len(a.Type) != 4 {
		return fmt.Errorf("aircraft type must be a 4-character alphanumeric code")
	}
	if a.Registration == "" {
		return fmt.Errorf("registration cannot be empty")
	}
	if a.EngineHours < 0 {
		return fmt.Errorf("engine hours cannot be negative")
	}
	return nil
}
