package constants

import (
	"database/sql/driver"
	"fmt"
)

// CrewRole mirrors the two cockpit seats a pairing fills.
type CrewRole string

const (
	RoleP1 CrewRole = "P1" // pilot in command
	RoleP2 CrewRole = "P2" // co-pilot
)

func (r CrewRole) String() string { return string(r) }

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *CrewRole) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = CrewRole(v)
	case []byte:
		*r = CrewRole(v)
	default:
		return fmt.Errorf("CrewRole: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r CrewRole) Value() (driver.Value, error) { return string(r), nil }
