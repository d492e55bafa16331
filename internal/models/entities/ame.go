package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// AMEngineer is an aircraft maintenance engineer, certified for one fleet.
type AMEngineer struct {
	SAP       int64  `db:"staffid"`
	Name      string `db:"name"`
	FleetCert string `db:"fleet_certified"`
	Login     string `db:"login"`
	Password  string `db:"pw"`
}

func (e *AMEngineer) Normalize() {
	e.FleetCert = strings.ToUpper(e.FleetCert)
	if e.Login == "" {
		e.Login = strconv.FormatInt(e.SAP, 10)
	}
}

func (e *AMEngineer) Validate() error {
	if digits(e.SAP) != 8 {
		return fmt.Errorf("SAP (staff ID) must be exactly 8 digits long")
	}
	if !isAlphaSpace(e.Name) {
		return fmt.Errorf("name must contain only letters and spaces")
	}
	if len(e.Name) > 255 {
		return fmt.Errorf("name must not exceed 255 characters")
	}
	if !isAlnum(e.FleetCert) || len(e.FleetCert) != 4 {
		return fmt.Errorf("fleet certification must be a 4-character alphanumeric code")
	}
	if !isAlnum(e.Login) || len(e.Login) > 20 {
		return fmt.Errorf("login must be alphanumeric and at most 20 characters")
	}
	if e.Password == "" || len(e.Password) > 20 {
		return fmt.Errorf("password must be non-empty and at most 20 characters")
	}
	return nil
}
