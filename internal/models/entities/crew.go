package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CrewMember is an operational flight crew record. SAP is the unique
// 8-digit staff number used everywhere else in the system.
type CrewMember struct {
	SAP             int64     `db:"staffid"`
	FirstName       string    `db:"fname"`
	LastName        string    `db:"lname"`
	Designation     string    `db:"designation"`
	Mobile          int64     `db:"contact"`
	ATPLHolder      bool      `db:"atpl"`
	LicenceNo       int64     `db:"license_no"`
	MedicalValidity time.Time `db:"medical_validity"`
	BaseOps         string    `db:"base_ops"`
	Availability    bool      `db:"availability"`
	Login           string    `db:"login"`
	Password        string    `db:"pw"`
}

// Normalize applies the canonical casing and defaults the login to the
// staff number when none was supplied.
func (c *CrewMember) Normalize() {
	c.FirstName = title(c.FirstName)
	c.LastName = title(c.LastName)
	c.Designation = strings.ToUpper(c.Designation)
	c.BaseOps = strings.ToUpper(c.BaseOps)
	if c.Login == "" {
		c.Login = strconv.FormatInt(c.SAP, 10)
	}
}

// Validate enforces the construction-time field rules.
func (c *CrewMember) Validate() error {
	if digits(c.SAP) != 8 {
		return fmt.Errorf("SAP (staff ID) must be exactly 8 digits long")
	}
	if !isAlpha(c.FirstName) {
		return fmt.Errorf("first name must be non-empty and alphabetic")
	}
	if len(c.FirstName) > 255 {
		return fmt.Errorf("first name must not exceed 255 characters")
	}
	if !isAlpha(c.LastName) {
		return fmt.Errorf("last name must be non-empty and alphabetic")
	}
	if len(c.LastName) > 255 {
		return fmt.Errorf("last name must not exceed 255 characters")
	}
	if !isAlphaSpace(c.Designation) {
		return fmt.Errorf("designation must contain only letters and spaces")
	}
	if len(c.Designation) > 255 {
		return fmt.Errorf("designation must not exceed 255 characters")
	}
	if digits(c.Mobile) != 10 {
		return fmt.Errorf("mobile number must be exactly 10 digits long")
	}
	if c.LicenceNo <= 0 {
		return fmt.Errorf("licence number is mandatory and must be positive")
	}
	if !isAlpha(c.BaseOps) || len(c.BaseOps) != 3 {
		return fmt.Errorf("base ops must be a 3-letter station code")
	}
	if !isAlnum(c.Login) || len(c.Login) > 20 {
		return fmt.Errorf("login must be alphanumeric and at most 20 characters")
	}
	if c.Password == "" || len(c.Password) > 20 {
		return fmt.Errorf("password must be non-empty and at most 20 characters")
	}
	return nil
}

// FullName renders the crew member the way roster views present them.
func (c *CrewMember) FullName() string {
	return fmt.Sprintf("Capt %s %s", c.FirstName, c.LastName)
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
