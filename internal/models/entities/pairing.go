package entities

import (
	"fmt"
	"strconv"
	"time"
)

// Pairing assigns one aircraft and a P1/P2 pair to one flight on one
// calendar day. A full monthly roster is an ordered slice of these.
type Pairing struct {
	Date        time.Time
	FlightNo    int
	AircraftMSN int64
	P1SAP       int64
	P2SAP       int64
}

func (p *Pairing) Validate() error {
	if p.Date.IsZero() {
		return fmt.Errorf("flight date cannot be empty")
	}
	if n := len(strconv.Itoa(p.FlightNo)); n != 3 && n != 4 {
		return fmt.Errorf("flight number must be 3 or 4 digits")
	}
	if p.AircraftMSN <= 0 {
		return fmt.Errorf("MSN cannot be empty")
	}
	if digits(p.P1SAP) != 8 {
		return fmt.Errorf("P1 SAP (staff ID) must be exactly 8 digits long")
	}
	if digits(p.P2SAP) != 8 {
		return fmt.Errorf("P2 SAP (staff ID) must be exactly 8 digits long")
	}
	return nil
}

// PairingView is the join-enriched row served to crew members looking up
// their own roster.
type PairingView struct {
	Date         string `json:"date"` // DD-MM-YYYY
	FlightNo     int    `json:"flight_no"`
	PIC          string `json:"pic"`
	CoPilot      string `json:"co_pilot"`
	Route        string `json:"route"`  // "DEL - BOM"
	Timing       string `json:"timing"` // "06:00 - 08:15"
	Registration string `json:"regn"`   // "VT-XXX"
}
