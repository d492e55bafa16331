package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// Flight is a scheduled sector. The same flight recurs every day of the
// month, so it carries no calendar date of its own.
type Flight struct {
	Number       int    `db:"flight_no"`
	Departure    string `db:"departure"`
	Arrival      string `db:"arrival"`
	AircraftType string `db:"aircraft_type"`
	DepTime      string `db:"dep_time"` // HH:MM
	ArrTime      string `db:"arr_time"` // HH:MM
	Duration     string `db:"duration"` // HH:MM
}

func (f *Flight) Normalize() {
	f.Departure = strings.ToUpper(f.Departure)
	f.Arrival = strings.ToUpper(f.Arrival)
	f.AircraftType = strings.ToUpper(f.AircraftType)
}

func (f *Flight) Validate() error {
	if n := len(strconv.Itoa(f.Number)); n != 3 && n != 4 {
		return fmt.Errorf("flight number must be 3 or 4 digits")
	}
	if !isAlpha(f.Departure) || len(f.Departure) != 3 {
		return fmt.Errorf("departure must be a 3-letter IATA code")
	}
	if !isAlpha(f.Arrival) || len(f.Arrival) != 3 {
		return fmt.Errorf("arrival must be a 3-letter IATA code")
	}
	if !isAlnum(f.AircraftType) || len(f.AircraftType) != 4 {
		return fmt.Errorf("aircraft type must be a 4-character alphanumeric code")
	}
	for _, clock := range []string{f.DepTime, f.ArrTime, f.Duration} {
		if _, err := parseClock(clock); err != nil {
			return err
		}
	}
	return nil
}

// DurationHours converts the HH:MM block time into fractional hours for
// duty accounting.
func (f *Flight) DurationHours() float64 {
	h, err := parseClock(f.Duration)
	if err != nil {
		return 0
	}
	return h
}

func parseClock(s string) (float64, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("time %q must be in HH:MM format", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("time %q must be in HH:MM format", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time %q must be in HH:MM format", s)
	}
	return float64(hours) + float64(minutes)/60, nil
}
