package roster

import (
	"fmt"
	"time"

	"skyops/crewdeck/internal/constants"
)

// InvalidMonthError reports a month outside 1..12.
type InvalidMonthError struct {
	Month int
}

func (e *InvalidMonthError) Error() string {
	return fmt.Sprintf("invalid month %d: must be between 1 and 12", e.Month)
}

// EmptyPoolError reports that a role's working queue was still empty after a
// refill attempt: no crew of that role is available at all. Fatal for the
// whole build, retrying cannot change provider state within one call.
type EmptyPoolError struct {
	Role constants.CrewRole
}

func (e *EmptyPoolError) Error() string {
	return fmt.Sprintf("no available %s crew to roster", e.Role)
}

// NoAircraftAvailableError reports an empty fleet list for a flight's
// required type on some (day, flight) cell.
type NoAircraftAvailableError struct {
	AircraftType string
	FlightNo     int
	Date         time.Time
}

func (e *NoAircraftAvailableError) Error() string {
	return fmt.Sprintf("no available %s aircraft for flight %d on %s",
		e.AircraftType, e.FlightNo, e.Date.Format("2006-01-02"))
}
