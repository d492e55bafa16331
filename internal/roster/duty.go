package roster

import "skyops/crewdeck/internal/models/entities"

// DutyLedger tracks accumulated duty hours per staff number for one build.
// It is reset (rebuilt empty) at the start of every roster run and never
// persisted.
type DutyLedger map[int64]float64

// Hours returns the accumulated duty time for a crew member; unknown crew
// start at zero.
func (l DutyLedger) Hours(sap int64) float64 {
	return l[sap]
}

// DutyAccountant is the seam between selecting a crew member and charging
// them duty time for the flight they were just assigned.
type DutyAccountant interface {
	Record(ledger DutyLedger, sap int64, flight entities.Flight)
}

// NoopAccountant never charges duty time. This reproduces the historical
// roster behaviour where the ledger was initialised but never incremented,
// so the duty-time ceiling check cannot fire within a single build.
type NoopAccountant struct{}

func (NoopAccountant) Record(DutyLedger, int64, entities.Flight) {}

// FlightTimeAccountant charges each assignment the flight's block time.
// Enabled via configuration; with this accountant active the ceiling check
// in the builder starts rotating tired crew out of the working queues.
type FlightTimeAccountant struct{}

func (FlightTimeAccountant) Record(ledger DutyLedger, sap int64, flight entities.Flight) {
	ledger[sap] += flight.DurationHours()
}
