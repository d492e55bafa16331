package roster

import (
	"context"
	"fmt"
	"time"

	"skyops/crewdeck/internal/constants"
	"skyops/crewdeck/internal/models/entities"
)

// CrewProvider yields crew members of one role, filtered to available.
type CrewProvider interface {
	ListAvailable(ctx context.Context, role constants.CrewRole) ([]entities.CrewMember, error)
}

// AircraftProvider yields available airframes of one type.
type AircraftProvider interface {
	ListAvailable(ctx context.Context, acType string) ([]entities.Aircraft, error)
}

// FlightCatalog yields the fixed set of scheduled flights.
type FlightCatalog interface {
	ListAll(ctx context.Context) ([]entities.Flight, error)
}

// daysInMonth is the non-leap-year day count per month. February is fixed
// at 28: the roster cycle has no notion of leap years.
var daysInMonth = map[int]int{
	1: 31, 2: 28, 3: 31, 4: 30, 5: 31, 6: 30,
	7: 31, 8: 31, 9: 30, 10: 31, 11: 30, 12: 31,
}

const (
	defaultYear    = 2024
	defaultCeiling = 8 // duty hours before a crew member is passed over
)

// Options tune a Builder. Zero values select the defaults.
type Options struct {
	Year             int
	DutyCeilingHours float64
	Accountant       DutyAccountant
}

// Builder produces the month's ordered pairing list from the three
// availability feeds. All mutable state lives in build-local working
// queues and ledgers, so independent builds never share anything.
type Builder struct {
	crew    CrewProvider
	fleet   AircraftProvider
	catalog FlightCatalog

	year       int
	ceiling    float64
	accountant DutyAccountant
}

func NewBuilder(crew CrewProvider, fleet AircraftProvider, catalog FlightCatalog, opts Options) *Builder {
	b := &Builder{
		crew:       crew,
		fleet:      fleet,
		catalog:    catalog,
		year:       opts.Year,
		ceiling:    opts.DutyCeilingHours,
		accountant: opts.Accountant,
	}
	if b.year == 0 {
		b.year = defaultYear
	}
	if b.ceiling == 0 {
		b.ceiling = defaultCeiling
	}
	if b.accountant == nil {
		b.accountant = NoopAccountant{}
	}
	return b
}

// BuildMonthlyRoster walks every (day, flight) cell of the month, day outer
// and flight inner in catalog order, and assigns one aircraft, one P1 and
// one P2 to each. Crew working queues drain front-first and are refilled
// from the provider once exhausted, so a pool of size N cycles with period
// N. The day loop deliberately stops one short of the month's last day,
// matching the roster cycle this replaces.
func (b *Builder) BuildMonthlyRoster(ctx context.Context, month int) ([]entities.Pairing, error) {
	if month < 1 || month > 12 {
		return nil, &InvalidMonthError{Month: month}
	}

	p1Queue, err := b.refill(ctx, constants.RoleP1)
	if err != nil {
		return nil, err
	}
	p2Queue, err := b.refill(ctx, constants.RoleP2)
	if err != nil {
		return nil, err
	}

	flights, err := b.catalog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}

	// Ledgers start at zero for every crew member, every build.
	dutyP1 := make(DutyLedger, len(p1Queue))
	dutyP2 := make(DutyLedger, len(p2Queue))
	for _, p1 := range p1Queue {
		dutyP1[p1.SAP] = 0
	}
	for _, p2 := range p2Queue {
		dutyP2[p2.SAP] = 0
	}

	var pairs []entities.Pairing

	for day := 1; day < daysInMonth[month]; day++ {
		for _, flight := range flights {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			// Exhausted queues mean every available crew member has
			// flown once this cycle; the whole pool becomes eligible
			// again.
			if len(p1Queue) == 0 {
				if p1Queue, err = b.refill(ctx, constants.RoleP1); err != nil {
					return nil, err
				}
			}
			if len(p2Queue) == 0 {
				if p2Queue, err = b.refill(ctx, constants.RoleP2); err != nil {
					return nil, err
				}
			}

			date := time.Date(b.year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

			// The fleet list is fetched fresh per cell, never cached
			// against exhaustion the way crew queues are.
			availFleet, err := b.fleet.ListAvailable(ctx, flight.AircraftType)
			if err != nil {
				return nil, fmt.Errorf("list %s fleet: %w", flight.AircraftType, err)
			}
			if len(availFleet) == 0 {
				return nil, &NoAircraftAvailableError{
					AircraftType: flight.AircraftType,
					FlightNo:     flight.Number,
					Date:         date,
				}
			}
			aircraft := availFleet[0]

			p1, ok := nextFit(&p1Queue, dutyP1, b.ceiling)
			if !ok {
				return nil, &EmptyPoolError{Role: constants.RoleP1}
			}
			p2, ok := nextFit(&p2Queue, dutyP2, b.ceiling)
			if !ok {
				return nil, &EmptyPoolError{Role: constants.RoleP2}
			}

			b.accountant.Record(dutyP1, p1.SAP, flight)
			b.accountant.Record(dutyP2, p2.SAP, flight)

			pairs = append(pairs, entities.Pairing{
				Date:        date,
				FlightNo:    flight.Number,
				AircraftMSN: aircraft.MSN,
				P1SAP:       p1.SAP,
				P2SAP:       p2.SAP,
			})
		}
	}

	return pairs, nil
}

// Year reports which calendar year pairings are dated in.
func (b *Builder) Year() int { return b.year }

// refill re-queries the crew provider for a fresh working queue. An empty
// result after a refill means nobody of that role is available at all.
func (b *Builder) refill(ctx context.Context, role constants.CrewRole) ([]entities.CrewMember, error) {
	queue, err := b.crew.ListAvailable(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list available %s crew: %w", role, err)
	}
	if len(queue) == 0 {
		return nil, &EmptyPoolError{Role: role}
	}
	return queue, nil
}

// nextFit discards queue-front entries whose accumulated duty time has
// reached the ceiling, then consumes and returns the first fit entry.
// Strict FIFO beyond the ceiling filter. Returns false when the scan
// empties the queue.
func nextFit(queue *[]entities.CrewMember, ledger DutyLedger, ceiling float64) (entities.CrewMember, bool) {
	q := *queue
	for len(q) > 0 && ledger.Hours(q[0].SAP) >= ceiling {
		q = q[1:]
	}
	if len(q) == 0 {
		*queue = q
		return entities.CrewMember{}, false
	}
	picked := q[0]
	*queue = q[1:]
	return picked, true
}

// DaysInMonth exposes the roster's day table, mainly for callers sizing
// the expected output.
func DaysInMonth(month int) (int, error) {
	days, ok := daysInMonth[month]
	if !ok {
		return 0, &InvalidMonthError{Month: month}
	}
	return days, nil
}
