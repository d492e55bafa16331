package roster

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"skyops/crewdeck/internal/constants"
	"skyops/crewdeck/internal/models/entities"
)

// Fake providers

type fakeCrewProvider struct {
	pools map[constants.CrewRole][]entities.CrewMember
	calls map[constants.CrewRole]int
	err   error
}

func (f *fakeCrewProvider) ListAvailable(_ context.Context, role constants.CrewRole) ([]entities.CrewMember, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.calls == nil {
		f.calls = make(map[constants.CrewRole]int)
	}
	f.calls[role]++
	pool := f.pools[role]
	out := make([]entities.CrewMember, len(pool))
	copy(out, pool)
	return out, nil
}

type fakeFleetProvider struct {
	byType map[string][]entities.Aircraft
}

func (f *fakeFleetProvider) ListAvailable(_ context.Context, acType string) ([]entities.Aircraft, error) {
	out := make([]entities.Aircraft, len(f.byType[acType]))
	copy(out, f.byType[acType])
	return out, nil
}

type fakeCatalog struct {
	flights []entities.Flight
}

func (f *fakeCatalog) ListAll(_ context.Context) ([]entities.Flight, error) {
	out := make([]entities.Flight, len(f.flights))
	copy(out, f.flights)
	return out, nil
}

func crew(sap int64) entities.CrewMember {
	return entities.CrewMember{SAP: sap, Availability: true}
}

func testFlight(number int, acType string) entities.Flight {
	return entities.Flight{
		Number:       number,
		Departure:    "DEL",
		Arrival:      "BOM",
		AircraftType: acType,
		DepTime:      "06:00",
		ArrTime:      "08:15",
		Duration:     "02:15",
	}
}

func newTestBuilder(p1, p2 []entities.CrewMember, fleet map[string][]entities.Aircraft, flights []entities.Flight, opts Options) *Builder {
	return NewBuilder(
		&fakeCrewProvider{pools: map[constants.CrewRole][]entities.CrewMember{
			constants.RoleP1: p1,
			constants.RoleP2: p2,
		}},
		&fakeFleetProvider{byType: fleet},
		&fakeCatalog{flights: flights},
		opts,
	)
}

func TestBuildMonthlyRoster_PairingCountPerMonth(t *testing.T) {
	flights := []entities.Flight{testFlight(101, "A320"), testFlight(202, "B737")}
	fleet := map[string][]entities.Aircraft{
		"A320": {{MSN: 9001, Type: "A320", Availability: true}},
		"B737": {{MSN: 9002, Type: "B737", Availability: true}},
	}
	b := newTestBuilder(
		[]entities.CrewMember{crew(80050301), crew(80050302)},
		[]entities.CrewMember{crew(80050401), crew(80050402)},
		fleet, flights, Options{},
	)

	for month := 1; month <= 12; month++ {
		pairs, err := b.BuildMonthlyRoster(context.Background(), month)
		if err != nil {
			t.Fatalf("month %d: unexpected error: %v", month, err)
		}
		days, _ := DaysInMonth(month)
		want := (days - 1) * len(flights)
		if len(pairs) != want {
			t.Errorf("month %d: expected %d pairings, got %d", month, want, len(pairs))
		}
		for _, p := range pairs {
			if int(p.Date.Month()) != month {
				t.Errorf("month %d: pairing dated %s", month, p.Date)
			}
			if p.Date.Day() < 1 || p.Date.Day() > days-1 {
				t.Errorf("month %d: day %d out of range [1,%d]", month, p.Date.Day(), days-1)
			}
		}
	}
}

func TestBuildMonthlyRoster_AircraftTypeMatchesFlight(t *testing.T) {
	flights := []entities.Flight{testFlight(101, "A320"), testFlight(202, "B737")}
	fleet := map[string][]entities.Aircraft{
		"A320": {{MSN: 9001, Type: "A320", Availability: true}},
		"B737": {{MSN: 9002, Type: "B737", Availability: true}},
	}
	b := newTestBuilder(
		[]entities.CrewMember{crew(80050301)},
		[]entities.CrewMember{crew(80050401)},
		fleet, flights, Options{},
	)

	pairs, err := b.BuildMonthlyRoster(context.Background(), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range pairs {
		switch p.FlightNo {
		case 101:
			if p.AircraftMSN != 9001 {
				t.Errorf("flight 101 assigned MSN %d, want 9001", p.AircraftMSN)
			}
		case 202:
			if p.AircraftMSN != 9002 {
				t.Errorf("flight 202 assigned MSN %d, want 9002", p.AircraftMSN)
			}
		default:
			t.Errorf("unexpected flight %d in roster", p.FlightNo)
		}
	}
}

func TestBuildMonthlyRoster_InvalidMonth(t *testing.T) {
	b := newTestBuilder(nil, nil, nil, nil, Options{})

	for _, month := range []int{0, -1, 13} {
		_, err := b.BuildMonthlyRoster(context.Background(), month)
		var invalidErr *InvalidMonthError
		if !errors.As(err, &invalidErr) {
			t.Errorf("month %d: expected InvalidMonthError, got %v", month, err)
			continue
		}
		if invalidErr.Month != month {
			t.Errorf("expected month %d in error, got %d", month, invalidErr.Month)
		}
	}
}

func TestBuildMonthlyRoster_FebruaryMinimalPools(t *testing.T) {
	flights := []entities.Flight{testFlight(101, "A320")}
	fleet := map[string][]entities.Aircraft{
		"A320": {{MSN: 9001, Type: "A320", Availability: true}},
	}
	b := newTestBuilder(
		[]entities.CrewMember{crew(80050301)},
		[]entities.CrewMember{crew(80050401)},
		fleet, flights, Options{},
	)

	pairs, err := b.BuildMonthlyRoster(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pairs) != 27 {
		t.Fatalf("expected 27 pairings for February, got %d", len(pairs))
	}
	for i, p := range pairs {
		wantDate := time.Date(2024, 2, i+1, 0, 0, 0, 0, time.UTC)
		if !p.Date.Equal(wantDate) {
			t.Errorf("pairing %d dated %s, want %s", i, p.Date, wantDate)
		}
		if p.P1SAP != 80050301 || p.P2SAP != 80050401 || p.AircraftMSN != 9001 {
			t.Errorf("pairing %d has unexpected assignment: %+v", i, p)
		}
	}
}

func TestBuildMonthlyRoster_RoundRobinCycle(t *testing.T) {
	p1Pool := []entities.CrewMember{crew(80050301), crew(80050302), crew(80050303)}
	flights := []entities.Flight{testFlight(101, "A320")}
	fleet := map[string][]entities.Aircraft{
		"A320": {{MSN: 9001, Type: "A320", Availability: true}},
	}
	b := newTestBuilder(p1Pool, []entities.CrewMember{crew(80050401)}, fleet, flights, Options{})

	pairs, err := b.BuildMonthlyRoster(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Pool of 3 over 30 cells: assignments cycle with period 3, nobody is
	// skipped permanently.
	for i, p := range pairs {
		want := p1Pool[i%3].SAP
		if p.P1SAP != want {
			t.Fatalf("cell %d: P1 %d, want %d", i, p.P1SAP, want)
		}
	}
}

func TestBuildMonthlyRoster_NoDoubleBookingWithinDay(t *testing.T) {
	flights := []entities.Flight{testFlight(101, "A320"), testFlight(202, "A320"), testFlight(303, "A320")}
	fleet := map[string][]entities.Aircraft{
		"A320": {{MSN: 9001, Type: "A320", Availability: true}},
	}
	b := newTestBuilder(
		[]entities.CrewMember{crew(80050301), crew(80050302), crew(80050303)},
		[]entities.CrewMember{crew(80050401), crew(80050402), crew(80050403)},
		fleet, flights, Options{},
	)

	pairs, err := b.BuildMonthlyRoster(context.Background(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	byDay := make(map[int]map[int64]bool)
	for _, p := range pairs {
		day := p.Date.Day()
		if byDay[day] == nil {
			byDay[day] = make(map[int64]bool)
		}
		if byDay[day][p.P1SAP] {
			t.Fatalf("P1 %d double-booked on day %d", p.P1SAP, day)
		}
		byDay[day][p.P1SAP] = true
	}
}

func TestBuildMonthlyRoster_EmptyCrewPool(t *testing.T) {
	flights := []entities.Flight{testFlight(101, "A320")}
	fleet := map[string][]entities.Aircraft{
		"A320": {{MSN: 9001, Type: "A320", Availability: true}},
	}
	b := newTestBuilder(
		[]entities.CrewMember{crew(80050301)},
		nil, // no co-pilots at all
		fleet, flights, Options{},
	)

	pairs, err := b.BuildMonthlyRoster(context.Background(), 5)
	var poolErr *EmptyPoolError
	if !errors.As(err, &poolErr) {
		t.Fatalf("expected EmptyPoolError, got %v", err)
	}
	if poolErr.Role != constants.RoleP2 {
		t.Errorf("expected P2 pool error, got %s", poolErr.Role)
	}
	if pairs != nil {
		t.Errorf("expected no pairings on abort, got %d", len(pairs))
	}
}

func TestBuildMonthlyRoster_NoAircraftAvailable(t *testing.T) {
	flights := []entities.Flight{testFlight(101, "A320"), testFlight(202, "B737")}
	fleet := map[string][]entities.Aircraft{
		"A320": {{MSN: 9001, Type: "A320", Availability: true}},
		// no B737s at all
	}
	b := newTestBuilder(
		[]entities.CrewMember{crew(80050301)},
		[]entities.CrewMember{crew(80050401)},
		fleet, flights, Options{},
	)

	pairs, err := b.BuildMonthlyRoster(context.Background(), 3)
	var acErr *NoAircraftAvailableError
	if !errors.As(err, &acErr) {
		t.Fatalf("expected NoAircraftAvailableError, got %v", err)
	}
	if acErr.AircraftType != "B737" || acErr.FlightNo != 202 {
		t.Errorf("unexpected error detail: %+v", acErr)
	}
	if pairs != nil {
		t.Errorf("expected no pairings on abort, got %d", len(pairs))
	}
}

func TestBuildMonthlyRoster_ContextCancelled(t *testing.T) {
	flights := []entities.Flight{testFlight(101, "A320")}
	fleet := map[string][]entities.Aircraft{
		"A320": {{MSN: 9001, Type: "A320", Availability: true}},
	}
	b := newTestBuilder(
		[]entities.CrewMember{crew(80050301)},
		[]entities.CrewMember{crew(80050401)},
		fleet, flights, Options{},
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := b.BuildMonthlyRoster(ctx, 7); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBuildMonthlyRoster_DutyCeilingExhaustsPool(t *testing.T) {
	// With flight-time accounting on, every assignment charges 05:00. Two
	// assignments put a crew member at 10h, past the 8h ceiling, so the
	// whole pool tires out long before the month ends and the build aborts.
	long := testFlight(101, "A320")
	long.Duration = "05:00"
	fleet := map[string][]entities.Aircraft{
		"A320": {{MSN: 9001, Type: "A320", Availability: true}},
	}
	b := newTestBuilder(
		[]entities.CrewMember{crew(80050301), crew(80050302)},
		[]entities.CrewMember{crew(80050401), crew(80050402)},
		fleet, []entities.Flight{long},
		Options{Accountant: FlightTimeAccountant{}},
	)

	_, err := b.BuildMonthlyRoster(context.Background(), 1)
	var poolErr *EmptyPoolError
	if !errors.As(err, &poolErr) {
		t.Fatalf("expected EmptyPoolError once all crew pass the ceiling, got %v", err)
	}
}

func TestNextFit_SkipsCrewAtCeiling(t *testing.T) {
	queue := []entities.CrewMember{crew(80050301), crew(80050302), crew(80050303)}
	ledger := DutyLedger{80050301: 9, 80050302: 8}

	picked, ok := nextFit(&queue, ledger, 8)
	if !ok {
		t.Fatal("expected a fit crew member")
	}
	if picked.SAP != 80050303 {
		t.Errorf("picked %d, want 80050303", picked.SAP)
	}
	if len(queue) != 0 {
		t.Errorf("expected queue drained, %d left", len(queue))
	}

	// Everyone at or past the ceiling.
	queue = []entities.CrewMember{crew(80050301)}
	if _, ok := nextFit(&queue, DutyLedger{80050301: 8}, 8); ok {
		t.Error("expected no fit crew member")
	}
}

func TestFlightTimeAccountant_Record(t *testing.T) {
	ledger := make(DutyLedger)
	flt := testFlight(101, "A320")
	flt.Duration = "02:30"

	acc := FlightTimeAccountant{}
	acc.Record(ledger, 80050301, flt)
	acc.Record(ledger, 80050301, flt)

	if got := ledger.Hours(80050301); got != 5 {
		t.Errorf("expected 5h accumulated, got %v", got)
	}
}

func TestNoopAccountant_LedgerNeverMoves(t *testing.T) {
	ledger := make(DutyLedger)
	NoopAccountant{}.Record(ledger, 80050301, testFlight(101, "A320"))
	if got := ledger.Hours(80050301); got != 0 {
		t.Errorf("noop accountant charged %v hours", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := map[int]int{1: 31, 2: 28, 4: 30, 12: 31}
	for month, want := range cases {
		t.Run(fmt.Sprintf("month_%d", month), func(t *testing.T) {
			got, err := DaysInMonth(month)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != want {
				t.Errorf("month %d: got %d days, want %d", month, got, want)
			}
		})
	}
	if _, err := DaysInMonth(13); err == nil {
		t.Error("expected error for month 13")
	}
}
