package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"skyops/crewdeck/internal/common"
	"skyops/crewdeck/internal/constants"
	"skyops/crewdeck/internal/logging"
	"skyops/crewdeck/internal/metrics"
	"skyops/crewdeck/internal/models/dtos"
	"skyops/crewdeck/internal/models/entities"
	"skyops/crewdeck/internal/roster"
)

// RosterSink persists generated rosters and answers crew lookups.
type RosterSink interface {
	ReplaceAll(ctx context.Context, pairings []entities.Pairing) error
	InsertOne(ctx context.Context, p *entities.Pairing) error
	DeleteOne(ctx context.Context, flightNo int, p1SAP, p2SAP int64) error
	QueryByCrewMember(ctx context.Context, sap int64) ([]entities.PairingView, error)
}

const rosterViewTTL = 60 * time.Second

// RosterService glues the builder to persistence: it preflights the crew
// and flight pools, runs the build and swaps the stored roster in one
// transaction. View lookups go through the cache.
type RosterService struct {
	builder *roster.Builder
	crew    roster.CrewProvider
	catalog roster.FlightCatalog
	sink    RosterSink
	cache   common.CacheInterface
	metrics *metrics.MetricsRegistry
}

func NewRosterService(
	builder *roster.Builder,
	crew roster.CrewProvider,
	catalog roster.FlightCatalog,
	sink RosterSink,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) *RosterService {
	return &RosterService{
		builder: builder,
		crew:    crew,
		catalog: catalog,
		sink:    sink,
		cache:   cache,
		metrics: metricsReg,
	}
}

// GenerateMonthlyRoster builds the roster for the given month and replaces
// whatever roster was stored before. Nothing is persisted when the build
// aborts.
func (s *RosterService) GenerateMonthlyRoster(ctx context.Context, month int) (*dtos.RosterGenerationResult, error) {
	start := time.Now()

	if err := s.preflight(ctx); err != nil {
		s.metrics.RosterBuildFailuresTotal.WithLabelValues(buildFailureReason(err)).Inc()
		return nil, err
	}

	pairings, err := s.builder.BuildMonthlyRoster(ctx, month)
	if err != nil {
		s.metrics.RosterBuildFailuresTotal.WithLabelValues(buildFailureReason(err)).Inc()
		logging.Error("roster build aborted", "month", month, "error", err)
		return nil, err
	}

	if err := s.sink.ReplaceAll(ctx, pairings); err != nil {
		s.metrics.RosterBuildFailuresTotal.WithLabelValues("persist").Inc()
		return nil, fmt.Errorf("persisting roster: %w", err)
	}

	elapsed := time.Since(start)
	s.metrics.RosterBuildsTotal.Inc()
	s.metrics.RosterPairingsTotal.Add(float64(len(pairings)))
	s.metrics.RosterBuildDuration.Observe(elapsed.Seconds())

	logging.Info("monthly roster generated",
		"month", month,
		"year", s.builder.Year(),
		"pairings", len(pairings),
		"elapsed", elapsed.String(),
	)

	return &dtos.RosterGenerationResult{
		Month:        month,
		Year:         s.builder.Year(),
		PairingCount: len(pairings),
		BuildTime:    elapsed.String(),
	}, nil
}

// ViewCrewRoster lists the pairings a crew member flies in either seat.
func (s *RosterService) ViewCrewRoster(ctx context.Context, sap int64) ([]entities.PairingView, error) {
	key := fmt.Sprintf("roster:view:%d", sap)

	if cached, found := s.cache.Get(key); found {
		if views, ok := decodePairingViews(cached); ok {
			s.metrics.CacheHitsTotal.WithLabelValues("roster_view").Inc()
			return views, nil
		}
	}
	s.metrics.CacheMissesTotal.WithLabelValues("roster_view").Inc()

	views, err := s.sink.QueryByCrewMember(ctx, sap)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, views, rosterViewTTL)
	return views, nil
}

// DeletePairing removes one stored pairing, identified the way crew report
// it: flight number plus both seat occupants.
func (s *RosterService) DeletePairing(ctx context.Context, flightNo int, p1SAP, p2SAP int64) error {
	if err := s.sink.DeleteOne(ctx, flightNo, p1SAP, p2SAP); err != nil {
		return err
	}
	s.cache.Delete(fmt.Sprintf("roster:view:%d", p1SAP))
	s.cache.Delete(fmt.Sprintf("roster:view:%d", p2SAP))
	return nil
}

// UpdatePairing swaps one stored pairing for another: the old row is
// removed by its flight/seat identifiers and the replacement inserted.
// Cached views for every seat touched are dropped.
func (s *RosterService) UpdatePairing(ctx context.Context, oldFlightNo int, oldP1SAP, oldP2SAP int64, replacement *entities.Pairing) error {
	if err := replacement.Validate(); err != nil {
		return err
	}
	if err := s.sink.DeleteOne(ctx, oldFlightNo, oldP1SAP, oldP2SAP); err != nil {
		return err
	}
	if err := s.sink.InsertOne(ctx, replacement); err != nil {
		return err
	}
	for _, sap := range []int64{oldP1SAP, oldP2SAP, replacement.P1SAP, replacement.P2SAP} {
		s.cache.Delete(fmt.Sprintf("roster:view:%d", sap))
	}
	return nil
}

// decodePairingViews recovers a cached view list. The in-memory cache
// hands the slice back as stored; the Redis cache round-trips values
// through JSON and hands back generic decoded data, which is re-decoded
// into the typed slice here.
func decodePairingViews(cached interface{}) ([]entities.PairingView, bool) {
	if views, ok := cached.([]entities.PairingView); ok {
		return views, true
	}
	raw, err := json.Marshal(cached)
	if err != nil {
		return nil, false
	}
	var views []entities.PairingView
	if err := json.Unmarshal(raw, &views); err != nil {
		return nil, false
	}
	return views, true
}

// preflight checks the crew pools and the flight catalog concurrently so an
// obviously doomed build fails before any allocation work starts.
func (s *RosterService) preflight(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	for _, role := range []constants.CrewRole{constants.RoleP1, constants.RoleP2} {
		role := role
		g.Go(func() error {
			pool, err := s.crew.ListAvailable(gctx, role)
			if err != nil {
				return fmt.Errorf("listing %s pool: %w", role, err)
			}
			if len(pool) == 0 {
				return &roster.EmptyPoolError{Role: role}
			}
			return nil
		})
	}
	g.Go(func() error {
		_, err := s.catalog.ListAll(gctx)
		if err != nil {
			return fmt.Errorf("listing flight catalog: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func buildFailureReason(err error) string {
	var invalidMonth *roster.InvalidMonthError
	var emptyPool *roster.EmptyPoolError
	var noAircraft *roster.NoAircraftAvailableError
	switch {
	case errors.As(err, &invalidMonth):
		return "invalid_month"
	case errors.As(err, &emptyPool):
		return "empty_crew_pool"
	case errors.As(err, &noAircraft):
		return "no_aircraft"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "cancelled"
	default:
		return "other"
	}
}
