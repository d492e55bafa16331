package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"skyops/crewdeck/internal/constants"
	"skyops/crewdeck/internal/models/entities"
)

// RosterRepository is the sqlx-backed roster sink. Pairings are only ever
// written as a whole month, so the write path is wipe-and-bulk-insert.
// Dates go in as ISO strings to stay scan-compatible across drivers.
type RosterRepository struct {
	db *sqlx.DB
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db}
}

// ReplaceAll deletes every persisted pairing and inserts the new sequence
// in one transaction. Re-running with the same sequence leaves the table
// equal to that sequence exactly.
func (r *RosterRepository) ReplaceAll(ctx context.Context, pairings []entities.Pairing) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() // safe even after Commit

	if _, err := tx.ExecContext(ctx, constants.DeleteAllPairings); err != nil {
		return fmt.Errorf("wipe roster: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, r.db.Rebind(constants.InsertPairing))
	if err != nil {
		return fmt.Errorf("prepare roster insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range pairings {
		if _, err := stmt.ExecContext(ctx,
			p.Date.Format("2006-01-02"),
			p.FlightNo,
			p.AircraftMSN,
			p.P1SAP,
			p.P2SAP,
		); err != nil {
			return fmt.Errorf("insert pairing %d/%s: %w", p.FlightNo, p.Date.Format("2006-01-02"), err)
		}
	}

	return tx.Commit()
}

func (r *RosterRepository) InsertOne(ctx context.Context, p *entities.Pairing) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(constants.InsertPairing),
		p.Date.Format("2006-01-02"),
		p.FlightNo,
		p.AircraftMSN,
		p.P1SAP,
		p.P2SAP,
	)
	if err != nil {
		return fmt.Errorf("insert pairing: %w", err)
	}
	return nil
}

func (r *RosterRepository) DeleteOne(ctx context.Context, flightNo int, p1SAP, p2SAP int64) error {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(constants.DeletePairing), flightNo, p1SAP, p2SAP)
	if err != nil {
		return fmt.Errorf("delete pairing: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rosterRow struct {
	Date         string `db:"flight_date"`
	FlightNo     int    `db:"flight_no"`
	P1FirstName  string `db:"p1_fname"`
	P1LastName   string `db:"p1_lname"`
	P2FirstName  string `db:"p2_fname"`
	P2LastName   string `db:"p2_lname"`
	Departure    string `db:"departure"`
	Arrival      string `db:"arrival"`
	DepTime      string `db:"dep_time"`
	ArrTime      string `db:"arr_time"`
	Registration string `db:"regn"`
}

// QueryByCrewMember returns the joined roster rows for one crew member,
// whichever seat they flew, formatted for presentation.
func (r *RosterRepository) QueryByCrewMember(ctx context.Context, sap int64) ([]entities.PairingView, error) {
	var rows []rosterRow
	err := r.db.SelectContext(ctx, &rows, r.db.Rebind(constants.RosterByCrewMember), sap, sap)
	if err != nil {
		return nil, fmt.Errorf("query roster for %d: %w", sap, err)
	}

	views := make([]entities.PairingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, entities.PairingView{
			Date:         displayDate(row.Date),
			FlightNo:     row.FlightNo,
			PIC:          fmt.Sprintf("Capt %s %s", row.P1FirstName, row.P1LastName),
			CoPilot:      fmt.Sprintf("Capt %s %s", row.P2FirstName, row.P2LastName),
			Route:        fmt.Sprintf("%s - %s", row.Departure, row.Arrival),
			Timing:       fmt.Sprintf("%s - %s", row.DepTime, row.ArrTime),
			Registration: "VT-" + row.Registration,
		})
	}
	return views, nil
}

// Count reports how many pairings are persisted.
func (r *RosterRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM monthly_roster"); err != nil {
		return 0, fmt.Errorf("count pairings: %w", err)
	}
	return n, nil
}

// displayDate reswizzles ISO dates into the DD-MM-YYYY the roster screens
// always showed.
func displayDate(iso string) string {
	if len(iso) < 10 {
		return iso
	}
	return iso[8:10] + "-" + iso[5:7] + "-" + iso[0:4]
}
