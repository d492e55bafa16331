package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyops/crewdeck/internal/models/entities"
)

const rosterTestSchema = `
CREATE TABLE flight_crew (
	staffid INTEGER PRIMARY KEY,
	fname TEXT, lname TEXT, designation TEXT, contact INTEGER,
	atpl BOOLEAN, license_no INTEGER, medical_validity TEXT,
	base_ops TEXT, availability BOOLEAN, login TEXT, pw TEXT
);
CREATE TABLE aircraft_fleet (
	msn INTEGER PRIMARY KEY,
	type TEXT, regn TEXT, availability BOOLEAN, engine TEXT, engine_hours INTEGER
);
CREATE TABLE flights (
	flight_no INTEGER PRIMARY KEY,
	departure TEXT, arrival TEXT, aircraft_type TEXT,
	dep_time TEXT, arr_time TEXT, duration TEXT
);
CREATE TABLE monthly_roster (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT, flight_no INTEGER, aircraft_msn INTEGER,
	p1_id INTEGER, p2_id INTEGER
);
`

func setupRosterDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	db.MustExec(rosterTestSchema)

	db.MustExec(`INSERT INTO flight_crew (staffid, fname, lname, designation, availability, login, pw)
		VALUES (80050301, 'Asha', 'Verma', 'COMMANDER', 1, '80050301', 'x'),
		       (80050401, 'Ravi', 'Iyer', 'FO', 1, '80050401', 'x')`)
	db.MustExec(`INSERT INTO aircraft_fleet (msn, type, regn, availability, engine, engine_hours)
		VALUES (9001, 'A320', 'EXA', 1, 'CFM56', 4100)`)
	db.MustExec(`INSERT INTO flights (flight_no, departure, arrival, aircraft_type, dep_time, arr_time, duration)
		VALUES (101, 'DEL', 'BOM', 'A320', '06:00', '08:15', '02:15')`)

	return db
}

func testPairings(n int) []entities.Pairing {
	pairs := make([]entities.Pairing, 0, n)
	for day := 1; day <= n; day++ {
		pairs = append(pairs, entities.Pairing{
			Date:        time.Date(2024, 2, day, 0, 0, 0, 0, time.UTC),
			FlightNo:    101,
			AircraftMSN: 9001,
			P1SAP:       80050301,
			P2SAP:       80050401,
		})
	}
	return pairs
}

func TestRosterRepository_ReplaceAllIsIdempotent(t *testing.T) {
	db := setupRosterDB(t)
	repo := NewRosterRepository(db)
	ctx := context.Background()

	pairs := testPairings(27)

	require.NoError(t, repo.ReplaceAll(ctx, pairs))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 27, n)

	// Re-running the same sequence fully supersedes the old rows.
	require.NoError(t, repo.ReplaceAll(ctx, pairs))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 27, n, "no duplicate rows after regeneration")
}

func TestRosterRepository_ReplaceAllSupersedesOldRoster(t *testing.T) {
	db := setupRosterDB(t)
	repo := NewRosterRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, testPairings(27)))
	require.NoError(t, repo.ReplaceAll(ctx, testPairings(5)))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestRosterRepository_QueryByCrewMember(t *testing.T) {
	db := setupRosterDB(t)
	repo := NewRosterRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, testPairings(2)))

	views, err := repo.QueryByCrewMember(ctx, 80050301)
	require.NoError(t, err)
	require.Len(t, views, 2)

	v := views[0]
	assert.Equal(t, "01-02-2024", v.Date)
	assert.Equal(t, 101, v.FlightNo)
	assert.Equal(t, "Capt Asha Verma", v.PIC)
	assert.Equal(t, "Capt Ravi Iyer", v.CoPilot)
	assert.Equal(t, "DEL - BOM", v.Route)
	assert.Equal(t, "06:00 - 08:15", v.Timing)
	assert.Equal(t, "VT-EXA", v.Registration)

	// The co-pilot sees the same rows from the other seat.
	coViews, err := repo.QueryByCrewMember(ctx, 80050401)
	require.NoError(t, err)
	assert.Len(t, coViews, 2)

	// A crew member with no pairings gets an empty roster.
	none, err := repo.QueryByCrewMember(ctx, 99999999)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestRosterRepository_InsertAndDeleteOne(t *testing.T) {
	db := setupRosterDB(t)
	repo := NewRosterRepository(db)
	ctx := context.Background()

	p := testPairings(1)[0]
	require.NoError(t, repo.InsertOne(ctx, &p))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, repo.DeleteOne(ctx, p.FlightNo, p.P1SAP, p.P2SAP))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	assert.ErrorIs(t, repo.DeleteOne(ctx, p.FlightNo, p.P1SAP, p.P2SAP), ErrNotFound)
}
