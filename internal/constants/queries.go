package constants

// Raw queries for the sqlx roster repository. Written with ? bindvars and
// rebound per driver so the same statements run on Postgres and the sqlite
// driver used in tests.
const (
	InsertPairing = `
	INSERT INTO monthly_roster (date, flight_no, aircraft_msn, p1_id, p2_id)
	VALUES (?, ?, ?, ?, ?)
	`

	DeleteAllPairings = `
	DELETE FROM monthly_roster
	`

	DeletePairing = `
	DELETE FROM monthly_roster WHERE flight_no = ? AND p1_id = ? AND p2_id = ?
	`

	RosterByCrewMember = `
	SELECT
		mr.date          AS flight_date,
		f.flight_no      AS flight_no,
		fc1.fname        AS p1_fname,
		fc1.lname        AS p1_lname,
		fc2.fname        AS p2_fname,
		fc2.lname        AS p2_lname,
		f.departure      AS departure,
		f.arrival        AS arrival,
		f.dep_time       AS dep_time,
		f.arr_time       AS arr_time,
		af.regn          AS regn
	FROM monthly_roster mr
	JOIN flights f         ON mr.flight_no = f.flight_no
	JOIN aircraft_fleet af ON mr.aircraft_msn = af.msn
	JOIN flight_crew fc1   ON mr.p1_id = fc1.staffid
	JOIN flight_crew fc2   ON mr.p2_id = fc2.staffid
	WHERE fc1.staffid = ? OR fc2.staffid = ?
	ORDER BY mr.date, f.flight_no
	`
)
