package constants

type APIStatus string

const (
	APIStatusOk    APIStatus = "OK"
	APIStatusError APIStatus = "Error"
)

const (
	MsgCrewAdded         = "Crew member added"
	MsgCrewDeleted       = "Crew member deleted"
	MsgCrewNotFound      = "Crew member not found"
	MsgAircraftAdded     = "Aircraft added to fleet"
	MsgAircraftDeleted   = "Aircraft removed from fleet"
	MsgFlightAdded       = "Flight added"
	MsgFlightDeleted     = "Flight deleted"
	MsgRosterGenerated   = "Monthly roster generated"
	MsgRosterFetched     = "Roster fetched"
	MsgPairingDeleted    = "Pairing deleted"
	MsgInvalidPayload    = "Invalid request payload"
	MsgInvalidCredential = "Invalid login or password"
)
