package dtos

// AddCrewRequest mirrors the crew admission form.
type AddCrewRequest struct {
	SAP             int64  `json:"sap"`
	FirstName       string `json:"fname"`
	LastName        string `json:"lname"`
	Designation     string `json:"designation"`
	Mobile          int64  `json:"mobile"`
	ATPLHolder      bool   `json:"atpl_holder"`
	LicenceNo       int64  `json:"licence_no"`
	MedicalValidity string `json:"medical_validity"` // YYYY-MM-DD
	BaseOps         string `json:"base_ops"`
	Login           string `json:"login,omitempty"`
	Password        string `json:"password"`
}

// UpdateAvailabilityRequest flips a crew member's leave state.
type UpdateAvailabilityRequest struct {
	Available bool `json:"available"`
}

type AddAircraftRequest struct {
	MSN          int64  `json:"msn"`
	Type         string `json:"type"`
	Registration string `json:"regn"`
	Availability bool   `json:"availability"`
	Engine       string `json:"engine"`
	EngineHours  int    `json:"engine_hours"`
}

type AddFlightRequest struct {
	Number       int    `json:"flight_no"`
	Departure    string `json:"departure"`
	Arrival      string `json:"arrival"`
	AircraftType string `json:"aircraft_type"`
	DepTime      string `json:"dep_time"`
	ArrTime      string `json:"arr_time"`
	Duration     string `json:"duration"`
}

type AddAMERequest struct {
	SAP       int64  `json:"sap"`
	Name      string `json:"name"`
	FleetCert string `json:"fleet_cert"`
	Login     string `json:"login,omitempty"`
	Password  string `json:"password"`
}

type AddTrainingRequest struct {
	ID          int    `json:"training_id"`
	Name        string `json:"training_name"`
	Description string `json:"training_desc"`
	TrainerSAP  int64  `json:"trainer"`
	TraineeSAP  int64  `json:"trainee"`
	Date        string `json:"date"` // YYYY-MM-DD
	Location    string `json:"location"`
	Duration    string `json:"duration"`
}

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
