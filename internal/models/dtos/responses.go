package dtos

// APIResponse is the standard envelope for every JSON endpoint.
type APIResponse struct {
	Status       string      `json:"status"`
	Message      string      `json:"message,omitempty"`
	ResponseTime string      `json:"response_time,omitempty"`
	Data         interface{} `json:"data,omitempty"`
}

// RosterGenerationResult reports what a roster build produced.
type RosterGenerationResult struct {
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	PairingCount int    `json:"pairing_count"`
	BuildTime    string `json:"build_time"`
}

// LoginResponse carries the signed session token.
type LoginResponse struct {
	Token string `json:"token"`
	SAP   int64  `json:"sap"`
}
