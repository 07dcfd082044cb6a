package models

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Password string `json:"password"`
}

// ConnectRequest is the optional body of POST /api/device/connect.
// When APIKey is empty the daemon uses its configured key.
type ConnectRequest struct {
	APIKey string `json:"api_key,omitempty"`
}

// ProfileRequest is the body of PUT /api/device/profile.
type ProfileRequest struct {
	Profile string `json:"profile"`
}

// ProfileResponse is returned by GET /api/device/profile.
type ProfileResponse struct {
	Profile string `json:"profile"`
}

// StatusRequest is the body of PUT /api/device/status.
type StatusRequest struct {
	On bool `json:"on"`
}

// StatusResponse is returned by GET /api/device/status.
type StatusResponse struct {
	Status string `json:"status"`
}

// BrightnessRequest is the body of PUT /api/device/brightness.
type BrightnessRequest struct {
	Brightness int `json:"brightness"`
}

// APIStatusResponse is returned by GET /api/device/apistatus.
type APIStatusResponse struct {
	Idle bool `json:"idle"`
}

// EventsRequest holds the query of GET /api/device/events.
type EventsRequest struct {
	Limit int `json:"limit"`
}
