package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// ConflictResponse is returned when a booking lost the race for a slot.
// Retryable tells the client to refresh availability and pick again.
type ConflictResponse struct {
	Error     string `json:"error" example:"slot is no longer available"`
	Retryable bool   `json:"retryable" example:"true"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
