package dto

import "time"

type ErrorResponse struct {
	Error     string            `json:"error"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp string            `json:"timestamp"`
}

func NewErrorResponse(msg string, details map[string]string) ErrorResponse {
	return ErrorResponse{
		Error:     msg,
		Details:   details,
		Timestamp: Timestamp(time.Now()),
	}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Env       string `json:"env"`
	Version   string `json:"version"`
}

type APIInfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

type ContactCreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// Timestamp formats t the way JavaScript's toISOString does.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
