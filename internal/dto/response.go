package dto

type ErrorResponse struct {
	Error      bool   `json:"error"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
	ConflictID string `json:"conflict_id,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
