package http

import "inquiry-console/internal/model"

// Envelope is the uniform response body. Success responses carry Data,
// failures carry Error and, for validation failures, per-field Details.
type Envelope struct {
	Success bool               `json:"success"`
	Data    interface{}        `json:"data,omitempty"`
	Error   string             `json:"error,omitempty"`
	Details []model.FieldError `json:"details,omitempty"`
}

func successResponse(data interface{}) Envelope {
	return Envelope{Success: true, Data: data}
}

func errorResponse(message string) Envelope {
	return Envelope{Success: false, Error: message}
}

func validationResponse(verr *model.ValidationError) Envelope {
	return Envelope{Success: false, Error: verr.Error(), Details: verr.Fields}
}
