package docs

// This file contains models used by Swagger documentation.
// It doesn't affect the actual application logic, just documentation.

// ErrorResponse represents an error response
// @Description Error information
type ErrorResponse struct {
	// Error type
	Type string `json:"type" example:"VALIDATION_ERROR"`

	// Machine-readable error code, when present
	Code string `json:"code,omitempty" example:"token_expired"`

	// Error message
	Message string `json:"message" example:"Invalid request parameters"`

	// Detailed error information (only exposed for validation and not-found errors)
	Details string `json:"details,omitempty" example:"Field 'name' is required"`
}

// StatusResponse is used for simple confirmation responses
// @Description Operation confirmation
type StatusResponse struct {
	// Confirmation message
	Message string `json:"message" example:"Plan deleted successfully"`
}
