package handlers

// Stable machine-readable error kinds exposed alongside the human message.
const (
	CodeValidationError = "validation_error"
	CodeUnauthenticated = "unauthenticated"
	CodeInvalidToken    = "invalid_token"
	CodeNotFound        = "not_found"
	CodeInternalError   = "internal_error"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
