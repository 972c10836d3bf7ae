package response

// Error codes returned in the response envelope.
const (
	CodeValidationError    = "VALIDATION_ERROR"
	CodeProcessingError    = "PROCESSING_ERROR"
	CodeUnhandledAgentType = "UNHANDLED_AGENT_TYPE"
	CodeSessionNotFound    = "SESSION_NOT_FOUND"
)

// DefaultErrorMessage is the user-facing fallback for unexpected failures.
const DefaultErrorMessage = "internal server error"
