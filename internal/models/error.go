package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"
	ErrTooManyRequests  = "TOO_MANY_REQUESTS"

	// Domain-specific errors
	ErrSpiceNotFound      = "SPICE_NOT_FOUND"
	ErrRecipeNotFound     = "RECIPE_NOT_FOUND"
	ErrArticleNotFound    = "ARTICLE_NOT_FOUND"
	ErrCollectionNotFound = "COLLECTION_NOT_FOUND"
	ErrInvalidCredentials = "INVALID_CREDENTIALS"
	ErrUserAlreadyExists  = "USER_ALREADY_EXISTS"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
