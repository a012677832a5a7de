package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeFoodNotFound     = "FOOD_NOT_FOUND"
	ErrCodeInvalidID        = "INVALID_ID"
	ErrCodeInvalidCatalog   = "INVALID_CATALOG"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrFoodNotFound      = NewDomainError(ErrCodeFoodNotFound, "Food not found")
	ErrInvalidFoodID     = NewDomainError(ErrCodeInvalidID, "Food ID must be a positive integer")
	ErrDuplicateFoodID   = NewDomainError(ErrCodeInvalidCatalog, "Food IDs must be unique within the catalogue")
	ErrInvalidFoodRecord = NewDomainError(ErrCodeInvalidCatalog, "Food record has an empty name or a negative nutrient value")
)
