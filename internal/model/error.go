package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeEmptyOrder         = "EMPTY_ORDER"
	ErrCodeInvalidStatus      = "INVALID_STATUS"
	ErrCodeInvalidTransition  = "INVALID_TRANSITION"
	ErrCodeInvalidRating      = "INVALID_RATING"
	ErrCodeInvalidRole        = "INVALID_ROLE"
	ErrCodeInvalidDiscount    = "INVALID_DISCOUNT"
	ErrCodeInvalidOTP         = "INVALID_OTP"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeUserExists         = "USER_EXISTS"
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeReviewNotFound     = "REVIEW_NOT_FOUND"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeTicketNotFound     = "TICKET_NOT_FOUND"
	ErrCodeThemeNotFound      = "THEME_NOT_FOUND"
	ErrCodeThemeProtected     = "THEME_PROTECTED"
	ErrCodeReviewForbidden    = "REVIEW_FORBIDDEN"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInternalError      = "INTERNAL_ERROR"
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
	ErrEmptyOrder         = NewDomainError(ErrCodeEmptyOrder, "No order items")
	ErrInvalidStatus      = NewDomainError(ErrCodeInvalidStatus, "Invalid status")
	ErrInvalidTransition  = NewDomainError(ErrCodeInvalidTransition, "Status transition not allowed")
	ErrInvalidRating      = NewDomainError(ErrCodeInvalidRating, "Rating must be between 1 and 5")
	ErrInvalidRole        = NewDomainError(ErrCodeInvalidRole, "Invalid role")
	ErrInvalidDiscount    = NewDomainError(ErrCodeInvalidDiscount, "Discount must be between 0 and 100")
	ErrInvalidOTP         = NewDomainError(ErrCodeInvalidOTP, "OTP expired or not found")
	ErrInvalidCredentials = NewDomainError(ErrCodeInvalidCredentials, "Invalid email or password")
	ErrUserExists         = NewDomainError(ErrCodeUserExists, "User already exists")
	ErrOrderNotFound      = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrReviewNotFound     = NewDomainError(ErrCodeReviewNotFound, "Review not found")
	ErrUserNotFound       = NewDomainError(ErrCodeUserNotFound, "User not found")
	ErrTicketNotFound     = NewDomainError(ErrCodeTicketNotFound, "Ticket not found")
	ErrThemeNotFound      = NewDomainError(ErrCodeThemeNotFound, "Theme not found")
	ErrThemeProtected     = NewDomainError(ErrCodeThemeProtected, "Cannot delete default theme")
	ErrReviewForbidden    = NewDomainError(ErrCodeReviewForbidden, "You can only modify your own review")
)
