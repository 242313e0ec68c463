package shared

// DomainError is an application-level error with a stable code. Handlers
// map the code to an HTTP status and decide whether Message may be shown.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	cause   error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.cause
}

// Is matches any DomainError carrying the same code, so wrapped copies
// still satisfy errors.Is against the package-level sentinels.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// Wrap returns a copy of e that records cause
func (e *DomainError) Wrap(cause error) *DomainError {
	return &DomainError{Code: e.Code, Message: e.Message, cause: cause}
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Public error kinds
var (
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInsufficientStock   = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrDatabaseUnavailable = NewDomainError("DATABASE_UNAVAILABLE", "Failed to fetch user details")
	ErrExportUnavailable   = NewDomainError("EXPORT_UNAVAILABLE", "Export storage is not configured")
	ErrBodyTooLarge        = NewDomainError("BODY_TOO_LARGE", "Request body exceeds maximum allowed size")
)
