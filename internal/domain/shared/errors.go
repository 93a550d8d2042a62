package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
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
	ErrNotFound       = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists  = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput   = NewDomainError("VALIDATION", "Invalid input provided")
	ErrClientNotFound = NewDomainError("CLIENT_NOT_FOUND", "Client not found")
	ErrItemNotFound   = NewDomainError("ITEM_NOT_FOUND", "Item not found")
	ErrInUse          = NewDomainError("IN_USE", "Resource is referenced by existing quotations")
)
