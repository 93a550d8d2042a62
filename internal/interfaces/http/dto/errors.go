package dto

import "net/http"

// Error codes used by the HTTP layer itself. Domain errors carry their own
// codes, mapped to status codes below.
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeInternal:   http.StatusInternalServerError,

	// Validation and referential guards -> 400 Bad Request
	"VALIDATION": http.StatusBadRequest,
	"IN_USE":     http.StatusBadRequest,

	// Missing resources -> 404 Not Found
	ErrCodeNotFound:    http.StatusNotFound,
	"CLIENT_NOT_FOUND": http.StatusNotFound,
	"ITEM_NOT_FOUND":   http.StatusNotFound,

	// Duplicates -> 409 Conflict
	"ALREADY_EXISTS": http.StatusConflict,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
