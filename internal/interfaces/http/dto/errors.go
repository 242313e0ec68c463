package dto

import (
	"net/http"

	"github.com/bizdesk/backend/internal/domain/shared"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	shared.ErrInvalidInput.Code:        http.StatusBadRequest,
	shared.ErrNotFound.Code:            http.StatusNotFound,
	shared.ErrInsufficientStock.Code:   http.StatusUnprocessableEntity,
	shared.ErrDatabaseUnavailable.Code: http.StatusInternalServerError,
	shared.ErrExportUnavailable.Code:   http.StatusServiceUnavailable,
	shared.ErrBodyTooLarge.Code:        http.StatusRequestEntityTooLarge,
}

// GetHTTPStatus returns the status for code, 500 when unknown
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
