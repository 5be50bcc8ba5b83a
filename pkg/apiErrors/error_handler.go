package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes grouped by family, mirroring the failure taxonomy:
// validation rejects the request, not-found degrades to empty data where
// possible, upstream failures are never fatal.
const (
	// Validation (VAL)
	ErrInvalidRequest = "VAL_001" // malformed request
	ErrInvalidFilter  = "VAL_002" // bad filter parameter
	ErrInvalidFormat  = "VAL_003" // value has the wrong format

	// Not found (NF)
	ErrBrandNotFound = "NF_001" // unknown brand key

	// Server (SRV)
	ErrInternalServer    = "SRV_001" // unexpected internal error
	ErrDatabaseOperation = "SRV_002" // database operation failed

	// External services (EXT)
	ErrUpstreamUnavailable = "EXT_001" // ad library or text generation unreachable
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrInvalidFilter:       http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrBrandNotFound:       http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrUpstreamUnavailable: http.StatusBadGateway,
}

// APIError is the standard error payload.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the coded error to the response with its mapped status.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error into an APIError with the given code.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
