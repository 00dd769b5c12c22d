package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Sessions (SES) ----

func ErrSessionInvalid() *AppError {
	return New("SES_001", "Invalid or unknown session", http.StatusUnauthorized)
}

func ErrMissingPublicKey() *AppError {
	return New("SES_002", "Public key is required", http.StatusBadRequest)
}

// ---- Consolidation (MOV) ----

func ErrDestinationInvalid() *AppError {
	return New("MOV_001", "Destination wallet address is not valid", http.StatusBadRequest)
}

func ErrMissingDestination() *AppError {
	return New("MOV_002", "Destination wallet is required", http.StatusBadRequest)
}

// ---- Chain queries (CHN) ----

func ErrChainQuery(err error) *AppError {
	return Wrap("CHN_001", "Chain query failed", http.StatusBadGateway, err)
}

func ErrBroadcastRejected(err error) *AppError {
	return Wrap("CHN_002", "Transfer broadcast rejected", http.StatusBadGateway, err)
}

// ---- Price oracle (PRC) ----

func ErrPriceUnavailable(assetID string) *AppError {
	return New("PRC_001", fmt.Sprintf("Price unavailable for %s", assetID), http.StatusBadGateway)
}

func ErrPriceQuery(err error) *AppError {
	return Wrap("PRC_002", "Price feed query failed", http.StatusBadGateway, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a request-validation error.
func Validation(message string) *AppError {
	return New("SYS_002", message, http.StatusBadRequest)
}
