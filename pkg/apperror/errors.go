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

// ---- Configuration (CFG) ----
// Distinct from provider-side rejection so operators can tell a broken
// deployment apart from bad user input.

func ErrMissingCredentials() *AppError {
	return New("CFG_001", "M-Pesa credentials are not configured", http.StatusInternalServerError)
}

func ErrMissingCallbackURL() *AppError {
	return New("CFG_002", "M-Pesa callback URL is not configured", http.StatusInternalServerError)
}

// ---- Validation (VAL) ----

func ErrInvalidPhone() *AppError {
	return New("VAL_001", "Phone number is not a valid Safaricom number", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_002", "Amount must be a positive whole number", http.StatusBadRequest)
}

func ErrInvalidEmail() *AppError {
	return New("VAL_003", "Email address is not valid", http.StatusBadRequest)
}

func ErrInvalidScanTarget() *AppError {
	return New("VAL_004", "URL or file name is required", http.StatusBadRequest)
}

func Validation(message string) *AppError {
	return New("VAL_000", message, http.StatusBadRequest)
}

// ---- Upstream provider (MPESA) ----

func ErrProviderAuthFailed(err error) *AppError {
	return Wrap("MPESA_001", "M-Pesa authentication failed", http.StatusBadGateway, err)
}

func ErrProviderRejected(detail string) *AppError {
	msg := "M-Pesa rejected the payment request"
	if detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, detail)
	}
	return New("MPESA_002", msg, http.StatusBadGateway)
}

func ErrProviderUnreachable(err error) *AppError {
	return Wrap("MPESA_003", "M-Pesa API is unreachable", http.StatusBadGateway, err)
}

// ---- Payment reconciliation (PAY) ----

func ErrPaymentNotFound() *AppError {
	return New("PAY_001", "Payment record not found", http.StatusNotFound)
}

func ErrAmbiguousCallbackMatch() *AppError {
	return New("PAY_002", "Callback could not be matched to a unique pending payment", http.StatusConflict)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
