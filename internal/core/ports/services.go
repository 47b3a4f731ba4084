package ports

import (
	"context"

	"breachguard-backend/internal/core/domain"
)

// MpesaClient is the outbound port to the Daraja API.
type MpesaClient interface {
	// InitiateSTKPush performs the OAuth token exchange and submits the
	// signed payment request. The token is fetched fresh per call.
	InitiateSTKPush(ctx context.Context, req STKPushRequest) (*STKPushResult, error)
}

// STKPushRequest holds validated input for a payment push.
type STKPushRequest struct {
	PhoneNumber      string // normalized MSISDN
	Amount           int64  // whole KES, > 0
	AccountReference string
	Description      string
}

// STKPushResult holds the provider's acknowledgement of an accepted push.
type STKPushResult struct {
	CheckoutRequestID string
	MerchantRequestID string
	CustomerMessage   string
}

// --- Service Ports (Business Logic) ---

// PaymentService drives the STK Push lifecycle.
type PaymentService interface {
	InitiatePayment(ctx context.Context, req InitiatePaymentRequest) (*STKPushResult, error)
	GetStatus(ctx context.Context, checkoutRequestID string) (*PaymentStatusResult, error)
	// HandleCallback reconciles a provider confirmation. Errors are for
	// the caller's logs only; the HTTP acknowledgement never depends on it.
	HandleCallback(ctx context.Context, result domain.CallbackResult) error
	// ExpireStalePending is invoked by the reaper.
	ExpireStalePending(ctx context.Context) (int64, error)
}

// InitiatePaymentRequest holds raw caller input for payment initiation.
type InitiatePaymentRequest struct {
	PhoneNumber      string // any accepted local or international form
	Amount           int64
	AccountReference string
	Description      string
}

// PaymentStatusResult is the poller's view of a payment.
// Status is one of "pending", "completed", "failed".
type PaymentStatusResult struct {
	Status        string  `json:"status"`
	ReceiptNumber *string `json:"mpesa_receipt_number,omitempty"`
	Amount        *int64  `json:"amount,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	ResultDesc    *string `json:"result_desc,omitempty"`
}

// CheckLogService records breach and malware checks and serves the
// public counters.
type CheckLogService interface {
	RecordEmailCheck(ctx context.Context, email string) error
	// RecordMalwareScan classifies the target as URL or file name and
	// returns the classification it logged.
	RecordMalwareScan(ctx context.Context, target string, scanType string) (domain.CheckKind, error)
	Stats(ctx context.Context) (*CheckStats, error)
}
