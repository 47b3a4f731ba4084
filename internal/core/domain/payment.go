package domain

import "time"

// PaymentStatus represents the lifecycle state of an STK Push payment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
	// PaymentStatusExpired is applied by the reaper to PENDING records the
	// provider never confirmed. Terminal, like FAILED.
	PaymentStatusExpired PaymentStatus = "EXPIRED"
)

// PaymentRecord tracks one initiated STK Push attempt. The provider-issued
// CheckoutRequestID is the primary reconciliation key. A record starts
// PENDING and transitions exactly once to a terminal state.
type PaymentRecord struct {
	CheckoutRequestID string        `json:"checkout_request_id"`
	MerchantRequestID string        `json:"merchant_request_id"`
	PhoneNumber       string        `json:"phone_number"` // normalized MSISDN, e.g. 254712345678
	Amount            int64         `json:"amount"`       // whole KES
	AccountReference  string        `json:"account_reference"`
	Description       string        `json:"description"`
	Status            PaymentStatus `json:"status"`
	ResultCode        *int          `json:"result_code,omitempty"`
	ResultDesc        *string       `json:"result_desc,omitempty"`
	ReceiptNumber     *string       `json:"receipt_number,omitempty"` // set only on SUCCESS
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// IsTerminal returns true if the payment is in a final state.
func (p *PaymentRecord) IsTerminal() bool {
	return p.Status == PaymentStatusSuccess ||
		p.Status == PaymentStatusFailed ||
		p.Status == PaymentStatusExpired
}

// CallbackResult is the outcome reported by the provider's confirmation
// callback. ResultCode 0 means the customer completed the payment.
type CallbackResult struct {
	CheckoutRequestID string
	MerchantRequestID string
	ResultCode        int
	ResultDesc        string
	ReceiptNumber     string // present only on success
	Amount            int64  // echoed back by the provider
	PhoneNumber       string // echoed back by the provider
}

// Succeeded reports whether the callback carries a successful result.
func (r CallbackResult) Succeeded() bool {
	return r.ResultCode == 0
}

// TerminalStatus maps the result code to the record status it produces.
func (r CallbackResult) TerminalStatus() PaymentStatus {
	if r.Succeeded() {
		return PaymentStatusSuccess
	}
	return PaymentStatusFailed
}
