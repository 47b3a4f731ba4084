package dto

import (
	"encoding/json"
	"fmt"

	"breachguard-backend/internal/core/domain"
)

// ---- Check log requests ----

// EmailBreachCheckRequest logs one breach lookup.
type EmailBreachCheckRequest struct {
	EmailAddress string `json:"email_address" binding:"required"`
}

// MalwareScanCheckRequest logs one malware scan. The target is
// classified server-side as a URL or a file name.
type MalwareScanCheckRequest struct {
	URLOrFileName string `json:"url_or_file_name" binding:"required"`
	ScanType      string `json:"scan_type" binding:"omitempty,max=64"`
}

// CheckAckResponse is the fixed acknowledgement for accepted check logs.
type CheckAckResponse struct {
	OK bool `json:"ok"`
}

// ---- Payment requests ----

// InitiatePaymentRequest starts an STK push. Amount defaults to the
// report price when omitted.
type InitiatePaymentRequest struct {
	PhoneNumber      string `json:"phone_number" binding:"required,msisdn"`
	Amount           int64  `json:"amount" binding:"omitempty,gt=0"`
	AccountReference string `json:"account_reference" binding:"omitempty,max=12"`
	Description      string `json:"description" binding:"omitempty,max=100"`
}

// InitiatePaymentResponse echoes the provider's acceptance.
type InitiatePaymentResponse struct {
	CheckoutRequestID string `json:"checkout_request_id"`
	MerchantRequestID string `json:"merchant_request_id"`
	CustomerMessage   string `json:"customer_message,omitempty"`
}

// ---- Daraja callback envelope ----

// CallbackEnvelope is the provider's confirmation callback body.
type CallbackEnvelope struct {
	Body struct {
		StkCallback StkCallback `json:"stkCallback"`
	} `json:"Body"`
}

// StkCallback carries the payment outcome. CallbackMetadata is present
// only on success.
type StkCallback struct {
	MerchantRequestID string            `json:"MerchantRequestID"`
	CheckoutRequestID string            `json:"CheckoutRequestID"`
	ResultCode        int               `json:"ResultCode"`
	ResultDesc        string            `json:"ResultDesc"`
	CallbackMetadata  *CallbackMetadata `json:"CallbackMetadata,omitempty"`
}

// CallbackMetadata is the provider's name/value item list.
type CallbackMetadata struct {
	Item []CallbackItem `json:"Item"`
}

// CallbackItem is one metadata entry. Value may be a string or a number
// depending on the item name.
type CallbackItem struct {
	Name  string          `json:"Name"`
	Value json.RawMessage `json:"Value"`
}

// ToCallbackResult flattens the envelope into the domain's callback
// shape, extracting the receipt, amount, and phone metadata items.
func (e *CallbackEnvelope) ToCallbackResult() domain.CallbackResult {
	cb := e.Body.StkCallback
	result := domain.CallbackResult{
		CheckoutRequestID: cb.CheckoutRequestID,
		MerchantRequestID: cb.MerchantRequestID,
		ResultCode:        cb.ResultCode,
		ResultDesc:        cb.ResultDesc,
	}
	if cb.CallbackMetadata == nil {
		return result
	}
	for _, item := range cb.CallbackMetadata.Item {
		switch item.Name {
		case "MpesaReceiptNumber":
			result.ReceiptNumber = itemString(item.Value)
		case "Amount":
			result.Amount = itemInt(item.Value)
		case "PhoneNumber":
			result.PhoneNumber = itemString(item.Value)
		}
	}
	return result
}

// itemString decodes a metadata value that may arrive as a JSON string
// or number. The provider sends PhoneNumber as a bare number.
func itemString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// itemInt decodes a numeric metadata value, truncating any fractional
// part. Amounts in this system are whole currency units.
func itemInt(raw json.RawMessage) int64 {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int64(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		var parsed float64
		if _, err := fmt.Sscanf(s, "%f", &parsed); err == nil {
			return int64(parsed)
		}
	}
	return 0
}

// CallbackAck is the fixed acknowledgement returned to the provider
// regardless of internal processing outcome.
type CallbackAck struct {
	ResultCode int    `json:"ResultCode"`
	ResultDesc string `json:"ResultDesc"`
}
