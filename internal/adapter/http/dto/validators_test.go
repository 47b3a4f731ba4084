package dto

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validate() *validator.Validate {
	return binding.Validator.Engine().(*validator.Validate)
}

func TestValidateMSISDN(t *testing.T) {
	v := validate()

	valid := []string{
		"0712345678",
		"0112345678",
		"254712345678",
		"+254712345678",
		"712345678",
	}
	for _, phone := range valid {
		req := InitiatePaymentRequest{PhoneNumber: phone, Amount: 10}
		assert.NoError(t, v.Struct(req), "expected %q to be valid", phone)
	}

	invalid := []string{
		"",
		"12345",
		"0812345678",  // unrecognized subscriber prefix
		"255712345678", // wrong country code
		"07123456789", // too long
		"07-abc-5678",
	}
	for _, phone := range invalid {
		req := InitiatePaymentRequest{PhoneNumber: phone, Amount: 10}
		assert.Error(t, v.Struct(req), "expected %q to be rejected", phone)
	}
}

func TestSanitizeStruct(t *testing.T) {
	scanType := "  <b>quick</b>  "
	req := struct {
		Target   string
		ScanType *string
	}{
		Target:   "  <script>x</script>  ",
		ScanType: &scanType,
	}

	SanitizeStruct(&req)
	assert.Equal(t, "&lt;script&gt;x&lt;/script&gt;", req.Target)
	assert.Equal(t, "&lt;b&gt;quick&lt;/b&gt;", *req.ScanType)
}

func TestSanitizeStruct_NonStructIsNoop(t *testing.T) {
	s := "  unchanged  "
	SanitizeStruct(&s)
	assert.Equal(t, "  unchanged  ", s)
}

func TestCallbackEnvelope_ToCallbackResult_Success(t *testing.T) {
	raw := `{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "29115-34620561-1",
				"CheckoutRequestID": "ws_CO_291120250001",
				"ResultCode": 0,
				"ResultDesc": "The service request is processed successfully.",
				"CallbackMetadata": {
					"Item": [
						{"Name": "Amount", "Value": 10.00},
						{"Name": "MpesaReceiptNumber", "Value": "ABC123"},
						{"Name": "TransactionDate", "Value": 20251129101530},
						{"Name": "PhoneNumber", "Value": 254712345678}
					]
				}
			}
		}
	}`

	var env CallbackEnvelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))

	result := env.ToCallbackResult()
	assert.Equal(t, "ws_CO_291120250001", result.CheckoutRequestID)
	assert.Equal(t, 0, result.ResultCode)
	assert.Equal(t, "ABC123", result.ReceiptNumber)
	assert.Equal(t, int64(10), result.Amount)
	assert.Equal(t, "254712345678", result.PhoneNumber)
}

func TestCallbackEnvelope_ToCallbackResult_Failure(t *testing.T) {
	raw := `{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "29115-34620561-1",
				"CheckoutRequestID": "ws_CO_291120250001",
				"ResultCode": 1032,
				"ResultDesc": "Request cancelled by user"
			}
		}
	}`

	var env CallbackEnvelope
	require.NoError(t, json.Unmarshal([]byte(raw), &env))

	result := env.ToCallbackResult()
	assert.Equal(t, 1032, result.ResultCode)
	assert.Empty(t, result.ReceiptNumber)
	assert.Zero(t, result.Amount)
}
