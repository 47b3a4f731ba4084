package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"breachguard-backend/config"
	httpHandler "breachguard-backend/internal/adapter/http/handler"
	redisStorage "breachguard-backend/internal/adapter/storage/redis"
	"breachguard-backend/internal/core/domain"
	"breachguard-backend/internal/core/ports"
	"breachguard-backend/internal/service"
	"breachguard-backend/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCallbackSecret = "test-cb-secret"

// stubMpesaClient accepts every push and hands out sequential checkout ids.
type stubMpesaClient struct {
	mu    sync.Mutex
	calls int
	last  ports.STKPushRequest
}

func (s *stubMpesaClient) InitiateSTKPush(_ context.Context, req ports.STKPushRequest) (*ports.STKPushResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.last = req
	return &ports.STKPushResult{
		CheckoutRequestID: fmt.Sprintf("ws_CO_TEST%04d", s.calls),
		MerchantRequestID: fmt.Sprintf("29115-TEST%04d", s.calls),
		CustomerMessage:   "Success. Request accepted for processing",
	}, nil
}

// testApp builds the full application stack on in-memory storage:
// real HTTP layer, middleware, handlers, and services, with miniredis
// backing the rate limiter and map-based repos backing persistence.
type testApp struct {
	server      *httptest.Server
	redis       *miniredis.Miniredis
	mpesa       *stubMpesaClient
	paymentRepo *inMemoryPaymentRepo
	paymentSvc  ports.PaymentService
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	paymentRepo := newInMemoryPaymentRepo()
	checkLogRepo := newInMemoryCheckLogRepo()
	mpesaClient := &stubMpesaClient{}

	log := logger.New("error", false)
	reaperCfg := config.ReaperConfig{Enabled: true, Interval: 5 * time.Minute, PendingTTL: 30 * time.Minute}
	paymentSvc := service.NewPaymentService(paymentRepo, mpesaClient, reaperCfg, log)
	checkLogSvc := service.NewCheckLogService(checkLogRepo, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		PaymentSvc:     paymentSvc,
		CheckLogSvc:    checkLogSvc,
		CallbackSecret: testCallbackSecret,
		RateLimitStore: redisStorage.NewRateLimitStore(rdb),
		HealthCheckers: []ports.HealthChecker{redisStorage.NewHealthCheck(rdb)},
		Logger:         log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testApp{
		server:      server,
		redis:       mr,
		mpesa:       mpesaClient,
		paymentRepo: paymentRepo,
		paymentSvc:  paymentSvc,
	}
}

func (a *testApp) postJSON(t *testing.T, path, body string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Post(a.server.URL+path, "application/json", bytes.NewReader([]byte(body)))
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&parsed)
	return resp, parsed
}

func (a *testApp) getJSON(t *testing.T, path string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Get(a.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func (a *testApp) stats(t *testing.T) ports.CheckStats {
	t.Helper()
	resp, err := http.Get(a.server.URL + "/be/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats ports.CheckStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	return stats
}

func confirmationBody(checkoutRequestID string, resultCode int, receipt string, amount int64, phone string) string {
	metadata := ""
	if resultCode == 0 {
		metadata = fmt.Sprintf(`,
			"CallbackMetadata": {
				"Item": [
					{"Name": "Amount", "Value": %d},
					{"Name": "MpesaReceiptNumber", "Value": "%s"},
					{"Name": "PhoneNumber", "Value": %s}
				]
			}`, amount, receipt, phone)
	}
	return fmt.Sprintf(`{
		"Body": {
			"stkCallback": {
				"MerchantRequestID": "29115-TEST0001",
				"CheckoutRequestID": "%s",
				"ResultCode": %d,
				"ResultDesc": "desc"%s
			}
		}
	}`, checkoutRequestID, resultCode, metadata)
}

// --- Health ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)

	resp, body := app.getJSON(t, "/be/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

// --- Check log sink ---

func TestIntegration_EmailCheckIncrementsStatsByOne(t *testing.T) {
	app := newTestApp(t)

	before := app.stats(t)

	resp, body := app.postJSON(t, "/be/email-breach/check", `{"email_address":"user@example.com"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])

	after := app.stats(t)
	assert.Equal(t, before.EmailBreachChecks+1, after.EmailBreachChecks)
	assert.Equal(t, before.MalwareScans, after.MalwareScans)
}

func TestIntegration_DuplicateEmailsProduceIndependentRows(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 2; i++ {
		resp, _ := app.postJSON(t, "/be/email-breach/check", `{"email_address":"same@example.com"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	stats := app.stats(t)
	assert.Equal(t, int64(2), stats.EmailBreachChecks)
}

func TestIntegration_MalformedEmailRejectedNoRow(t *testing.T) {
	app := newTestApp(t)

	resp, _ := app.postJSON(t, "/be/email-breach/check", `{"email_address":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	stats := app.stats(t)
	assert.Zero(t, stats.EmailBreachChecks)
}

func TestIntegration_MalwareScanSplitSumsToTotal(t *testing.T) {
	app := newTestApp(t)

	targets := []string{
		"https://evil.example.com/a",
		"https://evil.example.com/b",
		"invoice.pdf.exe",
		"ftp://not-http.example.com", // no http(s) prefix: counted as file
	}
	for _, target := range targets {
		body := fmt.Sprintf(`{"url_or_file_name":%q}`, target)
		resp, _ := app.postJSON(t, "/be/malware-scan/check", body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	stats := app.stats(t)
	assert.Equal(t, int64(2), stats.MalwareURLScans)
	assert.Equal(t, int64(2), stats.MalwareFileScans)
	assert.Equal(t, stats.MalwareURLScans+stats.MalwareFileScans, stats.MalwareScans)
}

// --- Payment lifecycle ---

func TestIntegration_PaymentLifecycle(t *testing.T) {
	app := newTestApp(t)

	// Initiate with a local-form phone number.
	resp, body := app.postJSON(t, "/payments/initiate", `{"phone_number":"0712345678","amount":10}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	checkoutID := data["checkout_request_id"].(string)
	require.NotEmpty(t, checkoutID)

	// The provider saw the normalized MSISDN.
	assert.Equal(t, "254712345678", app.mpesa.last.PhoneNumber)

	// Polling before any callback reads as pending, never failed.
	resp, status := app.getJSON(t, "/payments/status/"+checkoutID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pending", status["status"])

	// Provider confirms.
	resp, ack := app.postJSON(t,
		"/mpesa/callback/"+testCallbackSecret+"/confirmation",
		confirmationBody(checkoutID, 0, "ABC123", 10, "254712345678"))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), ack["ResultCode"])

	// Status now reports completion with the receipt.
	resp, status = app.getJSON(t, "/payments/status/"+checkoutID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "completed", status["status"])
	assert.Equal(t, "ABC123", status["mpesa_receipt_number"])
	assert.Equal(t, float64(10), status["amount"])
	assert.Equal(t, "254712345678", status["phone_number"])
}

func TestIntegration_FailedCallbackHasNoReceipt(t *testing.T) {
	app := newTestApp(t)

	_, body := app.postJSON(t, "/payments/initiate", `{"phone_number":"0712345678","amount":10}`)
	checkoutID := body["data"].(map[string]interface{})["checkout_request_id"].(string)

	resp, _ := app.postJSON(t,
		"/mpesa/callback/"+testCallbackSecret+"/confirmation",
		confirmationBody(checkoutID, 1032, "", 0, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, status := app.getJSON(t, "/payments/status/"+checkoutID)
	assert.Equal(t, "failed", status["status"])
	assert.NotContains(t, status, "mpesa_receipt_number")
}

func TestIntegration_DuplicateCallbackIsNoop(t *testing.T) {
	app := newTestApp(t)

	_, body := app.postJSON(t, "/payments/initiate", `{"phone_number":"0712345678","amount":10}`)
	checkoutID := body["data"].(map[string]interface{})["checkout_request_id"].(string)

	resp, _ := app.postJSON(t,
		"/mpesa/callback/"+testCallbackSecret+"/confirmation",
		confirmationBody(checkoutID, 0, "ABC123", 10, "254712345678"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Second delivery with a different result must not change the record.
	resp, _ = app.postJSON(t,
		"/mpesa/callback/"+testCallbackSecret+"/confirmation",
		confirmationBody(checkoutID, 1032, "", 0, ""))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, status := app.getJSON(t, "/payments/status/"+checkoutID)
	assert.Equal(t, "completed", status["status"])
	assert.Equal(t, "ABC123", status["mpesa_receipt_number"])
}

func TestIntegration_CallbackBeforeInitiationIsNotClobbered(t *testing.T) {
	app := newTestApp(t)

	// The provider's confirmation lands before our own record write.
	resp, _ := app.postJSON(t,
		"/mpesa/callback/"+testCallbackSecret+"/confirmation",
		confirmationBody("ws_CO_TEST0001", 0, "ABC123", 10, "254712345678"))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The late initiation write merges metadata without touching status.
	_, body := app.postJSON(t, "/payments/initiate", `{"phone_number":"0712345678","amount":10}`)
	checkoutID := body["data"].(map[string]interface{})["checkout_request_id"].(string)
	require.Equal(t, "ws_CO_TEST0001", checkoutID)

	_, status := app.getJSON(t, "/payments/status/"+checkoutID)
	assert.Equal(t, "completed", status["status"])
	assert.Equal(t, "ABC123", status["mpesa_receipt_number"])
}

func TestIntegration_CallbackWrongSecretRejected(t *testing.T) {
	app := newTestApp(t)

	_, body := app.postJSON(t, "/payments/initiate", `{"phone_number":"0712345678","amount":10}`)
	checkoutID := body["data"].(map[string]interface{})["checkout_request_id"].(string)

	resp, _ := app.postJSON(t,
		"/mpesa/callback/wrong-secret/confirmation",
		confirmationBody(checkoutID, 0, "ABC123", 10, "254712345678"))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, status := app.getJSON(t, "/payments/status/"+checkoutID)
	assert.Equal(t, "pending", status["status"])
}

func TestIntegration_ValidationCallbackAlwaysAccepts(t *testing.T) {
	app := newTestApp(t)

	resp, ack := app.postJSON(t,
		"/mpesa/callback/"+testCallbackSecret+"/validation",
		`{"TransactionType":"Pay Bill","TransAmount":"10.00"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), ack["ResultCode"])
}

func TestIntegration_InvalidPhoneRejected(t *testing.T) {
	app := newTestApp(t)

	resp, _ := app.postJSON(t, "/payments/initiate", `{"phone_number":"12345"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, app.mpesa.calls)
}

// --- Reaper ---

func TestIntegration_ReaperExpiresOnlyStalePending(t *testing.T) {
	app := newTestApp(t)
	ctx := context.Background()

	stale := &domain.PaymentRecord{
		CheckoutRequestID: "ws_CO_STALE",
		PhoneNumber:       "254712345678",
		Amount:            10,
		Status:            domain.PaymentStatusPending,
		CreatedAt:         time.Now().UTC().Add(-2 * time.Hour),
	}
	fresh := &domain.PaymentRecord{
		CheckoutRequestID: "ws_CO_FRESH",
		PhoneNumber:       "254712345678",
		Amount:            10,
		Status:            domain.PaymentStatusPending,
		CreatedAt:         time.Now().UTC(),
	}
	require.NoError(t, app.paymentRepo.UpsertInitiated(ctx, stale))
	require.NoError(t, app.paymentRepo.UpsertInitiated(ctx, fresh))

	n, err := app.paymentSvc.ExpireStalePending(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, status := app.getJSON(t, "/payments/status/ws_CO_STALE")
	assert.Equal(t, "failed", status["status"])
	_, status = app.getJSON(t, "/payments/status/ws_CO_FRESH")
	assert.Equal(t, "pending", status["status"])
}

// --- Rate limiting ---

func TestIntegration_RateLimiterBlocksOverLimit(t *testing.T) {
	app := newTestApp(t)

	// The public group allows 120 requests per minute per client IP.
	for i := 0; i < 120; i++ {
		resp, err := http.Get(app.server.URL + "/be/stats")
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, "request %d should pass", i+1)
	}

	resp, err := http.Get(app.server.URL + "/be/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
}

func TestIntegration_HealthSharesPublicRateLimit(t *testing.T) {
	app := newTestApp(t)

	// Health counts against the same public window as the other /be/ routes.
	for i := 0; i < 120; i++ {
		resp, err := http.Get(app.server.URL + "/be/health")
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode, "request %d should pass", i+1)
	}

	resp, err := http.Get(app.server.URL + "/be/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}
