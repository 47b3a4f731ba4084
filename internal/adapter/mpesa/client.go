package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"breachguard-backend/config"
	"breachguard-backend/internal/core/ports"
	"breachguard-backend/pkg/apperror"
	"breachguard-backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	tokenPath   = "/oauth/v1/generate?grant_type=client_credentials"
	stkPushPath = "/mpesa/stkpush/v1/processrequest"

	// Daraja password timestamp layout: YYYYMMDDHHmmss.
	timestampLayout = "20060102150405"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.MpesaClient against the Daraja REST API.
//
// The OAuth token is fetched fresh on every initiation. Tokens are valid
// for an hour, but this service initiates payments rarely enough that
// caching buys nothing and stale-token handling is one more failure mode.
type Client struct {
	cfg        config.MpesaConfig
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a Daraja API client for the configured environment.
func NewClient(cfg config.MpesaConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		cfg:        cfg,
		baseURL:    cfg.BaseURL(),
		httpClient: httpClient,
		log:        log,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int64  `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type stkPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
	// Error body fields, present on rejection.
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// InitiateSTKPush implements ports.MpesaClient.
func (c *Client) InitiateSTKPush(ctx context.Context, req ports.STKPushRequest) (*ports.STKPushResult, error) {
	if !c.cfg.HasCredentials() {
		if c.cfg.IsProduction() {
			return nil, apperror.ErrMissingCredentials()
		}
		return c.simulate(req), nil
	}
	if c.cfg.CallbackURL == "" {
		return nil, apperror.ErrMissingCallbackURL()
	}

	token, err := c.fetchToken(ctx)
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().Format(timestampLayout)
	password := base64.StdEncoding.EncodeToString(
		[]byte(c.cfg.Shortcode + c.cfg.Passkey + timestamp),
	)

	payload := stkPushRequest{
		BusinessShortCode: c.cfg.Shortcode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            req.Amount,
		PartyA:            req.PhoneNumber,
		PartyB:            c.cfg.Shortcode,
		PhoneNumber:       req.PhoneNumber,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  req.AccountReference,
		TransactionDesc:   req.Description,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("marshal stk push request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+stkPushPath, bytes.NewReader(body))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("build stk push request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, apperror.ErrProviderUnreachable(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.ErrProviderUnreachable(fmt.Errorf("read stk push response: %w", err))
	}

	var pushResp stkPushResponse
	if err := json.Unmarshal(respBody, &pushResp); err != nil {
		return nil, apperror.ErrProviderRejected(fmt.Sprintf("unparseable response (HTTP %d)", resp.StatusCode))
	}

	if resp.StatusCode != http.StatusOK || pushResp.ResponseCode != "0" {
		detail := pushResp.ErrorMessage
		if detail == "" {
			detail = pushResp.ResponseDescription
		}
		c.log.Warn().
			Int("http_status", resp.StatusCode).
			Str("error_code", pushResp.ErrorCode).
			Str("detail", detail).
			Msg("stk push rejected by provider")
		return nil, apperror.ErrProviderRejected(detail)
	}

	c.log.Info().
		Str("checkout_request_id", pushResp.CheckoutRequestID).
		Str("merchant_request_id", pushResp.MerchantRequestID).
		Msg("stk push accepted")

	return &ports.STKPushResult{
		CheckoutRequestID: pushResp.CheckoutRequestID,
		MerchantRequestID: pushResp.MerchantRequestID,
		CustomerMessage:   pushResp.CustomerMessage,
	}, nil
}

// fetchToken performs the OAuth client-credentials exchange.
func (c *Client) fetchToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+tokenPath, nil)
	if err != nil {
		return "", apperror.InternalError(fmt.Errorf("build token request: %w", err))
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperror.ErrProviderUnreachable(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", apperror.ErrProviderAuthFailed(fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, body))
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", apperror.ErrProviderAuthFailed(fmt.Errorf("decode token response: %w", err))
	}
	if tok.AccessToken == "" {
		return "", apperror.ErrProviderAuthFailed(fmt.Errorf("empty access token"))
	}
	return tok.AccessToken, nil
}

// simulate returns a fake acceptance for local development in sandbox
// mode without credentials. No outbound call is made and no callback
// will ever arrive; the record stays PENDING until the reaper expires it.
func (c *Client) simulate(req ports.STKPushRequest) *ports.STKPushResult {
	id := uuid.New().String()
	c.log.Warn().
		Str("phone", logger.Redact(req.PhoneNumber)).
		Int64("amount", req.Amount).
		Msg("mpesa credentials absent, returning simulated stk push acceptance")
	return &ports.STKPushResult{
		CheckoutRequestID: "SIM-" + id,
		MerchantRequestID: "SIM-" + id,
		CustomerMessage:   "Simulated request accepted for processing",
	}
}
