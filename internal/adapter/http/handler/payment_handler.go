package handler

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"breachguard-backend/internal/adapter/http/dto"
	"breachguard-backend/internal/core/ports"
	"breachguard-backend/pkg/apperror"
	"breachguard-backend/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// defaultReportAmount is the price of one breach report in whole KES.
const defaultReportAmount int64 = 10

// PaymentHandler handles payment initiation, status polling, and the
// provider's asynchronous callbacks.
type PaymentHandler struct {
	paymentSvc     ports.PaymentService
	callbackSecret string
	log            zerolog.Logger
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService, callbackSecret string, log zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentSvc:     paymentSvc,
		callbackSecret: callbackSecret,
		log:            log,
	}
}

// InitiatePayment handles POST /payments/initiate.
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var req dto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, bindingError(err))
		return
	}
	dto.SanitizeStruct(&req)

	if req.Amount == 0 {
		req.Amount = defaultReportAmount
	}
	if req.AccountReference == "" {
		req.AccountReference = "BreachReport"
	}
	if req.Description == "" {
		req.Description = "Detailed breach report"
	}

	result, err := h.paymentSvc.InitiatePayment(c.Request.Context(), ports.InitiatePaymentRequest{
		PhoneNumber:      req.PhoneNumber,
		Amount:           req.Amount,
		AccountReference: req.AccountReference,
		Description:      req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.InitiatePaymentResponse{
		CheckoutRequestID: result.CheckoutRequestID,
		MerchantRequestID: result.MerchantRequestID,
		CustomerMessage:   result.CustomerMessage,
	})
}

// GetStatus handles GET /payments/status/:checkoutRequestID.
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	checkoutRequestID := c.Param("checkoutRequestID")
	if checkoutRequestID == "" {
		response.Error(c, apperror.Validation("checkout request id is required"))
		return
	}

	status, err := h.paymentSvc.GetStatus(c.Request.Context(), checkoutRequestID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// Confirmation handles POST /mpesa/callback/:secret/confirmation.
//
// The provider's delivery contract is fire and forget with limited
// retry, so the acknowledgement is fixed: internal failures are logged
// but never change the response, which would only trigger re-delivery
// storms. Only the path secret gates the endpoint.
func (h *PaymentHandler) Confirmation(c *gin.Context) {
	if !h.secretMatches(c.Param("secret")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var env dto.CallbackEnvelope
	if err := c.ShouldBindJSON(&env); err != nil {
		h.log.Warn().Err(err).Msg("unparseable mpesa callback body")
		c.JSON(http.StatusOK, dto.CallbackAck{ResultCode: 0, ResultDesc: "Accepted"})
		return
	}

	if err := h.paymentSvc.HandleCallback(c.Request.Context(), env.ToCallbackResult()); err != nil {
		h.log.Error().Err(err).
			Str("checkout_request_id", env.Body.StkCallback.CheckoutRequestID).
			Msg("mpesa callback processing failed")
	}

	c.JSON(http.StatusOK, dto.CallbackAck{ResultCode: 0, ResultDesc: "Accepted"})
}

// Validation handles POST /mpesa/callback/:secret/validation. This
// deployment accepts every transaction; validation is a formality the
// provider requires to be registered.
func (h *PaymentHandler) Validation(c *gin.Context) {
	if !h.secretMatches(c.Param("secret")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, dto.CallbackAck{ResultCode: 0, ResultDesc: "Accepted"})
}

// bindingError maps validator failures to field-specific errors so the
// caller can tell a bad phone from a bad amount.
func bindingError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Field() {
			case "PhoneNumber":
				return apperror.ErrInvalidPhone()
			case "Amount":
				return apperror.ErrInvalidAmount()
			}
		}
	}
	return apperror.Validation(err.Error())
}

func (h *PaymentHandler) secretMatches(got string) bool {
	if h.callbackSecret == "" {
		return true // unset secret disables the gate (local development)
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.callbackSecret)) == 1
}

// HealthCheck handles GET /be/health, verifying all dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "ok"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
