package service

import (
	"context"
	"time"

	"breachguard-backend/config"
	"breachguard-backend/internal/core/domain"
	"breachguard-backend/internal/core/ports"
	"breachguard-backend/pkg/apperror"
	"breachguard-backend/pkg/logger"

	"github.com/rs/zerolog"
)

// fallbackMatchWindow bounds how far back the phone+amount fallback
// match looks when a callback arrives without a checkout identifier.
const fallbackMatchWindow = 15 * time.Minute

type paymentService struct {
	repo   ports.PaymentRepository
	mpesa  ports.MpesaClient
	reaper config.ReaperConfig
	log    zerolog.Logger
}

// NewPaymentService creates the payment lifecycle service.
func NewPaymentService(
	repo ports.PaymentRepository,
	mpesa ports.MpesaClient,
	reaper config.ReaperConfig,
	log zerolog.Logger,
) ports.PaymentService {
	return &paymentService{
		repo:   repo,
		mpesa:  mpesa,
		reaper: reaper,
		log:    log,
	}
}

// InitiatePayment normalizes and validates the caller's input, submits
// the STK push, and persists the PENDING record keyed by the provider's
// CheckoutRequestID.
func (s *paymentService) InitiatePayment(ctx context.Context, req ports.InitiatePaymentRequest) (*ports.STKPushResult, error) {
	phone, err := domain.NormalizeMSISDN(req.PhoneNumber)
	if err != nil {
		return nil, apperror.ErrInvalidPhone()
	}
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	result, err := s.mpesa.InitiateSTKPush(ctx, ports.STKPushRequest{
		PhoneNumber:      phone,
		Amount:           req.Amount,
		AccountReference: req.AccountReference,
		Description:      req.Description,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rec := &domain.PaymentRecord{
		CheckoutRequestID: result.CheckoutRequestID,
		MerchantRequestID: result.MerchantRequestID,
		PhoneNumber:       phone,
		Amount:            req.Amount,
		AccountReference:  req.AccountReference,
		Description:       req.Description,
		Status:            domain.PaymentStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repo.UpsertInitiated(ctx, rec); err != nil {
		// The push is already on the customer's phone. Losing the record
		// is bad, but failing the request now would strand a payment the
		// customer may still complete. Log loudly and return the IDs.
		s.log.Error().Err(err).
			Str("checkout_request_id", result.CheckoutRequestID).
			Msg("failed to persist initiated payment")
	} else {
		s.log.Info().
			Str("checkout_request_id", result.CheckoutRequestID).
			Str("phone", logger.Redact(phone)).
			Int64("amount", req.Amount).
			Msg("payment initiated")
	}

	return result, nil
}

// GetStatus returns the poller's view of a payment. An unknown
// CheckoutRequestID reads as pending: the callback may simply not have
// landed yet, and the poller retries.
func (s *paymentService) GetStatus(ctx context.Context, checkoutRequestID string) (*ports.PaymentStatusResult, error) {
	rec, err := s.repo.GetByCheckoutID(ctx, checkoutRequestID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if rec == nil || rec.Status == domain.PaymentStatusPending {
		return &ports.PaymentStatusResult{Status: "pending"}, nil
	}

	out := &ports.PaymentStatusResult{
		Amount:      &rec.Amount,
		PhoneNumber: &rec.PhoneNumber,
		ResultDesc:  rec.ResultDesc,
	}
	if rec.Status == domain.PaymentStatusSuccess {
		out.Status = "completed"
		out.ReceiptNumber = rec.ReceiptNumber
	} else {
		out.Status = "failed"
	}
	return out, nil
}

// HandleCallback applies a provider confirmation to its payment record.
// Duplicates and out-of-order deliveries are no-ops. A callback without
// a CheckoutRequestID falls back to matching a unique recent PENDING
// record on phone+amount; an ambiguous match is rejected rather than
// guessed at.
func (s *paymentService) HandleCallback(ctx context.Context, result domain.CallbackResult) error {
	if result.CheckoutRequestID == "" {
		matched, err := s.resolveByPhoneAmount(ctx, result)
		if err != nil {
			return err
		}
		result.CheckoutRequestID = matched
	}

	applied, err := s.repo.ApplyResult(ctx, result)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if !applied {
		s.log.Info().
			Str("checkout_request_id", result.CheckoutRequestID).
			Int("result_code", result.ResultCode).
			Msg("callback for already-terminal payment ignored")
		return nil
	}

	evt := s.log.Info().
		Str("checkout_request_id", result.CheckoutRequestID).
		Str("status", string(result.TerminalStatus())).
		Int("result_code", result.ResultCode)
	if result.Succeeded() {
		evt = evt.Str("receipt", result.ReceiptNumber)
	}
	evt.Msg("payment callback applied")
	return nil
}

func (s *paymentService) resolveByPhoneAmount(ctx context.Context, result domain.CallbackResult) (string, error) {
	if result.PhoneNumber == "" || result.Amount <= 0 {
		return "", apperror.ErrAmbiguousCallbackMatch()
	}
	phone, err := domain.NormalizeMSISDN(result.PhoneNumber)
	if err != nil {
		return "", apperror.ErrInvalidPhone()
	}

	since := time.Now().UTC().Add(-fallbackMatchWindow)
	candidates, err := s.repo.FindPendingByPhoneAmount(ctx, phone, result.Amount, since)
	if err != nil {
		return "", apperror.ErrDatabaseError(err)
	}
	if len(candidates) != 1 {
		s.log.Warn().
			Str("phone", logger.Redact(phone)).
			Int64("amount", result.Amount).
			Int("candidates", len(candidates)).
			Msg("callback fallback match is not unique")
		return "", apperror.ErrAmbiguousCallbackMatch()
	}

	s.log.Info().
		Str("checkout_request_id", candidates[0].CheckoutRequestID).
		Str("phone", logger.Redact(phone)).
		Msg("callback matched pending payment by phone and amount")
	return candidates[0].CheckoutRequestID, nil
}

// ExpireStalePending transitions PENDING records older than the
// configured TTL to EXPIRED.
func (s *paymentService) ExpireStalePending(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().Add(-s.reaper.PendingTTL)
	n, err := s.repo.ExpireStalePending(ctx, cutoff)
	if err != nil {
		return 0, apperror.ErrDatabaseError(err)
	}
	if n > 0 {
		s.log.Info().Int64("expired", n).Msg("stale pending payments expired")
	}
	return n, nil
}
