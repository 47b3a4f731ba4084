package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"breachguard-backend/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// UpsertInitiated establishes the PENDING row for a freshly initiated
// payment. If the provider's callback raced ahead and already created the
// row, only the initiation metadata is merged; status and result fields
// are left alone.
func (r *PaymentRepo) UpsertInitiated(ctx context.Context, rec *domain.PaymentRecord) error {
	query := `INSERT INTO payments (checkout_request_id, merchant_request_id, phone_number, amount,
		account_reference, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (checkout_request_id) DO UPDATE SET
			merchant_request_id = EXCLUDED.merchant_request_id,
			phone_number = EXCLUDED.phone_number,
			amount = EXCLUDED.amount,
			account_reference = EXCLUDED.account_reference,
			description = EXCLUDED.description`

	_, err := r.pool.Exec(ctx, query,
		rec.CheckoutRequestID, rec.MerchantRequestID, rec.PhoneNumber, rec.Amount,
		rec.AccountReference, rec.Description, rec.Status, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert initiated payment: %w", err)
	}
	return nil
}

// ApplyResult records the terminal outcome from a provider callback. The
// guarded update only fires while the row is still PENDING, so duplicate
// or out-of-order callbacks are no-ops. When no row exists yet (callback
// won the race against initiation) one is created directly in its
// terminal state.
func (r *PaymentRepo) ApplyResult(ctx context.Context, result domain.CallbackResult) (bool, error) {
	status := result.TerminalStatus()

	var receipt *string
	if result.Succeeded() && result.ReceiptNumber != "" {
		receipt = &result.ReceiptNumber
	}

	now := time.Now().UTC()
	query := `INSERT INTO payments (checkout_request_id, merchant_request_id, phone_number, amount,
		account_reference, description, status, result_code, result_desc, receipt_number, created_at, updated_at)
		VALUES ($1, $2, $3, $4, '', '', $5, $6, $7, $8, $9, $9)
		ON CONFLICT (checkout_request_id) DO UPDATE SET
			status = EXCLUDED.status,
			result_code = EXCLUDED.result_code,
			result_desc = EXCLUDED.result_desc,
			receipt_number = EXCLUDED.receipt_number,
			updated_at = EXCLUDED.updated_at
		WHERE payments.status = $10`

	tag, err := r.pool.Exec(ctx, query,
		result.CheckoutRequestID, result.MerchantRequestID, result.PhoneNumber, result.Amount,
		status, result.ResultCode, result.ResultDesc, receipt, now, domain.PaymentStatusPending,
	)
	if err != nil {
		return false, fmt.Errorf("apply callback result: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// GetByCheckoutID fetches a payment by its provider-issued identifier.
func (r *PaymentRepo) GetByCheckoutID(ctx context.Context, checkoutRequestID string) (*domain.PaymentRecord, error) {
	query := `SELECT checkout_request_id, merchant_request_id, phone_number, amount, account_reference,
		description, status, result_code, result_desc, receipt_number, created_at, updated_at
		FROM payments WHERE checkout_request_id = $1`

	return scanPayment(r.pool.QueryRow(ctx, query, checkoutRequestID))
}

// FindPendingByPhoneAmount lists PENDING payments matching the pair,
// newest first, created at or after since.
func (r *PaymentRepo) FindPendingByPhoneAmount(ctx context.Context, phoneNumber string, amount int64, since time.Time) ([]domain.PaymentRecord, error) {
	query := `SELECT checkout_request_id, merchant_request_id, phone_number, amount, account_reference,
		description, status, result_code, result_desc, receipt_number, created_at, updated_at
		FROM payments
		WHERE phone_number = $1 AND amount = $2 AND status = $3 AND created_at >= $4
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, phoneNumber, amount, domain.PaymentStatusPending, since)
	if err != nil {
		return nil, fmt.Errorf("find pending payments: %w", err)
	}
	defer rows.Close()

	var recs []domain.PaymentRecord
	for rows.Next() {
		var rec domain.PaymentRecord
		if err := scanPaymentInto(rows, &rec); err != nil {
			return nil, fmt.Errorf("scan pending payment row: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending payment rows: %w", err)
	}
	return recs, nil
}

// ExpireStalePending moves PENDING payments created before the cutoff to
// EXPIRED.
func (r *PaymentRepo) ExpireStalePending(ctx context.Context, cutoff time.Time) (int64, error) {
	desc := "Expired before provider confirmation"
	query := `UPDATE payments SET status = $1, result_desc = $2, updated_at = $3
		WHERE status = $4 AND created_at < $5`

	tag, err := r.pool.Exec(ctx, query,
		domain.PaymentStatusExpired, desc, time.Now().UTC(), domain.PaymentStatusPending, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("expire stale pending payments: %w", err)
	}
	return tag.RowsAffected(), nil
}

// scanPayment is a helper to scan a single row into a PaymentRecord.
func scanPayment(row pgx.Row) (*domain.PaymentRecord, error) {
	rec := &domain.PaymentRecord{}
	err := scanPaymentInto(row, rec)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return rec, nil
}

func scanPaymentInto(row pgx.Row, rec *domain.PaymentRecord) error {
	return row.Scan(
		&rec.CheckoutRequestID, &rec.MerchantRequestID, &rec.PhoneNumber, &rec.Amount,
		&rec.AccountReference, &rec.Description, &rec.Status,
		&rec.ResultCode, &rec.ResultDesc, &rec.ReceiptNumber,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
}
