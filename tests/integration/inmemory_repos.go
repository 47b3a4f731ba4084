package integration

import (
	"context"
	"errors"
	"sync"
	"time"

	"breachguard-backend/internal/core/domain"
	"breachguard-backend/internal/core/ports"
)

// In-memory repository implementations mirroring the SQL semantics,
// including the conditional terminal transition, the
// initiation-never-clobbers-result merge, and the schema's amount
// constraint.

// errNegativeAmount mirrors the payments table CHECK (amount >= 0).
// Zero must stay legal: failed callbacks carry no metadata, and the
// upsert's candidate tuple is checked before conflict arbitration.
var errNegativeAmount = errors.New("payments amount check violated")

type inMemoryPaymentRepo struct {
	mu      sync.RWMutex
	records map[string]*domain.PaymentRecord
}

func newInMemoryPaymentRepo() *inMemoryPaymentRepo {
	return &inMemoryPaymentRepo{records: make(map[string]*domain.PaymentRecord)}
}

func (r *inMemoryPaymentRepo) UpsertInitiated(_ context.Context, rec *domain.PaymentRecord) error {
	if rec.Amount < 0 {
		return errNegativeAmount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.records[rec.CheckoutRequestID]; ok {
		// Merge initiation metadata only; status and result fields stay.
		existing.MerchantRequestID = rec.MerchantRequestID
		existing.PhoneNumber = rec.PhoneNumber
		existing.Amount = rec.Amount
		existing.AccountReference = rec.AccountReference
		existing.Description = rec.Description
		return nil
	}

	cp := *rec
	r.records[rec.CheckoutRequestID] = &cp
	return nil
}

func (r *inMemoryPaymentRepo) ApplyResult(_ context.Context, result domain.CallbackResult) (bool, error) {
	if result.Amount < 0 {
		return false, errNegativeAmount
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	status := result.TerminalStatus()
	code := result.ResultCode
	desc := result.ResultDesc
	var receipt *string
	if result.Succeeded() {
		rn := result.ReceiptNumber
		receipt = &rn
	}

	existing, ok := r.records[result.CheckoutRequestID]
	if !ok {
		r.records[result.CheckoutRequestID] = &domain.PaymentRecord{
			CheckoutRequestID: result.CheckoutRequestID,
			MerchantRequestID: result.MerchantRequestID,
			PhoneNumber:       result.PhoneNumber,
			Amount:            result.Amount,
			Status:            status,
			ResultCode:        &code,
			ResultDesc:        &desc,
			ReceiptNumber:     receipt,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		return true, nil
	}

	if existing.Status != domain.PaymentStatusPending {
		return false, nil
	}

	existing.Status = status
	existing.ResultCode = &code
	existing.ResultDesc = &desc
	existing.ReceiptNumber = receipt
	existing.UpdatedAt = now
	return true, nil
}

func (r *inMemoryPaymentRepo) GetByCheckoutID(_ context.Context, checkoutRequestID string) (*domain.PaymentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[checkoutRequestID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *inMemoryPaymentRepo) FindPendingByPhoneAmount(_ context.Context, phoneNumber string, amount int64, since time.Time) ([]domain.PaymentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.PaymentRecord
	for _, rec := range r.records {
		if rec.Status == domain.PaymentStatusPending &&
			rec.PhoneNumber == phoneNumber &&
			rec.Amount == amount &&
			!rec.CreatedAt.Before(since) {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (r *inMemoryPaymentRepo) ExpireStalePending(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, rec := range r.records {
		if rec.Status == domain.PaymentStatusPending && rec.CreatedAt.Before(cutoff) {
			rec.Status = domain.PaymentStatusExpired
			rec.UpdatedAt = time.Now().UTC()
			n++
		}
	}
	return n, nil
}

type inMemoryCheckLogRepo struct {
	mu      sync.RWMutex
	entries []domain.CheckLogEntry
	nextID  int64
}

func newInMemoryCheckLogRepo() *inMemoryCheckLogRepo {
	return &inMemoryCheckLogRepo{nextID: 1}
}

func (r *inMemoryCheckLogRepo) Insert(_ context.Context, entry *domain.CheckLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *inMemoryCheckLogRepo) Stats(_ context.Context) (*ports.CheckStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := &ports.CheckStats{}
	for _, e := range r.entries {
		switch e.Kind {
		case domain.CheckKindEmail:
			stats.EmailBreachChecks++
		case domain.CheckKindURL:
			stats.MalwareURLScans++
			stats.MalwareScans++
		case domain.CheckKindFile:
			stats.MalwareFileScans++
			stats.MalwareScans++
		}
	}
	return stats, nil
}
