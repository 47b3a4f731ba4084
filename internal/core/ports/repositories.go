package ports

import (
	"context"
	"time"

	"breachguard-backend/internal/core/domain"
)

// PaymentRepository defines persistence operations for payment records.
//
// Initiation and callback may race: the provider can deliver the
// confirmation before the initiating request's own write lands. Both
// paths therefore upsert by checkout_request_id, and the terminal
// transition is a conditional update that only fires while the record
// is still PENDING.
type PaymentRepository interface {
	// UpsertInitiated establishes or merges the PENDING row for a freshly
	// initiated payment. It never touches status or result fields, so a
	// callback that arrived first is not clobbered.
	UpsertInitiated(ctx context.Context, rec *domain.PaymentRecord) error

	// ApplyResult records the terminal outcome from a provider callback.
	// If no row exists yet it creates one already in its terminal state.
	// Returns false when the record was already terminal (duplicate or
	// out-of-order callback) and nothing changed.
	ApplyResult(ctx context.Context, result domain.CallbackResult) (bool, error)

	// GetByCheckoutID returns nil, nil when no record exists.
	GetByCheckoutID(ctx context.Context, checkoutRequestID string) (*domain.PaymentRecord, error)

	// FindPendingByPhoneAmount lists PENDING records matching the pair,
	// created at or after since. Used only for the fallback match when a
	// callback carries no checkout identifier.
	FindPendingByPhoneAmount(ctx context.Context, phoneNumber string, amount int64, since time.Time) ([]domain.PaymentRecord, error)

	// ExpireStalePending marks PENDING records created before the cutoff
	// as EXPIRED and returns how many rows changed.
	ExpireStalePending(ctx context.Context, cutoff time.Time) (int64, error)
}

// CheckLogRepository defines persistence for the append-only check log.
type CheckLogRepository interface {
	Insert(ctx context.Context, entry *domain.CheckLogEntry) error
	Stats(ctx context.Context) (*CheckStats, error)
}

// CheckStats holds the public aggregate counters. MalwareScans is always
// the sum of the URL and file counts.
type CheckStats struct {
	EmailBreachChecks int64 `json:"email_breach_checks"`
	MalwareScans      int64 `json:"malware_scans"`
	MalwareURLScans   int64 `json:"malware_url_scans"`
	MalwareFileScans  int64 `json:"malware_file_scans"`
}
