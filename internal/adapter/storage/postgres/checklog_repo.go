package postgres

import (
	"context"
	"fmt"

	"breachguard-backend/internal/core/domain"
	"breachguard-backend/internal/core/ports"
)

// CheckLogRepo implements ports.CheckLogRepository.
type CheckLogRepo struct {
	pool Pool
}

// NewCheckLogRepo creates a new CheckLogRepo.
func NewCheckLogRepo(pool Pool) *CheckLogRepo {
	return &CheckLogRepo{pool: pool}
}

// Insert appends one check log row. The table is append-only; duplicates
// are expected and kept.
func (r *CheckLogRepo) Insert(ctx context.Context, entry *domain.CheckLogEntry) error {
	query := `INSERT INTO check_logs (kind, value, scan_type, created_at)
		VALUES ($1, $2, $3, $4) RETURNING id`

	err := r.pool.QueryRow(ctx, query, entry.Kind, entry.Value, entry.ScanType, entry.CreatedAt).
		Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert check log: %w", err)
	}
	return nil
}

// Stats retrieves the public aggregate counters in one query.
func (r *CheckLogRepo) Stats(ctx context.Context) (*ports.CheckStats, error) {
	query := `SELECT
		COUNT(*) FILTER (WHERE kind = 'EMAIL') AS email_checks,
		COUNT(*) FILTER (WHERE kind IN ('URL', 'FILE')) AS malware_scans,
		COUNT(*) FILTER (WHERE kind = 'URL') AS url_scans,
		COUNT(*) FILTER (WHERE kind = 'FILE') AS file_scans
		FROM check_logs`

	stats := &ports.CheckStats{}
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.EmailBreachChecks, &stats.MalwareScans,
		&stats.MalwareURLScans, &stats.MalwareFileScans,
	)
	if err != nil {
		return nil, fmt.Errorf("get check stats: %w", err)
	}
	return stats, nil
}
