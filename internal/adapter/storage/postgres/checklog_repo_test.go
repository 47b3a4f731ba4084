package postgres

import (
	"context"
	"testing"
	"time"

	"breachguard-backend/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckLogRepo_Insert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCheckLogRepo(mock)
	entry := &domain.CheckLogEntry{
		Kind:      domain.CheckKindEmail,
		Value:     "user@example.com",
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectQuery("INSERT INTO check_logs").
		WithArgs(entry.Kind, entry.Value, entry.ScanType, entry.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	err = repo.Insert(context.Background(), entry)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckLogRepo_Insert_WithScanType(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCheckLogRepo(mock)
	scanType := "quick"
	entry := &domain.CheckLogEntry{
		Kind:      domain.CheckKindURL,
		Value:     "https://example.com/download",
		ScanType:  &scanType,
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectQuery("INSERT INTO check_logs").
		WithArgs(entry.Kind, entry.Value, entry.ScanType, entry.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(7)))

	err = repo.Insert(context.Background(), entry)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckLogRepo_Stats(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCheckLogRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM check_logs").
		WillReturnRows(pgxmock.NewRows(
			[]string{"email_checks", "malware_scans", "url_scans", "file_scans"},
		).AddRow(int64(120), int64(45), int64(30), int64(15)))

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, int64(120), stats.EmailBreachChecks)
	assert.Equal(t, int64(45), stats.MalwareScans)
	assert.Equal(t, int64(30), stats.MalwareURLScans)
	assert.Equal(t, int64(15), stats.MalwareFileScans)
	// URL and file always account for every scan.
	assert.Equal(t, stats.MalwareScans, stats.MalwareURLScans+stats.MalwareFileScans)
	assert.NoError(t, mock.ExpectationsWereMet())
}
