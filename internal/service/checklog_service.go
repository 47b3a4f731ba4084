package service

import (
	"context"
	"time"

	"breachguard-backend/internal/core/domain"
	"breachguard-backend/internal/core/ports"
	"breachguard-backend/pkg/apperror"
	"breachguard-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

const (
	statsCacheKey = "check_stats"
	statsCacheTTL = 30 * time.Second
)

type checkLogService struct {
	repo     ports.CheckLogRepository
	validate *validator.Validate
	cache    *gocache.Cache
	log      zerolog.Logger
}

// NewCheckLogService creates the check log service. Stats reads are
// cached briefly so the public counter endpoint cannot hammer the
// database.
func NewCheckLogService(repo ports.CheckLogRepository, log zerolog.Logger) ports.CheckLogService {
	return &checkLogService{
		repo:     repo,
		validate: validator.New(),
		cache:    gocache.New(statsCacheTTL, 2*statsCacheTTL),
		log:      log,
	}
}

// RecordEmailCheck logs one breach lookup. The row is append-only, so
// repeated checks of the same address each produce their own entry.
func (s *checkLogService) RecordEmailCheck(ctx context.Context, email string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return apperror.ErrInvalidEmail()
	}

	entry := &domain.CheckLogEntry{
		Kind:      domain.CheckKindEmail,
		Value:     domain.SanitizeCheckValue(email),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	s.cache.Delete(statsCacheKey)
	s.log.Info().
		Str("email", logger.Redact(email)).
		Msg("email breach check recorded")
	return nil
}

// RecordMalwareScan classifies the target as a URL or a file name, logs
// it, and returns the classification.
func (s *checkLogService) RecordMalwareScan(ctx context.Context, target string, scanType string) (domain.CheckKind, error) {
	value := domain.SanitizeCheckValue(target)
	if value == "" {
		return "", apperror.ErrInvalidScanTarget()
	}

	kind := domain.ClassifyScanTarget(target)
	entry := &domain.CheckLogEntry{
		Kind:      kind,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}
	if scanType != "" {
		st := scanType
		entry.ScanType = &st
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		return "", apperror.ErrDatabaseError(err)
	}

	s.cache.Delete(statsCacheKey)
	s.log.Info().
		Str("kind", string(kind)).
		Msg("malware scan check recorded")
	return kind, nil
}

// Stats returns the public aggregate counters, served from a short-lived
// cache.
func (s *checkLogService) Stats(ctx context.Context) (*ports.CheckStats, error) {
	if cached, ok := s.cache.Get(statsCacheKey); ok {
		return cached.(*ports.CheckStats), nil
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	s.cache.Set(statsCacheKey, stats, gocache.DefaultExpiration)
	return stats, nil
}
