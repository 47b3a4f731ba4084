package domain

import (
	"net/url"
	"strings"
	"time"
)

// CheckKind classifies a logged security check.
type CheckKind string

const (
	CheckKindEmail CheckKind = "EMAIL"
	CheckKindURL   CheckKind = "URL"
	CheckKindFile  CheckKind = "FILE"
)

// CheckLogEntry is an append-only record of one breach or malware check.
// Entries are never updated or deleted, and duplicate submissions produce
// independent rows.
type CheckLogEntry struct {
	ID        int64     `json:"id"`
	Kind      CheckKind `json:"kind"`
	Value     string    `json:"value"` // sanitized before persistence
	ScanType  *string   `json:"scan_type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ClassifyScanTarget decides whether a malware-scan input is a URL or a
// file name. A value counts as a URL when it carries an http(s) prefix
// and parses as one; everything else is treated as a file name.
func ClassifyScanTarget(value string) CheckKind {
	lower := strings.ToLower(value)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return CheckKindFile
	}
	u, err := url.Parse(value)
	if err != nil || u.Host == "" {
		return CheckKindFile
	}
	return CheckKindURL
}

// SanitizeCheckValue trims the value and escapes characters meaningful to
// the storage layer's query syntax. Parameterized queries already prevent
// injection; this is defense in depth for values that later feed LIKE
// patterns or ad-hoc reporting.
func SanitizeCheckValue(value string) string {
	s := strings.TrimSpace(value)
	replacer := strings.NewReplacer(
		`\`, `\\`,
		`%`, `\%`,
		`_`, `\_`,
		`'`, `''`,
	)
	return replacer.Replace(s)
}
