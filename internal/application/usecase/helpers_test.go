package usecase_test

import (
	"time"

	"github.com/jhoicas/storesage/internal/application/usecase"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() usecase.Clock {
	return func() time.Time { return fixedNow }
}

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }
