package domain

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrSyncAlreadyRunning is returned when a sync is requested while another
// run holds the engine. Scheduled and admin-triggered runs never overlap.
var ErrSyncAlreadyRunning = errors.New("sync already running")

type Service interface {
	// SyncAll runs the transaction pass then the transfer pass. The report
	// covers whatever completed; a fatal error (bulk fetch, user scan)
	// aborts the remainder and is returned alongside the partial report.
	SyncAll(ctx context.Context, trigger string) (*Report, error)
	SyncPayments(ctx context.Context) (*PassReport, error)
	SyncPayouts(ctx context.Context) (*PassReport, error)
}

type RunRepository interface {
	Insert(ctx context.Context, db *gorm.DB, run *SyncRun) error
	ListRecent(ctx context.Context, db *gorm.DB, limit int) ([]SyncRun, error)
}
