package repository

import (
	"context"

	"github.com/campusmart/campusmart/internal/sync/domain"
	"gorm.io/gorm"
)

type runRepo struct{}

func ProvideRuns() domain.RunRepository {
	return &runRepo{}
}

func (r *runRepo) Insert(ctx context.Context, db *gorm.DB, run *domain.SyncRun) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO sync_runs (
			id, run_id, triggered_by, started_at, finished_at,
			payments_created, payments_updated, payments_skipped, payments_failed,
			payouts_created, payouts_updated, payouts_skipped, payouts_failed,
			error
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.RunID,
		run.Trigger,
		run.StartedAt,
		run.FinishedAt,
		run.PaymentsCreated,
		run.PaymentsUpdated,
		run.PaymentsSkipped,
		run.PaymentsFailed,
		run.PayoutsCreated,
		run.PayoutsUpdated,
		run.PayoutsSkipped,
		run.PayoutsFailed,
		run.Error,
	).Error
}

func (r *runRepo) ListRecent(ctx context.Context, db *gorm.DB, limit int) ([]domain.SyncRun, error) {
	if limit <= 0 {
		limit = 20
	}
	var items []domain.SyncRun
	err := db.WithContext(ctx).Raw(
		`SELECT id, run_id, triggered_by, started_at, finished_at,
			payments_created, payments_updated, payments_skipped, payments_failed,
			payouts_created, payouts_updated, payouts_skipped, payouts_failed,
			error
		 FROM sync_runs
		 ORDER BY started_at DESC
		 LIMIT ?`,
		limit,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
