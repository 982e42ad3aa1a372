package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/campusmart/campusmart/internal/payout/domain"
	"github.com/campusmart/campusmart/pkg/db"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByTransactionID(ctx context.Context, conn *gorm.DB, transactionID string) (*domain.Payout, error) {
	var item domain.Payout
	err := conn.WithContext(ctx).Raw(
		`SELECT id, vendor_id, amount, status, momo_number, transaction_id, created_at, updated_at
		 FROM payouts
		 WHERE transaction_id = ?
		 LIMIT 1`,
		transactionID,
	).Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, payout *domain.Payout) (bool, error) {
	res := conn.WithContext(ctx).Exec(
		`INSERT INTO payouts (id, vendor_id, amount, status, momo_number, transaction_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		payout.ID,
		payout.VendorID,
		payout.Amount,
		payout.Status,
		payout.MomoNumber,
		payout.TransactionID,
		payout.CreatedAt,
		payout.UpdatedAt,
	)
	if res.Error != nil {
		if db.IsDuplicateKeyErr(res.Error) {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repo) UpdateStatus(ctx context.Context, conn *gorm.DB, id snowflake.ID, status string) error {
	return conn.WithContext(ctx).Exec(
		`UPDATE payouts SET status = ?, updated_at = ? WHERE id = ?`,
		status,
		time.Now().UTC(),
		id,
	).Error
}
