package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/campusmart/campusmart/internal/payment/domain"
	"github.com/campusmart/campusmart/pkg/db"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByPaystackReference(ctx context.Context, conn *gorm.DB, ref string) (*domain.Payment, error) {
	var item domain.Payment
	err := conn.WithContext(ctx).Raw(
		`SELECT id, reference, paystack_reference, order_id, vendor_id, buyer_id,
			amount, currency, payment_method, status, gateway_response, metadata,
			paid_at, created_at, updated_at
		 FROM payments
		 WHERE paystack_reference = ?
		 LIMIT 1`,
		ref,
	).Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *repo) Insert(ctx context.Context, conn *gorm.DB, payment *domain.Payment) (bool, error) {
	res := conn.WithContext(ctx).Exec(
		`INSERT INTO payments (
			id, reference, paystack_reference, order_id, vendor_id, buyer_id,
			amount, currency, payment_method, status, gateway_response, metadata,
			paid_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		payment.ID,
		payment.Reference,
		payment.PaystackReference,
		payment.OrderID,
		payment.VendorID,
		payment.BuyerID,
		payment.Amount,
		payment.Currency,
		payment.PaymentMethod,
		payment.Status,
		payment.GatewayResponse,
		payment.Metadata,
		payment.PaidAt,
		payment.CreatedAt,
		payment.UpdatedAt,
	)
	if res.Error != nil {
		if db.IsDuplicateKeyErr(res.Error) {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repo) UpdateStatus(ctx context.Context, conn *gorm.DB, id snowflake.ID, status, gatewayResponse string, paidAt *time.Time) error {
	return conn.WithContext(ctx).Exec(
		`UPDATE payments
		 SET status = ?, gateway_response = ?, paid_at = COALESCE(?, paid_at), updated_at = ?
		 WHERE id = ?`,
		status,
		gatewayResponse,
		paidAt,
		time.Now().UTC(),
		id,
	).Error
}
