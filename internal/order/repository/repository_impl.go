package repository

import (
	"context"

	"github.com/campusmart/campusmart/internal/order/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, order *domain.Order) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO orders (id, buyer_id, vendor_id, product_id, quantity, total_amount, status, shipping_address, phone, notes, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.ID,
		order.BuyerID,
		order.VendorID,
		order.ProductID,
		order.Quantity,
		order.TotalAmount,
		order.Status,
		order.ShippingAddress,
		order.Phone,
		order.Notes,
		order.CreatedAt,
		order.UpdatedAt,
	).Error
}
