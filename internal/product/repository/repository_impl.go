package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/campusmart/campusmart/internal/product/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ListByVendor(ctx context.Context, db *gorm.DB, vendorID snowflake.ID) ([]domain.Product, error) {
	var items []domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, vendor_id, name, price, stock_quantity, status, is_flash_sale, is_trending, created_at, updated_at
		 FROM products WHERE vendor_id = ? ORDER BY created_at ASC`,
		vendorID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Product, error) {
	var items []domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, vendor_id, name, price, stock_quantity, status, is_flash_sale, is_trending, created_at, updated_at
		 FROM products ORDER BY created_at ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
