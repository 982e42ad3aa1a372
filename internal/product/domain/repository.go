package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	ListByVendor(ctx context.Context, db *gorm.DB, vendorID snowflake.ID) ([]Product, error)
	// List is the fallback source for a placeholder product when the sync
	// engine backfills an order for a vendor with no products of their own.
	List(ctx context.Context, db *gorm.DB) ([]Product, error)
}
