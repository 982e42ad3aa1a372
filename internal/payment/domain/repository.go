package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	FindByPaystackReference(ctx context.Context, db *gorm.DB, ref string) (*Payment, error)
	// Insert reports whether a row was written. A duplicate paystack
	// reference is not an error; it returns (false, nil) so re-runs stay
	// idempotent even when two syncs race.
	Insert(ctx context.Context, db *gorm.DB, payment *Payment) (bool, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status, gatewayResponse string, paidAt *time.Time) error
}
