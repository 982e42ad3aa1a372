package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	FindByTransactionID(ctx context.Context, db *gorm.DB, transactionID string) (*Payout, error)
	Insert(ctx context.Context, db *gorm.DB, payout *Payout) (bool, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, id snowflake.ID, status string) error
}
