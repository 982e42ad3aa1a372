package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

const (
	StatusSuccess = "success"
	StatusPending = "pending"
)

// Payout mirrors one gateway transfer to a vendor. TransactionID is the
// idempotency key: at most one row per external transfer reference.
type Payout struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id"`
	VendorID      snowflake.ID    `gorm:"not null;index" json:"vendor_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Status        string          `gorm:"type:text;not null" json:"status"`
	MomoNumber    string          `gorm:"column:momo_number" json:"momo_number"`
	TransactionID string          `gorm:"column:transaction_id;not null;uniqueIndex" json:"transaction_id"`
	CreatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Payout) TableName() string { return "payouts" }
