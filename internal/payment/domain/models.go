package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	StatusSuccess   = "success"
	StatusPending   = "pending"
	StatusFailed    = "failed"
	StatusAbandoned = "abandoned"
)

// Payment mirrors one gateway transaction. PaystackReference is the
// idempotency key: at most one row per external transaction reference.
type Payment struct {
	ID                snowflake.ID    `gorm:"primaryKey" json:"id"`
	Reference         string          `gorm:"not null" json:"reference"`
	PaystackReference string          `gorm:"column:paystack_reference;not null;uniqueIndex" json:"paystack_reference"`
	OrderID           snowflake.ID    `gorm:"not null;index" json:"order_id"`
	VendorID          snowflake.ID    `gorm:"not null;index" json:"vendor_id"`
	BuyerID           snowflake.ID    `gorm:"not null;index" json:"buyer_id"`
	Amount            decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Currency          string          `gorm:"not null" json:"currency"`
	PaymentMethod     string          `gorm:"column:payment_method" json:"payment_method"`
	Status            string          `gorm:"type:text;not null" json:"status"`
	GatewayResponse   string          `gorm:"column:gateway_response" json:"gateway_response"`
	Metadata          datatypes.JSON  `gorm:"type:jsonb" json:"metadata,omitempty"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
	CreatedAt         time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Payment) TableName() string { return "payments" }
