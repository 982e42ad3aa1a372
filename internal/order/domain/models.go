package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

type Order struct {
	ID              snowflake.ID    `gorm:"primaryKey" json:"id"`
	BuyerID         snowflake.ID    `gorm:"not null;index" json:"buyer_id"`
	VendorID        snowflake.ID    `gorm:"not null;index" json:"vendor_id"`
	ProductID       snowflake.ID    `gorm:"not null" json:"product_id"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_amount"`
	Status          string          `gorm:"type:text;not null" json:"status"`
	ShippingAddress string          `gorm:"column:shipping_address" json:"shipping_address"`
	Phone           string          `json:"phone"`
	Notes           string          `json:"notes"`
	CreatedAt       time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }
