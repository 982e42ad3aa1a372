package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID            snowflake.ID    `gorm:"primaryKey" json:"id"`
	VendorID      snowflake.ID    `gorm:"not null;index" json:"vendor_id"`
	Name          string          `gorm:"not null" json:"name"`
	Price         decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"price"`
	StockQuantity int             `gorm:"not null;default:0" json:"stock_quantity"`
	Status        string          `gorm:"type:text;not null;default:'active'" json:"status"`

	// Storefront merchandising flags. Irrelevant to reconciliation but part
	// of the shared schema.
	IsFlashSale bool `gorm:"not null;default:false" json:"is_flash_sale"`
	IsTrending  bool `gorm:"not null;default:false" json:"is_trending"`

	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Product) TableName() string { return "products" }
