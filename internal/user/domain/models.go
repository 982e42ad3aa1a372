package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// User is read-only to the reconciliation service. Registration and profile
// management belong to the storefront application.
type User struct {
	ID                 snowflake.ID `gorm:"primaryKey" json:"id"`
	Email              string       `gorm:"not null;uniqueIndex" json:"email"`
	Name               string       `gorm:"not null" json:"name"`
	Role               Role         `gorm:"type:text;not null" json:"role"`
	PaystackSubaccount string       `gorm:"column:paystack_subaccount" json:"paystack_subaccount,omitempty"`
	MomoNumber         string       `gorm:"column:momo_number" json:"momo_number,omitempty"`
	CreatedAt          time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) IsVendor() bool { return u.Role == RoleVendor }
