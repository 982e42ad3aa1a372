package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// List returns every user. The sync engine builds its email and
	// subaccount lookup maps from a single scan; dataset size is small.
	List(ctx context.Context, db *gorm.DB) ([]User, error)
}
