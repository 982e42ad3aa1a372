package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/campusmart/campusmart/internal/payout/domain"
	"github.com/campusmart/campusmart/internal/payout/repository"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:payouts_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE TABLE payouts (
		id BIGINT PRIMARY KEY,
		vendor_id BIGINT NOT NULL,
		amount DECIMAL(14,2) NOT NULL,
		status TEXT NOT NULL,
		momo_number TEXT NOT NULL DEFAULT '',
		transaction_id TEXT NOT NULL UNIQUE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`).Error)
	return db
}

func newPayout(node *snowflake.Node, transactionID string) *domain.Payout {
	now := time.Now().UTC()
	return &domain.Payout{
		ID:            node.Generate(),
		VendorID:      node.Generate(),
		Amount:        decimal.RequireFromString("200.00"),
		Status:        domain.StatusPending,
		MomoNumber:    "0551234567",
		TransactionID: transactionID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestInsertAndFindByTransactionID(t *testing.T) {
	db := setupTestDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	repo := repository.Provide()
	ctx := context.Background()

	payout := newPayout(node, "TRF1")
	inserted, err := repo.Insert(ctx, db, payout)
	require.NoError(t, err)
	assert.True(t, inserted)

	found, err := repo.FindByTransactionID(ctx, db, "TRF1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, payout.ID, found.ID)
	assert.Equal(t, "0551234567", found.MomoNumber)
	assert.True(t, found.Amount.Equal(payout.Amount))

	missing, err := repo.FindByTransactionID(ctx, db, "TRF_NOPE")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestInsertDuplicateTransactionIDIsNotAnError(t *testing.T) {
	db := setupTestDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	repo := repository.Provide()
	ctx := context.Background()

	inserted, err := repo.Insert(ctx, db, newPayout(node, "TRF1"))
	require.NoError(t, err)
	require.True(t, inserted)

	inserted, err = repo.Insert(ctx, db, newPayout(node, "TRF1"))
	require.NoError(t, err)
	assert.False(t, inserted)

	var count int
	require.NoError(t, db.Raw(`SELECT COUNT(*) FROM payouts`).Scan(&count).Error)
	assert.Equal(t, 1, count)
}

func TestUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	repo := repository.Provide()
	ctx := context.Background()

	payout := newPayout(node, "TRF1")
	_, err = repo.Insert(ctx, db, payout)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, db, payout.ID, domain.StatusSuccess))

	found, err := repo.FindByTransactionID(ctx, db, "TRF1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, domain.StatusSuccess, found.Status)
}
