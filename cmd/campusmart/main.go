package main

import (
	"os"
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/campusmart/campusmart/internal/clock"
	"github.com/campusmart/campusmart/internal/config"
	"github.com/campusmart/campusmart/internal/logger"
	"github.com/campusmart/campusmart/internal/migration"
	"github.com/campusmart/campusmart/internal/order"
	"github.com/campusmart/campusmart/internal/payment"
	"github.com/campusmart/campusmart/internal/payout"
	"github.com/campusmart/campusmart/internal/paystack"
	"github.com/campusmart/campusmart/internal/product"
	"github.com/campusmart/campusmart/internal/scheduler"
	"github.com/campusmart/campusmart/internal/server"
	"github.com/campusmart/campusmart/internal/sync"
	"github.com/campusmart/campusmart/internal/user"
	"github.com/campusmart/campusmart/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		fx.Provide(newSnowflakeNode),
		db.Module,
		clock.Module,
		migration.Module,

		// Persistence gateway
		user.Module,
		product.Module,
		order.Module,
		payment.Module,
		payout.Module,

		// Reconciliation
		paystack.Module,
		sync.Module,
		scheduler.Module,

		// HTTP surface
		server.Module,
	)
	app.Run()
}

func newSnowflakeNode() (*snowflake.Node, error) {
	nodeID := int64(1)
	if raw := os.Getenv("SNOWFLAKE_NODE_ID"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			nodeID = parsed
		}
	}
	return snowflake.NewNode(nodeID)
}
