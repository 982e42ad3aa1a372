package paystack

import (
	"github.com/campusmart/campusmart/internal/config"
	syncdomain "github.com/campusmart/campusmart/internal/sync/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("paystack",
	fx.Provide(func(cfg config.Config) syncdomain.Ledger {
		return NewClient(cfg.Paystack)
	}),
)
