package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/campusmart/campusmart/internal/clock"
	"github.com/campusmart/campusmart/internal/config"
	obsmetrics "github.com/campusmart/campusmart/internal/observability/metrics"
	orderdomain "github.com/campusmart/campusmart/internal/order/domain"
	paymentdomain "github.com/campusmart/campusmart/internal/payment/domain"
	payoutdomain "github.com/campusmart/campusmart/internal/payout/domain"
	productdomain "github.com/campusmart/campusmart/internal/product/domain"
	"github.com/campusmart/campusmart/internal/sync/domain"
	userdomain "github.com/campusmart/campusmart/internal/user/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Cfg      config.Config
	Ledger   domain.Ledger
	Users    userdomain.Repository
	Products productdomain.Repository
	Orders   orderdomain.Repository
	Payments paymentdomain.Repository
	Payouts  payoutdomain.Repository
	Runs     domain.RunRepository
}

// Service reconciles the gateway ledger against local payments and payouts.
// Both passes are idempotent: re-running against the same fetched set
// performs zero creates and updates only on status drift.
type Service struct {
	db       *gorm.DB
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	strict   bool
	ledger   domain.Ledger
	users    userdomain.Repository
	products productdomain.Repository
	orders   orderdomain.Repository
	payments paymentdomain.Repository
	payouts  payoutdomain.Repository
	runs     domain.RunRepository

	running atomic.Bool
}

func New(p Params) *Service {
	return &Service{
		db:       p.DB,
		log:      p.Log.Named("sync.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		strict:   p.Cfg.Sync.Strict,
		ledger:   p.Ledger,
		users:    p.Users,
		products: p.Products,
		orders:   p.Orders,
		payments: p.Payments,
		payouts:  p.Payouts,
		runs:     p.Runs,
	}
}

const (
	outcomeCreated = "created"
	outcomeUpdated = "updated"
	outcomeSkipped = "skipped"
)

func (s *Service) SyncAll(ctx context.Context, trigger string) (*domain.Report, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, domain.ErrSyncAlreadyRunning
	}
	defer s.running.Store(false)

	started := s.clock.Now()
	runID := uuid.NewString()
	log := s.log.With(zap.String("run_id", runID), zap.String("trigger", trigger))
	log.Info("sync started")

	report := &domain.Report{}
	var fatal error

	payments, err := s.syncPayments(ctx, log)
	if payments != nil {
		report.Payments = *payments
	}
	if err != nil {
		fatal = fmt.Errorf("payments pass: %w", err)
	} else {
		payouts, err := s.syncPayouts(ctx, log)
		if payouts != nil {
			report.Payouts = *payouts
		}
		if err != nil {
			fatal = fmt.Errorf("payouts pass: %w", err)
		}
	}

	finished := s.clock.Now()
	s.recordRun(ctx, runID, trigger, started, finished, report, fatal)

	m := obsmetrics.Sync()
	m.ObserveRunDuration(finished.Sub(started))
	if fatal != nil {
		m.IncRun(trigger, obsmetrics.ResultError)
		log.Error("sync failed", zap.Error(fatal))
		return report, fatal
	}
	m.IncRun(trigger, obsmetrics.ResultOK)
	log.Info("sync finished",
		zap.Int("payments_created", report.Payments.Created),
		zap.Int("payments_updated", report.Payments.Updated),
		zap.Int("payments_skipped", report.Payments.Skipped),
		zap.Int("payments_failed", report.Payments.Failed),
		zap.Int("payouts_created", report.Payouts.Created),
		zap.Int("payouts_updated", report.Payouts.Updated),
		zap.Int("payouts_skipped", report.Payouts.Skipped),
		zap.Int("payouts_failed", report.Payouts.Failed),
	)
	return report, nil
}

func (s *Service) SyncPayments(ctx context.Context) (*domain.PassReport, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, domain.ErrSyncAlreadyRunning
	}
	defer s.running.Store(false)
	return s.syncPayments(ctx, s.log)
}

func (s *Service) SyncPayouts(ctx context.Context) (*domain.PassReport, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, domain.ErrSyncAlreadyRunning
	}
	defer s.running.Store(false)
	return s.syncPayouts(ctx, s.log)
}

func (s *Service) recordRun(ctx context.Context, runID, trigger string, started, finished time.Time, report *domain.Report, fatal error) {
	run := &domain.SyncRun{
		ID:              s.genID.Generate(),
		RunID:           runID,
		Trigger:         trigger,
		StartedAt:       started,
		FinishedAt:      finished,
		PaymentsCreated: report.Payments.Created,
		PaymentsUpdated: report.Payments.Updated,
		PaymentsSkipped: report.Payments.Skipped,
		PaymentsFailed:  report.Payments.Failed,
		PayoutsCreated:  report.Payouts.Created,
		PayoutsUpdated:  report.Payouts.Updated,
		PayoutsSkipped:  report.Payouts.Skipped,
		PayoutsFailed:   report.Payouts.Failed,
	}
	if fatal != nil {
		run.Error = fatal.Error()
	}
	if err := s.runs.Insert(ctx, s.db, run); err != nil {
		s.log.Error("record sync run", zap.String("run_id", runID), zap.Error(err))
	}
}

// userIndex holds the lookup maps built from a single user scan.
type userIndex struct {
	buyersByEmail       map[string]*userdomain.User
	vendorsByID         map[snowflake.ID]*userdomain.User
	vendorsBySubaccount map[string]*userdomain.User
	vendors             []*userdomain.User
}

func (s *Service) loadUsers(ctx context.Context) (*userIndex, error) {
	users, err := s.users.List(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	idx := &userIndex{
		buyersByEmail:       make(map[string]*userdomain.User, len(users)),
		vendorsByID:         make(map[snowflake.ID]*userdomain.User),
		vendorsBySubaccount: make(map[string]*userdomain.User),
	}
	for i := range users {
		u := &users[i]
		// Any local account can be the paying customer, vendors buy from
		// each other too.
		idx.buyersByEmail[strings.ToLower(u.Email)] = u
		if !u.IsVendor() {
			continue
		}
		idx.vendorsByID[u.ID] = u
		idx.vendors = append(idx.vendors, u)
		if u.PaystackSubaccount != "" {
			idx.vendorsBySubaccount[u.PaystackSubaccount] = u
		}
	}
	return idx, nil
}

// minorToMajor converts a gateway minor-unit amount (pesewas) to the
// major-unit decimal stored locally. Exact: no float arithmetic.
func minorToMajor(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}

func parseID(raw string) (snowflake.ID, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return snowflake.ParseInt64(n), true
}
