package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/snowflake"
	obsmetrics "github.com/campusmart/campusmart/internal/observability/metrics"
	orderdomain "github.com/campusmart/campusmart/internal/order/domain"
	paymentdomain "github.com/campusmart/campusmart/internal/payment/domain"
	productdomain "github.com/campusmart/campusmart/internal/product/domain"
	"github.com/campusmart/campusmart/internal/sync/domain"
	userdomain "github.com/campusmart/campusmart/internal/user/domain"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// syncPayments is Pass A: gateway transactions → local payments, backfilling
// orders where the charge carried no order reference. The bulk fetch and the
// user scan are fatal; everything after that is isolated per record.
func (s *Service) syncPayments(ctx context.Context, log *zap.Logger) (*domain.PassReport, error) {
	report := &domain.PassReport{}

	transactions, err := s.ledger.ListTransactions(ctx)
	if err != nil {
		return report, fmt.Errorf("fetch transactions: %w", err)
	}
	idx, err := s.loadUsers(ctx)
	if err != nil {
		return report, err
	}

	m := obsmetrics.Sync()
	for _, tx := range transactions {
		outcome, skipReason, err := s.reconcileTransaction(ctx, tx, idx)
		switch {
		case err != nil:
			report.AddFailure(tx.Reference, err)
			m.IncRecord(obsmetrics.PassPayments, obsmetrics.OutcomeFailed)
			log.Error("transaction failed",
				zap.String("reference", tx.Reference),
				zap.Error(err),
			)
		case skipReason != "":
			report.AddSkip(tx.Reference, skipReason)
			m.IncRecord(obsmetrics.PassPayments, obsmetrics.OutcomeSkipped)
			m.IncSkip(obsmetrics.PassPayments, skipReason)
			log.Warn("transaction skipped",
				zap.String("reference", tx.Reference),
				zap.String("reason", skipReason),
			)
		case outcome == outcomeCreated:
			report.Created++
			m.IncRecord(obsmetrics.PassPayments, obsmetrics.OutcomeCreated)
		case outcome == outcomeUpdated:
			report.Updated++
			m.IncRecord(obsmetrics.PassPayments, obsmetrics.OutcomeUpdated)
		default:
			report.Skipped++
			m.IncRecord(obsmetrics.PassPayments, obsmetrics.OutcomeSkipped)
		}
	}
	return report, nil
}

func (s *Service) reconcileTransaction(ctx context.Context, tx domain.Transaction, idx *userIndex) (outcome, skipReason string, err error) {
	existing, err := s.payments.FindByPaystackReference(ctx, s.db, tx.Reference)
	if err != nil {
		return "", "", fmt.Errorf("lookup payment: %w", err)
	}
	if existing != nil {
		if existing.Status == tx.Status {
			return outcomeSkipped, "", nil
		}
		if err := s.payments.UpdateStatus(ctx, s.db, existing.ID, tx.Status, tx.GatewayResponse, tx.PaidAt); err != nil {
			return "", "", fmt.Errorf("update payment status: %w", err)
		}
		return outcomeUpdated, "", nil
	}

	buyer, ok := idx.buyersByEmail[strings.ToLower(tx.CustomerEmail)]
	if !ok || tx.CustomerEmail == "" {
		return "", domain.SkipReasonMissingBuyer, nil
	}

	vendor, skipReason := s.resolveVendor(tx, idx)
	if vendor == nil {
		return "", skipReason, nil
	}

	orderID, ok := parseID(tx.Metadata.OrderID)
	if ok {
		return s.createPayment(ctx, s.db, tx, buyer, vendor, orderID)
	}

	// Backfill: the charge carried no order reference, so synthesize one
	// against a placeholder product to satisfy the payment-must-reference-
	// an-order invariant. The order and the payment commit together.
	product, skipReason, err := s.resolvePlaceholderProduct(ctx, vendor)
	if err != nil {
		return "", "", err
	}
	if product == nil {
		return "", skipReason, nil
	}

	err = s.db.Transaction(func(dbtx *gorm.DB) error {
		order := s.backfillOrder(tx, buyer, vendor, product)
		if err := s.orders.Insert(ctx, dbtx, order); err != nil {
			return fmt.Errorf("create backfill order: %w", err)
		}
		outcome, skipReason, err = s.createPayment(ctx, dbtx, tx, buyer, vendor, order.ID)
		return err
	})
	if err != nil {
		return "", "", err
	}
	return outcome, skipReason, nil
}

// resolveVendor applies the resolution priority: explicit metadata vendor id,
// then subaccount mapping, then, unless strict mode forbids guessing, the
// first vendor on record.
func (s *Service) resolveVendor(tx domain.Transaction, idx *userIndex) (*userdomain.User, string) {
	if id, ok := parseID(tx.Metadata.VendorID); ok {
		if vendor, ok := idx.vendorsByID[id]; ok {
			return vendor, ""
		}
	}
	if tx.SubaccountCode != "" {
		if vendor, ok := idx.vendorsBySubaccount[tx.SubaccountCode]; ok {
			return vendor, ""
		}
	}
	if len(idx.vendors) == 0 {
		return nil, domain.SkipReasonNoVendor
	}
	if s.strict {
		return nil, domain.SkipReasonVendorAmbiguous
	}
	return idx.vendors[0], ""
}

// resolvePlaceholderProduct picks the vendor's first product, falling back
// to the platform's first product overall. Strict mode refuses the
// cross-vendor fallback.
func (s *Service) resolvePlaceholderProduct(ctx context.Context, vendor *userdomain.User) (*productdomain.Product, string, error) {
	products, err := s.products.ListByVendor(ctx, s.db, vendor.ID)
	if err != nil {
		return nil, "", fmt.Errorf("load vendor products: %w", err)
	}
	if len(products) > 0 {
		return &products[0], "", nil
	}
	if s.strict {
		return nil, domain.SkipReasonNoProducts, nil
	}
	products, err = s.products.List(ctx, s.db)
	if err != nil {
		return nil, "", fmt.Errorf("load products: %w", err)
	}
	if len(products) == 0 {
		return nil, domain.SkipReasonNoProducts, nil
	}
	return &products[0], "", nil
}

func (s *Service) backfillOrder(tx domain.Transaction, buyer, vendor *userdomain.User, product *productdomain.Product) *orderdomain.Order {
	now := s.clock.Now()
	shipping := tx.Metadata.DeliveryAddress
	if shipping == "" {
		shipping = "Not provided"
	}
	phone := tx.Metadata.Phone
	if phone == "" {
		phone = tx.Metadata.MobileNumber
	}
	return &orderdomain.Order{
		ID:              s.genID.Generate(),
		BuyerID:         buyer.ID,
		VendorID:        vendor.ID,
		ProductID:       product.ID,
		Quantity:        1,
		TotalAmount:     minorToMajor(tx.Amount),
		Status:          orderdomain.StatusPending,
		ShippingAddress: shipping,
		Phone:           phone,
		Notes:           "Synced from Paystack transaction " + tx.Reference,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (s *Service) createPayment(ctx context.Context, conn *gorm.DB, tx domain.Transaction, buyer, vendor *userdomain.User, orderID snowflake.ID) (string, string, error) {
	now := s.clock.Now()
	payment := &paymentdomain.Payment{
		ID:                s.genID.Generate(),
		Reference:         "PS_" + tx.Reference,
		PaystackReference: tx.Reference,
		OrderID:           orderID,
		VendorID:          vendor.ID,
		BuyerID:           buyer.ID,
		Amount:            minorToMajor(tx.Amount),
		Currency:          tx.Currency,
		PaymentMethod:     tx.Channel,
		Status:            tx.Status,
		GatewayResponse:   tx.GatewayResponse,
		PaidAt:            tx.PaidAt,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if len(tx.MetadataRaw) > 0 {
		payment.Metadata = datatypes.JSON(tx.MetadataRaw)
	}
	inserted, err := s.payments.Insert(ctx, conn, payment)
	if err != nil {
		return "", "", fmt.Errorf("create payment: %w", err)
	}
	if !inserted {
		// Lost a race with a concurrent run; the reference is already there.
		return outcomeSkipped, "", nil
	}
	return outcomeCreated, "", nil
}
