package service

import (
	"context"
	"fmt"
	"strings"

	obsmetrics "github.com/campusmart/campusmart/internal/observability/metrics"
	payoutdomain "github.com/campusmart/campusmart/internal/payout/domain"
	"github.com/campusmart/campusmart/internal/sync/domain"
	userdomain "github.com/campusmart/campusmart/internal/user/domain"
	"go.uber.org/zap"
)

// syncPayouts is Pass B: gateway transfers → local payouts. Idempotency is
// keyed on the transfer reference, mirroring the payment pass.
func (s *Service) syncPayouts(ctx context.Context, log *zap.Logger) (*domain.PassReport, error) {
	report := &domain.PassReport{}

	transfers, err := s.ledger.ListTransfers(ctx)
	if err != nil {
		return report, fmt.Errorf("fetch transfers: %w", err)
	}
	idx, err := s.loadUsers(ctx)
	if err != nil {
		return report, err
	}

	m := obsmetrics.Sync()
	for _, transfer := range transfers {
		outcome, skipReason, err := s.reconcileTransfer(ctx, transfer, idx)
		switch {
		case err != nil:
			report.AddFailure(transfer.Reference, err)
			m.IncRecord(obsmetrics.PassPayouts, obsmetrics.OutcomeFailed)
			log.Error("transfer failed",
				zap.String("reference", transfer.Reference),
				zap.Error(err),
			)
		case skipReason != "":
			report.AddSkip(transfer.Reference, skipReason)
			m.IncRecord(obsmetrics.PassPayouts, obsmetrics.OutcomeSkipped)
			m.IncSkip(obsmetrics.PassPayouts, skipReason)
			log.Warn("transfer skipped",
				zap.String("reference", transfer.Reference),
				zap.String("reason", skipReason),
			)
		case outcome == outcomeCreated:
			report.Created++
			m.IncRecord(obsmetrics.PassPayouts, obsmetrics.OutcomeCreated)
		case outcome == outcomeUpdated:
			report.Updated++
			m.IncRecord(obsmetrics.PassPayouts, obsmetrics.OutcomeUpdated)
		default:
			report.Skipped++
			m.IncRecord(obsmetrics.PassPayouts, obsmetrics.OutcomeSkipped)
		}
	}
	return report, nil
}

func (s *Service) reconcileTransfer(ctx context.Context, transfer domain.Transfer, idx *userIndex) (outcome, skipReason string, err error) {
	vendor := matchTransferVendor(transfer, idx)
	if vendor == nil {
		return "", domain.SkipReasonNoRecipient, nil
	}

	status := mapTransferStatus(transfer.Status)

	existing, err := s.payouts.FindByTransactionID(ctx, s.db, transfer.Reference)
	if err != nil {
		return "", "", fmt.Errorf("lookup payout: %w", err)
	}
	if existing != nil {
		if existing.Status == status {
			return outcomeSkipped, "", nil
		}
		if err := s.payouts.UpdateStatus(ctx, s.db, existing.ID, status); err != nil {
			return "", "", fmt.Errorf("update payout status: %w", err)
		}
		return outcomeUpdated, "", nil
	}

	now := s.clock.Now()
	payout := &payoutdomain.Payout{
		ID:            s.genID.Generate(),
		VendorID:      vendor.ID,
		Amount:        minorToMajor(transfer.Amount),
		Status:        status,
		MomoNumber:    transfer.RecipientAccountNumber,
		TransactionID: transfer.Reference,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	inserted, err := s.payouts.Insert(ctx, s.db, payout)
	if err != nil {
		return "", "", fmt.Errorf("create payout: %w", err)
	}
	if !inserted {
		return outcomeSkipped, "", nil
	}
	return outcomeCreated, "", nil
}

// matchTransferVendor finds the vendor the transfer paid: recipient email
// first, then mobile-money number against the recipient account number.
func matchTransferVendor(transfer domain.Transfer, idx *userIndex) *userdomain.User {
	for _, vendor := range idx.vendors {
		if transfer.RecipientEmail != "" && strings.EqualFold(vendor.Email, transfer.RecipientEmail) {
			return vendor
		}
		if transfer.RecipientAccountNumber != "" && vendor.MomoNumber == transfer.RecipientAccountNumber {
			return vendor
		}
	}
	return nil
}

func mapTransferStatus(status string) string {
	if status == "success" {
		return payoutdomain.StatusSuccess
	}
	return payoutdomain.StatusPending
}
