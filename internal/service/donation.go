package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkordes/community-garden/backend/internal/domain"
	"github.com/pkordes/community-garden/backend/internal/metrics"
)

// DonationService records one-off donations. Donations are acknowledged and
// logged, never stored.
type DonationService struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewDonationService constructs a DonationService. A nil logger falls back to
// slog.Default(); nil metrics disables counting.
func NewDonationService(logger *slog.Logger, m *metrics.Metrics) *DonationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DonationService{logger: logger, metrics: m}
}

// RecordDonation acknowledges d and returns the message shown to the donor.
// Returns domain.ErrValidation if d breaks the variant's invariants, which
// can only happen when it was built without the domain constructors.
func (s *DonationService) RecordDonation(ctx context.Context, d domain.Donation) (string, error) {
	var msg string
	switch d.Kind {
	case domain.KindMoney:
		if _, err := domain.NewMoneyDonation(d.Amount); err != nil {
			return "", fmt.Errorf("service.DonationService.RecordDonation: %w", err)
		}
		msg = fmt.Sprintf("Monetary donation of $%.2f received.", d.Amount)
		s.logger.InfoContext(ctx, "donation received", "kind", d.Kind, "amount", d.Amount)
	case domain.KindItem:
		if _, err := domain.NewItemDonation(d.Item); err != nil {
			return "", fmt.Errorf("service.DonationService.RecordDonation: %w", err)
		}
		msg = "Donation received: " + d.Item
		s.logger.InfoContext(ctx, "donation received", "kind", d.Kind, "item", d.Item)
	default:
		return "", fmt.Errorf("service.DonationService.RecordDonation: %w: unknown donation kind %q", domain.ErrValidation, d.Kind)
	}

	s.metrics.RecordDonation(string(d.Kind))
	return msg, nil
}
