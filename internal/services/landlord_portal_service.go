package services

import (
	"context"
	"fmt"

	"rently-backend/internal/models"

	"github.com/google/uuid"
)

// LandlordPortalService assembles the landlord portal views: units with
// their active leases, each lease's rendered ledger feed, and the derived
// paid/overdue status.
type LandlordPortalService struct {
	Registry *LeaseService
	Balance  *BalanceService
}

func NewLandlordPortalService(registry *LeaseService, balance *BalanceService) *LandlordPortalService {
	return &LandlordPortalService{Registry: registry, Balance: balance}
}

// UnitOverview is one unit row on the landlord dashboard.
type UnitOverview struct {
	Unit    models.Unit `json:"unit"`
	Paid    bool        `json:"paid"`
	Overdue bool        `json:"overdue"`
}

// LandlordDashboard is the full landlord portal payload.
type LandlordDashboard struct {
	Units []UnitOverview `json:"units"`
}

// Dashboard returns every unit with its active lease and status flags.
func (s *LandlordPortalService) Dashboard(ctx context.Context, ident models.Identity) (*LandlordDashboard, error) {
	units, err := s.Registry.ListUnitsForLandlord(ctx, ident.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list units: %w", err)
	}

	out := &LandlordDashboard{Units: make([]UnitOverview, 0, len(units))}
	for _, u := range units {
		row := UnitOverview{Unit: u}
		if u.ActiveLease != nil {
			row.Paid = u.ActiveLease.PaidCurrentPeriod()
			row.Overdue = u.ActiveLease.Overdue()
		}
		out.Units = append(out.Units, row)
	}
	return out, nil
}

// LeaseLedger is a lease's ledger rendered for the landlord view.
type LeaseLedger struct {
	Lease   *models.Lease `json:"lease"`
	Paid    bool          `json:"paid"`
	Overdue bool          `json:"overdue"`
	Feed    []FeedItem    `json:"feed"`
}

// Ledger returns the rendered feed for one lease.
func (s *LandlordPortalService) Ledger(ctx context.Context, ident models.Identity, leaseID uuid.UUID) (*LeaseLedger, error) {
	view, err := s.Balance.GetLedger(ctx, leaseID, ident)
	if err != nil {
		return nil, err
	}
	return &LeaseLedger{
		Lease:   view.Lease,
		Paid:    view.Lease.PaidCurrentPeriod(),
		Overdue: view.Lease.Overdue(),
		Feed:    renderFeed(view.Entries, models.RoleLandlord),
	}, nil
}
