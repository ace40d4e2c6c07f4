package services

import (
	"context"

	"rently-backend/internal/models"
)

// RenterPortalService assembles the renter portal view: the renter's
// current lease, the rendered ledger feed, and the overdue nudge.
type RenterPortalService struct {
	Registry *LeaseService
}

func NewRenterPortalService(registry *LeaseService) *RenterPortalService {
	return &RenterPortalService{Registry: registry}
}

// RenterDashboard is the full renter portal payload. ShowOverdueNudge is
// the presentational reflection of the engine's paid predicate.
type RenterDashboard struct {
	Lease            *models.Lease `json:"lease"`
	Balance          int64         `json:"balance"`
	Paid             bool          `json:"paid"`
	ShowOverdueNudge bool          `json:"show_overdue_nudge"`
	Feed             []FeedItem    `json:"feed"`
}

// Dashboard returns the renter's most recent lease rendered for display.
func (s *RenterPortalService) Dashboard(ctx context.Context, ident models.Identity) (*RenterDashboard, error) {
	view, err := s.Registry.GetRenterLease(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	return &RenterDashboard{
		Lease:            view.Lease,
		Balance:          view.Lease.Balance,
		Paid:             view.Lease.PaidCurrentPeriod(),
		ShowOverdueNudge: view.Lease.Overdue(),
		Feed:             renderFeed(view.Entries, models.RoleRenter),
	}, nil
}
