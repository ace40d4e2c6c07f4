package services

import (
	"context"
	"fmt"

	"rently-backend/internal/models"

	"github.com/google/uuid"
)

// LeaseService is the lease/property registry: it owns the unit-landlord
// and lease-renter relationships and enforces ownership and the one
// active lease per unit rule before anything reaches the balance engine.
type LeaseService struct {
	Units   UnitStore
	Leases  LeaseStore
	Balance *BalanceService
}

func NewLeaseService(units UnitStore, leases LeaseStore, balance *BalanceService) *LeaseService {
	return &LeaseService{Units: units, Leases: leases, Balance: balance}
}

// CreateUnit registers a rental unit under the requesting landlord.
func (s *LeaseService) CreateUnit(ctx context.Context, ident models.Identity, req *models.CreateUnitRequest) (*models.Unit, error) {
	if ident.Role != models.RoleLandlord {
		return nil, ErrForbidden
	}
	if req.Title == "" {
		return nil, invalidf("title", "title is required")
	}
	if req.AdvertisedRent < 0 {
		return nil, invalidf("advertised_rent", "advertised rent cannot be negative")
	}

	unit := &models.Unit{
		LandlordID:     ident.UserID,
		Title:          req.Title,
		Address:        req.Address,
		AdvertisedRent: req.AdvertisedRent,
		Stage:          req.Stage,
	}
	if err := s.Units.Create(ctx, unit); err != nil {
		return nil, fmt.Errorf("failed to create unit: %w", err)
	}
	return unit, nil
}

// CreateLease creates an active lease on a unit the requester owns. A
// nonzero initial balance is recorded as an opening charge through the
// balance engine so the entry log stays the single source of truth.
func (s *LeaseService) CreateLease(ctx context.Context, ident models.Identity, req *models.CreateLeaseRequest) (*models.Lease, error) {
	if req.MonthlyRent <= 0 {
		return nil, invalidf("monthly_rent", "monthly rent must be positive")
	}
	if req.DueDay < 1 || req.DueDay > 31 {
		return nil, invalidf("due_day", "due day must be between 1 and 31")
	}
	if req.InitialBalance < 0 {
		return nil, invalidf("initial_balance", "initial balance cannot be negative")
	}

	unit, err := s.Units.Get(ctx, req.UnitID)
	if err != nil {
		return nil, err
	}
	if unit.LandlordID != ident.UserID {
		return nil, ErrForbidden
	}

	if existing, err := s.Leases.GetActiveByUnit(ctx, req.UnitID); err == nil && existing != nil {
		return nil, invalidf("unit_id", "unit already has an active lease")
	}

	lease := &models.Lease{
		UnitID:         req.UnitID,
		RenterID:       req.RenterID,
		MonthlyRent:    req.MonthlyRent,
		DueDay:         req.DueDay,
		StartDate:      req.StartDate,
		OccupantsCount: req.OccupantsCount,
		Active:         true,
		LandlordID:     unit.LandlordID,
	}
	if err := s.Leases.Create(ctx, lease); err != nil {
		return nil, fmt.Errorf("failed to create lease: %w", err)
	}

	if req.InitialBalance != 0 {
		view, err := s.Balance.Adjust(ctx, lease.ID, req.InitialBalance, "Opening balance", ident)
		if err != nil {
			return nil, fmt.Errorf("failed to record opening balance: %w", err)
		}
		lease = view.Lease
	}
	return lease, nil
}

// GetUnit returns a unit the requester owns.
func (s *LeaseService) GetUnit(ctx context.Context, ident models.Identity, unitID uuid.UUID) (*models.Unit, error) {
	unit, err := s.Units.Get(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if unit.LandlordID != ident.UserID {
		return nil, ErrForbidden
	}
	return unit, nil
}

// GetActiveLeaseForUnit returns the unit's active lease, if any.
func (s *LeaseService) GetActiveLeaseForUnit(ctx context.Context, ident models.Identity, unitID uuid.UUID) (*models.Lease, error) {
	unit, err := s.Units.Get(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if unit.LandlordID != ident.UserID {
		return nil, ErrForbidden
	}
	return s.Leases.GetActiveByUnit(ctx, unitID)
}

// ListUnitsForLandlord returns the landlord's units with active leases
// attached.
func (s *LeaseService) ListUnitsForLandlord(ctx context.Context, landlordID int) ([]models.Unit, error) {
	units, err := s.Units.ListByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	for i := range units {
		lease, err := s.Leases.GetActiveByUnit(ctx, units[i].ID)
		if err != nil {
			continue // vacant unit
		}
		units[i].ActiveLease = lease
	}
	return units, nil
}

// ListLeasesForRenter returns every lease associated with the renter.
func (s *LeaseService) ListLeasesForRenter(ctx context.Context, renterID int) ([]models.Lease, error) {
	return s.Leases.ListByRenter(ctx, renterID)
}

// GetRenterLease returns the renter's most recently created lease with
// its full entry list.
func (s *LeaseService) GetRenterLease(ctx context.Context, renterID int) (*models.LedgerView, error) {
	lease, err := s.Leases.LatestByRenter(ctx, renterID)
	if err != nil {
		return nil, err
	}
	return s.Balance.GetLedger(ctx, lease.ID, models.Identity{UserID: renterID, Role: models.RoleRenter})
}

// ListLandlordLeases returns all leases across the landlord's units.
func (s *LeaseService) ListLandlordLeases(ctx context.Context, landlordID int) ([]models.Lease, error) {
	return s.Leases.ListByLandlord(ctx, landlordID)
}
