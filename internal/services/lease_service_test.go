package services

import (
	"context"
	"errors"
	"testing"

	"rently-backend/internal/models"

	"github.com/google/uuid"
)

func newRegistry(store *memoryStore) *LeaseService {
	balance := NewBalanceService(store, store)
	return NewLeaseService(unitStoreAdapter{store}, store, balance)
}

func TestLeaseService_CreateUnit(t *testing.T) {
	store := newMemoryStore()
	registry := newRegistry(store)

	unit, err := registry.CreateUnit(context.Background(), landlord, &models.CreateUnitRequest{
		Title:          "Studio, Oak Street",
		Address:        "12 Oak Street",
		AdvertisedRent: 900,
	})
	if err != nil {
		t.Fatalf("CreateUnit() error = %v", err)
	}
	if unit.LandlordID != landlordID {
		t.Errorf("landlord_id = %d, want %d", unit.LandlordID, landlordID)
	}

	units, err := registry.ListUnitsForLandlord(context.Background(), landlordID)
	if err != nil {
		t.Fatalf("ListUnitsForLandlord() error = %v", err)
	}
	if len(units) != 1 {
		t.Errorf("units = %d, want 1", len(units))
	}
}

func TestLeaseService_CreateUnit_Validation(t *testing.T) {
	store := newMemoryStore()
	registry := newRegistry(store)

	testCases := []struct {
		name  string
		ident models.Identity
		req   models.CreateUnitRequest
		check func(error) bool
	}{
		{name: "renter cannot create units", ident: renter, req: models.CreateUnitRequest{Title: "x"}, check: func(err error) bool { return errors.Is(err, ErrForbidden) }},
		{name: "title required", ident: landlord, req: models.CreateUnitRequest{}, check: IsValidation},
		{name: "negative rent rejected", ident: landlord, req: models.CreateUnitRequest{Title: "x", AdvertisedRent: -1}, check: IsValidation},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := registry.CreateUnit(context.Background(), tc.ident, &tc.req); !tc.check(err) {
				t.Errorf("CreateUnit() error = %v", err)
			}
		})
	}
}

func TestLeaseService_CreateLease(t *testing.T) {
	store := newMemoryStore()
	registry := newRegistry(store)

	unit, _ := registry.CreateUnit(context.Background(), landlord, &models.CreateUnitRequest{Title: "Studio"})

	lease, err := registry.CreateLease(context.Background(), landlord, &models.CreateLeaseRequest{
		UnitID:      unit.ID,
		RenterID:    renterID,
		MonthlyRent: 900,
		DueDay:      5,
	})
	if err != nil {
		t.Fatalf("CreateLease() error = %v", err)
	}
	if !lease.Active {
		t.Error("new lease should be active")
	}
	if lease.LandlordID != landlordID {
		t.Errorf("landlord_id = %d, want %d", lease.LandlordID, landlordID)
	}
	if lease.Balance != 0 {
		t.Errorf("balance = %d, want 0", lease.Balance)
	}
	if len(store.entries) != 0 {
		t.Errorf("lease without initial balance produced %d entries", len(store.entries))
	}
}

func TestLeaseService_CreateLease_OpeningBalance(t *testing.T) {
	store := newMemoryStore()
	registry := newRegistry(store)

	unit, _ := registry.CreateUnit(context.Background(), landlord, &models.CreateUnitRequest{Title: "Studio"})

	lease, err := registry.CreateLease(context.Background(), landlord, &models.CreateLeaseRequest{
		UnitID:         unit.ID,
		RenterID:       renterID,
		MonthlyRent:    900,
		DueDay:         1,
		InitialBalance: 900,
	})
	if err != nil {
		t.Fatalf("CreateLease() error = %v", err)
	}
	if lease.Balance != 900 {
		t.Errorf("balance = %d, want 900", lease.Balance)
	}

	// The opening balance must exist as a ledger entry, not just a number.
	entries, _ := store.ListByLease(context.Background(), lease.ID)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].Kind != models.EntryKindCharge || entries[0].Note != "Opening balance" {
		t.Errorf("entry = %s/%q, want charge/%q", entries[0].Kind, entries[0].Note, "Opening balance")
	}
}

func TestLeaseService_CreateLease_Validation(t *testing.T) {
	store := newMemoryStore()
	registry := newRegistry(store)
	unit, _ := registry.CreateUnit(context.Background(), landlord, &models.CreateUnitRequest{Title: "Studio"})

	testCases := []struct {
		name string
		req  models.CreateLeaseRequest
	}{
		{name: "zero rent", req: models.CreateLeaseRequest{UnitID: unit.ID, RenterID: renterID, MonthlyRent: 0, DueDay: 1}},
		{name: "negative rent", req: models.CreateLeaseRequest{UnitID: unit.ID, RenterID: renterID, MonthlyRent: -900, DueDay: 1}},
		{name: "due day too low", req: models.CreateLeaseRequest{UnitID: unit.ID, RenterID: renterID, MonthlyRent: 900, DueDay: 0}},
		{name: "due day too high", req: models.CreateLeaseRequest{UnitID: unit.ID, RenterID: renterID, MonthlyRent: 900, DueDay: 32}},
		{name: "negative initial balance", req: models.CreateLeaseRequest{UnitID: unit.ID, RenterID: renterID, MonthlyRent: 900, DueDay: 1, InitialBalance: -100}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := registry.CreateLease(context.Background(), landlord, &tc.req); !IsValidation(err) {
				t.Errorf("CreateLease() error = %v, want validation error", err)
			}
		})
	}
}

func TestLeaseService_CreateLease_Ownership(t *testing.T) {
	store := newMemoryStore()
	registry := newRegistry(store)
	unit, _ := registry.CreateUnit(context.Background(), landlord, &models.CreateUnitRequest{Title: "Studio"})

	other := models.Identity{UserID: 42, Role: models.RoleLandlord}
	_, err := registry.CreateLease(context.Background(), other, &models.CreateLeaseRequest{
		UnitID: unit.ID, RenterID: renterID, MonthlyRent: 900, DueDay: 1,
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("CreateLease() on someone else's unit error = %v, want ErrForbidden", err)
	}
}

func TestLeaseService_CreateLease_OneActivePerUnit(t *testing.T) {
	store := newMemoryStore()
	registry := newRegistry(store)
	unit, _ := registry.CreateUnit(context.Background(), landlord, &models.CreateUnitRequest{Title: "Studio"})

	req := &models.CreateLeaseRequest{UnitID: unit.ID, RenterID: renterID, MonthlyRent: 900, DueDay: 1}
	if _, err := registry.CreateLease(context.Background(), landlord, req); err != nil {
		t.Fatalf("first CreateLease() error = %v", err)
	}
	if _, err := registry.CreateLease(context.Background(), landlord, req); !IsValidation(err) {
		t.Errorf("second CreateLease() error = %v, want validation error", err)
	}
}

func TestLeaseService_GetUnit(t *testing.T) {
	store := newMemoryStore()
	registry := newRegistry(store)
	unit, _ := registry.CreateUnit(context.Background(), landlord, &models.CreateUnitRequest{Title: "Studio"})

	got, err := registry.GetUnit(context.Background(), landlord, unit.ID)
	if err != nil {
		t.Fatalf("GetUnit() error = %v", err)
	}
	if got.ID != unit.ID {
		t.Errorf("unit = %s, want %s", got.ID, unit.ID)
	}

	// An unknown id is not found, even for a landlord. A vacant unit the
	// landlord does not own is forbidden.
	if _, err := registry.GetUnit(context.Background(), landlord, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetUnit() for unknown id error = %v, want ErrNotFound", err)
	}
	other := models.Identity{UserID: 42, Role: models.RoleLandlord}
	if _, err := registry.GetUnit(context.Background(), other, unit.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("GetUnit() as other landlord error = %v, want ErrForbidden", err)
	}
}

func TestLeaseService_GetActiveLeaseForUnit(t *testing.T) {
	store, leaseID := newLeaseFixture(landlordID, renterID, 1200, 0)
	registry := newRegistry(store)

	lease, _ := store.Get(context.Background(), leaseID)

	got, err := registry.GetActiveLeaseForUnit(context.Background(), landlord, lease.UnitID)
	if err != nil {
		t.Fatalf("GetActiveLeaseForUnit() error = %v", err)
	}
	if got.ID != leaseID {
		t.Errorf("lease = %s, want %s", got.ID, leaseID)
	}

	other := models.Identity{UserID: 42, Role: models.RoleLandlord}
	if _, err := registry.GetActiveLeaseForUnit(context.Background(), other, lease.UnitID); !errors.Is(err, ErrForbidden) {
		t.Errorf("GetActiveLeaseForUnit() as other landlord error = %v, want ErrForbidden", err)
	}
}

func TestLeaseService_GetRenterLease(t *testing.T) {
	store, leaseID := newLeaseFixture(landlordID, renterID, 1200, 1200)
	registry := newRegistry(store)

	view, err := registry.GetRenterLease(context.Background(), renterID)
	if err != nil {
		t.Fatalf("GetRenterLease() error = %v", err)
	}
	if view.Lease.ID != leaseID {
		t.Errorf("lease = %s, want %s", view.Lease.ID, leaseID)
	}

	if _, err := registry.GetRenterLease(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetRenterLease() for unknown renter error = %v, want ErrNotFound", err)
	}
}
