package services

import (
	"context"
	"time"

	"rently-backend/internal/models"

	"github.com/google/uuid"
)

// memoryStore is an in-memory stand-in for the pgx repositories. It
// implements UnitStore, LeaseStore and LedgerStore for the service tests.
type memoryStore struct {
	units   map[uuid.UUID]*models.Unit
	leases  map[uuid.UUID]*models.Lease
	entries []models.LedgerEntry
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		units:  make(map[uuid.UUID]*models.Unit),
		leases: make(map[uuid.UUID]*models.Lease),
	}
}

func (m *memoryStore) Get(ctx context.Context, id uuid.UUID) (*models.Lease, error) {
	lease, ok := m.leases[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *lease
	return &cp, nil
}

func (m *memoryStore) Create(ctx context.Context, lease *models.Lease) error {
	lease.ID = uuid.New()
	lease.CreatedAt = time.Now()
	cp := *lease
	m.leases[lease.ID] = &cp
	return nil
}

func (m *memoryStore) GetActiveByUnit(ctx context.Context, unitID uuid.UUID) (*models.Lease, error) {
	for _, lease := range m.leases {
		if lease.UnitID == unitID && lease.Active {
			cp := *lease
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memoryStore) ListByRenter(ctx context.Context, renterID int) ([]models.Lease, error) {
	var out []models.Lease
	for _, lease := range m.leases {
		if lease.RenterID == renterID {
			out = append(out, *lease)
		}
	}
	return out, nil
}

func (m *memoryStore) LatestByRenter(ctx context.Context, renterID int) (*models.Lease, error) {
	var latest *models.Lease
	for _, lease := range m.leases {
		if lease.RenterID != renterID {
			continue
		}
		if latest == nil || lease.CreatedAt.After(latest.CreatedAt) {
			latest = lease
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

func (m *memoryStore) ListByLandlord(ctx context.Context, landlordID int) ([]models.Lease, error) {
	var out []models.Lease
	for _, lease := range m.leases {
		if lease.LandlordID == landlordID {
			out = append(out, *lease)
		}
	}
	return out, nil
}

func (m *memoryStore) GetUnit(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	unit, ok := m.units[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *unit
	return &cp, nil
}

func (m *memoryStore) CreateUnit(ctx context.Context, unit *models.Unit) error {
	unit.ID = uuid.New()
	cp := *unit
	m.units[unit.ID] = &cp
	return nil
}

func (m *memoryStore) ListUnitsByLandlord(ctx context.Context, landlordID int) ([]models.Unit, error) {
	var out []models.Unit
	for _, unit := range m.units {
		if unit.LandlordID == landlordID {
			out = append(out, *unit)
		}
	}
	return out, nil
}

func (m *memoryStore) ApplyEntry(ctx context.Context, leaseID uuid.UUID, delta int64, entry *models.LedgerEntry) (*models.Lease, error) {
	lease, ok := m.leases[leaseID]
	if !ok {
		return nil, ErrNotFound
	}
	lease.Balance += delta
	entry.ID = uuid.New()
	entry.CreatedAt = time.Now()
	m.entries = append(m.entries, *entry)
	cp := *lease
	return &cp, nil
}

func (m *memoryStore) ListByLease(ctx context.Context, leaseID uuid.UUID) ([]models.LedgerEntry, error) {
	var out []models.LedgerEntry
	// newest first
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].LeaseID == leaseID {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}

func (m *memoryStore) GetEntry(ctx context.Context, id uuid.UUID) (*models.LedgerEntry, error) {
	for i := range m.entries {
		if m.entries[i].ID == id {
			cp := m.entries[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// unitStoreAdapter exposes the memoryStore's unit methods under the
// UnitStore method names.
type unitStoreAdapter struct{ *memoryStore }

func (a unitStoreAdapter) Get(ctx context.Context, id uuid.UUID) (*models.Unit, error) {
	return a.memoryStore.GetUnit(ctx, id)
}

func (a unitStoreAdapter) Create(ctx context.Context, unit *models.Unit) error {
	return a.memoryStore.CreateUnit(ctx, unit)
}

func (a unitStoreAdapter) ListByLandlord(ctx context.Context, landlordID int) ([]models.Unit, error) {
	return a.memoryStore.ListUnitsByLandlord(ctx, landlordID)
}

// fixture builds a store with one landlord-owned unit and an active lease
// carrying an opening balance.
func newLeaseFixture(landlordID, renterID int, monthlyRent, openingBalance int64) (*memoryStore, uuid.UUID) {
	store := newMemoryStore()
	unit := &models.Unit{LandlordID: landlordID, Title: "2BR Apartment, Maple Street"}
	store.CreateUnit(context.Background(), unit)
	lease := &models.Lease{
		UnitID:      unit.ID,
		RenterID:    renterID,
		LandlordID:  landlordID,
		MonthlyRent: monthlyRent,
		DueDay:      1,
		Active:      true,
		Balance:     openingBalance,
	}
	store.Create(context.Background(), lease)
	return store, lease.ID
}
