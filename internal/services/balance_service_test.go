package services

import (
	"context"
	"errors"
	"testing"

	"rently-backend/internal/models"

	"github.com/google/uuid"
)

const (
	landlordID = 1
	renterID   = 2
)

var (
	landlord = models.Identity{UserID: landlordID, Role: models.RoleLandlord}
	renter   = models.Identity{UserID: renterID, Role: models.RoleRenter}
)

func TestBalanceService_Pay(t *testing.T) {
	store, leaseID := newLeaseFixture(landlordID, renterID, 1200, 1200)
	svc := NewBalanceService(store, store)

	view, err := svc.Pay(context.Background(), leaseID, 500, renter)
	if err != nil {
		t.Fatalf("Pay() error = %v", err)
	}
	if view.Lease.Balance != 700 {
		t.Errorf("balance = %d, want 700", view.Lease.Balance)
	}
	if len(view.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(view.Entries))
	}
	entry := view.Entries[0]
	if entry.Kind != models.EntryKindPayment {
		t.Errorf("kind = %s, want payment", entry.Kind)
	}
	if entry.Amount != 500 {
		t.Errorf("amount = %d, want 500", entry.Amount)
	}
	if entry.RecordedBy != renterID {
		t.Errorf("recorded_by = %d, want %d", entry.RecordedBy, renterID)
	}
}

func TestBalanceService_Pay_Validation(t *testing.T) {
	store, leaseID := newLeaseFixture(landlordID, renterID, 1200, 1200)
	svc := NewBalanceService(store, store)

	for _, amount := range []int64{0, -100} {
		if _, err := svc.Pay(context.Background(), leaseID, amount, renter); !IsValidation(err) {
			t.Errorf("Pay(%d) error = %v, want validation error", amount, err)
		}
	}
	if len(store.entries) != 0 {
		t.Errorf("rejected payments left %d entries behind", len(store.entries))
	}
}

func TestBalanceService_Pay_OnlyRenter(t *testing.T) {
	store, leaseID := newLeaseFixture(landlordID, renterID, 1200, 1200)
	svc := NewBalanceService(store, store)

	for _, ident := range []models.Identity{landlord, {UserID: 99, Role: models.RoleRenter}} {
		if _, err := svc.Pay(context.Background(), leaseID, 100, ident); !errors.Is(err, ErrForbidden) {
			t.Errorf("Pay() as user %d error = %v, want ErrForbidden", ident.UserID, err)
		}
	}
}

func TestBalanceService_Pay_UnknownLease(t *testing.T) {
	store, _ := newLeaseFixture(landlordID, renterID, 1200, 1200)
	svc := NewBalanceService(store, store)

	if _, err := svc.Pay(context.Background(), uuid.New(), 100, renter); !errors.Is(err, ErrNotFound) {
		t.Errorf("Pay() error = %v, want ErrNotFound", err)
	}
}

func TestBalanceService_Pay_NotIdempotent(t *testing.T) {
	store, leaseID := newLeaseFixture(landlordID, renterID, 1200, 1200)
	svc := NewBalanceService(store, store)

	// A double submission is two distinct payments, on purpose.
	if _, err := svc.Pay(context.Background(), leaseID, 600, renter); err != nil {
		t.Fatalf("first Pay() error = %v", err)
	}
	view, err := svc.Pay(context.Background(), leaseID, 600, renter)
	if err != nil {
		t.Fatalf("second Pay() error = %v", err)
	}
	if len(view.Entries) != 2 {
		t.Errorf("entries = %d, want 2", len(view.Entries))
	}
	if view.Lease.Balance != 0 {
		t.Errorf("balance = %d, want 0", view.Lease.Balance)
	}
}

func TestBalanceService_Pay_OverpaymentGoesNegative(t *testing.T) {
	store, leaseID := newLeaseFixture(landlordID, renterID, 1200, 1200)
	svc := NewBalanceService(store, store)

	view, err := svc.Pay(context.Background(), leaseID, 1300, renter)
	if err != nil {
		t.Fatalf("Pay() error = %v", err)
	}
	if view.Lease.Balance != -100 {
		t.Errorf("balance = %d, want -100", view.Lease.Balance)
	}
	if !view.Lease.PaidCurrentPeriod() {
		t.Error("negative balance should count as paid")
	}
}

func TestBalanceService_Adjust_SignClassification(t *testing.T) {
	testCases := []struct {
		name       string
		delta      int64
		wantKind   models.EntryKind
		wantAmount int64
	}{
		{name: "positive delta is a charge", delta: 250, wantKind: models.EntryKindCharge, wantAmount: 250},
		{name: "negative delta is a credit", delta: -300, wantKind: models.EntryKindCredit, wantAmount: -300},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store, leaseID := newLeaseFixture(landlordID, renterID, 1200, 1200)
			svc := NewBalanceService(store, store)

			view, err := svc.Adjust(context.Background(), leaseID, tc.delta, "maintenance", landlord)
			if err != nil {
				t.Fatalf("Adjust() error = %v", err)
			}
			entry := view.Entries[0]
			if entry.Kind != tc.wantKind {
				t.Errorf("kind = %s, want %s", entry.Kind, tc.wantKind)
			}
			if entry.Amount != tc.wantAmount {
				t.Errorf("amount = %d, want %d", entry.Amount, tc.wantAmount)
			}
			if view.Lease.Balance != 1200+tc.delta {
				t.Errorf("balance = %d, want %d", view.Lease.Balance, 1200+tc.delta)
			}
		})
	}
}

func TestBalanceService_Adjust_Validation(t *testing.T) {
	store, leaseID := newLeaseFixture(landlordID, renterID, 1200, 1200)
	svc := NewBalanceService(store, store)

	if _, err := svc.Adjust(context.Background(), leaseID, 0, "", landlord); !IsValidation(err) {
		t.Errorf("Adjust(0) error = %v, want validation error", err)
	}
	if _, err := svc.Adjust(context.Background(), leaseID, 100, "", renter); !errors.Is(err, ErrForbidden) {
		t.Errorf("Adjust() as renter error = %v, want ErrForbidden", err)
	}
	if _, err := svc.Adjust(context.Background(), leaseID, 100, "", models.Identity{UserID: 42, Role: models.RoleLandlord}); !errors.Is(err, ErrForbidden) {
		t.Errorf("Adjust() as other landlord error = %v, want ErrForbidden", err)
	}
}

func TestBalanceService_PostMonthlyCharge(t *testing.T) {
	store, leaseID := newLeaseFixture(landlordID, renterID, 1200, 0)
	svc := NewBalanceService(store, store)

	view, err := svc.PostMonthlyCharge(context.Background(), leaseID, landlord)
	if err != nil {
		t.Fatalf("PostMonthlyCharge() error = %v", err)
	}
	entry := view.Entries[0]
	if entry.Kind != models.EntryKindCharge || entry.Amount != 1200 {
		t.Errorf("entry = %s/%d, want charge/1200", entry.Kind, entry.Amount)
	}
	if entry.Note != "Monthly rent" {
		t.Errorf("note = %q, want %q", entry.Note, "Monthly rent")
	}
	if view.Lease.Balance != 1200 {
		t.Errorf("balance = %d, want 1200", view.Lease.Balance)
	}
}

func TestBalanceService_GetLedger_Access(t *testing.T) {
	store, leaseID := newLeaseFixture(landlordID, renterID, 1200, 1200)
	svc := NewBalanceService(store, store)

	for _, ident := range []models.Identity{renter, landlord} {
		if _, err := svc.GetLedger(context.Background(), leaseID, ident); err != nil {
			t.Errorf("GetLedger() as user %d error = %v", ident.UserID, err)
		}
	}
	stranger := models.Identity{UserID: 77, Role: models.RoleRenter}
	if _, err := svc.GetLedger(context.Background(), leaseID, stranger); !errors.Is(err, ErrForbidden) {
		t.Errorf("GetLedger() as stranger error = %v, want ErrForbidden", err)
	}
}

// Balance must always equal the sum of entry effects, whatever the
// command sequence.
func TestBalanceService_BalanceMatchesEntries(t *testing.T) {
	store, leaseID := newLeaseFixture(landlordID, renterID, 1200, 0)
	svc := NewBalanceService(store, store)
	ctx := context.Background()

	svc.Adjust(ctx, leaseID, 1200, "Opening balance", landlord)
	svc.Pay(ctx, leaseID, 500, renter)
	svc.Adjust(ctx, leaseID, -200, "goodwill", landlord)
	svc.Pay(ctx, leaseID, 700, renter)
	svc.Adjust(ctx, leaseID, 1200, "Monthly rent", landlord)

	view, err := svc.GetLedger(ctx, leaseID, renter)
	if err != nil {
		t.Fatalf("GetLedger() error = %v", err)
	}

	var sum int64
	for i := range view.Entries {
		sum += view.Entries[i].BalanceEffect()
	}
	if view.Lease.Balance != sum {
		t.Errorf("balance = %d, sum of entry effects = %d", view.Lease.Balance, sum)
	}
	if view.Lease.Balance != 1000 {
		t.Errorf("balance = %d, want 1000", view.Lease.Balance)
	}
}

// Walks the lifecycle of a lease through a month: opening charge, full
// payment, next month's rent, then an overpayment.
func TestBalanceService_MonthLifecycle(t *testing.T) {
	store, leaseID := newLeaseFixture(landlordID, renterID, 1200, 0)
	svc := NewBalanceService(store, store)
	ctx := context.Background()

	view, err := svc.Adjust(ctx, leaseID, 1200, "Opening balance", landlord)
	if err != nil {
		t.Fatalf("opening Adjust() error = %v", err)
	}
	if view.Lease.Balance != 1200 || !view.Lease.PaidCurrentPeriod() {
		t.Fatalf("after opening: balance=%d paid=%v, want 1200/true", view.Lease.Balance, view.Lease.PaidCurrentPeriod())
	}

	view, err = svc.Pay(ctx, leaseID, 1200, renter)
	if err != nil {
		t.Fatalf("Pay() error = %v", err)
	}
	if view.Lease.Balance != 0 || !view.Lease.PaidCurrentPeriod() {
		t.Fatalf("after payment: balance=%d paid=%v, want 0/true", view.Lease.Balance, view.Lease.PaidCurrentPeriod())
	}

	view, err = svc.PostMonthlyCharge(ctx, leaseID, landlord)
	if err != nil {
		t.Fatalf("PostMonthlyCharge() error = %v", err)
	}
	if view.Lease.Balance != 1200 || !view.Lease.PaidCurrentPeriod() {
		t.Fatalf("after charge: balance=%d paid=%v, want 1200/true", view.Lease.Balance, view.Lease.PaidCurrentPeriod())
	}

	view, err = svc.Pay(ctx, leaseID, 1300, renter)
	if err != nil {
		t.Fatalf("overpay Pay() error = %v", err)
	}
	if view.Lease.Balance != -100 || !view.Lease.PaidCurrentPeriod() {
		t.Fatalf("after overpay: balance=%d paid=%v, want -100/true", view.Lease.Balance, view.Lease.PaidCurrentPeriod())
	}
}

type capturingPublisher struct {
	events []models.LedgerEntry
	err    error
}

func (p *capturingPublisher) PublishEntryRecorded(ctx context.Context, lease *models.Lease, entry *models.LedgerEntry) error {
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, *entry)
	return nil
}

func TestBalanceService_Publisher(t *testing.T) {
	store, leaseID := newLeaseFixture(landlordID, renterID, 1200, 1200)
	svc := NewBalanceService(store, store)
	pub := &capturingPublisher{}
	svc.SetPublisher(pub)

	if _, err := svc.Pay(context.Background(), leaseID, 100, renter); err != nil {
		t.Fatalf("Pay() error = %v", err)
	}
	if len(pub.events) != 1 {
		t.Fatalf("published events = %d, want 1", len(pub.events))
	}
	if pub.events[0].Kind != models.EntryKindPayment {
		t.Errorf("published kind = %s, want payment", pub.events[0].Kind)
	}
}

func TestBalanceService_PublisherFailureDoesNotFailCommand(t *testing.T) {
	store, leaseID := newLeaseFixture(landlordID, renterID, 1200, 1200)
	svc := NewBalanceService(store, store)
	svc.SetPublisher(&capturingPublisher{err: errors.New("broker down")})

	view, err := svc.Pay(context.Background(), leaseID, 100, renter)
	if err != nil {
		t.Fatalf("Pay() error = %v", err)
	}
	if view.Lease.Balance != 1100 {
		t.Errorf("balance = %d, want 1100", view.Lease.Balance)
	}
}
