package models

import "testing"

func TestLease_PaidCurrentPeriod(t *testing.T) {
	testCases := []struct {
		name        string
		balance     int64
		monthlyRent int64
		wantPaid    bool
	}{
		{name: "balance equal to rent is paid", balance: 1200, monthlyRent: 1200, wantPaid: true},
		{name: "balance one over rent is overdue", balance: 1201, monthlyRent: 1200, wantPaid: false},
		{name: "zero balance is paid", balance: 0, monthlyRent: 1200, wantPaid: true},
		{name: "negative balance is paid", balance: -300, monthlyRent: 1200, wantPaid: true},
		{name: "two months outstanding is overdue", balance: 2400, monthlyRent: 1200, wantPaid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := &Lease{Balance: tc.balance, MonthlyRent: tc.monthlyRent}
			if got := l.PaidCurrentPeriod(); got != tc.wantPaid {
				t.Errorf("PaidCurrentPeriod() = %v, want %v", got, tc.wantPaid)
			}
			if got := l.Overdue(); got != !tc.wantPaid {
				t.Errorf("Overdue() = %v, want %v", got, !tc.wantPaid)
			}
		})
	}
}

func TestLedgerEntry_BalanceEffect(t *testing.T) {
	testCases := []struct {
		name   string
		kind   EntryKind
		amount int64
		want   int64
	}{
		{name: "payment reduces balance", kind: EntryKindPayment, amount: 500, want: -500},
		{name: "charge raises balance", kind: EntryKindCharge, amount: 1200, want: 1200},
		{name: "credit lowers balance", kind: EntryKindCredit, amount: -300, want: -300},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := &LedgerEntry{Kind: tc.kind, Amount: tc.amount}
			if got := e.BalanceEffect(); got != tc.want {
				t.Errorf("BalanceEffect() = %d, want %d", got, tc.want)
			}
		})
	}
}
