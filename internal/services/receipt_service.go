package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"rently-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf/v2"
)

// ReceiptService renders payment receipts and lease statements as PDFs.
type ReceiptService struct {
	Leases LeaseStore
	Ledger LedgerStore
}

func NewReceiptService(leases LeaseStore, ledger LedgerStore) *ReceiptService {
	return &ReceiptService{Leases: leases, Ledger: ledger}
}

// PaymentReceipt generates a PDF receipt for a single payment entry.
// Readable by the lease's renter and the owning landlord.
func (s *ReceiptService) PaymentReceipt(ctx context.Context, entryID uuid.UUID, ident models.Identity) ([]byte, error) {
	entry, err := s.Ledger.GetEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.Kind != models.EntryKindPayment {
		return nil, invalidf("entry_id", "receipts exist for payments only")
	}

	lease, err := s.Leases.Get(ctx, entry.LeaseID)
	if err != nil {
		return nil, err
	}
	if ident.UserID != lease.RenterID && ident.UserID != lease.LandlordID {
		return nil, ErrForbidden
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Rently - Payment Receipt", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", time.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Payment details box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Payment Details", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Receipt: %s", entry.ID), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Date: %s", entry.CreatedAt.Format("02-Jan-2006")), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Lease: %s", lease.ID), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Monthly Rent: %d", lease.MonthlyRent), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Amount
	pdf.SetFillColor(200, 255, 200)
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 10, fmt.Sprintf("Amount Paid: %d", entry.Amount), "1", 1, "C", true, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 10)
	status := "Balance outstanding"
	if lease.PaidCurrentPeriod() {
		status = "Paid up for the current period"
	}
	pdf.CellFormat(190, 6, fmt.Sprintf("Balance after all recorded activity: %d (%s)", lease.Balance, status), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

// LeaseStatement generates a PDF statement of the full ledger for a lease.
func (s *ReceiptService) LeaseStatement(ctx context.Context, leaseID uuid.UUID, ident models.Identity) ([]byte, error) {
	lease, err := s.Leases.Get(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	if ident.UserID != lease.RenterID && ident.UserID != lease.LandlordID {
		return nil, ErrForbidden
	}

	entries, err := s.Ledger.ListByLease(ctx, leaseID)
	if err != nil {
		return nil, err
	}
	feed := renderFeed(entries, ident.Role)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Rently - Lease Statement", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Lease %s | Monthly rent %d", lease.ID, lease.MonthlyRent), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Table header
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(35, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Activity", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 0, "C", true, 0, "")
	pdf.CellFormat(70, 7, "Note", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range feed {
		pdf.CellFormat(35, 6, item.Date.Format("02-Jan-2006"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, item.Label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 6, item.Amount, "1", 0, "R", false, 0, "")
		note := item.Note
		if len(note) > 40 {
			note = note[:37] + "..."
		}
		pdf.CellFormat(70, 6, note, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(5)

	if lease.PaidCurrentPeriod() {
		pdf.SetFillColor(200, 255, 200)
	} else {
		pdf.SetFillColor(255, 200, 200)
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(190, 10, fmt.Sprintf("Balance: %d", lease.Balance), "1", 1, "C", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render statement: %w", err)
	}
	return buf.Bytes(), nil
}
