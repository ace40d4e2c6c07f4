package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"rently-backend/internal/auth"
	"rently-backend/internal/models"
	"rently-backend/internal/repositories"
)

// SeedDemoData bootstraps a fresh database with one landlord, one renter,
// one unit and one active lease carrying a balance of one month's rent
// (recorded as an opening charge entry). Runs only when the users table
// is empty.
func SeedDemoData(ctx context.Context, userRepo *repositories.UserRepository, unitRepo *repositories.UnitRepository, leaseRepo *repositories.LeaseRepository, ledgerRepo *repositories.LedgerRepository) error {
	count, err := userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	log.Println("[Seed] Empty database, creating demo landlord, renter, unit and lease")

	landlordHash, err := auth.HashPassword("landlord123")
	if err != nil {
		return err
	}
	landlord := &models.User{
		Name:         "Demo Landlord",
		Email:        "landlord@rently.test",
		PasswordHash: landlordHash,
		Role:         models.RoleLandlord,
	}
	if err := userRepo.Create(ctx, landlord); err != nil {
		return fmt.Errorf("failed to seed landlord: %w", err)
	}

	renterHash, err := auth.HashPassword("renter123")
	if err != nil {
		return err
	}
	renter := &models.User{
		Name:         "Demo Renter",
		Email:        "renter@rently.test",
		PasswordHash: renterHash,
		Role:         models.RoleRenter,
	}
	if err := userRepo.Create(ctx, renter); err != nil {
		return fmt.Errorf("failed to seed renter: %w", err)
	}

	unit := &models.Unit{
		LandlordID:     landlord.ID,
		Title:          "2BR Apartment, Maple Street",
		Address:        "14 Maple Street, Springfield",
		AdvertisedRent: 1200,
		Stage:          "Rented",
	}
	if err := unitRepo.Create(ctx, unit); err != nil {
		return fmt.Errorf("failed to seed unit: %w", err)
	}

	lease := &models.Lease{
		UnitID:         unit.ID,
		RenterID:       renter.ID,
		MonthlyRent:    1200,
		DueDay:         1,
		StartDate:      time.Now().UTC(),
		OccupantsCount: 2,
		Active:         true,
	}
	if err := leaseRepo.Create(ctx, lease); err != nil {
		return fmt.Errorf("failed to seed lease: %w", err)
	}

	entry := &models.LedgerEntry{
		LeaseID:    lease.ID,
		Kind:       models.EntryKindCharge,
		Amount:     lease.MonthlyRent,
		Note:       "Opening balance",
		RecordedBy: landlord.ID,
	}
	if _, err := ledgerRepo.ApplyEntry(ctx, lease.ID, entry.BalanceEffect(), entry); err != nil {
		return fmt.Errorf("failed to seed opening charge: %w", err)
	}

	log.Println("[Seed] Demo data created")
	return nil
}
