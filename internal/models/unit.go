package models

import (
	"time"

	"github.com/google/uuid"
)

// Unit is a rental unit owned by exactly one landlord. At most one lease
// on a unit is active at a time; the stage label is free text for the
// landlord's own pipeline and carries no engine semantics.
type Unit struct {
	ID             uuid.UUID `json:"id"`
	LandlordID     int       `json:"landlord_id"`
	Title          string    `json:"title"`
	Address        string    `json:"address"`
	AdvertisedRent int64     `json:"advertised_rent"`
	Stage          string    `json:"stage"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// ActiveLease is attached on landlord listings; nil when vacant.
	ActiveLease *Lease `json:"active_lease,omitempty"`
}

// CreateUnitRequest represents the request body for creating a unit
type CreateUnitRequest struct {
	Title          string `json:"title"`
	Address        string `json:"address"`
	AdvertisedRent int64  `json:"advertised_rent"`
	Stage          string `json:"stage"`
}
