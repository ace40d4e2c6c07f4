package services

import (
	"fmt"
	"time"

	"rently-backend/internal/models"
)

// FeedItem is one rendered line of a portal's ledger feed.
type FeedItem struct {
	EntryID string           `json:"entry_id"`
	Kind    models.EntryKind `json:"kind"`
	Label   string           `json:"label"`
	Amount  string           `json:"amount"` // signed display amount, e.g. "+1200" / "-300"
	Note    string           `json:"note"`
	Date    time.Time        `json:"date"`
}

// renderFeed turns ledger entries into display lines. Both portals feed
// off this one function so their labels and signs cannot drift apart:
// charges show with a plus, credits and payments with a minus, and the
// payment label depends on whose portal is looking.
func renderFeed(entries []models.LedgerEntry, viewerRole string) []FeedItem {
	feed := make([]FeedItem, 0, len(entries))
	for _, e := range entries {
		item := FeedItem{
			EntryID: e.ID.String(),
			Kind:    e.Kind,
			Date:    e.CreatedAt,
		}
		abs := e.Amount
		if abs < 0 {
			abs = -abs
		}
		switch e.Kind {
		case models.EntryKindCharge:
			item.Label = "Rent issued"
			item.Amount = fmt.Sprintf("+%d", abs)
			item.Note = "Posted by landlord"
		case models.EntryKindCredit:
			item.Label = "Credited on"
			item.Amount = fmt.Sprintf("-%d", abs)
			item.Note = "Posted by landlord"
		case models.EntryKindPayment:
			item.Amount = fmt.Sprintf("-%d", abs)
			if viewerRole == models.RoleRenter {
				item.Label = "Paid by you"
				item.Note = "Paid by you"
			} else {
				item.Label = "Paid on"
				item.Note = "Paid by renter"
			}
		}
		feed = append(feed, item)
	}
	return feed
}
