package types

import "time"

// WishlistItem links a user to a destination they bookmarked.
type WishlistItem struct {
	UserID        string    `json:"userId"`
	DestinationID string    `json:"destinationId"`
	CreatedAt     time.Time `json:"createdAt"`
	// Destination is populated on reads that join the catalog row.
	Destination *Destination `json:"destination,omitempty"`
}
