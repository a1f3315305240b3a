package postgres

import (
	"context"
	"fmt"

	"github.com/travelmate-app/travelmate-backend/internal/store"
	"github.com/travelmate-app/travelmate-backend/types"
)

// WishlistStore implements store.WishlistStore on PostgreSQL.
type WishlistStore struct {
	pool Pool
}

func NewWishlistStore(pool Pool) *WishlistStore {
	return &WishlistStore{pool: pool}
}

// Add bookmarks a destination. Re-adding an existing bookmark is a no-op.
func (s *WishlistStore) Add(ctx context.Context, userID, destinationID string) error {
	query := `
		INSERT INTO wishlist_items (user_id, destination_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, destination_id) DO NOTHING`

	if _, err := s.pool.Exec(ctx, query, userID, destinationID); err != nil {
		return fmt.Errorf("adding wishlist item: %w", err)
	}
	return nil
}

func (s *WishlistStore) Remove(ctx context.Context, userID, destinationID string) error {
	query := `
		DELETE FROM wishlist_items
		WHERE user_id = $1 AND destination_id = $2`

	tag, err := s.pool.Exec(ctx, query, userID, destinationID)
	if err != nil {
		return fmt.Errorf("removing wishlist item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ListByUser returns bookmarks with their catalog entries joined in, newest
// bookmark first. Bookmarks whose destination was soft-deleted are skipped.
func (s *WishlistStore) ListByUser(ctx context.Context, userID string) ([]types.WishlistItem, error) {
	query := `
		SELECT w.user_id, w.destination_id, w.created_at,
			d.id, d.name, d.city, d.region, d.category, d.description, d.budget, d.rating, d.images, d.created_by, d.created_at, d.updated_at
		FROM wishlist_items w
		JOIN destinations d ON d.id = w.destination_id AND d.deleted_at IS NULL
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing wishlist for user %s: %w", userID, err)
	}
	defer rows.Close()

	var items []types.WishlistItem
	for rows.Next() {
		var (
			item types.WishlistItem
			d    types.Destination
		)
		err := rows.Scan(
			&item.UserID,
			&item.DestinationID,
			&item.CreatedAt,
			&d.ID,
			&d.Name,
			&d.City,
			&d.Region,
			&d.Category,
			&d.Description,
			&d.Budget,
			&d.Rating,
			&d.Images,
			&d.CreatedBy,
			&d.CreatedAt,
			&d.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		item.Destination = &d
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
