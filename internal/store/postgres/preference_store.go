package postgres

import (
	"context"
	"fmt"

	"github.com/travelmate-app/travelmate-backend/internal/store"
	"github.com/travelmate-app/travelmate-backend/types"
)

// PreferenceStore implements store.PreferenceStore on PostgreSQL.
type PreferenceStore struct {
	pool Pool
}

func NewPreferenceStore(pool Pool) *PreferenceStore {
	return &PreferenceStore{pool: pool}
}

func (s *PreferenceStore) List(ctx context.Context) ([]types.PreferenceOption, error) {
	query := `
		SELECT id, key, label, created_at
		FROM preference_options
		ORDER BY label ASC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing preference options: %w", err)
	}
	defer rows.Close()

	var options []types.PreferenceOption
	for rows.Next() {
		var option types.PreferenceOption
		if err := rows.Scan(&option.ID, &option.Key, &option.Label, &option.CreatedAt); err != nil {
			return nil, err
		}
		options = append(options, option)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return options, nil
}

func (s *PreferenceStore) Create(ctx context.Context, option types.PreferenceOption) (string, error) {
	query := `
		INSERT INTO preference_options (key, label)
		VALUES ($1, $2)
		RETURNING id`

	var id string
	if err := s.pool.QueryRow(ctx, query, option.Key, option.Label).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return "", store.ErrDuplicate
		}
		return "", fmt.Errorf("creating preference option: %w", err)
	}

	return id, nil
}

func (s *PreferenceStore) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM preference_options WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting preference option %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
