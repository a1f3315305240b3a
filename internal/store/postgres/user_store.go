package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/travelmate-app/travelmate-backend/internal/store"
	"github.com/travelmate-app/travelmate-backend/types"
)

const userColumns = "id, email, display_name, role, preferences, created_at, updated_at"

// UserStore implements store.UserStore on PostgreSQL. Rows mirror Supabase
// auth subjects; the ID is the auth provider's subject UUID.
type UserStore struct {
	pool Pool
}

func NewUserStore(pool Pool) *UserStore {
	return &UserStore{pool: pool}
}

// Upsert inserts a profile row on first sight of an auth subject and
// refreshes the email on subsequent logins. Role and preferences are
// app-owned and never overwritten here.
func (s *UserStore) Upsert(ctx context.Context, profile types.UserProfile) error {
	query := `
		INSERT INTO user_profiles (id, email, display_name, role, preferences)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email,
			updated_at = NOW()`

	role := profile.Role
	if !role.IsValid() {
		role = types.UserRoleTraveler
	}
	preferences := profile.Preferences
	if preferences == nil {
		preferences = []string{}
	}

	if _, err := s.pool.Exec(ctx, query,
		profile.ID,
		profile.Email,
		profile.DisplayName,
		role,
		preferences,
	); err != nil {
		return fmt.Errorf("upserting user profile: %w", err)
	}
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*types.UserProfile, error) {
	query := `
		SELECT ` + userColumns + `
		FROM user_profiles
		WHERE id = $1`

	profile, err := scanUserProfile(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("fetching user profile %s: %w", id, err)
	}

	return profile, nil
}

func (s *UserStore) List(ctx context.Context) ([]types.UserProfile, error) {
	query := `
		SELECT ` + userColumns + `
		FROM user_profiles
		ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing user profiles: %w", err)
	}
	defer rows.Close()

	var profiles []types.UserProfile
	for rows.Next() {
		profile, err := scanUserProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (s *UserStore) UpdateProfile(ctx context.Context, id string, update types.UserProfileUpdate) (*types.UserProfile, error) {
	query := `
		UPDATE user_profiles
		SET display_name = COALESCE($1, display_name),
			preferences = COALESCE($2, preferences),
			updated_at = NOW()
		WHERE id = $3
		RETURNING ` + userColumns

	profile, err := scanUserProfile(s.pool.QueryRow(ctx, query,
		update.DisplayName,
		update.Preferences,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("updating user profile %s: %w", id, err)
	}

	return profile, nil
}

func (s *UserStore) SetRole(ctx context.Context, id string, role types.UserRole) error {
	query := `
		UPDATE user_profiles
		SET role = $1, updated_at = NOW()
		WHERE id = $2`

	tag, err := s.pool.Exec(ctx, query, role, id)
	if err != nil {
		return fmt.Errorf("setting role for user %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM user_profiles WHERE id = $1`

	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting user profile %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanUserProfile(row pgx.Row) (*types.UserProfile, error) {
	profile := &types.UserProfile{}
	err := row.Scan(
		&profile.ID,
		&profile.Email,
		&profile.DisplayName,
		&profile.Role,
		&profile.Preferences,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return profile, nil
}
