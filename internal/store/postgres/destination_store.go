package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/travelmate-app/travelmate-backend/internal/store"
	"github.com/travelmate-app/travelmate-backend/logger"
	"github.com/travelmate-app/travelmate-backend/types"
)

const destinationColumns = "id, name, city, region, category, description, budget, rating, images, created_by, created_at, updated_at"

// DestinationStore implements store.DestinationStore on PostgreSQL.
type DestinationStore struct {
	pool Pool
}

func NewDestinationStore(pool Pool) *DestinationStore {
	return &DestinationStore{pool: pool}
}

func (s *DestinationStore) Create(ctx context.Context, d types.Destination) (string, error) {
	query := `
		INSERT INTO destinations (name, city, region, category, description, budget, rating, images, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var id string
	err := s.pool.QueryRow(ctx, query,
		d.Name,
		d.City,
		d.Region,
		d.Category,
		d.Description,
		d.Budget,
		d.Rating,
		d.Images,
		d.CreatedBy,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return "", store.ErrDuplicate
		}
		return "", fmt.Errorf("creating destination: %w", err)
	}

	return id, nil
}

func (s *DestinationStore) GetByID(ctx context.Context, id string) (*types.Destination, error) {
	query := `
		SELECT ` + destinationColumns + `
		FROM destinations
		WHERE id = $1 AND deleted_at IS NULL`

	d, err := scanDestination(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("fetching destination %s: %w", id, err)
	}

	return d, nil
}

// List returns catalog entries matching the filter, newest first. The query
// filter matches name, city, or region case-insensitively by substring.
func (s *DestinationStore) List(ctx context.Context, filter types.DestinationFilter) ([]types.Destination, error) {
	var (
		conditions = []string{"deleted_at IS NULL"}
		args       []any
	)

	if filter.Region != "" {
		args = append(args, filter.Region)
		conditions = append(conditions, fmt.Sprintf("region ILIKE $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category ILIKE $%d", len(args)))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		n := len(args)
		conditions = append(conditions,
			fmt.Sprintf("(name ILIKE $%d OR city ILIKE $%d OR region ILIKE $%d)", n, n, n))
	}

	query := `
		SELECT ` + destinationColumns + `
		FROM destinations
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY created_at DESC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing destinations: %w", err)
	}
	defer rows.Close()

	var destinations []types.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		destinations = append(destinations, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return destinations, nil
}

func (s *DestinationStore) Update(ctx context.Context, id string, update types.DestinationUpdate) (*types.Destination, error) {
	query := `
		UPDATE destinations
		SET name = COALESCE($1, name),
			city = COALESCE($2, city),
			region = COALESCE($3, region),
			category = COALESCE($4, category),
			description = COALESCE($5, description),
			budget = COALESCE($6, budget),
			rating = COALESCE($7, rating),
			images = COALESCE($8, images),
			updated_at = NOW()
		WHERE id = $9 AND deleted_at IS NULL
		RETURNING ` + destinationColumns

	d, err := scanDestination(s.pool.QueryRow(ctx, query,
		update.Name,
		update.City,
		update.Region,
		update.Category,
		update.Description,
		update.Budget,
		update.Rating,
		update.Images,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("updating destination %s: %w", id, err)
	}

	return d, nil
}

func (s *DestinationStore) Delete(ctx context.Context, id string) error {
	query := `
		UPDATE destinations
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	tag, err := s.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting destination %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}

	logger.GetLogger().Infow("Destination deleted", "destinationID", id)
	return nil
}

func scanDestination(row pgx.Row) (*types.Destination, error) {
	d := &types.Destination{}
	err := row.Scan(
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
	return d, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
