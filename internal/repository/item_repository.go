package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campus-kit/lostfound-service/internal/domain"
)

// ItemRepository encapsulates lost item persistence.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	ListByStatus(ctx context.Context, status domain.ItemStatus) ([]domain.Item, error)
	ListByUploader(ctx context.Context, profileID string) ([]domain.Item, error)
	ListAll(ctx context.Context) ([]domain.Item, error)
	// MarkCollected flips an active item to collected. It reports false
	// when the item exists but is no longer active.
	MarkCollected(ctx context.Context, id string, at time.Time) (bool, error)
	// ArchiveOlderThan transitions every active item created before the
	// cutoff to archived and returns the number of rows touched.
	ArchiveOlderThan(ctx context.Context, cutoff, at time.Time) (int64, error)
}

const itemColumns = `id, description, found_location, collect_location, image_key, image_url,
               status, uploaded_by, created_at, collected_at, archived_at`

type itemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository instantiates repository.
func NewItemRepository(pool *pgxpool.Pool) ItemRepository {
	return &itemRepository{pool: pool}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	const query = `
        INSERT INTO lost_items (description, found_location, collect_location, image_key, image_url, status, uploaded_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		item.Description,
		item.FoundLocation,
		item.CollectLocation,
		item.ImageKey,
		item.ImageURL,
		item.Status,
		item.UploadedBy,
	).Scan(&item.ID, &item.CreatedAt)
}

func (r *itemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	const query = `SELECT ` + itemColumns + ` FROM lost_items WHERE id=$1`

	var item domain.Item
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Description,
		&item.FoundLocation,
		&item.CollectLocation,
		&item.ImageKey,
		&item.ImageURL,
		&item.Status,
		&item.UploadedBy,
		&item.CreatedAt,
		&item.CollectedAt,
		&item.ArchivedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) ListByStatus(ctx context.Context, status domain.ItemStatus) ([]domain.Item, error) {
	const query = `SELECT ` + itemColumns + `
        FROM lost_items WHERE status=$1
        ORDER BY created_at DESC, seq DESC`

	rows, err := r.pool.Query(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *itemRepository) ListByUploader(ctx context.Context, profileID string) ([]domain.Item, error) {
	const query = `SELECT ` + itemColumns + `
        FROM lost_items WHERE uploaded_by=$1
        ORDER BY created_at DESC, seq DESC`

	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *itemRepository) ListAll(ctx context.Context) ([]domain.Item, error) {
	const query = `SELECT ` + itemColumns + `
        FROM lost_items ORDER BY created_at DESC, seq DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *itemRepository) MarkCollected(ctx context.Context, id string, at time.Time) (bool, error) {
	// The status predicate makes the read-modify-write atomic per row;
	// a concurrent sweep or repeat call loses cleanly.
	const query = `
        UPDATE lost_items SET status=$1, collected_at=$2
        WHERE id=$3 AND status=$4`
	cmd, err := r.pool.Exec(ctx, query, domain.ItemStatusCollected, at, id, domain.ItemStatusActive)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *itemRepository) ArchiveOlderThan(ctx context.Context, cutoff, at time.Time) (int64, error) {
	const query = `
        UPDATE lost_items SET status=$1, archived_at=$2
        WHERE status=$3 AND created_at < $4`
	cmd, err := r.pool.Exec(ctx, query, domain.ItemStatusArchived, at, domain.ItemStatusActive, cutoff)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func scanItems(rows pgx.Rows) ([]domain.Item, error) {
	var result []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(
			&item.ID,
			&item.Description,
			&item.FoundLocation,
			&item.CollectLocation,
			&item.ImageKey,
			&item.ImageURL,
			&item.Status,
			&item.UploadedBy,
			&item.CreatedAt,
			&item.CollectedAt,
			&item.ArchivedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
