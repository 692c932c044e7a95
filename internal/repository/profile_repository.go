package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campus-kit/lostfound-service/internal/domain"
)

// ProfileRepository defines persistence access for uploader profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByCredential(ctx context.Context, credentialID string) (*domain.Profile, error)
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	const query = `
        INSERT INTO profiles (name, email, role, credential_id)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		profile.Name,
		profile.Email,
		profile.Role,
		profile.CredentialID,
	).Scan(&profile.ID, &profile.CreatedAt)
}

func (r *profileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	const query = `
        SELECT id, name, email, role, credential_id, created_at
        FROM profiles WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *profileRepository) GetByCredential(ctx context.Context, credentialID string) (*domain.Profile, error) {
	const query = `
        SELECT id, name, email, role, credential_id, created_at
        FROM profiles WHERE credential_id=$1`
	return r.fetchSingle(ctx, query, credentialID)
}

func (r *profileRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Email,
		&profile.Role,
		&profile.CredentialID,
		&profile.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}
