package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campus-kit/lostfound-service/internal/domain"
)

// CredentialRepository handles persistence for staff credentials.
type CredentialRepository interface {
	Create(ctx context.Context, cred *domain.StaffCredential) error
	GetByID(ctx context.Context, id string) (*domain.StaffCredential, error)
	GetByUsername(ctx context.Context, username string) (*domain.StaffCredential, error)
	List(ctx context.Context) ([]domain.StaffCredential, error)
}

type credentialRepository struct {
	pool *pgxpool.Pool
}

// NewCredentialRepository returns a Postgres-backed implementation.
func NewCredentialRepository(pool *pgxpool.Pool) CredentialRepository {
	return &credentialRepository{pool: pool}
}

func (r *credentialRepository) Create(ctx context.Context, cred *domain.StaffCredential) error {
	const query = `
        INSERT INTO staff_credentials (username, password_hash, name, email)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		cred.Username,
		cred.PasswordHash,
		cred.Name,
		cred.Email,
	).Scan(&cred.ID, &cred.CreatedAt)
}

func (r *credentialRepository) GetByID(ctx context.Context, id string) (*domain.StaffCredential, error) {
	const query = `
        SELECT id, username, password_hash, name, email, created_at
        FROM staff_credentials WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *credentialRepository) GetByUsername(ctx context.Context, username string) (*domain.StaffCredential, error) {
	const query = `
        SELECT id, username, password_hash, name, email, created_at
        FROM staff_credentials WHERE username=$1`
	return r.fetchSingle(ctx, query, username)
}

func (r *credentialRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.StaffCredential, error) {
	var cred domain.StaffCredential
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&cred.ID,
		&cred.Username,
		&cred.PasswordHash,
		&cred.Name,
		&cred.Email,
		&cred.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *credentialRepository) List(ctx context.Context) ([]domain.StaffCredential, error) {
	const query = `
        SELECT id, username, password_hash, name, email, created_at
        FROM staff_credentials ORDER BY username`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCredentials(rows)
}

func scanCredentials(rows pgx.Rows) ([]domain.StaffCredential, error) {
	var result []domain.StaffCredential
	for rows.Next() {
		var cred domain.StaffCredential
		if err := rows.Scan(
			&cred.ID,
			&cred.Username,
			&cred.PasswordHash,
			&cred.Name,
			&cred.Email,
			&cred.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, cred)
	}
	return result, rows.Err()
}
