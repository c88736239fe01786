package postgres

import (
	"context"
	"errors"
	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recruiterRepo struct {
	db *pgxpool.Pool
}

func NewRecruiterRepository(db *pgxpool.Pool) domain.RecruiterRepository {
	return &recruiterRepo{db: db}
}

func (r *recruiterRepo) Create(ctx context.Context, recruiter *domain.Recruiter) error {
	query := `INSERT INTO recruiters (id, name, email, password_hash, contact_no, address, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		recruiter.ID, recruiter.Name, recruiter.Email, recruiter.PasswordHash,
		recruiter.ContactNo, recruiter.Address, recruiter.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *recruiterRepo) GetByEmail(ctx context.Context, email string) (*domain.Recruiter, error) {
	query := `SELECT id, name, email, password_hash, contact_no, address, created_at FROM recruiters WHERE email = $1`
	var rec domain.Recruiter
	err := r.db.QueryRow(ctx, query, email).Scan(
		&rec.ID, &rec.Name, &rec.Email, &rec.PasswordHash, &rec.ContactNo, &rec.Address, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recruiterRepo) GetByID(ctx context.Context, id string) (*domain.Recruiter, error) {
	query := `SELECT id, name, email, password_hash, contact_no, address, created_at FROM recruiters WHERE id = $1`
	var rec domain.Recruiter
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.Name, &rec.Email, &rec.PasswordHash, &rec.ContactNo, &rec.Address, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recruiterRepo) UpdateProfile(ctx context.Context, id, name, contactNo string, address *string) (*domain.Recruiter, error) {
	query := `UPDATE recruiters SET name = $2, contact_no = $3, address = $4 WHERE id = $1
	          RETURNING id, name, email, password_hash, contact_no, address, created_at`
	var rec domain.Recruiter
	err := r.db.QueryRow(ctx, query, id, name, contactNo, address).Scan(
		&rec.ID, &rec.Name, &rec.Email, &rec.PasswordHash, &rec.ContactNo, &rec.Address, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func (r *recruiterRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	query := `UPDATE recruiters SET password_hash = $2 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *recruiterRepo) FetchAll(ctx context.Context) ([]domain.Recruiter, error) {
	query := `SELECT id, name, email, password_hash, contact_no, address, created_at FROM recruiters ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recruiters []domain.Recruiter
	for rows.Next() {
		var rec domain.Recruiter
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.PasswordHash, &rec.ContactNo, &rec.Address, &rec.CreatedAt); err != nil {
			return nil, err
		}
		recruiters = append(recruiters, rec)
	}
	return recruiters, nil
}

func (r *recruiterRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM recruiters`).Scan(&total)
	return total, err
}
