package postgres

import (
	"context"
	"go-jobboard-backend/internal/domain"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type visitorRepo struct {
	db *pgxpool.Pool
}

func NewVisitorRepository(db *pgxpool.Pool) domain.VisitorRepository {
	return &visitorRepo{db: db}
}

func (r *visitorRepo) Create(ctx context.Context, visitor *domain.Visitor) error {
	query := `INSERT INTO visitors (ip, user_agent, page, visited_at)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query, visitor.IP, visitor.UserAgent, visitor.Page, visitor.VisitedAt).Scan(&visitor.ID)
}

func (r *visitorRepo) ExistsSince(ctx context.Context, ip string, since time.Time) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM visitors WHERE ip = $1 AND visited_at >= $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, ip, since).Scan(&exists)
	return exists, err
}

func (r *visitorRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM visitors`).Scan(&total)
	return total, err
}

func (r *visitorRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM visitors WHERE visited_at >= $1`, since).Scan(&total)
	return total, err
}
