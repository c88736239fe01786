package postgres

import (
	"context"
	"errors"
	"fmt"
	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

const jobColumns = `j.id, j.title, j.experience, j.description, j.location, j.salary, j.category, j.link, j.posted_by, j.posted_by_role, j.posted_at, j.status`

// ownerJoin resolves the polymorphic posted_by reference: the ID points into
// recruiters or admins depending on posted_by_role, never both.
const ownerJoin = `
	LEFT JOIN recruiters r ON j.posted_by_role = 'Recruiter' AND j.posted_by = r.id
	LEFT JOIN admins a ON j.posted_by_role = 'Admin' AND j.posted_by = a.id`

const ownerColumns = `COALESCE(r.name, a.name, '') AS owner_name, COALESCE(r.email, a.email), r.contact_no, r.address`

func scanJobWithOwner(row pgx.Row) (*domain.JobWithOwner, error) {
	var job domain.JobWithOwner
	err := row.Scan(
		&job.ID, &job.Title, &job.Experience, &job.Description, &job.Location, &job.Salary,
		&job.Category, &job.Link, &job.PostedBy, &job.PostedByRole, &job.PostedAt, &job.Status,
		&job.OwnerName, &job.OwnerEmail, &job.OwnerContact, &job.OwnerAddress,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	query := `INSERT INTO jobs (id, title, experience, description, location, salary, category, link, posted_by, posted_by_role, posted_at, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Experience, job.Description, job.Location, job.Salary,
		job.Category, job.Link, job.PostedBy, job.PostedByRole, job.PostedAt, job.Status,
	)
	return err
}

// FetchApproved retrieves approved jobs only, with optional filters.
// The 'approved' condition is hardcoded so no client input can widen it.
func (r *jobRepo) FetchApproved(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.JobWithOwner, int64, error) {
	where := `WHERE j.status = 'approved'`
	args := []interface{}{}

	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		where += fmt.Sprintf(" AND j.location ILIKE $%d", len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where += fmt.Sprintf(" AND j.category = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		where += fmt.Sprintf(" AND (j.title ILIKE $%d OR j.description ILIKE $%d)", len(args), len(args))
	}

	countQuery := `SELECT COUNT(*) FROM jobs j ` + where
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT %s, %s FROM jobs j %s %s ORDER BY j.posted_at DESC LIMIT $%d OFFSET $%d`,
		jobColumns, ownerColumns, ownerJoin, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobWithOwner
	for rows.Next() {
		job, err := scanJobWithOwner(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}

	return jobs, total, nil
}

// GetApprovedByID only returns approved jobs; pending and rejected jobs are
// invisible here regardless of ID.
func (r *jobRepo) GetApprovedByID(ctx context.Context, id string) (*domain.JobWithOwner, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM jobs j %s WHERE j.id = $1 AND j.status = 'approved'`,
		jobColumns, ownerColumns, ownerJoin)

	job, err := scanJobWithOwner(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return job, nil
}

func (r *jobRepo) FetchLatest(ctx context.Context, limit int) ([]domain.JobWithOwner, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM jobs j %s WHERE j.status = 'approved' ORDER BY j.posted_at DESC LIMIT $1`,
		jobColumns, ownerColumns, ownerJoin)

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobWithOwner
	for rows.Next() {
		job, err := scanJobWithOwner(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

// FetchPending is the moderation queue; owner contact fields are included so
// admins can reach the poster.
func (r *jobRepo) FetchPending(ctx context.Context) ([]domain.JobWithOwner, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM jobs j %s WHERE j.status = 'pending' ORDER BY j.posted_at DESC`,
		jobColumns, ownerColumns, ownerJoin)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobWithOwner
	for rows.Next() {
		job, err := scanJobWithOwner(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

func (r *jobRepo) FetchAll(ctx context.Context, limit, offset int) ([]domain.JobWithOwner, int64, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM jobs j %s ORDER BY j.posted_at DESC LIMIT $1 OFFSET $2`,
		jobColumns, ownerColumns, ownerJoin)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobWithOwner
	for rows.Next() {
		job, err := scanJobWithOwner(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

func (r *jobRepo) FetchByOwner(ctx context.Context, recruiterID string) ([]domain.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs j WHERE j.posted_by = $1 AND j.posted_by_role = 'Recruiter' ORDER BY j.posted_at DESC`, jobColumns)

	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Experience, &job.Description, &job.Location, &job.Salary,
			&job.Category, &job.Link, &job.PostedBy, &job.PostedByRole, &job.PostedAt, &job.Status,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// GetByIDForOwner folds the ownership check into the lookup: a job owned by
// a different recruiter is indistinguishable from a missing one.
func (r *jobRepo) GetByIDForOwner(ctx context.Context, id, recruiterID string) (*domain.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs j WHERE j.id = $1 AND j.posted_by = $2 AND j.posted_by_role = 'Recruiter'`, jobColumns)

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id, recruiterID).Scan(
		&job.ID, &job.Title, &job.Experience, &job.Description, &job.Location, &job.Salary,
		&job.Category, &job.Link, &job.PostedBy, &job.PostedByRole, &job.PostedAt, &job.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) Update(ctx context.Context, job *domain.Job) error {
	query := `UPDATE jobs SET
		title = $2,
		experience = $3,
		description = $4,
		location = $5,
		salary = $6,
		category = $7,
		link = $8,
		status = $9
	WHERE id = $1 AND posted_by = $10 AND posted_by_role = 'Recruiter'`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.Title, job.Experience, job.Description, job.Location, job.Salary,
		job.Category, job.Link, job.Status, job.PostedBy,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStatus overwrites the status unconditionally; repeating a transition
// is a state-wise no-op.
func (r *jobRepo) UpdateStatus(ctx context.Context, id string, status domain.JobStatus) (*domain.Job, error) {
	query := `UPDATE jobs SET status = $2 WHERE id = $1
	          RETURNING id, title, experience, description, location, salary, category, link, posted_by, posted_by_role, posted_at, status`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id, status).Scan(
		&job.ID, &job.Title, &job.Experience, &job.Description, &job.Location, &job.Salary,
		&job.Category, &job.Link, &job.PostedBy, &job.PostedByRole, &job.PostedAt, &job.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) DeleteByOwner(ctx context.Context, id, recruiterID string) error {
	query := `DELETE FROM jobs WHERE id = $1 AND posted_by = $2 AND posted_by_role = 'Recruiter'`
	result, err := r.db.Exec(ctx, query, id, recruiterID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM jobs WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) DistinctLocations(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT location FROM jobs WHERE status = 'approved' ORDER BY location ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []string
	for rows.Next() {
		var loc string
		if err := rows.Scan(&loc); err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

func (r *jobRepo) CategoryCounts(ctx context.Context) (*domain.CategoryStats, error) {
	query := `SELECT
		COUNT(*) FILTER (WHERE category = 'Private'),
		COUNT(*) FILTER (WHERE category = 'Government'),
		COUNT(*) FILTER (WHERE category = 'Internship')
	FROM jobs WHERE status = 'approved'`

	var stats domain.CategoryStats
	err := r.db.QueryRow(ctx, query).Scan(&stats.Private, &stats.Government, &stats.Internship)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *jobRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total)
	return total, err
}

func (r *jobRepo) CountByStatus(ctx context.Context, status domain.JobStatus) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE status = $1`, status).Scan(&total)
	return total, err
}

func (r *jobRepo) CountByOwner(ctx context.Context, recruiterID string, status domain.JobStatus) (int64, error) {
	var total int64
	var err error
	if status == "" {
		err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE posted_by = $1 AND posted_by_role = 'Recruiter'`, recruiterID).Scan(&total)
	} else {
		err = r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs WHERE posted_by = $1 AND posted_by_role = 'Recruiter' AND status = $2`, recruiterID, status).Scan(&total)
	}
	return total, err
}
