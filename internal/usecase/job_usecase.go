package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type jobUsecase struct {
	jobRepo  domain.JobRepository
	validate *validator.Validate
}

func NewJobUsecase(jobRepo domain.JobRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo, validate: validate}
}

// validateJob enforces the required fields. Category is optional on the
// admin path but must still be a known value when present.
func (u *jobUsecase) validateJob(job *domain.Job, requireCategory bool) error {
	if job.Title == "" || job.Experience == "" || job.Description == "" ||
		job.Location == "" || job.Salary == "" || job.Link == "" {
		return apperror.BadRequest("Please provide all required fields")
	}
	if requireCategory && job.Category == "" {
		return apperror.BadRequest("Please provide all required fields")
	}
	if job.Category != "" {
		if err := u.validate.Var(job.Category, "oneof=Private Government Internship"); err != nil {
			return apperror.BadRequest("Invalid job category")
		}
	}
	return nil
}

// CreateByRecruiter creates a pending job awaiting admin approval.
func (u *jobUsecase) CreateByRecruiter(ctx context.Context, recruiterID string, job *domain.Job) (*domain.Job, error) {
	if err := u.validateJob(job, true); err != nil {
		return nil, err
	}

	job.ID = uuid.NewString()
	job.PostedBy = recruiterID
	job.PostedByRole = domain.OwnerRecruiter
	job.PostedAt = time.Now()
	job.Status = domain.StatusPending

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// CreateByAdmin creates an immediately approved job.
func (u *jobUsecase) CreateByAdmin(ctx context.Context, adminID string, job *domain.Job) (*domain.Job, error) {
	if err := u.validateJob(job, false); err != nil {
		return nil, err
	}

	job.ID = uuid.NewString()
	job.PostedBy = adminID
	job.PostedByRole = domain.OwnerAdmin
	job.PostedAt = time.Now()
	job.Status = domain.StatusApproved

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) ListApproved(ctx context.Context, filter domain.JobFilter, page, limit int) ([]domain.JobWithOwner, int64, error) {
	page, limit = normalizePage(page, limit)
	offset := (page - 1) * limit
	return u.jobRepo.FetchApproved(ctx, filter, limit, offset)
}

func (u *jobUsecase) GetApprovedByID(ctx context.Context, id string) (*domain.JobWithOwner, error) {
	job, err := u.jobRepo.GetApprovedByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) ListLatest(ctx context.Context, limit int) ([]domain.JobWithOwner, error) {
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return u.jobRepo.FetchLatest(ctx, limit)
}

func (u *jobUsecase) ListPending(ctx context.Context) ([]domain.JobWithOwner, error) {
	return u.jobRepo.FetchPending(ctx)
}

func (u *jobUsecase) ListAll(ctx context.Context, page, limit int) ([]domain.JobWithOwner, int64, error) {
	page, limit = normalizePage(page, limit)
	offset := (page - 1) * limit
	return u.jobRepo.FetchAll(ctx, limit, offset)
}

func (u *jobUsecase) Approve(ctx context.Context, id string) (*domain.Job, error) {
	return u.transition(ctx, id, domain.StatusApproved)
}

func (u *jobUsecase) Reject(ctx context.Context, id string) (*domain.Job, error) {
	return u.transition(ctx, id, domain.StatusRejected)
}

// transition overwrites the status without inspecting the current one.
// Concurrent approve/reject resolves last-write-wins.
func (u *jobUsecase) transition(ctx context.Context, id string, status domain.JobStatus) (*domain.Job, error) {
	job, err := u.jobRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, err
	}
	return job, nil
}

// UpdateByOwner applies a recruiter edit. Empty fields keep stored values.
// Any successful edit resets the job to pending for re-review, even from
// approved or rejected.
func (u *jobUsecase) UpdateByOwner(ctx context.Context, id, recruiterID string, changes domain.JobUpdate) (*domain.Job, error) {
	job, err := u.jobRepo.GetByIDForOwner(ctx, id, recruiterID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found or unauthorized")
		}
		return nil, err
	}

	if changes.Title != "" {
		job.Title = changes.Title
	}
	if changes.Experience != "" {
		job.Experience = changes.Experience
	}
	if changes.Description != "" {
		job.Description = changes.Description
	}
	if changes.Location != "" {
		job.Location = changes.Location
	}
	if changes.Salary != "" {
		job.Salary = changes.Salary
	}
	if changes.Category != "" {
		if err := u.validate.Var(changes.Category, "oneof=Private Government Internship"); err != nil {
			return nil, apperror.BadRequest("Invalid job category")
		}
		job.Category = changes.Category
	}
	if changes.Link != "" {
		job.Link = changes.Link
	}

	job.Status = domain.StatusPending

	if err := u.jobRepo.Update(ctx, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found or unauthorized")
		}
		return nil, err
	}
	return job, nil
}

func (u *jobUsecase) DeleteByOwner(ctx context.Context, id, recruiterID string) error {
	err := u.jobRepo.DeleteByOwner(ctx, id, recruiterID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found or unauthorized")
		}
		return err
	}
	return nil
}

func (u *jobUsecase) DeleteAsAdmin(ctx context.Context, id string) error {
	err := u.jobRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	return nil
}

func (u *jobUsecase) Locations(ctx context.Context) ([]string, error) {
	return u.jobRepo.DistinctLocations(ctx)
}

func (u *jobUsecase) CategoryStats(ctx context.Context) (*domain.CategoryStats, error) {
	return u.jobRepo.CategoryCounts(ctx)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
