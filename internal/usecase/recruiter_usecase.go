package usecase

import (
	"context"
	"errors"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/google/uuid"
)

type recruiterUsecase struct {
	recruiterRepo domain.RecruiterRepository
	jobRepo       domain.JobRepository
	tokens        *auth.TokenService
}

func NewRecruiterUsecase(recruiterRepo domain.RecruiterRepository, jobRepo domain.JobRepository, tokens *auth.TokenService) domain.RecruiterUsecase {
	return &recruiterUsecase{
		recruiterRepo: recruiterRepo,
		jobRepo:       jobRepo,
		tokens:        tokens,
	}
}

func (u *recruiterUsecase) Register(ctx context.Context, name, email, password, contactNo string, address *string) (*domain.Recruiter, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	recruiter := &domain.Recruiter{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        normalizeEmail(email),
		PasswordHash: hash,
		ContactNo:    contactNo,
		Address:      address,
		CreatedAt:    time.Now(),
	}

	if err := u.recruiterRepo.Create(ctx, recruiter); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperror.Conflict("Recruiter with this email already exists")
		}
		return nil, err
	}
	return recruiter, nil
}

// Login issues a token carrying the subject only; recruiter tokens have no
// role claim.
func (u *recruiterUsecase) Login(ctx context.Context, email, password string) (string, *domain.Recruiter, error) {
	recruiter, err := u.recruiterRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, apperror.NotFound("Recruiter not found")
		}
		return "", nil, err
	}

	if !checkPassword(password, recruiter.PasswordHash) {
		return "", nil, apperror.Unauthorized("Invalid password")
	}

	token, err := u.tokens.Issue(recruiter.ID, "")
	if err != nil {
		return "", nil, err
	}
	return token, recruiter, nil
}

func (u *recruiterUsecase) DashboardStats(ctx context.Context, recruiterID string) (*domain.RecruiterStats, error) {
	stats := &domain.RecruiterStats{}
	var err error

	if stats.TotalJobs, err = u.jobRepo.CountByOwner(ctx, recruiterID, ""); err != nil {
		return nil, err
	}
	if stats.PendingJobs, err = u.jobRepo.CountByOwner(ctx, recruiterID, domain.StatusPending); err != nil {
		return nil, err
	}
	if stats.ApprovedJobs, err = u.jobRepo.CountByOwner(ctx, recruiterID, domain.StatusApproved); err != nil {
		return nil, err
	}
	if stats.RejectedJobs, err = u.jobRepo.CountByOwner(ctx, recruiterID, domain.StatusRejected); err != nil {
		return nil, err
	}

	return stats, nil
}

func (u *recruiterUsecase) MyJobs(ctx context.Context, recruiterID string) ([]domain.Job, error) {
	return u.jobRepo.FetchByOwner(ctx, recruiterID)
}

func (u *recruiterUsecase) UpdateProfile(ctx context.Context, id, name, contactNo string, address *string) (*domain.Recruiter, error) {
	recruiter, err := u.recruiterRepo.UpdateProfile(ctx, id, name, contactNo, address)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Recruiter not found")
		}
		return nil, err
	}
	return recruiter, nil
}

func (u *recruiterUsecase) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	recruiter, err := u.recruiterRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Recruiter not found")
		}
		return err
	}

	if !checkPassword(currentPassword, recruiter.PasswordHash) {
		return apperror.BadRequest("Current password is incorrect")
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return u.recruiterRepo.UpdatePassword(ctx, id, hash)
}
