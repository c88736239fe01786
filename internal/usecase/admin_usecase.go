package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/auth"

	"github.com/google/uuid"
)

type adminUsecase struct {
	adminRepo     domain.AdminRepository
	recruiterRepo domain.RecruiterRepository
	userRepo      domain.UserRepository
	jobRepo       domain.JobRepository
	visitorRepo   domain.VisitorRepository
	tokens        *auth.TokenService
}

func NewAdminUsecase(
	adminRepo domain.AdminRepository,
	recruiterRepo domain.RecruiterRepository,
	userRepo domain.UserRepository,
	jobRepo domain.JobRepository,
	visitorRepo domain.VisitorRepository,
	tokens *auth.TokenService,
) domain.AdminUsecase {
	return &adminUsecase{
		adminRepo:     adminRepo,
		recruiterRepo: recruiterRepo,
		userRepo:      userRepo,
		jobRepo:       jobRepo,
		visitorRepo:   visitorRepo,
		tokens:        tokens,
	}
}

// Login verifies credentials and issues a token carrying the admin role
// claim. Only admin tokens carry a role.
func (u *adminUsecase) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	admin, err := u.adminRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, apperror.NotFound("Admin not found")
		}
		return "", nil, err
	}

	if !checkPassword(password, admin.PasswordHash) {
		return "", nil, apperror.Unauthorized("Invalid password")
	}

	token, err := u.tokens.Issue(admin.ID, auth.RoleAdmin)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

func (u *adminUsecase) Create(ctx context.Context, name, email, password string) (*domain.Admin, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	admin := &domain.Admin{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        normalizeEmail(email),
		PasswordHash: hash,
		Role:         "admin",
		CreatedAt:    time.Now(),
	}

	if err := u.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperror.Conflict("Admin with this email already exists")
		}
		return nil, err
	}
	return admin, nil
}

func (u *adminUsecase) UpdateProfile(ctx context.Context, id, name, email string) (*domain.Admin, error) {
	admin, err := u.adminRepo.UpdateProfile(ctx, id, name, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Admin not found")
		}
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, apperror.Conflict("Admin with this email already exists")
		}
		return nil, err
	}
	return admin, nil
}

func (u *adminUsecase) ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error {
	admin, err := u.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Admin not found")
		}
		return err
	}

	if !checkPassword(currentPassword, admin.PasswordHash) {
		return apperror.BadRequest("Current password is incorrect")
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return u.adminRepo.UpdatePassword(ctx, id, hash)
}

// DashboardStats aggregates platform counters. Day boundaries are local
// server midnight; week is trailing 7 days; month starts on the 1st.
func (u *adminUsecase) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := dayStart.AddDate(0, 0, -7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	stats := &domain.DashboardStats{}
	var err error

	if stats.TotalJobs, err = u.jobRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingJobs, err = u.jobRepo.CountByStatus(ctx, domain.StatusPending); err != nil {
		return nil, err
	}
	if stats.TotalCompanies, err = u.recruiterRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = u.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalVisitors, err = u.visitorRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TodayVisitors, err = u.visitorRepo.CountSince(ctx, dayStart); err != nil {
		return nil, err
	}
	if stats.WeekVisitors, err = u.visitorRepo.CountSince(ctx, weekStart); err != nil {
		return nil, err
	}
	if stats.MonthVisitors, err = u.visitorRepo.CountSince(ctx, monthStart); err != nil {
		return nil, err
	}

	return stats, nil
}

func (u *adminUsecase) ListCompanies(ctx context.Context) ([]domain.Recruiter, error) {
	return u.recruiterRepo.FetchAll(ctx)
}

func (u *adminUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return u.userRepo.FetchAll(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
