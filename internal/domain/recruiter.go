package domain

import (
	"context"
	"time"
)

// Recruiter is a company account. Name holds the company name.
type Recruiter struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ContactNo    string    `json:"contact_no"`
	Address      *string   `json:"address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type RecruiterStats struct {
	TotalJobs    int64 `json:"totalJobs"`
	PendingJobs  int64 `json:"pendingJobs"`
	ApprovedJobs int64 `json:"approvedJobs"`
	RejectedJobs int64 `json:"rejectedJobs"`
}

type RecruiterRepository interface {
	Create(ctx context.Context, recruiter *Recruiter) error
	GetByEmail(ctx context.Context, email string) (*Recruiter, error)
	GetByID(ctx context.Context, id string) (*Recruiter, error)
	UpdateProfile(ctx context.Context, id, name, contactNo string, address *string) (*Recruiter, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	FetchAll(ctx context.Context) ([]Recruiter, error)
	Count(ctx context.Context) (int64, error)
}

type RecruiterUsecase interface {
	Register(ctx context.Context, name, email, password, contactNo string, address *string) (*Recruiter, error)
	Login(ctx context.Context, email, password string) (string, *Recruiter, error)
	DashboardStats(ctx context.Context, recruiterID string) (*RecruiterStats, error)
	MyJobs(ctx context.Context, recruiterID string) ([]Job, error)
	UpdateProfile(ctx context.Context, id, name, contactNo string, address *string) (*Recruiter, error)
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
}
