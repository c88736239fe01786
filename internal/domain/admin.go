package domain

import (
	"context"
	"time"
)

type Admin struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// DashboardStats aggregates the admin dashboard counters. Visitor counters
// use local-midnight boundaries: today since 00:00, week the trailing 7
// days, month since the 1st.
type DashboardStats struct {
	TotalJobs      int64 `json:"totalJobs"`
	PendingJobs    int64 `json:"pendingJobs"`
	TotalCompanies int64 `json:"totalCompanies"`
	TotalUsers     int64 `json:"totalUsers"`
	TotalVisitors  int64 `json:"totalVisitors"`
	TodayVisitors  int64 `json:"todayVisitors"`
	WeekVisitors   int64 `json:"weekVisitors"`
	MonthVisitors  int64 `json:"monthVisitors"`
}

type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) error
	GetByEmail(ctx context.Context, email string) (*Admin, error)
	GetByID(ctx context.Context, id string) (*Admin, error)
	UpdateProfile(ctx context.Context, id, name, email string) (*Admin, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type AdminUsecase interface {
	Login(ctx context.Context, email, password string) (string, *Admin, error)
	Create(ctx context.Context, name, email, password string) (*Admin, error)
	UpdateProfile(ctx context.Context, id, name, email string) (*Admin, error)
	ChangePassword(ctx context.Context, id, currentPassword, newPassword string) error
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	ListCompanies(ctx context.Context) ([]Recruiter, error)
	ListUsers(ctx context.Context) ([]User, error)
}
