package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type JobStatus string

const (
	StatusPending  JobStatus = "pending"
	StatusApproved JobStatus = "approved"
	StatusRejected JobStatus = "rejected"
)

// OwnerRole discriminates the polymorphic posted_by reference. The ID in
// Job.PostedBy is only resolvable against the table this role names.
type OwnerRole string

const (
	OwnerRecruiter OwnerRole = "Recruiter"
	OwnerAdmin     OwnerRole = "Admin"
)

const (
	CategoryPrivate    = "Private"
	CategoryGovernment = "Government"
	CategoryInternship = "Internship"
)

type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Experience   string    `json:"experience"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Salary       string    `json:"salary"`
	Category     string    `json:"category"`
	Link         string    `json:"link"`
	PostedBy     string    `json:"posted_by"`
	PostedByRole OwnerRole `json:"posted_by_role"`
	PostedAt     time.Time `json:"posted_at"`
	Status       JobStatus `json:"status"`
}

// JobWithOwner extends Job with the owner's display fields, resolved from
// the recruiters or admins table depending on PostedByRole.
type JobWithOwner struct {
	Job
	OwnerName    string  `json:"owner_name"`
	OwnerEmail   *string `json:"owner_email,omitempty"`
	OwnerContact *string `json:"owner_contact,omitempty"`
	OwnerAddress *string `json:"owner_address,omitempty"`
}

// JobFilter narrows public listings. Location and Search are
// case-insensitive substring matches; Category is an exact match.
type JobFilter struct {
	Location string
	Category string
	Search   string
}

// JobUpdate carries a recruiter edit. Empty fields keep the stored value.
type JobUpdate struct {
	Title       string
	Experience  string
	Description string
	Location    string
	Salary      string
	Category    string
	Link        string
}

type CategoryStats struct {
	Private    int64 `json:"Private"`
	Government int64 `json:"Government"`
	Internship int64 `json:"Internship"`
}

type JobRepository interface {
	Create(ctx context.Context, job *Job) error
	FetchApproved(ctx context.Context, filter JobFilter, limit, offset int) ([]JobWithOwner, int64, error)
	GetApprovedByID(ctx context.Context, id string) (*JobWithOwner, error)
	FetchLatest(ctx context.Context, limit int) ([]JobWithOwner, error)
	FetchPending(ctx context.Context) ([]JobWithOwner, error)
	FetchAll(ctx context.Context, limit, offset int) ([]JobWithOwner, int64, error)
	FetchByOwner(ctx context.Context, recruiterID string) ([]Job, error)
	GetByIDForOwner(ctx context.Context, id, recruiterID string) (*Job, error)
	Update(ctx context.Context, job *Job) error
	UpdateStatus(ctx context.Context, id string, status JobStatus) (*Job, error)
	DeleteByOwner(ctx context.Context, id, recruiterID string) error
	Delete(ctx context.Context, id string) error
	DistinctLocations(ctx context.Context) ([]string, error)
	CategoryCounts(ctx context.Context) (*CategoryStats, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status JobStatus) (int64, error)
	CountByOwner(ctx context.Context, recruiterID string, status JobStatus) (int64, error)
}

type JobUsecase interface {
	CreateByRecruiter(ctx context.Context, recruiterID string, job *Job) (*Job, error)
	CreateByAdmin(ctx context.Context, adminID string, job *Job) (*Job, error)
	ListApproved(ctx context.Context, filter JobFilter, page, limit int) ([]JobWithOwner, int64, error)
	GetApprovedByID(ctx context.Context, id string) (*JobWithOwner, error)
	ListLatest(ctx context.Context, limit int) ([]JobWithOwner, error)
	ListPending(ctx context.Context) ([]JobWithOwner, error)
	ListAll(ctx context.Context, page, limit int) ([]JobWithOwner, int64, error)
	Approve(ctx context.Context, id string) (*Job, error)
	Reject(ctx context.Context, id string) (*Job, error)
	UpdateByOwner(ctx context.Context, id, recruiterID string, changes JobUpdate) (*Job, error)
	DeleteByOwner(ctx context.Context, id, recruiterID string) error
	DeleteAsAdmin(ctx context.Context, id string) error
	Locations(ctx context.Context) ([]string, error)
	CategoryStats(ctx context.Context) (*CategoryStats, error)
}
