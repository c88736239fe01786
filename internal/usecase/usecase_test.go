package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/usecase"
	"go-jobboard-backend/pkg/auth"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// Mock Repositories

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) FetchApproved(ctx context.Context, filter domain.JobFilter, limit, offset int) ([]domain.JobWithOwner, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	jobs, _ := args.Get(0).([]domain.JobWithOwner)
	return jobs, args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) GetApprovedByID(ctx context.Context, id string) (*domain.JobWithOwner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobWithOwner), args.Error(1)
}
func (m *MockJobRepo) FetchLatest(ctx context.Context, limit int) ([]domain.JobWithOwner, error) {
	args := m.Called(ctx, limit)
	jobs, _ := args.Get(0).([]domain.JobWithOwner)
	return jobs, args.Error(1)
}
func (m *MockJobRepo) FetchPending(ctx context.Context) ([]domain.JobWithOwner, error) {
	args := m.Called(ctx)
	jobs, _ := args.Get(0).([]domain.JobWithOwner)
	return jobs, args.Error(1)
}
func (m *MockJobRepo) FetchAll(ctx context.Context, limit, offset int) ([]domain.JobWithOwner, int64, error) {
	args := m.Called(ctx, limit, offset)
	jobs, _ := args.Get(0).([]domain.JobWithOwner)
	return jobs, args.Get(1).(int64), args.Error(2)
}
func (m *MockJobRepo) FetchByOwner(ctx context.Context, recruiterID string) ([]domain.Job, error) {
	args := m.Called(ctx, recruiterID)
	jobs, _ := args.Get(0).([]domain.Job)
	return jobs, args.Error(1)
}
func (m *MockJobRepo) GetByIDForOwner(ctx context.Context, id, recruiterID string) (*domain.Job, error) {
	args := m.Called(ctx, id, recruiterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) error {
	return m.Called(ctx, job).Error(0)
}
func (m *MockJobRepo) UpdateStatus(ctx context.Context, id string, status domain.JobStatus) (*domain.Job, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) DeleteByOwner(ctx context.Context, id, recruiterID string) error {
	return m.Called(ctx, id, recruiterID).Error(0)
}
func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockJobRepo) DistinctLocations(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	locations, _ := args.Get(0).([]string)
	return locations, args.Error(1)
}
func (m *MockJobRepo) CategoryCounts(ctx context.Context) (*domain.CategoryStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CategoryStats), args.Error(1)
}
func (m *MockJobRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockJobRepo) CountByStatus(ctx context.Context, status domain.JobStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockJobRepo) CountByOwner(ctx context.Context, recruiterID string, status domain.JobStatus) (int64, error) {
	args := m.Called(ctx, recruiterID, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockAdminRepo struct {
	mock.Mock
}

func (m *MockAdminRepo) Create(ctx context.Context, admin *domain.Admin) error {
	return m.Called(ctx, admin).Error(0)
}
func (m *MockAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}
func (m *MockAdminRepo) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}
func (m *MockAdminRepo) UpdateProfile(ctx context.Context, id, name, email string) (*domain.Admin, error) {
	args := m.Called(ctx, id, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Admin), args.Error(1)
}
func (m *MockAdminRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

type MockRecruiterRepo struct {
	mock.Mock
}

func (m *MockRecruiterRepo) Create(ctx context.Context, recruiter *domain.Recruiter) error {
	return m.Called(ctx, recruiter).Error(0)
}
func (m *MockRecruiterRepo) GetByEmail(ctx context.Context, email string) (*domain.Recruiter, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recruiter), args.Error(1)
}
func (m *MockRecruiterRepo) GetByID(ctx context.Context, id string) (*domain.Recruiter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recruiter), args.Error(1)
}
func (m *MockRecruiterRepo) UpdateProfile(ctx context.Context, id, name, contactNo string, address *string) (*domain.Recruiter, error) {
	args := m.Called(ctx, id, name, contactNo, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recruiter), args.Error(1)
}
func (m *MockRecruiterRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}
func (m *MockRecruiterRepo) FetchAll(ctx context.Context) ([]domain.Recruiter, error) {
	args := m.Called(ctx)
	recruiters, _ := args.Get(0).([]domain.Recruiter)
	return recruiters, args.Error(1)
}
func (m *MockRecruiterRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateProfile(ctx context.Context, id, name, contactNo string) (*domain.User, error) {
	args := m.Called(ctx, id, name, contactNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockUserRepo) FetchAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}
func (m *MockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockVisitorRepo struct {
	mock.Mock
}

func (m *MockVisitorRepo) Create(ctx context.Context, visitor *domain.Visitor) error {
	return m.Called(ctx, visitor).Error(0)
}
func (m *MockVisitorRepo) ExistsSince(ctx context.Context, ip string, since time.Time) (bool, error) {
	args := m.Called(ctx, ip, since)
	return args.Bool(0), args.Error(1)
}
func (m *MockVisitorRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockVisitorRepo) CountSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	assert.NoError(t, err)
	return string(hash)
}

func testTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService("test-secret", 1)
	assert.NoError(t, err)
	return tokens
}

func validJob() *domain.Job {
	return &domain.Job{
		Title:       "Backend Engineer",
		Experience:  "2+ years",
		Description: "Go services",
		Location:    "Chennai",
		Salary:      "12 LPA",
		Category:    domain.CategoryPrivate,
		Link:        "https://example.com/apply",
	}
}

func TestJobCreationDefaults(t *testing.T) {
	ctx := context.Background()

	t.Run("Recruiter job starts pending", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validator.New())

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

		job, err := uc.CreateByRecruiter(ctx, "rec-1", validJob())
		assert.NoError(t, err)
		assert.NotEmpty(t, job.ID)
		assert.Equal(t, domain.StatusPending, job.Status)
		assert.Equal(t, "rec-1", job.PostedBy)
		assert.Equal(t, domain.OwnerRecruiter, job.PostedByRole)
	})

	t.Run("Admin job is approved immediately", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validator.New())

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

		job, err := uc.CreateByAdmin(ctx, "adm-1", validJob())
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, job.Status)
		assert.Equal(t, domain.OwnerAdmin, job.PostedByRole)
	})

	t.Run("Admin may omit category", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validator.New())

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Job")).Return(nil)

		job := validJob()
		job.Category = ""
		_, err := uc.CreateByAdmin(ctx, "adm-1", job)
		assert.NoError(t, err)
	})

	t.Run("Recruiter must provide category", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validator.New())

		job := validJob()
		job.Category = ""
		_, err := uc.CreateByRecruiter(ctx, "rec-1", job)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "all required fields")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Unknown category is rejected on both paths", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validator.New())

		job := validJob()
		job.Category = "Freelance"
		_, err := uc.CreateByAdmin(ctx, "adm-1", job)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid job category")
	})
}

func TestJobUpdateResetsStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Edit forces status back to pending and keeps empty fields", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validator.New())

		stored := validJob()
		stored.ID = "job-1"
		stored.PostedBy = "rec-1"
		stored.PostedByRole = domain.OwnerRecruiter
		stored.Status = domain.StatusApproved

		mockRepo.On("GetByIDForOwner", ctx, "job-1", "rec-1").Return(stored, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Job")).Return(nil).Run(func(args mock.Arguments) {
			j := args.Get(1).(*domain.Job)
			assert.Equal(t, domain.StatusPending, j.Status)
			assert.Equal(t, "Senior Backend Engineer", j.Title)
			assert.Equal(t, "Chennai", j.Location) // untouched field preserved
		})

		job, err := uc.UpdateByOwner(ctx, "job-1", "rec-1", domain.JobUpdate{Title: "Senior Backend Engineer"})
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusPending, job.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Non-owned job is indistinguishable from missing", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validator.New())

		mockRepo.On("GetByIDForOwner", ctx, "job-1", "other-rec").Return(nil, domain.ErrNotFound)

		_, err := uc.UpdateByOwner(ctx, "job-1", "other-rec", domain.JobUpdate{Title: "Hijack"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found or unauthorized")
	})
}

func TestModerationTransitions(t *testing.T) {
	ctx := context.Background()

	t.Run("Approve overwrites unconditionally", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validator.New())

		approved := validJob()
		approved.ID = "job-1"
		approved.Status = domain.StatusApproved
		mockRepo.On("UpdateStatus", ctx, "job-1", domain.StatusApproved).Return(approved, nil)

		job, err := uc.Approve(ctx, "job-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, job.Status)

		// Approving again is a no-op success, not an error
		job, err = uc.Approve(ctx, "job-1")
		assert.NoError(t, err)
		assert.Equal(t, domain.StatusApproved, job.Status)
	})

	t.Run("Reject on missing job returns not found", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validator.New())

		mockRepo.On("UpdateStatus", ctx, "ghost", domain.StatusRejected).Return(nil, domain.ErrNotFound)

		_, err := uc.Reject(ctx, "ghost")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found")
	})
}

func TestJobDeletion(t *testing.T) {
	ctx := context.Background()

	t.Run("Owner delete folds ownership into not found", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validator.New())

		mockRepo.On("DeleteByOwner", ctx, "job-1", "other-rec").Return(domain.ErrNotFound)

		err := uc.DeleteByOwner(ctx, "job-1", "other-rec")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Job not found or unauthorized")
	})

	t.Run("Admin delete needs no ownership", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(mockRepo, validator.New())

		mockRepo.On("Delete", ctx, "job-1").Return(nil)

		assert.NoError(t, uc.DeleteAsAdmin(ctx, "job-1"))
	})
}

func TestRecruiterRegistration(t *testing.T) {
	ctx := context.Background()

	t.Run("Duplicate email surfaces as conflict", func(t *testing.T) {
		mockRepo := new(MockRecruiterRepo)
		uc := usecase.NewRecruiterUsecase(mockRepo, new(MockJobRepo), testTokens(t))

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Recruiter")).Return(domain.ErrDuplicateEmail)

		_, err := uc.Register(ctx, "Acme", "hr@acme.com", "secret123", "12345", nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("Email is lowercased before storage", func(t *testing.T) {
		mockRepo := new(MockRecruiterRepo)
		uc := usecase.NewRecruiterUsecase(mockRepo, new(MockJobRepo), testTokens(t))

		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Recruiter")).Return(nil).Run(func(args mock.Arguments) {
			r := args.Get(1).(*domain.Recruiter)
			assert.Equal(t, "hr@acme.com", r.Email)
			assert.NotEqual(t, "secret123", r.PasswordHash)
		})

		_, err := uc.Register(ctx, "Acme", " HR@Acme.Com ", "secret123", "12345", nil)
		assert.NoError(t, err)
	})
}

func TestAdminLogin(t *testing.T) {
	ctx := context.Background()
	tokens := testTokens(t)

	newAdminUC := func(adminRepo *MockAdminRepo) domain.AdminUsecase {
		return usecase.NewAdminUsecase(adminRepo, new(MockRecruiterRepo), new(MockUserRepo), new(MockJobRepo), new(MockVisitorRepo), tokens)
	}

	t.Run("Issues a token carrying the admin role", func(t *testing.T) {
		mockRepo := new(MockAdminRepo)
		uc := newAdminUC(mockRepo)

		mockRepo.On("GetByEmail", ctx, "boss@site.com").Return(&domain.Admin{
			ID:           "adm-1",
			Email:        "boss@site.com",
			PasswordHash: mustHash(t, "secret123"),
		}, nil)

		token, admin, err := uc.Login(ctx, "Boss@Site.Com", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "adm-1", admin.ID)

		claims, err := tokens.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, auth.RoleAdmin, claims.Role)
	})

	t.Run("Unknown admin", func(t *testing.T) {
		mockRepo := new(MockAdminRepo)
		uc := newAdminUC(mockRepo)

		mockRepo.On("GetByEmail", ctx, "ghost@site.com").Return(nil, domain.ErrNotFound)

		_, _, err := uc.Login(ctx, "ghost@site.com", "whatever")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Admin not found")
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockRepo := new(MockAdminRepo)
		uc := newAdminUC(mockRepo)

		mockRepo.On("GetByEmail", ctx, "boss@site.com").Return(&domain.Admin{
			ID:           "adm-1",
			PasswordHash: mustHash(t, "secret123"),
		}, nil)

		_, _, err := uc.Login(ctx, "boss@site.com", "wrong")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Invalid password")
	})
}

func TestRecruiterLoginTokenHasNoRole(t *testing.T) {
	ctx := context.Background()
	tokens := testTokens(t)

	mockRepo := new(MockRecruiterRepo)
	uc := usecase.NewRecruiterUsecase(mockRepo, new(MockJobRepo), tokens)

	mockRepo.On("GetByEmail", ctx, "hr@acme.com").Return(&domain.Recruiter{
		ID:           "rec-1",
		Email:        "hr@acme.com",
		PasswordHash: mustHash(t, "secret123"),
	}, nil)

	token, _, err := uc.Login(ctx, "hr@acme.com", "secret123")
	assert.NoError(t, err)

	claims, err := tokens.Verify(token)
	assert.NoError(t, err)
	assert.Empty(t, claims.Role)
}

func TestUserChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects a wrong current password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockRepo, testTokens(t))

		mockRepo.On("GetByID", ctx, "u1").Return(&domain.User{
			ID:           "u1",
			PasswordHash: mustHash(t, "oldpass"),
		}, nil)

		err := uc.ChangePassword(ctx, "u1", "notthepass", "newpass123")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Current password is incorrect")
		mockRepo.AssertNotCalled(t, "UpdatePassword")
	})

	t.Run("Rehashes on success", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewUserUsecase(mockRepo, testTokens(t))

		mockRepo.On("GetByID", ctx, "u1").Return(&domain.User{
			ID:           "u1",
			PasswordHash: mustHash(t, "oldpass"),
		}, nil)
		mockRepo.On("UpdatePassword", ctx, "u1", mock.AnythingOfType("string")).Return(nil).Run(func(args mock.Arguments) {
			hash := args.Get(2).(string)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpass123")))
		})

		assert.NoError(t, uc.ChangePassword(ctx, "u1", "oldpass", "newpass123"))
		mockRepo.AssertExpectations(t)
	})
}

func TestVisitorDedup(t *testing.T) {
	ctx := context.Background()

	t.Run("First visit of the day is recorded", func(t *testing.T) {
		mockRepo := new(MockVisitorRepo)
		uc := usecase.NewVisitorUsecase(mockRepo)

		mockRepo.On("ExistsSince", ctx, "1.2.3.4", mock.AnythingOfType("time.Time")).Return(false, nil)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Visitor")).Return(nil).Run(func(args mock.Arguments) {
			v := args.Get(1).(*domain.Visitor)
			assert.Equal(t, "1.2.3.4", v.IP)
		})

		assert.NoError(t, uc.RecordVisit(ctx, "1.2.3.4", "Mozilla/5.0", "/jobs"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repeat visit the same day is skipped", func(t *testing.T) {
		mockRepo := new(MockVisitorRepo)
		uc := usecase.NewVisitorUsecase(mockRepo)

		mockRepo.On("ExistsSince", ctx, "1.2.3.4", mock.AnythingOfType("time.Time")).Return(true, nil)

		assert.NoError(t, uc.RecordVisit(ctx, "1.2.3.4", "Mozilla/5.0", "/jobs"))
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Dedup window starts at local midnight", func(t *testing.T) {
		mockRepo := new(MockVisitorRepo)
		uc := usecase.NewVisitorUsecase(mockRepo)

		mockRepo.On("ExistsSince", ctx, "1.2.3.4", mock.MatchedBy(func(since time.Time) bool {
			return since.Hour() == 0 && since.Minute() == 0 && since.Second() == 0
		})).Return(true, nil)

		assert.NoError(t, uc.RecordVisit(ctx, "1.2.3.4", "Mozilla/5.0", "/"))
		mockRepo.AssertExpectations(t)
	})
}

func TestRecruiterDashboardStats(t *testing.T) {
	ctx := context.Background()

	mockJobRepo := new(MockJobRepo)
	uc := usecase.NewRecruiterUsecase(new(MockRecruiterRepo), mockJobRepo, testTokens(t))

	mockJobRepo.On("CountByOwner", ctx, "rec-1", domain.JobStatus("")).Return(int64(10), nil)
	mockJobRepo.On("CountByOwner", ctx, "rec-1", domain.StatusPending).Return(int64(3), nil)
	mockJobRepo.On("CountByOwner", ctx, "rec-1", domain.StatusApproved).Return(int64(6), nil)
	mockJobRepo.On("CountByOwner", ctx, "rec-1", domain.StatusRejected).Return(int64(1), nil)

	stats, err := uc.DashboardStats(ctx, "rec-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalJobs)
	assert.Equal(t, int64(3), stats.PendingJobs)
	assert.Equal(t, int64(6), stats.ApprovedJobs)
	assert.Equal(t, int64(1), stats.RejectedJobs)
}

func TestAdminDashboardStats(t *testing.T) {
	ctx := context.Background()

	mockJobRepo := new(MockJobRepo)
	mockRecruiterRepo := new(MockRecruiterRepo)
	mockUserRepo := new(MockUserRepo)
	mockVisitorRepo := new(MockVisitorRepo)
	uc := usecase.NewAdminUsecase(new(MockAdminRepo), mockRecruiterRepo, mockUserRepo, mockJobRepo, mockVisitorRepo, testTokens(t))

	mockJobRepo.On("Count", ctx).Return(int64(42), nil)
	mockJobRepo.On("CountByStatus", ctx, domain.StatusPending).Return(int64(5), nil)
	mockRecruiterRepo.On("Count", ctx).Return(int64(7), nil)
	mockUserRepo.On("Count", ctx).Return(int64(100), nil)
	mockVisitorRepo.On("Count", ctx).Return(int64(900), nil)
	mockVisitorRepo.On("CountSince", ctx, mock.AnythingOfType("time.Time")).Return(int64(30), nil)

	stats, err := uc.DashboardStats(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalJobs)
	assert.Equal(t, int64(5), stats.PendingJobs)
	assert.Equal(t, int64(7), stats.TotalCompanies)
	assert.Equal(t, int64(100), stats.TotalUsers)
	assert.Equal(t, int64(900), stats.TotalVisitors)
	// today, week, and month share the mocked CountSince
	assert.Equal(t, int64(30), stats.TodayVisitors)
	assert.Equal(t, int64(30), stats.WeekVisitors)
	assert.Equal(t, int64(30), stats.MonthVisitors)
}
