package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
	jobUC   domain.JobUsecase
}

func NewAdminHandler(rg *gin.RouterGroup, guard gin.HandlerFunc, loginLimiter gin.HandlerFunc, adminUC domain.AdminUsecase, jobUC domain.JobUsecase) {
	handler := &AdminHandler{adminUC: adminUC, jobUC: jobUC}

	admin := rg.Group("/admin")
	admin.POST("/login", loginLimiter, handler.Login)

	protected := admin.Group("")
	protected.Use(guard)
	{
		protected.POST("/create", handler.Create)
		protected.GET("/dashboard", handler.Dashboard)
		protected.GET("/companies", handler.ListCompanies)
		protected.GET("/users", handler.ListUsers)
		protected.PUT("/profile", handler.UpdateProfile)
		protected.PUT("/change-password", handler.ChangePassword)

		protected.POST("/jobs/create", handler.CreateJob)
		protected.GET("/jobs", handler.ListAllJobs)
		protected.GET("/jobs/pending", handler.ListPendingJobs)
		protected.PUT("/jobs/:jobId/approve", handler.ApproveJob)
		protected.PUT("/jobs/:jobId/reject", handler.RejectJob)
		protected.DELETE("/jobs/:jobId", handler.DeleteJob)
	}
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AdminCreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Experience  string `json:"experience" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Salary      string `json:"salary" binding:"required"`
	Category    string `json:"category" binding:"omitempty,oneof=Private Government Internship"`
	Link        string `json:"link" binding:"required"`
}

type UpdateAdminProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please provide email and password"))
		return
	}

	token, admin, err := h.adminUC.Login(c, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"admin": admin,
	})
}

func (h *AdminHandler) Create(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please provide all required fields"))
		return
	}

	admin, err := h.adminUC.Create(c, req.Name, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Admin created successfully", gin.H{
		"admin": admin,
	})
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminUC.DashboardStats(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard stats", gin.H{
		"stats": stats,
	})
}

func (h *AdminHandler) ListCompanies(c *gin.Context) {
	companies, err := h.adminUC.ListCompanies(c)
	if err != nil {
		c.Error(err)
		return
	}
	if companies == nil {
		companies = []domain.Recruiter{}
	}

	response.Success(c, http.StatusOK, "Registered companies", gin.H{
		"companies": companies,
	})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUC.ListUsers(c)
	if err != nil {
		c.Error(err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}

	response.Success(c, http.StatusOK, "Registered users", gin.H{
		"users": users,
	})
}

func (h *AdminHandler) UpdateProfile(c *gin.Context) {
	var req UpdateAdminProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please provide name and email"))
		return
	}

	adminID := c.GetString(string(domain.KeyAdminID))
	admin, err := h.adminUC.UpdateProfile(c, adminID, req.Name, req.Email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated successfully", gin.H{
		"admin": admin,
	})
}

func (h *AdminHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please provide current and new password"))
		return
	}

	adminID := c.GetString(string(domain.KeyAdminID))
	if err := h.adminUC.ChangePassword(c, adminID, req.CurrentPassword, req.NewPassword); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Password changed successfully", nil)
}

// CreateJob posts a job on behalf of the admin. Unlike the recruiter
// path, the job is approved immediately and category stays optional.
func (h *AdminHandler) CreateJob(c *gin.Context) {
	var req AdminCreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Please provide all required fields"))
		return
	}

	adminID := c.GetString(string(domain.KeyAdminID))
	job := &domain.Job{
		Title:       req.Title,
		Experience:  req.Experience,
		Description: req.Description,
		Location:    req.Location,
		Salary:      req.Salary,
		Category:    req.Category,
		Link:        req.Link,
	}

	created, err := h.jobUC.CreateByAdmin(c, adminID, job)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job posted successfully", gin.H{
		"job": created,
	})
}

func (h *AdminHandler) ListAllJobs(c *gin.Context) {
	page, limit := parsePagination(c)

	jobs, total, err := h.jobUC.ListAll(c, page, limit)
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.JobWithOwner{}
	}

	response.Success(c, http.StatusOK, "All jobs", gin.H{
		"jobs":  jobs,
		"total": total,
		"page":  page,
		"pages": totalPages(total, limit),
	})
}

func (h *AdminHandler) ListPendingJobs(c *gin.Context) {
	jobs, err := h.jobUC.ListPending(c)
	if err != nil {
		c.Error(err)
		return
	}
	if jobs == nil {
		jobs = []domain.JobWithOwner{}
	}

	response.Success(c, http.StatusOK, "Pending jobs", gin.H{
		"jobs": jobs,
	})
}

func (h *AdminHandler) ApproveJob(c *gin.Context) {
	job, err := h.jobUC.Approve(c, c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job approved successfully", gin.H{
		"job": job,
	})
}

func (h *AdminHandler) RejectJob(c *gin.Context) {
	job, err := h.jobUC.Reject(c, c.Param("jobId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job rejected successfully", gin.H{
		"job": job,
	})
}

func (h *AdminHandler) DeleteJob(c *gin.Context) {
	if err := h.jobUC.DeleteAsAdmin(c, c.Param("jobId")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}
